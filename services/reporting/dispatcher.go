package reporting

import (
	"fmt"
	"time"

	"github.com/Jahid-Hassan-Noor/food-now/models"
	"github.com/Jahid-Hassan-Noor/food-now/services/logger"

	"gorm.io/gorm"
)

// Mailer is what the dispatcher needs from the mail layer.
type Mailer interface {
	Send(to, subject, body string, attachment []byte, filename, mimeType string) error
}

// DispatchDueReports sends the scheduled dashboard report to every
// active schedule whose next_run_at has passed. Each schedule is
// isolated: a failed delivery is counted and logged without stopping
// the rest. Successful sends stamp last_sent_at and advance
// next_run_at by the frequency offset. Returns (sent, failed).
func DispatchDueReports(db *gorm.DB, mailer Mailer, now time.Time, log logger.Logger) (int, int) {
	var schedules []models.ReportSchedule
	if err := db.
		Where("is_active = ?", true).
		Where("next_run_at IS NOT NULL AND next_run_at <= ?", now).
		Order("next_run_at").
		Find(&schedules).Error; err != nil {
		log.Error("report dispatch: loading schedules failed: %v", err)
		return 0, 0
	}

	if len(schedules) == 0 {
		log.Info("report dispatch: no scheduled dashboard reports are due")
		return 0, 0
	}

	service := NewService(db)
	sent, failed := 0, 0

	for _, schedule := range schedules {
		rangeKey := "7d"
		nextOffset := 7 * 24 * time.Hour
		if schedule.Frequency == models.ReportFrequencyMonthly {
			rangeKey = "month"
			nextOffset = 30 * 24 * time.Hour
		}

		info, err := ResolveRange(rangeKey, "", "")
		if err != nil {
			failed++
			log.Error("report dispatch: skipping schedule %s: invalid range (%v)", schedule.Email, err)
			continue
		}

		payload, err := service.BuildDashboardPayload(info)
		if err != nil {
			failed++
			log.Error("report dispatch: building payload for %s failed: %v", schedule.Email, err)
			continue
		}
		csvContent := BuildDashboardCSV(payload)

		subject := fmt.Sprintf("Food Now Admin Dashboard Report (%s)", payload.Range.Label)
		body := fmt.Sprintf(
			"Hello Admin,\n\n"+
				"Please find the attached scheduled dashboard report.\n\n"+
				"Range: %s to %s\n"+
				"Generated at: %s\n\n"+
				"Regards,\nFood Now",
			payload.Range.StartDate, payload.Range.EndDate, now.Format(time.RFC3339))
		filename := ReportFilename(payload, "csv")

		if err := mailer.Send(schedule.Email, subject, body, csvContent, filename, "text/csv"); err != nil {
			failed++
			log.Error("report dispatch: failed sending to %s: %v", schedule.Email, err)
			continue
		}

		nextRun := now.Add(nextOffset)
		if err := db.Model(&models.ReportSchedule{}).
			Where("id = ?", schedule.ID).
			Updates(map[string]interface{}{
				"last_sent_at": now,
				"next_run_at":  nextRun,
			}).Error; err != nil {
			log.Error("report dispatch: stamping schedule %s failed: %v", schedule.Email, err)
		}
		sent++
		log.Info("report dispatch: sent report to %s", schedule.Email)
	}

	log.Info("report dispatch: complete. Sent: %d, Failed: %d.", sent, failed)
	return sent, failed
}
