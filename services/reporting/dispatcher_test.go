package reporting

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Jahid-Hassan-Noor/food-now/models"
	"github.com/Jahid-Hassan-Noor/food-now/services/logger"
)

type fakeMailer struct {
	sent    []fakeDelivery
	failFor map[string]error
}

type fakeDelivery struct {
	to, subject, body, filename, mimeType string
	attachment                            []byte
}

func (m *fakeMailer) Send(to, subject, body string, attachment []byte, filename, mimeType string) error {
	if err, ok := m.failFor[to]; ok {
		return err
	}
	m.sent = append(m.sent, fakeDelivery{to, subject, body, filename, mimeType, attachment})
	return nil
}

func TestDispatchDueReports(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)
	setNow(t, now)
	db := openTestDB(t)
	log := logger.NewDefaultLogger(logger.ErrorLevel)

	due := now.Add(-time.Hour)
	mustCreate(t, db, &models.ReportSchedule{
		Email:     "ops@campus.edu",
		Frequency: models.ReportFrequencyWeekly,
		IsActive:  true,
		NextRunAt: timePtr(due),
	})
	mustCreate(t, db, &models.ReportSchedule{
		Email:     "broken@campus.edu",
		Frequency: models.ReportFrequencyMonthly,
		IsActive:  true,
		NextRunAt: timePtr(due),
	})
	// Not yet due, must be skipped.
	mustCreate(t, db, &models.ReportSchedule{
		Email:     "later@campus.edu",
		Frequency: models.ReportFrequencyWeekly,
		IsActive:  true,
		NextRunAt: timePtr(now.Add(time.Hour)),
	})
	// Inactive, must be skipped even though overdue.
	mustCreate(t, db, &models.ReportSchedule{
		Email:     "paused@campus.edu",
		Frequency: models.ReportFrequencyWeekly,
		IsActive:  false,
		NextRunAt: timePtr(due),
	})

	mailer := &fakeMailer{failFor: map[string]error{
		"broken@campus.edu": errors.New("smtp unavailable"),
	}}

	sent, failed := DispatchDueReports(db, mailer, now, log)
	if sent != 1 || failed != 1 {
		t.Fatalf("sent/failed = %d/%d, want 1/1", sent, failed)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("deliveries = %d, want 1", len(mailer.sent))
	}

	delivery := mailer.sent[0]
	if delivery.to != "ops@campus.edu" {
		t.Errorf("delivered to %q", delivery.to)
	}
	if delivery.subject != "Food Now Admin Dashboard Report (Last 7 Days)" {
		t.Errorf("subject = %q", delivery.subject)
	}
	if !strings.Contains(delivery.body, "Range: 2025-06-04 to 2025-06-10") {
		t.Errorf("body missing range line: %q", delivery.body)
	}
	if !strings.Contains(delivery.body, "Generated at: "+now.Format(time.RFC3339)) {
		t.Errorf("body missing timestamp: %q", delivery.body)
	}
	if delivery.filename != "admin-dashboard-report-2025-06-04-2025-06-10.csv" {
		t.Errorf("filename = %q", delivery.filename)
	}
	if delivery.mimeType != "text/csv" {
		t.Errorf("mime type = %q", delivery.mimeType)
	}
	if !strings.HasPrefix(string(delivery.attachment), "Admin Dashboard Report\r\n") {
		t.Error("attachment is not the CSV report")
	}

	// Successful schedule stamped, failed one untouched.
	var ok models.ReportSchedule
	if err := db.Where("email = ?", "ops@campus.edu").First(&ok).Error; err != nil {
		t.Fatal(err)
	}
	if ok.LastSentAt == nil || !ok.LastSentAt.Equal(now) {
		t.Errorf("last_sent_at = %v, want %v", ok.LastSentAt, now)
	}
	if ok.NextRunAt == nil || !ok.NextRunAt.Equal(now.Add(7*24*time.Hour)) {
		t.Errorf("next_run_at = %v, want a week out", ok.NextRunAt)
	}

	var broken models.ReportSchedule
	if err := db.Where("email = ?", "broken@campus.edu").First(&broken).Error; err != nil {
		t.Fatal(err)
	}
	if broken.LastSentAt != nil {
		t.Errorf("failed schedule was stamped: %v", broken.LastSentAt)
	}
	if broken.NextRunAt == nil || !broken.NextRunAt.Equal(due) {
		t.Errorf("failed schedule next_run_at moved: %v", broken.NextRunAt)
	}
}

func TestDispatchDueReportsNothingDue(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)
	setNow(t, now)
	db := openTestDB(t)

	mailer := &fakeMailer{}
	sent, failed := DispatchDueReports(db, mailer, now, logger.NewDefaultLogger(logger.ErrorLevel))
	if sent != 0 || failed != 0 || len(mailer.sent) != 0 {
		t.Errorf("sent/failed/deliveries = %d/%d/%d, want all zero", sent, failed, len(mailer.sent))
	}
}
