package dto

import "time"

// DashboardQuery selects the reporting window. Start/End only apply when
// Range is "custom".
type DashboardQuery struct {
	Range string `form:"range,default=30d"`
	Start string `form:"start_date"`
	End   string `form:"end_date"`
}

// ChefDashboardQuery adds the admin-only chef override.
type ChefDashboardQuery struct {
	DashboardQuery
	Chef string `form:"chef"`
}

// ExportQuery adds the optional report download format. An empty format
// means a JSON response rather than a file.
type ExportQuery struct {
	DashboardQuery
	Format string `form:"export_format"`
}

type ReportScheduleRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Frequency string `json:"frequency"`
	IsActive  *bool  `json:"isActive"`
}

type ReportScheduleResponse struct {
	ID         uint       `json:"id"`
	Email      string     `json:"email"`
	Frequency  string     `json:"frequency"`
	IsActive   bool       `json:"isActive"`
	NextRunAt  *time.Time `json:"nextRunAt,omitempty"`
	LastSentAt *time.Time `json:"lastSentAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}
