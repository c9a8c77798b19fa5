package dto

import "time"

type NotificationResponse struct {
	ID        uint      `json:"id"`
	Sender    string    `json:"sender"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// AnnouncementRequest fans a broadcast out to every account whose role
// name is listed in targetRoles.
type AnnouncementRequest struct {
	Title       string   `json:"title" binding:"required"`
	Message     string   `json:"message" binding:"required"`
	TargetRoles []string `json:"targetRoles" binding:"required"`
}

type MarkReadRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}
