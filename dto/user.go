package dto

import "time"

// UserResponse is the public view of an account.
type UserResponse struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phoneNumber"`
	Role        int        `json:"role"`
	Status      int        `json:"status"`
	IsVerified  bool       `json:"isVerified"`
	Avatar      string     `json:"avatar,omitempty"`
	CampusID    string     `json:"campusId,omitempty"`
	RoomNumber  string     `json:"roomNumber,omitempty"`
	TotalOrders int        `json:"totalOrders"`
	LastOrderAt *time.Time `json:"lastOrderAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type UpdateUserRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Avatar      string `json:"avatar"`
	CampusID    string `json:"campusId"`
	RoomNumber  string `json:"roomNumber"`
}

// UserStatusRequest bans or unbans an account.
type UserStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

type UserListQuery struct {
	PageQuery
	Role   *int   `form:"role"`
	Status *int   `form:"status"`
	Search string `form:"search"`
}
