package models

import (
	"time"
)

type User struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	Name          string     `gorm:"default:New User" json:"name"`
	Username      string     `gorm:"unique;not null" json:"username"`
	Email         string     `gorm:"unique" json:"email"`
	Password      string     `json:"password"`
	IsVerified    bool       `gorm:"default:false" json:"is_verified"`
	Code          string     `json:"code"`
	CodeCreatedAt time.Time  `gorm:"autoCreateTime" json:"codeCreatedAt"`
	PhoneNumber   string     `gorm:"type:varchar(15)" json:"phoneNumber"`
	Avatar        string     `json:"avatar"`
	Role          int        `gorm:"default:0" json:"role"`
	Status        int        `gorm:"default:1" json:"status"`
	CampusID      string     `json:"campusId"`
	RoomNumber    string     `json:"roomNumber"`
	TotalOrders   int        `gorm:"default:0" json:"totalOrders"`
	LastOrderAt   *time.Time `json:"lastOrderAt,omitempty"`
}
