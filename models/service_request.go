package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RequestStatusPending   = "pending"
	RequestStatusCompleted = "completed"
	RequestStatusCancelled = "cancelled"
)

type ServiceRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	HotelID    string `gorm:"column:hotel_id;type:char(36);index" json:"hotel_id"`
	RoomNumber string `gorm:"column:room_number;size:50" json:"room_number"`

	// Display name resolved through the session language at submit time.
	ServiceName string `gorm:"column:service_name;size:150" json:"service_name"`

	Status string `gorm:"column:status;size:20;default:pending;index" json:"status"`

	IdempotencyKey string `gorm:"column:idempotency_key;size:64;uniqueIndex" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func IsValidRequestStatus(s string) bool {
	switch s {
	case RequestStatusPending, RequestStatusCompleted, RequestStatusCancelled:
		return true
	}
	return false
}
