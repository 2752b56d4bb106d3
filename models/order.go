package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// OrderLine is one denormalized line of an order. Lines are copied from the
// cart at submit time, so later menu edits never change historical orders.
type OrderLine struct {
	MenuItemID uint    `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`

	HotelID    string `gorm:"column:hotel_id;type:char(36);index" json:"hotel_id"`
	RoomNumber string `gorm:"column:room_number;size:50" json:"room_number"`

	// Snapshot of the cart as []OrderLine.
	Items datatypes.JSON `gorm:"column:items" json:"items"`

	Total  float64 `gorm:"column:total" json:"total"`
	Status string  `gorm:"column:status;size:20;default:pending;index" json:"status"`

	// Client-generated token: a double submit with the same key returns the
	// already-created order instead of a duplicate.
	IdempotencyKey string `gorm:"column:idempotency_key;size:64;uniqueIndex" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Hotel Hotel `gorm:"foreignKey:HotelID;references:ID" json:"-"`
}

func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
