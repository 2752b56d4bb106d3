package models

import "time"

// HotelApplication is a prospective hotel's signup from the public landing
// form. Review happens out of band; nothing here advances Status.
type HotelApplication struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	HotelName   string `gorm:"size:255" json:"hotelName"`
	ContactName string `gorm:"size:255" json:"contactName"`
	Email       string `gorm:"size:150" json:"email"`
	Phone       string `gorm:"size:50" json:"phone"`
	Status      string `gorm:"size:20;default:pending" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
