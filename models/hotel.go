package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Hotel struct {
	// UUID primary key; the id doubles as the routing token in guest QR links.
	ID string `gorm:"type:char(36);primaryKey" json:"id"`

	Name   string `gorm:"size:255" json:"name"`
	Logo   string `gorm:"size:255" json:"logo,omitempty"`
	Banner string `gorm:"size:255" json:"banner,omitempty"`

	WifiName     string `gorm:"size:100" json:"wifiName,omitempty"`
	WifiPassword string `gorm:"size:100" json:"wifiPassword,omitempty"`
	CheckoutTime string `gorm:"size:20" json:"checkoutTime,omitempty"`

	Phone          string `gorm:"size:50" json:"phone,omitempty"`
	WhatsappPhone  string `gorm:"size:50" json:"whatsappPhone,omitempty"`
	ReceptionPhone string `gorm:"size:50" json:"receptionPhone,omitempty"`

	// Optional external links (taxi, tours, ...) kept as a free-form JSON object.
	ExternalLinks datatypes.JSON `json:"externalLinks,omitempty"`

	// Dashboard login credentials. Password is a bcrypt hash, never serialized.
	Username string `gorm:"size:150;index" json:"username,omitempty"`
	Password string `gorm:"size:255" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
