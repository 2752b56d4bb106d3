package models

import (
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model

	HotelID    string `json:"hotelId" gorm:"column:hotel_id;type:char(36);uniqueIndex:idx_hotel_room,priority:1"`
	RoomNumber string `json:"roomNumber" gorm:"column:room_number;type:varchar(50);uniqueIndex:idx_hotel_room,priority:2"`

	// Public path of the generated QR image under /uploads.
	QRCodePath string `json:"qrCodePath" gorm:"column:qr_code_path;size:255"`

	Hotel Hotel `gorm:"foreignKey:HotelID;references:ID" json:"-"`
}
