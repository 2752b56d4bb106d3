package models

import "time"

// GlobalMarketItem is a platform-level market product. Hotels opt in via
// HotelMarketSetting; the guest panel sees activated items tagged as market.
type GlobalMarketItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:255" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `json:"price"`
	Category    string  `gorm:"size:100" json:"category"`
	Image       string  `gorm:"size:255" json:"image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type HotelMarketSetting struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	HotelID      string `gorm:"type:char(36);not null;index:idx_hotel_market,unique" json:"hotel_id"`
	MarketItemID uint   `gorm:"not null;index:idx_hotel_market,unique" json:"market_item_id"`
	Active       bool   `gorm:"default:true" json:"active"`

	MarketItem GlobalMarketItem `gorm:"foreignKey:MarketItemID" json:"marketItem,omitempty"`
}

// GlobalService is a platform-level concierge service (towel, cleaning, ...).
// Key is the translation lookup key, not a display string.
type GlobalService struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Key  string `gorm:"size:100;uniqueIndex" json:"key"`
	Icon string `gorm:"size:100" json:"icon"`

	CreatedAt time.Time `json:"created_at"`
}

type HotelServiceSetting struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	HotelID   string `gorm:"type:char(36);not null;index:idx_hotel_service,unique" json:"hotel_id"`
	ServiceID uint   `gorm:"not null;index:idx_hotel_service,unique" json:"service_id"`
	Active    bool   `gorm:"default:true" json:"active"`

	Service GlobalService `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}
