package models

import (
	"gorm.io/gorm"
)

// Menu item types. Market items may also originate from the global catalog
// via HotelMarketSetting; those arrive tagged ItemTypeMarket when loaded.
const (
	ItemTypeFood   = "food"
	ItemTypeMarket = "market"
)

// MarketItemIDBase shifts global market items into their own id range when
// they surface in the merged guest menu. menu_items and global_market_items
// have independent auto-increment sequences, so without the shift a hotel's
// food item and an activated market item could carry the same id — and cart
// lines key on exactly this id.
const MarketItemIDBase uint = 1 << 20

// MarketMenuItemID maps a global market item id into the merged-menu range.
func MarketMenuItemID(globalID uint) uint { return MarketItemIDBase + globalID }

// IsMarketMenuItemID reports whether a merged-menu id names a market item.
func IsMarketMenuItemID(id uint) bool { return id >= MarketItemIDBase }

// GlobalMarketItemID recovers the global catalog id from a merged-menu id.
func GlobalMarketItemID(menuItemID uint) uint { return menuItemID - MarketItemIDBase }

type MenuItem struct {
	gorm.Model

	HotelID     string  `json:"hotelId" gorm:"column:hotel_id;type:char(36);index"`
	Name        string  `json:"name" gorm:"size:255"`
	Description string  `json:"description" gorm:"type:text"`
	Price       float64 `json:"price"`
	Category    string  `json:"category" gorm:"size:100"`
	Type        string  `json:"type" gorm:"size:20;index"` // food | market
	Image       string  `json:"image" gorm:"size:255"`
	IsPopular   bool    `json:"isPopular"`
	IsAvailable bool    `json:"isAvailable" gorm:"default:true"`
}
