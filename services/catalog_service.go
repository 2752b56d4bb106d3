package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"roomservice/i18n"
	"roomservice/models"
)

// ErrItemUnavailable covers every way a cart add can name a bad item: unknown
// id, another hotel's item, a deactivated market item, an unavailable dish.
var ErrItemUnavailable = errors.New("menu item unavailable")

// ActiveService is a hotel-activated concierge service, with the display
// name already resolved for the requested language.
type ActiveService struct {
	ID          uint   `json:"id"`
	Key         string `json:"key"`
	Icon        string `json:"icon"`
	DisplayName string `json:"displayName"`
}

// GuestData is everything the guest panel needs after scanning a room QR.
// Fields are filled in load order; a mid-load failure leaves earlier fields
// populated (partial data survives, the client shows what it got).
type GuestData struct {
	Hotel     *models.Hotel     `json:"hotel,omitempty"`
	MenuItems []models.MenuItem `json:"menuItems"`
	Services  []ActiveService   `json:"services"`
}

type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// LoadGuestData fetches hotel, food menu, activated market items and active
// services. It stops at the first failure and returns the partial result
// alongside the error; there is no retry.
func (s *CatalogService) LoadGuestData(hotelID, lang string) (GuestData, error) {
	data := GuestData{
		MenuItems: []models.MenuItem{},
		Services:  []ActiveService{},
	}

	var hotel models.Hotel
	if err := s.db.First(&hotel, "id = ?", hotelID).Error; err != nil {
		return data, fmt.Errorf("load hotel: %w", err)
	}
	data.Hotel = &hotel

	food, err := s.FoodItems(hotelID)
	if err != nil {
		return data, err
	}
	data.MenuItems = append(data.MenuItems, food...)

	market, err := s.ActivatedMarketItems(hotelID)
	if err != nil {
		return data, err
	}
	data.MenuItems = append(data.MenuItems, market...)

	services, err := s.ActiveServices(hotelID, lang)
	if err != nil {
		return data, err
	}
	data.Services = services

	return data, nil
}

// FoodItems returns the hotel's own food-type menu items.
func (s *CatalogService) FoodItems(hotelID string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.db.
		Where("hotel_id = ? AND type = ?", hotelID, models.ItemTypeFood).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("load food items: %w", err)
	}
	return items, nil
}

// ActivatedMarketItems resolves the hotel's activated global market items
// and tags them as market-type menu items on arrival.
func (s *CatalogService) ActivatedMarketItems(hotelID string) ([]models.MenuItem, error) {
	var settings []models.HotelMarketSetting
	err := s.db.
		Preload("MarketItem").
		Where("hotel_id = ? AND active = ?", hotelID, true).
		Find(&settings).Error
	if err != nil {
		return nil, fmt.Errorf("load market settings: %w", err)
	}

	items := make([]models.MenuItem, 0, len(settings))
	for _, setting := range settings {
		items = append(items, marketMenuItem(hotelID, setting.MarketItem))
	}
	return items, nil
}

// marketMenuItem converts a global market item into a merged-menu entry. The
// id is shifted into the market range so it cannot collide with the hotel's
// own menu_items ids; cart lines key on the shifted id.
func marketMenuItem(hotelID string, src models.GlobalMarketItem) models.MenuItem {
	return models.MenuItem{
		Model:       gorm.Model{ID: models.MarketMenuItemID(src.ID)},
		HotelID:     hotelID,
		Name:        src.Name,
		Description: src.Description,
		Price:       src.Price,
		Category:    src.Category,
		Type:        models.ItemTypeMarket,
		Image:       src.Image,
		IsAvailable: true,
	}
}

// ResolveMenuItem looks a merged-menu id up against the catalog: market-range
// ids against the hotel's activated global items, the rest against the
// hotel's own available menu items. Cart lines always take name and price
// from here, never from the client.
func (s *CatalogService) ResolveMenuItem(hotelID string, id uint) (models.MenuItem, error) {
	if models.IsMarketMenuItemID(id) {
		var setting models.HotelMarketSetting
		err := s.db.
			Preload("MarketItem").
			Where("hotel_id = ? AND market_item_id = ? AND active = ?", hotelID, models.GlobalMarketItemID(id), true).
			First(&setting).Error
		if err != nil {
			return models.MenuItem{}, ErrItemUnavailable
		}
		return marketMenuItem(hotelID, setting.MarketItem), nil
	}

	var item models.MenuItem
	err := s.db.
		Where("id = ? AND hotel_id = ? AND is_available = ?", id, hotelID, true).
		First(&item).Error
	if err != nil {
		return models.MenuItem{}, ErrItemUnavailable
	}
	return item, nil
}

// ActiveServices resolves the hotel's activated global services with
// language-resolved display names (raw key when untranslated).
func (s *CatalogService) ActiveServices(hotelID, lang string) ([]ActiveService, error) {
	var settings []models.HotelServiceSetting
	err := s.db.
		Preload("Service").
		Where("hotel_id = ? AND active = ?", hotelID, true).
		Find(&settings).Error
	if err != nil {
		return nil, fmt.Errorf("load service settings: %w", err)
	}

	services := make([]ActiveService, 0, len(settings))
	for _, setting := range settings {
		services = append(services, ActiveService{
			ID:          setting.Service.ID,
			Key:         setting.Service.Key,
			Icon:        setting.Service.Icon,
			DisplayName: i18n.ServiceName(lang, setting.Service.Key),
		})
	}
	return services, nil
}

// FilterByType returns the items whose type matches, preserving order.
// Insertion order of the two source lists does not matter to the result set.
func FilterByType(items []models.MenuItem, itemType string) []models.MenuItem {
	filtered := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if item.Type == itemType {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
