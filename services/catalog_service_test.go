package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"roomservice/models"
)

func seedCatalog(t *testing.T, db *gorm.DB) models.Hotel {
	t.Helper()
	hotel := seedHotel(t, db)

	food := []models.MenuItem{
		{HotelID: hotel.ID, Name: "Köfte", Price: 220, Type: models.ItemTypeFood, Category: "mains"},
		{HotelID: hotel.ID, Name: "Mercimek Çorbası", Price: 90, Type: models.ItemTypeFood, Category: "soups"},
	}
	require.NoError(t, db.Create(&food).Error)

	market := []models.GlobalMarketItem{
		{Name: "Kola", Price: 40, Category: "drinks"},
		{Name: "Cips", Price: 35, Category: "snacks"},
	}
	require.NoError(t, db.Create(&market).Error)
	require.NoError(t, db.Create(&models.HotelMarketSetting{HotelID: hotel.ID, MarketItemID: market[0].ID, Active: true}).Error)
	require.NoError(t, db.Create(&models.HotelMarketSetting{HotelID: hotel.ID, MarketItemID: market[1].ID, Active: false}).Error)

	towel := models.GlobalService{Key: "towel", Icon: "towel"}
	cleaning := models.GlobalService{Key: "cleaning", Icon: "broom"}
	require.NoError(t, db.Create(&towel).Error)
	require.NoError(t, db.Create(&cleaning).Error)
	require.NoError(t, db.Create(&models.HotelServiceSetting{HotelID: hotel.ID, ServiceID: towel.ID, Active: true}).Error)
	require.NoError(t, db.Create(&models.HotelServiceSetting{HotelID: hotel.ID, ServiceID: cleaning.ID, Active: false}).Error)

	return hotel
}

func TestLoadGuestDataMergesFoodAndMarket(t *testing.T) {
	db := newTestDB(t)
	hotel := seedCatalog(t, db)
	svc := NewCatalogService(db)

	data, err := svc.LoadGuestData(hotel.ID, "tr")
	require.NoError(t, err)

	require.NotNil(t, data.Hotel)
	assert.Equal(t, "Otel Deniz", data.Hotel.Name)

	// two food items plus the single activated market item
	require.Len(t, data.MenuItems, 3)

	market := FilterByType(data.MenuItems, models.ItemTypeMarket)
	require.Len(t, market, 1)
	assert.Equal(t, "Kola", market[0].Name)
	assert.Equal(t, models.ItemTypeMarket, market[0].Type)

	food := FilterByType(data.MenuItems, models.ItemTypeFood)
	assert.Len(t, food, 2)
}

// menu_items and global_market_items auto-increment independently, so the
// first food item and the first market item both carry raw id 1. The merged
// list must still present unique ids: cart lines key on them.
func TestLoadGuestDataMergedIDsAreUnique(t *testing.T) {
	db := newTestDB(t)
	hotel := seedCatalog(t, db)
	svc := NewCatalogService(db)

	var firstFood models.MenuItem
	require.NoError(t, db.Where("hotel_id = ?", hotel.ID).Order("id").First(&firstFood).Error)
	var firstMarket models.GlobalMarketItem
	require.NoError(t, db.Order("id").First(&firstMarket).Error)
	require.Equal(t, firstFood.ID, firstMarket.ID)

	data, err := svc.LoadGuestData(hotel.ID, "tr")
	require.NoError(t, err)

	seen := make(map[uint]bool)
	for _, item := range data.MenuItems {
		assert.False(t, seen[item.ID], "merged menu id %d appears twice", item.ID)
		seen[item.ID] = true
	}

	market := FilterByType(data.MenuItems, models.ItemTypeMarket)
	require.Len(t, market, 1)
	assert.Equal(t, models.MarketMenuItemID(firstMarket.ID), market[0].ID)
}

func TestResolveMenuItemFood(t *testing.T) {
	db := newTestDB(t)
	hotel := seedCatalog(t, db)
	svc := NewCatalogService(db)

	var kofte models.MenuItem
	require.NoError(t, db.Where("hotel_id = ? AND name = ?", hotel.ID, "Köfte").First(&kofte).Error)

	item, err := svc.ResolveMenuItem(hotel.ID, kofte.ID)
	require.NoError(t, err)
	assert.Equal(t, "Köfte", item.Name)
	assert.Equal(t, 220.0, item.Price)
	assert.Equal(t, models.ItemTypeFood, item.Type)
}

func TestResolveMenuItemActivatedMarket(t *testing.T) {
	db := newTestDB(t)
	hotel := seedCatalog(t, db)
	svc := NewCatalogService(db)

	var kola models.GlobalMarketItem
	require.NoError(t, db.Where("name = ?", "Kola").First(&kola).Error)

	item, err := svc.ResolveMenuItem(hotel.ID, models.MarketMenuItemID(kola.ID))
	require.NoError(t, err)
	assert.Equal(t, "Kola", item.Name)
	assert.Equal(t, 40.0, item.Price)
	assert.Equal(t, models.ItemTypeMarket, item.Type)
	assert.Equal(t, models.MarketMenuItemID(kola.ID), item.ID)
}

func TestResolveMenuItemRejectsInactiveMarket(t *testing.T) {
	db := newTestDB(t)
	hotel := seedCatalog(t, db)
	svc := NewCatalogService(db)

	// Cips is seeded with an inactive setting
	var cips models.GlobalMarketItem
	require.NoError(t, db.Where("name = ?", "Cips").First(&cips).Error)

	_, err := svc.ResolveMenuItem(hotel.ID, models.MarketMenuItemID(cips.ID))
	assert.ErrorIs(t, err, ErrItemUnavailable)
}

func TestResolveMenuItemRejectsOtherHotel(t *testing.T) {
	db := newTestDB(t)
	hotel := seedCatalog(t, db)
	svc := NewCatalogService(db)

	var kofte models.MenuItem
	require.NoError(t, db.Where("hotel_id = ? AND name = ?", hotel.ID, "Köfte").First(&kofte).Error)

	_, err := svc.ResolveMenuItem("11111111-2222-3333-4444-555555555555", kofte.ID)
	assert.ErrorIs(t, err, ErrItemUnavailable)
}

func TestLoadGuestDataActiveServicesOnly(t *testing.T) {
	db := newTestDB(t)
	hotel := seedCatalog(t, db)
	svc := NewCatalogService(db)

	data, err := svc.LoadGuestData(hotel.ID, "tr")
	require.NoError(t, err)

	require.Len(t, data.Services, 1)
	assert.Equal(t, "towel", data.Services[0].Key)
	assert.Equal(t, "Ekstra Havlu", data.Services[0].DisplayName)
}

func TestLoadGuestDataUnknownHotelReturnsPartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	data, err := svc.LoadGuestData("no-such-hotel", "tr")
	require.Error(t, err)
	assert.Nil(t, data.Hotel)
	assert.Empty(t, data.MenuItems)
}

func TestFilterByTypeIgnoresInsertionOrder(t *testing.T) {
	items := []models.MenuItem{
		{Name: "Cips", Type: models.ItemTypeMarket},
		{Name: "Köfte", Type: models.ItemTypeFood},
		{Name: "Kola", Type: models.ItemTypeMarket},
	}

	market := FilterByType(items, models.ItemTypeMarket)
	require.Len(t, market, 2)
	assert.Equal(t, "Cips", market[0].Name)
	assert.Equal(t, "Kola", market[1].Name)
}

func TestBuildSystemPromptContainsHotelAndMenu(t *testing.T) {
	db := newTestDB(t)
	hotel := seedCatalog(t, db)
	require.NoError(t, db.Model(&models.Hotel{}).Where("id = ?", hotel.ID).Updates(map[string]interface{}{
		"wifi_name":       "OtelDeniz",
		"wifi_password":   "deniz1234",
		"checkout_time":   "12:00",
		"reception_phone": "+90 555 000 0000",
	}).Error)

	svc := NewCatalogService(db)
	data, err := svc.LoadGuestData(hotel.ID, "tr")
	require.NoError(t, err)

	prompt := BuildSystemPrompt(data, "tr")
	assert.Contains(t, prompt, "Otel Deniz")
	assert.Contains(t, prompt, "OtelDeniz")
	assert.Contains(t, prompt, "12:00")
	assert.Contains(t, prompt, "Köfte")
	assert.Contains(t, prompt, "Ekstra Havlu")
}
