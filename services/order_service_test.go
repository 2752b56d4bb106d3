package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"roomservice/models"
	"roomservice/realtime"
)

func seedHotel(t *testing.T, db *gorm.DB) models.Hotel {
	t.Helper()
	hotel := models.Hotel{ID: "123e4567-e89b-12d3-a456-426614174000", Name: "Otel Deniz"}
	require.NoError(t, db.Create(&hotel).Error)
	return hotel
}

func testSession(hotelID string) *models.GuestSession {
	return &models.GuestSession{
		HotelID:    hotelID,
		RoomNumber: "12",
		Language:   "tr",
		Cart: []models.CartLine{
			{MenuItemID: 1, Name: "Kola", Price: 40, Quantity: 2},
			{MenuItemID: 2, Name: "Su", Price: 15, Quantity: 1},
		},
	}
}

func TestCheckoutSnapshotsCartAndTotal(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	svc := NewOrderService(db, realtime.NewMemoryBus())

	order, err := svc.Checkout(testSession(hotel.ID), "1234", "key-1")
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.InDelta(t, 95.0, order.Total, 0.001)
	assert.Equal(t, "12", order.RoomNumber)

	var lines []models.OrderLine
	require.NoError(t, json.Unmarshal(order.Items, &lines))
	require.Len(t, lines, 2)
	assert.Equal(t, "Kola", lines[0].Name)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCheckoutConfirmationCodeGate(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	svc := NewOrderService(db, realtime.NewMemoryBus())

	_, err := svc.Checkout(testSession(hotel.ID), "123", "key-1")
	assert.ErrorIs(t, err, ErrConfirmationLen)

	_, err = svc.Checkout(testSession(hotel.ID), "  12  ", "key-1")
	assert.ErrorIs(t, err, ErrConfirmationLen)
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	svc := NewOrderService(db, realtime.NewMemoryBus())

	session := testSession(hotel.ID)
	session.Cart = nil

	_, err := svc.Checkout(session, "1234", "key-1")
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestCheckoutIdempotency(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	svc := NewOrderService(db, realtime.NewMemoryBus())

	first, err := svc.Checkout(testSession(hotel.ID), "1234", "same-key")
	require.NoError(t, err)

	second, err := svc.Checkout(testSession(hotel.ID), "1234", "same-key")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCheckoutPublishesChange(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	bus := realtime.NewMemoryBus()
	svc := NewOrderService(db, bus)

	var got realtime.ChangeEvent
	_, err := bus.Subscribe(realtime.Subject(realtime.TableOrders, hotel.ID), func(_ string, data []byte) {
		require.NoError(t, json.Unmarshal(data, &got))
	})
	require.NoError(t, err)

	_, err = svc.Checkout(testSession(hotel.ID), "1234", "")
	require.NoError(t, err)

	assert.Equal(t, realtime.ActionInsert, got.Action)
	assert.Equal(t, hotel.ID, got.HotelID)
}

func TestOrderSnapshotImmuneToMenuEdits(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	svc := NewOrderService(db, realtime.NewMemoryBus())

	item := models.MenuItem{HotelID: hotel.ID, Name: "Kola", Price: 40, Type: models.ItemTypeFood}
	require.NoError(t, db.Create(&item).Error)

	session := &models.GuestSession{
		HotelID: hotel.ID, RoomNumber: "12", Language: "tr",
		Cart: []models.CartLine{{MenuItemID: item.ID, Name: item.Name, Price: item.Price, Quantity: 1}},
	}

	order, err := svc.Checkout(session, "1234", "")
	require.NoError(t, err)

	require.NoError(t, db.Model(&item).Updates(map[string]interface{}{"price": 90, "name": "Kola XL"}).Error)

	var stored models.Order
	require.NoError(t, db.First(&stored, order.ID).Error)

	var lines []models.OrderLine
	require.NoError(t, json.Unmarshal(stored.Items, &lines))
	assert.Equal(t, "Kola", lines[0].Name)
	assert.InDelta(t, 40.0, lines[0].Price, 0.001)
	assert.InDelta(t, 40.0, stored.Total, 0.001)
}

func TestServiceRequestResolvesDisplayName(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	svc := NewOrderService(db, realtime.NewMemoryBus())

	session := testSession(hotel.ID)

	request, err := svc.CreateServiceRequest(session, "towel", "")
	require.NoError(t, err)
	assert.Equal(t, "Ekstra Havlu", request.ServiceName)
	assert.Equal(t, models.RequestStatusPending, request.Status)

	unknown, err := svc.CreateServiceRequest(session, "xyz", "")
	require.NoError(t, err)
	assert.Equal(t, "xyz", unknown.ServiceName)
}

func TestUpdateOrderStatus(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	svc := NewOrderService(db, realtime.NewMemoryBus())

	order, err := svc.Checkout(testSession(hotel.ID), "1234", "")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateOrderStatus(hotel.ID, order.ID, models.OrderStatusPreparing))

	var stored models.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, models.OrderStatusPreparing, stored.Status)

	assert.ErrorIs(t, svc.UpdateOrderStatus(hotel.ID, order.ID, "burnt"), ErrInvalidStatus)
	assert.ErrorIs(t, svc.UpdateOrderStatus("other-hotel", order.ID, models.OrderStatusDelivered), gorm.ErrRecordNotFound)
}

func TestLiveFeedMergesAndSorts(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	svc := NewOrderService(db, realtime.NewMemoryBus())

	_, err := svc.Checkout(testSession(hotel.ID), "1234", "")
	require.NoError(t, err)
	_, err = svc.CreateServiceRequest(testSession(hotel.ID), "towel", "")
	require.NoError(t, err)

	rows, err := svc.LiveFeed(hotel.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	kinds := map[string]bool{}
	for _, row := range rows {
		kinds[row.Kind] = true
	}
	assert.True(t, kinds[FeedKindOrder])
	assert.True(t, kinds[FeedKindServiceRequest])

	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i-1].CreatedAt.Before(rows[i].CreatedAt))
	}
}

func TestRecentOrdersJoinsHotelName(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	other := models.Hotel{ID: "223e4567-e89b-12d3-a456-426614174000", Name: "Otel Güneş"}
	require.NoError(t, db.Create(&other).Error)

	svc := NewOrderService(db, realtime.NewMemoryBus())

	_, err := svc.Checkout(testSession(hotel.ID), "1234", "")
	require.NoError(t, err)
	otherSession := testSession(other.ID)
	_, err = svc.Checkout(otherSession, "1234", "")
	require.NoError(t, err)

	rows, err := svc.RecentOrders(20)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	names := []string{rows[0].HotelName, rows[1].HotelName}
	assert.Contains(t, names, "Otel Deniz")
	assert.Contains(t, names, "Otel Güneş")
}
