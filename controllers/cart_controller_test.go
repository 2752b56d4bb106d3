package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"roomservice/config"
	"roomservice/models"
	"roomservice/realtime"
	"roomservice/services"
)

const testHotelID = "3f2b1a9c-0d4e-4f6a-8b7c-1d2e3f4a5b6c"

type guestEnv struct {
	router   *gin.Engine
	db       *gorm.DB
	sessions *services.SessionService

	foodID   uint // hotel-owned food item, price 40
	marketID uint // activated market item in the merged-menu id range, price 40
}

func newGuestEnv(t *testing.T) *guestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.AutoMigrate(db))
	require.NoError(t, db.Create(&models.Hotel{ID: testHotelID, Name: "Test Otel"}).Error)

	food := models.MenuItem{HotelID: testHotelID, Name: "Tost", Price: 40, Type: models.ItemTypeFood, IsAvailable: true}
	require.NoError(t, db.Create(&food).Error)

	kola := models.GlobalMarketItem{Name: "Kola", Price: 40, Category: "drinks"}
	require.NoError(t, db.Create(&kola).Error)
	require.NoError(t, db.Create(&models.HotelMarketSetting{HotelID: testHotelID, MarketItemID: kola.ID, Active: true}).Error)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessions := services.NewSessionService(client, time.Hour)
	orders := services.NewOrderService(db, realtime.NewMemoryBus())
	catalog := services.NewCatalogService(db)

	cc := NewCartController(sessions, orders, catalog)

	r := gin.New()
	guest := r.Group("/api/guest/:hotelId/:roomId")
	guest.GET("/cart", cc.GetCart)
	guest.POST("/cart/items", cc.AddItem)
	guest.PATCH("/cart/items/:menuItemId", cc.AdjustItem)
	guest.POST("/orders", cc.Checkout)
	guest.POST("/service-requests", cc.RequestService)

	return &guestEnv{
		router:   r,
		db:       db,
		sessions: sessions,
		foodID:   food.ID,
		marketID: models.MarketMenuItemID(kola.ID),
	}
}

func (env *guestEnv) startSession(t *testing.T) string {
	t.Helper()
	id, _, err := env.sessions.Create(t.Context(), testHotelID, "101")
	require.NoError(t, err)
	return id
}

func (env *guestEnv) do(t *testing.T, sessionID, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	url := fmt.Sprintf("/api/guest/%s/101%s", testHotelID, path)
	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestAddItemAndGetCart(t *testing.T) {
	env := newGuestEnv(t)
	sid := env.startSession(t)

	w := env.do(t, sid, http.MethodPost, "/cart/items", gin.H{"menuItemId": env.foodID})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "notification")

	w = env.do(t, sid, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Cart  []models.CartLine `json:"cart"`
		Total float64           `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Cart, 1)
	assert.Equal(t, "Tost", resp.Cart[0].Name)
	assert.Equal(t, 1, resp.Cart[0].Quantity)
	assert.Equal(t, 40.0, resp.Total)
}

// The payload only names the item; a client-supplied name or price is noise
// and must not make it into the cart.
func TestAddItemIgnoresClientNameAndPrice(t *testing.T) {
	env := newGuestEnv(t)
	sid := env.startSession(t)

	w := env.do(t, sid, http.MethodPost, "/cart/items", gin.H{"menuItemId": env.foodID, "name": "Bedava", "price": 0.01})
	require.Equal(t, http.StatusOK, w.Code)

	session, err := env.sessions.Get(t.Context(), sid)
	require.NoError(t, err)
	require.Len(t, session.Cart, 1)
	assert.Equal(t, "Tost", session.Cart[0].Name)
	assert.Equal(t, 40.0, session.Cart[0].Price)
}

func TestAddItemUnknownID(t *testing.T) {
	env := newGuestEnv(t)
	sid := env.startSession(t)

	w := env.do(t, sid, http.MethodPost, "/cart/items", gin.H{"menuItemId": 9999})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// The first food item and the first market item share raw id 1 in their own
// tables; adding both must produce two distinct cart lines.
func TestAddFoodAndMarketWithSameRawID(t *testing.T) {
	env := newGuestEnv(t)
	sid := env.startSession(t)

	require.Equal(t, env.foodID, models.GlobalMarketItemID(env.marketID))

	env.do(t, sid, http.MethodPost, "/cart/items", gin.H{"menuItemId": env.foodID})
	w := env.do(t, sid, http.MethodPost, "/cart/items", gin.H{"menuItemId": env.marketID})
	require.Equal(t, http.StatusOK, w.Code)

	session, err := env.sessions.Get(t.Context(), sid)
	require.NoError(t, err)
	require.Len(t, session.Cart, 2)
	assert.NotEqual(t, session.Cart[0].MenuItemID, session.Cart[1].MenuItemID)
	assert.Equal(t, "Tost", session.Cart[0].Name)
	assert.Equal(t, "Kola", session.Cart[1].Name)
	assert.Equal(t, 80.0, session.CartTotal())
}

func TestAdjustItemToZeroRemovesLine(t *testing.T) {
	env := newGuestEnv(t)
	sid := env.startSession(t)

	env.do(t, sid, http.MethodPost, "/cart/items", gin.H{"menuItemId": env.foodID})

	w := env.do(t, sid, http.MethodPatch, fmt.Sprintf("/cart/items/%d", env.foodID), gin.H{"delta": -1})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Cart []models.CartLine `json:"cart"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Cart)
}

func TestCheckoutRejectsShortCode(t *testing.T) {
	env := newGuestEnv(t)
	sid := env.startSession(t)

	env.do(t, sid, http.MethodPost, "/cart/items", gin.H{"menuItemId": env.foodID})

	w := env.do(t, sid, http.MethodPost, "/orders", gin.H{"confirmationCode": "123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// nothing persisted
	var count int64
	env.db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestCheckoutPersistsOrderAndClearsCart(t *testing.T) {
	env := newGuestEnv(t)
	sid := env.startSession(t)

	env.do(t, sid, http.MethodPost, "/cart/items", gin.H{"menuItemId": env.foodID})
	env.do(t, sid, http.MethodPost, "/cart/items", gin.H{"menuItemId": env.foodID})

	w := env.do(t, sid, http.MethodPost, "/orders", gin.H{"confirmationCode": "1234"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Siparişiniz alındı")

	var order models.Order
	require.NoError(t, env.db.First(&order).Error)
	assert.Equal(t, testHotelID, order.HotelID)
	assert.Equal(t, "101", order.RoomNumber)
	assert.Equal(t, 80.0, order.Total)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	session, err := env.sessions.Get(t.Context(), sid)
	require.NoError(t, err)
	assert.Empty(t, session.Cart)
}

func TestCheckoutWithoutSession(t *testing.T) {
	env := newGuestEnv(t)

	w := env.do(t, "", http.MethodPost, "/orders", gin.H{"confirmationCode": "1234"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequestServiceStoresResolvedName(t *testing.T) {
	env := newGuestEnv(t)
	sid := env.startSession(t)

	w := env.do(t, sid, http.MethodPost, "/service-requests", gin.H{"serviceKey": "towel"})
	require.Equal(t, http.StatusCreated, w.Code)

	var request models.ServiceRequest
	require.NoError(t, env.db.First(&request).Error)
	assert.Equal(t, "Ekstra Havlu", request.ServiceName)
	assert.Equal(t, models.RequestStatusPending, request.Status)
}
