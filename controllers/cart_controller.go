package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roomservice/i18n"
	"roomservice/models"
	"roomservice/services"
	"roomservice/utils"
)

// Toast durations the client honors for the single-slot notification.
const (
	notifyShortMs = 2000
	notifyLongMs  = 3000
)

type CartController struct {
	sessions *services.SessionService
	orders   *services.OrderService
	catalog  *services.CatalogService
}

func NewCartController(sessions *services.SessionService, orders *services.OrderService, catalog *services.CatalogService) *CartController {
	return &CartController{sessions: sessions, orders: orders, catalog: catalog}
}

func notification(lang, key string, durationMs int) gin.H {
	return gin.H{"text": i18n.T(lang, key), "durationMs": durationMs}
}

// GetCart returns the session cart (GET .../cart).
func (cc *CartController) GetCart(c *gin.Context) {
	session, err := cc.sessions.Get(c.Request.Context(), c.GetHeader(sessionHeader))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "session not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": session.Cart, "total": session.CartTotal()})
}

// AddItem increments-or-appends a cart line (POST .../cart/items). The client
// only names the merged-menu id; name and price are resolved from the catalog
// so a tampered payload cannot change what gets ordered.
func (cc *CartController) AddItem(c *gin.Context) {
	sessionID := c.GetHeader(sessionHeader)
	session, err := cc.sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "session not found")
		return
	}

	var payload struct {
		MenuItemID uint `json:"menuItemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	item, err := cc.catalog.ResolveMenuItem(session.HotelID, payload.MenuItemID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "menu item not available")
		return
	}

	session, err = cc.sessions.AddToCart(c.Request.Context(), sessionID, models.CartLine{
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
	})
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "session not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart":         session.Cart,
		"total":        session.CartTotal(),
		"notification": notification(session.Language, "added_to_cart", notifyShortMs),
	})
}

// AdjustItem applies a quantity delta (PATCH .../cart/items/:menuItemId).
// Reaching zero removes the line.
func (cc *CartController) AdjustItem(c *gin.Context) {
	var payload struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	menuItemID, err := strconv.ParseUint(c.Param("menuItemId"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid menu item id")
		return
	}

	session, err := cc.sessions.AdjustQuantity(c.Request.Context(), c.GetHeader(sessionHeader), uint(menuItemID), payload.Delta)
	if err != nil {
		if errors.Is(err, services.ErrItemNotInCart) {
			utils.JSONError(c, http.StatusNotFound, "item not in cart")
			return
		}
		utils.JSONError(c, http.StatusNotFound, "session not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": session.Cart, "total": session.CartTotal()})
}

// Checkout submits the cart as an order (POST .../orders). On success the
// cart is cleared and the client returns to the home sub-view.
func (cc *CartController) Checkout(c *gin.Context) {
	sessionID := c.GetHeader(sessionHeader)
	session, err := cc.sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "session not found")
		return
	}

	var payload struct {
		ConfirmationCode string `json:"confirmationCode"`
		IdempotencyKey   string `json:"idempotencyKey"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	order, err := cc.orders.Checkout(session, payload.ConfirmationCode, payload.IdempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrConfirmationLen):
			utils.JSONError(c, http.StatusBadRequest, i18n.T(session.Language, "invalid_code"))
		case errors.Is(err, services.ErrCartEmpty):
			utils.JSONError(c, http.StatusBadRequest, "cart is empty")
		default:
			log.Printf("❌ Checkout failed for hotel %s room %s: %v", session.HotelID, session.RoomNumber, err)
			utils.JSONError(c, http.StatusInternalServerError, "checkout failed")
		}
		return
	}

	if _, err := cc.sessions.ClearCart(c.Request.Context(), sessionID); err != nil {
		log.Printf("⚠️ Cart clear after checkout failed: %v", err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"order":        order,
		"notification": notification(session.Language, "order_received", notifyShortMs),
	})
}

// RequestService files a concierge request (POST .../service-requests).
// Unlike checkout there is no confirmation-code gate.
func (cc *CartController) RequestService(c *gin.Context) {
	session, err := cc.sessions.Get(c.Request.Context(), c.GetHeader(sessionHeader))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "session not found")
		return
	}

	var payload struct {
		ServiceKey     string `json:"serviceKey" binding:"required"`
		IdempotencyKey string `json:"idempotencyKey"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	request, err := cc.orders.CreateServiceRequest(session, payload.ServiceKey, payload.IdempotencyKey)
	if err != nil {
		log.Printf("❌ Service request failed for hotel %s room %s: %v", session.HotelID, session.RoomNumber, err)
		utils.JSONError(c, http.StatusInternalServerError, "service request failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"request":      request,
		"notification": notification(session.Language, "request_received", notifyLongMs),
	})
}
