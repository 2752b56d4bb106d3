package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"roomservice/middleware"
	"roomservice/services"
	"roomservice/utils"
)

// AdminController is the hotel dashboard surface: live operations feed,
// order and service-request status handling, settings and catalog toggles.
// Everything is scoped to the hotel id carried by the JWT.
type AdminController struct {
	orders *services.OrderService
	hotels *services.HotelService
}

func NewAdminController(orders *services.OrderService, hotels *services.HotelService) *AdminController {
	return &AdminController{orders: orders, hotels: hotels}
}

func (ac *AdminController) GetOrders(c *gin.Context) {
	orders, err := ac.orders.ListOrders(middleware.HotelID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (ac *AdminController) GetServiceRequests(c *gin.Context) {
	requests, err := ac.orders.ListServiceRequests(middleware.HotelID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load service requests")
		return
	}
	c.JSON(http.StatusOK, requests)
}

// GetLiveFeed returns the merged orders + service-requests table, newest
// first, each row tagged with its kind.
func (ac *AdminController) GetLiveFeed(c *gin.Context) {
	rows, err := ac.orders.LiveFeed(middleware.HotelID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load live feed")
		return
	}
	c.JSON(http.StatusOK, rows)
}

type statusPayload struct {
	Status string `json:"status" binding:"required"`
}

func (ac *AdminController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid order id")
		return
	}

	var payload statusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}

	err = ac.orders.UpdateOrderStatus(middleware.HotelID(c), uint(id), payload.Status)
	switch {
	case errors.Is(err, services.ErrInvalidStatus):
		utils.JSONError(c, http.StatusBadRequest, "invalid status")
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.JSONError(c, http.StatusNotFound, "order not found")
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "update failed")
	default:
		utils.JSONSuccess(c, http.StatusOK, gin.H{"status": payload.Status})
	}
}

func (ac *AdminController) UpdateRequestStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request id")
		return
	}

	var payload statusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}

	err = ac.orders.UpdateRequestStatus(middleware.HotelID(c), uint(id), payload.Status)
	switch {
	case errors.Is(err, services.ErrInvalidStatus):
		utils.JSONError(c, http.StatusBadRequest, "invalid status")
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.JSONError(c, http.StatusNotFound, "service request not found")
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "update failed")
	default:
		utils.JSONSuccess(c, http.StatusOK, gin.H{"status": payload.Status})
	}
}

// GetSettings returns the hotel's own record (GET /api/admin/settings).
func (ac *AdminController) GetSettings(c *gin.Context) {
	hotel, err := ac.hotels.GetByID(middleware.HotelID(c))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "hotel not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotel": hotel})
}

// UpdateSettings edits the hotel's guest-facing attributes (PUT /api/admin/settings).
func (ac *AdminController) UpdateSettings(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	// the dashboard may not reassign its own login or identity
	delete(fields, "username")

	if err := ac.hotels.Update(middleware.HotelID(c), fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "hotel not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "update failed")
		return
	}

	hotel, err := ac.hotels.GetByID(middleware.HotelID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "reload failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotel": hotel})
}

type togglePayload struct {
	Active *bool `json:"active" binding:"required"`
}

// ToggleMarketItem opts a global market item in or out for this hotel.
func (ac *AdminController) ToggleMarketItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid market item id")
		return
	}

	var payload togglePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "active is required")
		return
	}

	if err := ac.hotels.SetMarketItemActive(middleware.HotelID(c), uint(id), *payload.Active); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "toggle failed")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"active": *payload.Active})
}

// ToggleService opts a global service in or out for this hotel.
func (ac *AdminController) ToggleService(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid service id")
		return
	}

	var payload togglePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "active is required")
		return
	}

	if err := ac.hotels.SetServiceActive(middleware.HotelID(c), uint(id), *payload.Active); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "toggle failed")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"active": *payload.Active})
}
