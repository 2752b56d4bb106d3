package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"roomservice/config"
	"roomservice/models"
	"roomservice/services"
	"roomservice/utils"
)

// SuperController is the platform operator surface: hotel lifecycle, the
// cross-hotel order feed and the signup application queue.
type SuperController struct {
	hotels *services.HotelService
	orders *services.OrderService
}

func NewSuperController(hotels *services.HotelService, orders *services.OrderService) *SuperController {
	return &SuperController{hotels: hotels, orders: orders}
}

func (sc *SuperController) GetHotels(c *gin.Context) {
	hotels, err := sc.hotels.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load hotels")
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func (sc *SuperController) GetHotel(c *gin.Context) {
	hotel, err := sc.hotels.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "hotel not found")
		return
	}
	c.JSON(http.StatusOK, hotel)
}

func (sc *SuperController) CreateHotel(c *gin.Context) {
	var hotel models.Hotel
	if err := c.ShouldBindJSON(&hotel); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	hotel.Name = strings.TrimSpace(hotel.Name)
	hotel.Username = strings.TrimSpace(hotel.Username)
	if hotel.Name == "" || hotel.Username == "" || hotel.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "name, username and password are required")
		return
	}

	if err := sc.hotels.Create(&hotel); err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			utils.JSONError(c, http.StatusConflict, "username already in use")
			return
		}
		log.Printf("❌ DB ERROR: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "database error")
		return
	}

	c.JSON(http.StatusCreated, hotel)
}

func (sc *SuperController) UpdateHotel(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := sc.hotels.Update(c.Param("id"), fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "hotel not found")
			return
		}
		log.Printf("❌ Update Error for Hotel %s: %v", c.Param("id"), err)
		utils.JSONError(c, http.StatusInternalServerError, "update failed")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": c.Param("id")})
}

func (sc *SuperController) DeleteHotel(c *gin.Context) {
	if err := sc.hotels.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "hotel not found")
			return
		}
		log.Printf("❌ DB Error during deletion (ID: %s): %v", c.Param("id"), err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete hotel")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Hotel deleted successfully"})
}

// GetRecentOrders is the platform-wide order widget: the 20 most recent
// orders across every hotel, each row carrying the hotel name.
func (sc *SuperController) GetRecentOrders(c *gin.Context) {
	rows, err := sc.orders.RecentOrders(20)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load recent orders")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetApplications lists signup applications, newest first.
func (sc *SuperController) GetApplications(c *gin.Context) {
	var applications []models.HotelApplication
	if err := config.DB.Order("created_at DESC").Find(&applications).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "database error")
		return
	}
	c.JSON(http.StatusOK, applications)
}
