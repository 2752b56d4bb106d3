package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"roomservice/config"
	"roomservice/middleware"
	"roomservice/models"
)

// ----------------------------------------------------
// 1. Get Menu Items (GET /api/admin/menu-items)
// ----------------------------------------------------

func GetMenuItems(c *gin.Context) {
	hotelID := middleware.HotelID(c)

	query := config.DB.Where("hotel_id = ?", hotelID)
	if itemType := c.Query("type"); itemType != "" {
		query = query.Where("type = ?", itemType)
	}

	var items []models.MenuItem
	if err := query.Order("id").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// ----------------------------------------------------
// 2. Create Menu Item (POST /api/admin/menu-items)
// ----------------------------------------------------

func CreateMenuItem(c *gin.Context) {
	var item models.MenuItem

	if err := c.ShouldBindJSON(&item); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	item.HotelID = middleware.HotelID(c)
	item.Name = strings.TrimSpace(item.Name)

	if item.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Name is required."})
		return
	}
	if item.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Price must be non-negative."})
		return
	}
	if item.Type != models.ItemTypeFood && item.Type != models.ItemTypeMarket {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": fmt.Sprintf("Type must be '%s' or '%s'.", models.ItemTypeFood, models.ItemTypeMarket),
		})
		return
	}

	if result := config.DB.Create(&item); result.Error != nil {
		log.Printf("❌ DB ERROR: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// ----------------------------------------------------
// 3. Update Menu Item (PATCH /api/admin/menu-items/:id)
// ----------------------------------------------------

func UpdateMenuItem(c *gin.Context) {
	id := c.Param("id")
	hotelID := middleware.HotelID(c)

	var updateData map[string]interface{}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload"})
		return
	}

	// protect identity and ownership fields
	delete(updateData, "id")
	delete(updateData, "hotel_id")
	delete(updateData, "hotelId")
	delete(updateData, "created_at")
	delete(updateData, "updated_at")
	delete(updateData, "deleted_at")

	if price, ok := updateData["price"].(float64); ok && price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Price must be non-negative."})
		return
	}

	result := config.DB.Model(&models.MenuItem{}).
		Where("id = ? AND hotel_id = ?", id, hotelID).
		Updates(updateData)
	if result.Error != nil {
		log.Printf("❌ Update Error for MenuItem %s: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Update failed"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Menu item not found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Menu item updated successfully"})
}

// ----------------------------------------------------
// 4. Delete Menu Item (DELETE /api/admin/menu-items/:id)
// ----------------------------------------------------

func DeleteMenuItem(c *gin.Context) {
	id := c.Param("id")
	hotelID := middleware.HotelID(c)

	result := config.DB.Where("id = ? AND hotel_id = ?", id, hotelID).Delete(&models.MenuItem{})
	if result.Error != nil {
		log.Printf("❌ DB Error during deletion (ID: %s): %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to delete menu item."})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": fmt.Sprintf("Menu item with ID %s not found.", id)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Menu item deleted successfully"})
}

// ----------------------------------------------------
// 5. Global market catalog (GET /api/admin/market-items)
// ----------------------------------------------------

// GetMarketCatalog lists the platform market catalog together with this
// hotel's activation state, for the toggle UI.
func GetMarketCatalog(c *gin.Context) {
	hotelID := middleware.HotelID(c)

	var items []models.GlobalMarketItem
	if err := config.DB.Order("id").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}

	var settings []models.HotelMarketSetting
	if err := config.DB.Where("hotel_id = ?", hotelID).Find(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}

	active := make(map[uint]bool, len(settings))
	for _, s := range settings {
		active[s.MarketItemID] = s.Active
	}

	type row struct {
		models.GlobalMarketItem
		Active bool `json:"active"`
	}
	rows := make([]row, 0, len(items))
	for _, item := range items {
		rows = append(rows, row{GlobalMarketItem: item, Active: active[item.ID]})
	}

	c.JSON(http.StatusOK, rows)
}
