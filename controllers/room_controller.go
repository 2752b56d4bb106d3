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
	"roomservice/services"
	"roomservice/utils"
)

// ----------------------------------------------------
// 1. Get Rooms (GET /api/admin/rooms)
// ----------------------------------------------------

func GetRooms(c *gin.Context) {
	var rooms []models.Room
	config.DB.Where("hotel_id = ?", middleware.HotelID(c)).Order("room_number").Find(&rooms)

	c.JSON(http.StatusOK, rooms)
}

// ----------------------------------------------------
// 2. Create Room (POST /api/admin/rooms)
// ----------------------------------------------------

func CreateRoom(c *gin.Context) {
	var room models.Room

	if err := c.ShouldBindJSON(&room); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	room.HotelID = middleware.HotelID(c)
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Room Number is required."})
		return
	}

	qrPath, err := services.GenerateRoomQR(utils.EnvOrDefault("PUBLIC_BASE_URL", "http://localhost:3000"), room.HotelID, room.RoomNumber)
	if err != nil {
		log.Printf("⚠️ QR generation failed for room %s: %v", room.RoomNumber, err)
	} else {
		room.QRCodePath = qrPath
	}

	if result := config.DB.Create(&room); result.Error != nil {
		if strings.Contains(result.Error.Error(), "Duplicate entry") || strings.Contains(result.Error.Error(), "UNIQUE constraint failed") {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": fmt.Sprintf("Room Number '%s' already exists.", room.RoomNumber),
			})
			return
		}

		log.Printf("❌ DB ERROR: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, room)
}

// ----------------------------------------------------
// 3. Bulk Create Rooms (POST /api/admin/rooms/bulk)
// ----------------------------------------------------

type bulkRoomsPayload struct {
	From int `json:"from" binding:"required"`
	To   int `json:"to" binding:"required"`
}

// CreateRoomsBulk creates numbered rooms From..To inclusive, skipping
// numbers that already exist instead of failing the whole batch.
func CreateRoomsBulk(c *gin.Context) {
	var payload bulkRoomsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload"})
		return
	}
	if payload.From <= 0 || payload.To < payload.From || payload.To-payload.From >= 500 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid room number range."})
		return
	}

	hotelID := middleware.HotelID(c)
	baseURL := utils.EnvOrDefault("PUBLIC_BASE_URL", "http://localhost:3000")

	created := make([]models.Room, 0, payload.To-payload.From+1)
	skipped := 0
	for n := payload.From; n <= payload.To; n++ {
		room := models.Room{HotelID: hotelID, RoomNumber: fmt.Sprintf("%d", n)}

		if qrPath, err := services.GenerateRoomQR(baseURL, hotelID, room.RoomNumber); err == nil {
			room.QRCodePath = qrPath
		}

		if err := config.DB.Create(&room).Error; err != nil {
			skipped++
			continue
		}
		created = append(created, room)
	}

	c.JSON(http.StatusCreated, gin.H{"created": created, "skipped": skipped})
}

// ----------------------------------------------------
// 4. Delete Room (DELETE /api/admin/rooms/:id)
// ----------------------------------------------------

func DeleteRoom(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Where("id = ? AND hotel_id = ?", id, middleware.HotelID(c)).Delete(&models.Room{})
	if result.Error != nil {
		log.Printf("❌ DB Error during deletion (ID: %s): %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to delete room."})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": fmt.Sprintf("Room with ID %s not found.", id),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Room deleted successfully"})
}
