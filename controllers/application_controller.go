package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"roomservice/config"
	"roomservice/models"
	"roomservice/utils"
)

// CreateApplication records a signup from the public landing form
// (POST /api/applications). No auth; review happens out of band.
func CreateApplication(c *gin.Context) {
	var application models.HotelApplication
	if err := c.ShouldBindJSON(&application); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	application.HotelName = strings.TrimSpace(application.HotelName)
	application.ContactName = strings.TrimSpace(application.ContactName)
	application.Email = strings.TrimSpace(application.Email)
	application.Phone = strings.TrimSpace(application.Phone)
	if application.HotelName == "" || application.ContactName == "" {
		utils.JSONError(c, http.StatusBadRequest, "hotelName and contactName are required")
		return
	}
	if application.Email == "" && application.Phone == "" {
		utils.JSONError(c, http.StatusBadRequest, "an email or phone number is required")
		return
	}

	application.Status = "pending"
	if err := config.DB.Create(&application).Error; err != nil {
		log.Printf("❌ DB ERROR: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "database error")
		return
	}

	c.JSON(http.StatusCreated, application)
}
