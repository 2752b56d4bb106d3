package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"roomservice/services"
	"roomservice/utils"
)

// UploadImage stores a base64 image for menu items or hotel branding
// (POST /api/admin/uploads). Returns the path to serve under /uploads.
func UploadImage(c *gin.Context) {
	var payload struct {
		Image  string `json:"image" binding:"required"`
		Folder string `json:"folder"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "image is required")
		return
	}

	folder := payload.Folder
	switch folder {
	case "", "menu":
		folder = "menu"
	case "hotel":
	default:
		utils.JSONError(c, http.StatusBadRequest, "folder must be 'menu' or 'hotel'")
		return
	}

	path, err := services.SaveBase64Image(payload.Image, folder)
	if err != nil {
		log.Printf("❌ Image save failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "could not save image")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"path": path})
}
