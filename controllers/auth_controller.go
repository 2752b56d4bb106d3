package controllers

import (
	"crypto/subtle"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"roomservice/middleware"
	"roomservice/services"
	"roomservice/utils"
)

const tokenTTL = 24 * time.Hour

type AuthController struct {
	hotels    *services.HotelService
	secret    string
	superUser string
	superPass string
}

func NewAuthController(hotels *services.HotelService, secret, superUser, superPass string) *AuthController {
	return &AuthController{hotels: hotels, secret: secret, superUser: superUser, superPass: superPass}
}

type loginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// HotelLogin authenticates a hotel dashboard user (POST /api/auth/hotel-login).
func (a *AuthController) HotelLogin(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "username and password are required")
		return
	}

	hotel, err := a.hotels.Authenticate(payload.Username, payload.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := middleware.GenerateToken(a.secret, middleware.RoleHotel, hotel.ID, tokenTTL)
	if err != nil {
		log.Printf("❌ Token generation failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "could not issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"hotel": gin.H{"id": hotel.ID, "name": hotel.Name},
	})
}

// SuperLogin authenticates the platform operator (POST /api/auth/super-login).
// Credentials come from the environment; there is no operator table.
func (a *AuthController) SuperLogin(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "username and password are required")
		return
	}

	if a.superUser == "" || a.superPass == "" {
		utils.JSONError(c, http.StatusServiceUnavailable, "operator login is not configured")
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(payload.Username), []byte(a.superUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(payload.Password), []byte(a.superPass)) == 1
	if !userOK || !passOK {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := middleware.GenerateToken(a.secret, middleware.RoleSuper, "", tokenTTL)
	if err != nil {
		log.Printf("❌ Token generation failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "could not issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
