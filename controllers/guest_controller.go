package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"roomservice/models"
	"roomservice/services"
	"roomservice/utils"
)

const sessionHeader = "X-Session-ID"

type GuestController struct {
	sessions *services.SessionService
	catalog  *services.CatalogService
	chat     *services.ChatService
}

func NewGuestController(sessions *services.SessionService, catalog *services.CatalogService, chat *services.ChatService) *GuestController {
	return &GuestController{sessions: sessions, catalog: catalog, chat: chat}
}

// StartSession opens a guest session for a room (POST /api/guest/:hotelId/:roomId/session).
func (gc *GuestController) StartSession(c *gin.Context) {
	hotelID := c.Param("hotelId")
	roomNumber := c.Param("roomId")

	if !utils.IsUUID(hotelID) {
		utils.JSONError(c, http.StatusBadRequest, "hotel id must be a UUID")
		return
	}

	id, session, err := gc.sessions.Create(c.Request.Context(), hotelID, roomNumber)
	if err != nil {
		log.Printf("❌ Session create failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "could not start session")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"sessionId": id, "session": session})
}

// LoadData is the guest data load (GET /api/guest/:hotelId/:roomId).
// A mid-load failure still returns whatever was fetched before it, with
// partial=true; the client shows what it got and does not retry.
func (gc *GuestController) LoadData(c *gin.Context) {
	hotelID := c.Param("hotelId")
	lang := c.Query("lang")

	if session := gc.sessionFromHeader(c); session != nil && lang == "" {
		lang = session.Language
	}

	data, err := gc.catalog.LoadGuestData(hotelID, lang)
	if err != nil {
		log.Printf("⚠️ Guest data load incomplete for hotel %s: %v", hotelID, err)
		c.JSON(http.StatusOK, gin.H{"data": data, "partial": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": data, "partial": false})
}

// SetLanguage switches the session language (PUT .../language).
func (gc *GuestController) SetLanguage(c *gin.Context) {
	var payload struct {
		Language string `json:"language" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	session, err := gc.sessions.SetLanguage(c.Request.Context(), c.GetHeader(sessionHeader), payload.Language)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedLang) {
			utils.JSONError(c, http.StatusBadRequest, "unsupported language")
			return
		}
		utils.JSONError(c, http.StatusNotFound, "session not found")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, session)
}

// Chat forwards a guest message to the assistant (POST .../chat). The reply
// is always a plain sentence; failures collapse to the fixed fallback.
func (gc *GuestController) Chat(c *gin.Context) {
	session := gc.sessionFromHeader(c)
	if session == nil {
		utils.JSONError(c, http.StatusNotFound, "session not found")
		return
	}

	var payload struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Message) == "" {
		utils.JSONError(c, http.StatusBadRequest, "message is required")
		return
	}

	// fresh prompt per call: menu changes mid-conversation are accepted
	data, err := gc.catalog.LoadGuestData(session.HotelID, session.Language)
	if err != nil {
		log.Printf("⚠️ Chat prompt data incomplete: %v", err)
	}

	reply := gc.chat.Reply(data, session, payload.Message)
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

func (gc *GuestController) sessionFromHeader(c *gin.Context) *models.GuestSession {
	id := c.GetHeader(sessionHeader)
	if id == "" {
		return nil
	}
	session, err := gc.sessions.Get(c.Request.Context(), id)
	if err != nil {
		return nil
	}
	return session
}
