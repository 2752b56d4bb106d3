package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roomservice/services"
)

// ResolvePanel answers "which panel does this path open". The client shell
// calls it on load and on every history navigation; `current*` params carry
// the panel state to keep when the path resolves to nothing new.
func ResolvePanel(c *gin.Context) {
	current := services.Route{
		Panel:      services.Panel(c.Query("currentPanel")),
		HotelID:    c.Query("currentHotelId"),
		RoomNumber: c.Query("currentRoomNumber"),
	}
	if current.Panel == "" {
		current.Panel = services.PanelLanding
	}

	route := services.ResolvePanel(c.Query("path"), current)
	c.JSON(http.StatusOK, route)
}
