package services

import (
	"strings"

	"roomservice/utils"
)

// Panel is one of the mutually exclusive top-level UI modes.
type Panel string

const (
	PanelLanding        Panel = "landing"
	PanelHotelLogin     Panel = "hotel_login"
	PanelHotelDashboard Panel = "hotel_dashboard"
	PanelAdminDashboard Panel = "admin_dashboard"
	PanelGuest          Panel = "guest"

	// PanelSuperLogin is not reachable through path resolution; the
	// super-admin gate lives in the auth API instead.
	PanelSuperLogin Panel = "super_login"
)

// Route is a resolved panel state plus the ids extracted from the path.
type Route struct {
	Panel      Panel  `json:"panel"`
	HotelID    string `json:"hotelId,omitempty"`
	RoomNumber string `json:"roomNumber,omitempty"`
}

// ResolvePanel maps a path to a panel, in priority order. A bare /otel-admin
// with no trailing hotel id leaves the current route untouched.
func ResolvePanel(path string, current Route) Route {
	segments := splitPath(path)

	for _, seg := range segments {
		if seg == "super-admin" {
			return Route{Panel: PanelAdminDashboard}
		}
	}

	for _, seg := range segments {
		if seg == "otel-login" {
			return Route{Panel: PanelHotelLogin}
		}
	}

	for i, seg := range segments {
		if seg == "otel-admin" {
			if i+1 < len(segments) {
				return Route{Panel: PanelHotelDashboard, HotelID: segments[i+1]}
			}
			return current
		}
	}

	if len(segments) >= 2 && utils.IsUUID(segments[0]) {
		return Route{Panel: PanelGuest, HotelID: segments[0], RoomNumber: segments[1]}
	}

	return Route{Panel: PanelLanding}
}

func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}
