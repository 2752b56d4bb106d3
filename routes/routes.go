package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"roomservice/controllers"
	"roomservice/middleware"
	"roomservice/realtime"
)

// adminFeedSubjects scopes a hotel dashboard's change stream to its own
// orders and service requests.
func adminFeedSubjects(hotelID string) []string {
	return []string{
		realtime.Subject(realtime.TableOrders, hotelID),
		realtime.Subject(realtime.TableServiceRequests, hotelID),
	}
}

// superFeedSubjects covers the platform feed: order changes across every
// hotel. Service requests stay on the per-hotel dashboards.
func superFeedSubjects() []string {
	return []string{realtime.SubjectAll(realtime.TableOrders)}
}

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires every surface: the public panel resolver and auth, the
// guest room endpoints, the hotel dashboard and the operator panel.
func SetupRouter(
	gc *controllers.GuestController,
	cc *controllers.CartController,
	ac *controllers.AdminController,
	sc *controllers.SuperController,
	auth *controllers.AuthController,
	bus realtime.Bus,
	logger zerolog.Logger,
	jwtSecret string,
) *gin.Engine {
	r := gin.Default()
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// public surface: the panel resolver, signup form and logins
		api.GET("/panel", controllers.ResolvePanel)
		api.POST("/applications", controllers.CreateApplication)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/hotel-login", auth.HotelLogin)
			authRoutes.POST("/super-login", auth.SuperLogin)
		}

		// guest surface, addressed by the QR link's hotel + room pair
		guest := api.Group("/guest/:hotelId/:roomId")
		{
			guest.POST("/session", gc.StartSession)
			guest.GET("", gc.LoadData)
			guest.PUT("/language", gc.SetLanguage)
			guest.POST("/chat", gc.Chat)

			guest.GET("/cart", cc.GetCart)
			guest.POST("/cart/items", cc.AddItem)
			guest.PATCH("/cart/items/:menuItemId", cc.AdjustItem)

			guest.POST("/orders", cc.Checkout)
			guest.POST("/service-requests", cc.RequestService)
		}

		// hotel dashboard
		admin := api.Group("/admin", middleware.Require(jwtSecret, middleware.RoleHotel))
		{
			admin.GET("/orders", ac.GetOrders)
			admin.PATCH("/orders/:id/status", ac.UpdateOrderStatus)
			admin.GET("/service-requests", ac.GetServiceRequests)
			admin.PATCH("/service-requests/:id/status", ac.UpdateRequestStatus)
			admin.GET("/live-feed", ac.GetLiveFeed)

			admin.GET("/settings", ac.GetSettings)
			admin.PUT("/settings", ac.UpdateSettings)

			admin.GET("/menu-items", controllers.GetMenuItems)
			admin.POST("/menu-items", controllers.CreateMenuItem)
			admin.PATCH("/menu-items/:id", controllers.UpdateMenuItem)
			admin.DELETE("/menu-items/:id", controllers.DeleteMenuItem)

			admin.GET("/market-items", controllers.GetMarketCatalog)
			admin.PUT("/market-items/:id/active", ac.ToggleMarketItem)
			admin.PUT("/services/:id/active", ac.ToggleService)

			admin.GET("/rooms", controllers.GetRooms)
			admin.POST("/rooms", controllers.CreateRoom)
			admin.POST("/rooms/bulk", controllers.CreateRoomsBulk)
			admin.DELETE("/rooms/:id", controllers.DeleteRoom)

			admin.POST("/uploads", controllers.UploadImage)

			// change stream scoped to the token's hotel
			admin.GET("/events", func(c *gin.Context) {
				realtime.SSEHandler(bus, logger, adminFeedSubjects(middleware.HotelID(c))...)(c)
			})
		}

		// platform operator
		super := api.Group("/super", middleware.Require(jwtSecret, middleware.RoleSuper))
		{
			super.GET("/hotels", sc.GetHotels)
			super.POST("/hotels", sc.CreateHotel)
			super.GET("/hotels/:id", sc.GetHotel)
			super.PUT("/hotels/:id", sc.UpdateHotel)
			super.DELETE("/hotels/:id", sc.DeleteHotel)

			super.GET("/recent-orders", sc.GetRecentOrders)
			super.GET("/applications", sc.GetApplications)

			super.GET("/events", realtime.SSEHandler(bus, logger, superFeedSubjects()...))
		}
	}

	return r
}
