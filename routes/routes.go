package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-assistant/controllers"
	"hotel-assistant/middleware"
	"hotel-assistant/services"
)

// SetupRouter wires the query and record controllers.
func SetupRouter(
	qc *controllers.QueryController,
	rc *controllers.RecordsController,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	allowCredentials := true
	for _, origin := range corsOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/query", qc.Resolve)

		api.GET("/availability", qc.ResolveKind(services.QueryAvailability))
		api.GET("/occupancy", qc.ResolveKind(services.QueryOccupancy))
		api.GET("/revenue", qc.ResolveKind(services.QueryRevenue))
		api.GET("/popularity", qc.ResolveKind(services.QueryPopularity))
		api.GET("/high-demand", qc.ResolveKind(services.QueryHighDemand))
		api.GET("/guests/lookup", qc.ResolveKind(services.QueryGuestLookup))

		api.GET("/room-types", rc.GetRoomTypes)

		reservations := api.Group("/reservations")
		{
			reservations.GET("", rc.GetReservations)
			reservations.GET("/audit", rc.AuditReservations)
		}
	}

	return r
}
