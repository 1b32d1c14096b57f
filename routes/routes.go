package routes

import (
	"net/http"
	"time"

	"cardoctor/config"
	"cardoctor/handlers"
	"cardoctor/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers token issue/clear endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/jwt", hb.IssueToken)
	r.POST("/logout", hb.Logout)
}

// RegisterCatalogRoutes registers the public service catalogue endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/services")
	{
		api.GET("", hb.ListServices)
		api.GET("/:id", hb.GetServiceByID)
	}
}

// RegisterBookingRoutes registers the booking CRUD endpoints. The whole
// group sits behind the session-cookie gate: bookings are customer
// private data, so reads and writes are gated alike.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/bookings")
	{
		api.Use(middleware.CookieAuth())
		api.GET("", hb.ListBookings)
		api.POST("", hb.CreateBooking)
		api.PUT("/:id", hb.UpdateBooking)
		api.DELETE("/:id", hb.DeleteBooking)
	}
}

// RegisterHealthRoutes registers liveness endpoints.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Running Car Doctor Server")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Car Doctor server is up"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// The frontend sends the session cookie cross-site, so credentialed
	// CORS with explicit origins is required.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.Origins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoutes(r)
}
