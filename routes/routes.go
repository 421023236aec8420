package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-admin-backend/controllers"
	"hotel-admin-backend/middleware"
)

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

// SetupRouter wires all controllers into the gin engine.
func SetupRouter(
	wc *controllers.WizardController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	cc *controllers.CustomerController,
	sc *controllers.StaffController,
	dc *controllers.DashboardController,
	rpc *controllers.ReportController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

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
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		wizard := api.Group("/wizard")
		{
			wizard.POST("", wc.StartSession)
			wizard.GET("/:id", wc.GetSession)
			wizard.DELETE("/:id", wc.CancelSession)
			wizard.POST("/:id/steps/basic", wc.SubmitBasicInfo)
			wizard.POST("/:id/steps/features", wc.SubmitFeatures)
			wizard.POST("/:id/images", wc.StageImages)
			wizard.DELETE("/:id/images/:index", wc.RemoveImage)
			wizard.POST("/:id/steps/images/confirm", wc.ConfirmImages)
			wizard.POST("/:id/back", wc.GoBack)
			wizard.GET("/:id/preview", wc.GetPreview)
			wizard.POST("/:id/submit", wc.Submit)
		}

		rooms := api.Group("/rooms")
		{
			// static routes before /:id
			rooms.GET("/persisted", rc.GetPersistedRooms)

			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.CreateRoom)
			rooms.PUT("/:id", rc.UpdateRoom)
			rooms.PATCH("/:id", rc.UpdateRoom)
			rooms.DELETE("/:id", rc.DeleteRoom)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.GET("/:id", bc.GetBooking)
			bookings.POST("", bc.CreateBooking)
		}

		customers := api.Group("/customers")
		{
			customers.GET("", cc.GetCustomers)
			customers.GET("/:id", cc.GetCustomer)
			customers.DELETE("/:id", cc.DeleteCustomer)
		}

		staff := api.Group("/staff")
		{
			staff.GET("/stats", sc.GetStats)
			staff.GET("/schedule", sc.GetSchedule)
			staff.GET("/export", sc.ExportStaff)

			staff.GET("", sc.GetStaff)
			staff.GET("/:id", sc.GetStaffMember)
			staff.POST("", sc.CreateStaff)
			staff.PUT("/:id", sc.UpdateStaff)
			staff.DELETE("/:id", sc.DeleteStaff)
		}

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/stats", dc.GetStats)
			dashboard.GET("/recent-bookings", dc.GetRecentBookings)
			dashboard.GET("/room-status", dc.GetRoomStatus)
			dashboard.GET("/activities", dc.GetActivities)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/kpis", rpc.GetKPIs)
			reports.GET("/financial", rpc.GetFinancial)
			reports.GET("/occupancy", rpc.GetOccupancy)
			reports.GET("/guests", rpc.GetGuests)
			reports.GET("/staff-performance", rpc.GetStaffPerformance)
			reports.GET("/export", rpc.ExportReport)
		}
	}

	return r
}
