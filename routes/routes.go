package routes

import (
	"github.com/huseyin4215/QRCal-sub002/authentication"
	"github.com/huseyin4215/QRCal-sub002/controllers"
	"github.com/huseyin4215/QRCal-sub002/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes() *gin.Engine {
	//creates a new Gin engine instance with default configurations
	r := gin.Default()
	r.Use(middleware.RequestID())

	exportLimit := middleware.NewRateLimiter(1, 3)

	//self routes: the signed-in user's own history
	user := r.Group("/")
	user.Use(authentication.SessionMiddleware())
	{
		user.GET("/appointments/history", controllers.GetAppointmentHistory)
		user.GET("/appointments/history/export", middleware.RateLimit(exportLimit), controllers.ExportAppointmentHistory)
	}

	//admin routes: roster plus anyone's history
	admin := r.Group("/admin")
	admin.Use(authentication.SessionMiddleware(), authentication.AdminOnly())
	{
		admin.GET("/users", controllers.ListUsers)
		admin.GET("/appointments/history/:id", controllers.GetAppointmentHistory)
		admin.GET("/appointments/history/:id/export", middleware.RateLimit(exportLimit), controllers.ExportAppointmentHistory)
	}

	return r
}
