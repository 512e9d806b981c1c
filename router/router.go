package router

import (
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/charityIO/charityIOBack/controllers"
	"github.com/charityIO/charityIOBack/live"
	"github.com/charityIO/charityIOBack/middlewares"
	"github.com/charityIO/charityIOBack/services"
	"github.com/charityIO/charityIOBack/utils"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.LoggerMiddleware())

	// Uploaded images are public, an image path stored on an event or
	// profile is directly usable by the client.
	uploadDir := utils.UploadDir()
	r.Static("/profileImages", filepath.Join(uploadDir, "profileImages"))
	r.Static("/eventImages", filepath.Join(uploadDir, "eventImages"))

	hub := live.NewHub()
	mailer := services.NewMailerFromEnv()
	accounts := services.NewAccountService(db, mailer)
	roster := services.NewRosterService(db)
	workflow := services.NewVolunteeringService(db, roster, hub)
	notifications := services.NewNotificationService(db)

	authCtrl := controllers.NewAuthController(db, accounts)
	userCtrl := controllers.NewUserController(db)
	eventCtrl := controllers.NewEventController(db)
	volunteeringCtrl := controllers.NewVolunteeringController(workflow, roster)
	notificationCtrl := controllers.NewNotificationController(notifications, hub)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/signup", authCtrl.Signup)
		public.POST("/signin", authCtrl.Signin)
	}
	r.GET("/verify", authCtrl.Verify)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())

	user.GET("/profile", userCtrl.GetProfile)
	user.POST("/updateProfile", userCtrl.UpdateProfile)
	user.POST("/signout", authCtrl.Signout)

	// Event browsing, any role
	user.POST("/event", eventCtrl.GetEvent)
	user.GET("/events", eventCtrl.GetEvents)
	user.GET("/myEvents", eventCtrl.GetMyEvents)
	user.POST("/searchEvents", eventCtrl.SearchEvents)
	user.POST("/fetchVolunteerEmails", userCtrl.FetchVolunteerEmails)

	// Event management, charities only
	charity := user.Group("/")
	charity.Use(middlewares.RequireRole("charity"))
	{
		charity.POST("/createEvent", eventCtrl.CreateEvent)
		charity.POST("/updateEvent", eventCtrl.UpdateEvent)
		charity.POST("/deleteEvent", eventCtrl.DeleteEvent)
	}

	// Volunteering workflow
	volunteer := user.Group("/")
	volunteer.Use(middlewares.RequireRole("volunteer"))
	{
		volunteer.POST("/sendVolunteeringRequest", volunteeringCtrl.SendVolunteeringRequest)
		volunteer.POST("/removeVolunteerFromEvent", volunteeringCtrl.RemoveVolunteerFromEvent)
	}
	user.POST("/handleVolunteeringRequest", volunteeringCtrl.HandleVolunteeringRequest)

	// Notifications
	user.GET("/notifications", notificationCtrl.GetNotifications)
	user.GET("/seeNotifications", notificationCtrl.SeeNotifications)
	user.GET("/notifications/ws", notificationCtrl.NotificationsWS)

	return r
}
