package routes

import (
	"almaceramica-backend/config"
	"almaceramica-backend/controllers"
	"almaceramica-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length"},
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// Public campaign API, action-dispatched like the original handlers
	valentine := r.Group("/api/valentine")
	{
		valentine.GET("", controllers.ValentineGet)
		valentine.POST("", controllers.ValentinePost)
		valentine.PUT("", controllers.ValentinePut)
		valentine.DELETE("", controllers.ValentineDelete)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		// Product catalog routes
		products := api.Group("/products")
		{
			products.POST("", controllers.CreateProduct)
			products.GET("", controllers.GetProducts)
			products.GET("/:id", controllers.GetProduct)
			products.PUT("/:id", controllers.UpdateProduct)
			products.DELETE("/:id", controllers.DeleteProduct)
		}

		// Booking routes
		bookings := api.Group("/bookings")
		{
			bookings.POST("", controllers.CreateBooking)
			bookings.GET("", controllers.GetBookings)
			bookings.GET("/:id", controllers.GetBooking)
			bookings.PUT("/:id", controllers.UpdateBooking)
			bookings.DELETE("/:id", controllers.DeleteBooking)

			bookings.POST("/:id/payments", controllers.AddPayment)
			bookings.DELETE("/:id/payments/:index", controllers.DeletePayment)

			bookings.PUT("/:id/slots/reschedule", controllers.RescheduleBookingSlot)
			bookings.DELETE("/:id/slots", controllers.DeleteBookingSlot)
		}

		// Capacity routes
		api.GET("/availability", controllers.GetSlotAvailability)
		api.POST("/group-assignments/preview", controllers.PreviewGroupAssignments)

		// Delivery routes
		deliveries := api.Group("/deliveries")
		{
			deliveries.POST("", controllers.CreateDelivery)
			deliveries.GET("", controllers.GetDeliveries)
			deliveries.PUT("/:id", controllers.UpdateDelivery)
			deliveries.PUT("/:id/status", controllers.UpdateDeliveryStatus)
			deliveries.DELETE("/:id", controllers.DeleteDelivery)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// Settings routes
		profile := api.Group("/profile")
		{
			profile.GET("", controllers.GetStudioProfile)
			profile.PUT("/update-studio", controllers.UpdateStudioProfile)
			profile.PUT("/update-hours", controllers.UpdateOpeningHours)
			profile.PUT("/update-notifications", controllers.UpdateNotifications)
		}
	}

	return r
}
