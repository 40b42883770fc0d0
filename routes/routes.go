package routes

import (
	"github.com/gin-gonic/gin"

	"restaurant-backend/controllers"
)

func RegisterRoutes(r *gin.Engine, users controllers.UserService, reservations controllers.ReservationService) {
	userController := controllers.NewUserController(users)
	reservationController := controllers.NewReservationController(reservations)

	api := r.Group("/api")
	{
		api.POST("/orders", userController.PlaceOrder)
		api.POST("/users", userController.UpsertUser)
		api.POST("/signin", userController.SignIn)
		api.GET("/users/:phone", userController.GetUser)
		api.POST("/reservations", reservationController.UpsertReservation)
	}
}
