package routes

import (
	auth_handlers "tesis.link/handlers/auth"
	"tesis.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerAuthRoutes(app *fiber.App) {
	authHandler := auth_handlers.NewAuthHandler()
	authGroup := app.Group("/auth")

	authGroup.Post("/login", authHandler.Login)

	userRoutes := authGroup.Group("")
	userRoutes.Use(middlewares.AuthMiddleware)
	userRoutes.Post("/logout", authHandler.Logout)
	userRoutes.Get("/me", authHandler.Me)
}
