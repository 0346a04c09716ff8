package routes

import (
	"tesis.link/configs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(initializeSessionLocals())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	registerAuthRoutes(app)      // /auth rotaları
	registerPanelRoutes(app)     // /panel rotaları
	registerDashboardRoutes(app) // /dashboard rotaları

	// Eşleşmeyen tüm rotalar.
	app.Use(notFoundHandler)
}

// initializeSessionLocals session store'u her isteğin Locals'ına koyar;
// kimlik çözümlemesini AuthMiddleware yapar.
func initializeSessionLocals() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		return c.Next()
	}
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error":   "NOT_FOUND",
		"message": "kaynak bulunamadı",
	})
}
