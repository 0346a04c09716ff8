package routes

import (
	panel_handlers "tesis.link/handlers/panel"
	"tesis.link/middlewares"
	"tesis.link/models"

	"github.com/gofiber/fiber/v2"
)

// registerPanelRoutes /panel altındaki rotaları tanımlar: sakin ve resepsiyon
// için kayıt uçları, teknisyen için kendi randevu/vardiya uçları.
func registerPanelRoutes(app *fiber.App) {
	requestHandler := panel_handlers.NewRequestHandler()
	technicianHandler := panel_handlers.NewTechnicianHandler()

	panelGroup := app.Group("/panel")
	panelGroup.Use(middlewares.AuthMiddleware)

	// --- Arıza Kayıtları (sakin + resepsiyon açar, herkes kendi görür) ---
	requestGroup := panelGroup.Group("/requests")
	requestGroup.Post("",
		middlewares.RequireRoles(models.RoleResident, models.RoleReceptionist),
		requestHandler.CreateRequest) // POST /panel/requests
	requestGroup.Get("", requestHandler.ListRequests)                      // GET  /panel/requests
	requestGroup.Get("/:id", requestHandler.GetRequest)                    // GET  /panel/requests/{id}
	requestGroup.Post("/:id/transition", requestHandler.TransitionRequest) // POST /panel/requests/{id}/transition
	requestGroup.Get("/:id/tracking", requestHandler.GetRequestTracking)   // GET  /panel/requests/{id}/tracking

	// --- Teknisyenin Kendi Görünümü ---
	myGroup := panelGroup.Group("/my", middlewares.RequireRoles(models.RoleTechnician))
	myGroup.Get("/appointments", technicianHandler.MyAppointments)                // GET  /panel/my/appointments
	myGroup.Post("/appointments/:id/start", technicianHandler.StartAppointment)   // POST /panel/my/appointments/{id}/start
	myGroup.Post("/appointments/:id/complete", technicianHandler.CompleteAppointment) // POST /panel/my/appointments/{id}/complete
	myGroup.Get("/work-slots", technicianHandler.MyWorkSlots)                     // GET  /panel/my/work-slots
	myGroup.Post("/work-slots/:id/status", technicianHandler.UpdateWorkSlotStatus) // POST /panel/my/work-slots/{id}/status
}
