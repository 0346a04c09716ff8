package routes

import (
	handlers "tesis.link/handlers/dashboard"
	"tesis.link/middlewares"
	"tesis.link/models"

	"github.com/gofiber/fiber/v2"
)

// registerDashboardRoutes /dashboard altındaki yönetim rotalarını tanımlar.
// Teknisyen şefi ve tesis yöneticisi erişebilir.
func registerDashboardRoutes(app *fiber.App) {
	requestHandler := handlers.NewRequestHandler()
	appointmentHandler := handlers.NewAppointmentHandler()
	workSlotHandler := handlers.NewWorkSlotHandler()
	techniqueHandler := handlers.NewTechniqueHandler()

	dashboardGroup := app.Group("/dashboard")
	dashboardGroup.Use(
		middlewares.AuthMiddleware,
		middlewares.RequireRoles(models.RoleTechnicianLead, models.RoleManager),
	)

	// --- Arıza Kayıtları ---
	dashboardGroup.Get("/requests", requestHandler.ListRequests)                      // GET  /dashboard/requests
	dashboardGroup.Get("/requests/:id", requestHandler.GetRequest)                    // GET  /dashboard/requests/{id}
	dashboardGroup.Post("/requests/:id/transition", requestHandler.TransitionRequest) // POST /dashboard/requests/{id}/transition
	dashboardGroup.Get("/requests/:id/tracking", requestHandler.GetRequestTracking)   // GET  /dashboard/requests/{id}/tracking
	dashboardGroup.Get("/requests/:requestId/appointments", appointmentHandler.ListByRequest)

	// --- Randevu Planlama ve Atama ---
	dashboardGroup.Post("/appointments", appointmentHandler.CreateAppointment)           // POST   /dashboard/appointments
	dashboardGroup.Get("/appointments/:id", appointmentHandler.GetAppointment)           // GET    /dashboard/appointments/{id}
	dashboardGroup.Put("/appointments/:id", appointmentHandler.UpdateAppointment)        // PUT    /dashboard/appointments/{id}
	dashboardGroup.Delete("/appointments/:id", appointmentHandler.DeleteAppointment)     // DELETE /dashboard/appointments/{id}
	dashboardGroup.Post("/appointments/:id/cancel", appointmentHandler.CancelAppointment)
	dashboardGroup.Get("/appointments/:id/suggest", appointmentHandler.SuggestTechnicians)
	dashboardGroup.Post("/appointments/:id/assign", appointmentHandler.AssignTechnicians)
	dashboardGroup.Post("/appointments/:id/confirm", appointmentHandler.SetConfirmation)
	dashboardGroup.Delete("/appointments/:id/assign/:technicianId", appointmentHandler.CancelAssignment)
	dashboardGroup.Get("/appointments/:id/tracking", appointmentHandler.GetAppointmentTracking)

	// --- Vardiya Takvimi ---
	dashboardGroup.Post("/work-slots/range", workSlotHandler.CreateRange)      // POST   /dashboard/work-slots/range
	dashboardGroup.Post("/work-slots", workSlotHandler.CreateList)             // POST   /dashboard/work-slots
	dashboardGroup.Get("/work-slots", workSlotHandler.Query)                   // GET    /dashboard/work-slots
	dashboardGroup.Post("/work-slots/:id/status", workSlotHandler.UpdateStatus)
	dashboardGroup.Delete("/work-slots/:id", workSlotHandler.Delete)           // DELETE /dashboard/work-slots/{id}
	dashboardGroup.Get("/work-slots/:id/tracking", workSlotHandler.GetTracking)

	// --- Teknik Kataloğu ---
	dashboardGroup.Get("/techniques", techniqueHandler.ListTechniques)                        // GET    /dashboard/techniques
	dashboardGroup.Post("/techniques", techniqueHandler.CreateTechnique)                      // POST   /dashboard/techniques
	dashboardGroup.Get("/techniques/:id/technicians", techniqueHandler.ListTechnicians)       // GET    /dashboard/techniques/{id}/technicians
	dashboardGroup.Post("/techniques/:id/technicians/:userId", techniqueHandler.GrantTechnique)
	dashboardGroup.Delete("/techniques/:id/technicians/:userId", techniqueHandler.RevokeTechnique)
}
