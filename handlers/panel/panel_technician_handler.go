package handlers

import (
	"time"

	"tesis.link/middlewares"
	"tesis.link/models"
	"tesis.link/pkg/apiresponse"
	"tesis.link/repositories"
	"tesis.link/services"

	"github.com/gofiber/fiber/v2"
)

// TechnicianHandler teknisyenin kendi randevu ve vardiya uçları.
type TechnicianHandler struct {
	apptService     services.IAppointmentService
	workSlotService services.IWorkSlotService
}

// NewTechnicianHandler yeni bir TechnicianHandler örneği oluşturur.
func NewTechnicianHandler() *TechnicianHandler {
	return &TechnicianHandler{
		apptService:     services.NewAppointmentService(),
		workSlotService: services.NewWorkSlotService(),
	}
}

// parseDateRange from/to query parametrelerini okur; verilmezse içinde
// bulunulan hafta kullanılır.
func parseDateRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	from := models.DateOnly(now)
	to := from.AddDate(0, 0, 7)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed
	}
	return from, to, nil
}

// MyAppointments teknisyenin atandığı randevular.
func (h *TechnicianHandler) MyAppointments(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}
	from, to, err := parseDateRange(c)
	if err != nil {
		return apiresponse.BadRequest(c, "geçersiz tarih formatı (YYYY-AA-GG bekleniyor)")
	}

	appointments, err := h.apptService.ListForTechnician(c.UserContext(), actor, from, to.AddDate(0, 0, 1))
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, appointments)
}

// StartAppointment atanmış randevuda çalışmayı başlatır.
func (h *TechnicianHandler) StartAppointment(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiresponse.BadRequest(c, "geçersiz randevu ID")
	}

	if err := h.apptService.StartAppointment(c.UserContext(), actor, uint(id)); err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, fiber.Map{"id": uint(id), "status": models.AppointmentStatusInProgress})
}

type completeAppointmentBody struct {
	Note string `json:"note"`
}

// CompleteAppointment çalışmayı tamamlar; kayıt şef kontrolüne düşer.
func (h *TechnicianHandler) CompleteAppointment(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiresponse.BadRequest(c, "geçersiz randevu ID")
	}

	var body completeAppointmentBody
	if err := c.BodyParser(&body); err != nil {
		body.Note = ""
	}

	if err := h.apptService.CompleteAppointment(c.UserContext(), actor, uint(id), body.Note); err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, fiber.Map{"id": uint(id), "status": models.AppointmentStatusCompleted})
}

// MyWorkSlots teknisyenin kendi vardiya takvimi.
func (h *TechnicianHandler) MyWorkSlots(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}
	from, to, err := parseDateRange(c)
	if err != nil {
		return apiresponse.BadRequest(c, "geçersiz tarih formatı (YYYY-AA-GG bekleniyor)")
	}

	slots, err := h.workSlotService.Query(c.UserContext(), actor, repositories.WorkSlotFilter{
		TechnicianID: actor.UserID,
		From:         from,
		To:           to,
	})
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, slots)
}

type updateWorkSlotStatusBody struct {
	NewStatus string `json:"new_status"`
	Note      string `json:"note"`
}

// UpdateWorkSlotStatus teknisyen kendi vardiyasının durumunu günceller
// (mesaiye başlama, bitirme, izin).
func (h *TechnicianHandler) UpdateWorkSlotStatus(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiresponse.BadRequest(c, "geçersiz vardiya ID")
	}

	var body updateWorkSlotStatusBody
	if err := c.BodyParser(&body); err != nil {
		return apiresponse.BadRequest(c, "geçersiz istek gövdesi")
	}

	err = h.workSlotService.UpdateStatus(c.UserContext(), actor, uint(id), models.WorkSlotStatus(body.NewStatus), body.Note)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, fiber.Map{"id": uint(id), "status": body.NewStatus})
}
