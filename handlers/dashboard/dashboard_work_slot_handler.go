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

// WorkSlotHandler vardiya takvimi yönetim uçları.
type WorkSlotHandler struct {
	service services.IWorkSlotService
}

// NewWorkSlotHandler yeni bir WorkSlotHandler örneği oluşturur.
func NewWorkSlotHandler() *WorkSlotHandler {
	return &WorkSlotHandler{service: services.NewWorkSlotService()}
}

// CreateRange teknisyene tarih aralığı için vardiya açar.
func (h *WorkSlotHandler) CreateRange(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}

	var input services.CreateWorkSlotRangeInput
	if err := c.BodyParser(&input); err != nil {
		return apiresponse.BadRequest(c, "geçersiz istek gövdesi")
	}

	created, err := h.service.CreateRange(c.UserContext(), actor, input)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Created(c, created)
}

type createListBody struct {
	Entries []services.WorkSlotEntry `json:"entries"`
}

// CreateList tekil (teknisyen, gün, vardiya) kayıtlarını topluca açar.
func (h *WorkSlotHandler) CreateList(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}

	var body createListBody
	if err := c.BodyParser(&body); err != nil {
		return apiresponse.BadRequest(c, "geçersiz istek gövdesi")
	}

	created, err := h.service.CreateList(c.UserContext(), actor, body.Entries)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Created(c, created)
}

// Query takvimi tarih aralığı + opsiyonel teknisyen/durum filtresiyle listeler.
func (h *WorkSlotHandler) Query(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}

	filter := repositories.WorkSlotFilter{
		Status: models.WorkSlotStatus(c.Query("status")),
	}
	if technicianID := c.QueryInt("technician_id"); technicianID > 0 {
		filter.TechnicianID = uint(technicianID)
	}

	now := time.Now()
	filter.From = models.DateOnly(now)
	filter.To = filter.From.AddDate(0, 0, 7)
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return apiresponse.BadRequest(c, "geçersiz tarih formatı (YYYY-AA-GG bekleniyor)")
		}
		filter.From = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return apiresponse.BadRequest(c, "geçersiz tarih formatı (YYYY-AA-GG bekleniyor)")
		}
		filter.To = parsed
	}

	slots, err := h.service.Query(c.UserContext(), actor, filter)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, slots)
}

type updateStatusBody struct {
	NewStatus string `json:"new_status"`
	Note      string `json:"note"`
}

// UpdateStatus vardiya durumunu taşır.
func (h *WorkSlotHandler) UpdateStatus(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiresponse.BadRequest(c, "geçersiz vardiya ID")
	}

	var body updateStatusBody
	if err := c.BodyParser(&body); err != nil {
		return apiresponse.BadRequest(c, "geçersiz istek gövdesi")
	}

	err = h.service.UpdateStatus(c.UserContext(), actor, uint(id), models.WorkSlotStatus(body.NewStatus), body.Note)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, fiber.Map{"id": uint(id), "status": body.NewStatus})
}

// Delete vardiya kaydını kaldırır.
func (h *WorkSlotHandler) Delete(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiresponse.BadRequest(c, "geçersiz vardiya ID")
	}

	if err := h.service.Delete(c.UserContext(), actor, uint(id)); err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, fiber.Map{"id": uint(id), "deleted": true})
}

// GetTracking vardiya kaydının durum tarihçesi.
func (h *WorkSlotHandler) GetTracking(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiresponse.BadRequest(c, "geçersiz vardiya ID")
	}

	tracking, err := h.service.GetTracking(c.UserContext(), actor, uint(id))
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, tracking)
}
