package handlers

import (
	"tesis.link/middlewares"
	"tesis.link/pkg/apiresponse"
	"tesis.link/services"

	"github.com/gofiber/fiber/v2"
)

// AppointmentHandler randevu planlama ve teknisyen atama uçları.
type AppointmentHandler struct {
	service       services.IAppointmentService
	assignService services.IAssignmentService
}

// NewAppointmentHandler yeni bir AppointmentHandler örneği oluşturur.
func NewAppointmentHandler() *AppointmentHandler {
	return &AppointmentHandler{
		service:       services.NewAppointmentService(),
		assignService: services.NewAssignmentService(),
	}
}

// CreateAppointment onaylı kayıt için randevu açar.
func (h *AppointmentHandler) CreateAppointment(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}

	var input services.CreateAppointmentInput
	if err := c.BodyParser(&input); err != nil {
		return apiresponse.BadRequest(c, "geçersiz istek gövdesi")
	}

	appointment, err := h.service.CreateAppointment(c.UserContext(), actor, input)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Created(c, appointment)
}

// GetAppointment randevu detayını döndürür.
func (h *AppointmentHandler) GetAppointment(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiresponse.BadRequest(c, "geçersiz randevu ID")
	}

	appointment, err := h.service.GetAppointmentByID(c.UserContext(), actor, uint(id))
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, appointment)
}

// ListByRequest kaydın tüm randevularını döndürür (iptal edilenler dahil).
func (h *AppointmentHandler) ListByRequest(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}
	requestID, err := c.ParamsInt("requestId")
	if err != nil || requestID <= 0 {
		return apiresponse.BadRequest(c, "geçersiz kayıt ID")
	}

	appointments, err := h.service.ListByRequest(c.UserContext(), actor, uint(requestID))
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, appointments)
}

// UpdateAppointment randevunun zamanını/notunu günceller.
func (h *AppointmentHandler) UpdateAppointment(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiresponse.BadRequest(c, "geçersiz randevu ID")
	}

	var input services.UpdateAppointmentInput
	if err := c.BodyParser(&input); err != nil {
		return apiresponse.BadRequest(c, "geçersiz istek gövdesi")
	}

	if err := h.service.UpdateAppointment(c.UserContext(), actor, uint(id), input); err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, fiber.Map{"id": uint(id)})
}

// DeleteAppointment henüz atanmamış randevuyu siler.
func (h *AppointmentHandler) DeleteAppointment(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiresponse.BadRequest(c, "geçersiz randevu ID")
	}

	if err := h.service.DeleteAppointment(c.UserContext(), actor, uint(id)); err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, fiber.Map{"id": uint(id), "deleted": true})
}

type cancelBody struct {
	Reason string `json:"reason"`
}

// CancelAppointment randevuyu iptal eder; kayıt yeni randevuya açık kalır.
func (h *AppointmentHandler) CancelAppointment(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiresponse.BadRequest(c, "geçersiz randevu ID")
	}

	var body cancelBody
	if err := c.BodyParser(&body); err != nil {
		body.Reason = ""
	}

	if err := h.service.CancelAppointment(c.UserContext(), actor, uint(id), body.Reason); err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, fiber.Map{"id": uint(id), "status": "cancelled"})
}

// SuggestTechnicians randevu için uygun teknisyenleri yük sırasıyla önerir.
// ?technique_id=N kaydın teknik filtresini ezer; technique_id=0 filtreyi kaldırır.
func (h *AppointmentHandler) SuggestTechnicians(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiresponse.BadRequest(c, "geçersiz randevu ID")
	}

	var techniqueID *uint
	if raw := c.Query("technique_id"); raw != "" {
		parsed := c.QueryInt("technique_id", -1)
		if parsed < 0 {
			return apiresponse.BadRequest(c, "geçersiz teknik ID")
		}
		value := uint(parsed)
		techniqueID = &value
	}

	candidates, err := h.assignService.SuggestTechnicians(c.UserContext(), actor, uint(id), techniqueID)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, candidates)
}

type assignBody struct {
	TechnicianIDs []uint `json:"technician_ids"`
}

// AssignTechnicians teknisyenleri randevuya atar (hepsi ya da hiçbiri).
func (h *AppointmentHandler) AssignTechnicians(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiresponse.BadRequest(c, "geçersiz randevu ID")
	}

	var body assignBody
	if err := c.BodyParser(&body); err != nil {
		return apiresponse.BadRequest(c, "geçersiz istek gövdesi")
	}

	if err := h.assignService.AssignTechnicians(c.UserContext(), actor, uint(id), body.TechnicianIDs); err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, fiber.Map{"id": uint(id), "technician_ids": body.TechnicianIDs})
}

type confirmBody struct {
	Confirmed bool `json:"confirmed"`
}

// SetConfirmation atamaları topluca onaylar veya onayı geri alır.
func (h *AppointmentHandler) SetConfirmation(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiresponse.BadRequest(c, "geçersiz randevu ID")
	}

	var body confirmBody
	if err := c.BodyParser(&body); err != nil {
		return apiresponse.BadRequest(c, "geçersiz istek gövdesi")
	}

	if err := h.assignService.SetConfirmation(c.UserContext(), actor, uint(id), body.Confirmed); err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, fiber.Map{"id": uint(id), "confirmed": body.Confirmed})
}

// CancelAssignment tek teknisyenin atamasını kaldırır.
func (h *AppointmentHandler) CancelAssignment(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiresponse.BadRequest(c, "geçersiz randevu ID")
	}
	technicianID, err := c.ParamsInt("technicianId")
	if err != nil || technicianID <= 0 {
		return apiresponse.BadRequest(c, "geçersiz teknisyen ID")
	}

	var body cancelBody
	if err := c.BodyParser(&body); err != nil {
		body.Reason = ""
	}

	err = h.assignService.CancelAssignment(c.UserContext(), actor, uint(id), uint(technicianID), body.Reason)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, fiber.Map{"id": uint(id), "technician_id": uint(technicianID)})
}

// GetAppointmentTracking randevunun durum tarihçesi.
func (h *AppointmentHandler) GetAppointmentTracking(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiresponse.BadRequest(c, "geçersiz randevu ID")
	}

	tracking, err := h.service.GetTracking(c.UserContext(), actor, uint(id))
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, tracking)
}
