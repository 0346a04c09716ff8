package handlers

import (
	"tesis.link/middlewares"
	"tesis.link/pkg/apiresponse"
	"tesis.link/services"

	"github.com/gofiber/fiber/v2"
)

// TechniqueHandler teknik kataloğu ve teknisyen becerileri uçları.
type TechniqueHandler struct {
	service services.ITechniqueService
}

// NewTechniqueHandler yeni bir TechniqueHandler örneği oluşturur.
func NewTechniqueHandler() *TechniqueHandler {
	return &TechniqueHandler{service: services.NewTechniqueService()}
}

// ListTechniques aktif teknikleri listeler.
func (h *TechniqueHandler) ListTechniques(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}
	techniques, err := h.service.ListTechniques(c.UserContext(), actor)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, techniques)
}

// CreateTechnique yeni teknik tanımlar.
func (h *TechniqueHandler) CreateTechnique(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}

	var input services.CreateTechniqueInput
	if err := c.BodyParser(&input); err != nil {
		return apiresponse.BadRequest(c, "geçersiz istek gövdesi")
	}

	technique, err := h.service.CreateTechnique(c.UserContext(), actor, input)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Created(c, technique)
}

// GrantTechnique teknisyene beceri tanımlar.
func (h *TechniqueHandler) GrantTechnique(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}
	techniqueID, err := c.ParamsInt("id")
	if err != nil || techniqueID <= 0 {
		return apiresponse.BadRequest(c, "geçersiz teknik ID")
	}
	userID, err := c.ParamsInt("userId")
	if err != nil || userID <= 0 {
		return apiresponse.BadRequest(c, "geçersiz kullanıcı ID")
	}

	if err := h.service.GrantTechnique(c.UserContext(), actor, uint(userID), uint(techniqueID)); err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Created(c, fiber.Map{"technique_id": uint(techniqueID), "user_id": uint(userID)})
}

// RevokeTechnique teknisyenden beceriyi geri alır.
func (h *TechniqueHandler) RevokeTechnique(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}
	techniqueID, err := c.ParamsInt("id")
	if err != nil || techniqueID <= 0 {
		return apiresponse.BadRequest(c, "geçersiz teknik ID")
	}
	userID, err := c.ParamsInt("userId")
	if err != nil || userID <= 0 {
		return apiresponse.BadRequest(c, "geçersiz kullanıcı ID")
	}

	if err := h.service.RevokeTechnique(c.UserContext(), actor, uint(userID), uint(techniqueID)); err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, fiber.Map{"technique_id": uint(techniqueID), "user_id": uint(userID)})
}

// ListTechnicians verilen tekniğe sahip aktif teknisyenleri listeler.
func (h *TechniqueHandler) ListTechnicians(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}
	techniqueID, err := c.ParamsInt("id")
	if err != nil || techniqueID <= 0 {
		return apiresponse.BadRequest(c, "geçersiz teknik ID")
	}

	technicians, err := h.service.GetTechniciansByTechnique(c.UserContext(), actor, uint(techniqueID))
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, technicians)
}
