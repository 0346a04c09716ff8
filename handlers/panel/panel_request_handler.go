package handlers

import (
	"tesis.link/middlewares"
	"tesis.link/models"
	"tesis.link/pkg/apiresponse"
	"tesis.link/pkg/queryparams"
	"tesis.link/services"

	"github.com/gofiber/fiber/v2"
)

// RequestHandler sakin/resepsiyon tarafının arıza kaydı uçları.
type RequestHandler struct {
	service services.IRequestService
}

// NewRequestHandler yeni bir RequestHandler örneği oluşturur.
func NewRequestHandler() *RequestHandler {
	return &RequestHandler{service: services.NewRequestService()}
}

// CreateRequest yeni arıza/bakım kaydı açar.
func (h *RequestHandler) CreateRequest(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}

	var input services.CreateRequestInput
	if err := c.BodyParser(&input); err != nil {
		return apiresponse.BadRequest(c, "geçersiz istek gövdesi")
	}

	request, err := h.service.CreateRequest(c.UserContext(), actor, input)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Created(c, request)
}

// ListRequests kayıtları listeler; sakin yalnızca kendi kayıtlarını görür.
func (h *RequestHandler) ListRequests(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}

	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	result, err := h.service.ListRequests(c.UserContext(), actor, params)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, result)
}

// GetRequest tek kaydın detayını döndürür.
func (h *RequestHandler) GetRequest(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiresponse.BadRequest(c, "geçersiz kayıt ID")
	}

	request, err := h.service.GetRequestByID(c.UserContext(), actor, uint(id))
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, request)
}

type transitionRequestBody struct {
	NewStatus string `json:"new_status"`
	Note      string `json:"note"`
}

// TransitionRequest kaydı yeni duruma taşır. Hangi rolün hangi geçişi
// yapabileceğini servis katmanındaki geçiş tablosu belirler.
func (h *RequestHandler) TransitionRequest(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiresponse.BadRequest(c, "geçersiz kayıt ID")
	}

	var body transitionRequestBody
	if err := c.BodyParser(&body); err != nil {
		return apiresponse.BadRequest(c, "geçersiz istek gövdesi")
	}

	err = h.service.Transition(c.UserContext(), actor, uint(id), models.RequestStatus(body.NewStatus), body.Note)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, fiber.Map{"id": uint(id), "status": body.NewStatus})
}

// GetRequestTracking kaydın durum tarihçesini döndürür.
func (h *RequestHandler) GetRequestTracking(c *fiber.Ctx) error {
	actor, ok := middlewares.ActorFromLocals(c)
	if !ok {
		return apiresponse.Error(c, services.ErrForbidden)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiresponse.BadRequest(c, "geçersiz kayıt ID")
	}

	tracking, err := h.service.GetTracking(c.UserContext(), actor, uint(id))
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, tracking)
}
