package apiresponse

import (
	"tesis.link/configs/configslog"
	"tesis.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Hata kodlarının HTTP karşılıkları. Listede olmayan kodlar 500 döner.
var statusByCode = map[string]int{
	"REQUEST_NOT_FOUND":              fiber.StatusNotFound,
	"APPOINTMENT_NOT_FOUND":          fiber.StatusNotFound,
	"ASSIGNMENT_NOT_FOUND":           fiber.StatusNotFound,
	"WORK_SLOT_NOT_FOUND":            fiber.StatusNotFound,
	"SLOT_NOT_FOUND":                 fiber.StatusNotFound,
	"TECHNIQUE_NOT_FOUND":            fiber.StatusNotFound,
	"USER_NOT_FOUND":                 fiber.StatusNotFound,
	"FORBIDDEN":                      fiber.StatusForbidden,
	"INVALID_INPUT":                  fiber.StatusUnprocessableEntity,
	"INVALID_CREDENTIALS":            fiber.StatusUnauthorized,
	"INVALID_TRANSITION":             fiber.StatusConflict,
	"INVALID_TIME_RANGE":             fiber.StatusUnprocessableEntity,
	"REQUEST_NOT_APPROVED":           fiber.StatusConflict,
	"APPOINTMENT_CLOSED":             fiber.StatusConflict,
	"WORK_SLOT_NOT_AVAILABLE":        fiber.StatusConflict,
	"DUPLICATE_SLOT":                 fiber.StatusConflict,
	"TECHNICIAN_ALREADY_ASSIGNED":    fiber.StatusConflict,
	"SLOT_CONFLICT":                  fiber.StatusConflict,
	"CONFLICTING_APPOINTMENT_EXISTS": fiber.StatusConflict,
	"TECHNIQUE_ALREADY_GRANTED":      fiber.StatusConflict,
}

// Success 200 ile veri döndürür.
func Success(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": data})
}

// Created 201 ile veri döndürür.
func Created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": data})
}

// Error servis hatasını kararlı kod + mesaj olarak döndürür. Tip eşleşmeyen
// (beklenmeyen) hatalar loglanır ve INTERNAL olarak maskelenir.
func Error(c *fiber.Ctx, err error) error {
	code := services.CodeOf(err)
	status, ok := statusByCode[code]
	if !ok {
		status = fiber.StatusInternalServerError
		configslog.Log.Error("Beklenmeyen servis hatası",
			zap.String("path", c.Path()), zap.Error(err))
		return c.Status(status).JSON(fiber.Map{
			"error":   "INTERNAL",
			"message": "beklenmeyen bir hata oluştu",
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"error":   code,
		"message": err.Error(),
	})
}

// BadRequest gövde/parametre parse hataları için.
func BadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "BAD_REQUEST",
		"message": message,
	})
}
