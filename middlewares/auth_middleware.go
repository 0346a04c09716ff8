package middlewares

import (
	"tesis.link/models"
	"tesis.link/services"
	"tesis.link/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware oturum doğrulaması yapar; kimlik bilgilerini Locals'a koyar.
func AuthMiddleware(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return unauthorized(c)
	}
	userID, err := utils.GetUserIDFromSession(sess)
	if err != nil {
		return unauthorized(c)
	}
	role, err := utils.GetRoleFromSession(sess)
	if err != nil {
		return unauthorized(c)
	}

	c.Locals("userID", userID)
	c.Locals("userRole", role)
	return c.Next()
}

// RequireRoles verilen rollerden birini zorunlu kılar. AuthMiddleware'den
// sonra kullanılmalıdır.
func RequireRoles(roles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(models.UserRole)
		if !ok {
			return unauthorized(c)
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   "FORBIDDEN",
			"message": services.ErrForbidden.Error(),
		})
	}
}

// ActorFromLocals handler'ların servis katmanına geçireceği aktörü kurar.
func ActorFromLocals(c *fiber.Ctx) (services.Actor, bool) {
	userID, okID := c.Locals("userID").(uint)
	role, okRole := c.Locals("userRole").(models.UserRole)
	if !okID || !okRole {
		return services.Actor{}, false
	}
	return services.Actor{UserID: userID, Role: role}, true
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":   "UNAUTHORIZED",
		"message": "oturum açmanız gerekiyor",
	})
}
