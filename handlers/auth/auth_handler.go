package handlers

import (
	"tesis.link/configs/configslog"
	"tesis.link/pkg/apiresponse"
	"tesis.link/services"
	"tesis.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler giriş/çıkış işlemleri.
type AuthHandler struct {
	userService services.IUserService
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{userService: services.NewUserService()}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login e-posta + parola ile oturum açar.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return apiresponse.BadRequest(c, "geçersiz istek gövdesi")
	}

	user, err := h.userService.Authenticate(c.UserContext(), body.Email, body.Password)
	if err != nil {
		return apiresponse.Error(c, err)
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("Login: session başlatılamadı", zap.Error(err))
		return apiresponse.Error(c, err)
	}
	if err := utils.SetUserSession(sess, user); err != nil {
		configslog.Log.Error("Login: session kaydedilemedi", zap.Error(err))
		return apiresponse.Error(c, err)
	}

	configslog.SLog.Infof("Kullanıcı giriş yaptı: %s (ID %d)", user.Email, user.ID)
	return apiresponse.Success(c, fiber.Map{
		"id":        user.ID,
		"full_name": user.FullName,
		"role":      user.Role,
	})
}

// Logout oturumu sonlandırır.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err == nil {
		_ = utils.DestroySession(sess)
	}
	return apiresponse.Success(c, fiber.Map{"message": "çıkış yapıldı"})
}

// Me oturumdaki kullanıcının bilgilerini döndürür.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "UNAUTHORIZED",
			"message": "oturum açmanız gerekiyor",
		})
	}
	user, err := h.userService.GetUserByID(c.UserContext(), userID)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, fiber.Map{
		"id":        user.ID,
		"full_name": user.FullName,
		"email":     user.Email,
		"role":      user.Role,
	})
}
