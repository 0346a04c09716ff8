package utils

import (
	"errors"

	"tesis.link/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	sessionKeyUserID = "user_id"
	sessionKeyRole   = "user_role"
	sessionKeyName   = "user_name"
)

// SessionStart Locals'a konmuş store üzerinden oturumu açar/okur.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, errors.New("session store bulunamadı")
	}
	return store.Get(c)
}

// SetUserSession giriş sonrası kullanıcı bilgilerini oturuma yazar.
func SetUserSession(sess *session.Session, user *models.User) error {
	sess.Set(sessionKeyUserID, user.ID)
	sess.Set(sessionKeyRole, string(user.Role))
	sess.Set(sessionKeyName, user.FullName)
	return sess.Save()
}

// GetUserIDFromSession oturumdaki kullanıcı ID'sini döndürür.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	id, ok := sess.Get(sessionKeyUserID).(uint)
	if !ok || id == 0 {
		return 0, errors.New("oturumda kullanıcı yok")
	}
	return id, nil
}

// GetRoleFromSession oturumdaki kullanıcı rolünü döndürür.
func GetRoleFromSession(sess *session.Session) (models.UserRole, error) {
	raw, ok := sess.Get(sessionKeyRole).(string)
	if !ok {
		return "", errors.New("oturumda rol yok")
	}
	role := models.UserRole(raw)
	if !models.ValidRole(role) {
		return "", errors.New("oturumdaki rol geçersiz")
	}
	return role, nil
}

// GetUserNameFromSession oturumdaki görünen adı döndürür.
func GetUserNameFromSession(sess *session.Session) (string, bool) {
	name, ok := sess.Get(sessionKeyName).(string)
	return name, ok
}

// DestroySession oturumu sonlandırır.
func DestroySession(sess *session.Session) error {
	return sess.Destroy()
}
