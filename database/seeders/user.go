package seeders

import (
	"errors"
	"os"

	"tesis.link/configs/configslog"
	"tesis.link/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedSystemUser sistem yöneticisi hesabını oluşturur veya parolasını
// ortam değişkenindeki değere çeker. Idempotenttir.
func SeedSystemUser(db *gorm.DB) error {
	email := os.Getenv("SYSTEM_USER_EMAIL")
	if email == "" {
		email = "yonetim@tesis.link"
	}
	password := os.Getenv("SYSTEM_USER_PASSWORD")
	if password == "" {
		password = "degistir-beni"
		configslog.SLog.Warn("SYSTEM_USER_PASSWORD tanımlı değil, varsayılan parola kullanılıyor!")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Sistem kullanıcısı parolası hashlenemedi", zap.Error(err))
		return err
	}

	var existing models.User
	result := db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		existing.PasswordHash = string(hash)
		existing.Role = models.RoleManager
		existing.IsActive = true
		existing.IsSystem = true
		if err := db.Save(&existing).Error; err != nil {
			configslog.Log.Error("Sistem kullanıcısı güncellenemedi", zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Sistem kullanıcısı güncellendi: %s (ID %d)", email, existing.ID)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Sistem kullanıcısı kontrol edilemedi", zap.Error(result.Error))
		return result.Error
	}

	user := models.User{
		FullName:     "Tesis Yönetimi",
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleManager,
		IsActive:     true,
		IsSystem:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		configslog.Log.Error("Sistem kullanıcısı oluşturulamadı", zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Sistem kullanıcısı oluşturuldu: %s (ID %d)", email, user.ID)
	return nil
}
