package configs

import (
	"os"
	"time"

	"tesis.link/configs/configsdatabase"
	"tesis.link/configs/configslog"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// LoadEnv .env dosyasını yükler. Dosya yoksa sessizce devam edilir
// (production ortamında değişkenler dışarıdan verilir).
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Debug(".env dosyası bulunamadı, ortam değişkenleri kullanılacak.")
	}
}

// GetDB servis ve repository katmanının kullandığı global GORM bağlantısı.
func GetDB() *gorm.DB {
	return configsdatabase.GetDB()
}

var sessionStore *session.Store

// SetupSession cookie tabanlı session store'u döndürür (lazy, tek örnek).
func SetupSession() *session.Store {
	if sessionStore != nil {
		return sessionStore
	}
	sessionStore = session.New(session.Config{
		Expiration:     24 * time.Hour,
		CookieHTTPOnly: true,
		CookieSecure:   os.Getenv("APP_ENV") == "production",
		CookieSameSite: "Lax",
		KeyLookup:      "cookie:tesis_session",
	})
	return sessionStore
}

// AppPort HTTP sunucusunun dinleyeceği adres.
func AppPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return ":" + p
	}
	return ":3000"
}
