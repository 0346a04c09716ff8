package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log yapısal (structured) loglama için global logger.
// SLog aynı logger'ın sugared versiyonudur (printf tarzı kullanım için).
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger global logger'ları APP_ENV'e göre başlatır.
// production: JSON encoder, Info seviyesi. Diğer ortamlar: console encoder, Debug seviyesi.
func InitLogger() {
	env := os.Getenv("APP_ENV")

	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		// Logger kurulamazsa uygulamanın devam etmesi anlamsız.
		panic("logger başlatılamadı: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger buffer'daki logları flush eder. main'de defer ile çağrılır.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
