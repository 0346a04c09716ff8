package main

import (
	"os"
	"os/signal"
	"syscall"

	"tesis.link/configs"
	"tesis.link/configs/configsdatabase"
	"tesis.link/configs/configslog"
	"tesis.link/routes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configs.LoadEnv()
	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	app := fiber.New(fiber.Config{
		AppName: "tesis.link",
	})

	routes.SetupRoutes(app)

	// Graceful shutdown: sinyal gelince dinleyen soketi kapat, aktif
	// istekler tamamlansın.
	shutdownDone := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Sunucu kapatılırken hata oluştu", zap.Error(err))
		}
		close(shutdownDone)
	}()

	addr := configs.AppPort()
	configslog.SLog.Infof("HTTP sunucusu %s adresinde dinliyor", addr)
	if err := app.Listen(addr); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}

	<-shutdownDone
	configslog.SLog.Info("Sunucu durduruldu.")
}
