package migrations

import (
	"tesis.link/configs/configslog"
	"tesis.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateTrackingTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating tracking tables...")
	err := db.AutoMigrate(
		&models.RequestTracking{},
		&models.AppointmentTracking{},
		&models.WorkSlotStatusTracking{},
	)
	if err != nil {
		configslog.Log.Error("Failed to migrate tracking tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Tracking tables migrated successfully")
	return nil
}
