package migrations

import (
	"tesis.link/configs/configslog"
	"tesis.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateWorkSlotsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating work_slots table...")
	err := db.AutoMigrate(&models.WorkSlot{})
	if err != nil {
		configslog.Log.Error("Failed to migrate work_slots table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Work slots table migrated successfully")
	return nil
}
