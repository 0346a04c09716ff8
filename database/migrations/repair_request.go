package migrations

import (
	"tesis.link/configs/configslog"
	"tesis.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateRepairRequestsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating repair_requests table...")
	err := db.AutoMigrate(&models.RepairRequest{})
	if err != nil {
		configslog.Log.Error("Failed to migrate repair_requests table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Repair requests table migrated successfully")
	return nil
}
