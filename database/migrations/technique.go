package migrations

import (
	"tesis.link/configs/configslog"
	"tesis.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateTechniquesTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating techniques & technician_techniques tables...")
	err := db.AutoMigrate(&models.Technique{}, &models.TechnicianTechnique{})
	if err != nil {
		configslog.Log.Error("Failed to migrate techniques tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Techniques tables migrated successfully")
	return nil
}
