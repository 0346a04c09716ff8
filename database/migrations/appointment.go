package migrations

import (
	"tesis.link/configs/configslog"
	"tesis.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateAppointmentsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating appointments & appointment_assigns tables...")
	err := db.AutoMigrate(&models.Appointment{}, &models.AppointmentAssign{})
	if err != nil {
		configslog.Log.Error("Failed to migrate appointments tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Appointments tables migrated successfully")
	return nil
}
