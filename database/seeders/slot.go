package seeders

import (
	"context"
	"errors"

	"tesis.link/configs/configslog"
	"tesis.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedSlots standart vardiya tanımlarını oluşturur. Pencereler dakika
// cinsindendir ve gece yarısını aşmaz; gece vardiyası günün başındadır.
func SeedSlots(db *gorm.DB) error {
	ctx := models.ContextWithUserID(context.Background(), 1)

	slotsToSeed := []models.Slot{
		{Name: models.SlotNameNight, StartMinute: 0, EndMinute: 480},      // 00:00-08:00
		{Name: models.SlotNameMorning, StartMinute: 480, EndMinute: 960},  // 08:00-16:00
		{Name: models.SlotNameEvening, StartMinute: 960, EndMinute: 1440}, // 16:00-24:00
	}

	var createdCount int64

	configslog.SLog.Info("Vardiya tanımları seed işlemi başlıyor...")

	for _, slotToSeed := range slotsToSeed {
		var existing models.Slot
		result := db.Where("name = ?", slotToSeed.Name).First(&existing)
		if result.Error == nil {
			configslog.SLog.Debugf("Vardiya tanımı '%s' zaten mevcut, oluşturma atlanıyor.", slotToSeed.Name)
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Vardiya tanımı kontrol edilirken veritabanı hatası",
				zap.String("slot_name", slotToSeed.Name), zap.Error(result.Error))
			return result.Error
		}

		if err := db.WithContext(ctx).Create(&slotToSeed).Error; err != nil {
			configslog.Log.Error("Vardiya tanımı oluşturulamadı",
				zap.String("slot_name", slotToSeed.Name), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Vardiya tanımı '%s' oluşturuldu (ID: %d).", slotToSeed.Name, slotToSeed.ID)
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet yeni vardiya tanımı seed edildi.", createdCount)
	} else {
		configslog.SLog.Info("Tüm vardiya tanımları zaten mevcut, yeni ekleme yapılmadı.")
	}
	return nil
}
