package seeders

import (
	"context"
	"errors"

	"tesis.link/configs/configslog"
	"tesis.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedTechniques standart teknik kataloğunu oluşturur. Idempotenttir.
func SeedTechniques(db *gorm.DB) error {
	ctx := models.ContextWithUserID(context.Background(), 1)

	techniquesToSeed := []models.Technique{
		{Name: models.TechniqueNameElectrical, Description: "Elektrik tesisatı ve arızaları", IsActive: true},
		{Name: models.TechniqueNamePlumbing, Description: "Sıhhi tesisat ve su arızaları", IsActive: true},
		{Name: models.TechniqueNameHVAC, Description: "Isıtma, soğutma ve havalandırma", IsActive: true},
		{Name: models.TechniqueNameElevator, Description: "Asansör bakım ve arızaları", IsActive: true},
		{Name: models.TechniqueNameCarpentry, Description: "Marangozluk ve mobilya işleri", IsActive: true},
		{Name: models.TechniqueNamePainting, Description: "Boya badana işleri", IsActive: true},
	}

	var createdCount int64

	configslog.SLog.Info("Teknik kataloğu seed işlemi başlıyor...")

	for _, techniqueToSeed := range techniquesToSeed {
		var existing models.Technique
		result := db.Where("name = ?", techniqueToSeed.Name).First(&existing)
		if result.Error == nil {
			configslog.SLog.Debugf("Teknik '%s' zaten mevcut, oluşturma atlanıyor.", techniqueToSeed.Name)
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Teknik kontrol edilirken veritabanı hatası",
				zap.String("technique_name", techniqueToSeed.Name), zap.Error(result.Error))
			return result.Error
		}

		if err := db.WithContext(ctx).Create(&techniqueToSeed).Error; err != nil {
			configslog.Log.Error("Teknik oluşturulamadı",
				zap.String("technique_name", techniqueToSeed.Name), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Teknik '%s' oluşturuldu (ID: %d).", techniqueToSeed.Name, techniqueToSeed.ID)
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet yeni teknik seed edildi.", createdCount)
	} else {
		configslog.SLog.Info("Tüm teknikler zaten mevcut, yeni ekleme yapılmadı.")
	}
	return nil
}
