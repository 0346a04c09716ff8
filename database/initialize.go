package database

import (
	"tesis.link/configs/configslog"
	"tesis.link/database/migrations"
	"tesis.link/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Veritabanı transaction başlatılamadı", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Veritabanı başlatma işlemi başarısız oldu (panic)", zap.Any("panic_info", r))
		} else if err := tx.Error; err != nil && err != gorm.ErrInvalidTransaction {
			configslog.SLog.Warn("Başlatma sırasında hata oluştuğu için işlem geri alınıyor.", zap.Error(err))
			rbErr := tx.Rollback().Error
			if rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Rollback sırasında ek hata oluştu", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if migrate {
		configslog.SLog.Info("Migrasyonlar çalıştırılıyor...")
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
			return
		}
		configslog.SLog.Info("Migrasyonlar tamamlandı.")
	} else {
		configslog.SLog.Info("Migrate bayrağı belirtilmedi, migrasyon adımı atlanıyor.")
	}

	if seed {
		configslog.SLog.Info("Seeder'lar çalıştırılıyor...")
		if err := CheckAndRunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding başarısız oldu", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seeder'lar tamamlandı.")
	} else {
		configslog.SLog.Info("Seed bayrağı belirtilmedi, seeder adımı atlanıyor.")
	}

	configslog.SLog.Info("İşlem commit ediliyor...")
	if err := tx.Commit().Error; err != nil {
		tx.Error = err
		configslog.Log.Error("Commit başarısız oldu", zap.Error(err))
		return
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
}

func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info("Migrasyonlar sırayla çalıştırılıyor...")

	configslog.SLog.Info(" -> User migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateUsersTable(db); err != nil {
		configslog.Log.Error("Users tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> User migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Technique migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateTechniquesTables(db); err != nil {
		configslog.Log.Error("Techniques tabloları migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Technique migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Slot migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateSlotsTable(db); err != nil {
		configslog.Log.Error("Slots tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Slot migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> WorkSlot migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateWorkSlotsTable(db); err != nil {
		configslog.Log.Error("Work slots tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> WorkSlot migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> RepairRequest migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateRepairRequestsTable(db); err != nil {
		configslog.Log.Error("Repair requests tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> RepairRequest migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Appointment migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateAppointmentsTables(db); err != nil {
		configslog.Log.Error("Appointments tabloları migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Appointment migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Tracking migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateTrackingTables(db); err != nil {
		configslog.Log.Error("Tracking tabloları migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Tracking migrasyonları tamamlandı.")

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info("Sistem kullanıcısı kontrol ediliyor/oluşturuluyor/güncelleniyor...")
	if err := seeders.SeedSystemUser(db); err != nil {
		configslog.Log.Error("Sistem kullanıcısı seed/update işlemi başarısız", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> Slot seeder çalıştırılıyor...")
	if err := seeders.SeedSlots(db); err != nil {
		configslog.Log.Error("Slots tablosu seed edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Slot seeder tamamlandı.")

	configslog.SLog.Info(" -> Technique seeder çalıştırılıyor...")
	if err := seeders.SeedTechniques(db); err != nil {
		configslog.Log.Error("Techniques tablosu seed edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Technique seeder tamamlandı.")

	configslog.SLog.Info("Tüm seeder'lar başarıyla kontrol edildi/çalıştırıldı.")
	return nil
}
