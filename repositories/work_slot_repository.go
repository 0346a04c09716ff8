package repositories

import (
	"context"
	"errors"
	"time"

	"tesis.link/configs"
	"tesis.link/configs/configslog"
	"tesis.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IWorkSlotRepository vardiya takvimi veritabanı işlemleri için arayüz.
type IWorkSlotRepository interface {
	Create(ctx context.Context, slot *models.WorkSlot) error
	FindByID(ctx context.Context, id uint) (*models.WorkSlot, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*models.WorkSlot, error)
	Exists(ctx context.Context, technicianID uint, date time.Time, slotID uint) (bool, error)
	FindByTechnicianOnDate(ctx context.Context, technicianID uint, date time.Time) ([]models.WorkSlot, error)
	FindForDate(ctx context.Context, date time.Time) ([]models.WorkSlot, error)
	Query(ctx context.Context, filter WorkSlotFilter) ([]models.WorkSlot, error)
	Save(ctx context.Context, slot *models.WorkSlot) error
	HardDelete(ctx context.Context, slot *models.WorkSlot) error
}

// WorkSlotFilter takvim sorgusunun kriterleri.
type WorkSlotFilter struct {
	TechnicianID uint // 0 ise tüm teknisyenler
	From         time.Time
	To           time.Time
	Status       models.WorkSlotStatus // boş ise tüm durumlar
}

// WorkSlotRepository IWorkSlotRepository'nin GORM implementasyonu.
type WorkSlotRepository struct {
	db *gorm.DB
}

// NewWorkSlotRepository yeni bir WorkSlotRepository örneği oluşturur.
func NewWorkSlotRepository() IWorkSlotRepository {
	return &WorkSlotRepository{db: configs.GetDB()}
}

// NewWorkSlotRepositoryTx transaction'a bağlı repository oluşturur.
func NewWorkSlotRepositoryTx(tx *gorm.DB) IWorkSlotRepository {
	return &WorkSlotRepository{db: tx}
}

func (r *WorkSlotRepository) Create(ctx context.Context, slot *models.WorkSlot) error {
	if slot == nil || slot.TechnicianID == 0 || slot.SlotID == 0 {
		return errors.New("eksik bilgiyle vardiya kaydı oluşturulamaz")
	}
	slot.Date = models.DateOnly(slot.Date)
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *WorkSlotRepository) FindByID(ctx context.Context, id uint) (*models.WorkSlot, error) {
	if id == 0 {
		return nil, errors.New("geçersiz WorkSlot ID")
	}
	var slot models.WorkSlot
	err := r.db.WithContext(ctx).Preload("Slot").First(&slot, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("WorkSlotRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &slot, nil
}

func (r *WorkSlotRepository) FindByIDForUpdate(ctx context.Context, id uint) (*models.WorkSlot, error) {
	if id == 0 {
		return nil, errors.New("geçersiz WorkSlot ID")
	}
	var slot models.WorkSlot
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&slot, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &slot, nil
}

// Exists (technician, date, slot) üçlüsü için kayıt var mı? Bu bir ön kontrol
// optimizasyonudur; asıl teminat storage'daki unique index'tir.
func (r *WorkSlotRepository) Exists(ctx context.Context, technicianID uint, date time.Time, slotID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.WorkSlot{}).
		Where("technician_id = ? AND date = ? AND slot_id = ?", technicianID, models.DateOnly(date), slotID).
		Count(&count).Error
	return count > 0, err
}

// FindByTechnicianOnDate teknisyenin verilen gündeki vardiya kayıtları.
func (r *WorkSlotRepository) FindByTechnicianOnDate(ctx context.Context, technicianID uint, date time.Time) ([]models.WorkSlot, error) {
	var slots []models.WorkSlot
	err := r.db.WithContext(ctx).
		Where("technician_id = ? AND date = ?", technicianID, models.DateOnly(date)).
		Preload("Slot").
		Find(&slots).Error
	return slots, err
}

// FindForDate verilen gündeki tüm vardiya kayıtları (atama havuzu için).
func (r *WorkSlotRepository) FindForDate(ctx context.Context, date time.Time) ([]models.WorkSlot, error) {
	var slots []models.WorkSlot
	err := r.db.WithContext(ctx).
		Where("date = ?", models.DateOnly(date)).
		Preload("Slot").
		Find(&slots).Error
	return slots, err
}

// Query takvimi tarih aralığı + opsiyonel teknisyen/durum filtresiyle listeler.
func (r *WorkSlotRepository) Query(ctx context.Context, filter WorkSlotFilter) ([]models.WorkSlot, error) {
	query := r.db.WithContext(ctx).Model(&models.WorkSlot{}).
		Where("date >= ? AND date <= ?", models.DateOnly(filter.From), models.DateOnly(filter.To))
	if filter.TechnicianID != 0 {
		query = query.Where("technician_id = ?", filter.TechnicianID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var slots []models.WorkSlot
	err := query.
		Order("date asc, technician_id asc, slot_id asc").
		Preload("Slot").
		Preload("Technician").
		Find(&slots).Error
	if err != nil {
		configslog.Log.Error("WorkSlotRepository.Query: DB error", zap.Error(err))
		return nil, err
	}
	return slots, nil
}

func (r *WorkSlotRepository) Save(ctx context.Context, slot *models.WorkSlot) error {
	if slot == nil || slot.ID == 0 {
		return errors.New("güncellenecek vardiya kaydı geçerli değil")
	}
	return r.db.WithContext(ctx).Save(slot).Error
}

// HardDelete vardiya kaydını fiziksel olarak kaldırır. Soft delete kullanılmaz;
// silinen (technician, date, slot) üçlüsü yeniden oluşturulabilmelidir.
func (r *WorkSlotRepository) HardDelete(ctx context.Context, slot *models.WorkSlot) error {
	if slot == nil || slot.ID == 0 {
		return errors.New("silinecek vardiya kaydı geçerli değil")
	}
	return r.db.WithContext(ctx).Unscoped().Delete(slot).Error
}

var _ IWorkSlotRepository = (*WorkSlotRepository)(nil)
