package repositories

import (
	"context"
	"errors"

	"tesis.link/configs"
	"tesis.link/models"

	"gorm.io/gorm"
)

// ISlotRepository vardiya tanımları (sabah/akşam/gece) için arayüz.
type ISlotRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Slot, error)
	FindByName(ctx context.Context, name string) (*models.Slot, error)
	FindAll(ctx context.Context) ([]models.Slot, error)
}

// SlotRepository ISlotRepository'nin GORM implementasyonu.
type SlotRepository struct {
	db *gorm.DB
}

// NewSlotRepository yeni bir SlotRepository örneği oluşturur.
func NewSlotRepository() ISlotRepository {
	return &SlotRepository{db: configs.GetDB()}
}

// NewSlotRepositoryTx transaction'a bağlı repository oluşturur.
func NewSlotRepositoryTx(tx *gorm.DB) ISlotRepository {
	return &SlotRepository{db: tx}
}

func (r *SlotRepository) FindByID(ctx context.Context, id uint) (*models.Slot, error) {
	if id == 0 {
		return nil, errors.New("geçersiz Slot ID")
	}
	var slot models.Slot
	err := r.db.WithContext(ctx).First(&slot, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &slot, nil
}

func (r *SlotRepository) FindByName(ctx context.Context, name string) (*models.Slot, error) {
	var slot models.Slot
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &slot, nil
}

func (r *SlotRepository) FindAll(ctx context.Context) ([]models.Slot, error) {
	var slots []models.Slot
	err := r.db.WithContext(ctx).Order("start_minute asc").Find(&slots).Error
	return slots, err
}

var _ ISlotRepository = (*SlotRepository)(nil)
