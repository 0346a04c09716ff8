package repositories

import (
	"context"
	"errors"

	"tesis.link/configs"
	"tesis.link/models"

	"gorm.io/gorm"
)

// ITechniqueRepository teknik kataloğu ve teknisyen-beceri bağları için arayüz.
type ITechniqueRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Technique, error)
	FindByName(ctx context.Context, name string) (*models.Technique, error)
	FindAll(ctx context.Context) ([]models.Technique, error)
	Create(ctx context.Context, technique *models.Technique) error
	Update(ctx context.Context, technique *models.Technique) error
	Grant(ctx context.Context, userID, techniqueID uint) error
	Revoke(ctx context.Context, userID, techniqueID uint) error
	HasTechnique(ctx context.Context, userID, techniqueID uint) (bool, error)
	FindTechnicianIDsByTechnique(ctx context.Context, techniqueID uint) ([]uint, error)
}

// TechniqueRepository ITechniqueRepository'nin GORM implementasyonu.
type TechniqueRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.Technique]
}

// NewTechniqueRepository yeni bir TechniqueRepository örneği oluşturur.
func NewTechniqueRepository() ITechniqueRepository {
	return newTechniqueRepository(configs.GetDB())
}

// NewTechniqueRepositoryTx transaction'a bağlı TechniqueRepository oluşturur.
func NewTechniqueRepositoryTx(tx *gorm.DB) ITechniqueRepository {
	return newTechniqueRepository(tx)
}

func newTechniqueRepository(db *gorm.DB) *TechniqueRepository {
	base := NewBaseRepository[models.Technique](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "name"})
	return &TechniqueRepository{db: db, base: base}
}

func (r *TechniqueRepository) FindByID(ctx context.Context, id uint) (*models.Technique, error) {
	if id == 0 {
		return nil, errors.New("geçersiz Technique ID")
	}
	return r.base.FindByID(ctx, id)
}

func (r *TechniqueRepository) FindByName(ctx context.Context, name string) (*models.Technique, error) {
	var technique models.Technique
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&technique).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &technique, nil
}

func (r *TechniqueRepository) FindAll(ctx context.Context) ([]models.Technique, error) {
	var techniques []models.Technique
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name asc").Find(&techniques).Error
	return techniques, err
}

func (r *TechniqueRepository) Create(ctx context.Context, technique *models.Technique) error {
	return r.base.Create(ctx, technique)
}

func (r *TechniqueRepository) Update(ctx context.Context, technique *models.Technique) error {
	if technique == nil || technique.ID == 0 {
		return errors.New("güncellenecek teknik geçerli değil")
	}
	return r.base.Save(ctx, technique)
}

// Grant teknisyene beceri tanımlar. Tekrarlanan grant unique PK'ya takılır.
func (r *TechniqueRepository) Grant(ctx context.Context, userID, techniqueID uint) error {
	grant := models.TechnicianTechnique{UserID: userID, TechniqueID: techniqueID}
	return r.db.WithContext(ctx).Create(&grant).Error
}

func (r *TechniqueRepository) Revoke(ctx context.Context, userID, techniqueID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND technique_id = ?", userID, techniqueID).
		Delete(&models.TechnicianTechnique{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TechniqueRepository) HasTechnique(ctx context.Context, userID, techniqueID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.TechnicianTechnique{}).
		Where("user_id = ? AND technique_id = ?", userID, techniqueID).
		Count(&count).Error
	return count > 0, err
}

// FindTechnicianIDsByTechnique verilen tekniğe sahip teknisyen ID'lerini döndürür.
func (r *TechniqueRepository) FindTechnicianIDsByTechnique(ctx context.Context, techniqueID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.TechnicianTechnique{}).
		Where("technique_id = ?", techniqueID).
		Order("user_id asc").
		Pluck("user_id", &ids).Error
	return ids, err
}

var _ ITechniqueRepository = (*TechniqueRepository)(nil)
