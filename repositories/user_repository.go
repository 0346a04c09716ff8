package repositories

import (
	"context"
	"errors"

	"tesis.link/configs"
	"tesis.link/configs/configslog"
	"tesis.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IUserRepository kullanıcı veritabanı işlemleri için arayüz.
type IUserRepository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindActiveTechnicians(ctx context.Context) ([]models.User, error)
	FindActiveTechniciansByIDs(ctx context.Context, ids []uint) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
}

// UserRepository IUserRepository'nin GORM implementasyonu.
type UserRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.User]
}

// NewUserRepository yeni bir UserRepository örneği oluşturur.
func NewUserRepository() IUserRepository {
	return newUserRepository(configs.GetDB())
}

// NewUserRepositoryTx transaction'a bağlı UserRepository oluşturur.
func NewUserRepositoryTx(tx *gorm.DB) IUserRepository {
	return newUserRepository(tx)
}

func newUserRepository(db *gorm.DB) *UserRepository {
	base := NewBaseRepository[models.User](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "full_name", "role"})
	return &UserRepository{db: db, base: base}
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if id == 0 {
		return nil, errors.New("geçersiz kullanıcı ID")
	}
	return r.base.FindByID(ctx, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UserRepository.FindByEmail: DB error", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// FindActiveTechnicians teknisyen rollerindeki (teknisyen + şef) tüm aktif
// kullanıcıları döndürür.
func (r *UserRepository) FindActiveTechnicians(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Where("role IN ? AND is_active = ?", models.TechnicianRoles, true).
		Order("id asc").
		Find(&users).Error
	return users, err
}

// FindActiveTechniciansByIDs verilen ID listesinden teknisyen rollerindeki
// aktif kullanıcıları döndürür.
func (r *UserRepository) FindActiveTechniciansByIDs(ctx context.Context, ids []uint) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []models.User
	err := r.db.WithContext(ctx).
		Where("id IN ? AND role IN ? AND is_active = ?", ids, models.TechnicianRoles, true).
		Order("id asc").
		Find(&users).Error
	return users, err
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user == nil {
		return errors.New("boş kullanıcı oluşturulamaz")
	}
	return r.base.Create(ctx, user)
}

func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	if user == nil || user.ID == 0 {
		return errors.New("güncellenecek kullanıcı geçerli değil")
	}
	return r.base.Save(ctx, user)
}

var _ IUserRepository = (*UserRepository)(nil)
