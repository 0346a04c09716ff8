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

// IAppointmentRepository randevu veritabanı işlemleri için arayüz.
type IAppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	FindByID(ctx context.Context, id uint) (*models.Appointment, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*models.Appointment, error)
	FindActiveByRequestID(ctx context.Context, requestID uint) (*models.Appointment, error)
	FindByRequestID(ctx context.Context, requestID uint) ([]models.Appointment, error)
	FindForTechnician(ctx context.Context, technicianID uint, from, to time.Time) ([]models.Appointment, error)
	Save(ctx context.Context, appointment *models.Appointment) error
	Delete(ctx context.Context, appointment *models.Appointment) error
}

// AppointmentRepository IAppointmentRepository'nin GORM implementasyonu.
type AppointmentRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.Appointment]
}

// NewAppointmentRepository yeni bir AppointmentRepository örneği oluşturur.
func NewAppointmentRepository() IAppointmentRepository {
	return newAppointmentRepository(configs.GetDB())
}

// NewAppointmentRepositoryTx transaction'a bağlı repository oluşturur.
func NewAppointmentRepositoryTx(tx *gorm.DB) IAppointmentRepository {
	return newAppointmentRepository(tx)
}

func newAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	base := NewBaseRepository[models.Appointment](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "start_time", "status"})
	return &AppointmentRepository{db: db, base: base}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if appointment == nil || appointment.RequestID == 0 {
		return errors.New("kayıt referansı olmadan randevu oluşturulamaz")
	}
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	if id == 0 {
		return nil, errors.New("geçersiz Appointment ID")
	}
	var appointment models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Request").
		Preload("Assigns").
		First(&appointment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("AppointmentRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &appointment, nil
}

// FindByIDForUpdate randevuyu satır kilidiyle okur (atama/geçiş transaction'ları için).
func (r *AppointmentRepository) FindByIDForUpdate(ctx context.Context, id uint) (*models.Appointment, error) {
	if id == 0 {
		return nil, errors.New("geçersiz Appointment ID")
	}
	var appointment models.Appointment
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&appointment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

// FindActiveByRequestID kayda bağlı terminal olmayan randevuyu döndürür.
// Aktif randevu yoksa ErrNotFound.
func (r *AppointmentRepository) FindActiveByRequestID(ctx context.Context, requestID uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.WithContext(ctx).
		Where("request_id = ? AND status NOT IN ?", requestID,
			[]models.AppointmentStatus{models.AppointmentStatusCompleted, models.AppointmentStatusCancelled}).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *AppointmentRepository) FindByRequestID(ctx context.Context, requestID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("start_time asc").
		Preload("Assigns").
		Find(&appointments).Error
	return appointments, err
}

// FindForTechnician teknisyenin atandığı, verilen aralıkta başlayan randevuları döndürür.
func (r *AppointmentRepository) FindForTechnician(ctx context.Context, technicianID uint, from, to time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Joins("JOIN appointment_assigns ON appointment_assigns.appointment_id = appointments.id AND appointment_assigns.deleted_at IS NULL").
		Where("appointment_assigns.user_id = ? AND appointments.start_time >= ? AND appointments.start_time < ?", technicianID, from, to).
		Order("appointments.start_time asc").
		Preload("Request").
		Find(&appointments).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.FindForTechnician: DB error", zap.Uint("technicianID", technicianID), zap.Error(err))
		return nil, err
	}
	return appointments, nil
}

func (r *AppointmentRepository) Save(ctx context.Context, appointment *models.Appointment) error {
	if appointment == nil || appointment.ID == 0 {
		return errors.New("güncellenecek randevu geçerli değil")
	}
	return r.db.WithContext(ctx).Save(appointment).Error
}

// Delete randevuyu soft delete eder (izleme tarihçesi okunabilir kalır).
func (r *AppointmentRepository) Delete(ctx context.Context, appointment *models.Appointment) error {
	if appointment == nil || appointment.ID == 0 {
		return errors.New("silinecek randevu geçerli değil")
	}
	return r.db.WithContext(ctx).Delete(appointment).Error
}

var _ IAppointmentRepository = (*AppointmentRepository)(nil)
