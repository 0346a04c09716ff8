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
)

// Aktif sayılmayan randevu durumları (çakışma ve yük hesaplarında hariç tutulur).
var inactiveAppointmentStatuses = []models.AppointmentStatus{
	models.AppointmentStatusCompleted,
	models.AppointmentStatusCancelled,
}

// IAppointmentAssignRepository teknisyen-randevu bağları için arayüz.
type IAppointmentAssignRepository interface {
	Create(ctx context.Context, assign *models.AppointmentAssign) error
	FindByID(ctx context.Context, id uint) (*models.AppointmentAssign, error)
	FindByAppointmentID(ctx context.Context, appointmentID uint) ([]models.AppointmentAssign, error)
	FindActiveByTechnicianOnDate(ctx context.Context, technicianID uint, date time.Time) ([]models.AppointmentAssign, error)
	CountActiveOnDate(ctx context.Context, technicianID uint, date time.Time) (int64, error)
	CountActiveInMonth(ctx context.Context, technicianID uint, anchor time.Time) (int64, error)
	SetConfirmationForAppointment(ctx context.Context, appointmentID uint, confirmed bool) error
	HardDelete(ctx context.Context, assign *models.AppointmentAssign) error
}

// AppointmentAssignRepository IAppointmentAssignRepository'nin GORM implementasyonu.
type AppointmentAssignRepository struct {
	db *gorm.DB
}

// NewAppointmentAssignRepository yeni bir örnek oluşturur.
func NewAppointmentAssignRepository() IAppointmentAssignRepository {
	return &AppointmentAssignRepository{db: configs.GetDB()}
}

// NewAppointmentAssignRepositoryTx transaction'a bağlı repository oluşturur.
func NewAppointmentAssignRepositoryTx(tx *gorm.DB) IAppointmentAssignRepository {
	return &AppointmentAssignRepository{db: tx}
}

func (r *AppointmentAssignRepository) Create(ctx context.Context, assign *models.AppointmentAssign) error {
	if assign == nil || assign.AppointmentID == 0 || assign.UserID == 0 {
		return errors.New("eksik bilgiyle atama oluşturulamaz")
	}
	return r.db.WithContext(ctx).Create(assign).Error
}

func (r *AppointmentAssignRepository) FindByID(ctx context.Context, id uint) (*models.AppointmentAssign, error) {
	if id == 0 {
		return nil, errors.New("geçersiz AppointmentAssign ID")
	}
	var assign models.AppointmentAssign
	err := r.db.WithContext(ctx).Preload("Appointment").First(&assign, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &assign, nil
}

func (r *AppointmentAssignRepository) FindByAppointmentID(ctx context.Context, appointmentID uint) ([]models.AppointmentAssign, error) {
	var assigns []models.AppointmentAssign
	err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Order("user_id asc").
		Preload("User").
		Find(&assigns).Error
	return assigns, err
}

// FindActiveByTechnicianOnDate teknisyenin verilen gündeki aktif atamalarını,
// randevu bilgisiyle birlikte döndürür (çakışma penceresi hesabı için).
func (r *AppointmentAssignRepository) FindActiveByTechnicianOnDate(ctx context.Context, technicianID uint, date time.Time) ([]models.AppointmentAssign, error) {
	dayStart := models.DateOnly(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var assigns []models.AppointmentAssign
	err := r.db.WithContext(ctx).
		Joins("JOIN appointments ON appointments.id = appointment_assigns.appointment_id AND appointments.deleted_at IS NULL").
		Where("appointment_assigns.user_id = ?", technicianID).
		Where("appointments.start_time >= ? AND appointments.start_time < ?", dayStart, dayEnd).
		Where("appointments.status NOT IN ?", inactiveAppointmentStatuses).
		Preload("Appointment").
		Find(&assigns).Error
	if err != nil {
		configslog.Log.Error("AppointmentAssignRepository.FindActiveByTechnicianOnDate: DB error",
			zap.Uint("technicianID", technicianID), zap.Error(err))
		return nil, err
	}
	return assigns, nil
}

// CountActiveOnDate teknisyenin verilen gündeki aktif atama sayısı (yük dengeleme anahtarı).
func (r *AppointmentAssignRepository) CountActiveOnDate(ctx context.Context, technicianID uint, date time.Time) (int64, error) {
	dayStart := models.DateOnly(date)
	dayEnd := dayStart.AddDate(0, 0, 1)
	return r.countActiveBetween(ctx, technicianID, dayStart, dayEnd)
}

// CountActiveInMonth teknisyenin anchor'ın ayındaki aktif atama sayısı (ikincil anahtar).
func (r *AppointmentAssignRepository) CountActiveInMonth(ctx context.Context, technicianID uint, anchor time.Time) (int64, error) {
	monthStart := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)
	return r.countActiveBetween(ctx, technicianID, monthStart, monthEnd)
}

func (r *AppointmentAssignRepository) countActiveBetween(ctx context.Context, technicianID uint, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AppointmentAssign{}).
		Joins("JOIN appointments ON appointments.id = appointment_assigns.appointment_id AND appointments.deleted_at IS NULL").
		Where("appointment_assigns.user_id = ?", technicianID).
		Where("appointments.start_time >= ? AND appointments.start_time < ?", from, to).
		Where("appointments.status NOT IN ?", inactiveAppointmentStatuses).
		Count(&count).Error
	return count, err
}

// SetConfirmationForAppointment randevunun tüm atamalarında onay bayrağını günceller.
func (r *AppointmentAssignRepository) SetConfirmationForAppointment(ctx context.Context, appointmentID uint, confirmed bool) error {
	return r.db.WithContext(ctx).Model(&models.AppointmentAssign{}).
		Where("appointment_id = ?", appointmentID).
		Update("is_confirmed", confirmed).Error
}

// HardDelete atama satırını fiziksel olarak kaldırır. Soft delete kullanılmaz;
// aksi halde (appointment_id, user_id) unique index'i yeniden atamayı engellerdi.
func (r *AppointmentAssignRepository) HardDelete(ctx context.Context, assign *models.AppointmentAssign) error {
	if assign == nil || assign.ID == 0 {
		return errors.New("silinecek atama geçerli değil")
	}
	return r.db.WithContext(ctx).Unscoped().Delete(assign).Error
}

var _ IAppointmentAssignRepository = (*AppointmentAssignRepository)(nil)
