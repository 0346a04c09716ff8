package repositories

import (
	"context"
	"errors"

	"tesis.link/configs"
	"tesis.link/models"

	"gorm.io/gorm"
)

// ITrackingRepository append-only izleme tabloları için arayüz.
// Güncelleme/silme bilinçli olarak yoktur.
type ITrackingRepository interface {
	AppendRequest(ctx context.Context, entry *models.RequestTracking) error
	AppendAppointment(ctx context.Context, entry *models.AppointmentTracking) error
	AppendWorkSlot(ctx context.Context, entry *models.WorkSlotStatusTracking) error
	FindByRequestID(ctx context.Context, requestID uint) ([]models.RequestTracking, error)
	FindByAppointmentID(ctx context.Context, appointmentID uint) ([]models.AppointmentTracking, error)
	FindByWorkSlotID(ctx context.Context, workSlotID uint) ([]models.WorkSlotStatusTracking, error)
}

// TrackingRepository ITrackingRepository'nin GORM implementasyonu.
type TrackingRepository struct {
	db *gorm.DB
}

// NewTrackingRepository yeni bir TrackingRepository örneği oluşturur.
func NewTrackingRepository() ITrackingRepository {
	return &TrackingRepository{db: configs.GetDB()}
}

// NewTrackingRepositoryTx transaction'a bağlı repository oluşturur.
// İzleme satırı tetikleyen işlemle aynı transaction'da yazılmalıdır.
func NewTrackingRepositoryTx(tx *gorm.DB) ITrackingRepository {
	return &TrackingRepository{db: tx}
}

func (r *TrackingRepository) AppendRequest(ctx context.Context, entry *models.RequestTracking) error {
	if entry == nil || entry.RequestID == 0 || entry.ActorID == 0 {
		return errors.New("eksik bilgiyle izleme satırı yazılamaz")
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *TrackingRepository) AppendAppointment(ctx context.Context, entry *models.AppointmentTracking) error {
	if entry == nil || entry.AppointmentID == 0 || entry.ActorID == 0 {
		return errors.New("eksik bilgiyle izleme satırı yazılamaz")
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *TrackingRepository) AppendWorkSlot(ctx context.Context, entry *models.WorkSlotStatusTracking) error {
	if entry == nil || entry.WorkSlotID == 0 || entry.ActorID == 0 {
		return errors.New("eksik bilgiyle izleme satırı yazılamaz")
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *TrackingRepository) FindByRequestID(ctx context.Context, requestID uint) ([]models.RequestTracking, error) {
	var entries []models.RequestTracking
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("created_at asc, id asc").
		Find(&entries).Error
	return entries, err
}

func (r *TrackingRepository) FindByAppointmentID(ctx context.Context, appointmentID uint) ([]models.AppointmentTracking, error) {
	var entries []models.AppointmentTracking
	err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Order("created_at asc, id asc").
		Find(&entries).Error
	return entries, err
}

func (r *TrackingRepository) FindByWorkSlotID(ctx context.Context, workSlotID uint) ([]models.WorkSlotStatusTracking, error) {
	var entries []models.WorkSlotStatusTracking
	err := r.db.WithContext(ctx).
		Where("work_slot_id = ?", workSlotID).
		Order("created_at asc, id asc").
		Find(&entries).Error
	return entries, err
}

var _ ITrackingRepository = (*TrackingRepository)(nil)
