package services

import (
	"context"
	"errors"
	"time"

	"tesis.link/configs"
	"tesis.link/configs/configslog"
	"tesis.link/models"
	"tesis.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CreateAppointmentInput yeni randevu girdisi.
type CreateAppointmentInput struct {
	RequestID uint       `json:"request_id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Note      string     `json:"note"`
}

// UpdateAppointmentInput randevu güncelleme girdisi.
type UpdateAppointmentInput struct {
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Note      string     `json:"note"`
}

// IAppointmentService randevu planlama işlemleri için arayüz.
type IAppointmentService interface {
	CreateAppointment(ctx context.Context, actor Actor, input CreateAppointmentInput) (*models.Appointment, error)
	GetAppointmentByID(ctx context.Context, actor Actor, id uint) (*models.Appointment, error)
	ListByRequest(ctx context.Context, actor Actor, requestID uint) ([]models.Appointment, error)
	ListForTechnician(ctx context.Context, actor Actor, from, to time.Time) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, actor Actor, id uint, input UpdateAppointmentInput) error
	DeleteAppointment(ctx context.Context, actor Actor, id uint) error
	CancelAppointment(ctx context.Context, actor Actor, id uint, reason string) error
	StartAppointment(ctx context.Context, actor Actor, id uint) error
	CompleteAppointment(ctx context.Context, actor Actor, id uint, note string) error
	GetTracking(ctx context.Context, actor Actor, appointmentID uint) ([]models.AppointmentTracking, error)
}

// AppointmentService IAppointmentService arayüzünü uygular.
type AppointmentService struct {
	repo       repositories.IAppointmentRepository
	reqRepo    repositories.IRepairRequestRepository
	assignRepo repositories.IAppointmentAssignRepository
	trackRepo  repositories.ITrackingRepository
	notifier   INotifier
	db         *gorm.DB
}

// NewAppointmentService yeni bir AppointmentService örneği oluşturur.
func NewAppointmentService() IAppointmentService {
	return &AppointmentService{
		repo:       repositories.NewAppointmentRepository(),
		reqRepo:    repositories.NewRepairRequestRepository(),
		assignRepo: repositories.NewAppointmentAssignRepository(),
		trackRepo:  repositories.NewTrackingRepository(),
		notifier:   NewLogNotifier(),
		db:         configs.GetDB(),
	}
}

// ValidateAppointmentWindow zaman penceresi kuralları: başlangıç geçmişte
// olamaz, bitiş başlangıçtan önce olamaz.
func ValidateAppointmentWindow(start time.Time, end *time.Time, now time.Time) error {
	if start.Before(now) {
		return ErrInvalidTimeRange
	}
	if end != nil && end.Before(start) {
		return ErrInvalidTimeRange
	}
	return nil
}

// CreateAppointment onaylı bir kayıt için randevu açar. Kayıt başına aynı anda
// tek aktif randevu olabilir; takip randevusu öncekinin kapanmasını bekler.
func (s *AppointmentService) CreateAppointment(ctx context.Context, actor Actor, input CreateAppointmentInput) (*models.Appointment, error) {
	if !actor.Valid() || !actor.HasAnyRole(models.RoleTechnicianLead, models.RoleManager) {
		return nil, ErrForbidden
	}
	if err := ValidateAppointmentWindow(input.StartTime, input.EndTime, time.Now().UTC()); err != nil {
		return nil, err
	}

	var created *models.Appointment
	var requesterID uint
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, actor.UserID)
		requestRepoTx := repositories.NewRepairRequestRepositoryTx(tx)
		apptRepoTx := repositories.NewAppointmentRepositoryTx(tx)
		trackingRepoTx := repositories.NewTrackingRepositoryTx(tx)

		request, err := requestRepoTx.FindByIDForUpdate(txCtx, input.RequestID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrRequestNotFound
			}
			return err
		}
		if request.Status.Terminal() || request.Status == models.RequestStatusPending {
			return ErrRequestNotApproved
		}

		if _, err := apptRepoTx.FindActiveByRequestID(txCtx, request.ID); err == nil {
			return ErrConflictingAppointmentExists
		} else if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}

		appointment := models.Appointment{
			RequestID: request.ID,
			StartTime: input.StartTime,
			EndTime:   input.EndTime,
			Note:      input.Note,
			Status:    models.AppointmentStatusPending,
		}
		if err := apptRepoTx.Create(txCtx, &appointment); err != nil {
			configslog.Log.Error("CreateAppointment: randevu oluşturulamadı", zap.Error(err))
			return err
		}

		entry := models.AppointmentTracking{
			AppointmentID: appointment.ID,
			OldStatus:     "",
			NewStatus:     string(models.AppointmentStatusPending),
			ActorID:       actor.UserID,
			Note:          "randevu oluşturuldu",
		}
		if err := trackingRepoTx.AppendAppointment(txCtx, &entry); err != nil {
			return err
		}

		created = &appointment
		requesterID = request.RequesterID
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	dispatchNotification(ctx, s.notifier,
		NewNotificationEvent("appointment", created.ID, string(created.Status), []uint{requesterID}))

	configslog.SLog.Infof("Randevu oluşturuldu: ID %d, kayıt %d, başlangıç %s", created.ID, created.RequestID, created.StartTime.Format(time.RFC3339))
	return created, nil
}

func (s *AppointmentService) GetAppointmentByID(ctx context.Context, actor Actor, id uint) (*models.Appointment, error) {
	if !actor.Valid() {
		return nil, ErrForbidden
	}
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	if actor.Role == models.RoleResident && appointment.Request.RequesterID != actor.UserID {
		return nil, ErrForbidden
	}
	return appointment, nil
}

func (s *AppointmentService) ListByRequest(ctx context.Context, actor Actor, requestID uint) ([]models.Appointment, error) {
	if !actor.Valid() {
		return nil, ErrForbidden
	}
	request, err := s.reqRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if actor.Role == models.RoleResident && request.RequesterID != actor.UserID {
		return nil, ErrForbidden
	}
	return s.repo.FindByRequestID(ctx, requestID)
}

// ListForTechnician teknisyenin kendi randevu takvimi.
func (s *AppointmentService) ListForTechnician(ctx context.Context, actor Actor, from, to time.Time) ([]models.Appointment, error) {
	if !actor.Valid() || actor.Role != models.RoleTechnician {
		return nil, ErrForbidden
	}
	if to.Before(from) {
		return nil, ErrInvalidTimeRange
	}
	return s.repo.FindForTechnician(ctx, actor.UserID, from, to)
}

// UpdateAppointment zaman/not günceller. Yalnızca henüz başlamamış
// (pending/assigned/confirmed) randevular güncellenebilir.
func (s *AppointmentService) UpdateAppointment(ctx context.Context, actor Actor, id uint, input UpdateAppointmentInput) error {
	if !actor.Valid() || !actor.HasAnyRole(models.RoleTechnicianLead, models.RoleManager) {
		return ErrForbidden
	}
	if err := ValidateAppointmentWindow(input.StartTime, input.EndTime, time.Now().UTC()); err != nil {
		return err
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, actor.UserID)
		apptRepoTx := repositories.NewAppointmentRepositoryTx(tx)
		trackingRepoTx := repositories.NewTrackingRepositoryTx(tx)

		appointment, err := apptRepoTx.FindByIDForUpdate(txCtx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrAppointmentNotFound
			}
			return err
		}
		switch appointment.Status {
		case models.AppointmentStatusPending, models.AppointmentStatusAssigned, models.AppointmentStatusConfirmed:
			// güncellenebilir
		default:
			return ErrAppointmentClosed
		}

		appointment.StartTime = input.StartTime
		appointment.EndTime = input.EndTime
		appointment.Note = input.Note
		if err := apptRepoTx.Save(txCtx, appointment); err != nil {
			return err
		}

		entry := models.AppointmentTracking{
			AppointmentID: appointment.ID,
			OldStatus:     string(appointment.Status),
			NewStatus:     string(appointment.Status),
			ActorID:       actor.UserID,
			Note:          "randevu zamanı/notu güncellendi",
		}
		return trackingRepoTx.AppendAppointment(txCtx, &entry)
	})
	if txErr != nil {
		configslog.Log.Error("UpdateAppointment transaction failed", zap.Uint("id", id), zap.Error(txErr))
		return txErr
	}
	return nil
}

// DeleteAppointment yalnızca hiç atanmamış (pending) randevuyu siler.
// Atanmış randevular silinmez, iptal edilir.
func (s *AppointmentService) DeleteAppointment(ctx context.Context, actor Actor, id uint) error {
	if !actor.Valid() || !actor.HasAnyRole(models.RoleTechnicianLead, models.RoleManager) {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, actor.UserID)
		apptRepoTx := repositories.NewAppointmentRepositoryTx(tx)

		appointment, err := apptRepoTx.FindByIDForUpdate(txCtx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrAppointmentNotFound
			}
			return err
		}
		if appointment.Status != models.AppointmentStatusPending {
			return ErrAppointmentClosed
		}
		return apptRepoTx.Delete(txCtx, appointment)
	})
}

// CancelAppointment randevuyu iptal eder; kayıt durumu etkilenmez,
// yeni randevu planlanabilir.
func (s *AppointmentService) CancelAppointment(ctx context.Context, actor Actor, id uint, reason string) error {
	if !actor.Valid() || !actor.HasAnyRole(models.RoleTechnicianLead, models.RoleManager) {
		return ErrForbidden
	}
	return s.transitionAppointment(ctx, actor, id, models.AppointmentStatusCancelled, reason, nil)
}

// StartAppointment atanmış teknisyen çalışmayı başlatır; kayıt da
// in_progress durumuna çekilir.
func (s *AppointmentService) StartAppointment(ctx context.Context, actor Actor, id uint) error {
	if !actor.Valid() || actor.Role != models.RoleTechnician {
		return ErrForbidden
	}
	cascade := models.RequestStatusInProgress
	return s.transitionAppointment(ctx, actor, id, models.AppointmentStatusInProgress, "çalışma başladı", &cascade)
}

// CompleteAppointment atanmış teknisyen çalışmayı bitirir; kayıt şef
// kontrolü (completed_pending_verify) durumuna çekilir.
func (s *AppointmentService) CompleteAppointment(ctx context.Context, actor Actor, id uint, note string) error {
	if !actor.Valid() || actor.Role != models.RoleTechnician {
		return ErrForbidden
	}
	cascade := models.RequestStatusCompletedPendingVerify
	return s.transitionAppointment(ctx, actor, id, models.AppointmentStatusCompleted, note, &cascade)
}

// Randevu durum makinesinin izinli geçişleri.
var appointmentTransitions = map[models.AppointmentStatus][]models.AppointmentStatus{
	models.AppointmentStatusPending:    {models.AppointmentStatusCancelled},
	models.AppointmentStatusAssigned:   {models.AppointmentStatusConfirmed, models.AppointmentStatusInProgress, models.AppointmentStatusCancelled},
	models.AppointmentStatusConfirmed:  {models.AppointmentStatusAssigned, models.AppointmentStatusInProgress, models.AppointmentStatusCancelled},
	models.AppointmentStatusInProgress: {models.AppointmentStatusCompleted, models.AppointmentStatusCancelled},
}

func appointmentTransitionAllowed(from, to models.AppointmentStatus) bool {
	for _, allowed := range appointmentTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// transitionAppointment randevu durumunu taşır, izleme satırını yazar ve
// gerekiyorsa kayıt durumunu aynı transaction içinde kademelendirir.
func (s *AppointmentService) transitionAppointment(ctx context.Context, actor Actor, id uint, newStatus models.AppointmentStatus, note string, cascadeTo *models.RequestStatus) error {
	var requestID, requesterID uint

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, actor.UserID)
		apptRepoTx := repositories.NewAppointmentRepositoryTx(tx)
		assignRepoTx := repositories.NewAppointmentAssignRepositoryTx(tx)
		trackingRepoTx := repositories.NewTrackingRepositoryTx(tx)

		appointment, err := apptRepoTx.FindByIDForUpdate(txCtx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrAppointmentNotFound
			}
			return err
		}
		if appointment.Status.Terminal() {
			return ErrAppointmentClosed
		}
		if !appointmentTransitionAllowed(appointment.Status, newStatus) {
			return ErrInvalidTransition
		}

		// Teknisyen yalnızca atandığı randevu üzerinde çalışabilir.
		if actor.Role == models.RoleTechnician {
			assigns, err := assignRepoTx.FindByAppointmentID(txCtx, appointment.ID)
			if err != nil {
				return err
			}
			assigned := false
			for _, a := range assigns {
				if a.UserID == actor.UserID {
					assigned = true
					break
				}
			}
			if !assigned {
				return ErrForbidden
			}
		}

		oldStatus := appointment.Status
		appointment.Status = newStatus
		if err := apptRepoTx.Save(txCtx, appointment); err != nil {
			return err
		}

		entry := models.AppointmentTracking{
			AppointmentID: appointment.ID,
			OldStatus:     string(oldStatus),
			NewStatus:     string(newStatus),
			ActorID:       actor.UserID,
			Note:          note,
		}
		if err := trackingRepoTx.AppendAppointment(txCtx, &entry); err != nil {
			return err
		}

		requestID = appointment.RequestID
		if cascadeTo != nil {
			if err := s.cascadeRequestStatus(txCtx, tx, actor, appointment.RequestID, *cascadeTo, note); err != nil {
				return err
			}
		}

		request, err := repositories.NewRepairRequestRepositoryTx(tx).FindByID(txCtx, appointment.RequestID)
		if err == nil {
			requesterID = request.RequesterID
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	dispatchNotification(ctx, s.notifier,
		NewNotificationEvent("appointment", id, string(newStatus), []uint{requesterID}))

	configslog.SLog.Infof("Randevu durumu güncellendi: ID %d -> %s (kayıt %d, aktör: %d)", id, newStatus, requestID, actor.UserID)
	return nil
}

// cascadeRequestStatus randevu sonucunu kayıt durumuna yansıtır. Geçiş
// tablo tarafından tanımlı değilse (kayıt zaten ileride) sessizce atlanır.
func (s *AppointmentService) cascadeRequestStatus(ctx context.Context, tx *gorm.DB, actor Actor, requestID uint, to models.RequestStatus, note string) error {
	requestRepoTx := repositories.NewRepairRequestRepositoryTx(tx)
	trackingRepoTx := repositories.NewTrackingRepositoryTx(tx)

	request, err := requestRepoTx.FindByIDForUpdate(ctx, requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRequestNotFound
		}
		return err
	}
	if request.Status == to {
		return nil
	}
	if !TransitionDefined(request.Status, to) || !TransitionAllowed(request.Status, to, actor.Role) {
		configslog.SLog.Warnf("Kademeli geçiş atlandı: kayıt %d (%s -> %s, rol %s)", requestID, request.Status, to, actor.Role)
		return nil
	}

	oldStatus := request.Status
	request.Status = to
	if err := requestRepoTx.Save(ctx, request); err != nil {
		return err
	}
	entry := models.RequestTracking{
		RequestID: request.ID,
		OldStatus: string(oldStatus),
		NewStatus: string(to),
		ActorID:   actor.UserID,
		Note:      note,
	}
	return trackingRepoTx.AppendRequest(ctx, &entry)
}

// GetTracking randevunun geçiş tarihçesi.
func (s *AppointmentService) GetTracking(ctx context.Context, actor Actor, appointmentID uint) ([]models.AppointmentTracking, error) {
	if _, err := s.GetAppointmentByID(ctx, actor, appointmentID); err != nil {
		return nil, err
	}
	return s.trackRepo.FindByAppointmentID(ctx, appointmentID)
}

var _ IAppointmentService = (*AppointmentService)(nil)
