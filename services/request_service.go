package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"tesis.link/configs"
	"tesis.link/configs/configslog"
	"tesis.link/models"
	"tesis.link/pkg/queryparams"
	"tesis.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CreateRequestInput yeni arıza/bakım kaydı girdisi.
type CreateRequestInput struct {
	ApartmentID           *uint  `json:"apartment_id"`
	CommonAreaID          *uint  `json:"common_area_id"`
	TechniqueID           *uint  `json:"technique_id"`
	ParentRequestID       *uint  `json:"parent_request_id"`
	MaintenanceScheduleID *uint  `json:"maintenance_schedule_id"`
	IsEmergency           bool   `json:"is_emergency"`
	Subject               string `json:"subject"`
	Description           string `json:"description"`
}

// IRequestService arıza kaydı yaşam döngüsü işlemleri için arayüz.
type IRequestService interface {
	CreateRequest(ctx context.Context, actor Actor, input CreateRequestInput) (*models.RepairRequest, error)
	GetRequestByID(ctx context.Context, actor Actor, id uint) (*models.RepairRequest, error)
	ListRequests(ctx context.Context, actor Actor, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	Transition(ctx context.Context, actor Actor, requestID uint, newStatus models.RequestStatus, note string) error
	GetTracking(ctx context.Context, actor Actor, requestID uint) ([]models.RequestTracking, error)
}

// RequestService IRequestService arayüzünü uygular.
type RequestService struct {
	repo       repositories.IRepairRequestRepository
	apptRepo   repositories.IAppointmentRepository
	assignRepo repositories.IAppointmentAssignRepository
	techRepo   repositories.ITechniqueRepository
	trackRepo  repositories.ITrackingRepository
	notifier   INotifier
	db         *gorm.DB
}

// NewRequestService yeni bir RequestService örneği oluşturur.
func NewRequestService() IRequestService {
	return &RequestService{
		repo:       repositories.NewRepairRequestRepository(),
		apptRepo:   repositories.NewAppointmentRepository(),
		assignRepo: repositories.NewAppointmentAssignRepository(),
		techRepo:   repositories.NewTechniqueRepository(),
		trackRepo:  repositories.NewTrackingRepository(),
		notifier:   NewLogNotifier(),
		db:         configs.GetDB(),
	}
}

// ValidateCreateRequestInput temel girdi doğrulamaları.
// Hedef olarak tam olarak daire XOR ortak alan verilmelidir.
func ValidateCreateRequestInput(input CreateRequestInput) error {
	if strings.TrimSpace(input.Subject) == "" {
		return ErrInvalidInput
	}
	hasApartment := input.ApartmentID != nil && *input.ApartmentID != 0
	hasCommonArea := input.CommonAreaID != nil && *input.CommonAreaID != 0
	if hasApartment == hasCommonArea {
		return ErrInvalidInput
	}
	return nil
}

// CreateRequest yeni kayıt açar; başlangıç durumu pending'dir ve açılış da
// izleme tablosuna yazılır.
func (s *RequestService) CreateRequest(ctx context.Context, actor Actor, input CreateRequestInput) (*models.RepairRequest, error) {
	if !actor.Valid() {
		return nil, ErrForbidden
	}
	if !actor.HasAnyRole(models.RoleResident, models.RoleReceptionist) {
		return nil, ErrForbidden
	}
	if err := ValidateCreateRequestInput(input); err != nil {
		return nil, err
	}

	// Sakin yalnızca kendi adına kayıt açar.
	requesterID := actor.UserID

	if input.TechniqueID != nil {
		if _, err := s.techRepo.FindByID(ctx, *input.TechniqueID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrTechniqueNotFound
			}
			return nil, err
		}
	}
	if input.ParentRequestID != nil {
		if _, err := s.repo.FindByID(ctx, *input.ParentRequestID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrRequestNotFound
			}
			return nil, err
		}
	}

	var created *models.RepairRequest
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, actor.UserID)
		requestRepoTx := repositories.NewRepairRequestRepositoryTx(tx)
		trackingRepoTx := repositories.NewTrackingRepositoryTx(tx)

		request := models.RepairRequest{
			RequesterID:           requesterID,
			ApartmentID:           input.ApartmentID,
			CommonAreaID:          input.CommonAreaID,
			TechniqueID:           input.TechniqueID,
			ParentRequestID:       input.ParentRequestID,
			MaintenanceScheduleID: input.MaintenanceScheduleID,
			IsEmergency:           input.IsEmergency,
			Subject:               strings.TrimSpace(input.Subject),
			Description:           input.Description,
			Status:                models.RequestStatusPending,
		}
		if err := requestRepoTx.Create(txCtx, &request); err != nil {
			configslog.Log.Error("CreateRequest: kayıt oluşturulamadı", zap.Error(err))
			return err
		}

		entry := models.RequestTracking{
			RequestID: request.ID,
			OldStatus: "",
			NewStatus: string(models.RequestStatusPending),
			ActorID:   actor.UserID,
			Note:      "kayıt açıldı",
		}
		if err := trackingRepoTx.AppendRequest(txCtx, &entry); err != nil {
			return err
		}

		created = &request
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	dispatchNotification(ctx, s.notifier,
		NewNotificationEvent("repair_request", created.ID, string(created.Status), []uint{created.RequesterID}))

	configslog.SLog.Infof("Arıza kaydı açıldı: ID %d (acil: %t, açan: %d)", created.ID, created.IsEmergency, actor.UserID)
	return created, nil
}

// GetRequestByID kaydı yetki süzgecinden geçirerek getirir.
func (s *RequestService) GetRequestByID(ctx context.Context, actor Actor, id uint) (*models.RepairRequest, error) {
	if !actor.Valid() {
		return nil, ErrForbidden
	}
	request, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if actor.Role == models.RoleResident && request.RequesterID != actor.UserID {
		return nil, ErrForbidden
	}
	return request, nil
}

// ListRequests kayıtları sayfalayarak listeler. Sakinler yalnızca kendi
// kayıtlarını görür; personel tüm kayıtları filtreleyebilir.
func (s *RequestService) ListRequests(ctx context.Context, actor Actor, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	if !actor.Valid() {
		return nil, ErrForbidden
	}
	params.Validate()

	filter := repositories.RequestListFilter{}
	if actor.Role == models.RoleResident {
		filter.RequesterID = actor.UserID
	}

	requests, totalCount, err := s.repo.FindAllPaginated(ctx, filter, params)
	if err != nil {
		configslog.Log.Error("ListRequests: kayıtlar listelenemedi", zap.Error(err))
		return nil, err
	}

	return &queryparams.PaginatedResult{
		Data: requests,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// Transition kaydı yeni duruma taşır. Geçişin yasallığı tablo üzerinden,
// sahiplik/atanmışlık kuralları ayrıca denetlenir; durum + izleme satırı
// tek transaction'da yazılır.
func (s *RequestService) Transition(ctx context.Context, actor Actor, requestID uint, newStatus models.RequestStatus, note string) error {
	if !actor.Valid() {
		return ErrForbidden
	}

	var requesterID uint
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, actor.UserID)
		requestRepoTx := repositories.NewRepairRequestRepositoryTx(tx)
		trackingRepoTx := repositories.NewTrackingRepositoryTx(tx)

		request, err := requestRepoTx.FindByIDForUpdate(txCtx, requestID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrRequestNotFound
			}
			return err
		}

		// Terminal durumdan çıkış yok; tanımsız geçiş de aynı hatadır.
		if !TransitionDefined(request.Status, newStatus) {
			return ErrInvalidTransition
		}
		if !TransitionAllowed(request.Status, newStatus, actor.Role) {
			return ErrForbidden
		}
		if err := s.checkOwnership(txCtx, tx, actor, request); err != nil {
			return err
		}

		oldStatus := request.Status
		request.Status = newStatus
		if newStatus == models.RequestStatusApproved {
			now := time.Now().UTC()
			request.AcceptedAt = &now
		}
		if err := requestRepoTx.Save(txCtx, request); err != nil {
			configslog.Log.Error("Transition: kayıt güncellenemedi", zap.Uint("requestID", requestID), zap.Error(err))
			return err
		}

		entry := models.RequestTracking{
			RequestID: request.ID,
			OldStatus: string(oldStatus),
			NewStatus: string(newStatus),
			ActorID:   actor.UserID,
			Note:      note,
		}
		if err := trackingRepoTx.AppendRequest(txCtx, &entry); err != nil {
			return err
		}

		requesterID = request.RequesterID
		return nil
	})
	if txErr != nil {
		return txErr
	}

	affected := s.affectedUsers(ctx, requestID, requesterID)
	dispatchNotification(ctx, s.notifier,
		NewNotificationEvent("repair_request", requestID, string(newStatus), affected))

	configslog.SLog.Infof("Arıza kaydı durumu güncellendi: ID %d -> %s (aktör: %d)", requestID, newStatus, actor.UserID)
	return nil
}

// checkOwnership sakin için sahiplik, teknisyen için atanmışlık şartı.
func (s *RequestService) checkOwnership(ctx context.Context, tx *gorm.DB, actor Actor, request *models.RepairRequest) error {
	switch actor.Role {
	case models.RoleResident:
		if request.RequesterID != actor.UserID {
			return ErrForbidden
		}
	case models.RoleTechnician:
		assigned, err := s.isAssignedTechnician(ctx, tx, actor.UserID, request.ID)
		if err != nil {
			return err
		}
		if !assigned {
			return ErrForbidden
		}
	}
	return nil
}

// isAssignedTechnician teknisyen kaydın aktif randevusuna atanmış mı?
func (s *RequestService) isAssignedTechnician(ctx context.Context, tx *gorm.DB, technicianID, requestID uint) (bool, error) {
	apptRepoTx := repositories.NewAppointmentRepositoryTx(tx)
	assignRepoTx := repositories.NewAppointmentAssignRepositoryTx(tx)

	appointment, err := apptRepoTx.FindActiveByRequestID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	assigns, err := assignRepoTx.FindByAppointmentID(ctx, appointment.ID)
	if err != nil {
		return false, err
	}
	for _, a := range assigns {
		if a.UserID == technicianID {
			return true, nil
		}
	}
	return false, nil
}

// affectedUsers bildirim alıcıları: talep eden + aktif randevunun teknisyenleri.
func (s *RequestService) affectedUsers(ctx context.Context, requestID, requesterID uint) []uint {
	affected := []uint{requesterID}
	appointment, err := s.apptRepo.FindActiveByRequestID(ctx, requestID)
	if err != nil {
		return affected
	}
	assigns, err := s.assignRepo.FindByAppointmentID(ctx, appointment.ID)
	if err != nil {
		return affected
	}
	for _, a := range assigns {
		affected = append(affected, a.UserID)
	}
	return affected
}

// GetTracking kaydın geçiş tarihçesini döndürür (sakin yalnızca kendi kaydı).
func (s *RequestService) GetTracking(ctx context.Context, actor Actor, requestID uint) ([]models.RequestTracking, error) {
	if _, err := s.GetRequestByID(ctx, actor, requestID); err != nil {
		return nil, err
	}
	return s.trackRepo.FindByRequestID(ctx, requestID)
}

var _ IRequestService = (*RequestService)(nil)
