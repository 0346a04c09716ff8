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

// CreateWorkSlotRangeInput tarih aralığı için vardiya açma girdisi.
type CreateWorkSlotRangeInput struct {
	TechnicianID uint      `json:"technician_id"`
	SlotID       uint      `json:"slot_id"`
	From         time.Time `json:"from"`
	To           time.Time `json:"to"`
}

// WorkSlotEntry tekil vardiya kaydı girdisi (liste halinde açma için).
type WorkSlotEntry struct {
	TechnicianID uint      `json:"technician_id"`
	SlotID       uint      `json:"slot_id"`
	Date         time.Time `json:"date"`
}

// IWorkSlotService vardiya takvimi işlemleri için arayüz.
type IWorkSlotService interface {
	CreateRange(ctx context.Context, actor Actor, input CreateWorkSlotRangeInput) ([]models.WorkSlot, error)
	CreateList(ctx context.Context, actor Actor, entries []WorkSlotEntry) ([]models.WorkSlot, error)
	UpdateStatus(ctx context.Context, actor Actor, id uint, newStatus models.WorkSlotStatus, note string) error
	Delete(ctx context.Context, actor Actor, id uint) error
	Query(ctx context.Context, actor Actor, filter repositories.WorkSlotFilter) ([]models.WorkSlot, error)
	GetTracking(ctx context.Context, actor Actor, workSlotID uint) ([]models.WorkSlotStatusTracking, error)
}

// WorkSlotService IWorkSlotService arayüzünü uygular.
type WorkSlotService struct {
	repo      repositories.IWorkSlotRepository
	slotRepo  repositories.ISlotRepository
	userRepo  repositories.IUserRepository
	trackRepo repositories.ITrackingRepository
	db        *gorm.DB
}

// NewWorkSlotService yeni bir WorkSlotService örneği oluşturur.
func NewWorkSlotService() IWorkSlotService {
	return &WorkSlotService{
		repo:      repositories.NewWorkSlotRepository(),
		slotRepo:  repositories.NewSlotRepository(),
		userRepo:  repositories.NewUserRepository(),
		trackRepo: repositories.NewTrackingRepository(),
		db:        configs.GetDB(),
	}
}

// Vardiya durum makinesinin izinli geçişleri.
var workSlotTransitions = map[models.WorkSlotStatus][]models.WorkSlotStatus{
	models.WorkSlotStatusNotStarted: {models.WorkSlotStatusWorking, models.WorkSlotStatusOff},
	models.WorkSlotStatusWorking:    {models.WorkSlotStatusCompleted, models.WorkSlotStatusOff},
	models.WorkSlotStatusOff:        {models.WorkSlotStatusNotStarted},
}

// WorkSlotTransitionAllowed (from, to) vardiya geçişi tanımlı mı?
func WorkSlotTransitionAllowed(from, to models.WorkSlotStatus) bool {
	for _, allowed := range workSlotTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// CreateRange [from, to] aralığının her günü için vardiya kaydı açar.
// Atomiktir: aralıktaki tek bir gün bile çakışırsa hiçbir kayıt açılmaz.
func (s *WorkSlotService) CreateRange(ctx context.Context, actor Actor, input CreateWorkSlotRangeInput) ([]models.WorkSlot, error) {
	if !actor.Valid() || !actor.HasAnyRole(models.RoleTechnicianLead, models.RoleManager) {
		return nil, ErrForbidden
	}
	from := models.DateOnly(input.From)
	to := models.DateOnly(input.To)
	if to.Before(from) {
		return nil, ErrInvalidTimeRange
	}

	var entries []WorkSlotEntry
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		entries = append(entries, WorkSlotEntry{
			TechnicianID: input.TechnicianID,
			SlotID:       input.SlotID,
			Date:         day,
		})
	}
	return s.CreateList(ctx, actor, entries)
}

// CreateList verilen (teknisyen, gün, vardiya) kayıtlarını tek transaction
// içinde açar ve her biri için izleme satırı yazar.
func (s *WorkSlotService) CreateList(ctx context.Context, actor Actor, entries []WorkSlotEntry) ([]models.WorkSlot, error) {
	if !actor.Valid() || !actor.HasAnyRole(models.RoleTechnicianLead, models.RoleManager) {
		return nil, ErrForbidden
	}
	if len(entries) == 0 {
		return nil, ErrInvalidInput
	}

	var created []models.WorkSlot
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, actor.UserID)
		workSlotRepoTx := repositories.NewWorkSlotRepositoryTx(tx)
		slotRepoTx := repositories.NewSlotRepositoryTx(tx)
		userRepoTx := repositories.NewUserRepositoryTx(tx)
		trackingRepoTx := repositories.NewTrackingRepositoryTx(tx)

		for _, entry := range entries {
			technician, err := userRepoTx.FindByID(txCtx, entry.TechnicianID)
			if err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					return ErrUserNotFound
				}
				return err
			}
			if !technician.IsTechnician() || !technician.IsActive {
				return ErrUserNotFound
			}
			if _, err := slotRepoTx.FindByID(txCtx, entry.SlotID); err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					return ErrSlotNotFound
				}
				return err
			}

			exists, err := workSlotRepoTx.Exists(txCtx, entry.TechnicianID, entry.Date, entry.SlotID)
			if err != nil {
				return err
			}
			if exists {
				return ErrDuplicateSlot
			}

			workSlot := models.WorkSlot{
				TechnicianID: entry.TechnicianID,
				Date:         models.DateOnly(entry.Date),
				SlotID:       entry.SlotID,
				Status:       models.WorkSlotStatusNotStarted,
			}
			if err := workSlotRepoTx.Create(txCtx, &workSlot); err != nil {
				if repositories.IsUniqueViolation(err) {
					return ErrDuplicateSlot
				}
				configslog.Log.Error("CreateList: vardiya kaydı oluşturulamadı", zap.Error(err))
				return err
			}

			track := models.WorkSlotStatusTracking{
				WorkSlotID:   workSlot.ID,
				TechnicianID: workSlot.TechnicianID,
				OldStatus:    "",
				NewStatus:    string(models.WorkSlotStatusNotStarted),
				ActorID:      actor.UserID,
				Note:         "vardiya kaydı açıldı",
			}
			if err := trackingRepoTx.AppendWorkSlot(txCtx, &track); err != nil {
				return err
			}
			created = append(created, workSlot)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	configslog.SLog.Infof("%d vardiya kaydı açıldı (aktör: %d)", len(created), actor.UserID)
	return created, nil
}

// UpdateStatus vardiya durumunu taşır. Şef/yönetici herkesinkini, teknisyen
// yalnızca kendi vardiyasını güncelleyebilir.
func (s *WorkSlotService) UpdateStatus(ctx context.Context, actor Actor, id uint, newStatus models.WorkSlotStatus, note string) error {
	if !actor.Valid() {
		return ErrForbidden
	}
	if !models.ValidWorkSlotStatus(newStatus) {
		return ErrInvalidInput
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, actor.UserID)
		workSlotRepoTx := repositories.NewWorkSlotRepositoryTx(tx)
		trackingRepoTx := repositories.NewTrackingRepositoryTx(tx)

		workSlot, err := workSlotRepoTx.FindByIDForUpdate(txCtx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrWorkSlotNotFound
			}
			return err
		}

		switch actor.Role {
		case models.RoleTechnicianLead, models.RoleManager:
			// tüm vardiyalar
		case models.RoleTechnician:
			if workSlot.TechnicianID != actor.UserID {
				return ErrForbidden
			}
		default:
			return ErrForbidden
		}

		if !WorkSlotTransitionAllowed(workSlot.Status, newStatus) {
			return ErrInvalidTransition
		}

		oldStatus := workSlot.Status
		workSlot.Status = newStatus
		if err := workSlotRepoTx.Save(txCtx, workSlot); err != nil {
			return err
		}

		track := models.WorkSlotStatusTracking{
			WorkSlotID:   workSlot.ID,
			TechnicianID: workSlot.TechnicianID,
			OldStatus:    string(oldStatus),
			NewStatus:    string(newStatus),
			ActorID:      actor.UserID,
			Note:         note,
		}
		return trackingRepoTx.AppendWorkSlot(txCtx, &track)
	})
}

// Delete vardiya kaydını fiziksel siler; izleme satırları FK taşımadığı için
// tarihçe okunabilir kalır.
func (s *WorkSlotService) Delete(ctx context.Context, actor Actor, id uint) error {
	if !actor.Valid() || !actor.HasAnyRole(models.RoleTechnicianLead, models.RoleManager) {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, actor.UserID)
		workSlotRepoTx := repositories.NewWorkSlotRepositoryTx(tx)
		trackingRepoTx := repositories.NewTrackingRepositoryTx(tx)

		workSlot, err := workSlotRepoTx.FindByIDForUpdate(txCtx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrWorkSlotNotFound
			}
			return err
		}

		track := models.WorkSlotStatusTracking{
			WorkSlotID:   workSlot.ID,
			TechnicianID: workSlot.TechnicianID,
			OldStatus:    string(workSlot.Status),
			NewStatus:    string(workSlot.Status),
			ActorID:      actor.UserID,
			Note:         "vardiya kaydı silindi",
		}
		if err := trackingRepoTx.AppendWorkSlot(txCtx, &track); err != nil {
			return err
		}
		return workSlotRepoTx.HardDelete(txCtx, workSlot)
	})
}

// Query takvimi listeler. Teknisyen yalnızca kendi takvimini görebilir.
func (s *WorkSlotService) Query(ctx context.Context, actor Actor, filter repositories.WorkSlotFilter) ([]models.WorkSlot, error) {
	if !actor.Valid() || actor.Role == models.RoleResident {
		return nil, ErrForbidden
	}
	if actor.Role == models.RoleTechnician {
		filter.TechnicianID = actor.UserID
	}
	if filter.To.Before(filter.From) {
		return nil, ErrInvalidTimeRange
	}
	return s.repo.Query(ctx, filter)
}

// GetTracking vardiya kaydının durum tarihçesi.
func (s *WorkSlotService) GetTracking(ctx context.Context, actor Actor, workSlotID uint) ([]models.WorkSlotStatusTracking, error) {
	if !actor.Valid() || actor.Role == models.RoleResident {
		return nil, ErrForbidden
	}
	return s.trackRepo.FindByWorkSlotID(ctx, workSlotID)
}

var _ IWorkSlotService = (*WorkSlotService)(nil)
