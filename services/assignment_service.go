package services

import (
	"context"
	"errors"
	"time"

	"tesis.link/configs"
	"tesis.link/configs/configslog"
	"tesis.link/models"
	"tesis.link/repositories"

	"gorm.io/gorm"
)

// IAssignmentService teknisyen atama işlemleri için arayüz.
type IAssignmentService interface {
	SuggestTechnicians(ctx context.Context, actor Actor, appointmentID uint, techniqueID *uint) ([]AssignmentCandidate, error)
	AssignTechnicians(ctx context.Context, actor Actor, appointmentID uint, technicianIDs []uint) error
	SetConfirmation(ctx context.Context, actor Actor, appointmentID uint, confirmed bool) error
	CancelAssignment(ctx context.Context, actor Actor, appointmentID, technicianID uint, reason string) error
}

// AssignmentService IAssignmentService arayüzünü uygular.
type AssignmentService struct {
	apptRepo     repositories.IAppointmentRepository
	assignRepo   repositories.IAppointmentAssignRepository
	reqRepo      repositories.IRepairRequestRepository
	userRepo     repositories.IUserRepository
	techRepo     repositories.ITechniqueRepository
	workSlotRepo repositories.IWorkSlotRepository
	trackRepo    repositories.ITrackingRepository
	notifier     INotifier
	db           *gorm.DB
}

// NewAssignmentService yeni bir AssignmentService örneği oluşturur.
func NewAssignmentService() IAssignmentService {
	return &AssignmentService{
		apptRepo:     repositories.NewAppointmentRepository(),
		assignRepo:   repositories.NewAppointmentAssignRepository(),
		reqRepo:      repositories.NewRepairRequestRepository(),
		userRepo:     repositories.NewUserRepository(),
		techRepo:     repositories.NewTechniqueRepository(),
		workSlotRepo: repositories.NewWorkSlotRepository(),
		trackRepo:    repositories.NewTrackingRepository(),
		notifier:     NewLogNotifier(),
		db:           configs.GetDB(),
	}
}

// SuggestTechnicians randevu için uygun teknisyenleri yük sırasına göre önerir.
// Havuz: kaydın tekniğine sahip (teknik yoksa tüm) aktif teknisyenler; techniqueID
// verilirse kaydın tekniği yerine o kullanılır, sıfır ise filtre kaldırılır.
// Elenler: randevu anını kapsayan çalışılabilir vardiyası olmayanlar ve penceresi
// çakışan başka aktif randevusu olanlar.
func (s *AssignmentService) SuggestTechnicians(ctx context.Context, actor Actor, appointmentID uint, techniqueID *uint) ([]AssignmentCandidate, error) {
	if !actor.Valid() || !actor.HasAnyRole(models.RoleTechnicianLead, models.RoleManager) {
		return nil, ErrForbidden
	}

	appointment, err := s.apptRepo.FindByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	if appointment.Status.Terminal() {
		return nil, ErrAppointmentClosed
	}

	request, err := s.reqRepo.FindByID(ctx, appointment.RequestID)
	if err != nil {
		return nil, err
	}

	pool, err := s.candidatePool(ctx, request, techniqueID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	daySlots, err := s.workSlotRepo.FindForDate(ctx, appointment.StartTime)
	if err != nil {
		return nil, err
	}

	var candidates []AssignmentCandidate
	for _, technician := range pool {
		coveringSlot, ok := coveringWorkSlot(daySlots, technician.ID, appointment.StartTime)
		if !ok {
			continue
		}

		conflict, err := s.hasConflict(ctx, technician.ID, appointment, coveringSlot.Slot, daySlots)
		if err != nil {
			return nil, err
		}
		if conflict {
			continue
		}

		today, err := s.assignRepo.CountActiveOnDate(ctx, technician.ID, appointment.StartTime)
		if err != nil {
			return nil, err
		}
		month, err := s.assignRepo.CountActiveInMonth(ctx, technician.ID, appointment.StartTime)
		if err != nil {
			return nil, err
		}

		candidates = append(candidates, AssignmentCandidate{
			TechnicianID:           technician.ID,
			FullName:               technician.FullName,
			OnDutyNow:              onDutyAt(daySlots, technician.ID, now),
			ActiveAssignmentsToday: int(today),
			ActiveAssignmentsMonth: int(month),
		})
	}

	return RankCandidates(candidates, request.IsEmergency), nil
}

// resolveTechniqueFilter öneri için etkin teknik filtresi: çağrıda verilen
// değer kaydın tekniğini ezer, sıfır değeri filtreyi tamamen kaldırır.
func resolveTechniqueFilter(request *models.RepairRequest, override *uint) *uint {
	if override == nil {
		return request.TechniqueID
	}
	if *override == 0 {
		return nil
	}
	return override
}

// candidatePool etkin teknik filtresine göre aday teknisyen havuzu.
func (s *AssignmentService) candidatePool(ctx context.Context, request *models.RepairRequest, techniqueOverride *uint) ([]models.User, error) {
	techniqueID := resolveTechniqueFilter(request, techniqueOverride)
	if techniqueID == nil {
		return s.userRepo.FindActiveTechnicians(ctx)
	}
	if _, err := s.techRepo.FindByID(ctx, *techniqueID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTechniqueNotFound
		}
		return nil, err
	}
	ids, err := s.techRepo.FindTechnicianIDsByTechnique(ctx, *techniqueID)
	if err != nil {
		return nil, err
	}
	return s.userRepo.FindActiveTechniciansByIDs(ctx, ids)
}

// coveringWorkSlot teknisyenin randevu anını kapsayan, çalışılabilir durumdaki
// vardiya kaydını arar.
func coveringWorkSlot(daySlots []models.WorkSlot, technicianID uint, at time.Time) (models.WorkSlot, bool) {
	for _, ws := range daySlots {
		if ws.TechnicianID != technicianID || !ws.Available() {
			continue
		}
		if ws.Slot.Covers(at) {
			return ws, true
		}
	}
	return models.WorkSlot{}, false
}

// onDutyAt teknisyenin şu anda mesaide olup olmadığı (acil öncelik anahtarı).
func onDutyAt(daySlots []models.WorkSlot, technicianID uint, now time.Time) bool {
	for _, ws := range daySlots {
		if ws.TechnicianID == technicianID && ws.Status == models.WorkSlotStatusWorking && ws.Slot.Covers(now) {
			return true
		}
	}
	return false
}

// hasConflict teknisyenin aynı gün pencere çakışması yaşayan başka aktif
// randevusu var mı?
func (s *AssignmentService) hasConflict(ctx context.Context, technicianID uint, appointment *models.Appointment, coveringSlot models.Slot, daySlots []models.WorkSlot) (bool, error) {
	existing, err := s.assignRepo.FindActiveByTechnicianOnDate(ctx, technicianID, appointment.StartTime)
	if err != nil {
		return false, err
	}
	return hasWindowConflict(technicianID, appointment, coveringSlot, existing, daySlots), nil
}

// hasWindowConflict aday randevunun penceresini mevcut atamaların pencereleriyle
// karşılaştırır. Bitişi açık her randevunun penceresi KENDİ başlangıcını kapsayan
// vardiyaya göre türetilir; sabah vardiyasındaki açık uçlu bir randevu akşam
// vardiyasındaki adaya taşmaz. Teknisyen randevuya zaten atanmışsa bu da çakışma
// sayılır.
func hasWindowConflict(technicianID uint, appointment *models.Appointment, coveringSlot models.Slot, existing []models.AppointmentAssign, daySlots []models.WorkSlot) bool {
	start, end := appointment.WindowWithin(coveringSlot)

	for _, assign := range existing {
		if assign.AppointmentID == appointment.ID {
			return true
		}
		otherSlot := coveringSlot
		if ws, ok := coveringWorkSlot(daySlots, technicianID, assign.Appointment.StartTime); ok {
			otherSlot = ws.Slot
		}
		otherStart, otherEnd := assign.Appointment.WindowWithin(otherSlot)
		if models.WindowsOverlap(start, end, otherStart, otherEnd) {
			return true
		}
	}
	return false
}

// AssignTechnicians teknisyenleri randevuya atar ve randevuyu assigned durumuna
// taşır. Atomiktir: tek teknisyen bile uygun değilse hiçbiri atanmaz.
func (s *AssignmentService) AssignTechnicians(ctx context.Context, actor Actor, appointmentID uint, technicianIDs []uint) error {
	if !actor.Valid() || !actor.HasAnyRole(models.RoleTechnicianLead, models.RoleManager) {
		return ErrForbidden
	}
	if len(technicianIDs) == 0 {
		return ErrInvalidInput
	}
	seen := make(map[uint]bool, len(technicianIDs))
	for _, id := range technicianIDs {
		if id == 0 || seen[id] {
			return ErrInvalidInput
		}
		seen[id] = true
	}

	var requesterID uint
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, actor.UserID)
		apptRepoTx := repositories.NewAppointmentRepositoryTx(tx)
		assignRepoTx := repositories.NewAppointmentAssignRepositoryTx(tx)
		userRepoTx := repositories.NewUserRepositoryTx(tx)
		workSlotRepoTx := repositories.NewWorkSlotRepositoryTx(tx)
		trackingRepoTx := repositories.NewTrackingRepositoryTx(tx)

		appointment, err := apptRepoTx.FindByIDForUpdate(txCtx, appointmentID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrAppointmentNotFound
			}
			return err
		}
		if appointment.Status.Terminal() {
			return ErrAppointmentClosed
		}
		if appointment.Status != models.AppointmentStatusPending && appointment.Status != models.AppointmentStatusAssigned {
			return ErrInvalidTransition
		}

		technicians, err := userRepoTx.FindActiveTechniciansByIDs(txCtx, technicianIDs)
		if err != nil {
			return err
		}
		if len(technicians) != len(technicianIDs) {
			return ErrUserNotFound
		}

		existing, err := assignRepoTx.FindByAppointmentID(txCtx, appointment.ID)
		if err != nil {
			return err
		}
		alreadyAssigned := make(map[uint]bool, len(existing))
		for _, a := range existing {
			alreadyAssigned[a.UserID] = true
		}

		daySlots, err := workSlotRepoTx.FindForDate(txCtx, appointment.StartTime)
		if err != nil {
			return err
		}

		svcTx := &AssignmentService{assignRepo: assignRepoTx}
		for _, technician := range technicians {
			if alreadyAssigned[technician.ID] {
				return ErrTechnicianAlreadyAssigned
			}

			coveringSlot, ok := coveringWorkSlot(daySlots, technician.ID, appointment.StartTime)
			if !ok {
				return ErrWorkSlotNotAvailable
			}
			conflict, err := svcTx.hasConflict(txCtx, technician.ID, appointment, coveringSlot.Slot, daySlots)
			if err != nil {
				return err
			}
			if conflict {
				return ErrSlotConflict
			}

			assign := models.AppointmentAssign{
				AppointmentID: appointment.ID,
				UserID:        technician.ID,
				AssignedAt:    time.Now(),
			}
			if err := assignRepoTx.Create(txCtx, &assign); err != nil {
				if repositories.IsUniqueViolation(err) {
					return ErrTechnicianAlreadyAssigned
				}
				return err
			}
		}

		oldStatus := appointment.Status
		if appointment.Status == models.AppointmentStatusPending {
			appointment.Status = models.AppointmentStatusAssigned
			if err := apptRepoTx.Save(txCtx, appointment); err != nil {
				return err
			}
		}

		entry := models.AppointmentTracking{
			AppointmentID: appointment.ID,
			OldStatus:     string(oldStatus),
			NewStatus:     string(appointment.Status),
			ActorID:       actor.UserID,
			Note:          "teknisyen ataması yapıldı",
		}
		if err := trackingRepoTx.AppendAppointment(txCtx, &entry); err != nil {
			return err
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

	affected := append([]uint{requesterID}, technicianIDs...)
	dispatchNotification(ctx, s.notifier,
		NewNotificationEvent("appointment", appointmentID, string(models.AppointmentStatusAssigned), affected))

	configslog.SLog.Infof("Teknisyen ataması yapıldı: randevu %d, teknisyenler %v (aktör: %d)", appointmentID, technicianIDs, actor.UserID)
	return nil
}

// SetConfirmation randevunun tüm atamalarını onaylar veya onayı geri alır;
// randevu assigned <-> confirmed arasında taşınır. Durum değiştiyse talep eden
// ve atanmış teknisyenler bilgilendirilir.
func (s *AssignmentService) SetConfirmation(ctx context.Context, actor Actor, appointmentID uint, confirmed bool) error {
	if !actor.Valid() || !actor.HasAnyRole(models.RoleTechnicianLead, models.RoleManager) {
		return ErrForbidden
	}

	target := models.AppointmentStatusAssigned
	if confirmed {
		target = models.AppointmentStatusConfirmed
	}

	var changed bool
	var affected []uint
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, actor.UserID)
		apptRepoTx := repositories.NewAppointmentRepositoryTx(tx)
		assignRepoTx := repositories.NewAppointmentAssignRepositoryTx(tx)
		trackingRepoTx := repositories.NewTrackingRepositoryTx(tx)

		appointment, err := apptRepoTx.FindByIDForUpdate(txCtx, appointmentID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrAppointmentNotFound
			}
			return err
		}
		if appointment.Status.Terminal() {
			return ErrAppointmentClosed
		}
		if appointment.Status == target {
			return nil
		}
		if !appointmentTransitionAllowed(appointment.Status, target) {
			return ErrInvalidTransition
		}

		if err := assignRepoTx.SetConfirmationForAppointment(txCtx, appointment.ID, confirmed); err != nil {
			return err
		}

		oldStatus := appointment.Status
		appointment.Status = target
		if err := apptRepoTx.Save(txCtx, appointment); err != nil {
			return err
		}

		entry := models.AppointmentTracking{
			AppointmentID: appointment.ID,
			OldStatus:     string(oldStatus),
			NewStatus:     string(target),
			ActorID:       actor.UserID,
			Note:          "atama onay durumu güncellendi",
		}
		if err := trackingRepoTx.AppendAppointment(txCtx, &entry); err != nil {
			return err
		}

		assigns, err := assignRepoTx.FindByAppointmentID(txCtx, appointment.ID)
		if err != nil {
			return err
		}
		var requesterID uint
		if request, err := repositories.NewRepairRequestRepositoryTx(tx).FindByID(txCtx, appointment.RequestID); err == nil {
			requesterID = request.RequesterID
		}
		affected = assignmentAffectedUsers(requesterID, assigns)
		changed = true
		return nil
	})
	if txErr != nil {
		return txErr
	}

	if changed {
		dispatchNotification(ctx, s.notifier,
			NewNotificationEvent("appointment", appointmentID, string(target), affected))
	}
	return nil
}

// assignmentAffectedUsers bildirim alıcıları: talep eden ve randevuya atanmış
// teknisyenler.
func assignmentAffectedUsers(requesterID uint, assigns []models.AppointmentAssign) []uint {
	affected := make([]uint, 0, len(assigns)+1)
	if requesterID != 0 {
		affected = append(affected, requesterID)
	}
	for _, assign := range assigns {
		affected = append(affected, assign.UserID)
	}
	return affected
}

// CancelAssignment tek teknisyenin atamasını kaldırır. Satır fiziksel silinir
// ki teknisyen sonradan yeniden atanabilsin. Randevuda atama kalmazsa durum
// pending'e döner.
func (s *AssignmentService) CancelAssignment(ctx context.Context, actor Actor, appointmentID, technicianID uint, reason string) error {
	if !actor.Valid() || !actor.HasAnyRole(models.RoleTechnicianLead, models.RoleManager) {
		return ErrForbidden
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := models.ContextWithUserID(ctx, actor.UserID)
		apptRepoTx := repositories.NewAppointmentRepositoryTx(tx)
		assignRepoTx := repositories.NewAppointmentAssignRepositoryTx(tx)
		trackingRepoTx := repositories.NewTrackingRepositoryTx(tx)

		appointment, err := apptRepoTx.FindByIDForUpdate(txCtx, appointmentID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrAppointmentNotFound
			}
			return err
		}
		if appointment.Status.Terminal() {
			return ErrAppointmentClosed
		}

		assigns, err := assignRepoTx.FindByAppointmentID(txCtx, appointment.ID)
		if err != nil {
			return err
		}
		var target *models.AppointmentAssign
		for i := range assigns {
			if assigns[i].UserID == technicianID {
				target = &assigns[i]
				break
			}
		}
		if target == nil {
			return ErrAssignmentNotFound
		}

		if err := assignRepoTx.HardDelete(txCtx, target); err != nil {
			return err
		}

		oldStatus := appointment.Status
		if len(assigns) == 1 {
			appointment.Status = models.AppointmentStatusPending
			if err := apptRepoTx.Save(txCtx, appointment); err != nil {
				return err
			}
		}

		note := "teknisyen ataması kaldırıldı"
		if reason != "" {
			note = note + ": " + reason
		}
		entry := models.AppointmentTracking{
			AppointmentID: appointment.ID,
			OldStatus:     string(oldStatus),
			NewStatus:     string(appointment.Status),
			ActorID:       actor.UserID,
			Note:          note,
		}
		return trackingRepoTx.AppendAppointment(txCtx, &entry)
	})
	if txErr != nil {
		return txErr
	}

	dispatchNotification(ctx, s.notifier,
		NewNotificationEvent("appointment", appointmentID, "assignment_cancelled", []uint{technicianID}))

	configslog.SLog.Infof("Atama kaldırıldı: randevu %d, teknisyen %d (aktör: %d)", appointmentID, technicianID, actor.UserID)
	return nil
}

var _ IAssignmentService = (*AssignmentService)(nil)
