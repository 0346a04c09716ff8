package services

import (
	"context"
	"errors"
	"strings"

	"tesis.link/configs/configslog"
	"tesis.link/models"
	"tesis.link/repositories"
)

// CreateTechniqueInput yeni teknik tanımı girdisi.
type CreateTechniqueInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ITechniqueService teknik kataloğu ve teknisyen becerileri için arayüz.
type ITechniqueService interface {
	ListTechniques(ctx context.Context, actor Actor) ([]models.Technique, error)
	CreateTechnique(ctx context.Context, actor Actor, input CreateTechniqueInput) (*models.Technique, error)
	GrantTechnique(ctx context.Context, actor Actor, userID, techniqueID uint) error
	RevokeTechnique(ctx context.Context, actor Actor, userID, techniqueID uint) error
	GetTechniciansByTechnique(ctx context.Context, actor Actor, techniqueID uint) ([]models.User, error)
	HasTechnique(ctx context.Context, actor Actor, userID, techniqueID uint) (bool, error)
}

// TechniqueService ITechniqueService arayüzünü uygular.
type TechniqueService struct {
	repo     repositories.ITechniqueRepository
	userRepo repositories.IUserRepository
}

// NewTechniqueService yeni bir TechniqueService örneği oluşturur.
func NewTechniqueService() ITechniqueService {
	return &TechniqueService{
		repo:     repositories.NewTechniqueRepository(),
		userRepo: repositories.NewUserRepository(),
	}
}

func (s *TechniqueService) ListTechniques(ctx context.Context, actor Actor) ([]models.Technique, error) {
	if !actor.Valid() {
		return nil, ErrForbidden
	}
	return s.repo.FindAll(ctx)
}

func (s *TechniqueService) CreateTechnique(ctx context.Context, actor Actor, input CreateTechniqueInput) (*models.Technique, error) {
	if !actor.Valid() || actor.Role != models.RoleManager {
		return nil, ErrForbidden
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	technique := models.Technique{
		Name:        name,
		Description: input.Description,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, &technique); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, ErrInvalidInput
		}
		return nil, err
	}
	configslog.SLog.Infof("Teknik tanımlandı: %s (ID %d)", technique.Name, technique.ID)
	return &technique, nil
}

// GrantTechnique teknisyene beceri tanımlar.
func (s *TechniqueService) GrantTechnique(ctx context.Context, actor Actor, userID, techniqueID uint) error {
	if !actor.Valid() || !actor.HasAnyRole(models.RoleTechnicianLead, models.RoleManager) {
		return ErrForbidden
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if !user.IsTechnician() {
		return ErrInvalidInput
	}
	if _, err := s.repo.FindByID(ctx, techniqueID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTechniqueNotFound
		}
		return err
	}

	if err := s.repo.Grant(ctx, userID, techniqueID); err != nil {
		if repositories.IsUniqueViolation(err) {
			return ErrTechniqueAlreadyGranted
		}
		return err
	}
	configslog.SLog.Infof("Beceri tanımlandı: teknisyen %d, teknik %d (aktör: %d)", userID, techniqueID, actor.UserID)
	return nil
}

func (s *TechniqueService) RevokeTechnique(ctx context.Context, actor Actor, userID, techniqueID uint) error {
	if !actor.Valid() || !actor.HasAnyRole(models.RoleTechnicianLead, models.RoleManager) {
		return ErrForbidden
	}
	if err := s.repo.Revoke(ctx, userID, techniqueID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTechniqueNotFound
		}
		return err
	}
	return nil
}

// GetTechniciansByTechnique verilen tekniğe sahip aktif teknisyenleri döndürür.
func (s *TechniqueService) GetTechniciansByTechnique(ctx context.Context, actor Actor, techniqueID uint) ([]models.User, error) {
	if !actor.Valid() || !actor.IsStaff() {
		return nil, ErrForbidden
	}
	ids, err := s.repo.FindTechnicianIDsByTechnique(ctx, techniqueID)
	if err != nil {
		return nil, err
	}
	return s.userRepo.FindActiveTechniciansByIDs(ctx, ids)
}

// HasTechnique teknisyenin verilen beceriye sahip olup olmadığını döndürür.
func (s *TechniqueService) HasTechnique(ctx context.Context, actor Actor, userID, techniqueID uint) (bool, error) {
	if !actor.Valid() || !actor.IsStaff() {
		return false, ErrForbidden
	}
	return s.repo.HasTechnique(ctx, userID, techniqueID)
}

var _ ITechniqueService = (*TechniqueService)(nil)
