package services

import (
	"context"
	"errors"
	"strings"

	"tesis.link/configs/configslog"
	"tesis.link/models"
	"tesis.link/repositories"

	"golang.org/x/crypto/bcrypt"
)

// IUserService kimlik doğrulama ve kullanıcı sorguları için arayüz.
type IUserService interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

// UserService IUserService arayüzünü uygular.
type UserService struct {
	repo repositories.IUserRepository
}

// NewUserService yeni bir UserService örneği oluşturur.
func NewUserService() IUserService {
	return &UserService{repo: repositories.NewUserRepository()}
}

// Authenticate e-posta + parola doğrular. Kullanıcı bulunamasa da parola
// yanlış olsa da aynı hata döner; hesap pasifse giriş reddedilir.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		configslog.SLog.Warnf("Başarısız giriş denemesi: %s", email)
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

var _ IUserService = (*UserService)(nil)
