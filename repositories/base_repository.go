package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrNotFound aranan kayıt veritabanında yok.
var ErrNotFound = errors.New("kayıt bulunamadı")

// IsUniqueViolation hata bir Postgres unique constraint ihlali mi?
// Yarışan yazmalarda constraint ihlali normal çakışma tespit yoludur;
// servis katmanı bunu ilgili alan hatasına çevirir.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// IBaseRepository ortak CRUD işlemleri için generik arayüz.
type IBaseRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	Save(ctx context.Context, entity *T) error
	SetAllowedSortColumns(columns []string)
	AllowedSortColumn(column string) bool
}

// BaseRepository IBaseRepository'nin GORM implementasyonu.
type BaseRepository[T any] struct {
	db          *gorm.DB
	sortColumns map[string]struct{}
}

// NewBaseRepository verilen bağlantı (veya transaction) ile base repo oluşturur.
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{db: db, sortColumns: map[string]struct{}{}}
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (r *BaseRepository[T]) Save(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

// SetAllowedSortColumns sıralamaya açık sütunları belirler.
func (r *BaseRepository[T]) SetAllowedSortColumns(columns []string) {
	r.sortColumns = make(map[string]struct{}, len(columns))
	for _, c := range columns {
		r.sortColumns[c] = struct{}{}
	}
}

// AllowedSortColumn sütun sıralamaya açık mı?
func (r *BaseRepository[T]) AllowedSortColumn(column string) bool {
	_, ok := r.sortColumns[column]
	return ok
}

var _ IBaseRepository[struct{}] = (*BaseRepository[struct{}])(nil)
