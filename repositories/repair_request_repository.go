package repositories

import (
	"context"
	"errors"
	"strings"

	"tesis.link/configs"
	"tesis.link/configs/configslog"
	"tesis.link/models"
	"tesis.link/pkg/queryparams"
	"tesis.link/pkg/turkishsearch"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IRepairRequestRepository arıza/bakım kayıtları için veritabanı arayüzü.
type IRepairRequestRepository interface {
	Create(ctx context.Context, request *models.RepairRequest) error
	FindByID(ctx context.Context, id uint) (*models.RepairRequest, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*models.RepairRequest, error)
	FindAllPaginated(ctx context.Context, filter RequestListFilter, params queryparams.ListParams) ([]models.RepairRequest, int64, error)
	Save(ctx context.Context, request *models.RepairRequest) error
}

// RequestListFilter liste sorgusunun daraltma kriterleri.
type RequestListFilter struct {
	RequesterID uint // 0 ise tüm kayıtlar (yetkili personel görünümü)
	Emergency   *bool
}

// RepairRequestRepository IRepairRequestRepository'nin GORM implementasyonu.
type RepairRequestRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.RepairRequest]
}

// NewRepairRequestRepository yeni bir RepairRequestRepository örneği oluşturur.
func NewRepairRequestRepository() IRepairRequestRepository {
	return newRepairRequestRepository(configs.GetDB())
}

// NewRepairRequestRepositoryTx transaction'a bağlı repository oluşturur.
func NewRepairRequestRepositoryTx(tx *gorm.DB) IRepairRequestRepository {
	return newRepairRequestRepository(tx)
}

func newRepairRequestRepository(db *gorm.DB) *RepairRequestRepository {
	base := NewBaseRepository[models.RepairRequest](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "status", "is_emergency"})
	return &RepairRequestRepository{db: db, base: base}
}

func (r *RepairRequestRepository) Create(ctx context.Context, request *models.RepairRequest) error {
	if request == nil || request.RequesterID == 0 {
		return errors.New("talep eden olmadan arıza kaydı oluşturulamaz")
	}
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *RepairRequestRepository) FindByID(ctx context.Context, id uint) (*models.RepairRequest, error) {
	if id == 0 {
		return nil, errors.New("geçersiz RepairRequest ID")
	}
	var request models.RepairRequest
	err := r.db.WithContext(ctx).Preload("Technique").First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("RepairRequestRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &request, nil
}

// FindByIDForUpdate kaydı satır kilidiyle okur; durum geçişleri transaction
// içinde bu metodu kullanır.
func (r *RepairRequestRepository) FindByIDForUpdate(ctx context.Context, id uint) (*models.RepairRequest, error) {
	if id == 0 {
		return nil, errors.New("geçersiz RepairRequest ID")
	}
	var request models.RepairRequest
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

// FindAllPaginated kayıtları filtreleyip sayfalayarak döndürür.
// params.Name konu/açıklama üzerinde Türkçe-duyarsız arama yapar,
// params.Status durum filtresidir.
func (r *RepairRequestRepository) FindAllPaginated(ctx context.Context, filter RequestListFilter, params queryparams.ListParams) ([]models.RepairRequest, int64, error) {
	var requests []models.RepairRequest
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.RepairRequest{})
	if filter.RequesterID != 0 {
		query = query.Where("requester_id = ?", filter.RequesterID)
	}
	if filter.Emergency != nil {
		query = query.Where("is_emergency = ?", *filter.Emergency)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Name != "" {
		sqlFragment, args := turkishsearch.SQLFilter("repair_requests.subject", params.Name)
		query = query.Where(sqlFragment, args...)
	}

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("RepairRequestRepository.Count: DB error", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return requests, 0, nil
	}

	orderBy := strings.ToLower(params.OrderBy)
	if orderBy != "asc" && orderBy != "desc" {
		orderBy = queryparams.DefaultOrderBy
	}
	orderColumn := "created_at"
	if r.base.AllowedSortColumn(params.SortBy) {
		orderColumn = params.SortBy
	}

	err := query.
		Order(orderColumn + " " + orderBy).
		Preload("Technique").
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&requests).Error
	if err != nil {
		configslog.Log.Error("RepairRequestRepository.Find (Paginated): DB error", zap.Error(err))
		return nil, totalCount, err
	}
	return requests, totalCount, nil
}

func (r *RepairRequestRepository) Save(ctx context.Context, request *models.RepairRequest) error {
	if request == nil || request.ID == 0 {
		return errors.New("güncellenecek arıza kaydı geçerli değil")
	}
	return r.db.WithContext(ctx).Save(request).Error
}

var _ IRepairRequestRepository = (*RepairRequestRepository)(nil)
