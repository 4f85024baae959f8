package repository

import (
	"context"

	"fleetadmin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChargeListFilter struct {
	Service string
	Zone    string
	Page    int
	Limit   int
}

type ChargeRepository interface {
	Create(ctx context.Context, charge *model.Charge) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Charge, error)
	List(ctx context.Context, filter ChargeListFilter) ([]model.Charge, int64, error)
	CountByPrefix(ctx context.Context, prefix string) (int64, error)
	// LockChargeSequence serializes numbering for prefix until the surrounding transaction ends.
	LockChargeSequence(ctx context.Context, prefix string) error
}

type chargeRepository struct {
	db *gorm.DB
}

func NewChargeRepository(db *gorm.DB) ChargeRepository {
	return &chargeRepository{db: db}
}

// Create inserts the charge together with its tax lines.
func (r *chargeRepository) Create(ctx context.Context, charge *model.Charge) error {
	return GetDB(ctx, r.db).Create(charge).Error
}

func (r *chargeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Charge, error) {
	var charge model.Charge
	if err := GetDB(ctx, r.db).
		Preload("TaxLines", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		First(&charge, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &charge, nil
}

func (r *chargeRepository) List(ctx context.Context, filter ChargeListFilter) ([]model.Charge, int64, error) {
	var charges []model.Charge
	var total int64

	db := GetDB(ctx, r.db)
	if err := chargeFilter(db.Model(&model.Charge{}), filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := chargeFilter(db.Model(&model.Charge{}), filter).
		Preload("TaxLines", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Order("created_at desc").Offset(offset).Limit(filter.Limit).
		Find(&charges).Error; err != nil {
		return nil, 0, err
	}

	return charges, total, nil
}

func (r *chargeRepository) CountByPrefix(ctx context.Context, prefix string) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.Charge{}).Where("charge_no LIKE ?", prefix+"%").Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// LockChargeSequence takes a transaction-scoped advisory lock keyed on prefix, so concurrent
// writers count and insert one after another. Outside a transaction the lock is released at once.
func (r *chargeRepository) LockChargeSequence(ctx context.Context, prefix string) error {
	return GetDB(ctx, r.db).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", prefix).Error
}

func chargeFilter(query *gorm.DB, filter ChargeListFilter) *gorm.DB {
	if filter.Service != "" {
		query = query.Where("service = ?", filter.Service)
	}
	if filter.Zone != "" {
		query = query.Where("zone = ?", filter.Zone)
	}
	return query
}
