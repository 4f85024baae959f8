package repository

import (
	"context"
	"strings"

	"fleetadmin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaxRuleListFilter narrows the admin listing. Empty fields are ignored.
type TaxRuleListFilter struct {
	Search       string
	TaxType      string
	ApplicableTo string
	IsActive     *bool
	Page         int
	Limit        int
}

type TaxRuleRepository interface {
	Create(ctx context.Context, rule *model.TaxRule) error
	Update(ctx context.Context, rule *model.TaxRule) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.TaxRule, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.TaxRule, error)
	List(ctx context.Context, filter TaxRuleListFilter) ([]model.TaxRule, int64, error)
	ListAll(ctx context.Context) ([]model.TaxRule, error)
	ListActive(ctx context.Context) ([]model.TaxRule, error)
	SetActive(ctx context.Context, ids []uuid.UUID, active bool) (int64, error)
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type taxRuleRepository struct {
	db *gorm.DB
}

func NewTaxRuleRepository(db *gorm.DB) TaxRuleRepository {
	return &taxRuleRepository{db: db}
}

func (r *taxRuleRepository) Create(ctx context.Context, rule *model.TaxRule) error {
	return GetDB(ctx, r.db).Create(rule).Error
}

func (r *taxRuleRepository) Update(ctx context.Context, rule *model.TaxRule) error {
	return GetDB(ctx, r.db).Save(rule).Error
}

func (r *taxRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.TaxRule{}).Error
}

func (r *taxRuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TaxRule, error) {
	var rule model.TaxRule
	if err := GetDB(ctx, r.db).First(&rule, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *taxRuleRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.TaxRule, error) {
	var rules []model.TaxRule
	if err := GetDB(ctx, r.db).Where("id IN ?", ids).Order("priority_order asc, id asc").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *taxRuleRepository) List(ctx context.Context, filter TaxRuleListFilter) ([]model.TaxRule, int64, error) {
	var rules []model.TaxRule
	var total int64

	db := GetDB(ctx, r.db)
	if err := r.applyFilter(db.Model(&model.TaxRule{}), filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := r.applyFilter(db.Model(&model.TaxRule{}), filter).Order("priority_order asc, created_at desc").Offset(offset).Limit(filter.Limit).Find(&rules).Error; err != nil {
		return nil, 0, err
	}

	return rules, total, nil
}

func (r *taxRuleRepository) ListAll(ctx context.Context) ([]model.TaxRule, error) {
	var rules []model.TaxRule
	if err := GetDB(ctx, r.db).Order("priority_order asc, id asc").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

// ListActive returns rules with the master switch on. Date windows are left to the engine,
// which evaluates them against the charge's own evaluation time.
func (r *taxRuleRepository) ListActive(ctx context.Context) ([]model.TaxRule, error) {
	var rules []model.TaxRule
	if err := GetDB(ctx, r.db).
		Where("is_active = ?", true).
		Order("priority_order asc, id asc").
		Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *taxRuleRepository) SetActive(ctx context.Context, ids []uuid.UUID, active bool) (int64, error) {
	res := GetDB(ctx, r.db).Model(&model.TaxRule{}).Where("id IN ?", ids).Update("is_active", active)
	return res.RowsAffected, res.Error
}

func (r *taxRuleRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	res := GetDB(ctx, r.db).Where("id IN ?", ids).Delete(&model.TaxRule{})
	return res.RowsAffected, res.Error
}

func (r *taxRuleRepository) applyFilter(query *gorm.DB, filter TaxRuleListFilter) *gorm.DB {
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)", like, like)
	}
	if filter.TaxType != "" {
		query = query.Where("tax_type = ?", filter.TaxType)
	}
	if filter.ApplicableTo != "" {
		query = query.Where("applicable_to = ?", filter.ApplicableTo)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	return query
}
