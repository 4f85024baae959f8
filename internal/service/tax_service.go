package service

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	ierr "fleetadmin/internal/errors"
	"fleetadmin/internal/model"
	"fleetadmin/internal/repository"
	"fleetadmin/internal/tax"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// --- DTOs ---

// TaxRuleRequest is the payload of the tax settings form, used for create, update and preview.
type TaxRuleRequest struct {
	Name                   string   `json:"name" binding:"max=255"`
	Description            string   `json:"description"`
	TaxType                string   `json:"tax_type" binding:"required,oneof=percentage fixed hybrid"`
	Rate                   string   `json:"rate"`         // Decimal percent, e.g. "7.25"
	FixedAmount            string   `json:"fixed_amount"` // Decimal currency amount
	CalculationMethod      string   `json:"calculation_method" binding:"omitempty,oneof=simple compound cascading"`
	MinimumTaxableAmount   string   `json:"minimum_taxable_amount"`
	MaximumTaxAmount       string   `json:"maximum_tax_amount"`
	IsInclusive            bool     `json:"is_inclusive"`
	ApplicableTo           string   `json:"applicable_to" binding:"omitempty,oneof=all rides_only delivery_only specific"`
	ApplicableZones        []string `json:"applicable_zones"`
	ExcludedZones          []string `json:"excluded_zones"`
	ApplicableVehicleTypes []string `json:"applicable_vehicle_types"`
	ExcludedVehicleTypes   []string `json:"excluded_vehicle_types"`
	ApplicableServices     []string `json:"applicable_services"`
	ExcludedServices       []string `json:"excluded_services"`
	PriorityOrder          int      `json:"priority_order" binding:"gte=0"`
	StartsAt               string   `json:"starts_at"`  // RFC3339 or YYYY-MM-DD
	ExpiresAt              string   `json:"expires_at"` // RFC3339 or YYYY-MM-DD, inclusive
	IsActive               *bool    `json:"is_active"`  // defaults to true
}

type TaxRuleFilter struct {
	Search       string
	TaxType      string
	ApplicableTo string
	Status       string // "active", "inactive" or empty for all
	Page         int
	Limit        int
}

type BulkTaxRuleActionRequest struct {
	Action string   `json:"action" binding:"required,oneof=activate deactivate delete"`
	IDs    []string `json:"ids" binding:"required,min=1,max=200"`
}

type BulkActionResponse struct {
	Action   string   `json:"action"`
	Affected int64    `json:"affected"`
	NotFound []string `json:"not_found"` // requested ids that match no rule
}

type PreviewTaxRequest struct {
	Rule   TaxRuleRequest `json:"rule" binding:"required"`
	Amount string         `json:"amount" binding:"required"`
}

type CalculateTaxRequest struct {
	Amount         string `json:"amount" binding:"required"`
	Zone           string `json:"zone"`
	VehicleType    string `json:"vehicle_type"`
	Service        string `json:"service"`
	EvaluationTime string `json:"evaluation_time"` // RFC3339, defaults to now
}

type BatchCalculateTaxRequest struct {
	Charges []CalculateTaxRequest `json:"charges" binding:"required,min=1,max=500,dive"`
}

type TaxRuleResponse struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name"`
	Description            string   `json:"description"`
	TaxType                string   `json:"tax_type"`
	Rate                   *string  `json:"rate"`
	FixedAmount            *string  `json:"fixed_amount"`
	CalculationMethod      string   `json:"calculation_method"`
	MinimumTaxableAmount   string   `json:"minimum_taxable_amount"`
	MaximumTaxAmount       *string  `json:"maximum_tax_amount"`
	IsInclusive            bool     `json:"is_inclusive"`
	ApplicableTo           string   `json:"applicable_to"`
	ApplicableZones        []string `json:"applicable_zones"`
	ExcludedZones          []string `json:"excluded_zones"`
	ApplicableVehicleTypes []string `json:"applicable_vehicle_types"`
	ExcludedVehicleTypes   []string `json:"excluded_vehicle_types"`
	ApplicableServices     []string `json:"applicable_services"`
	ExcludedServices       []string `json:"excluded_services"`
	PriorityOrder          int      `json:"priority_order"`
	StartsAt               *string  `json:"starts_at"`
	ExpiresAt              *string  `json:"expires_at"`
	IsActive               bool     `json:"is_active"`
	CreatedAt              string   `json:"created_at"`
	UpdatedAt              string   `json:"updated_at"`
}

type TaxLineResponse struct {
	RuleID      string `json:"rule_id"`
	RuleName    string `json:"rule_name"`
	TaxBase     string `json:"tax_base"`
	TaxAmount   string `json:"tax_amount"`
	IsInclusive bool   `json:"is_inclusive"`
}

type TaxCalculationResponse struct {
	BaseAmount                string            `json:"base_amount"`
	Lines                     []TaxLineResponse `json:"lines"`
	TotalTax                  string            `json:"total_tax"`
	TotalAmount               string            `json:"total_amount"`
	EffectiveBaseForInclusive string            `json:"effective_base_for_inclusive"`
}

// Events published on rule changes.
const (
	EventTaxRuleCreated = "tax_rule.created"
	EventTaxRuleUpdated = "tax_rule.updated"
	EventTaxRuleDeleted = "tax_rule.deleted"
	EventTaxRulesBulk   = "tax_rule.bulk"
)

// --- Interface ---

type TaxService interface {
	ListTaxRules(ctx context.Context, filter TaxRuleFilter) ([]TaxRuleResponse, int64, error)
	GetTaxRule(ctx context.Context, id string) (TaxRuleResponse, error)
	CreateTaxRule(ctx context.Context, req TaxRuleRequest, userID string) (TaxRuleResponse, error)
	UpdateTaxRule(ctx context.Context, id string, req TaxRuleRequest, userID string) (TaxRuleResponse, error)
	DeleteTaxRule(ctx context.Context, id string, userID string) error
	ToggleTaxRuleStatus(ctx context.Context, id string, userID string) (TaxRuleResponse, error)
	BulkAction(ctx context.Context, req BulkTaxRuleActionRequest, userID string) (BulkActionResponse, error)
	ExportTaxRules(ctx context.Context, w io.Writer) error
	PreviewTax(ctx context.Context, req PreviewTaxRequest) (TaxCalculationResponse, error)
	CalculateTax(ctx context.Context, req CalculateTaxRequest) (TaxCalculationResponse, error)
	CalculateTaxBatch(ctx context.Context, req BatchCalculateTaxRequest) ([]TaxCalculationResponse, error)
}

type taxService struct {
	ServiceParams
}

func NewTaxService(params ServiceParams) TaxService {
	return &taxService{ServiceParams: params}
}

// --- Implementation ---

func (s *taxService) ListTaxRules(ctx context.Context, filter TaxRuleFilter) ([]TaxRuleResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	repoFilter := repository.TaxRuleListFilter{
		Search:       filter.Search,
		TaxType:      filter.TaxType,
		ApplicableTo: filter.ApplicableTo,
		Page:         filter.Page,
		Limit:        filter.Limit,
	}
	switch filter.Status {
	case "active":
		repoFilter.IsActive = lo.ToPtr(true)
	case "inactive":
		repoFilter.IsActive = lo.ToPtr(false)
	}

	rules, total, err := s.TaxRuleRepo.List(ctx, repoFilter)
	if err != nil {
		return nil, 0, repoError(err, "Tax rules")
	}

	return lo.Map(rules, func(r model.TaxRule, _ int) TaxRuleResponse {
		return toTaxRuleResponse(r)
	}), total, nil
}

func (s *taxService) GetTaxRule(ctx context.Context, id string) (TaxRuleResponse, error) {
	rule, err := s.findRule(ctx, id)
	if err != nil {
		return TaxRuleResponse{}, err
	}
	return toTaxRuleResponse(*rule), nil
}

func (s *taxService) CreateTaxRule(ctx context.Context, req TaxRuleRequest, userID string) (TaxRuleResponse, error) {
	domainRule, err := buildRule(req, true)
	if err != nil {
		return TaxRuleResponse{}, err
	}

	var row model.TaxRule
	row.ApplyDomain(domainRule)
	row.CreatedBy = parseUserID(userID)
	row.UpdatedBy = row.CreatedBy

	if err := s.TaxRuleRepo.Create(ctx, &row); err != nil {
		return TaxRuleResponse{}, repoError(err, "Tax rule")
	}

	s.Logger.Infow("tax rule created", "tax_rule_id", row.ID, "name", row.Name, "user_id", userID)
	writeAuditLog(ctx, s.ServiceParams, userID, model.ActionCreateTaxRule, row.ID.String(), row.Name, req)
	resp := toTaxRuleResponse(row)
	s.rulesChanged(EventTaxRuleCreated, resp)

	return resp, nil
}

func (s *taxService) UpdateTaxRule(ctx context.Context, id string, req TaxRuleRequest, userID string) (TaxRuleResponse, error) {
	row, err := s.findRule(ctx, id)
	if err != nil {
		return TaxRuleResponse{}, err
	}

	domainRule, err := buildRule(req, true)
	if err != nil {
		return TaxRuleResponse{}, err
	}

	row.ApplyDomain(domainRule)
	row.UpdatedBy = parseUserID(userID)

	if err := s.TaxRuleRepo.Update(ctx, row); err != nil {
		return TaxRuleResponse{}, repoError(err, "Tax rule")
	}

	s.Logger.Infow("tax rule updated", "tax_rule_id", row.ID, "user_id", userID)
	writeAuditLog(ctx, s.ServiceParams, userID, model.ActionUpdateTaxRule, row.ID.String(), row.Name, req)
	resp := toTaxRuleResponse(*row)
	s.rulesChanged(EventTaxRuleUpdated, resp)

	return resp, nil
}

func (s *taxService) DeleteTaxRule(ctx context.Context, id string, userID string) error {
	row, err := s.findRule(ctx, id)
	if err != nil {
		return err
	}

	if err := s.TaxRuleRepo.Delete(ctx, row.ID); err != nil {
		return repoError(err, "Tax rule")
	}

	s.Logger.Infow("tax rule deleted", "tax_rule_id", row.ID, "user_id", userID)
	writeAuditLog(ctx, s.ServiceParams, userID, model.ActionDeleteTaxRule, row.ID.String(), row.Name, map[string]string{"deleted_id": id})
	s.rulesChanged(EventTaxRuleDeleted, map[string]string{"id": row.ID.String()})

	return nil
}

func (s *taxService) ToggleTaxRuleStatus(ctx context.Context, id string, userID string) (TaxRuleResponse, error) {
	row, err := s.findRule(ctx, id)
	if err != nil {
		return TaxRuleResponse{}, err
	}

	row.IsActive = !row.IsActive
	row.UpdatedBy = parseUserID(userID)
	if err := s.TaxRuleRepo.Update(ctx, row); err != nil {
		return TaxRuleResponse{}, repoError(err, "Tax rule")
	}

	writeAuditLog(ctx, s.ServiceParams, userID, model.ActionToggleTaxRule, row.ID.String(), row.Name,
		map[string]bool{"is_active": row.IsActive})
	resp := toTaxRuleResponse(*row)
	s.rulesChanged(EventTaxRuleUpdated, resp)

	return resp, nil
}

func (s *taxService) BulkAction(ctx context.Context, req BulkTaxRuleActionRequest, userID string) (BulkActionResponse, error) {
	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range lo.Uniq(req.IDs) {
		id, err := parseID("tax rule id", raw)
		if err != nil {
			return BulkActionResponse{}, err
		}
		ids = append(ids, id)
	}

	var (
		affected int64
		notFound []string
	)
	err := s.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.TaxRuleRepo.FindByIDs(txCtx, ids)
		if err != nil {
			return repoError(err, "Tax rules")
		}
		known := lo.Map(existing, func(r model.TaxRule, _ int) uuid.UUID { return r.ID })
		notFound = lo.Map(lo.Without(ids, known...), func(id uuid.UUID, _ int) string { return id.String() })

		var (
			n      int64
			action string
		)
		switch req.Action {
		case "activate":
			n, err = s.TaxRuleRepo.SetActive(txCtx, ids, true)
			action = model.ActionBulkActivateTax
		case "deactivate":
			n, err = s.TaxRuleRepo.SetActive(txCtx, ids, false)
			action = model.ActionBulkDeactivateTax
		case "delete":
			n, err = s.TaxRuleRepo.DeleteByIDs(txCtx, ids)
			action = model.ActionBulkDeleteTax
		default:
			return ierr.NewError("unknown bulk action").
				WithHintf("Unknown bulk action %q", req.Action).
				Mark(ierr.ErrValidation)
		}
		if err != nil {
			return repoError(err, "Tax rules")
		}
		affected = n
		writeAuditLog(txCtx, s.ServiceParams, userID, action, "", strconv.FormatInt(n, 10)+" tax rules", req)
		return nil
	})
	if err != nil {
		return BulkActionResponse{}, err
	}

	s.Logger.Infow("tax rule bulk action", "action", req.Action, "affected", affected, "not_found", len(notFound), "user_id", userID)
	resp := BulkActionResponse{Action: req.Action, Affected: affected, NotFound: notFound}
	s.rulesChanged(EventTaxRulesBulk, resp)

	return resp, nil
}

var exportHeader = []string{
	"id", "name", "tax_type", "rate", "fixed_amount", "calculation_method",
	"minimum_taxable_amount", "maximum_tax_amount", "is_inclusive", "applicable_to",
	"applicable_zones", "excluded_zones", "applicable_vehicle_types", "excluded_vehicle_types",
	"applicable_services", "excluded_services", "priority_order", "starts_at", "expires_at",
	"is_active", "created_at",
}

// ExportTaxRules writes every rule as CSV, list columns joined with "|".
func (s *taxService) ExportTaxRules(ctx context.Context, w io.Writer) error {
	rules, err := s.TaxRuleRepo.ListAll(ctx)
	if err != nil {
		return repoError(err, "Tax rules")
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return ierr.WithError(err).WithHint("Failed to write export").Mark(ierr.ErrSystem)
	}
	for _, r := range rules {
		resp := toTaxRuleResponse(r)
		record := []string{
			resp.ID, resp.Name, resp.TaxType, lo.FromPtr(resp.Rate), lo.FromPtr(resp.FixedAmount),
			resp.CalculationMethod, resp.MinimumTaxableAmount, lo.FromPtr(resp.MaximumTaxAmount),
			strconv.FormatBool(resp.IsInclusive), resp.ApplicableTo,
			strings.Join(resp.ApplicableZones, "|"), strings.Join(resp.ExcludedZones, "|"),
			strings.Join(resp.ApplicableVehicleTypes, "|"), strings.Join(resp.ExcludedVehicleTypes, "|"),
			strings.Join(resp.ApplicableServices, "|"), strings.Join(resp.ExcludedServices, "|"),
			strconv.Itoa(resp.PriorityOrder), lo.FromPtr(resp.StartsAt), lo.FromPtr(resp.ExpiresAt),
			strconv.FormatBool(resp.IsActive), resp.CreatedAt,
		}
		if err := cw.Write(record); err != nil {
			return ierr.WithError(err).WithHint("Failed to write export").Mark(ierr.ErrSystem)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return ierr.WithError(err).WithHint("Failed to write export").Mark(ierr.ErrSystem)
	}
	return nil
}

// PreviewTax runs a draft rule through the same calculator used for real charges.
func (s *taxService) PreviewTax(ctx context.Context, req PreviewTaxRequest) (TaxCalculationResponse, error) {
	draft, err := buildRule(req.Rule, false)
	if err != nil {
		return TaxCalculationResponse{}, err
	}
	amount, err := parseDecimal("amount", req.Amount)
	if err != nil {
		return TaxCalculationResponse{}, err
	}

	res, err := s.Engine.Preview(draft, amount)
	if err != nil {
		return TaxCalculationResponse{}, err
	}
	return toTaxCalculationResponse(res), nil
}

func (s *taxService) CalculateTax(ctx context.Context, req CalculateTaxRequest) (TaxCalculationResponse, error) {
	charge, err := toChargeContext(req)
	if err != nil {
		return TaxCalculationResponse{}, err
	}

	res, err := s.Engine.ComputeTax(ctx, charge)
	if err != nil {
		s.logCalculationError(err, charge)
		return TaxCalculationResponse{}, err
	}
	return toTaxCalculationResponse(res), nil
}

func (s *taxService) CalculateTaxBatch(ctx context.Context, req BatchCalculateTaxRequest) ([]TaxCalculationResponse, error) {
	charges := make([]tax.ChargeContext, 0, len(req.Charges))
	for _, c := range req.Charges {
		charge, err := toChargeContext(c)
		if err != nil {
			return nil, err
		}
		charges = append(charges, charge)
	}

	results, err := s.Engine.ComputeBatch(ctx, charges)
	if err != nil {
		s.Logger.Errorw("batch tax calculation failed", "error", err, "charges", len(charges))
		return nil, err
	}
	return lo.Map(results, func(r *tax.Result, _ int) TaxCalculationResponse {
		return toTaxCalculationResponse(r)
	}), nil
}

// --- Helpers ---

func (s *taxService) findRule(ctx context.Context, id string) (*model.TaxRule, error) {
	ruleID, err := parseID("tax rule id", id)
	if err != nil {
		return nil, err
	}
	rule, err := s.TaxRuleRepo.FindByID(ctx, ruleID)
	if err != nil {
		return nil, repoError(err, "Tax rule")
	}
	return rule, nil
}

func (s *taxService) rulesChanged(event string, payload any) {
	if s.RuleCache != nil {
		s.RuleCache.Invalidate()
	}
	if s.Events != nil {
		s.Events.Publish(event, payload)
	}
}

func (s *taxService) logCalculationError(err error, charge tax.ChargeContext) {
	if ierr.IsRepositoryUnavailable(err) || ierr.IsInvalidRule(err) {
		s.Logger.Errorw("tax calculation failed",
			"error", err,
			"zone", charge.Zone,
			"service", charge.Service,
		)
	}
}

// buildRule turns the form payload into a validated tax.Rule.
func buildRule(req TaxRuleRequest, requireName bool) (tax.Rule, error) {
	name := strings.TrimSpace(req.Name)
	if requireName && name == "" {
		return tax.Rule{}, ierr.NewError("tax rule name is required").
			WithHint("Name is required").
			Mark(ierr.ErrValidation)
	}

	rule := tax.Rule{
		Name:                   name,
		Description:            strings.TrimSpace(req.Description),
		TaxType:                tax.TaxType(req.TaxType),
		CalculationMethod:      tax.CalculationMethod(lo.Ternary(req.CalculationMethod == "", string(tax.MethodSimple), req.CalculationMethod)),
		IsInclusive:            req.IsInclusive,
		ApplicableTo:           tax.ApplicableTo(lo.Ternary(req.ApplicableTo == "", string(tax.ApplicableToAll), req.ApplicableTo)),
		ApplicableZones:        normalizeList(req.ApplicableZones),
		ExcludedZones:          normalizeList(req.ExcludedZones),
		ApplicableVehicleTypes: normalizeList(req.ApplicableVehicleTypes),
		ExcludedVehicleTypes:   normalizeList(req.ExcludedVehicleTypes),
		ApplicableServices:     normalizeList(req.ApplicableServices),
		ExcludedServices:       normalizeList(req.ExcludedServices),
		PriorityOrder:          req.PriorityOrder,
		IsActive:               lo.FromPtrOr(req.IsActive, true),
	}

	var err error
	if rule.TaxType == tax.TaxTypePercentage || rule.TaxType == tax.TaxTypeHybrid {
		if rule.Rate, err = parseOptionalDecimal("rate", req.Rate); err != nil {
			return tax.Rule{}, err
		}
	}
	if rule.TaxType == tax.TaxTypeFixed || rule.TaxType == tax.TaxTypeHybrid {
		if rule.FixedAmount, err = parseOptionalDecimal("fixed_amount", req.FixedAmount); err != nil {
			return tax.Rule{}, err
		}
	}
	minimum, err := parseOptionalDecimal("minimum_taxable_amount", req.MinimumTaxableAmount)
	if err != nil {
		return tax.Rule{}, err
	}
	rule.MinimumTaxableAmount = lo.FromPtrOr(minimum, decimal.Zero)
	if rule.MaximumTaxAmount, err = parseOptionalDecimal("maximum_tax_amount", req.MaximumTaxAmount); err != nil {
		return tax.Rule{}, err
	}
	if err := checkStoredPrecision(
		lo.T2("rate", rule.Rate),
		lo.T2("fixed_amount", rule.FixedAmount),
		lo.T2("minimum_taxable_amount", minimum),
		lo.T2("maximum_tax_amount", rule.MaximumTaxAmount),
	); err != nil {
		return tax.Rule{}, err
	}
	if rule.StartsAt, err = parseOptionalTime("starts_at", req.StartsAt, false); err != nil {
		return tax.Rule{}, err
	}
	if rule.ExpiresAt, err = parseOptionalTime("expires_at", req.ExpiresAt, true); err != nil {
		return tax.Rule{}, err
	}

	if err := rule.Validate(); err != nil {
		return tax.Rule{}, ierr.NewError(err.Error()).
			WithHint(ierr.Hint(err)).
			Mark(ierr.ErrValidation)
	}
	return rule, nil
}

// storedPlaces is the scale of every decimal column on tax_rules.
const storedPlaces = 4

// checkStoredPrecision rejects values the database would round, so a previewed rule charges
// exactly what it stores.
func checkStoredPrecision(fields ...lo.Tuple2[string, *decimal.Decimal]) error {
	for _, f := range fields {
		field, d := f.Unpack()
		if d == nil || d.Equal(d.Round(storedPlaces)) {
			continue
		}
		return ierr.NewError("too many decimal places").
			WithHintf("%s allows at most %d decimal places, got %s", field, storedPlaces, d.String()).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func toChargeContext(req CalculateTaxRequest) (tax.ChargeContext, error) {
	amount, err := parseDecimal("amount", req.Amount)
	if err != nil {
		return tax.ChargeContext{}, err
	}
	evaluatedAt, err := parseOptionalTime("evaluation_time", req.EvaluationTime, false)
	if err != nil {
		return tax.ChargeContext{}, err
	}
	return tax.ChargeContext{
		BaseAmount:     amount,
		Zone:           strings.TrimSpace(req.Zone),
		VehicleType:    strings.TrimSpace(req.VehicleType),
		Service:        strings.TrimSpace(req.Service),
		EvaluationTime: lo.FromPtr(evaluatedAt),
	}, nil
}

func toTaxRuleResponse(r model.TaxRule) TaxRuleResponse {
	resp := TaxRuleResponse{
		ID:                     r.ID.String(),
		Name:                   r.Name,
		Description:            r.Description,
		TaxType:                r.TaxType,
		CalculationMethod:      r.CalculationMethod,
		MinimumTaxableAmount:   r.MinimumTaxableAmount.StringFixed(2),
		IsInclusive:            r.IsInclusive,
		ApplicableTo:           r.ApplicableTo,
		ApplicableZones:        orEmpty(r.ApplicableZones),
		ExcludedZones:          orEmpty(r.ExcludedZones),
		ApplicableVehicleTypes: orEmpty(r.ApplicableVehicleTypes),
		ExcludedVehicleTypes:   orEmpty(r.ExcludedVehicleTypes),
		ApplicableServices:     orEmpty(r.ApplicableServices),
		ExcludedServices:       orEmpty(r.ExcludedServices),
		PriorityOrder:          r.PriorityOrder,
		IsActive:               r.IsActive,
		CreatedAt:              r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:              r.UpdatedAt.Format(time.RFC3339),
	}
	if r.Rate.Valid {
		resp.Rate = lo.ToPtr(r.Rate.Decimal.StringFixed(4))
	}
	if r.FixedAmount.Valid {
		resp.FixedAmount = lo.ToPtr(r.FixedAmount.Decimal.StringFixed(2))
	}
	if r.MaximumTaxAmount.Valid {
		resp.MaximumTaxAmount = lo.ToPtr(r.MaximumTaxAmount.Decimal.StringFixed(2))
	}
	if r.StartsAt != nil {
		resp.StartsAt = lo.ToPtr(r.StartsAt.Format(time.RFC3339))
	}
	if r.ExpiresAt != nil {
		resp.ExpiresAt = lo.ToPtr(r.ExpiresAt.Format(time.RFC3339))
	}
	return resp
}

func toTaxCalculationResponse(res *tax.Result) TaxCalculationResponse {
	return TaxCalculationResponse{
		BaseAmount: res.BaseAmount.StringFixed(2),
		Lines: lo.Map(res.Lines, func(l tax.Line, _ int) TaxLineResponse {
			return TaxLineResponse{
				RuleID:      l.RuleID,
				RuleName:    l.RuleName,
				TaxBase:     l.TaxBase.StringFixed(2),
				TaxAmount:   l.TaxAmount.StringFixed(2),
				IsInclusive: l.IsInclusive,
			}
		}),
		TotalTax:                  res.TotalTax.StringFixed(2),
		TotalAmount:               res.TotalAmount.StringFixed(2),
		EffectiveBaseForInclusive: res.EffectiveBaseForInclusive.StringFixed(2),
	}
}

func orEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
