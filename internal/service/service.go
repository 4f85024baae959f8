package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	ierr "fleetadmin/internal/errors"
	"fleetadmin/internal/logger"
	"fleetadmin/internal/model"
	"fleetadmin/internal/repository"
	"fleetadmin/internal/tax"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EventPublisher pushes change notifications to connected admin clients.
type EventPublisher interface {
	Publish(eventType string, payload any)
}

// RuleCache is the rule snapshot cache sitting in front of the engine's rule source.
type RuleCache interface {
	Invalidate()
}

// ServiceParams holds the dependencies shared by the services.
type ServiceParams struct {
	Logger      *logger.Logger
	TaxRuleRepo repository.TaxRuleRepository
	ChargeRepo  repository.ChargeRepository
	AuditRepo   repository.AuditRepository
	TxManager   repository.TransactionManager
	Engine      *tax.Engine
	RuleCache   RuleCache        // optional
	Events      EventPublisher   // optional
	Now         func() time.Time // optional, defaults to time.Now
}

func (p ServiceParams) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// --- Helpers ---

const dateLayout = "2006-01-02"

func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, ierr.WithError(err).
			WithHintf("Invalid %s", field).
			Mark(ierr.ErrValidation)
	}
	return id, nil
}

// parseDecimal parses a required decimal field.
func parseDecimal(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, ierr.WithError(err).
			WithHintf("Invalid %s value %q", field, raw).
			Mark(ierr.ErrValidation)
	}
	return d, nil
}

// parseOptionalDecimal returns nil for an empty string.
func parseOptionalDecimal(field, raw string) (*decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	d, err := parseDecimal(field, raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// parseOptionalTime accepts RFC3339 or YYYY-MM-DD. A date-only value marks the start of that day,
// or its last instant when endOfDay is set.
func parseOptionalTime(field, raw string, endOfDay bool) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Invalid %s (expected RFC3339 or YYYY-MM-DD)", field).
			Mark(ierr.ErrValidation)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

// normalizeList trims entries, drops blanks and duplicates while keeping order.
func normalizeList(in []string) []string {
	out := lo.FilterMap(in, func(item string, _ int) (string, bool) {
		item = strings.TrimSpace(item)
		return item, item != ""
	})
	return lo.Uniq(out)
}

func parseUserID(userID string) *uuid.UUID {
	if userID == "" {
		return nil
	}
	parsed, err := uuid.Parse(userID)
	if err != nil {
		return nil
	}
	return &parsed
}

// repoError maps persistence errors onto the error taxonomy.
func repoError(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ierr.WithError(err).
			WithHintf("%s not found", entity).
			Mark(ierr.ErrNotFound)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ierr.WithError(err).
			WithHintf("%s already exists", entity).
			Mark(ierr.ErrAlreadyExists)
	}
	return ierr.WithError(err).
		WithHintf("Failed to access %s", strings.ToLower(entity)).
		Mark(ierr.ErrDatabase)
}

// writeAuditLog records the action. Failures are logged and never fail the operation.
func writeAuditLog(ctx context.Context, p ServiceParams, userID, action, entityID, entityName string, details any) {
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		p.Logger.Warnw("failed to encode audit details", "error", err, "action", action)
		detailsJSON = []byte("{}")
	}

	entry := model.AuditLog{
		UserID:     parseUserID(userID),
		Action:     action,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    string(detailsJSON),
	}

	if err := p.AuditRepo.Log(ctx, &entry); err != nil {
		p.Logger.Warnw("failed to write audit log",
			"error", err,
			"action", action,
			"entity_id", entityID,
		)
	}
}
