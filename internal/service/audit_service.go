package service

import (
	"context"

	"fleetadmin/internal/model"
	"fleetadmin/internal/repository"

	"github.com/samber/lo"
)

type AuditLogResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Action     string `json:"action"`
	EntityID   string `json:"entity_id"`
	EntityName string `json:"entity_name"`
	Details    string `json:"details"`
	CreatedAt  string `json:"created_at"`
}

type AuditService interface {
	GetAuditLogs(ctx context.Context, page, limit int) ([]AuditLogResponse, int64, error)
	GetEntityHistory(ctx context.Context, entityID string, page, limit int) ([]AuditLogResponse, int64, error)
}

type auditService struct {
	ServiceParams
}

// NewAuditService creates a new AuditService instance
func NewAuditService(params ServiceParams) AuditService {
	return &auditService{ServiceParams: params}
}

// GetAuditLogs returns the audit trail, newest first.
func (s *auditService) GetAuditLogs(ctx context.Context, page, limit int) ([]AuditLogResponse, int64, error) {
	return s.list(ctx, repository.AuditListFilter{Page: page, Limit: limit})
}

// GetEntityHistory returns the changes made to one tax rule or charge.
func (s *auditService) GetEntityHistory(ctx context.Context, entityID string, page, limit int) ([]AuditLogResponse, int64, error) {
	id, err := parseID("entity id", entityID)
	if err != nil {
		return nil, 0, err
	}
	return s.list(ctx, repository.AuditListFilter{EntityID: id.String(), Page: page, Limit: limit})
}

func (s *auditService) list(ctx context.Context, filter repository.AuditListFilter) ([]AuditLogResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	logs, total, err := s.AuditRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, repoError(err, "Audit logs")
	}

	return lo.Map(logs, func(l model.AuditLog, _ int) AuditLogResponse {
		userID := ""
		if l.UserID != nil {
			userID = l.UserID.String()
		}
		return AuditLogResponse{
			ID:         l.ID.String(),
			UserID:     userID,
			Action:     l.Action,
			EntityID:   l.EntityID,
			EntityName: l.EntityName,
			Details:    l.Details,
			CreatedAt:  l.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}), total, nil
}
