package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bookpulse/bookpulse-server/internal/service"
)

func (s *Server) registerSystemRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Reports the status of the store and collaborator configuration",
		Tags:        []string{"System"},
	}, s.handleHealthCheck)

	huma.Register(s.api, huma.Operation{
		OperationID: "notifyOwner",
		Method:      http.MethodPost,
		Path:        "/api/v1/system/notify-owner",
		Summary:     "Notify owner",
		Description: "Sends a message to the site owner. Admin only.",
		Tags:        []string{"System"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleNotifyOwner)
}

// === DTOs ===

// HealthInput contains parameters for the health check.
type HealthInput struct{}

// HealthResponse reports overall and per-component status.
type HealthResponse struct {
	Status     string                             `json:"status" doc:"Overall status"`
	Components map[string]service.ComponentHealth `json:"components" doc:"Per-component status"`
}

// HealthOutput wraps the health response for Huma.
type HealthOutput struct {
	Body HealthResponse
}

// NotifyOwnerInput wraps the owner notification request for Huma.
type NotifyOwnerInput struct {
	Authorization string `header:"Authorization"`
	Body          service.NotifyOwnerParams
}

// NotifyOwnerResponse reports whether the message reached the owner.
type NotifyOwnerResponse struct {
	Delivered bool `json:"delivered" doc:"Whether the message was delivered"`
}

// NotifyOwnerOutput wraps the notification response for Huma.
type NotifyOwnerOutput struct {
	Body NotifyOwnerResponse
}

// === Handlers ===

func (s *Server) handleHealthCheck(ctx context.Context, _ *HealthInput) (*HealthOutput, error) {
	components := s.services.System.Health(ctx)

	// Unconfigured collaborators do not degrade overall health.
	status := "ok"
	for _, component := range components {
		if component.Status == "error" {
			status = "degraded"
		}
	}

	return &HealthOutput{Body: HealthResponse{Status: status, Components: components}}, nil
}

func (s *Server) handleNotifyOwner(ctx context.Context, input *NotifyOwnerInput) (*NotifyOwnerOutput, error) {
	if _, err := s.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	delivered, err := s.services.System.NotifyOwner(ctx, input.Body)
	if err != nil {
		return nil, err
	}

	return &NotifyOwnerOutput{Body: NotifyOwnerResponse{Delivered: delivered}}, nil
}
