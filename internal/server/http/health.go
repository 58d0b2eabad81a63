package http

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

type HealthResponseDTO struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type HealthOutput struct {
	Body HealthResponseDTO
}

// RegisterHealth registers the liveness endpoint.
func RegisterHealth(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "health",
		Method:        http.MethodGet,
		Path:          "/health",
		Summary:       "Health check",
		Tags:          []string{"health"},
		DefaultStatus: http.StatusOK,
	}, func(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
		return &HealthOutput{
			Body: HealthResponseDTO{
				Status:  "ok",
				Message: "Backend is running",
			},
		}, nil
	})
}
