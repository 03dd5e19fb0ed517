// Package rest exposes the use cases as a JSON HTTP API built on gin.
package rest

import (
	"projecthub/internal/ports/input"
	"projecthub/internal/ports/output"
)

// Handler serves the HTTP routes using use cases.
type Handler struct {
	registration input.RegistrationUseCase
	projects     input.ProjectUseCase
	interests    input.ProjectInterestUseCase
	events       input.EventUseCase
	t            output.T
}

// NewHandler creates a Handler.
func NewHandler(
	registration input.RegistrationUseCase,
	projects input.ProjectUseCase,
	interests input.ProjectInterestUseCase,
	events input.EventUseCase,
	t output.T,
) *Handler {
	return &Handler{
		registration: registration,
		projects:     projects,
		interests:    interests,
		events:       events,
		t:            t,
	}
}
