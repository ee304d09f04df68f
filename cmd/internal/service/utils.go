package service

import (
	"conesites/cmd/internal/domain/events"
	"conesites/cmd/internal/utils"
	"conesites/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

const (
	clientPrefix       = "CLI"
	projectPrefix      = "PROJ"
	collaboratorPrefix = "COL"
	candidatePrefix    = "CAND"
)

type IDGenerator interface {
	Next(prefix string) string
}

// EventPublisher fans store changes out to live dashboards. Publish must not block.
type EventPublisher interface {
	Publish(evt events.SocketEvent)
}

// validateRequest trims every string of req and runs its validator tags.
func validateRequest(validate *validator.Validate, req any) apierror.ErrorResponse {
	utils.Sanitize(req)

	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	if verr := apierror.FromValidationError(err); verr != nil {
		return verr
	}
	log.Errorf("failed to validate request %T: %v", req, err)
	return apierror.MalformedBodyError
}
