package apierror

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"net/http"
	"strings"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

var (
	MalformedBodyError  = NewSimple(400, "Malformed JSON body")
	InternalServerError = NewSimple(500, "Internal server error")

	NotFoundError    = NewSimple(404, "Resource not found")
	InvalidCNPJError = NewSimple(400, "The provided CNPJ is invalid")

	/*
	 * Used for registrations
	 */
	DuplicateSharingIDError = NewSimple(409, "A site with this sharing ID already exists")
	UnknownSiteError        = NewSimple(400, "The referenced site does not exist")
	UnknownCandidateError   = NewSimple(400, "The referenced candidate does not belong to this site")
	InvalidReportKindError  = NewSimple(400, "Unknown report, expected one of: sites, candidates, clients, projects, collaborators")
	InvalidReportFmtError   = NewSimple(400, "Unknown report format, expected one of: json, csv, markdown, html, text")

	/*
	 * Used for the AI assistant and external services
	 */
	AIRequestPendingError    = NewSimple(409, "AI request already pending")
	ExportUnavailableError   = NewSimple(503, "Report export is not configured")
	LookupUnavailableError   = NewSimple(502, "CNPJ lookup service is unavailable")
	MissingConnectionIDError = NewMissingParamError("connectionId")
)

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := toSnakeCase(fe.Field())

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too short, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "gte":
			problems[field] = append(problems[field], "Value must be greater than or equal to "+fe.Param())
		case "lte":
			problems[field] = append(problems[field], "Value must be less than or equal to "+fe.Param())
		case "oneof":
			problems[field] = append(problems[field], "Value must be one of: "+fe.Param())
		case "email":
			problems[field] = append(problems[field], "Value must be a valid email address")
		case "cnpj":
			problems[field] = append(problems[field], "Value must be a valid CNPJ")
		case "uf":
			problems[field] = append(problems[field], "Value must be a two-letter state code")
		case "isodate":
			problems[field] = append(problems[field], "Value must be a date formatted as YYYY-MM-DD")
		case "latitude", "longitude":
			problems[field] = append(problems[field], "Value must be a valid "+fe.Tag())

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

func NewMissingParamError(name string) *APIError {
	return NewSimple(http.StatusBadRequest, "Missing required parameter '%s'", name)
}

func NewInvalidParamError(name, expected string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' is invalid, expected: %s", name, expected)
}

// toSnakeCase maps Go field names (ClientCoordinatorID) to the JSON
// naming used by request bodies (client_coordinator_id).
func toSnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		upper := r >= 'A' && r <= 'Z'
		if upper && i > 0 {
			prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if prevLower || nextLower {
				b.WriteByte('_')
			}
		}
		if upper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
