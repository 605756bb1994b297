package usps

import (
	"errors"
	"fmt"

	"github.com/bft-labs/uspsship/pkg/xmlmap"
)

// Errors returned by the client. Check them with errors.Is.
var (
	// ErrInvalidConfig is returned by New when the configuration is unusable.
	ErrInvalidConfig = errors.New("usps: invalid configuration")

	// ErrUnknownAction is returned when an action has no endpoint.
	ErrUnknownAction = errors.New("usps: unknown action")

	// ErrInvalidRequest is returned when a request cannot be built from the
	// supplied values.
	ErrInvalidRequest = errors.New("usps: invalid request")

	// ErrInvalidAddress is returned when an address is missing required fields.
	ErrInvalidAddress = errors.New("usps: invalid address")
)

// APIError is an error reported by the USPS service in an <Error> reply.
type APIError struct {
	Number      string
	Source      string
	Description string
	HelpFile    string
	HelpContext string
}

// Error returns the service-provided description verbatim.
func (e *APIError) Error() string {
	if e.Description == "" {
		return "usps: service returned an error without description"
	}
	return e.Description
}

// HTTPError is returned when the service answers with a non-2xx status.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("usps: server returned %d: %s", e.StatusCode, e.Body)
}

// CheckResponse returns an *APIError if the decoded response carries a
// top-level Error entry, and nil otherwise.
func CheckResponse(v *xmlmap.Value) error {
	errVal, ok := v.Get("Error")
	if !ok {
		return nil
	}
	if errVal.Kind() == xmlmap.KindString {
		return &APIError{Description: errVal.Str()}
	}
	return &APIError{
		Number:      errVal.Path("Number").Str(),
		Source:      errVal.Path("Source").Str(),
		Description: errVal.Path("Description").Str(),
		HelpFile:    errVal.Path("HelpFile").Str(),
		HelpContext: errVal.Path("HelpContext").Str(),
	}
}
