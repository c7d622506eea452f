package cli

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/llmpid-console/internal/client/client"
	"github.com/dmitrijs2005/llmpid-console/internal/common"
)

// reason turns a service error into the short text shown to the operator.
func reason(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, common.ErrValidation):
		return err.Error()
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable"
	case errors.Is(err, client.ErrUnauthorized):
		return "not authorized"
	case errors.As(err, &apiErr):
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return http.StatusText(apiErr.StatusCode)
	default:
		return err.Error()
	}
}

// loginReason is the text after "Login error: ".
func loginReason(err error) string {
	switch {
	case errors.Is(err, common.ErrValidation):
		return err.Error()
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable"
	default:
		return common.ErrAuthentication.Error()
	}
}
