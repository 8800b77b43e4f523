package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-strings-editor/internal/app"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrInvalidPayload, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrBadCredentials, body)
	case http.StatusNotFound:
		if body == app.MsgUnknownPartition {
			return fmt.Errorf("%w: %s", ErrUnknownPartition, body)
		}
		return fmt.Errorf("%w: http 404: %s", ErrRequestFailed, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrRequestFailed, resp.StatusCode(), body)
	}
}

// tokenRejected reports whether a 401 was caused by the bearer token rather
// than by the login itself.
func tokenRejected(resp *resty.Response) bool {
	if resp.StatusCode() != http.StatusUnauthorized {
		return false
	}
	body := strings.TrimSpace(string(resp.Body()))
	return body != app.MsgInvalidLoginPassword
}
