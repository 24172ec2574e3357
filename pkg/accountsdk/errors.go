package accountsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a non-success response from the account service.
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int

	// Message is the server's message, or the status text when the body was
	// not an envelope
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("accountsdk: %d %s", e.StatusCode, e.Message)
}

// parseErrorResponse turns a non-success response into *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var env Response
	if err := json.Unmarshal(body, &env); err != nil || env.Message == "" {
		return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
}
