package mattermost

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIError is the error returned by the Mattermost API for any non-2xx
// response.  It carries the HTTP status code, the server-side error id and
// the URL of the failed request so that callers can inspect the detail.
type APIError struct {
	StatusCode    int    `json:"status_code"`
	ServerErrorID string `json:"server_error_id,omitempty"`
	RequestID     string `json:"request_id,omitempty"`
	URL           string `json:"url,omitempty"`
	Message       string `json:"message"`
}

func (e *APIError) Error() string {
	if e.ServerErrorID != "" {
		return fmt.Sprintf("mattermost api error: %s (status %d, id %s)", e.Message, e.StatusCode, e.ServerErrorID)
	}
	return fmt.Sprintf("mattermost api error: %s (status %d)", e.Message, e.StatusCode)
}

// apiErrorBody is the JSON error document returned by the Mattermost server.
type apiErrorBody struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

// decodeError reads and closes the response body and produces an *APIError.
// A body that is not the standard error document is kept verbatim as the
// message.
func decodeError(resp *http.Response) *APIError {
	defer resp.Body.Close()
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		URL:        resp.Request.URL.String(),
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		apiErr.Message = http.StatusText(resp.StatusCode)
		return apiErr
	}
	var body apiErrorBody
	if err := json.Unmarshal(raw, &body); err != nil || body.Message == "" {
		apiErr.Message = string(raw)
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}
	apiErr.ServerErrorID = body.ID
	apiErr.RequestID = body.RequestID
	apiErr.Message = body.Message
	return apiErr
}
