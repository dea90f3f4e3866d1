// internal/handlers/helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// createRequest builds a JSON request, optionally carrying the development
// auth header consumed by middleware.DevUserContextMiddleware.
func createRequest(t *testing.T, method, path string, body interface{}, userID *uuid.UUID) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if userID != nil {
		req.Header.Set("X-User-ID", userID.String())
	}
	return req
}

func decodeErrorCode(t *testing.T, body []byte) string {
	t.Helper()

	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	return payload.Error.Code
}
