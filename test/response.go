package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"skill-marks-system/internal/global/response"

	"github.com/stretchr/testify/require"
)

// Body decodes a JSON response envelope.
func Body(t *testing.T, w *httptest.ResponseRecorder) response.ResponseBody {
	t.Helper()
	var body response.ResponseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

// Data decodes the data portion of a success envelope into out.
func Data(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	body := Body(t, w)
	require.Equal(t, int32(200), body.Code)
	raw, err := json.Marshal(body.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

// RedirectsTo asserts a 302 to the given location.
func RedirectsTo(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, location, w.Header().Get("Location"))
}
