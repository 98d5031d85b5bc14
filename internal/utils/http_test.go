package utils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"key": "value"}

	n, err := WriteJSON(w, data, http.StatusOK)
	require.NoError(t, err)

	assert.NotZero(t, n)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	expected, _ := json.Marshal(data)
	assert.Equal(t, string(expected), w.Body.String())
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, []int{1, 2, 3}, http.StatusCreated)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "[1,2,3]", w.Body.String())
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"internal server error"}`, w.Body.String())
}

func TestWriteJSON_NilData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, nil, http.StatusOK)
	require.NoError(t, err)

	assert.Equal(t, "null", w.Body.String())
}

func TestWriteError_Envelope(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteError(w, "invalid email/password", http.StatusBadRequest)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"invalid email/password"}`, w.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    io.Reader
		want    string
		wantErr bool
	}{
		{"valid", strings.NewReader(`{"name":"ann"}`), "ann", false},
		{"trailing whitespace", strings.NewReader("{\"name\":\"ann\"}\n"), "ann", false},
		{"unknown field", strings.NewReader(`{"name":"ann","age":3}`), "", true},
		{"malformed", strings.NewReader(`{"name":`), "", true},
		{"empty body", strings.NewReader(``), "", true},
		{"two objects", strings.NewReader(`{"name":"a"}{"name":"b"}`), "", true},
		{"wrong type", strings.NewReader(`{"name":42}`), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got payload
			err := DecodeJSON(tt.body, &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}
