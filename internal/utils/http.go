package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/video-blog/models"
)

// internalErrorBody is written verbatim when a response cannot be encoded.
const internalErrorBody = `{"message":"internal server error"}`

var ErrTrailingJSON = errors.New("request body must contain a single JSON object")

// WriteJSON serializes data to JSON and writes it with the given status code
// and an "application/json" Content-Type.
//
// If marshaling fails, a 500 error envelope is written instead and the
// wrapped error is returned.
//
//	WriteJSON(w, video, http.StatusCreated)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, internalErrorBody)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes the {"message": ...} error envelope.
func WriteError(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.ErrorResponse{Message: message}, statusCode)
}

// DecodeJSON strictly decodes a single JSON value from r into dst.
// Unknown object fields and trailing data are rejected.
func DecodeJSON(r io.Reader, dst any) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return err
	}
	if decoder.More() {
		return ErrTrailingJSON
	}
	return nil
}
