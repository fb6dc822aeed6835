package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/market-proxy/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		statusCode int
		wantBody   string
	}{
		{
			name:       "struct with status OK",
			data:       models.WalletBalance{Balance: "12.5", FrozenFunds: "0"},
			statusCode: http.StatusOK,
			wantBody:   `{"balance":"12.5","frozen_funds":"0"}`,
		},
		{
			name:       "error body with custom status",
			data:       models.ErrorResponse{Detail: "Failed to fetch config"},
			statusCode: http.StatusBadGateway,
			wantBody:   `{"detail":"Failed to fetch config"}`,
		},
		{
			name:       "raw message is passed through",
			data:       json.RawMessage(`{"nfts": [ {"id":"a","price":"1.50"} ]}`),
			statusCode: http.StatusOK,
			wantBody:   `{"nfts":[{"id":"a","price":"1.50"}]}`,
		},
		{
			name:       "nil data",
			data:       nil,
			statusCode: http.StatusOK,
			wantBody:   `null`,
		},
		{
			name:       "empty slice",
			data:       []models.Backdrop{},
			statusCode: http.StatusOK,
			wantBody:   `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.statusCode)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.statusCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteJSON_InvalidRawMessage(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, json.RawMessage(`{broken`), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
