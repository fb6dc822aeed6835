package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/market-proxy/internal/logger"
	"github.com/MKhiriev/market-proxy/internal/utils"
	"github.com/MKhiriev/market-proxy/models"
)

// maxBodyBytes bounds buy and withdraw request bodies.
const maxBodyBytes = 1 << 20

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.services.MarketService.GetConfig(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, r, cfg)
}

func (h *Handler) getWalletLimits(w http.ResponseWriter, r *http.Request) {
	limits, err := h.services.MarketService.GetWalletLimits(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, r, limits)
}

func (h *Handler) getWalletHistory(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, models.DefaultHistoryLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	query := models.WalletHistoryQuery{
		Page:  page,
		Types: optionalQuery(r, "types"),
	}

	history, err := h.services.MarketService.GetWalletHistory(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, r, history)
}

func (h *Handler) getWalletBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.services.MarketService.GetWalletBalance(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, r, balance)
}

func (h *Handler) listNFTs(w http.ResponseWriter, r *http.Request) {
	list, err := h.services.MarketService.ListNFTs(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, r, list)
}

func (h *Handler) searchNFTs(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, models.DefaultSearchLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	query := models.SearchQuery{
		Page:        page,
		Collections: optionalQuery(r, "filter_by_collections"),
		Backdrops:   optionalQuery(r, "filter_by_backdrops"),
		Symbols:     optionalQuery(r, "filter_by_symbols"),
		Models:      optionalQuery(r, "filter_by_models"),
		SortBy:      queryOrDefault(r, "sort_by", models.DefaultSearchSortBy),
		Status:      queryOrDefault(r, "status", models.DefaultSearchStatus),
	}

	result, err := h.services.MarketService.SearchNFTs(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, r, result)
}

func (h *Handler) getBackdrops(w http.ResponseWriter, r *http.Request) {
	backdrops, err := h.services.MarketService.GetBackdrops(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, r, backdrops)
}

func (h *Handler) getBackdropFloors(w http.ResponseWriter, r *http.Request) {
	floors, err := h.services.MarketService.GetBackdropFloors(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, r, floors)
}

func (h *Handler) buyNFTs(w http.ResponseWriter, r *http.Request) {
	var req models.BuyRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.MarketService.BuyNFTs(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, r, result)
}

func (h *Handler) withdrawNFTs(w http.ResponseWriter, r *http.Request) {
	var req models.WithdrawRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.MarketService.WithdrawNFTs(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, r, result)
}

func (h *Handler) getUserActions(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, models.DefaultActionsLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	actions, err := h.services.MarketService.GetUserActions(r.Context(), page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, r, actions)
}

func writeOK(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// parsePage reads offset (default 0) and limit (default defaultLimit).
// Range checks are left to the validation service.
func parsePage(r *http.Request, defaultLimit int) (models.Page, error) {
	offset, err := intQuery(r, "offset", 0)
	if err != nil {
		return models.Page{}, err
	}

	limit, err := intQuery(r, "limit", defaultLimit)
	if err != nil {
		return models.Page{}, err
	}

	return models.Page{Offset: offset, Limit: limit}, nil
}

func intQuery(r *http.Request, key string, defaultValue int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidQueryParam, key)
	}

	return value, nil
}

// optionalQuery returns nil for an absent or empty parameter so that it is
// never forwarded upstream as an empty string.
func optionalQuery(r *http.Request, key string) *string {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil
	}

	return &value
}

func queryOrDefault(r *http.Request, key, defaultValue string) string {
	if value := r.URL.Query().Get(key); value != "" {
		return value
	}

	return defaultValue
}

// decodeBody reads exactly one JSON value into dst. Decode failures are
// described by position or field name only, never by Go type.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			if tooLarge := decodeError(err); errors.Is(tooLarge, ErrRequestTooLarge) {
				return tooLarge
			}
		}
		return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
	}

	return nil
}

func decodeError(err error) error {
	var (
		maxBytesErr *http.MaxBytesError
		syntaxErr   *json.SyntaxError
		typeErr     *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &maxBytesErr):
		return fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, maxBytesErr.Limit)
	case errors.As(err, &syntaxErr):
		return fmt.Errorf("%w: syntax error at offset %d", ErrInvalidJSON, syntaxErr.Offset)
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return fmt.Errorf("%w: field %q has the wrong type", ErrInvalidJSON, typeErr.Field)
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: body is empty or truncated", ErrInvalidJSON)
	default:
		return ErrInvalidJSON
	}
}
