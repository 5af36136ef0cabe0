package api

import (
	"encoding/json"
	"errors"
	"go.uber.org/zap"
	"jarcafe/internal/entities"
	httperrors "jarcafe/internal/errors"
	"jarcafe/internal/service"
	"net/http"
)

const maxBodyBytes = int64(65536)

type ReservationHandler struct {
	Service         *service.ReservationService
	WhatsAppEnabled bool
	log             *zap.Logger
}

func NewReservationHandler(svc *service.ReservationService, whatsAppEnabled bool, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{Service: svc, WhatsAppEnabled: whatsAppEnabled, log: log}
}

func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req entities.ReservationRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.log.Warn("Invalid reservation body", zap.Error(err))
		writeError(w, httperrors.ErrInvalidBody, h.log)
		return
	}

	if _, err := h.Service.CreateReservation(r.Context(), req); err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			writeError(w, httperrors.ErrReservationMissing, h.log)
			return
		}
		writeError(w, httperrors.ErrReservationDispatch, h.log)
		return
	}

	message := reservationSuccessMessage
	if h.WhatsAppEnabled {
		message = reservationWhatsAppMessage
	}
	writeJSON(w, http.StatusOK, SuccessResponse{Success: message}, h.log)
}

type ContactHandler struct {
	Service *service.ContactService
	log     *zap.Logger
}

func NewContactHandler(svc *service.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{Service: svc, log: log}
}

func (h *ContactHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req entities.ContactRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.log.Warn("Invalid contact body", zap.Error(err))
		writeError(w, httperrors.ErrInvalidBody, h.log)
		return
	}

	if err := h.Service.SendContactMessage(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			writeError(w, httperrors.ErrContactMissing, h.log)
		case errors.Is(err, service.ErrInvalidEmail):
			writeError(w, httperrors.ErrContactInvalidEmail, h.log)
		default:
			writeError(w, httperrors.ErrContactDispatch, h.log)
		}
		return
	}
	writeJSON(w, http.StatusOK, SuccessResponse{Success: contactSuccessMessage}, h.log)
}

// Liveness answers uptime checks.
func Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(livenessMessage))
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeError(w http.ResponseWriter, err *httperrors.HTTPError, log *zap.Logger) {
	writeJSON(w, err.Code, ErrorResponse{Error: err.Message}, log)
}

func writeJSON(w http.ResponseWriter, status int, v any, log *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn("Error writing response", zap.Int("status", status), zap.Error(err))
	}
}
