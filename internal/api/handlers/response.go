package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes ограничение размера тела запроса
const maxBodyBytes = 1 << 20

// Типы ошибок в теле ответа (поле kind)
const (
	KindInvalidRequest   = "InvalidRequest"
	KindMissingField     = "MissingField"
	KindInvalidDate      = "InvalidDate"
	KindInvalidTime      = "InvalidTime"
	KindInvalidService   = "InvalidService"
	KindInvalidStylist   = "InvalidStylist"
	KindInvalidPhone     = "InvalidPhone"
	KindInvalidEmail     = "InvalidEmail"
	KindInvalidStatus    = "InvalidStatus"
	KindBlocked          = "Blocked"
	KindSlotTaken        = "SlotTaken"
	KindNotFound         = "NotFound"
	KindInvalidAction    = "InvalidAction"
	KindAlreadyFinalized = "AlreadyFinalized"
	KindUnauthorized     = "Unauthorized"
	KindRateLimited      = "RateLimited"
	KindStoreUnavailable = "StoreUnavailable"
)

const msgInternalError = "внутренняя ошибка сервера"

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// DecodeJSON читает JSON тело запроса
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// RespondError пишет ошибку с типом kind
func RespondError(w http.ResponseWriter, status int, kind, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message, Kind: kind})
}

func RespondBadRequest(w http.ResponseWriter, kind, message string) {
	RespondError(w, http.StatusBadRequest, kind, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, KindUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, kind, message string) {
	RespondError(w, http.StatusForbidden, kind, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, KindNotFound, message)
}

func RespondConflict(w http.ResponseWriter, kind, message string) {
	RespondError(w, http.StatusConflict, kind, message)
}

func RespondTooManyRequests(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusTooManyRequests, KindRateLimited, message)
}

// RespondInternalError скрывает детали ошибки от клиента
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, KindStoreUnavailable, msgInternalError)
}
