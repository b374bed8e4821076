package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"sync"

	"github.com/osse101/CoffeeGarden_Go/internal/cooldown"
	"github.com/osse101/CoffeeGarden_Go/internal/domain"
	"github.com/osse101/CoffeeGarden_Go/internal/logger"
	"github.com/osse101/CoffeeGarden_Go/internal/metrics"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// CooldownErrorResponse adds the retry hint to a cooldown rejection
type CooldownErrorResponse struct {
	Error             string `json:"error"`
	Action            string `json:"action"`
	RetryAfterSeconds int64  `json:"retry_after_seconds"`
	AvailableAt       string `json:"available_at"`
}

// bufferPool holds encode buffers so a failed encode never writes a partial body
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	log := logger.FromContext(r.Context())
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		log.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, r, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes its mapped status. Cooldown
// rejections carry a Retry-After header and are counted per action.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())

	var cdErr cooldown.CooldownError
	if errors.As(err, &cdErr) {
		log.Info(LogMsgServiceError, "operation", opName, "error", err)
		metrics.CooldownRejections.WithLabelValues(cdErr.Action).Inc()

		seconds := int64(math.Ceil(cdErr.Remaining.Seconds()))
		if seconds < 1 {
			seconds = 1
		}
		w.Header().Set(HeaderRetryAfter, strconv.FormatInt(seconds, 10))
		respondJSON(w, r, http.StatusTooManyRequests, CooldownErrorResponse{
			Error:             cdErr.Error(),
			Action:            cdErr.Action,
			RetryAfterSeconds: seconds,
			AvailableAt:       cdErr.AvailableAt.UTC().Format(timeFormat),
		})
		return
	}

	status, msg := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", opName, "error", err)
	} else {
		log.Info(LogMsgServiceError, "operation", opName, "error", err)
	}
	respondError(w, r, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP statuses and
// user-facing messages. Unknown errors become a generic 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrTreeNotFound):
		return http.StatusNotFound, ErrMsgTreeNotFoundError
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrMsgNotFoundError
	case errors.Is(err, domain.ErrUnknownVariety):
		return http.StatusBadRequest, ErrMsgUnknownVarietyError
	case errors.Is(err, domain.ErrInvalidPlatform):
		return http.StatusBadRequest, ErrMsgInvalidPlatformErr
	case errors.Is(err, domain.ErrInvalidTime):
		return http.StatusBadRequest, ErrMsgInvalidTimeError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrCooldownActive):
		return http.StatusTooManyRequests, ErrMsgOnCooldownError
	case errors.Is(err, domain.ErrAlreadyHarvested):
		return http.StatusConflict, ErrMsgAlreadyHarvestedErr
	case errors.Is(err, domain.ErrNotMature):
		return http.StatusConflict, ErrMsgNotMatureError
	case errors.Is(err, domain.ErrAlreadyCheckedIn):
		return http.StatusConflict, ErrMsgAlreadyCheckedInErr
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
