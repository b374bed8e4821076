package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
	"github.com/osse101/CoffeeGarden_Go/internal/logger"
	"github.com/osse101/CoffeeGarden_Go/internal/user"
)

// Identity names the caller. It is embedded in every POST body and read from
// the query string on GET requests.
type Identity struct {
	Platform   string `json:"platform" validate:"required,platform"`
	PlatformID string `json:"platform_id" validate:"required,max=128,excludesall=\x00\n\r\t"`
	Username   string `json:"username,omitempty" validate:"max=64,excludesall=\x00\n\r\t"`
}

func identityFromQuery(r *http.Request) Identity {
	q := r.URL.Query()
	return Identity{
		Platform:   q.Get(ParamPlatform),
		PlatformID: q.Get(ParamPlatformID),
		Username:   q.Get(ParamUsername),
	}
}

// resolveCaller registers or refreshes the caller named in a write request
func resolveCaller(w http.ResponseWriter, r *http.Request, users user.Service, id Identity) (*domain.User, bool) {
	u, err := users.Resolve(r.Context(), strings.ToLower(id.Platform), id.PlatformID, id.Username)
	if err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgIdentityResolveFail, "platform", id.Platform, "error", err)
		respondServiceError(w, r, "resolve user", err)
		return nil, false
	}
	return u, true
}

// lookupCaller validates the query identity and finds an existing user.
// Reads never register; an unknown caller gets 404.
func lookupCaller(w http.ResponseWriter, r *http.Request, users user.Service) (*domain.User, bool) {
	id := identityFromQuery(r)
	if err := GetValidator().ValidateStruct(id); err != nil {
		respondJSON(w, r, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return nil, false
	}

	u, err := users.Lookup(r.Context(), strings.ToLower(id.Platform), id.PlatformID)
	if err != nil {
		respondServiceError(w, r, "lookup user", err)
		return nil, false
	}
	return u, true
}
