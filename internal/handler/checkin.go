package handler

import (
	"net/http"

	"github.com/osse101/CoffeeGarden_Go/internal/calendar"
	"github.com/osse101/CoffeeGarden_Go/internal/checkin"
	"github.com/osse101/CoffeeGarden_Go/internal/user"
)

// CheckinRequest represents the daily check-in request
type CheckinRequest struct {
	Identity
}

// CheckinHandler handles daily check-in requests
type CheckinHandler struct {
	checkinSvc checkin.Service
	userSvc    user.Service
}

// NewCheckinHandler creates a new check-in handler
func NewCheckinHandler(checkinSvc checkin.Service, userSvc user.Service) *CheckinHandler {
	return &CheckinHandler{checkinSvc: checkinSvc, userSvc: userSvc}
}

// HandleCheckin records today's check-in
// @Summary Daily check-in
// @Description Checks the caller in for today, advancing the streak and granting rewards
// @Tags checkin
// @Accept json
// @Produce json
// @Param request body CheckinRequest true "Caller identity"
// @Success 200 {object} domain.CheckinResult
// @Failure 409 {object} ErrorResponse "Already checked in today"
// @Router /checkin [post]
func (h *CheckinHandler) HandleCheckin(w http.ResponseWriter, r *http.Request) {
	var req CheckinRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Checkin"); err != nil {
		return
	}
	u, ok := resolveCaller(w, r, h.userSvc, req.Identity)
	if !ok {
		return
	}

	res, err := h.checkinSvc.Checkin(r.Context(), u.ID)
	if err != nil {
		respondServiceError(w, r, "checkin", err)
		return
	}
	respondJSON(w, r, http.StatusOK, res)
}

// HandleGetStatus returns the caller's streak status for today
// @Summary Check-in status
// @Tags checkin
// @Produce json
// @Param platform query string true "Platform"
// @Param platform_id query string true "Platform user ID"
// @Success 200 {object} domain.CheckinStatus
// @Router /checkin/status [get]
func (h *CheckinHandler) HandleGetStatus(w http.ResponseWriter, r *http.Request) {
	u, ok := lookupCaller(w, r, h.userSvc)
	if !ok {
		return
	}

	status, err := h.checkinSvc.GetStatus(r.Context(), u.ID)
	if err != nil {
		respondServiceError(w, r, "checkin status", err)
		return
	}
	respondJSON(w, r, http.StatusOK, status)
}

// HandleGetCalendar returns a month grid of check-ins
// @Summary Check-in calendar
// @Description Returns a 42-cell month grid; format=text renders it as plain text
// @Tags checkin
// @Produce json,plain
// @Param platform query string true "Platform"
// @Param platform_id query string true "Platform user ID"
// @Param year query int false "Year (default current)"
// @Param month query int false "Month 1-12 (default current)"
// @Param format query string false "json or text"
// @Success 200 {object} domain.Calendar
// @Failure 400 {object} ErrorResponse "Invalid year or month"
// @Router /checkin/calendar [get]
func (h *CheckinHandler) HandleGetCalendar(w http.ResponseWriter, r *http.Request) {
	year, ok := GetIntQueryParam(r, w, ParamYear, 0)
	if !ok {
		return
	}
	month, ok := GetIntQueryParam(r, w, ParamMonth, 0)
	if !ok {
		return
	}
	u, ok := lookupCaller(w, r, h.userSvc)
	if !ok {
		return
	}

	cal, err := h.checkinSvc.GetCalendar(r.Context(), u.ID, year, month)
	if err != nil {
		respondServiceError(w, r, "calendar", err)
		return
	}

	if GetOptionalQueryParam(r, ParamFormat, "") == FormatText {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(calendar.Render(*cal)))
		return
	}
	respondJSON(w, r, http.StatusOK, cal)
}

// HandleGetHistory pages through past check-ins
// @Summary Check-in history
// @Tags checkin
// @Produce json
// @Param platform query string true "Platform"
// @Param platform_id query string true "Platform user ID"
// @Param limit query int false "Page size (default 30, max 100)"
// @Param offset query int false "Rows to skip"
// @Success 200 {array} domain.CheckinEntry
// @Router /checkin/history [get]
func (h *CheckinHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	limit, ok := GetIntQueryParam(r, w, ParamLimit, 0)
	if !ok {
		return
	}
	offset, ok := GetIntQueryParam(r, w, ParamOffset, 0)
	if !ok {
		return
	}
	u, ok := lookupCaller(w, r, h.userSvc)
	if !ok {
		return
	}

	entries, err := h.checkinSvc.GetHistory(r.Context(), u.ID, limit, offset)
	if err != nil {
		respondServiceError(w, r, "checkin history", err)
		return
	}
	respondJSON(w, r, http.StatusOK, entries)
}

// HandleListMilestones lists streak milestones and whether each was claimed
// @Summary Streak milestones
// @Tags checkin
// @Produce json
// @Param platform query string true "Platform"
// @Param platform_id query string true "Platform user ID"
// @Success 200 {array} domain.MilestoneStatus
// @Router /checkin/milestones [get]
func (h *CheckinHandler) HandleListMilestones(w http.ResponseWriter, r *http.Request) {
	u, ok := lookupCaller(w, r, h.userSvc)
	if !ok {
		return
	}

	list, err := h.checkinSvc.ListMilestones(r.Context(), u.ID)
	if err != nil {
		respondServiceError(w, r, "milestones", err)
		return
	}
	respondJSON(w, r, http.StatusOK, list)
}
