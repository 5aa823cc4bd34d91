package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"award-voting/internal/domain/tally"
	"award-voting/internal/export"
	"award-voting/internal/platform/apperr"
)

type setVotingActiveRequest struct {
	Active bool `json:"active"`
}

// @Summary     Toggle the voting session
// @Tags        admin
// @Security    BearerAuth
// @Accept      json
// @Param       request  body  setVotingActiveRequest  true  "Flag payload"
// @Success     204
// @Router      /api/v1/settings/voting [put]
func (h *Handler) handleSetVotingActive(w http.ResponseWriter, r *http.Request) {
	var req setVotingActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}

	if err := h.settingsSvc.SetVotingActive(r.Context(), req.Active); err != nil {
		errorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary     Per-category tallies
// @Tags        admin
// @Security    BearerAuth
// @Produce     json
// @Param       window  query  string  false  "all | today | 7d | 30d"
// @Success     200  {array}   tally.Result
// @Failure     400  {object}  map[string]string  "invalid window"
// @Router      /api/v1/results [get]
func (h *Handler) handleResults(w http.ResponseWriter, r *http.Request) {
	window, err := tally.ParseWindow(r.URL.Query().Get("window"))
	if err != nil {
		errorResponse(w, err)
		return
	}

	results, err := h.tallySvc.Dashboard(r.Context(), window)
	if err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// @Summary     Download all selections as CSV
// @Tags        admin
// @Security    BearerAuth
// @Produce     text/csv
// @Param       window  query  string  false  "all | today | 7d | 30d"
// @Success     200  {string}  string  "CSV body"
// @Failure     400  {object}  map[string]string  "invalid window"
// @Router      /api/v1/export [get]
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	window, err := tally.ParseWindow(r.URL.Query().Get("window"))
	if err != nil {
		errorResponse(w, err)
		return
	}

	selections, err := h.tallySvc.Export(r.Context(), window)
	if err != nil {
		errorResponse(w, err)
		return
	}

	filename := export.Filename(h.eventSlug, window, time.Now())
	w.Header().Set("Content-Type", "text/csv;charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(export.Encode(selections))
}
