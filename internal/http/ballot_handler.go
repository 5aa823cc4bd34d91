package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"award-voting/internal/domain/ballot"
	"award-voting/internal/platform/apperr"
	"award-voting/internal/platform/iplookup"
	"award-voting/internal/worker"
)

type submitBallotRequest struct {
	Selections map[string]string `json:"selections"`
}

// @Summary     Voting session status
// @Tags        ballots
// @Produce     json
// @Success     200  {object}  map[string]bool
// @Failure     503  {object}  map[string]string  "store unavailable"
// @Router      /api/v1/status [get]
func (h *Handler) handleVotingStatus(w http.ResponseWriter, r *http.Request) {
	active, err := h.settingsSvc.VotingActive(r.Context())
	if err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"voting_active": active})
}

// @Summary     Submit a complete ballot
// @Tags        ballots
// @Accept      json
// @Param       request  body  submitBallotRequest  true  "Ballot payload"
// @Success     202  {object}  map[string]string
// @Failure     400  {object}  map[string]string  "incomplete ballot or invalid body"
// @Failure     403  {object}  map[string]string  "voting closed"
// @Failure     502  {object}  map[string]string  "webhook delivery failed"
// @Router      /api/v1/ballots [post]
func (h *Handler) handleSubmitBallot(w http.ResponseWriter, r *http.Request) {
	var req submitBallotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}

	active, err := h.settingsSvc.VotingActive(r.Context())
	if err != nil {
		errorResponse(w, err)
		return
	}
	if !active {
		errorResponse(w, ballot.ErrVotingClosed)
		return
	}

	b := make(ballot.Ballot, len(req.Selections))
	for rawID, alt := range req.Selections {
		id, err := uuid.Parse(rawID)
		if err != nil {
			errorResponse(w, apperr.BadRequest("invalid_input", "invalid category id in selections", err))
			return
		}
		b[id] = alt
	}

	cats, err := h.categorySvc.List(r.Context())
	if err != nil {
		errorResponse(w, err)
		return
	}

	rcpt, err := h.ballotSvc.Submit(r.Context(), cats, b)
	if err != nil && !errors.Is(err, ballot.ErrWebhookDelivery) {
		errorResponse(w, err)
		return
	}

	select {
	case h.submitCh <- worker.SubmissionEvent{
		IP:         rcpt.IP,
		Categories: rcpt.Categories,
		Degraded:   rcpt.IP == iplookup.UnknownIP,
		Accepted:   err == nil,
	}:
	default:
	}

	if err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}
