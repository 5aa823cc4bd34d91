package api

import (
	"encoding/json"
	"net/http"

	"award-voting/internal/domain/category"
	"award-voting/internal/platform/apperr"
)

type createCategoryRequest struct {
	Title        string   `json:"title"`
	Alternatives []string `json:"alternatives"`
}

// @Summary     List voting categories
// @Tags        categories
// @Produce     json
// @Success     200  {array}   category.Category
// @Failure     503  {object}  map[string]string  "store unavailable"
// @Router      /api/v1/categories [get]
func (h *Handler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.categorySvc.List(r.Context())
	if err != nil {
		errorResponse(w, err)
		return
	}
	if cats == nil {
		cats = []category.Category{}
	}
	writeJSON(w, http.StatusOK, cats)
}

// @Summary     Create a category
// @Tags        categories
// @Security    BearerAuth
// @Accept      json
// @Param       request  body  createCategoryRequest  true  "Category payload"
// @Success     201  {object}  category.Category
// @Failure     400  {object}  map[string]string  "invalid input"
// @Router      /api/v1/categories [post]
func (h *Handler) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}

	c, err := h.categorySvc.Create(r.Context(), req.Title, req.Alternatives)
	if err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// @Summary     Delete a category
// @Tags        categories
// @Security    BearerAuth
// @Param       id  path  string  true  "Category ID"
// @Success     204
// @Failure     404  {object}  map[string]string  "not found"
// @Router      /api/v1/categories/{id} [delete]
func (h *Handler) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid category id", err))
		return
	}

	if err := h.categorySvc.Delete(r.Context(), id); err != nil {
		errorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
