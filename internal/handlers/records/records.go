package records

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/fuelstation/internal/platform"
	"github.com/GlebRadaev/fuelstation/internal/service/recordservice"
	"github.com/GlebRadaev/fuelstation/pkg/utils"
)

type Service interface {
	List(ctx context.Context, entity string, query url.Values) (json.RawMessage, error)
	Get(ctx context.Context, entity, id string) (json.RawMessage, error)
	Create(ctx context.Context, entity string, body json.RawMessage) (json.RawMessage, error)
	Update(ctx context.Context, entity, id string, body json.RawMessage) (json.RawMessage, error)
	Delete(ctx context.Context, entity, id string) error
}

type RecordHandler struct {
	recordService Service
}

func New(recordService Service) *RecordHandler {
	return &RecordHandler{
		recordService: recordService,
	}
}

// List godoc
//
//	@Summary		List records
//	@Description	List records of an entity. Query parameters are forwarded to the platform as they are.
//	@Tags			Records
//	@Produce		json
//	@Param			entity	path	string	true	"Entity"	Enums(sales, fuel-supplies, tanks, petrol-providers, fuel-types, filling-systems, employees, expenses, reports, dashboard)
//	@Security		BearerAuth
//	@Success		200	{array}		object
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Unknown entity"
//	@Failure		502	{object}	utils.Response	"Network error"
//	@Failure		503	{object}	utils.Response	"No internet connection"
//	@Router			/api/records/{entity} [get]
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	raw, err := h.recordService.List(r.Context(), chi.URLParam(r, "entity"), r.URL.Query())
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithRaw(w, http.StatusOK, raw)
}

// Get godoc
//
//	@Summary		Get a record
//	@Tags			Records
//	@Produce		json
//	@Param			entity	path	string	true	"Entity"
//	@Param			id		path	string	true	"Record id"
//	@Security		BearerAuth
//	@Success		200	{object}	object
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Unknown entity or record"
//	@Router			/api/records/{entity}/{id} [get]
func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	raw, err := h.recordService.Get(r.Context(), chi.URLParam(r, "entity"), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithRaw(w, http.StatusOK, raw)
}

// Create godoc
//
//	@Summary		Create a record
//	@Tags			Records
//	@Accept			json
//	@Produce		json
//	@Param			entity	path	string	true	"Entity"
//	@Param			request	body	object	true	"Record"
//	@Security		BearerAuth
//	@Success		201	{object}	object
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Unknown entity"
//	@Failure		405	{object}	utils.Response	"Entity is read-only"
//	@Failure		422	{object}	utils.Response	"Rejected by the platform"
//	@Router			/api/records/{entity} [post]
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	raw, err := h.recordService.Create(r.Context(), chi.URLParam(r, "entity"), body)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithRaw(w, http.StatusCreated, raw)
}

// Update godoc
//
//	@Summary		Update a record
//	@Tags			Records
//	@Accept			json
//	@Produce		json
//	@Param			entity	path	string	true	"Entity"
//	@Param			id		path	string	true	"Record id"
//	@Param			request	body	object	true	"Changed fields"
//	@Security		BearerAuth
//	@Success		200	{object}	object
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Unknown entity or record"
//	@Failure		405	{object}	utils.Response	"Entity is read-only"
//	@Failure		422	{object}	utils.Response	"Rejected by the platform"
//	@Router			/api/records/{entity}/{id} [put]
func (h *RecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	raw, err := h.recordService.Update(r.Context(), chi.URLParam(r, "entity"), chi.URLParam(r, "id"), body)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithRaw(w, http.StatusOK, raw)
}

// Delete godoc
//
//	@Summary		Delete a record
//	@Tags			Records
//	@Param			entity	path	string	true	"Entity"
//	@Param			id		path	string	true	"Record id"
//	@Security		BearerAuth
//	@Success		204
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Unknown entity or record"
//	@Failure		405	{object}	utils.Response	"Entity is read-only"
//	@Router			/api/records/{entity}/{id} [delete]
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.recordService.Delete(r.Context(), chi.URLParam(r, "entity"), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondError(w http.ResponseWriter, err error) {
	var perr *platform.Error
	switch {
	case errors.Is(err, recordservice.ErrUnknownEntity):
		utils.RespondWithError(w, http.StatusNotFound, "Unknown entity")
	case errors.Is(err, recordservice.ErrReadOnly):
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Entity is read-only")
	case errors.Is(err, recordservice.ErrEmptyID), errors.Is(err, recordservice.ErrInvalidBody):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, platform.ErrOffline):
		utils.RespondWithError(w, http.StatusServiceUnavailable, platform.ErrOffline.Error())
	case errors.Is(err, platform.ErrNetwork):
		utils.RespondWithError(w, http.StatusBadGateway, platform.ErrNetwork.Error())
	case platform.IsUnauthorized(err):
		utils.RespondWithError(w, http.StatusUnauthorized, "Session expired")
	case platform.IsNotFound(err):
		utils.RespondWithError(w, http.StatusNotFound, "Record not found")
	case errors.As(err, &perr):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, perr.Message)
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
