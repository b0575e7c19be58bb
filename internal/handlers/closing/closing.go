package closing

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/fuelstation/internal/domain"
	"github.com/GlebRadaev/fuelstation/internal/dto"
	"github.com/GlebRadaev/fuelstation/internal/service/closeflow"
	"github.com/GlebRadaev/fuelstation/internal/service/shiftservice"
	"github.com/GlebRadaev/fuelstation/pkg/async"
	"github.com/GlebRadaev/fuelstation/pkg/auth"
	"github.com/GlebRadaev/fuelstation/pkg/utils"
)

type Service interface {
	Open(ctx context.Context, userID uuid.UUID) (closeflow.State, error)
	State(userID uuid.UUID) (closeflow.State, error)
	Unmount(userID uuid.UUID) error
	Submit(ctx context.Context, userID uuid.UUID, entries []domain.PaymentMethodEntry) (closeflow.State, error)
	Preview(userID uuid.UUID, entries []domain.PaymentMethodEntry) (domain.Reconciliation, error)
}

type CloseHandler struct {
	closeService Service
}

func New(closeService Service) *CloseHandler {
	return &CloseHandler{
		closeService: closeService,
	}
}

// OpenSession godoc
//
//	@Summary		Open the close page
//	@Description	Mount the shift close workflow for the authorized employee and return its state.
//	@Tags			Closing
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	closeflow.State
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/shifts/close/session [post]
func (h *CloseHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	state, err := h.closeService.Open(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, state)
}

// GetSession godoc
//
//	@Summary		Get the close page state
//	@Description	Poll the state of the mounted close workflow. redirect_to is set once the page should leave.
//	@Tags			Closing
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	closeflow.State
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Close page is not open"
//	@Router			/api/shifts/close/session [get]
func (h *CloseHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	state, err := h.closeService.State(userID)
	if err != nil {
		respondSessionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, state)
}

// CloseSession godoc
//
//	@Summary		Leave the close page
//	@Description	Unmount the close workflow, cancelling any call still in flight.
//	@Tags			Closing
//	@Security		BearerAuth
//	@Success		204
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Close page is not open"
//	@Router			/api/shifts/close/session [delete]
func (h *CloseHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.closeService.Unmount(userID); err != nil {
		respondSessionError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Submit godoc
//
//	@Summary		Close the shift
//	@Description	Submit the payment breakdown and close the active shift. The body always carries the workflow state; the status code tells the failure apart.
//	@Tags			Closing
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CloseShiftRequestDTO	true	"Payment breakdown"
//	@Security		BearerAuth
//	@Success		200	{object}	closeflow.State
//	@Failure		400	{object}	closeflow.State	"Invalid payment methods"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Close page is not open"
//	@Failure		409	{object}	closeflow.State	"No active shift"
//	@Failure		422	{object}	closeflow.State	"Rejected by the platform"
//	@Failure		502	{object}	closeflow.State	"Network error"
//	@Failure		503	{object}	closeflow.State	"No internet connection"
//	@Failure		504	{object}	closeflow.State	"Request timed out"
//	@Router			/api/shifts/close [post]
func (h *CloseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CloseShiftRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	state, err := h.closeService.Submit(r.Context(), userID, req.Entries())
	if errors.Is(err, closeflow.ErrNoFlow) {
		respondSessionError(w, err)
		return
	}
	utils.RespondWithJSON(w, submitStatus(err), state)
}

// Reconcile godoc
//
//	@Summary		Preview the reconciliation
//	@Description	Compare a payment breakdown with the recorded sales total without closing anything.
//	@Tags			Closing
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CloseShiftRequestDTO	true	"Payment breakdown"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ReconciliationResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid payment methods"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Close page is not open"
//	@Failure		409	{object}	utils.Response	"No shift loaded"
//	@Router			/api/shifts/close/reconcile [post]
func (h *CloseHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CloseShiftRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	recon, err := h.closeService.Preview(userID, req.Entries())
	if err != nil {
		switch {
		case errors.Is(err, closeflow.ErrNoFlow):
			respondSessionError(w, err)
		case errors.Is(err, closeflow.ErrNoShift):
			utils.RespondWithError(w, http.StatusConflict, "No shift loaded")
		default:
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewReconciliationResponse(recon))
}

func respondSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, closeflow.ErrNoFlow) {
		utils.RespondWithError(w, http.StatusNotFound, "Close page is not open")
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}

func submitStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, async.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, shiftservice.ErrNoActiveShift):
		return http.StatusConflict
	case errors.Is(err, shiftservice.ErrOffline):
		return http.StatusServiceUnavailable
	case errors.Is(err, shiftservice.ErrNetwork):
		return http.StatusBadGateway
	case errors.Is(err, shiftservice.ErrRejected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, closeflow.ErrNoEntries),
		errors.Is(err, closeflow.ErrUnknownMethod),
		errors.Is(err, closeflow.ErrNegativeAmount),
		errors.Is(err, closeflow.ErrInvalidCardReference):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
