package shifts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/fuelstation/internal/domain"
	"github.com/GlebRadaev/fuelstation/internal/dto"
	"github.com/GlebRadaev/fuelstation/internal/platform"
	"github.com/GlebRadaev/fuelstation/internal/service/shiftservice"
	"github.com/GlebRadaev/fuelstation/pkg/auth"
	"github.com/GlebRadaev/fuelstation/pkg/utils"
)

type Service interface {
	CheckActiveShift(ctx context.Context, userID uuid.UUID, forceRefresh bool) (shiftservice.CheckResult, error)
	StartShift(ctx context.Context, userID uuid.UUID, openingCash decimal.Decimal) (*domain.Shift, error)
}

type ShiftHandler struct {
	shiftService Service
}

func New(shiftService Service) *ShiftHandler {
	return &ShiftHandler{
		shiftService: shiftService,
	}
}

// GetActive godoc
//
//	@Summary		Get the active shift
//	@Description	Return the open shift of the authorized employee. With refresh=true the platform is asked even if the shift is already known.
//	@Tags			Shifts
//	@Produce		json
//	@Param			refresh	query	bool	false	"Ask the platform again"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ActiveShiftResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid refresh flag"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/shifts/active [get]
func (h *ShiftHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	refresh := false
	if v := r.URL.Query().Get("refresh"); v != "" {
		var err error
		refresh, err = strconv.ParseBool(v)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid refresh flag")
			return
		}
	}

	res, err := h.shiftService.CheckActiveShift(r.Context(), userID, refresh)
	if err != nil {
		switch {
		case errors.Is(err, shiftservice.ErrUnauthorized):
			utils.RespondWithError(w, http.StatusUnauthorized, "Session expired")
		case errors.Is(err, shiftservice.ErrInvalidUser):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ActiveShiftResponseDTO{
		Shift:    dto.NewShiftResponse(res.Shift),
		Degraded: res.Degraded,
		Offline:  res.Offline,
	})
}

// StartShift godoc
//
//	@Summary		Start a shift
//	@Description	Open a new shift for the authorized employee with the given opening cash.
//	@Tags			Shifts
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.StartShiftRequestDTO	true	"Opening cash"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.ShiftResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		409	{object}	utils.Response	"Shift already open"
//	@Failure		422	{object}	utils.Response	"Rejected by the platform"
//	@Failure		502	{object}	utils.Response	"Network error"
//	@Failure		503	{object}	utils.Response	"No internet connection"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/shifts [post]
func (h *ShiftHandler) StartShift(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.StartShiftRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	shift, err := h.shiftService.StartShift(r.Context(), userID, req.OpeningCash)
	if err != nil {
		var perr *platform.Error
		switch {
		case errors.Is(err, shiftservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, "Opening cash must not be negative")
		case errors.Is(err, shiftservice.ErrShiftAlreadyOpen):
			utils.RespondWithError(w, http.StatusConflict, "Shift already open")
		case errors.Is(err, shiftservice.ErrUnauthorized):
			utils.RespondWithError(w, http.StatusUnauthorized, "Session expired")
		case errors.As(err, &perr):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, perr.Message)
		case errors.Is(err, shiftservice.ErrNetwork):
			utils.RespondWithError(w, http.StatusBadGateway, shiftservice.ErrNetwork.Error())
		case errors.Is(err, shiftservice.ErrOffline):
			utils.RespondWithError(w, http.StatusServiceUnavailable, shiftservice.ErrOffline.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewShiftResponse(shift))
}
