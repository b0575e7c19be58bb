package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/fuelstation/internal/domain"
	"github.com/GlebRadaev/fuelstation/internal/dto"
	"github.com/GlebRadaev/fuelstation/internal/service/prefservice"
	"github.com/GlebRadaev/fuelstation/pkg/auth"
	"github.com/GlebRadaev/fuelstation/pkg/utils"
)

type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Preferences, error)
	Update(ctx context.Context, userID uuid.UUID, upd prefservice.Update) (*domain.Preferences, error)
}

type PreferenceHandler struct {
	prefService Service
}

func New(prefService Service) *PreferenceHandler {
	return &PreferenceHandler{
		prefService: prefService,
	}
}

// Get godoc
//
//	@Summary		Get UI preferences
//	@Description	Theme and sidebar state of the current user. Defaults are returned when nothing was saved.
//	@Tags			Preferences
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PreferencesResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/preferences [get]
func (h *PreferenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	prefs, err := h.prefService.Get(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(prefs))
}

// Update godoc
//
//	@Summary		Update UI preferences
//	@Description	Only the fields present in the body are changed.
//	@Tags			Preferences
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.PreferencesUpdateRequestDTO	true	"Changed preferences"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PreferencesResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body or theme"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/preferences [put]
func (h *PreferenceHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.PreferencesUpdateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	upd := prefservice.Update{SidebarCollapsed: req.SidebarCollapsed}
	if req.Theme != nil {
		theme := domain.Theme(*req.Theme)
		upd.Theme = &theme
	}

	prefs, err := h.prefService.Update(r.Context(), userID, upd)
	if err != nil {
		if errors.Is(err, prefservice.ErrInvalidTheme) {
			utils.RespondWithError(w, http.StatusBadRequest, "Theme must be one of light, dark, system")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(prefs))
}

func toResponse(p *domain.Preferences) dto.PreferencesResponseDTO {
	return dto.PreferencesResponseDTO{
		Theme:            string(p.Theme),
		SidebarCollapsed: p.SidebarCollapsed,
		UpdatedAt:        p.UpdatedAt,
	}
}
