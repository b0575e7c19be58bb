package dto

import "time"

type PreferencesResponseDTO struct {
	Theme            string    `json:"theme" example:"system"`
	SidebarCollapsed bool      `json:"sidebar_collapsed" example:"false"`
	UpdatedAt        time.Time `json:"updated_at,omitempty" example:"2020-12-09T16:09:57+03:00"`
}

type PreferencesUpdateRequestDTO struct {
	Theme            *string `json:"theme,omitempty" example:"dark"`
	SidebarCollapsed *bool   `json:"sidebar_collapsed,omitempty" example:"true"`
}
