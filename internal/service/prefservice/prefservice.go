package prefservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fuelstation/internal/domain"
)

type Repo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Preferences, error)
	Upsert(ctx context.Context, prefs *domain.Preferences) (*domain.Preferences, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrInvalidUser  = errors.New("user id is required")
	ErrInvalidTheme = errors.New("theme must be one of light, dark, system")
)

// Update changes only the fields that are set.
type Update struct {
	Theme            *domain.Theme
	SidebarCollapsed *bool
}

func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*domain.Preferences, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidUser
	}
	prefs, err := s.repo.Get(ctx, userID)
	if err != nil {
		zap.L().Error("can't load preferences", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}
	if prefs == nil {
		return domain.DefaultPreferences(userID), nil
	}
	return prefs, nil
}

func (s *Service) Update(ctx context.Context, userID uuid.UUID, upd Update) (*domain.Preferences, error) {
	if upd.Theme != nil && !upd.Theme.Valid() {
		return nil, ErrInvalidTheme
	}
	prefs, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if upd.Theme != nil {
		prefs.Theme = *upd.Theme
	}
	if upd.SidebarCollapsed != nil {
		prefs.SidebarCollapsed = *upd.SidebarCollapsed
	}

	saved, err := s.repo.Upsert(ctx, prefs)
	if err != nil {
		zap.L().Error("can't save preferences", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}
	return saved, nil
}
