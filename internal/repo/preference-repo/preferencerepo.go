package preferencerepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fuelstation/internal/domain"
	"github.com/GlebRadaev/fuelstation/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Get(ctx context.Context, userID uuid.UUID) (*domain.Preferences, error) {
	query := `
        SELECT user_id, theme, sidebar_collapsed, updated_at
        FROM user_preferences
        WHERE user_id = $1
    `
	var prefs domain.Preferences
	var theme string
	err := r.db.QueryRow(ctx, query, userID).Scan(&prefs.UserID, &theme, &prefs.SidebarCollapsed, &prefs.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get user preferences", zap.Error(err))
		return nil, err
	}
	prefs.Theme = domain.Theme(theme)
	return &prefs, nil
}

func (r *Repository) Upsert(ctx context.Context, prefs *domain.Preferences) (*domain.Preferences, error) {
	query := `
        INSERT INTO user_preferences (user_id, theme, sidebar_collapsed, updated_at)
        VALUES ($1, $2, $3, now())
        ON CONFLICT (user_id)
        DO UPDATE SET theme = EXCLUDED.theme, sidebar_collapsed = EXCLUDED.sidebar_collapsed, updated_at = now()
        RETURNING updated_at
    `
	saved := *prefs
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, prefs.UserID, string(prefs.Theme), prefs.SidebarCollapsed)
		if err := row.Scan(&saved.UpdatedAt); err != nil {
			zap.L().Error("failed to upsert user preferences", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
