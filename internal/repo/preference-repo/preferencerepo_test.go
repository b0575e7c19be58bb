package preferencerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/fuelstation/internal/domain"
	"github.com/GlebRadaev/fuelstation/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, mockTxManager), mockDB, mockTxManager
}

func TestRepository_Get(t *testing.T) {
	repo, mock, _ := NewMock(t)
	userID := uuid.New()
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Preferences
	}{
		{
			name: "Preferences exist",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"user_id", "theme", "sidebar_collapsed", "updated_at"}).
					AddRow(userID, "dark", true, now)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, theme, sidebar_collapsed, updated_at FROM user_preferences WHERE user_id = $1")).
					WithArgs(userID).
					WillReturnRows(rows)
			},
			result: &domain.Preferences{
				UserID:           userID,
				Theme:            domain.ThemeDark,
				SidebarCollapsed: true,
				UpdatedAt:        now,
			},
		},
		{
			name: "Preferences do not exist",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, theme, sidebar_collapsed, updated_at FROM user_preferences WHERE user_id = $1")).
					WithArgs(userID).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, theme, sidebar_collapsed, updated_at FROM user_preferences WHERE user_id = $1")).
					WithArgs(userID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Get(context.Background(), userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	prefs := &domain.Preferences{UserID: uuid.New(), Theme: domain.ThemeLight, SidebarCollapsed: true}
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Upserted",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO user_preferences (user_id, theme, sidebar_collapsed, updated_at)")).
					WithArgs(prefs.UserID, "light", true).
					WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(now))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO user_preferences (user_id, theme, sidebar_collapsed, updated_at)")).
					WithArgs(prefs.UserID, "light", true).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txManager.EXPECT().
				Begin(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
					return fn(ctx)
				})
			tt.mockSetup()

			saved, err := repo.Upsert(context.Background(), prefs)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, saved)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, now, saved.UpdatedAt)
			assert.Equal(t, domain.ThemeLight, saved.Theme)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
