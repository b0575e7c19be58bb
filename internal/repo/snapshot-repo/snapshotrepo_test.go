package snapshotrepo

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
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

func passThroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().
		Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestRepository_Find(t *testing.T) {
	repo, mock, _ := NewMock(t)
	employeeID := uuid.New()
	shift := domain.Shift{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		Status:      domain.ShiftOpen,
		OpeningCash: decimal.NewFromInt(1000),
		SalesTotal:  decimal.NewFromInt(40),
	}
	payload, _ := json.Marshal(shift)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Shift
	}{
		{
			name: "Snapshot exists",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"payload"}).AddRow(payload)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT payload FROM shift_snapshots WHERE employee_id = $1")).
					WithArgs(employeeID).
					WillReturnRows(rows)
			},
			result: &shift,
		},
		{
			name: "Snapshot does not exist",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT payload FROM shift_snapshots WHERE employee_id = $1")).
					WithArgs(employeeID).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Corrupted payload",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"payload"}).AddRow([]byte("{not json"))
				mock.ExpectQuery(regexp.QuoteMeta("SELECT payload FROM shift_snapshots WHERE employee_id = $1")).
					WithArgs(employeeID).
					WillReturnRows(rows)
			},
			expectErr: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT payload FROM shift_snapshots WHERE employee_id = $1")).
					WithArgs(employeeID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Find(context.Background(), employeeID)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			if tt.result == nil {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, tt.result.ID, result.ID)
			assert.Equal(t, tt.result.Status, result.Status)
			assert.True(t, tt.result.OpeningCash.Equal(result.OpeningCash))
			assert.True(t, tt.result.SalesTotal.Equal(result.SalesTotal))
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Save(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	shift := &domain.Shift{ID: uuid.New(), EmployeeID: uuid.New(), Status: domain.ShiftOpen}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Saved",
			mockSetup: func() {
				passThroughTx(txManager)
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO shift_snapshots (employee_id, shift_id, payload, updated_at)")).
					WithArgs(shift.EmployeeID, shift.ID, pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				passThroughTx(txManager)
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO shift_snapshots (employee_id, shift_id, payload, updated_at)")).
					WithArgs(shift.EmployeeID, shift.ID, pgxmock.AnyArg()).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Save(context.Background(), shift)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, _ := NewMock(t)
	employeeID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM shift_snapshots WHERE employee_id = $1")).
		WithArgs(employeeID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Delete(context.Background(), employeeID))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM shift_snapshots WHERE employee_id = $1")).
		WithArgs(employeeID).
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Delete(context.Background(), employeeID))

	assert.NoError(t, mock.ExpectationsWereMet())
}
