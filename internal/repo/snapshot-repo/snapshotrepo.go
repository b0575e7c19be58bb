package snapshotrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fuelstation/internal/domain"
	"github.com/GlebRadaev/fuelstation/internal/pg"
)

// Repository keeps the last-known active shift of every employee so that the
// close page still has something to show while the platform is unreachable.
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

func (r *Repository) Find(ctx context.Context, employeeID uuid.UUID) (*domain.Shift, error) {
	query := `
        SELECT payload
        FROM shift_snapshots
        WHERE employee_id = $1
    `
	var payload []byte
	err := r.db.QueryRow(ctx, query, employeeID).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find shift snapshot", zap.Error(err))
		return nil, err
	}

	var shift domain.Shift
	if err := json.Unmarshal(payload, &shift); err != nil {
		zap.L().Error("can't decode shift snapshot", zap.String("employee_id", employeeID.String()), zap.Error(err))
		return nil, fmt.Errorf("can't decode shift snapshot: %w", err)
	}
	return &shift, nil
}

func (r *Repository) Save(ctx context.Context, shift *domain.Shift) error {
	payload, err := json.Marshal(shift)
	if err != nil {
		return fmt.Errorf("can't encode shift snapshot: %w", err)
	}

	query := `
        INSERT INTO shift_snapshots (employee_id, shift_id, payload, updated_at)
        VALUES ($1, $2, $3, now())
        ON CONFLICT (employee_id)
        DO UPDATE SET shift_id = EXCLUDED.shift_id, payload = EXCLUDED.payload, updated_at = now()
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, shift.EmployeeID, shift.ID, payload)
		if err != nil {
			zap.L().Error("can't save shift snapshot", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) Delete(ctx context.Context, employeeID uuid.UUID) error {
	query := `
        DELETE FROM shift_snapshots
        WHERE employee_id = $1
    `
	_, err := r.db.Exec(ctx, query, employeeID)
	if err != nil {
		zap.L().Error("can't delete shift snapshot", zap.Error(err))
		return err
	}
	return nil
}
