package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/parthdave/couriersim/internal/models"
)

type DeliveryRecordRepository struct {
	pool *pgxpool.Pool
}

func NewDeliveryRecordRepository(pool *pgxpool.Pool) *DeliveryRecordRepository {
	return &DeliveryRecordRepository{pool: pool}
}

func (r *DeliveryRecordRepository) BulkCreate(ctx context.Context, records []models.DeliveryRecord) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	stmt := `
        INSERT INTO delivery_records (
            customer_name, day_of_week, time_slot, package_size, outcome
        ) VALUES ($1, $2, $3, $4, $5)`

	for _, rec := range records {
		_, err = tx.Exec(ctx, stmt,
			rec.CustomerName,
			rec.DayOfWeek,
			rec.TimeSlot,
			rec.PackageSize,
			rec.Outcome,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *DeliveryRecordRepository) GetAll(ctx context.Context) ([]models.DeliveryRecord, error) {
	query := `
        SELECT customer_name, day_of_week, time_slot, package_size, outcome
        FROM delivery_records`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.DeliveryRecord
	for rows.Next() {
		var rec models.DeliveryRecord
		err := rows.Scan(
			&rec.CustomerName,
			&rec.DayOfWeek,
			&rec.TimeSlot,
			&rec.PackageSize,
			&rec.Outcome,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *DeliveryRecordRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM delivery_records").Scan(&count)
	return count, err
}

func (r *DeliveryRecordRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE delivery_records")
	return err
}
