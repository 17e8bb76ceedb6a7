package repositories

import (
	"context"

	"github.com/parthdave/couriersim/internal/models"
)

// DeliveryRecordRepository persists the historical delivery log. The CSV
// loader remains the default backend; Postgres is opt-in via config.
type DeliveryRecordRepository interface {
	BulkCreate(ctx context.Context, records []models.DeliveryRecord) error
	GetAll(ctx context.Context) ([]models.DeliveryRecord, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
