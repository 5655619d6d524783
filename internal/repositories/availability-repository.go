package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"scheduling-system/internal/entities"
)

const availabilityTable = "resource_availability"
const availabilityFields = `id, resource_id, date, is_available, available_hours,
	unavailability_type, note, created_at, updated_at`

type AvailabilityRepositoryInterface interface {
	GetForResource(ctx context.Context, q Querier, resourceID uint64, from, to time.Time) ([]entities.ResourceAvailability, error)
	Upsert(ctx context.Context, q Querier, rec entities.ResourceAvailability) error
	Delete(ctx context.Context, resourceID uint64, dates []time.Time) (int64, error)
}

type AvailabilityRepository struct {
	storage *pgxpool.Pool
}

func NewAvailabilityRepository(storage *pgxpool.Pool) AvailabilityRepositoryInterface {
	return &AvailabilityRepository{storage: storage}
}

func (r *AvailabilityRepository) GetForResource(ctx context.Context, q Querier, resourceID uint64, from, to time.Time) ([]entities.ResourceAvailability, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE resource_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date ASC`, availabilityFields, availabilityTable)

	rows, err := q.Query(ctx, query, resourceID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]entities.ResourceAvailability, 0)
	for rows.Next() {
		var rec entities.ResourceAvailability
		err = rows.Scan(
			&rec.ID, &rec.ResourceID, &rec.Date, &rec.IsAvailable,
			&rec.AvailableHours, &rec.UnavailabilityType, &rec.Note,
			&rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Upsert создаёт или перезаписывает запись о недоступности. На пару
// (ресурс, дата) в таблице уникальный индекс, так что повторная отметка
// той же даты обновляет существующую запись, а не плодит дубликаты.
func (r *AvailabilityRepository) Upsert(ctx context.Context, q Querier, rec entities.ResourceAvailability) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (resource_id, date, is_available, available_hours, unavailability_type, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (resource_id, date) DO UPDATE SET
			is_available        = EXCLUDED.is_available,
			available_hours     = EXCLUDED.available_hours,
			unavailability_type = EXCLUDED.unavailability_type,
			note                = EXCLUDED.note,
			updated_at          = NOW()`, availabilityTable)

	_, err := q.Exec(ctx, query,
		rec.ResourceID, rec.Date, rec.IsAvailable, rec.AvailableHours,
		rec.UnavailabilityType, rec.Note,
	)
	return err
}

// Delete снимает отметки недоступности: ресурс снова доступен на эти даты
// по умолчанию (календарь разреженный).
func (r *AvailabilityRepository) Delete(ctx context.Context, resourceID uint64, dates []time.Time) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE resource_id = $1 AND date = ANY($2)`, availabilityTable)

	tag, err := r.storage.Exec(ctx, query, resourceID, dates)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
