package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"scheduling-system/internal/dto"
	"scheduling-system/internal/entities"
	apperrors "scheduling-system/pkg/errors"
	"scheduling-system/pkg/types"
)

const resourceTable = "resources"
const resourceFields = `id, resource_code, name, resource_type, daily_capacity,
	skills, is_available, is_active, created_at, updated_at`

const certificationTable = "resource_certifications"

var resourceFilterMap = map[string]string{
	"resource_type": "resource_type",
	"is_available":  "is_available",
	"is_active":     "is_active",
	"name":          "name",
	"resource_code": "resource_code",
	"created_at":    "created_at",
}

type ResourceRepositoryInterface interface {
	GetResources(ctx context.Context, filter types.Filter) ([]entities.EngineeringResource, uint64, error)
	FindResource(ctx context.Context, id uint64) (*entities.EngineeringResource, error)
	FindResourceForUpdate(ctx context.Context, q Querier, id uint64) (*entities.EngineeringResource, error)
	GetActiveResources(ctx context.Context, resourceType string) ([]entities.EngineeringResource, error)
	GetResourceCodes(ctx context.Context, q Querier, resourceType string) ([]string, error)
	CreateResource(ctx context.Context, q Querier, res entities.EngineeringResource) (uint64, error)
	UpdateResource(ctx context.Context, id uint64, payload dto.UpdateResourceDTO) error
	RetireResource(ctx context.Context, id uint64) error

	GetCertifications(ctx context.Context, resourceID uint64) ([]entities.Certification, error)
	AddCertification(ctx context.Context, cert entities.Certification) (uint64, error)
}

type ResourceRepository struct {
	storage *pgxpool.Pool
}

func NewResourceRepository(storage *pgxpool.Pool) ResourceRepositoryInterface {
	return &ResourceRepository{storage: storage}
}

func scanResource(row pgx.Row, res *entities.EngineeringResource) error {
	return row.Scan(
		&res.ID, &res.ResourceCode, &res.Name, &res.ResourceType,
		&res.DailyCapacity, &res.Skills, &res.IsAvailable, &res.IsActive,
		&res.CreatedAt, &res.UpdatedAt,
	)
}

func (r *ResourceRepository) GetResources(ctx context.Context, filter types.Filter) ([]entities.EngineeringResource, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	countBuilder := ApplyListParams(
		psql.Select("COUNT(*)").From(resourceTable),
		types.Filter{Filter: filter.Filter},
		resourceFilterMap,
	)
	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err = r.storage.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listBuilder := ApplyListParams(
		psql.Select(resourceFields).From(resourceTable).OrderBy("id ASC"),
		filter,
		resourceFilterMap,
	)
	listSQL, listArgs, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	resources := make([]entities.EngineeringResource, 0)
	for rows.Next() {
		var res entities.EngineeringResource
		if err = scanResource(rows, &res); err != nil {
			return nil, 0, err
		}
		resources = append(resources, res)
	}
	return resources, total, rows.Err()
}

func (r *ResourceRepository) FindResource(ctx context.Context, id uint64) (*entities.EngineeringResource, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, resourceFields, resourceTable)

	var res entities.EngineeringResource
	err := scanResource(r.storage.QueryRow(ctx, query, id), &res)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrResourceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// FindResourceForUpdate блокирует строку ресурса до конца транзакции.
// Через эту блокировку сериализуются конкурентные бронирования и
// генерация кода ресурса.
func (r *ResourceRepository) FindResourceForUpdate(ctx context.Context, q Querier, id uint64) (*entities.EngineeringResource, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 FOR UPDATE`, resourceFields, resourceTable)

	var res entities.EngineeringResource
	err := scanResource(q.QueryRow(ctx, query, id), &res)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrResourceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ResourceRepository) GetActiveResources(ctx context.Context, resourceType string) ([]entities.EngineeringResource, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	builder := psql.Select(resourceFields).From(resourceTable).
		Where(sq.Eq{"is_active": true}).
		OrderBy("resource_code ASC")
	if resourceType != "" {
		builder = builder.Where(sq.Eq{"resource_type": resourceType})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resources := make([]entities.EngineeringResource, 0)
	for rows.Next() {
		var res entities.EngineeringResource
		if err = scanResource(rows, &res); err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}
	return resources, rows.Err()
}

// GetResourceCodes возвращает все коды ресурсов данного типа с блокировкой:
// вызывается внутри транзакции создания, чтобы два параллельных создания
// не получили одинаковый порядковый номер.
func (r *ResourceRepository) GetResourceCodes(ctx context.Context, q Querier, resourceType string) ([]string, error) {
	query := fmt.Sprintf(`SELECT resource_code FROM %s WHERE resource_type = $1 FOR UPDATE`, resourceTable)

	rows, err := q.Query(ctx, query, resourceType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	codes := make([]string, 0)
	for rows.Next() {
		var code string
		if err = rows.Scan(&code); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

func (r *ResourceRepository) CreateResource(ctx context.Context, q Querier, res entities.EngineeringResource) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (resource_code, name, resource_type, daily_capacity, skills, is_available, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`, resourceTable)

	var id uint64
	err := q.QueryRow(ctx, query,
		res.ResourceCode, res.Name, res.ResourceType, res.DailyCapacity,
		res.Skills, res.IsAvailable, res.IsActive,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ResourceRepository) UpdateResource(ctx context.Context, id uint64, payload dto.UpdateResourceDTO) error {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	builder := psql.Update(resourceTable).Set("updated_at", time.Now())

	if payload.Name != nil {
		builder = builder.Set("name", *payload.Name)
	}
	if payload.DailyCapacity != nil {
		builder = builder.Set("daily_capacity", *payload.DailyCapacity)
	}
	if payload.Skills != nil {
		builder = builder.Set("skills", *payload.Skills)
	}
	if payload.IsAvailable != nil {
		builder = builder.Set("is_available", *payload.IsAvailable)
	}

	query, args, err := builder.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// RetireResource списывает ресурс. Физического удаления нет: история
// назначений должна оставаться читаемой.
func (r *ResourceRepository) RetireResource(ctx context.Context, id uint64) error {
	query := fmt.Sprintf(`UPDATE %s SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, resourceTable)

	tag, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

func (r *ResourceRepository) GetCertifications(ctx context.Context, resourceID uint64) ([]entities.Certification, error) {
	query := fmt.Sprintf(`
		SELECT id, resource_id, name, issued_at, expires_at
		FROM %s WHERE resource_id = $1
		ORDER BY expires_at ASC NULLS LAST`, certificationTable)

	rows, err := r.storage.Query(ctx, query, resourceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	certs := make([]entities.Certification, 0)
	for rows.Next() {
		var c entities.Certification
		if err = rows.Scan(&c.ID, &c.ResourceID, &c.Name, &c.IssuedAt, &c.ExpiresAt); err != nil {
			return nil, err
		}
		certs = append(certs, c)
	}
	return certs, rows.Err()
}

func (r *ResourceRepository) AddCertification(ctx context.Context, cert entities.Certification) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (resource_id, name, issued_at, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`, certificationTable)

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		cert.ResourceID, cert.Name, cert.IssuedAt, cert.ExpiresAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
