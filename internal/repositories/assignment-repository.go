package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"scheduling-system/internal/entities"
	"scheduling-system/pkg/constants"
	apperrors "scheduling-system/pkg/errors"
	"scheduling-system/pkg/types"
)

const assignmentTable = "resource_assignments"
const assignmentFields = `id, resource_id, target_ref, start_date, end_date,
	planned_hours, status, created_at, updated_at`

var assignmentFilterMap = map[string]string{
	"resource_id": "resource_id",
	"target_ref":  "target_ref",
	"status":      "status",
	"start_date":  "start_date",
	"end_date":    "end_date",
	"created_at":  "created_at",
}

type AssignmentRepositoryInterface interface {
	GetAssignments(ctx context.Context, filter types.Filter) ([]entities.ResourceAssignment, uint64, error)
	FindAssignment(ctx context.Context, id uint64) (*entities.ResourceAssignment, error)
	GetActiveAssignmentsForResource(ctx context.Context, q Querier, resourceID uint64, from, to time.Time) ([]entities.ResourceAssignment, error)
	CreateAssignment(ctx context.Context, q Querier, a entities.ResourceAssignment) (uint64, error)
	UpdateAssignmentStatus(ctx context.Context, id uint64, status string) error
}

type AssignmentRepository struct {
	storage *pgxpool.Pool
}

func NewAssignmentRepository(storage *pgxpool.Pool) AssignmentRepositoryInterface {
	return &AssignmentRepository{storage: storage}
}

func scanAssignment(row pgx.Row, a *entities.ResourceAssignment) error {
	return row.Scan(
		&a.ID, &a.ResourceID, &a.TargetRef, &a.StartDate, &a.EndDate,
		&a.PlannedHours, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
}

func (r *AssignmentRepository) GetAssignments(ctx context.Context, filter types.Filter) ([]entities.ResourceAssignment, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	countBuilder := ApplyListParams(
		psql.Select("COUNT(*)").From(assignmentTable),
		types.Filter{Filter: filter.Filter},
		assignmentFilterMap,
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
		psql.Select(assignmentFields).From(assignmentTable).OrderBy("start_date ASC, id ASC"),
		filter,
		assignmentFilterMap,
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

	assignments := make([]entities.ResourceAssignment, 0)
	for rows.Next() {
		var a entities.ResourceAssignment
		if err = scanAssignment(rows, &a); err != nil {
			return nil, 0, err
		}
		assignments = append(assignments, a)
	}
	return assignments, total, rows.Err()
}

func (r *AssignmentRepository) FindAssignment(ctx context.Context, id uint64) (*entities.ResourceAssignment, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, assignmentFields, assignmentTable)

	var a entities.ResourceAssignment
	err := scanAssignment(r.storage.QueryRow(ctx, query, id), &a)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetActiveAssignmentsForResource возвращает активные (scheduled, in_progress)
// назначения ресурса, пересекающиеся с окном [from, to]. Интервалы закрытые,
// поэтому условие пересечения: start_date <= to AND end_date >= from.
func (r *AssignmentRepository) GetActiveAssignmentsForResource(ctx context.Context, q Querier, resourceID uint64, from, to time.Time) ([]entities.ResourceAssignment, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE resource_id = $1
		  AND status = ANY($2)
		  AND start_date <= $3
		  AND end_date >= $4
		ORDER BY start_date ASC, id ASC`, assignmentFields, assignmentTable)

	rows, err := q.Query(ctx, query, resourceID, constants.ActiveAssignmentStatuses, to, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]entities.ResourceAssignment, 0)
	for rows.Next() {
		var a entities.ResourceAssignment
		if err = scanAssignment(rows, &a); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *AssignmentRepository) CreateAssignment(ctx context.Context, q Querier, a entities.ResourceAssignment) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (resource_id, target_ref, start_date, end_date, planned_hours, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`, assignmentTable)

	var id uint64
	err := q.QueryRow(ctx, query,
		a.ResourceID, a.TargetRef, a.StartDate, a.EndDate, a.PlannedHours, a.Status,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *AssignmentRepository) UpdateAssignmentStatus(ctx context.Context, id uint64, status string) error {
	query := fmt.Sprintf(`UPDATE %s SET status = $1, updated_at = NOW() WHERE id = $2`, assignmentTable)

	tag, err := r.storage.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
