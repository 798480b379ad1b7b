package deliveryman

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"logistics/internal/entities"
	"logistics/internal/repository"
	"logistics/internal/service/deliveryman"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, deliverymanModify entities.DeliverymanModify) (int64, error) {
	deliverymanModifyDB := FromDomainModify(&deliverymanModify)

	query := `
		INSERT INTO deliverymen (name, email, avatar_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		deliverymanModifyDB.Name,
		deliverymanModifyDB.Email,
		deliverymanModifyDB.AvatarID,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, deliveryman.ErrEmailTaken
		}
		return 0, fmt.Errorf("unexpected deliveryman repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, deliverymanModify entities.DeliverymanModify) (*entities.Deliveryman, error) {
	deliverymanModifyDB := FromDomainModify(&deliverymanModify)

	builder := qb.
		Update("deliverymen")

	// опциональные поля
	if deliverymanModifyDB.Name != nil {
		builder = builder.Set("name", deliverymanModifyDB.Name)
	}
	if deliverymanModifyDB.Email != nil {
		builder = builder.Set("email", deliverymanModifyDB.Email)
	}
	if deliverymanModifyDB.AvatarID != nil {
		builder = builder.Set("avatar_id", deliverymanModifyDB.AvatarID)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": deliverymanModifyDB.ID}).
		Suffix("RETURNING id, name, email, avatar_id, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected deliveryman repository update error: %w", err)
	}

	var deliverymanDB DeliverymanDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&deliverymanDB.ID,
			&deliverymanDB.Name,
			&deliverymanDB.Email,
			&deliverymanDB.AvatarID,
			&deliverymanDB.CreatedAt,
			&deliverymanDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliveryman.ErrDeliverymanNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, deliveryman.ErrEmailTaken
		}
		return nil, fmt.Errorf("unexpected deliveryman repository update error: %w", err)
	}

	return ToDomain(&deliverymanDB), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM deliverymen WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected deliveryman repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return deliveryman.ErrDeliverymanNotFound
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Deliveryman, error) {
	query := `
		SELECT id, name, email, avatar_id, created_at, updated_at
		FROM deliverymen
		WHERE id = $1
	`

	var deliverymanDB DeliverymanDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&deliverymanDB.ID,
			&deliverymanDB.Name,
			&deliverymanDB.Email,
			&deliverymanDB.AvatarID,
			&deliverymanDB.CreatedAt,
			&deliverymanDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliveryman.ErrDeliverymanNotFound
		}
		return nil, fmt.Errorf("unexpected deliveryman repository getbyid error: %w", err)
	}

	return ToDomain(&deliverymanDB), nil
}

func (r *Repository) GetPage(ctx context.Context, limit, offset int64) ([]entities.Deliveryman, int64, error) {
	query := `
		SELECT COUNT(*) OVER(), id, name, email, avatar_id, created_at, updated_at
		FROM deliverymen
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.querier.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected deliveryman repository getpage error: %w", err)
	}
	defer rows.Close()

	var total int64
	deliverymanDBs := make([]DeliverymanDB, 0, limit)
	for rows.Next() {
		var deliverymanDB DeliverymanDB
		err := rows.Scan(
			&total,
			&deliverymanDB.ID,
			&deliverymanDB.Name,
			&deliverymanDB.Email,
			&deliverymanDB.AvatarID,
			&deliverymanDB.CreatedAt,
			&deliverymanDB.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("unexpected deliveryman repository getpage error: %w", err)
		}
		deliverymanDBs = append(deliverymanDBs, deliverymanDB)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("unexpected deliveryman repository getpage error: %w", err)
	}

	return ToDomainList(deliverymanDBs), total, nil
}
