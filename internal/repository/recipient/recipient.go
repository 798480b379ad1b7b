package recipient

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"logistics/internal/entities"
	"logistics/internal/service/recipient"
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

func (r *Repository) Create(ctx context.Context, recipientModify entities.RecipientModify) (int64, error) {
	recipientModifyDB := FromDomainModify(&recipientModify)

	query := `
		INSERT INTO recipients (name, street, number, complement, city, state, zip_code)
		VALUES ($1, $2, $3, COALESCE($4, ''), $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		recipientModifyDB.Name,
		recipientModifyDB.Street,
		recipientModifyDB.Number,
		recipientModifyDB.Complement,
		recipientModifyDB.City,
		recipientModifyDB.State,
		recipientModifyDB.ZipCode,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected recipient repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, recipientModify entities.RecipientModify) (*entities.Recipient, error) {
	recipientModifyDB := FromDomainModify(&recipientModify)

	builder := qb.
		Update("recipients")

	// опциональные поля
	if recipientModifyDB.Name != nil {
		builder = builder.Set("name", recipientModifyDB.Name)
	}
	if recipientModifyDB.Street != nil {
		builder = builder.Set("street", recipientModifyDB.Street)
	}
	if recipientModifyDB.Number != nil {
		builder = builder.Set("number", recipientModifyDB.Number)
	}
	if recipientModifyDB.Complement != nil {
		builder = builder.Set("complement", recipientModifyDB.Complement)
	}
	if recipientModifyDB.City != nil {
		builder = builder.Set("city", recipientModifyDB.City)
	}
	if recipientModifyDB.State != nil {
		builder = builder.Set("state", recipientModifyDB.State)
	}
	if recipientModifyDB.ZipCode != nil {
		builder = builder.Set("zip_code", recipientModifyDB.ZipCode)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": recipientModifyDB.ID}).
		Suffix("RETURNING id, name, street, number, complement, city, state, zip_code, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected recipient repository update error: %w", err)
	}

	var recipientDB RecipientDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&recipientDB.ID,
			&recipientDB.Name,
			&recipientDB.Street,
			&recipientDB.Number,
			&recipientDB.Complement,
			&recipientDB.City,
			&recipientDB.State,
			&recipientDB.ZipCode,
			&recipientDB.CreatedAt,
			&recipientDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, recipient.ErrRecipientNotFound
		}
		return nil, fmt.Errorf("unexpected recipient repository update error: %w", err)
	}

	return ToDomain(&recipientDB), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM recipients WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected recipient repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return recipient.ErrRecipientNotFound
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Recipient, error) {
	query := `
		SELECT id, name, street, number, complement, city, state, zip_code, created_at, updated_at
		FROM recipients
		WHERE id = $1
	`

	var recipientDB RecipientDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&recipientDB.ID,
			&recipientDB.Name,
			&recipientDB.Street,
			&recipientDB.Number,
			&recipientDB.Complement,
			&recipientDB.City,
			&recipientDB.State,
			&recipientDB.ZipCode,
			&recipientDB.CreatedAt,
			&recipientDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, recipient.ErrRecipientNotFound
		}
		return nil, fmt.Errorf("unexpected recipient repository getbyid error: %w", err)
	}

	return ToDomain(&recipientDB), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Recipient, error) {
	query := `
		SELECT id, name, street, number, complement, city, state, zip_code, created_at, updated_at
		FROM recipients
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected recipient repository getall error: %w", err)
	}
	defer rows.Close()

	recipientDBs := make([]RecipientDB, 0, 8)
	for rows.Next() {
		var recipientDB RecipientDB
		err := rows.Scan(
			&recipientDB.ID,
			&recipientDB.Name,
			&recipientDB.Street,
			&recipientDB.Number,
			&recipientDB.Complement,
			&recipientDB.City,
			&recipientDB.State,
			&recipientDB.ZipCode,
			&recipientDB.CreatedAt,
			&recipientDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected recipient repository getall error: %w", err)
		}
		recipientDBs = append(recipientDBs, recipientDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected recipient repository getall error: %w", err)
	}

	return ToDomainList(recipientDBs), nil
}
