package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"logistics/internal/entities"
	"logistics/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const infoColumns = `
		d.id, d.product, d.recipient_id, d.deliveryman_id,
		d.start_date, d.end_date, d.canceled_at, d.signature_id,
		d.created_at, d.updated_at,
		r.name, r.street, r.number, r.complement, r.city, r.state, r.zip_code,
		dm.name, dm.email, dm.avatar_id,
		f.id, f.name, f.path, f.url`

const infoJoins = `
	FROM deliveries d
	JOIN recipients r ON r.id = d.recipient_id
	JOIN deliverymen dm ON dm.id = d.deliveryman_id
	LEFT JOIN files f ON f.id = d.signature_id`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	deliveryModifyDB := FromDomainModify(&deliveryModify)

	query := `
		INSERT INTO deliveries (product, recipient_id, deliveryman_id)
		VALUES ($1, $2, $3)
		RETURNING id, product, recipient_id, deliveryman_id,
			start_date, end_date, canceled_at, signature_id,
			created_at, updated_at
	`

	var deliveryDB DeliveryDB
	err := r.querier.QueryRow(
		ctx,
		query,
		deliveryModifyDB.Product,
		deliveryModifyDB.RecipientID,
		deliveryModifyDB.DeliverymanID,
	).Scan(
		&deliveryDB.ID,
		&deliveryDB.Product,
		&deliveryDB.RecipientID,
		&deliveryDB.DeliverymanID,
		&deliveryDB.StartDate,
		&deliveryDB.EndDate,
		&deliveryDB.CanceledAt,
		&deliveryDB.SignatureID,
		&deliveryDB.CreatedAt,
		&deliveryDB.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) Update(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	deliveryModifyDB := FromDomainModify(&deliveryModify)

	builder := qb.
		Update("deliveries")

	// опциональные поля
	if deliveryModifyDB.Product != nil {
		builder = builder.Set("product", deliveryModifyDB.Product)
	}
	if deliveryModifyDB.RecipientID != nil {
		builder = builder.Set("recipient_id", deliveryModifyDB.RecipientID)
	}
	if deliveryModifyDB.DeliverymanID != nil {
		builder = builder.Set("deliveryman_id", deliveryModifyDB.DeliverymanID)
	}
	if deliveryModifyDB.StartDate != nil {
		builder = builder.Set("start_date", deliveryModifyDB.StartDate)
	}
	if deliveryModifyDB.EndDate != nil {
		builder = builder.Set("end_date", deliveryModifyDB.EndDate)
	}
	if deliveryModifyDB.CanceledAt != nil {
		builder = builder.Set("canceled_at", deliveryModifyDB.CanceledAt)
	}
	if deliveryModifyDB.SignatureID != nil {
		builder = builder.Set("signature_id", deliveryModifyDB.SignatureID)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": deliveryModifyDB.ID}).
		Suffix(`RETURNING id, product, recipient_id, deliveryman_id,
			start_date, end_date, canceled_at, signature_id,
			created_at, updated_at`)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	var deliveryDB DeliveryDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&deliveryDB.ID,
			&deliveryDB.Product,
			&deliveryDB.RecipientID,
			&deliveryDB.DeliverymanID,
			&deliveryDB.StartDate,
			&deliveryDB.EndDate,
			&deliveryDB.CanceledAt,
			&deliveryDB.SignatureID,
			&deliveryDB.CreatedAt,
			&deliveryDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM deliveries WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return delivery.ErrDeliveryNotFound
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Delivery, error) {
	query := `
		SELECT id, product, recipient_id, deliveryman_id,
			start_date, end_date, canceled_at, signature_id,
			created_at, updated_at
		FROM deliveries
		WHERE id = $1
	`

	var deliveryDB DeliveryDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&deliveryDB.ID,
		&deliveryDB.Product,
		&deliveryDB.RecipientID,
		&deliveryDB.DeliverymanID,
		&deliveryDB.StartDate,
		&deliveryDB.EndDate,
		&deliveryDB.CanceledAt,
		&deliveryDB.SignatureID,
		&deliveryDB.CreatedAt,
		&deliveryDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository getbyid error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) GetInfoByID(ctx context.Context, id int64) (*entities.DeliveryInfo, error) {
	query := `SELECT` + infoColumns + infoJoins + `
	WHERE d.id = $1`

	var infoDB DeliveryInfoDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanInfoDest(&infoDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository getinfobyid error: %w", err)
	}

	return ToInfoDomain(&infoDB), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.DeliveryInfo, error) {
	query := `SELECT` + infoColumns + infoJoins + `
	ORDER BY d.id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getall error: %w", err)
	}
	defer rows.Close()

	infoDBs := make([]DeliveryInfoDB, 0, 8)
	for rows.Next() {
		var infoDB DeliveryInfoDB
		if err := rows.Scan(scanInfoDest(&infoDB)...); err != nil {
			return nil, fmt.Errorf("unexpected delivery repository getall error: %w", err)
		}
		infoDBs = append(infoDBs, infoDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getall error: %w", err)
	}

	return ToInfoDomainList(infoDBs), nil
}

// GetByDeliveryman возвращает страницу доставок курьера и общее число
// строк под фильтром. delivered=false — невручённые и неотменённые,
// delivered=true — вручённые, как в операторской выдаче.
func (r *Repository) GetByDeliveryman(ctx context.Context, deliverymanID int64, delivered bool, limit, offset int64) ([]entities.DeliveryInfo, int64, error) {
	filter := `d.end_date IS NULL AND d.canceled_at IS NULL`
	if delivered {
		filter = `d.end_date IS NOT NULL`
	}

	query := `SELECT COUNT(*) OVER(),` + infoColumns + infoJoins + `
	WHERE d.deliveryman_id = $1 AND ` + filter + `
	ORDER BY d.id
	LIMIT $2 OFFSET $3`

	rows, err := r.querier.Query(ctx, query, deliverymanID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected delivery repository getbydeliveryman error: %w", err)
	}
	defer rows.Close()

	var total int64
	infoDBs := make([]DeliveryInfoDB, 0, limit)
	for rows.Next() {
		var infoDB DeliveryInfoDB
		dest := append([]interface{}{&total}, scanInfoDest(&infoDB)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, 0, fmt.Errorf("unexpected delivery repository getbydeliveryman error: %w", err)
		}
		infoDBs = append(infoDBs, infoDB)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("unexpected delivery repository getbydeliveryman error: %w", err)
	}

	return ToInfoDomainList(infoDBs), total, nil
}

func (r *Repository) CountWithdrawalsBetween(ctx context.Context, deliverymanID int64, from, to time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM deliveries
		WHERE deliveryman_id = $1
		  AND start_date >= $2
		  AND start_date < $3
	`

	var count int64
	err := r.querier.QueryRow(ctx, query, deliverymanID, from, to).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected delivery repository count error: %w", err)
	}
	return count, nil
}

func (r *Repository) CountWithdrawnOlderThan(ctx context.Context, olderThan time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM deliveries
		WHERE start_date < $1
		  AND end_date IS NULL
		  AND canceled_at IS NULL
	`

	var count int64
	err := r.querier.QueryRow(ctx, query, olderThan).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected delivery repository count error: %w", err)
	}
	return count, nil
}

func scanInfoDest(infoDB *DeliveryInfoDB) []interface{} {
	return []interface{}{
		&infoDB.ID,
		&infoDB.Product,
		&infoDB.RecipientID,
		&infoDB.DeliverymanID,
		&infoDB.StartDate,
		&infoDB.EndDate,
		&infoDB.CanceledAt,
		&infoDB.SignatureID,
		&infoDB.CreatedAt,
		&infoDB.UpdatedAt,
		&infoDB.RecipientName,
		&infoDB.RecipientStreet,
		&infoDB.RecipientNumber,
		&infoDB.RecipientComplement,
		&infoDB.RecipientCity,
		&infoDB.RecipientState,
		&infoDB.RecipientZipCode,
		&infoDB.DeliverymanName,
		&infoDB.DeliverymanEmail,
		&infoDB.DeliverymanAvatarID,
		&infoDB.SignatureFileID,
		&infoDB.SignatureName,
		&infoDB.SignaturePath,
		&infoDB.SignatureURL,
	}
}
