package problem

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"logistics/internal/entities"
	"logistics/internal/service/problem"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, deliveryID int64, description string) (*entities.DeliveryProblem, error) {
	query := `
		INSERT INTO delivery_problems (delivery_id, description)
		VALUES ($1, $2)
		RETURNING id, delivery_id, description, created_at
	`

	var problemDB DeliveryProblemDB
	err := r.querier.QueryRow(ctx, query, deliveryID, description).Scan(
		&problemDB.ID,
		&problemDB.DeliveryID,
		&problemDB.Description,
		&problemDB.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected problem repository create error: %w", err)
	}

	return ToDomain(&problemDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.DeliveryProblem, error) {
	query := `
		SELECT id, delivery_id, description, created_at
		FROM delivery_problems
		WHERE id = $1
	`

	var problemDB DeliveryProblemDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&problemDB.ID,
		&problemDB.DeliveryID,
		&problemDB.Description,
		&problemDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, problem.ErrProblemNotFound
		}
		return nil, fmt.Errorf("unexpected problem repository getbyid error: %w", err)
	}

	return ToDomain(&problemDB), nil
}

func (r *Repository) GetByDelivery(ctx context.Context, deliveryID int64) ([]entities.DeliveryProblem, error) {
	query := `
		SELECT id, delivery_id, description, created_at
		FROM delivery_problems
		WHERE delivery_id = $1
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("unexpected problem repository getbydelivery error: %w", err)
	}
	defer rows.Close()

	problemDBs := make([]DeliveryProblemDB, 0, 8)
	for rows.Next() {
		var problemDB DeliveryProblemDB
		err := rows.Scan(
			&problemDB.ID,
			&problemDB.DeliveryID,
			&problemDB.Description,
			&problemDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected problem repository getbydelivery error: %w", err)
		}
		problemDBs = append(problemDBs, problemDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected problem repository getbydelivery error: %w", err)
	}

	return ToDomainList(problemDBs), nil
}

// GetPendingPage выбирает проблемы доставок без canceled_at.
// Сортировка по delivery_id — так выдаёт операторская панель.
func (r *Repository) GetPendingPage(ctx context.Context, limit, offset int64) ([]entities.PendingProblem, int64, error) {
	query := `
		SELECT COUNT(*) OVER(),
			p.id, p.delivery_id, p.description, p.created_at,
			d.product, d.recipient_id, d.deliveryman_id,
			d.start_date, d.end_date, d.canceled_at, d.signature_id
		FROM delivery_problems p
		JOIN deliveries d ON d.id = p.delivery_id
		WHERE d.canceled_at IS NULL
		ORDER BY p.delivery_id, p.id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.querier.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected problem repository getpendingpage error: %w", err)
	}
	defer rows.Close()

	var total int64
	pendingDBs := make([]PendingProblemDB, 0, limit)
	for rows.Next() {
		var pendingDB PendingProblemDB
		err := rows.Scan(
			&total,
			&pendingDB.ID,
			&pendingDB.DeliveryID,
			&pendingDB.Description,
			&pendingDB.CreatedAt,
			&pendingDB.Product,
			&pendingDB.RecipientID,
			&pendingDB.DeliverymanID,
			&pendingDB.DeliveryStartDate,
			&pendingDB.DeliveryEndDate,
			&pendingDB.DeliveryCanceledAt,
			&pendingDB.DeliverySignatureID,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("unexpected problem repository getpendingpage error: %w", err)
		}
		pendingDBs = append(pendingDBs, pendingDB)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("unexpected problem repository getpendingpage error: %w", err)
	}

	return ToPendingDomainList(pendingDBs), total, nil
}
