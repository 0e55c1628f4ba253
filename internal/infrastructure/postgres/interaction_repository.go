package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.InteractionRepository = (*InteractionRepo)(nil)

const interactionColumns = `id, customer_id, type::text, date, summary, created_at`

// InteractionRepo implementación de InteractionRepository (usable con pool o tx).
type InteractionRepo struct {
	q Querier
}

// NewInteractionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInteractionRepository(q Querier) *InteractionRepo {
	return &InteractionRepo{q: q}
}

func (r *InteractionRepo) Create(ctx context.Context, interaction *entity.Interaction) error {
	query := `
		INSERT INTO interactions (customer_id, type, date, summary, created_at)
		VALUES ($1, $2::interaction_type, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		interaction.CustomerID, string(interaction.Type), interaction.Date, interaction.Summary, interaction.CreatedAt,
	).Scan(&interaction.ID)
	if err != nil {
		return mapWriteError("insert interaction", err)
	}
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *InteractionRepo) GetByID(ctx context.Context, id int64) (*entity.Interaction, error) {
	i, err := scanInteraction(r.q.QueryRow(ctx, `SELECT `+interactionColumns+` FROM interactions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get interaction: %w", err)
	}
	return i, nil
}

func (r *InteractionRepo) List(ctx context.Context) ([]*entity.Interaction, error) {
	return listInteractions(ctx, r.q, `SELECT `+interactionColumns+` FROM interactions ORDER BY id`)
}

// ListByCustomer la más reciente primero; a igual fecha, el id mayor primero.
func (r *InteractionRepo) ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Interaction, error) {
	return listInteractions(ctx, r.q, `
		SELECT `+interactionColumns+` FROM interactions
		WHERE customer_id = $1
		ORDER BY date DESC, id DESC`, customerID)
}

func (r *InteractionRepo) Update(ctx context.Context, interaction *entity.Interaction) error {
	query := `
		UPDATE interactions SET type = $2::interaction_type, date = $3, summary = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		interaction.ID, string(interaction.Type), interaction.Date, interaction.Summary,
	)
	if err != nil {
		return fmt.Errorf("update interaction: %w", err)
	}
	return nil
}

func listInteractions(ctx context.Context, q Querier, query string, args ...any) ([]*entity.Interaction, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}
	defer rows.Close()
	list := []*entity.Interaction{}
	for rows.Next() {
		i, err := scanInteraction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}
		list = append(list, i)
	}
	return list, rows.Err()
}

func scanInteraction(row pgx.Row) (*entity.Interaction, error) {
	var (
		i   entity.Interaction
		typ string
	)
	if err := row.Scan(&i.ID, &i.CustomerID, &typ, &i.Date, &i.Summary, &i.CreatedAt); err != nil {
		return nil, err
	}
	t, err := entity.ParseInteractionType(typ)
	if err != nil {
		return nil, err
	}
	i.Type = t
	i.Date = i.Date.UTC()
	i.CreatedAt = i.CreatedAt.UTC()
	return &i, nil
}
