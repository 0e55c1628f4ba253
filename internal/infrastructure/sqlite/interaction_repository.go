package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.InteractionRepository = (*InteractionRepo)(nil)

var interactionColumns = []string{"id", "customer_id", "type", "date", "summary", "created_at"}

// InteractionRepo implementación de InteractionRepository (usable con db o tx).
type InteractionRepo struct {
	q Querier
}

func NewInteractionRepository(q Querier) *InteractionRepo {
	return &InteractionRepo{q: q}
}

func (r *InteractionRepo) Create(ctx context.Context, interaction *entity.Interaction) error {
	query, args, err := builder.
		Insert("interactions").
		Columns("customer_id", "type", "date", "summary", "created_at").
		Values(interaction.CustomerID, string(interaction.Type), toMicros(interaction.Date), interaction.Summary, toMicros(interaction.CreatedAt)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert interaction: %w", err)
	}
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert interaction: %w", domain.ErrReferentialIntegrity)
		}
		return fmt.Errorf("insert interaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert interaction id: %w", err)
	}
	interaction.ID = id
	return nil
}

func (r *InteractionRepo) GetByID(ctx context.Context, id int64) (*entity.Interaction, error) {
	query, args, err := builder.Select(interactionColumns...).From("interactions").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get interaction: %w", err)
	}
	i, err := scanInteraction(r.q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get interaction: %w", err)
	}
	return i, nil
}

func (r *InteractionRepo) List(ctx context.Context) ([]*entity.Interaction, error) {
	return listInteractions(ctx, r.q, builder.Select(interactionColumns...).From("interactions").OrderBy("id"))
}

// ListByCustomer la más reciente primero; a igual fecha, el id mayor primero.
func (r *InteractionRepo) ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Interaction, error) {
	return listInteractions(ctx, r.q, builder.Select(interactionColumns...).From("interactions").
		Where(sq.Eq{"customer_id": customerID}).
		OrderBy("date DESC", "id DESC"))
}

func (r *InteractionRepo) Update(ctx context.Context, interaction *entity.Interaction) error {
	query, args, err := builder.
		Update("interactions").
		SetMap(map[string]interface{}{
			"type":    string(interaction.Type),
			"date":    toMicros(interaction.Date),
			"summary": interaction.Summary,
		}).
		Where(sq.Eq{"id": interaction.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update interaction: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update interaction: %w", err)
	}
	return nil
}

func listInteractions(ctx context.Context, q Querier, b sq.SelectBuilder) ([]*entity.Interaction, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list interactions: %w", err)
	}
	rows, err := q.QueryContext(ctx, query, args...)
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

func scanInteraction(row rowScanner) (*entity.Interaction, error) {
	var (
		i               entity.Interaction
		typ             string
		date, createdAt int64
	)
	if err := row.Scan(&i.ID, &i.CustomerID, &typ, &date, &i.Summary, &createdAt); err != nil {
		return nil, err
	}
	t, err := entity.ParseInteractionType(typ)
	if err != nil {
		return nil, err
	}
	i.Type = t
	i.Date = fromMicros(date)
	i.CreatedAt = fromMicros(createdAt)
	return &i, nil
}
