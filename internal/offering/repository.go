package offering

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okabrie/appointment-booking-backend/internal/recurrence"
)

type Repository interface {
	Create(ctx context.Context, o *Offering) error
	GetByID(ctx context.Context, id string) (*Offering, error)
	List(ctx context.Context, filter Filter) ([]*Offering, int, error)
	Update(ctx context.Context, o *Offering) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const offeringColumns = "id, name, description, start_date, open_minute, close_minute, " +
	"slot_duration_minutes, slot_frequency_minutes, recurrence_rule, created_at, updated_at"

func (r *pgxRepository) Create(ctx context.Context, o *Offering) error {
	ruleDoc, err := recurrence.MarshalRule(o.Rule)
	if err != nil {
		return fmt.Errorf("encode recurrence rule failed: %w", err)
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.offerings").
		Columns("name", "description", "start_date", "open_minute", "close_minute",
			"slot_duration_minutes", "slot_frequency_minutes", "recurrence_rule").
		Values(o.Name, o.Description, o.StartDate,
			minutes(o.OpenTime), minutes(o.CloseTime),
			minutes(o.SlotDuration), minutes(o.SlotFrequency), ruleDoc).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create offering query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Offering, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(offeringColumns).
		From("public.offerings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get offering query failed: %w", err)
	}

	o, err := scanOffering(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get offering failed: %w", err)
	}
	return o, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Offering, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(offeringColumns + ", count(*) OVER() as total_count").
		From("public.offerings").
		OrderBy("created_at DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list offerings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list offerings failed: %w", err)
	}
	defer rows.Close()

	var result []*Offering
	var total int

	for rows.Next() {
		o, err := scanOfferingWithTotal(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan offering failed: %w", err)
		}
		result = append(result, o)
	}

	return result, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, o *Offering) error {
	ruleDoc, err := recurrence.MarshalRule(o.Rule)
	if err != nil {
		return fmt.Errorf("encode recurrence rule failed: %w", err)
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.offerings").
		Set("name", o.Name).
		Set("description", o.Description).
		Set("start_date", o.StartDate).
		Set("open_minute", minutes(o.OpenTime)).
		Set("close_minute", minutes(o.CloseTime)).
		Set("slot_duration_minutes", minutes(o.SlotDuration)).
		Set("slot_frequency_minutes", minutes(o.SlotFrequency)).
		Set("recurrence_rule", ruleDoc).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": o.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update offering query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update offering failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.offerings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete offering query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete offering failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func minutes(d time.Duration) int {
	return int(d / time.Minute)
}

func scanOffering(row pgx.Row) (*Offering, error) {
	var (
		o        Offering
		openMin  int
		closeMin int
		durMin   int
		freqMin  int
		ruleDoc  []byte
	)
	if err := row.Scan(
		&o.ID, &o.Name, &o.Description, &o.StartDate, &openMin, &closeMin,
		&durMin, &freqMin, &ruleDoc, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return restoreOffering(&o, openMin, closeMin, durMin, freqMin, ruleDoc)
}

func scanOfferingWithTotal(rows pgx.Rows, total *int) (*Offering, error) {
	var (
		o        Offering
		openMin  int
		closeMin int
		durMin   int
		freqMin  int
		ruleDoc  []byte
	)
	if err := rows.Scan(
		&o.ID, &o.Name, &o.Description, &o.StartDate, &openMin, &closeMin,
		&durMin, &freqMin, &ruleDoc, &o.CreatedAt, &o.UpdatedAt, total,
	); err != nil {
		return nil, err
	}
	return restoreOffering(&o, openMin, closeMin, durMin, freqMin, ruleDoc)
}

func restoreOffering(o *Offering, openMin, closeMin, durMin, freqMin int, ruleDoc []byte) (*Offering, error) {
	o.OpenTime = time.Duration(openMin) * time.Minute
	o.CloseTime = time.Duration(closeMin) * time.Minute
	o.SlotDuration = time.Duration(durMin) * time.Minute
	o.SlotFrequency = time.Duration(freqMin) * time.Minute

	rule, err := recurrence.UnmarshalRule(ruleDoc)
	if err != nil {
		return nil, err
	}
	o.Rule = rule
	return o, nil
}
