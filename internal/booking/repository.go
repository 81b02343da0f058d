package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okabrie/appointment-booking-backend/internal/interval"
)

type Repository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Update(ctx context.Context, booking *Booking) error
	Delete(ctx context.Context, id string) error

	// ListIntervals returns the occupied intervals of non-cancelled bookings
	// whose padded range intersects [from, to). An empty offeringID matches
	// all offerings. This is the lookup whose results callers feed into the
	// availability calculator and the layout engine.
	ListIntervals(ctx context.Context, offeringID string, from, to time.Time) ([]interval.TimeInterval, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("offering_id", "customer_name", "start_time", "end_time",
			"padding_before_minutes", "padding_after_minutes", "status").
		Values(b.OfferingID, b.CustomerName, b.StartTime, b.EndTime,
			int(b.PaddingBefore/time.Minute), int(b.PaddingAfter/time.Minute), b.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrOfferingNotFound
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"b.id", "b.offering_id", "o.name", "b.customer_name",
		"b.start_time", "b.end_time", "b.padding_before_minutes", "b.padding_after_minutes",
		"b.status", "b.created_at", "b.updated_at",
	).
		From("public.bookings b").
		Join("public.offerings o ON b.offering_id = o.id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.offering_id", "o.name", "b.customer_name",
		"b.start_time", "b.end_time", "b.padding_before_minutes", "b.padding_after_minutes",
		"b.status", "b.created_at", "b.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.bookings b").
		Join("public.offerings o ON b.offering_id = o.id")

	if filter.OfferingID != "" {
		query = query.Where(squirrel.Eq{"b.offering_id": filter.OfferingID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	// Date range filtering (intersection logic)
	if filter.StartTime != nil {
		query = query.Where(squirrel.Gt{"b.end_time": filter.StartTime})
	}
	if filter.EndTime != nil {
		query = query.Where(squirrel.Lt{"b.start_time": filter.EndTime})
	}

	query = query.OrderBy("b.start_time ASC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		var (
			b         Booking
			padBefore int
			padAfter  int
		)
		if err := rows.Scan(
			&b.ID, &b.OfferingID, &b.OfferingName, &b.CustomerName,
			&b.StartTime, &b.EndTime, &padBefore, &padAfter,
			&b.Status, &b.CreatedAt, &b.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		b.PaddingBefore = time.Duration(padBefore) * time.Minute
		b.PaddingAfter = time.Duration(padAfter) * time.Minute
		bookings = append(bookings, &b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", b.Status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) ListIntervals(ctx context.Context, offeringID string, from, to time.Time) ([]interval.TimeInterval, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"start_time", "end_time", "padding_before_minutes", "padding_after_minutes",
	).
		From("public.bookings").
		Where(squirrel.NotEq{"status": StatusCancelled}).
		// Padded-interval intersection with [from, to)
		Where(squirrel.Expr("start_time - padding_before_minutes * interval '1 minute' < ?", to)).
		Where(squirrel.Expr("end_time + padding_after_minutes * interval '1 minute' > ?", from)).
		OrderBy("start_time ASC")

	if offeringID != "" {
		query = query.Where(squirrel.Eq{"offering_id": offeringID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list intervals query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list intervals failed: %w", err)
	}
	defer rows.Close()

	var intervals []interval.TimeInterval
	for rows.Next() {
		var (
			iv        interval.TimeInterval
			padBefore int
			padAfter  int
		)
		if err := rows.Scan(&iv.Start, &iv.End, &padBefore, &padAfter); err != nil {
			return nil, fmt.Errorf("scan interval failed: %w", err)
		}
		iv.PaddingBefore = time.Duration(padBefore) * time.Minute
		iv.PaddingAfter = time.Duration(padAfter) * time.Minute
		intervals = append(intervals, iv)
	}

	return intervals, nil
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var (
		b         Booking
		padBefore int
		padAfter  int
	)
	if err := row.Scan(
		&b.ID, &b.OfferingID, &b.OfferingName, &b.CustomerName,
		&b.StartTime, &b.EndTime, &padBefore, &padAfter,
		&b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	b.PaddingBefore = time.Duration(padBefore) * time.Minute
	b.PaddingAfter = time.Duration(padAfter) * time.Minute
	return &b, nil
}
