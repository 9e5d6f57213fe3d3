package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/curbside/pkg/domain/model"
)

type counterRepository struct {
	db *sql.DB
}

const counterColumns = "id, date, count, created_at, updated_at"

func (r *counterRepository) Create(ctx context.Context, counter *model.DailyCounter) (*model.DailyCounter, error) {
	now := time.Now().UTC()
	created := &model.DailyCounter{
		ID:        model.NewCounterID(),
		Date:      counter.Date.UTC(),
		Count:     counter.Count,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO daily_counters ("+counterColumns+") VALUES (?, ?, ?, ?, ?)",
		string(created.ID), created.Date.UnixMicro(), created.Count, now.UnixNano(), now.UnixNano(),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create counter", goerr.V("id", created.ID))
	}

	return created, nil
}

func (r *counterRepository) Update(ctx context.Context, counter *model.DailyCounter) (*model.DailyCounter, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		"UPDATE daily_counters SET count = ?, updated_at = ? WHERE id = ?",
		counter.Count, now.UnixNano(), string(counter.ID))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update counter", goerr.V("id", counter.ID))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get affected rows", goerr.V("id", counter.ID))
	}
	if n == 0 {
		return nil, goerr.Wrap(ErrNotFound, "counter not found", goerr.V("id", counter.ID))
	}

	row := r.db.QueryRowContext(ctx,
		"SELECT "+counterColumns+" FROM daily_counters WHERE id = ?", string(counter.ID))
	return scanCounter(row)
}

func (r *counterRepository) Delete(ctx context.Context, id model.CounterID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM daily_counters WHERE id = ?", string(id))
	if err != nil {
		return goerr.Wrap(err, "failed to delete counter", goerr.V("id", id))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return goerr.Wrap(err, "failed to get affected rows", goerr.V("id", id))
	}
	if n == 0 {
		return goerr.Wrap(ErrNotFound, "counter not found", goerr.V("id", id))
	}

	return nil
}

func (r *counterRepository) FindInRange(ctx context.Context, from, to time.Time) (*model.DailyCounter, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+counterColumns+" FROM daily_counters WHERE date >= ? AND date < ? ORDER BY date LIMIT 1",
		from.UnixMicro(), to.UnixMicro())

	c, err := scanCounter(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to find counter in range",
			goerr.V("from", from),
			goerr.V("to", to))
	}

	return c, nil
}

func (r *counterRepository) List(ctx context.Context) ([]*model.DailyCounter, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+counterColumns+" FROM daily_counters ORDER BY date")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query counters")
	}
	defer rows.Close()

	counters := make([]*model.DailyCounter, 0)
	for rows.Next() {
		c, err := scanCounter(rows)
		if err != nil {
			return nil, err
		}
		counters = append(counters, c)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate counters")
	}

	return counters, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCounter(row rowScanner) (*model.DailyCounter, error) {
	var (
		id                         string
		date, createdAt, updatedAt int64
		count                      int
	)
	if err := row.Scan(&id, &date, &count, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, goerr.Wrap(err, "failed to scan counter")
	}

	return &model.DailyCounter{
		ID:        model.CounterID(id),
		Date:      time.UnixMicro(date).UTC(),
		Count:     count,
		CreatedAt: time.Unix(0, createdAt).UTC(),
		UpdatedAt: time.Unix(0, updatedAt).UTC(),
	}, nil
}
