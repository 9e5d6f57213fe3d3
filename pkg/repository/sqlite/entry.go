package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/curbside/pkg/domain/model"
	"github.com/secmon-lab/curbside/pkg/domain/types"
)

type entryRepository struct {
	db *sql.DB
}

const entryColumns = "id, date, action, approved, created_at"

func (r *entryRepository) Create(ctx context.Context, entry *model.Entry) (*model.Entry, error) {
	created := &model.Entry{
		ID:        model.NewEntryID(),
		Date:      entry.Date,
		Action:    entry.Action,
		Approved:  entry.Approved,
		CreatedAt: time.Now().UTC(),
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO entries ("+entryColumns+") VALUES (?, ?, ?, ?, ?)",
		string(created.ID), string(created.Date), string(created.Action), created.Approved, created.CreatedAt.UnixNano(),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create entry", goerr.V("id", created.ID))
	}

	return created, nil
}

func (r *entryRepository) List(ctx context.Context) ([]*model.Entry, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+entryColumns+" FROM entries ORDER BY created_at, id")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query entries")
	}
	return scanEntries(rows)
}

func (r *entryRepository) FindByDayAction(ctx context.Context, day types.Day, action types.ActionType) ([]*model.Entry, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+entryColumns+" FROM entries WHERE date = ? AND action = ? ORDER BY created_at, id",
		string(day), string(action))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query entries",
			goerr.V("date", day),
			goerr.V("action", action))
	}
	return scanEntries(rows)
}

func (r *entryRepository) SetApproved(ctx context.Context, day types.Day, action types.ActionType, approved bool) (int, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE entries SET approved = ? WHERE date = ? AND action = ?",
		approved, string(day), string(action))
	if err != nil {
		return 0, goerr.Wrap(err, "failed to update entry approval",
			goerr.V("date", day),
			goerr.V("action", action))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, goerr.Wrap(err, "failed to get affected rows")
	}

	return int(n), nil
}

func (r *entryRepository) Delete(ctx context.Context, id model.EntryID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM entries WHERE id = ?", string(id))
	if err != nil {
		return goerr.Wrap(err, "failed to delete entry", goerr.V("id", id))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return goerr.Wrap(err, "failed to get affected rows", goerr.V("id", id))
	}
	if n == 0 {
		return goerr.Wrap(ErrNotFound, "entry not found", goerr.V("id", id))
	}

	return nil
}

func scanEntries(rows *sql.Rows) ([]*model.Entry, error) {
	defer rows.Close()

	entries := make([]*model.Entry, 0)
	for rows.Next() {
		var (
			e         model.Entry
			id        string
			date      string
			action    string
			createdAt int64
		)
		if err := rows.Scan(&id, &date, &action, &e.Approved, &createdAt); err != nil {
			return nil, goerr.Wrap(err, "failed to scan entry")
		}
		e.ID = model.EntryID(id)
		e.Date = types.Day(date)
		e.Action = types.ActionType(action)
		e.CreatedAt = time.Unix(0, createdAt).UTC()
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate entries")
	}

	return entries, nil
}
