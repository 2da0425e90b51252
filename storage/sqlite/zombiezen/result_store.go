package zombiezen

import (
	"context"

	"github.com/revelaction/ellips/ellipsis"
	"github.com/revelaction/ellips/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// ResultStore keeps one row per classified block.
type ResultStore struct {
	pool *sqlitex.Pool
}

var _ storage.ResultRepository = (*ResultStore)(nil)

func NewResultStore(pool *sqlitex.Pool) *ResultStore {
	return &ResultStore{pool: pool}
}

// Write inserts or replaces the row of the block at position pos of file.
func (h *ResultStore) Write(file string, pos int, res ellipsis.Result) error {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	r := storage.NewRecord(file, pos, res)
	return sqlitex.Execute(conn, `
		INSERT INTO results (file, position, sent_id, class, orphans, text, updated)
		VALUES (?, ?, ?, ?, ?, ?, strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		ON CONFLICT(file, position) DO UPDATE SET
			sent_id = excluded.sent_id,
			class = excluded.class,
			orphans = excluded.orphans,
			text = excluded.text,
			updated = excluded.updated
	`, &sqlitex.ExecOptions{
		Args: []interface{}{r.File, r.Position, r.SentId, string(r.Class), r.Orphans, r.Text},
	})
}

func (h *ResultStore) List(class ellipsis.Class) ([]storage.Record, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	query := "SELECT file, position, sent_id, class, orphans, text FROM results"
	args := []interface{}{}
	if class != "" {
		query += " WHERE class = ?"
		args = append(args, string(class))
	}
	query += " ORDER BY file, position"

	var records []storage.Record
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			records = append(records, storage.Record{
				File:     stmt.ColumnText(0),
				Position: stmt.ColumnInt(1),
				SentId:   stmt.ColumnText(2),
				Class:    ellipsis.Class(stmt.ColumnText(3)),
				Orphans:  stmt.ColumnInt(4),
				Text:     stmt.ColumnText(5),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// Close closes the pool.
func (h *ResultStore) Close() error {
	return h.pool.Close()
}
