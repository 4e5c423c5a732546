package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// PostgresSource reads daily records from a table with the same columns as
// the CSV file. Database only names the source in its key.
type PostgresSource struct {
	DB       *sql.DB
	Database string
	Table    string
}

// OpenPostgres opens and pings a connection, retrying for a short while so a
// database that is still starting up is tolerated.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 5; i++ {
		if err = db.PingContext(ctx); err == nil {
			return db, nil
		}
		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(time.Second):
		}
	}
	db.Close()
	return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
}

func (s PostgresSource) Key() string {
	if s.Database == "" {
		return "postgres:" + s.Table
	}
	return "postgres:" + s.Database + "." + s.Table
}

func versionQuery(table string) string {
	return fmt.Sprintf("SELECT count(*), coalesce(max(%s)::text, ''), coalesce(sum(%s), 0)::text FROM %s",
		pq.QuoteIdentifier(ColDate), pq.QuoteIdentifier(ColCount), pq.QuoteIdentifier(table))
}

// Version combines the row count, the latest date and the rental total, so
// appended rows and edited counts both change it. An edit that leaves all
// three unchanged is not seen until the cache is invalidated.
func (s PostgresSource) Version(ctx context.Context) (string, error) {
	var (
		n     int64
		last  string
		total string
	)
	if err := s.DB.QueryRowContext(ctx, versionQuery(s.Table)).Scan(&n, &last, &total); err != nil {
		return "", loadErr(s.Key(), "version", err)
	}
	return fmt.Sprintf("%d-%s-%s", n, last, total), nil
}

func (s PostgresSource) Load(ctx context.Context) (*Dataset, error) {
	q := fmt.Sprintf("SELECT * FROM %s ORDER BY %s",
		pq.QuoteIdentifier(s.Table), pq.QuoteIdentifier(ColDate))
	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, loadErr(s.Key(), "query", err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, loadErr(s.Key(), "columns", err)
	}

	var out [][]string
	for rows.Next() {
		vals := make([]sql.NullString, len(header))
		ptrs := make([]any, len(header))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, loadErr(s.Key(), "scan", err)
		}
		row := make([]string, len(header))
		for i, v := range vals {
			if v.Valid {
				row[i] = v.String
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, loadErr(s.Key(), "rows", err)
	}
	return FromRecords(s.Key(), header, out)
}
