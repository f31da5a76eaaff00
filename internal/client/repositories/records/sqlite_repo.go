package records

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tailorapp898-afk/tailorsync/internal/client/models"
	"github.com/tailorapp898-afk/tailorsync/internal/common"
	"github.com/tailorapp898-afk/tailorsync/internal/dbx"
)

// SQLiteRepository stores all collections in a single records table keyed by
// (collection, id). Domain fields are kept as a JSON text column.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func checkCollection(col models.Collection) error {
	if !models.ValidCollection(col) {
		return fmt.Errorf("%w: %s", common.ErrUnknownCollection, col)
	}
	return nil
}

func encodeFields(rec *models.Record) (string, error) {
	if rec.Fields == nil {
		return "{}", nil
	}
	b, err := json.Marshal(rec.Fields)
	if err != nil {
		return "", fmt.Errorf("failed to encode fields: %w", err)
	}
	return string(b), nil
}

func encodeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func decodeTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func scanRecord(scan func(dest ...any) error) (*models.Record, error) {
	var rec models.Record
	var createdAt, updatedAt, fieldsJSON string
	var synced int

	if err := scan(&rec.ID, &createdAt, &updatedAt, &synced, &fieldsJSON); err != nil {
		return nil, err
	}

	rec.CreatedAt = decodeTime(createdAt)
	rec.UpdatedAt = decodeTime(updatedAt)
	rec.Synced = synced != 0

	if err := json.Unmarshal([]byte(fieldsJSON), &rec.Fields); err != nil {
		return nil, fmt.Errorf("failed to decode fields: %w", err)
	}

	return &rec, nil
}

func insertRecord(ctx context.Context, tx dbx.DBTX, col models.Collection, rec *models.Record) error {
	fields, err := encodeFields(rec)
	if err != nil {
		return err
	}

	query := `INSERT INTO records (collection, id, created_at, updated_at, synced, fields)
			VALUES (?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, query,
		string(col), rec.ID, encodeTime(rec.CreatedAt), encodeTime(rec.UpdatedAt), rec.Synced, fields)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Add(ctx context.Context, col models.Collection, rec *models.Record) error {
	if err := checkCollection(col); err != nil {
		return err
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var exists bool
		err := tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM records WHERE collection = ? AND id = ?)`,
			string(col), rec.ID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check record existence: %w", err)
		}
		if exists {
			return fmt.Errorf("%w: %s/%s", common.ErrDuplicateKey, col, rec.ID)
		}
		return insertRecord(ctx, tx, col, rec)
	})
}

func (r *SQLiteRepository) Get(ctx context.Context, col models.Collection, id string) (*models.Record, error) {
	if err := checkCollection(col); err != nil {
		return nil, err
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT id, created_at, updated_at, synced, fields FROM records WHERE collection = ? AND id = ?`,
		string(col), id)

	rec, err := scanRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return rec, nil
}

func (r *SQLiteRepository) List(ctx context.Context, col models.Collection) ([]models.Record, error) {
	if err := checkCollection(col); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, created_at, updated_at, synced, fields FROM records WHERE collection = ?`,
		string(col))
	if err != nil {
		return nil, fmt.Errorf("failed to select records: %w", err)
	}
	defer rows.Close()

	result := []models.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, col models.Collection, rec *models.Record) error {
	if err := checkCollection(col); err != nil {
		return err
	}

	fields, err := encodeFields(rec)
	if err != nil {
		return err
	}

	query := `INSERT INTO records (collection, id, created_at, updated_at, synced, fields)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(collection, id) DO UPDATE SET
				created_at = excluded.created_at,
				updated_at = excluded.updated_at,
				synced = excluded.synced,
				fields = excluded.fields`
	_, err = r.db.ExecContext(ctx, query,
		string(col), rec.ID, encodeTime(rec.CreatedAt), encodeTime(rec.UpdatedAt), rec.Synced, fields)
	if err != nil {
		return fmt.Errorf("failed to upsert record: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Remove(ctx context.Context, col models.Collection, id string) error {
	if err := checkCollection(col); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx,
		`DELETE FROM records WHERE collection = ? AND id = ?`, string(col), id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context, col models.Collection) error {
	if err := checkCollection(col); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE collection = ?`, string(col))
	if err != nil {
		return fmt.Errorf("failed to clear collection: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ClearAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM records`)
	if err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Replace(ctx context.Context, col models.Collection, items []models.Record) error {
	if err := checkCollection(col); err != nil {
		return err
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM records WHERE collection = ?`, string(col)); err != nil {
			return fmt.Errorf("failed to clear collection: %w", err)
		}
		for i := range items {
			if err := insertRecord(ctx, tx, col, &items[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Count(ctx context.Context, cols ...models.Collection) (int, error) {
	if len(cols) == 0 {
		return 0, nil
	}

	placeholders := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols))
	for _, col := range cols {
		if err := checkCollection(col); err != nil {
			return 0, err
		}
		placeholders = append(placeholders, "?")
		args = append(args, string(col))
	}

	query := fmt.Sprintf(`SELECT COUNT(*) FROM records WHERE collection IN (%s)`,
		strings.Join(placeholders, ", "))

	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return n, nil
}
