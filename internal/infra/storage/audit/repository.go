package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/pkg/psqlbuilder"
)

const table = "admin_audit_log"

const (
	defaultRecentLimit = 50
	maxRecentLimit     = 500
)

const schema = `CREATE TABLE IF NOT EXISTS admin_audit_log (
	id          BIGSERIAL PRIMARY KEY,
	resource    VARCHAR(64)  NOT NULL,
	action      VARCHAR(64)  NOT NULL,
	target_id   VARCHAR(255) NOT NULL DEFAULT '',
	success     BOOLEAN      NOT NULL,
	message     TEXT         NOT NULL DEFAULT '',
	request_id  VARCHAR(64)  NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS admin_audit_log_created_at_idx ON admin_audit_log (created_at DESC);`

// Repository журнал действий администратора в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// EnsureSchema создает таблицу журнала, если её нет
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: EnsureSchema: %v", ErrExecQuery, err)
	}
	return nil
}

// Record добавляет запись в журнал
func (r *Repository) Record(ctx context.Context, entry domain.AuditEntry) error {
	query, args, err := insertQuery(entry)
	if err != nil {
		return fmt.Errorf("%w: Record - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Record - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// Recent последние записи журнала, новые первыми
// limit <= 0 заменяется значением по умолчанию, сверху ограничен maxRecentLimit
func (r *Repository) Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	limit = normalizeLimit(limit)
	query, args, err := recentQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: Recent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Recent - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]domain.AuditEntry, 0, limit)
	for rows.Next() {
		var (
			e         domain.AuditEntry
			createdAt sql.NullTime
		)
		if err := rows.Scan(&e.ID, &e.Resource, &e.Action, &e.TargetID, &e.Success, &e.Message, &e.RequestID, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: Recent: %v", ErrScanRow, err)
		}
		e.CreatedAt = createdAt.Time
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Recent - iterate rows: %v", ErrScanRow, err)
	}
	return entries, nil
}

// Prune удаляет записи старше before, возвращает число удалённых
func (r *Repository) Prune(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := pruneQuery(before)
	if err != nil {
		return 0, fmt.Errorf("%w: Prune - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: Prune - execute delete: %v", ErrExecQuery, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: Prune - rows affected: %v", ErrExecQuery, err)
	}
	return n, nil
}

func insertQuery(entry domain.AuditEntry) (string, []interface{}, error) {
	return psqlbuilder.Insert(table).
		Columns("resource", "action", "target_id", "success", "message", "request_id", "created_at").
		Values(entry.Resource, entry.Action, entry.TargetID, entry.Success, entry.Message, entry.RequestID, entry.CreatedAt).
		ToSql()
}

func normalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultRecentLimit
	case limit > maxRecentLimit:
		return maxRecentLimit
	}
	return limit
}

func recentQuery(limit int) (string, []interface{}, error) {
	limit = normalizeLimit(limit)
	return psqlbuilder.Select("id", "resource", "action", "target_id", "success", "message", "request_id", "created_at").
		From(table).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
}

func pruneQuery(before time.Time) (string, []interface{}, error) {
	return psqlbuilder.Delete(table).
		Where(squirrel.Lt{"created_at": before}).
		ToSql()
}
