package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/domain/repository"
	"github.com/bnema/whiteboard/internal/logging"
)

const (
	queryGetEntry = `SELECT value_type, value FROM kv_entries WHERE namespace = ? AND key = ?`
	queryList     = `SELECT key, value_type, value FROM kv_entries
		WHERE namespace = ? AND substr(key, 1, length(?)) = ? ORDER BY key`
	queryDeleteNamespace = `DELETE FROM kv_entries WHERE namespace = ?`
	queryInsertEntry     = `INSERT INTO kv_entries (namespace, key, value_type, value, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)`
	queryNamespaces = `SELECT DISTINCT namespace FROM kv_entries
		WHERE substr(namespace, 1, length(?)) = ? ORDER BY namespace`
)

type kvStore struct {
	db *sql.DB
}

// NewKeyValueStore creates a key-value store backed by the kv_entries table.
func NewKeyValueStore(db *sql.DB) repository.KeyValueStore {
	return &kvStore{db: db}
}

// Get returns a single value.
func (s *kvStore) Get(ctx context.Context, namespace, key string) (entity.CustomValue, bool, error) {
	var typ, text string
	err := s.db.QueryRowContext(ctx, queryGetEntry, namespace, key).Scan(&typ, &text)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.CustomValue{}, false, nil
	}
	if err != nil {
		return entity.CustomValue{}, false, fmt.Errorf("get %s/%s: %w", namespace, key, err)
	}
	v, err := entity.ParseCustomValue(entity.ValueType(typ), text)
	if err != nil {
		return entity.CustomValue{}, false, fmt.Errorf("decode %s/%s: %w", namespace, key, err)
	}
	return v, true, nil
}

// List returns the keys of namespace starting with prefix. Rows that fail to
// decode are skipped with a warning.
func (s *kvStore) List(ctx context.Context, namespace, prefix string) (map[string]entity.CustomValue, error) {
	log := logging.FromContext(ctx)

	rows, err := s.db.QueryContext(ctx, queryList, namespace, prefix, prefix)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", namespace, err)
	}
	defer rows.Close()

	out := make(map[string]entity.CustomValue)
	for rows.Next() {
		var key, typ, text string
		if err := rows.Scan(&key, &typ, &text); err != nil {
			return nil, fmt.Errorf("scan %s: %w", namespace, err)
		}
		v, err := entity.ParseCustomValue(entity.ValueType(typ), text)
		if err != nil {
			log.Warn().Err(err).Str("namespace", namespace).Str("key", key).Msg("skipping corrupted entry")
			continue
		}
		out[key] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", namespace, err)
	}
	return out, nil
}

// PutAll replaces the namespace contents in one transaction.
func (s *kvStore) PutAll(ctx context.Context, namespace string, values map[string]entity.CustomValue) error {
	log := logging.FromContext(ctx)
	if namespace == "" {
		return errors.New("namespace cannot be empty")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin put transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			log.Debug().Err(rollbackErr).Msg("put rollback reported non-terminal error")
		}
	}()

	if _, err := tx.ExecContext(ctx, queryDeleteNamespace, namespace); err != nil {
		return fmt.Errorf("clear %s: %w", namespace, err)
	}

	stmt, err := tx.PrepareContext(ctx, queryInsertEntry)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for key, v := range values {
		if v.Type() == "" {
			return fmt.Errorf("put %s/%s: value has no type", namespace, key)
		}
		if _, err := stmt.ExecContext(ctx, namespace, key, string(v.Type()), v.String()); err != nil {
			return fmt.Errorf("put %s/%s: %w", namespace, key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit put transaction: %w", err)
	}

	log.Debug().Str("namespace", namespace).Int("keys", len(values)).Msg("namespace replaced")
	return nil
}

// DeleteNamespace removes every key in namespace.
func (s *kvStore) DeleteNamespace(ctx context.Context, namespace string) error {
	if _, err := s.db.ExecContext(ctx, queryDeleteNamespace, namespace); err != nil {
		return fmt.Errorf("delete %s: %w", namespace, err)
	}
	return nil
}

// Namespaces lists namespaces beginning with prefix.
func (s *kvStore) Namespaces(ctx context.Context, prefix string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, queryNamespaces, prefix, prefix)
	if err != nil {
		return nil, fmt.Errorf("list namespaces: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var ns string
		if err := rows.Scan(&ns); err != nil {
			return nil, fmt.Errorf("scan namespace: %w", err)
		}
		if strings.HasPrefix(ns, prefix) {
			out = append(out, ns)
		}
	}
	return out, rows.Err()
}
