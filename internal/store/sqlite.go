package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jmallari/gofer/internal/orchestrator/models"

	// Registers the pure-Go "sqlite" driver.
	_ "modernc.org/sqlite"
)

// SQLite implements Store on a local SQLite database. It is safe for
// concurrent use; SQLite serializes writers and the busy timeout covers
// contention between sessions.
type SQLite struct {
	db     *sql.DB
	logger *slog.Logger
}

// OpenSQLite opens (creating if needed) the database at path and ensures the
// schema exists.
func OpenSQLite(path string, logger *slog.Logger) (*SQLite, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &SQLite{db: db, logger: logger}
	if err := s.ensureTables(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) ensureTables(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS chat_session (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			uid        TEXT    NOT NULL UNIQUE,
			created_ts BIGINT  NOT NULL DEFAULT (strftime('%s', 'now')),
			updated_ts BIGINT  NOT NULL DEFAULT (strftime('%s', 'now'))
		)`,
		`CREATE TABLE IF NOT EXISTS chat_message (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id   INTEGER NOT NULL REFERENCES chat_session(id) ON DELETE CASCADE,
			role         TEXT    NOT NULL,
			content      TEXT    NOT NULL,
			tool_calls   TEXT    NOT NULL DEFAULT '',
			tool_call_id TEXT    NOT NULL DEFAULT '',
			tool_name    TEXT    NOT NULL DEFAULT '',
			created_ts   BIGINT  NOT NULL DEFAULT (strftime('%s', 'now'))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_chat_message_session ON chat_message(session_id)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Append implements Store. The whole batch is written in one transaction.
func (s *SQLite) Append(ctx context.Context, sessionID string, msgs []models.Message) error {
	if len(msgs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO chat_session (uid) VALUES (?) ON CONFLICT (uid) DO UPDATE SET updated_ts = strftime('%s', 'now')`,
		sessionID,
	); err != nil {
		return fmt.Errorf("failed to upsert session: %w", err)
	}

	var id int64
	if err := tx.QueryRowContext(ctx, `SELECT id FROM chat_session WHERE uid = ?`, sessionID).Scan(&id); err != nil {
		return fmt.Errorf("failed to resolve session: %w", err)
	}

	for _, msg := range msgs {
		toolCalls := ""
		if len(msg.ToolCalls) > 0 {
			raw, err := json.Marshal(msg.ToolCalls)
			if err != nil {
				return fmt.Errorf("failed to encode tool calls: %w", err)
			}
			toolCalls = string(raw)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO chat_message (session_id, role, content, tool_calls, tool_call_id, tool_name)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			id, string(msg.Role), msg.Content, toolCalls, msg.ToolCallID, msg.ToolName,
		); err != nil {
			return fmt.Errorf("failed to insert message: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	s.logger.Debug("appended messages", "session", sessionID, "count", len(msgs))
	return nil
}

// ListSessions implements Store.
func (s *SQLite) ListSessions(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT uid FROM chat_session ORDER BY updated_ts DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var uids []string
	for rows.Next() {
		var uid string
		if err := rows.Scan(&uid); err != nil {
			return nil, err
		}
		uids = append(uids, uid)
	}
	return uids, rows.Err()
}

// Read implements Store. Unknown sessions yield an empty history.
func (s *SQLite) Read(ctx context.Context, sessionID string) ([]models.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT m.role, m.content, m.tool_calls, m.tool_call_id, m.tool_name
		 FROM chat_message m
		 JOIN chat_session s ON s.id = m.session_id
		 WHERE s.uid = ?
		 ORDER BY m.id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	defer rows.Close()

	var msgs []models.Message
	for rows.Next() {
		var msg models.Message
		var role, toolCalls string
		if err := rows.Scan(&role, &msg.Content, &toolCalls, &msg.ToolCallID, &msg.ToolName); err != nil {
			return nil, err
		}
		msg.Role = models.Role(role)
		if toolCalls != "" {
			if err := json.Unmarshal([]byte(toolCalls), &msg.ToolCalls); err != nil {
				return nil, fmt.Errorf("failed to decode tool calls: %w", err)
			}
		}
		msgs = append(msgs, msg)
	}
	return msgs, rows.Err()
}
