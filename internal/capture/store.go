package capture

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/fenwick-labs/stanwire/internal/writerpb"
)

// Store persists captured writer messages to SQLite. Each Store instance
// owns one run row; every frame it consumes is attributed to that run.
type Store struct {
	db    *sql.DB
	runID string
}

var _ Sink = (*Store)(nil)

// OpenStore opens (creating if needed) the capture database at path and
// registers a new run.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open capture database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT PRIMARY KEY,
			started_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS frames (
			frame_id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			topic TEXT NOT NULL,
			received_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(run_id) REFERENCES runs(run_id)
		);
		CREATE TABLE IF NOT EXISTS draws (
			frame_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			name TEXT,
			value DOUBLE NOT NULL,
			FOREIGN KEY(frame_id) REFERENCES frames(frame_id)
		);
		CREATE TABLE IF NOT EXISTS messages (
			frame_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			body BLOB NOT NULL,
			FOREIGN KEY(frame_id) REFERENCES frames(frame_id)
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create capture schema: %w", err)
	}

	runID := uuid.NewString()
	if _, err := db.Exec("INSERT INTO runs (run_id) VALUES (?)", runID); err != nil {
		db.Close()
		return nil, fmt.Errorf("register run: %w", err)
	}

	return &Store{db: db, runID: runID}, nil
}

// RunID returns the identifier of the run this store writes to.
func (s *Store) RunID() string {
	return s.runID
}

// Consume implements Sink: one frame row plus one draws or messages row per
// feature element, inserted in a single transaction.
func (s *Store) Consume(ctx context.Context, msg *writerpb.WriterMessage) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin frame transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO frames (run_id, topic) VALUES (?, ?)",
		s.runID, msg.GetTopic().String())
	if err != nil {
		return fmt.Errorf("insert frame: %w", err)
	}
	frameID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("frame id: %w", err)
	}

	for _, feature := range msg.GetFeature() {
		var name interface{}
		if feature.Name != nil {
			name = feature.GetName()
		}
		switch payload := feature.GetPayload().(type) {
		case *writerpb.WriterMessage_Feature_DoubleList:
			for i, v := range payload.DoubleList.GetValue() {
				_, err := tx.ExecContext(ctx,
					"INSERT INTO draws (frame_id, position, name, value) VALUES (?, ?, ?, ?)",
					frameID, i, name, v)
				if err != nil {
					return fmt.Errorf("insert draw value: %w", err)
				}
			}
		case *writerpb.WriterMessage_Feature_BytesList:
			for i, b := range payload.BytesList.GetValue() {
				_, err := tx.ExecContext(ctx,
					"INSERT INTO messages (frame_id, position, body) VALUES (?, ?, ?)",
					frameID, i, b)
				if err != nil {
					return fmt.Errorf("insert message body: %w", err)
				}
			}
		default:
			return fmt.Errorf("feature %q has no payload", feature.GetName())
		}
	}

	return tx.Commit()
}

// FrameCount returns how many frames with the given topic the run has
// captured so far.
func (s *Store) FrameCount(ctx context.Context, topic writerpb.WriterMessage_Topic) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM frames WHERE run_id = ? AND topic = ?",
		s.runID, topic.String()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count frames: %w", err)
	}
	return n, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
