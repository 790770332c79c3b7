// Package store persists replay fingerprints and generated AttackPlans
// for cross-run determinism auditing (§8 property 1 "same seed replays
// bit-identical", §8 "Wave generator replay" scenario). It is grounded
// on vovakirdan-tui-arcade's internal/storage/sqlite.go: the same
// pure-Go modernc.org/sqlite driver, the same Open/migrate/Close shape,
// and the same tagged-row style for historical records — generalized
// from high scores to simulation run fingerprints.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store manages the SQLite connection backing replay/fingerprint
// persistence.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at dbPath, creating parent
// directories and running migrations as needed.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("store: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: cannot connect to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migration failed: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			game_seed INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_seed ON runs(game_seed);

		CREATE TABLE IF NOT EXISTS fingerprints (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			tick INTEGER NOT NULL,
			hash TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_fingerprints_session ON fingerprints(session_id, tick);

		CREATE TABLE IF NOT EXISTS attack_plans (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			wave_id INTEGER NOT NULL,
			record_index INTEGER NOT NULL,
			time_ms INTEGER NOT NULL,
			species_id INTEGER NOT NULL,
			index_within_species INTEGER NOT NULL,
			health INTEGER NOT NULL,
			step_ms INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_attack_plans_session_wave ON attack_plans(session_id, wave_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// NewRun starts a new recorded run for gameSeed and returns its session
// id. Session ids are storage-layer bookkeeping only; they never appear
// in the kernel's own monotonic entity ids (§3 invariant 6).
func (s *Store) NewRun(gameSeed uint64) (string, error) {
	sessionID := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO runs (session_id, game_seed) VALUES (?, ?)",
		sessionID, int64(gameSeed),
	)
	if err != nil {
		return "", fmt.Errorf("store: cannot create run: %w", err)
	}
	return sessionID, nil
}

// RecordFingerprint appends one tick's event-log hash for a session.
func (s *Store) RecordFingerprint(sessionID string, tick int64, hash string) error {
	_, err := s.db.Exec(
		"INSERT INTO fingerprints (session_id, tick, hash) VALUES (?, ?, ?)",
		sessionID, tick, hash,
	)
	if err != nil {
		return fmt.Errorf("store: cannot record fingerprint: %w", err)
	}
	return nil
}

// Fingerprint is one recorded tick hash, ascending by tick.
type Fingerprint struct {
	Tick int64
	Hash string
}

// Fingerprints returns every recorded fingerprint for a session, ascending
// by tick, the sequence two replays of the same seed must match exactly.
func (s *Store) Fingerprints(sessionID string) ([]Fingerprint, error) {
	rows, err := s.db.Query(
		"SELECT tick, hash FROM fingerprints WHERE session_id = ? ORDER BY tick ASC",
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("store: cannot query fingerprints: %w", err)
	}
	defer rows.Close()

	var out []Fingerprint
	for rows.Next() {
		var f Fingerprint
		if err := rows.Scan(&f.Tick, &f.Hash); err != nil {
			return nil, fmt.Errorf("store: cannot scan fingerprint row: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: row iteration error: %w", err)
	}
	return out, nil
}

// AttackPlanRecord mirrors simtypes.AttackPlanRecord for storage, avoiding
// an import of the simulation package from the persistence layer.
type AttackPlanRecord struct {
	TimeMs             int64
	SpeciesId          int
	IndexWithinSpecies int
	Health             int
	StepMs             int64
}

// SaveAttackPlan persists a generated wave's full spawn schedule in
// emission order, so a later replay audit can compare it record-for-record
// against a freshly generated plan for the same seed.
func (s *Store) SaveAttackPlan(sessionID string, waveID int, records []AttackPlanRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO attack_plans
		 (session_id, wave_id, record_index, time_ms, species_id, index_within_species, health, step_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("store: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.Exec(sessionID, waveID, i, r.TimeMs, r.SpeciesId, r.IndexWithinSpecies, r.Health, r.StepMs); err != nil {
			return fmt.Errorf("store: cannot insert attack plan record: %w", err)
		}
	}

	return tx.Commit()
}

// AttackPlan retrieves a previously saved wave's spawn schedule, in the
// original record_index order.
func (s *Store) AttackPlan(sessionID string, waveID int) ([]AttackPlanRecord, error) {
	rows, err := s.db.Query(
		`SELECT time_ms, species_id, index_within_species, health, step_ms
		 FROM attack_plans
		 WHERE session_id = ? AND wave_id = ?
		 ORDER BY record_index ASC`,
		sessionID, waveID,
	)
	if err != nil {
		return nil, fmt.Errorf("store: cannot query attack plan: %w", err)
	}
	defer rows.Close()

	var out []AttackPlanRecord
	for rows.Next() {
		var r AttackPlanRecord
		if err := rows.Scan(&r.TimeMs, &r.SpeciesId, &r.IndexWithinSpecies, &r.Health, &r.StepMs); err != nil {
			return nil, fmt.Errorf("store: cannot scan attack plan row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: row iteration error: %w", err)
	}
	return out, nil
}

// RunCreatedAt returns when a session was first recorded, for display in
// a replay audit report.
func (s *Store) RunCreatedAt(sessionID string) (time.Time, error) {
	var createdAt time.Time
	err := s.db.QueryRow(
		"SELECT created_at FROM runs WHERE session_id = ?", sessionID,
	).Scan(&createdAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("store: cannot query run: %w", err)
	}
	return createdAt, nil
}
