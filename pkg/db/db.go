package db

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	// use the sqlite db driver.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
	"github.com/yoshiyuki-ishikawa/color-mood-log/pkg/calendar"
)

//go:embed base.sql
var baseSQL string

// moodLogSlot names the single slot row holding the serialized mood log.
const moodLogSlot = "mood_log"

// Database manages the db connection and the in-memory mirror of the
// persisted mood log.
type Database struct {
	conn *sql.DB
	// Now supplies the wall clock used to compute today's key.
	// Tests override it with fixed dates.
	Now func() time.Time
	// Log mirrors the persisted mapping. It is loaded once at startup and
	// written through synchronously on every mutation.
	Log calendar.MoodLog
}

// NewDatabase connects to the sqlite database at the given filename,
// initializes the structure if not present, and loads the mood log into
// memory. A missing or malformed persisted payload is not an error: the log
// starts empty.
func NewDatabase(ctx context.Context, filename string) (*Database, error) {
	conn, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, fmt.Errorf("error connecting to sqlite db at %s: %w", filename, err)
	}

	database := Database{
		conn: conn,
		Now:  time.Now,
		Log:  calendar.MoodLog{},
	}

	err = database.initialize(ctx)
	if err != nil {
		return nil, err
	}

	database.loadMoodLog(ctx)

	return &database, nil
}

func (d *Database) initialize(ctx context.Context) error {
	// run idempotent setup sql to create the empty slot table if it doesn't exist
	if _, err := d.conn.ExecContext(ctx, baseSQL); err != nil {
		return fmt.Errorf("error running base sql: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (d *Database) Close() error {
	return d.conn.Close()
}

// loadMoodLog reads the persisted mapping into the in-memory mirror. Any
// failure (missing slot, unreadable payload, unknown color, bad date key)
// discards the payload wholesale and leaves the mirror empty: corruption
// must never prevent startup.
func (d *Database) loadMoodLog(ctx context.Context) {
	var payload string

	row := d.conn.QueryRowContext(ctx, `SELECT payload FROM slot WHERE name = $1`, moodLogSlot)
	if err := row.Scan(&payload); err != nil {
		if err != sql.ErrNoRows {
			log.Warn().Err(err).Msg("error reading mood log slot; starting with an empty log")
		}

		return
	}

	loaded := calendar.MoodLog{}
	if err := json.Unmarshal([]byte(payload), &loaded); err != nil {
		log.Warn().Err(err).Msg("malformed mood log payload; starting with an empty log")

		return
	}

	if !loaded.Valid() {
		log.Warn().Msg("mood log payload contains invalid entries; starting with an empty log")

		return
	}

	d.Log = loaded
}

// RecordToday sets today's color, overwriting any earlier value for today,
// persists the full mapping synchronously, and returns the updated mapping.
// On a write failure the in-memory mirror is rolled back so it never drifts
// from the persisted state.
func (d *Database) RecordToday(ctx context.Context, color calendar.Color) (calendar.MoodLog, error) {
	if !color.Valid() {
		return nil, fmt.Errorf("unknown color %q", string(color))
	}

	key := calendar.NewDateKey(d.Now())
	prev, hadPrev := d.Log[key]

	d.Log[key] = color

	if err := d.saveMoodLog(ctx); err != nil {
		if hadPrev {
			d.Log[key] = prev
		} else {
			delete(d.Log, key)
		}

		return nil, err
	}

	return d.Log, nil
}

func (d *Database) saveMoodLog(ctx context.Context) error {
	payload, err := json.Marshal(d.Log)
	if err != nil {
		return fmt.Errorf("error serializing mood log: %w", err)
	}

	_, err = d.conn.ExecContext(
		ctx,
		`INSERT INTO slot (name, payload) VALUES ($1, $2)
		     ON CONFLICT (name) DO UPDATE SET payload = excluded.payload`,
		moodLogSlot, string(payload),
	)
	if err != nil {
		return fmt.Errorf("error persisting mood log: %w", err)
	}

	return nil
}
