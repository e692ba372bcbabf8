package db_test

import (
	"context"
	"database/sql"
	"io/ioutil"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/yoshiyuki-ishikawa/color-mood-log/pkg/calendar"
	"github.com/yoshiyuki-ishikawa/color-mood-log/pkg/db"
)

func getDB(assert *assert.Assertions) (*db.Database, string) {
	tempFile, err := ioutil.TempFile("/tmp", "test_mood_log*")
	assert.Nil(err)

	database, err := db.NewDatabase(context.Background(), tempFile.Name())
	assert.NotNil(database)
	assert.Nil(err)

	return database, tempFile.Name()
}

func fixClock(database *db.Database, year int, month time.Month, day int) {
	database.Now = func() time.Time {
		return time.Date(year, month, day, 15, 4, 5, 0, time.UTC)
	}
}

// writeRawPayload bypasses the db package to plant an arbitrary payload in
// the mood log slot.
func writeRawPayload(assert *assert.Assertions, filename, payload string) {
	conn, err := sql.Open("sqlite3", filename)
	assert.Nil(err)

	defer conn.Close()

	_, err = conn.Exec(`CREATE TABLE IF NOT EXISTS slot (name TEXT PRIMARY KEY, payload TEXT NOT NULL)`)
	assert.Nil(err)

	_, err = conn.Exec(
		`INSERT INTO slot (name, payload) VALUES ('mood_log', $1)
		     ON CONFLICT (name) DO UPDATE SET payload = excluded.payload`,
		payload,
	)
	assert.Nil(err)
}

func TestNewDatabaseBadFile(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	database, err := db.NewDatabase(context.Background(), "/alwfkjasfd/asdflkjdsal.sqlite")
	assert.Nil(database)
	assert.NotNil(err)
	assert.Equal("error running base sql: unable to open database file: no such file or directory", err.Error())
}

func TestNewDatabase(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	database, _ := getDB(assert)
	assert.Equal(0, len(database.Log))
}

func TestRecordTodayWriteThenRead(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	database, filename := getDB(assert)
	fixClock(database, 2024, time.June, 10)

	updated, err := database.RecordToday(context.Background(), calendar.ColorBlue)
	assert.Nil(err)
	assert.Equal(calendar.ColorBlue, updated[calendar.DateKey("2024-06-10")])

	err = database.Close()
	assert.Nil(err)

	reloaded, err := db.NewDatabase(context.Background(), filename)
	assert.Nil(err)
	assert.Equal(calendar.ColorBlue, reloaded.Log[calendar.DateKey("2024-06-10")])
	assert.Equal(1, len(reloaded.Log))
}

func TestRecordTodayOverwrites(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	database, filename := getDB(assert)
	fixClock(database, 2024, time.June, 10)

	_, err := database.RecordToday(context.Background(), calendar.ColorYellow)
	assert.Nil(err)

	updated, err := database.RecordToday(context.Background(), calendar.ColorRed)
	assert.Nil(err)
	assert.Equal(calendar.ColorRed, updated[calendar.DateKey("2024-06-10")])
	assert.Equal(1, len(updated))

	err = database.Close()
	assert.Nil(err)

	reloaded, err := db.NewDatabase(context.Background(), filename)
	assert.Nil(err)
	assert.Equal(calendar.ColorRed, reloaded.Log[calendar.DateKey("2024-06-10")])
	assert.Equal(1, len(reloaded.Log))
}

func TestRecordTodayReplacesExistingEntry(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	tempFile, err := ioutil.TempFile("/tmp", "test_mood_log*")
	assert.Nil(err)

	writeRawPayload(assert, tempFile.Name(), `{"2024-01-05":"green"}`)

	database, err := db.NewDatabase(context.Background(), tempFile.Name())
	assert.Nil(err)
	assert.Equal(calendar.ColorGreen, database.Log[calendar.DateKey("2024-01-05")])

	fixClock(database, 2024, time.January, 5)

	updated, err := database.RecordToday(context.Background(), calendar.ColorRed)
	assert.Nil(err)
	assert.Equal(calendar.MoodLog{"2024-01-05": calendar.ColorRed}, updated)
}

func TestRecordTodayUnknownColor(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	database, _ := getDB(assert)

	updated, err := database.RecordToday(context.Background(), calendar.Color("purple"))
	assert.Nil(updated)
	assert.NotNil(err)
	assert.Equal(`unknown color "purple"`, err.Error())
	assert.Equal(0, len(database.Log))
}

func TestRecordTodayAcrossDays(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	database, filename := getDB(assert)

	fixClock(database, 2024, time.February, 28)
	_, err := database.RecordToday(context.Background(), calendar.ColorGrey)
	assert.Nil(err)

	fixClock(database, 2024, time.February, 29)
	_, err = database.RecordToday(context.Background(), calendar.ColorGreen)
	assert.Nil(err)

	fixClock(database, 2024, time.March, 1)
	updated, err := database.RecordToday(context.Background(), calendar.ColorBlue)
	assert.Nil(err)
	assert.Equal(3, len(updated))

	err = database.Close()
	assert.Nil(err)

	// the full mapping round-trips through the persisted payload
	reloaded, err := db.NewDatabase(context.Background(), filename)
	assert.Nil(err)
	assert.Equal(calendar.MoodLog{
		"2024-02-28": calendar.ColorGrey,
		"2024-02-29": calendar.ColorGreen,
		"2024-03-01": calendar.ColorBlue,
	}, reloaded.Log)
}

func TestLoadTruncatedPayload(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	tempFile, err := ioutil.TempFile("/tmp", "test_mood_log*")
	assert.Nil(err)

	writeRawPayload(assert, tempFile.Name(), `{"2024-01-05":"gre`)

	database, err := db.NewDatabase(context.Background(), tempFile.Name())
	assert.NotNil(database)
	assert.Nil(err)
	assert.Equal(0, len(database.Log))
}

func TestLoadNonObjectPayload(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	tempFile, err := ioutil.TempFile("/tmp", "test_mood_log*")
	assert.Nil(err)

	writeRawPayload(assert, tempFile.Name(), `["2024-01-05"]`)

	database, err := db.NewDatabase(context.Background(), tempFile.Name())
	assert.NotNil(database)
	assert.Nil(err)
	assert.Equal(0, len(database.Log))
}

func TestLoadPayloadWithUnknownColor(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	tempFile, err := ioutil.TempFile("/tmp", "test_mood_log*")
	assert.Nil(err)

	// one bad entry discards the whole payload
	writeRawPayload(assert, tempFile.Name(), `{"2024-01-05":"green","2024-01-06":"purple"}`)

	database, err := db.NewDatabase(context.Background(), tempFile.Name())
	assert.NotNil(database)
	assert.Nil(err)
	assert.Equal(0, len(database.Log))
}
