package sqlite

import (
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

var Db *sqlx.DB

const schema = `
CREATE TABLE IF NOT EXISTS usages (
    id INTEGER PRIMARY KEY,
    user_id TEXT,
    username TEXT,
    prompt TEXT,
    negative_prompt TEXT,
    model TEXT,
    seed INTEGER,
    width INTEGER,
    height INTEGER,
    steps INTEGER,
    samples INTEGER,
    cfg_scale REAL,
    timestamp TEXT
)`

// Init opens the usage database and creates the schema on first run.
func Init(path string) (err error) {
	Db, err = sqlx.Connect("sqlite3", path)
	if err != nil {
		return
	}
	_, err = Db.Exec(schema)
	return
}

// Close closes the usage database.
func Close() {
	_ = Db.Close()
}
