package sqlite

import (
	"database/sql"
)

// Schema mirrors the original tracker's tables: one row per logged date in
// work_times, and a single shifts row holding the weekly default times as
// "HH:MM - HH:MM" text, one column per weekday.
const createWorkTimesTable = `
CREATE TABLE IF NOT EXISTS work_times (
    date TEXT NOT NULL UNIQUE,
    start_time TEXT NOT NULL,
    end_time TEXT NOT NULL,
    hours_worked REAL NOT NULL,
    pay REAL NOT NULL
);
`

const createShiftsTable = `
CREATE TABLE IF NOT EXISTS shifts (
    mon TEXT,
    tue TEXT,
    wed TEXT,
    thu TEXT,
    fri TEXT,
    sat TEXT,
    sun TEXT
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(createWorkTimesTable); err != nil {
		return err
	}
	if _, err := db.Exec(createShiftsTable); err != nil {
		return err
	}
	return nil
}
