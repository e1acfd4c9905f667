package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"work-hours-bot/internal/domain"
	"work-hours-bot/internal/model"
	"work-hours-bot/pkg/clock"
)

// Column order in the shifts table. The model is indexed by time.Weekday.
var shiftColumns = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

type SqliteScheduleRepo struct {
	db *sql.DB
}

func NewSqliteScheduleRepo(db *sql.DB) *SqliteScheduleRepo {
	return &SqliteScheduleRepo{db: db}
}

func (r *SqliteScheduleRepo) Get() (model.WeeklySchedule, error) {
	row := r.db.QueryRow(`SELECT mon, tue, wed, thu, fri, sat, sun FROM shifts LIMIT 1`)
	var raw [7]string
	err := row.Scan(&raw[0], &raw[1], &raw[2], &raw[3], &raw[4], &raw[5], &raw[6])
	if errors.Is(err, sql.ErrNoRows) {
		return model.WeeklySchedule{}, domain.ErrNotFound
	}
	if err != nil {
		return model.WeeklySchedule{}, err
	}

	var ws model.WeeklySchedule
	for i, day := range shiftColumns {
		start, end, err := clock.ParseRange(raw[i])
		if err != nil {
			return model.WeeklySchedule{}, err
		}
		ws.Days[day] = model.DayTimes{Start: start, End: end}
	}
	return ws, nil
}

// Replace swaps the whole template in one transaction so a failure cannot
// leave the table without a row.
func (r *SqliteScheduleRepo) Replace(ws model.WeeklySchedule) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM shifts`); err != nil {
		tx.Rollback()
		return err
	}
	args := make([]any, 0, 7)
	for _, day := range shiftColumns {
		d := ws.Days[day]
		args = append(args, clock.FormatRange(d.Start, d.End))
	}
	if _, err := tx.Exec(
		`INSERT INTO shifts (mon, tue, wed, thu, fri, sat, sun) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		args...,
	); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
