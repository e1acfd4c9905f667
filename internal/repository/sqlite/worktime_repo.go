package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"github.com/mattn/go-sqlite3"

	"work-hours-bot/internal/domain"
	"work-hours-bot/internal/model"
	"work-hours-bot/pkg/clock"
)

type SqliteWorkTimeRepo struct {
	db *sql.DB
}

func NewSqliteWorkTimeRepo(db *sql.DB) *SqliteWorkTimeRepo {
	return &SqliteWorkTimeRepo{db: db}
}

func (r *SqliteWorkTimeRepo) FindByDate(date time.Time) (model.WorkTime, error) {
	row := r.db.QueryRow(
		`SELECT date, start_time, end_time, hours_worked, pay FROM work_times WHERE date = ?`,
		date.Format("2006-01-02"),
	)
	wt, err := scanWorkTime(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.WorkTime{}, domain.ErrNotFound
	}
	return wt, err
}

func (r *SqliteWorkTimeRepo) Insert(wt model.WorkTime) error {
	_, err := r.db.Exec(
		`INSERT INTO work_times (date, start_time, end_time, hours_worked, pay) VALUES (?, ?, ?, ?, ?)`,
		wt.Date.Format("2006-01-02"),
		wt.Start.String(),
		wt.End.String(),
		wt.HoursWorked,
		wt.Pay,
	)
	var serr sqlite3.Error
	if errors.As(err, &serr) && serr.Code == sqlite3.ErrConstraint {
		return domain.ErrDuplicateDate
	}
	return err
}

func (r *SqliteWorkTimeRepo) DeleteByDate(date time.Time) error {
	res, err := r.db.Exec(`DELETE FROM work_times WHERE date = ?`, date.Format("2006-01-02"))
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SqliteWorkTimeRepo) ListRange(from, to time.Time) ([]model.WorkTime, error) {
	rows, err := r.db.Query(
		`SELECT date, start_time, end_time, hours_worked, pay FROM work_times WHERE date BETWEEN ? AND ? ORDER BY date`,
		from.Format("2006-01-02"),
		to.Format("2006-01-02"),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.WorkTime
	for rows.Next() {
		wt, err := scanWorkTime(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, wt)
	}
	return list, rows.Err()
}

func scanWorkTime(scan func(...any) error) (model.WorkTime, error) {
	var wt model.WorkTime
	var dateStr, startStr, endStr string
	if err := scan(&dateStr, &startStr, &endStr, &wt.HoursWorked, &wt.Pay); err != nil {
		return model.WorkTime{}, err
	}
	var err error
	if wt.Date, err = time.Parse("2006-01-02", dateStr); err != nil {
		return model.WorkTime{}, err
	}
	if wt.Start, err = clock.Parse(startStr); err != nil {
		return model.WorkTime{}, err
	}
	if wt.End, err = clock.Parse(endStr); err != nil {
		return model.WorkTime{}, err
	}
	return wt, nil
}
