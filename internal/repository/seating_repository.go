package repository

import (
	"context"
	"database/sql"

	"github.com/rdharshinir/student-app/internal/model"
)

const seatingCols = "reg_no, seat_no, room, course_code, course_title, `date`, `session`, `timestamp`"

// SeatingRepo provides access to the 'students' table.
type SeatingRepo struct{ DB *sql.DB }

func NewSeatingRepo(db *sql.DB) *SeatingRepo { return &SeatingRepo{DB: db} }

// FindLatestByRegAndSession returns the assignment for the given student and
// session with the greatest date.  Dates are free-form strings, so "greatest"
// means whatever ORDER BY date DESC yields; callers rely on sql.ErrNoRows to
// distinguish an absent assignment.
func (r *SeatingRepo) FindLatestByRegAndSession(ctx context.Context, regNo, session string) (model.SeatingRecord, error) {
	var rec model.SeatingRecord
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+seatingCols+" FROM students WHERE reg_no=? AND `session`=? ORDER BY `date` DESC LIMIT 1",
		regNo, session).
		Scan(&rec.RegNo, &rec.SeatNo, &rec.Room, &rec.CourseCode, &rec.CourseTitle,
			&rec.Date, &rec.Session, &rec.Timestamp)
	return rec, err
}

// FindFirstByReg returns the first stored row for a registration number
// regardless of date or session.  Diagnostic use only.
func (r *SeatingRepo) FindFirstByReg(ctx context.Context, regNo string) (model.SeatingRecord, error) {
	var rec model.SeatingRecord
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+seatingCols+" FROM students WHERE reg_no=? LIMIT 1",
		regNo).
		Scan(&rec.RegNo, &rec.SeatNo, &rec.Room, &rec.CourseCode, &rec.CourseTitle,
			&rec.Date, &rec.Session, &rec.Timestamp)
	return rec, err
}

// ListAll returns every seating record, newest exam dates first and sessions
// in ascending order within a date.
func (r *SeatingRepo) ListAll(ctx context.Context) ([]model.SeatingRecord, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+seatingCols+" FROM students ORDER BY `date` DESC, `session` ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.SeatingRecord, 0)
	for rows.Next() {
		var rec model.SeatingRecord
		if err := rows.Scan(&rec.RegNo, &rec.SeatNo, &rec.Room, &rec.CourseCode,
			&rec.CourseTitle, &rec.Date, &rec.Session, &rec.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// DeleteByKey removes the row identified by the full primary key.  Deleting
// a key that does not exist is not an error.
func (r *SeatingRepo) DeleteByKey(ctx context.Context, regNo, date, session string) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM students WHERE reg_no=? AND `date`=? AND `session`=?",
		regNo, date, session)
	return err
}

// BulkInsert persists all rows inside one transaction and returns how many
// were written.  A duplicate (reg_no, date, session) key replaces the
// existing row; any other failure rolls the whole batch back so an ingest is
// never partially applied.
func (r *SeatingRepo) BulkInsert(ctx context.Context, rows []model.SeatingRecord) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO students (reg_no, seat_no, room, course_code, course_title, `date`, `session`) "+
			"VALUES (?,?,?,?,?,?,?) "+
			"ON DUPLICATE KEY UPDATE seat_no=VALUES(seat_no), room=VALUES(room), "+
			"course_code=VALUES(course_code), course_title=VALUES(course_title)")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, rec := range rows {
		if _, err := stmt.ExecContext(ctx, rec.RegNo, rec.SeatNo, rec.Room,
			rec.CourseCode, rec.CourseTitle, rec.Date, rec.Session); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(rows), nil
}
