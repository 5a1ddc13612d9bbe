package model

import "time"

// SeatingRecord assigns a student to a seat and room for one exam sitting.
// It mirrors the 'students' table.  A student may appear once per
// (date, session) pair; Date is stored as the free-form string supplied by
// the spreadsheet (e.g. "25.10.2025") and Session is a half-day slot such
// as "FN" or "AN".
//
// Fields:
//  RegNo       – student registration number.
//  SeatNo      – assigned seat label.
//  Room        – exam hall / room identifier.
//  CourseCode  – code of the course being examined.
//  CourseTitle – title of the course being examined.
//  Date        – exam date as supplied by ingest.
//  Session     – half-day session identifier.
//  Timestamp   – insert time, assigned by the database.
type SeatingRecord struct {
    RegNo       string    `json:"reg_no"`       // students.reg_no
    SeatNo      string    `json:"seat_no"`      // students.seat_no
    Room        string    `json:"room"`         // students.room
    CourseCode  string    `json:"course_code"`  // students.course_code
    CourseTitle string    `json:"course_title"` // students.course_title
    Date        string    `json:"date"`         // students.date
    Session     string    `json:"session"`      // students.session
    Timestamp   time.Time `json:"timestamp"`    // students.timestamp
}
