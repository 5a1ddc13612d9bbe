package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// DSN builds the MySQL connection string for the given credentials.  The
// same string is handed to the external spreadsheet worker as its store
// location argument, so it lives here rather than inline in Open.
func DSN(user, pass, host, port, name string) string {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	return fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)
}

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	db, err := sql.Open("mysql", DSN(user, pass, host, port, name))
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the seating and admin tables when they do not exist.
// The composite primary key on students allows one row per student per
// (date, session) pair; duplicates from re-uploads replace the old row.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS students (
			reg_no       VARCHAR(64)  NOT NULL,
			seat_no      VARCHAR(32)  NOT NULL DEFAULT '',
			room         VARCHAR(64)  NOT NULL DEFAULT '',
			course_code  VARCHAR(64)  NOT NULL DEFAULT '',
			course_title VARCHAR(255) NOT NULL DEFAULT '',
			` + "`date`" + `      VARCHAR(32)  NOT NULL,
			` + "`session`" + `   VARCHAR(16)  NOT NULL,
			` + "`timestamp`" + ` TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (reg_no, ` + "`date`" + `, ` + "`session`" + `)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS admin (
			username VARCHAR(64)  NOT NULL,
			password VARCHAR(128) NOT NULL,
			PRIMARY KEY (username)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
