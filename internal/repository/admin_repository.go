package repository

import (
	"context"
	"database/sql"
)

// AdminRepo manages the single-row 'admin' table.  The credential pair is
// injected from configuration at startup and compared as an exact plaintext
// match on every admin request; there are no sessions or tokens.
type AdminRepo struct{ DB *sql.DB }

func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{DB: db} }

// Upsert ensures the admin table holds exactly one row carrying the given
// pair.  Rows left behind by an older configured username are removed in the
// same transaction, so repeated startups always converge on one row.
func (r *AdminRepo) Upsert(ctx context.Context, username, password string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM admin WHERE username <> ?", username); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO admin (username, password) VALUES (?,?) "+
			"ON DUPLICATE KEY UPDATE password=VALUES(password)",
		username, password); err != nil {
		return err
	}
	return tx.Commit()
}

// Verify reports whether an exact username/password match exists.  A missing
// row is not an error; only storage faults surface as one.
func (r *AdminRepo) Verify(ctx context.Context, username, password string) (bool, error) {
	var u string
	err := r.DB.QueryRowContext(ctx,
		"SELECT username FROM admin WHERE username=? AND password=? LIMIT 1",
		username, password).Scan(&u)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
