package handler

import (
	"context"
	"database/sql"
	"errors"
	"io"

	"github.com/rdharshinir/student-app/internal/ingest"
	"github.com/rdharshinir/student-app/internal/model"
)

// fakeSeating holds rows in memory and answers the SeatingStore queries the
// way the SQL layer does: latest-by-date lookup, date-desc listing,
// no-op deletes for absent keys.
type fakeSeating struct {
	rows    []model.SeatingRecord
	deleted [][3]string
	fail    error
}

func (f *fakeSeating) FindLatestByRegAndSession(_ context.Context, regNo, session string) (model.SeatingRecord, error) {
	if f.fail != nil {
		return model.SeatingRecord{}, f.fail
	}
	var best *model.SeatingRecord
	for i := range f.rows {
		r := &f.rows[i]
		if r.RegNo != regNo || r.Session != session {
			continue
		}
		if best == nil || r.Date > best.Date {
			best = r
		}
	}
	if best == nil {
		return model.SeatingRecord{}, sql.ErrNoRows
	}
	return *best, nil
}

func (f *fakeSeating) FindFirstByReg(_ context.Context, regNo string) (model.SeatingRecord, error) {
	if f.fail != nil {
		return model.SeatingRecord{}, f.fail
	}
	for _, r := range f.rows {
		if r.RegNo == regNo {
			return r, nil
		}
	}
	return model.SeatingRecord{}, sql.ErrNoRows
}

func (f *fakeSeating) ListAll(context.Context) ([]model.SeatingRecord, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return f.rows, nil
}

func (f *fakeSeating) DeleteByKey(_ context.Context, regNo, date, session string) error {
	if f.fail != nil {
		return f.fail
	}
	f.deleted = append(f.deleted, [3]string{regNo, date, session})
	kept := f.rows[:0]
	for _, r := range f.rows {
		if r.RegNo == regNo && r.Date == date && r.Session == session {
			continue
		}
		kept = append(kept, r)
	}
	f.rows = kept
	return nil
}

// fakeCredentials accepts exactly one pair.
type fakeCredentials struct {
	user, pass string
	fail       error
}

func (f *fakeCredentials) Verify(_ context.Context, username, password string) (bool, error) {
	if f.fail != nil {
		return false, f.fail
	}
	return username == f.user && password == f.pass, nil
}

// fakeIngestor records what it was asked to ingest.
type fakeIngestor struct {
	filename string
	date     string
	body     []byte
	sum      ingest.Summary
	err      error
}

func (f *fakeIngestor) Ingest(_ context.Context, src io.Reader, filename, dateOverride string) (ingest.Summary, error) {
	f.filename = filename
	f.date = dateOverride
	b, err := io.ReadAll(src)
	if err != nil {
		return ingest.Summary{}, err
	}
	f.body = b
	if f.err != nil {
		return ingest.Summary{}, f.err
	}
	return f.sum, nil
}

var errStorage = errors.New("storage down")
