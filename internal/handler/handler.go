// Package handler exposes the HTTP handlers for the seating portal: the
// public student lookup plus the credential-gated admin endpoints (login,
// spreadsheet upload, listing, deletion and a debug lookup).
package handler

import (
	"context"
	"io"

	"github.com/rdharshinir/student-app/internal/ingest"
	"github.com/rdharshinir/student-app/internal/model"
	"github.com/rdharshinir/student-app/internal/queue"
)

// SeatingStore is the subset of the seating repository the handlers use.
type SeatingStore interface {
	FindLatestByRegAndSession(ctx context.Context, regNo, session string) (model.SeatingRecord, error)
	FindFirstByReg(ctx context.Context, regNo string) (model.SeatingRecord, error)
	ListAll(ctx context.Context) ([]model.SeatingRecord, error)
	DeleteByKey(ctx context.Context, regNo, date, session string) error
}

// CredentialStore verifies the single admin credential pair.
type CredentialStore interface {
	Verify(ctx context.Context, username, password string) (bool, error)
}

// Ingestor runs the upload-to-rows pipeline.
type Ingestor interface {
	Ingest(ctx context.Context, src io.Reader, filename, dateOverride string) (ingest.Summary, error)
}

// AdminHandler bundles dependencies for the credential-gated endpoints.
// Publish, when set, is invoked best-effort after a successful ingest.
type AdminHandler struct {
	Admins  CredentialStore
	Seating SeatingStore
	Ingest  Ingestor
	Publish func(ctx context.Context, ev queue.SeatingIngestedEvent) error
}

// StudentHandler serves the public seat lookup.
type StudentHandler struct {
	Seating SeatingStore
}
