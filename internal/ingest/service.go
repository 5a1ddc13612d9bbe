package ingest

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rdharshinir/student-app/internal/model"
)

// Inserter persists parsed rows.  Satisfied by *repository.SeatingRepo.
type Inserter interface {
	BulkInsert(ctx context.Context, rows []model.SeatingRecord) (int, error)
}

// Service is the upload-to-rows pipeline: it saves the upload under a
// collision-free name, parses it and persists the rows.  The saved file is
// retained on disk whether or not the ingest succeeds.
type Service struct {
	Store     Inserter
	Parser    Parser  // in-process path for CSV files
	Worker    *Worker // external path for other spreadsheet formats; nil disables
	UploadDir string
}

func NewService(store Inserter, parser Parser, worker *Worker, uploadDir string) *Service {
	return &Service{Store: store, Parser: parser, Worker: worker, UploadDir: uploadDir}
}

// Ingest processes one uploaded spreadsheet.  CSV files are parsed in
// process and bulk-inserted in a single transaction; any other extension is
// handed to the external worker, which persists rows itself and reports the
// count.  An ingest the worker or the transaction did not report as
// successful is never partially applied.
func (s *Service) Ingest(ctx context.Context, src io.Reader, filename, dateOverride string) (Summary, error) {
	path, err := s.save(src, filename)
	if err != nil {
		return Summary{}, fmt.Errorf("save upload: %w", err)
	}

	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		rows, err := s.Parser.Parse(ctx, path, dateOverride)
		if err != nil {
			return Summary{}, err
		}
		n, err := s.Store.BulkInsert(ctx, rows)
		if err != nil {
			return Summary{}, err
		}
		return Summary{Inserted: n}, nil
	}

	if s.Worker == nil {
		return Summary{}, ErrUnsupportedFormat
	}
	return s.Worker.Run(ctx, path, dateOverride)
}

// save writes the upload into UploadDir under a timestamp-prefixed name so
// repeated uploads of the same file never collide.
func (s *Service) save(src io.Reader, filename string) (string, error) {
	if err := os.MkdirAll(s.UploadDir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), filepath.Base(filename))
	path := filepath.Join(s.UploadDir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return path, nil
}
