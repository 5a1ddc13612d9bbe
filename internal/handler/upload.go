package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rdharshinir/student-app/internal/queue"
)

// Upload handles POST /api/admin/upload: a multipart form with the
// spreadsheet under "file", the raw admin credentials and an optional date
// that overrides whatever dates the rows carry.  The credential check runs
// under a bounded context; the ingest itself runs under the plain request
// context because the external worker has no deadline of its own.
func (h *AdminHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No file uploaded"})
	}
	username := c.FormValue("username")
	password := c.FormValue("password")
	date := c.FormValue("date")

	gateCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if code, msg := h.gate(gateCtx, username, password); code != 0 {
		return c.JSON(code, echo.Map{"error": msg})
	}

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "read upload failed"})
	}
	defer src.Close()

	sum, err := h.Ingest.Ingest(c.Request().Context(), src, fh.Filename, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":   "Failed to process spreadsheet",
			"details": err.Error(),
		})
	}

	if h.Publish != nil {
		// Best effort: a broker outage must not fail an ingest that already
		// committed.  The publisher logs its own errors.
		_ = h.Publish(c.Request().Context(), queue.SeatingIngestedEvent{
			FileName:     fh.Filename,
			Inserted:     sum.Inserted,
			DateOverride: date,
			IngestedAt:   time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "inserted": sum.Inserted})
}
