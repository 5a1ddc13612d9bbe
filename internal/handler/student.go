package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// GetSeating handles GET /api/student?regno=&session=.  It is the one public
// endpoint: no credentials, no tokens.  When a student has rows across
// several exam dates for the same session, the row with the greatest date
// wins.
func (h *StudentHandler) GetSeating(c echo.Context) error {
	regNo := strings.TrimSpace(c.QueryParam("regno"))
	session := strings.ToUpper(strings.TrimSpace(c.QueryParam("session")))
	if regNo == "" || session == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Registration number and session required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rec, err := h.Seating.FindLatestByRegAndSession(ctx, regNo, session)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "No seating arrangement found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, rec)
}
