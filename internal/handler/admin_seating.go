package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type deleteReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	RegNo    string `json:"reg_no"`
	Date     string `json:"date"`
	Session  string `json:"session"`
}

// ListSeating handles GET /api/admin/seating.  Credentials ride in the query
// string, the transport the admin panel has always used for its GETs.
func (h *AdminHandler) ListSeating(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if code, msg := h.gate(ctx, c.QueryParam("username"), c.QueryParam("password")); code != 0 {
		return c.JSON(code, echo.Map{"error": msg})
	}

	rows, err := h.Seating.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, rows)
}

// DeleteSeating handles DELETE /api/admin/seating.  The full primary key is
// required; deleting a key with no matching row still succeeds.
func (h *AdminHandler) DeleteSeating(c echo.Context) error {
	var req deleteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if code, msg := h.gate(ctx, req.Username, req.Password); code != 0 {
		return c.JSON(code, echo.Map{"error": msg})
	}
	if req.RegNo == "" || req.Date == "" || req.Session == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Registration number, date and session required"})
	}

	if err := h.Seating.DeleteByKey(ctx, req.RegNo, req.Date, req.Session); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// DebugStudent handles GET /api/admin/debug/student/:regno, returning the
// first raw row stored for a registration number.  Diagnostic only.
func (h *AdminHandler) DebugStudent(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if code, msg := h.gate(ctx, c.QueryParam("username"), c.QueryParam("password")); code != 0 {
		return c.JSON(code, echo.Map{"error": msg})
	}

	rec, err := h.Seating.FindFirstByReg(ctx, c.Param("regno"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Student not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, rec)
}
