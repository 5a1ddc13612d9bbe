package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// ----- DTOs -----

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// gate verifies a raw credential pair and reports the HTTP status and
// message to reject the request with.  A zero status means authorized.
// Missing fields are malformed (400), a mismatch is unauthorized (401) and a
// storage fault maps to 500.  Verification runs on the same request context
// as the action that follows it, inside the same handler call.
func (h *AdminHandler) gate(ctx context.Context, username, password string) (int, string) {
	if username == "" || password == "" {
		return http.StatusBadRequest, "Admin credentials required"
	}
	ok, err := h.Admins.Verify(ctx, username, password)
	if err != nil {
		return http.StatusInternalServerError, "credential check failed"
	}
	if !ok {
		return http.StatusUnauthorized, "Invalid credentials"
	}
	return 0, ""
}

// Login handles POST /api/admin/login.  It exists only so the frontend can
// validate the pair once before holding it for the admin session; every
// later admin request re-sends the same raw credentials.
func (h *AdminHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Username and password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if code, msg := h.gate(ctx, req.Username, req.Password); code != 0 {
		return c.JSON(code, echo.Map{"error": msg})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
