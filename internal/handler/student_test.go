package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/rdharshinir/student-app/internal/model"
)

func studentLookup(t *testing.T, h *StudentHandler, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.GetSeating(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestGetSeatingReturnsLatestByDate(t *testing.T) {
	h := &StudentHandler{Seating: &fakeSeating{rows: []model.SeatingRecord{
		{RegNo: "21CS001", SeatNo: "A12", Room: "103", CourseCode: "CS301", Date: "25.10.2025", Session: "FN"},
		{RegNo: "21CS001", SeatNo: "B07", Room: "201", CourseCode: "CS305", Date: "28.10.2025", Session: "FN"},
		{RegNo: "21CS002", SeatNo: "C01", Room: "103", CourseCode: "CS301", Date: "25.10.2025", Session: "FN"},
	}}}

	rec := studentLookup(t, h, "/api/student?regno=21CS001&session=FN")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got model.SeatingRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Date != "28.10.2025" || got.SeatNo != "B07" {
		t.Fatalf("expected the latest-dated row, got %+v", got)
	}
}

func TestGetSeatingNormalizesParams(t *testing.T) {
	h := &StudentHandler{Seating: &fakeSeating{rows: []model.SeatingRecord{
		{RegNo: "21CS001", SeatNo: "A12", Date: "25.10.2025", Session: "FN"},
	}}}

	// regno is trimmed and session upper-cased before the lookup.
	rec := studentLookup(t, h, "/api/student?regno=+21CS001+&session=fn")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after normalization, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGetSeatingNotFound(t *testing.T) {
	h := &StudentHandler{Seating: &fakeSeating{rows: []model.SeatingRecord{
		{RegNo: "21CS001", SeatNo: "A12", Date: "25.10.2025", Session: "FN"},
	}}}

	rec := studentLookup(t, h, "/api/student?regno=21CS001&session=AN")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for session with no rows, got %d", rec.Code)
	}
}

func TestGetSeatingMissingParams(t *testing.T) {
	h := &StudentHandler{Seating: &fakeSeating{}}

	for _, target := range []string{"/api/student", "/api/student?regno=21CS001", "/api/student?session=FN"} {
		rec := studentLookup(t, h, target)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", target, rec.Code)
		}
	}
}

func TestGetSeatingStorageError(t *testing.T) {
	h := &StudentHandler{Seating: &fakeSeating{fail: errStorage}}

	rec := studentLookup(t, h, "/api/student?regno=21CS001&session=FN")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on storage fault, got %d", rec.Code)
	}
}
