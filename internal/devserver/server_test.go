package devserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"deptboard/internal/model"
)

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("%s %s: bad json: %v\n%s", method, path, err, rec.Body.String())
		}
	}
	return rec, out
}

func TestListLimit(t *testing.T) {
	s := New()
	s.Seed(nil, []model.Task{
		{ID: "t1", Title: "a"}, {ID: "t2", Title: "b"}, {ID: "t3", Title: "c"},
	}, nil)
	h := s.Handler()

	rec, out := doJSON(t, h, http.MethodGet, "/tasks?limit=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if data := out["data"].([]any); len(data) != 2 {
		t.Fatalf("got %d records, want 2", len(data))
	}
}

func TestTaskSortDueDateNilLast(t *testing.T) {
	later := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	sooner := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	s := New()
	s.Seed(nil, []model.Task{
		{ID: "none", Title: "no due"},
		{ID: "late", Title: "late", DueDate: &later},
		{ID: "soon", Title: "soon", DueDate: &sooner},
	}, nil)

	_, out := doJSON(t, s.Handler(), http.MethodGet, "/tasks?sort=due_date", "")
	data := out["data"].([]any)
	var ids []string
	for _, rec := range data {
		ids = append(ids, rec.(map[string]any)["id"].(string))
	}
	want := []string{"soon", "late", "none"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("order = %v, want %v", ids, want)
		}
	}
}

func TestTaskFilters(t *testing.T) {
	s := New()
	s.Seed(nil, []model.Task{
		{ID: "t1", AssigneeID: "u1", Status: model.StatusPending},
		{ID: "t2", AssigneeID: "u1", Status: model.StatusCompleted},
		{ID: "t3", AssigneeID: "u2", Status: model.StatusPending},
	}, nil)
	h := s.Handler()

	_, out := doJSON(t, h, http.MethodGet, "/tasks?assignee_id=u1&status=pending", "")
	data := out["data"].([]any)
	if len(data) != 1 || data[0].(map[string]any)["id"] != "t1" {
		t.Fatalf("filtered = %v", data)
	}
}

func TestCreateAssignsID(t *testing.T) {
	s := New()
	rec, out := doJSON(t, s.Handler(), http.MethodPost, "/users",
		`{"name":"강연석","position":"처장"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d", rec.Code)
	}
	if out["id"] == "" || out["id"] == nil {
		t.Fatal("no id assigned")
	}
}

func TestDeleteUserNoCascade(t *testing.T) {
	s := New()
	s.Seed([]model.User{{ID: "u1", Name: "강연석"}},
		[]model.Task{{ID: "t1", AssigneeID: "u1"}}, nil)
	h := s.Handler()

	rec, _ := doJSON(t, h, http.MethodDelete, "/users/u1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status %d", rec.Code)
	}

	_, out := doJSON(t, h, http.MethodGet, "/tasks", "")
	data := out["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("tasks = %v, want untouched", data)
	}
	if data[0].(map[string]any)["assignee_id"] != "u1" {
		t.Fatal("assignee_id cleared; delete must not cascade")
	}
}

func TestUnknownIDIs404(t *testing.T) {
	h := New().Handler()
	for _, path := range []string{"/users/nope", "/tasks/nope"} {
		rec, _ := doJSON(t, h, http.MethodGet, path, "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("GET %s: status %d, want 404", path, rec.Code)
		}
	}
	rec, _ := doJSON(t, h, http.MethodDelete, "/comments/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("DELETE comment: status %d, want 404", rec.Code)
	}
}

func TestCommentSortNewestFirst(t *testing.T) {
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	s := New()
	s.Seed(nil, nil, []model.Comment{
		{ID: "old", CreatedAt: base},
		{ID: "new", CreatedAt: base.Add(time.Hour)},
	})

	_, out := doJSON(t, s.Handler(), http.MethodGet, "/comments?sort=-created_at", "")
	data := out["data"].([]any)
	if data[0].(map[string]any)["id"] != "new" {
		t.Fatalf("first comment = %v, want newest", data[0])
	}
}
