package store_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"deptboard/internal/api"
	"deptboard/internal/devserver"
	"deptboard/internal/model"
	"deptboard/internal/store"
)

func newTestBackend(t *testing.T) (*devserver.Server, *store.Snapshot) {
	t.Helper()
	srv := devserver.New()
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, store.New(api.NewClient(ts.URL))
}

func TestLoadUsersPriorityOrder(t *testing.T) {
	srv, snap := newTestBackend(t)
	srv.Seed([]model.User{
		{ID: "u5", Name: "박민수"},
		{ID: "u4", Name: "소정호"},
		{ID: "u6", Name: "김하늘"},
		{ID: "u1", Name: "강연석"},
		{ID: "u3", Name: "이혜진"},
		{ID: "u2", Name: "이진중"},
	}, nil, nil)

	if err := snap.LoadUsers(context.Background()); err != nil {
		t.Fatalf("load users: %v", err)
	}

	want := []string{"강연석", "이진중", "이혜진", "소정호", "김하늘", "박민수"}
	if len(snap.Users) != len(want) {
		t.Fatalf("got %d users, want %d", len(snap.Users), len(want))
	}
	for i, name := range want {
		if snap.Users[i].Name != name {
			t.Errorf("users[%d] = %q, want %q", i, snap.Users[i].Name, name)
		}
	}
}

func TestCustomPriorityNames(t *testing.T) {
	snap := store.New(nil)
	snap.PriorityNames = []string{"zeta"}
	snap.ReplaceUsers([]model.User{
		{ID: "a", Name: "alpha"},
		{ID: "z", Name: "zeta"},
		{ID: "b", Name: "beta"},
	})

	want := []string{"zeta", "alpha", "beta"}
	for i, name := range want {
		if snap.Users[i].Name != name {
			t.Fatalf("users[%d] = %q, want %q", i, snap.Users[i].Name, name)
		}
	}
}

func TestAssigneeNameIndex(t *testing.T) {
	snap := store.New(nil)
	snap.ReplaceUsers([]model.User{{ID: "u1", Name: "강연석"}})

	if got := snap.AssigneeName("u1"); got != "강연석" {
		t.Fatalf("AssigneeName(u1) = %q", got)
	}
	if got := snap.AssigneeName("missing"); got != "" {
		t.Fatalf("AssigneeName(missing) = %q, want empty", got)
	}
	if got := snap.AssigneeName(""); got != "" {
		t.Fatalf("AssigneeName(\"\") = %q, want empty", got)
	}

	// A reload that drops the user must also drop the index entry.
	snap.ReplaceUsers(nil)
	if got := snap.AssigneeName("u1"); got != "" {
		t.Fatalf("AssigneeName after removal = %q, want empty", got)
	}
}

func TestLoadFailureKeepsPriorState(t *testing.T) {
	srv, snap := newTestBackend(t)
	srv.Seed([]model.User{{ID: "u1", Name: "강연석"}},
		[]model.Task{{ID: "t1", Title: "report", Status: model.StatusPending}}, nil)

	ctx := context.Background()
	if err := snap.LoadAll(ctx); err != nil {
		t.Fatalf("load all: %v", err)
	}

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend down", http.StatusBadGateway)
	}))
	defer broken.Close()
	snap.Client().BaseURL = broken.URL

	if err := snap.LoadUsers(ctx); err == nil {
		t.Fatal("load users: expected error")
	}
	if len(snap.Users) != 1 || snap.Users[0].Name != "강연석" {
		t.Fatalf("users changed after failed load: %+v", snap.Users)
	}
	if got := snap.AssigneeName("u1"); got != "강연석" {
		t.Fatalf("name index changed after failed load: %q", got)
	}
	if len(snap.Tasks) != 1 {
		t.Fatalf("tasks changed after failed load: %+v", snap.Tasks)
	}
}

func TestStaffDeleteLeavesTasks(t *testing.T) {
	srv, snap := newTestBackend(t)
	due := time.Now().Add(24 * time.Hour)
	srv.Seed([]model.User{{ID: "u1", Name: "강연석"}},
		[]model.Task{{ID: "t1", Title: "report", AssigneeID: "u1", DueDate: &due, Status: model.StatusPending}}, nil)

	ctx := context.Background()
	if err := snap.LoadAll(ctx); err != nil {
		t.Fatalf("load all: %v", err)
	}

	if err := snap.Client().Users().Delete(ctx, "u1"); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if err := snap.LoadAll(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}

	if len(snap.Users) != 0 {
		t.Fatalf("got %d users, want 0", len(snap.Users))
	}
	if len(snap.Tasks) != 1 {
		t.Fatalf("got %d tasks, want 1 (no cascade)", len(snap.Tasks))
	}
	if snap.Tasks[0].AssigneeID != "u1" {
		t.Fatalf("task assignee_id = %q, want dangling u1", snap.Tasks[0].AssigneeID)
	}
	if got := snap.AssigneeName("u1"); got != "" {
		t.Fatalf("AssigneeName(u1) after delete = %q, want empty", got)
	}
}

func TestTaskByID(t *testing.T) {
	snap := store.New(nil)
	snap.Tasks = []model.Task{{ID: "t1", Title: "a"}, {ID: "t2", Title: "b"}}

	if task, ok := snap.TaskByID("t2"); !ok || task.Title != "b" {
		t.Fatalf("TaskByID(t2) = %+v, %v", task, ok)
	}
	if _, ok := snap.TaskByID("t9"); ok {
		t.Fatal("TaskByID(t9) unexpectedly found")
	}
}
