// Package store holds the client-side snapshot of server data.
//
// The snapshot is the single owner of the users/tasks/comments collections.
// Loads replace a collection wholesale from the matching list endpoint; there
// is no incremental merge and no optimistic local edit, so the snapshot always
// reflects the last successful server response. Renderers treat it as
// read-only.
//
// The snapshot is not internally synchronized: reads and writes must stay on
// a single goroutine. The TUI fetches on command goroutines but applies every
// replacement on its event loop.
package store

import (
	"context"
	"errors"
	"sort"
	"strings"

	"deptboard/internal/api"
	"deptboard/internal/model"
)

// DefaultPriorityNames pins specific staff members to the front of the user
// list, in this order, ahead of the alphabetical remainder.
var DefaultPriorityNames = []string{"강연석", "이진중", "이혜진", "소정호"}

type Snapshot struct {
	Users    []model.User
	Tasks    []model.Task
	Comments []model.Comment

	// PriorityNames overrides DefaultPriorityNames when non-nil.
	PriorityNames []string

	client *api.Client
	// names is the derived id->name index. Rebuilt on every user load,
	// never mutated independently.
	names map[string]string
}

func New(client *api.Client) *Snapshot {
	return &Snapshot{client: client, names: map[string]string{}}
}

// LoadUsers replaces the user collection, re-sorts it, and rebuilds the name
// index. On error the prior users (and index) are left untouched.
func (s *Snapshot) LoadUsers(ctx context.Context) error {
	users, err := s.client.Users().List(ctx, api.ListOptions{})
	if err != nil {
		return err
	}
	s.ReplaceUsers(users)
	return nil
}

// ReplaceUsers installs a user collection directly, applying the same sorting
// and index rebuild as LoadUsers. Useful for offline snapshots.
func (s *Snapshot) ReplaceUsers(users []model.User) {
	s.sortUsers(users)
	s.Users = users
	s.rebuildNames()
}

// LoadTasks replaces the task collection. On error the prior tasks are left
// untouched.
func (s *Snapshot) LoadTasks(ctx context.Context) error {
	tasks, err := s.client.Tasks().List(ctx, api.ListOptions{})
	if err != nil {
		return err
	}
	s.ReplaceTasks(tasks)
	return nil
}

// LoadComments replaces the comment collection, keeping the server's
// newest-first order. On error the prior comments are left untouched.
func (s *Snapshot) LoadComments(ctx context.Context) error {
	comments, err := s.client.Comments().List(ctx, api.ListOptions{})
	if err != nil {
		return err
	}
	s.ReplaceComments(comments)
	return nil
}

// ReplaceTasks installs a task collection wholesale.
func (s *Snapshot) ReplaceTasks(tasks []model.Task) {
	s.Tasks = tasks
}

// ReplaceComments installs a comment collection wholesale.
func (s *Snapshot) ReplaceComments(comments []model.Comment) {
	s.Comments = comments
}

// LoadAll runs the three loads sequentially (users, tasks, comments). Loads
// are independent; a failure of one does not stop the others, and each failed
// resource keeps its prior state. The joined error reports every failure.
func (s *Snapshot) LoadAll(ctx context.Context) error {
	return errors.Join(
		s.LoadUsers(ctx),
		s.LoadTasks(ctx),
		s.LoadComments(ctx),
	)
}

func (s *Snapshot) priorityNames() []string {
	if s.PriorityNames != nil {
		return s.PriorityNames
	}
	return DefaultPriorityNames
}

// sortUsers orders the priority names first (in their given order), then the
// remainder alphabetically by name.
func (s *Snapshot) sortUsers(users []model.User) {
	rank := map[string]int{}
	for i, name := range s.priorityNames() {
		rank[name] = i
	}
	sort.SliceStable(users, func(i, j int) bool {
		ri, iOK := rank[users[i].Name]
		rj, jOK := rank[users[j].Name]
		switch {
		case iOK && jOK:
			return ri < rj
		case iOK:
			return true
		case jOK:
			return false
		default:
			return strings.Compare(users[i].Name, users[j].Name) < 0
		}
	})
}

func (s *Snapshot) rebuildNames() {
	names := make(map[string]string, len(s.Users))
	for _, u := range s.Users {
		names[u.ID] = u.Name
	}
	s.names = names
}

// AssigneeName resolves an assignee id to a display name. Unknown or empty
// ids return "" so view code can substitute its unassigned label; a deleted
// user is indistinguishable from never-assigned, by nature of the soft
// reference.
func (s *Snapshot) AssigneeName(id string) string {
	return s.names[id]
}

func (s *Snapshot) TaskByID(id string) (model.Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

func (s *Snapshot) UserByID(id string) (model.User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// Client exposes the API client so controllers can write through it and then
// reload the owning collection. Controllers never mutate the snapshot
// directly.
func (s *Snapshot) Client() *api.Client {
	return s.client
}
