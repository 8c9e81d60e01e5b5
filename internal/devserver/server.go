// Package devserver is an in-memory stand-in for the dashboard's REST
// backend. The production deployment talks to a hosted table store; this
// server implements the same resource contract so the client can run (and be
// round-trip tested) without external services.
package devserver

import (
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"deptboard/internal/model"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	mu       sync.Mutex
	users    []model.User
	tasks    []model.Task
	comments []model.Comment
}

func New() *Server {
	return &Server{}
}

// Seed replaces the server's collections. Intended for tests and demo data.
func (s *Server) Seed(users []model.User, tasks []model.Task, comments []model.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append([]model.User(nil), users...)
	s.tasks = append([]model.Task(nil), tasks...)
	s.comments = append([]model.Comment(nil), comments...)
}

// Handler returns the echo handler implementing the REST contract:
//
//	GET    /<resource>?limit=N&sort=field&_t=ts[&filters]  -> {"data": [...]}
//	GET    /<resource>/:id                                 -> record
//	POST   /<resource>                                     -> created record
//	PUT    /<resource>/:id                                 -> updated record
//	DELETE /<resource>/:id                                 -> 204
func (s *Server) Handler() http.Handler {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.GET("/users", s.listUsers)
	e.GET("/users/:id", s.getUser)
	e.POST("/users", s.createUser)
	e.PUT("/users/:id", s.updateUser)
	e.DELETE("/users/:id", s.deleteUser)

	e.GET("/tasks", s.listTasks)
	e.GET("/tasks/:id", s.getTask)
	e.POST("/tasks", s.createTask)
	e.PUT("/tasks/:id", s.updateTask)
	e.DELETE("/tasks/:id", s.deleteTask)

	e.GET("/comments", s.listComments)
	e.POST("/comments", s.createComment)
	e.DELETE("/comments/:id", s.deleteComment)

	return e
}

func listEnvelope[T any](c echo.Context, records []T) error {
	limit := len(records)
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n < limit {
			limit = n
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"data": records[:limit]})
}

func (s *Server) listUsers(c echo.Context) error {
	s.mu.Lock()
	out := append([]model.User(nil), s.users...)
	s.mu.Unlock()
	return listEnvelope(c, out)
}

func (s *Server) getUser(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == c.Param("id") {
			return c.JSON(http.StatusOK, u)
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
}

func (s *Server) createUser(c echo.Context) error {
	var u model.User
	if err := c.Bind(&u); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	u.ID = uuid.NewString()
	s.mu.Lock()
	s.users = append(s.users, u)
	s.mu.Unlock()
	return c.JSON(http.StatusCreated, u)
}

func (s *Server) updateUser(c echo.Context) error {
	var in model.User
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == c.Param("id") {
			in.ID = u.ID
			s.users[i] = in
			return c.JSON(http.StatusOK, in)
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
}

func (s *Server) deleteUser(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == c.Param("id") {
			// No cascade: tasks keep their assignee_id even when the user
			// is gone. The client renders the dangling reference as
			// "unassigned".
			s.users = append(s.users[:i], s.users[i+1:]...)
			return c.NoContent(http.StatusNoContent)
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
}

func (s *Server) listTasks(c echo.Context) error {
	s.mu.Lock()
	out := append([]model.Task(nil), s.tasks...)
	s.mu.Unlock()

	if v := c.QueryParam("assignee_id"); v != "" {
		out = filterTasks(out, func(t model.Task) bool { return t.AssigneeID == v })
	}
	if v := c.QueryParam("status"); v != "" {
		out = filterTasks(out, func(t model.Task) bool { return string(t.Status) == v })
	}
	if c.QueryParam("sort") == "due_date" {
		// Ascending by due date; tasks without one sort last.
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i].DueDate, out[j].DueDate
			switch {
			case a == nil:
				return false
			case b == nil:
				return true
			default:
				return a.Before(*b)
			}
		})
	}
	return listEnvelope(c, out)
}

func filterTasks(tasks []model.Task, keep func(model.Task) bool) []model.Task {
	out := tasks[:0]
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s *Server) getTask(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == c.Param("id") {
			return c.JSON(http.StatusOK, t)
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"error": "task not found"})
}

func (s *Server) createTask(c echo.Context) error {
	var t model.Task
	if err := c.Bind(&t); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	t.ID = uuid.NewString()
	s.mu.Lock()
	s.tasks = append(s.tasks, t)
	s.mu.Unlock()
	return c.JSON(http.StatusCreated, t)
}

func (s *Server) updateTask(c echo.Context) error {
	var in model.Task
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID == c.Param("id") {
			in.ID = t.ID
			s.tasks[i] = in
			return c.JSON(http.StatusOK, in)
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"error": "task not found"})
}

func (s *Server) deleteTask(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID == c.Param("id") {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return c.NoContent(http.StatusNoContent)
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"error": "task not found"})
}

func (s *Server) listComments(c echo.Context) error {
	s.mu.Lock()
	out := append([]model.Comment(nil), s.comments...)
	s.mu.Unlock()

	if c.QueryParam("sort") == "-created_at" {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return listEnvelope(c, out)
}

func (s *Server) createComment(c echo.Context) error {
	var cm model.Comment
	if err := c.Bind(&cm); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	cm.ID = uuid.NewString()
	if cm.CreatedAt.IsZero() {
		cm.CreatedAt = time.Now().UTC()
	}
	s.mu.Lock()
	s.comments = append(s.comments, cm)
	s.mu.Unlock()
	return c.JSON(http.StatusCreated, cm)
}

func (s *Server) deleteComment(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cm := range s.comments {
		if cm.ID == c.Param("id") {
			s.comments = append(s.comments[:i], s.comments[i+1:]...)
			return c.NoContent(http.StatusNoContent)
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"error": "comment not found"})
}
