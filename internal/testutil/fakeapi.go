package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v4"

	"github.com/thenoetrevino/kanbo/internal/api"
	"github.com/thenoetrevino/kanbo/internal/models"
)

const fakeSigningKey = "kanbo-test-signing-key"

// RecordedRequest is one request the fake API received
type RecordedRequest struct {
	Method string
	Path   string
	Auth   string
}

type failure struct {
	status  int
	message string
}

type fakeUser struct {
	models.UserResponse
	password string
}

// FakeAPI is an in-memory implementation of the Kanban REST API for tests.
// Every route except /signin and /signup requires a token it issued.
type FakeAPI struct {
	t      *testing.T
	server *httptest.Server

	mu       sync.Mutex
	seq      int
	users    map[string]*fakeUser
	boards   map[string]*models.Board
	columns  map[string][]*models.Column // by board ID
	tasks    map[string][]*models.Task   // by column ID
	failures map[string]failure          // by "METHOD path"
	delays   map[string]time.Duration
	requests []RecordedRequest
}

// NewFakeAPI starts a fake API server that is closed when the test ends
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()

	f := &FakeAPI{
		t:        t,
		users:    map[string]*fakeUser{},
		boards:   map[string]*models.Board{},
		columns:  map[string][]*models.Column{},
		tasks:    map[string][]*models.Task{},
		failures: map[string]failure{},
		delays:   map[string]time.Duration{},
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(f.record)
	r.Use(f.injectFailures)

	r.Post("/signin", f.signIn)
	r.Post("/signup", f.signUp)

	r.Group(func(r chi.Router) {
		r.Use(f.requireToken)

		r.Get("/users", f.listUsers)
		r.Get("/users/{userID}", f.getUser)
		r.Put("/users/{userID}", f.updateUser)
		r.Delete("/users/{userID}", f.deleteUser)

		r.Get("/boards", f.listBoards)
		r.Post("/boards", f.createBoard)
		r.Get("/boards/{boardID}", f.getBoard)
		r.Put("/boards/{boardID}", f.updateBoard)
		r.Delete("/boards/{boardID}", f.deleteBoard)

		r.Get("/boards/{boardID}/columns", f.listColumns)
		r.Post("/boards/{boardID}/columns", f.createColumn)
		r.Get("/boards/{boardID}/columns/{columnID}", f.getColumn)
		r.Put("/boards/{boardID}/columns/{columnID}", f.updateColumn)
		r.Delete("/boards/{boardID}/columns/{columnID}", f.deleteColumn)

		r.Get("/boards/{boardID}/columns/{columnID}/tasks", f.listTasks)
		r.Post("/boards/{boardID}/columns/{columnID}/tasks", f.createTask)
		r.Get("/boards/{boardID}/columns/{columnID}/tasks/{taskID}", f.getTask)
		r.Put("/boards/{boardID}/columns/{columnID}/tasks/{taskID}", f.updateTask)
		r.Delete("/boards/{boardID}/columns/{columnID}/tasks/{taskID}", f.deleteTask)
	})

	f.server = httptest.NewServer(r)
	t.Cleanup(f.server.Close)
	return f
}

// URL returns the base URL of the fake API
func (f *FakeAPI) URL() string {
	return f.server.URL
}

// ============================================================================
// Seeding and inspection
// ============================================================================

func (f *FakeAPI) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s%d", prefix, f.seq)
}

// SeedUser registers an account and returns it
func (f *FakeAPI) SeedUser(name, login, password string) models.UserResponse {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := &fakeUser{
		UserResponse: models.UserResponse{ID: f.nextID("u"), Name: name, Login: login},
		password:     password,
	}
	f.users[u.ID] = u
	return u.UserResponse
}

// SeedBoard creates a board and returns it
func (f *FakeAPI) SeedBoard(title, description string) models.Board {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := &models.Board{ID: f.nextID("b"), Title: title, Description: description}
	f.boards[b.ID] = b
	return *b
}

// SeedColumn appends a column to a board and returns it
func (f *FakeAPI) SeedColumn(boardID, title string) models.Column {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := &models.Column{
		ID:      f.nextID("c"),
		Title:   title,
		Order:   len(f.columns[boardID]) + 1,
		BoardID: boardID,
	}
	f.columns[boardID] = append(f.columns[boardID], c)
	return *c
}

// SeedTask appends a task to a column and returns it
func (f *FakeAPI) SeedTask(boardID, columnID, title, description string) models.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	task := &models.Task{
		ID:          f.nextID("t"),
		Title:       title,
		Order:       len(f.tasks[columnID]) + 1,
		Description: description,
		BoardID:     boardID,
		ColumnID:    columnID,
	}
	f.tasks[columnID] = append(f.tasks[columnID], task)
	return *task
}

// TokenFor issues a token for the given account the same way /signin does
func (f *FakeAPI) TokenFor(userID, login string) string {
	f.t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"login":  login,
		"iat":    time.Now().Unix(),
	})
	signed, err := tok.SignedString([]byte(fakeSigningKey))
	if err != nil {
		f.t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

// FailNext makes the next request for method+path answer with status.
// An empty message produces an empty body, so clients must fall back to their own text.
func (f *FakeAPI) FailNext(method, path string, status int, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[method+" "+path] = failure{status: status, message: message}
}

// Delay holds every request for method+path for d before answering
func (f *FakeAPI) Delay(method, path string, d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delays[method+" "+path] = d
}

// Requests returns a copy of the requests received so far
func (f *FakeAPI) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]RecordedRequest(nil), f.requests...)
}

// CountRequests returns how many requests matched method and path
func (f *FakeAPI) CountRequests(method, path string) int {
	n := 0
	for _, r := range f.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// Tasks returns the tasks currently stored for a column
func (f *FakeAPI) Tasks(columnID string) []models.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Task, 0, len(f.tasks[columnID]))
	for _, task := range f.tasks[columnID] {
		out = append(out, *task)
	}
	return out
}

// ============================================================================
// Middleware
// ============================================================================

func (f *FakeAPI) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, RecordedRequest{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			Auth:   r.Header.Get("Authorization"),
		})
		delay := f.delays[r.Method+" "+r.URL.EscapedPath()]
		f.mu.Unlock()

		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (f *FakeAPI) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.EscapedPath()
		f.mu.Lock()
		fail, ok := f.failures[key]
		if ok {
			delete(f.failures, key)
		}
		f.mu.Unlock()

		if ok {
			writeError(w, fail.status, fail.message)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *FakeAPI) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		_, err := jwt.Parse(raw, func(*jwt.Token) (any, error) {
			return []byte(fakeSigningKey), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, code int, message string) {
	if message == "" {
		w.WriteHeader(code)
		return
	}
	writeJSON(w, code, models.ErrorBody{StatusCode: code, Message: models.ErrorMessage(message)})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Bad request")
		return false
	}
	return true
}

// ============================================================================
// Auth and users
// ============================================================================

func (f *FakeAPI) signIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if !decode(w, r, &req) {
		return
	}

	f.mu.Lock()
	var match *fakeUser
	for _, u := range f.users {
		if u.Login == req.Login && u.password == req.Password {
			match = u
			break
		}
	}
	f.mu.Unlock()

	if match == nil {
		writeError(w, http.StatusForbidden, "User was not founded!")
		return
	}
	writeJSON(w, http.StatusCreated, models.SignInResponse{Token: f.TokenFor(match.ID, match.Login)})
}

func (f *FakeAPI) signUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Name == "" || req.Login == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "name, login and password are required")
		return
	}

	f.mu.Lock()
	for _, u := range f.users {
		if u.Login == req.Login {
			f.mu.Unlock()
			writeError(w, http.StatusConflict, "User login already exists!")
			return
		}
	}
	f.mu.Unlock()

	writeJSON(w, http.StatusCreated, f.SeedUser(req.Name, req.Login, req.Password))
}

func (f *FakeAPI) listUsers(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	users := make([]models.UserResponse, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, u.UserResponse)
	}
	f.mu.Unlock()

	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	writeJSON(w, http.StatusOK, users)
}

func (f *FakeAPI) getUser(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	u, ok := f.users[chi.URLParam(r, "userID")]
	f.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "User was not founded!")
		return
	}
	writeJSON(w, http.StatusOK, u.UserResponse)
}

func (f *FakeAPI) updateUser(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if !decode(w, r, &req) {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[chi.URLParam(r, "userID")]
	if !ok {
		writeError(w, http.StatusNotFound, "User was not founded!")
		return
	}
	u.Name, u.Login, u.password = req.Name, req.Login, req.Password
	writeJSON(w, http.StatusOK, u.UserResponse)
}

func (f *FakeAPI) deleteUser(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := chi.URLParam(r, "userID")
	if _, ok := f.users[id]; !ok {
		writeError(w, http.StatusNotFound, "User was not founded!")
		return
	}
	delete(f.users, id)
	w.WriteHeader(http.StatusNoContent)
}

// ============================================================================
// Boards
// ============================================================================

func (f *FakeAPI) listBoards(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	boards := make([]models.Board, 0, len(f.boards))
	for _, b := range f.boards {
		boards = append(boards, *b)
	}
	f.mu.Unlock()

	sort.Slice(boards, func(i, j int) bool { return boards[i].ID < boards[j].ID })
	writeJSON(w, http.StatusOK, boards)
}

func (f *FakeAPI) createBoard(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBoardRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title should not be empty")
		return
	}
	writeJSON(w, http.StatusCreated, f.SeedBoard(req.Title, req.Description))
}

func (f *FakeAPI) getBoard(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.boards[chi.URLParam(r, "boardID")]
	if !ok {
		writeError(w, http.StatusNotFound, "Board was not founded!")
		return
	}
	out := *b
	out.Columns = nil
	for _, c := range f.columns[b.ID] {
		col := *c
		for _, task := range f.tasks[c.ID] {
			col.Tasks = append(col.Tasks, *task)
		}
		out.Columns = append(out.Columns, col)
	}
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeAPI) updateBoard(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateBoardRequest
	if !decode(w, r, &req) {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.boards[chi.URLParam(r, "boardID")]
	if !ok {
		writeError(w, http.StatusNotFound, "Board was not founded!")
		return
	}
	b.Title, b.Description = req.Title, req.Description
	writeJSON(w, http.StatusOK, *b)
}

func (f *FakeAPI) deleteBoard(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := chi.URLParam(r, "boardID")
	if _, ok := f.boards[id]; !ok {
		writeError(w, http.StatusNotFound, "Board was not founded!")
		return
	}
	for _, c := range f.columns[id] {
		delete(f.tasks, c.ID)
	}
	delete(f.columns, id)
	delete(f.boards, id)
	w.WriteHeader(http.StatusNoContent)
}

// ============================================================================
// Columns
// ============================================================================

func (f *FakeAPI) findColumn(boardID, columnID string) (*models.Column, int) {
	for i, c := range f.columns[boardID] {
		if c.ID == columnID {
			return c, i
		}
	}
	return nil, -1
}

func (f *FakeAPI) listColumns(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	boardID := chi.URLParam(r, "boardID")
	if _, ok := f.boards[boardID]; !ok {
		writeError(w, http.StatusNotFound, "Board was not founded!")
		return
	}
	columns := make([]models.Column, 0, len(f.columns[boardID]))
	for _, c := range f.columns[boardID] {
		columns = append(columns, *c)
	}
	writeJSON(w, http.StatusOK, columns)
}

func (f *FakeAPI) createColumn(w http.ResponseWriter, r *http.Request) {
	var req models.CreateColumnRequest
	if !decode(w, r, &req) {
		return
	}
	boardID := chi.URLParam(r, "boardID")

	f.mu.Lock()
	_, ok := f.boards[boardID]
	f.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "Board was not founded!")
		return
	}
	col := f.SeedColumn(boardID, req.Title)
	if req.Order > 0 {
		f.mu.Lock()
		stored, _ := f.findColumn(boardID, col.ID)
		stored.Order = req.Order
		col = *stored
		f.mu.Unlock()
	}
	writeJSON(w, http.StatusCreated, col)
}

func (f *FakeAPI) getColumn(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, _ := f.findColumn(chi.URLParam(r, "boardID"), chi.URLParam(r, "columnID"))
	if c == nil {
		writeError(w, http.StatusNotFound, "Column was not founded!")
		return
	}
	writeJSON(w, http.StatusOK, *c)
}

func (f *FakeAPI) updateColumn(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateColumnRequest
	if !decode(w, r, &req) {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	c, _ := f.findColumn(chi.URLParam(r, "boardID"), chi.URLParam(r, "columnID"))
	if c == nil {
		writeError(w, http.StatusNotFound, "Column was not founded!")
		return
	}
	c.Title, c.Order = req.Title, req.Order
	writeJSON(w, http.StatusOK, *c)
}

func (f *FakeAPI) deleteColumn(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	boardID := chi.URLParam(r, "boardID")
	c, i := f.findColumn(boardID, chi.URLParam(r, "columnID"))
	if c == nil {
		writeError(w, http.StatusNotFound, "Column was not founded!")
		return
	}
	f.columns[boardID] = append(f.columns[boardID][:i], f.columns[boardID][i+1:]...)
	delete(f.tasks, c.ID)
	w.WriteHeader(http.StatusNoContent)
}

// ============================================================================
// Tasks
// ============================================================================

func (f *FakeAPI) findTask(columnID, taskID string) (*models.Task, int) {
	for i, task := range f.tasks[columnID] {
		if task.ID == taskID {
			return task, i
		}
	}
	return nil, -1
}

func (f *FakeAPI) listTasks(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, _ := f.findColumn(chi.URLParam(r, "boardID"), chi.URLParam(r, "columnID"))
	if c == nil {
		writeError(w, http.StatusNotFound, "Column was not founded!")
		return
	}
	tasks := make([]models.Task, 0, len(f.tasks[c.ID]))
	for _, task := range f.tasks[c.ID] {
		tasks = append(tasks, *task)
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (f *FakeAPI) createTask(w http.ResponseWriter, r *http.Request) {
	var body models.TaskBody
	if !decode(w, r, &body) {
		return
	}
	boardID, columnID := chi.URLParam(r, "boardID"), chi.URLParam(r, "columnID")

	f.mu.Lock()
	c, _ := f.findColumn(boardID, columnID)
	f.mu.Unlock()
	if c == nil {
		writeError(w, http.StatusNotFound, "Column was not founded!")
		return
	}
	if body.Title == "" {
		writeError(w, http.StatusBadRequest, "title should not be empty")
		return
	}

	task := f.SeedTask(boardID, columnID, body.Title, body.Description)

	f.mu.Lock()
	stored, _ := f.findTask(columnID, task.ID)
	stored.UserID = body.UserID
	if body.Order > 0 {
		stored.Order = body.Order
	}
	task = *stored
	f.mu.Unlock()

	writeJSON(w, http.StatusCreated, task)
}

func (f *FakeAPI) getTask(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, _ := f.findTask(chi.URLParam(r, "columnID"), chi.URLParam(r, "taskID"))
	if task == nil || task.BoardID != chi.URLParam(r, "boardID") {
		writeError(w, http.StatusNotFound, "Task was not founded!")
		return
	}
	writeJSON(w, http.StatusOK, *task)
}

func (f *FakeAPI) updateTask(w http.ResponseWriter, r *http.Request) {
	var body models.TaskBody
	if !decode(w, r, &body) {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	columnID := chi.URLParam(r, "columnID")
	task, i := f.findTask(columnID, chi.URLParam(r, "taskID"))
	if task == nil {
		writeError(w, http.StatusNotFound, "Task was not founded!")
		return
	}
	task.Title, task.Description, task.Order, task.UserID = body.Title, body.Description, body.Order, body.UserID

	// moving a task to another column
	if body.ColumnID != "" && body.ColumnID != columnID {
		f.tasks[columnID] = append(f.tasks[columnID][:i], f.tasks[columnID][i+1:]...)
		task.ColumnID = body.ColumnID
		f.tasks[body.ColumnID] = append(f.tasks[body.ColumnID], task)
	}
	writeJSON(w, http.StatusOK, *task)
}

func (f *FakeAPI) deleteTask(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	columnID := chi.URLParam(r, "columnID")
	task, i := f.findTask(columnID, chi.URLParam(r, "taskID"))
	if task == nil {
		writeError(w, http.StatusNotFound, "Task was not founded!")
		return
	}
	f.tasks[columnID] = append(f.tasks[columnID][:i], f.tasks[columnID][i+1:]...)
	w.WriteHeader(http.StatusNoContent)
}

// SignedInClient seeds an account and returns a client that sends its token
func (f *FakeAPI) SignedInClient(t *testing.T) (*api.Client, models.UserResponse) {
	t.Helper()
	u := f.SeedUser("Test User", "tester", "secret")
	token := f.TokenFor(u.ID, u.Login)

	c, err := api.New(f.URL(), api.WithTokenSource(api.TokenFunc(func(context.Context) (string, error) {
		return token, nil
	})))
	if err != nil {
		t.Fatalf("failed to create api client: %v", err)
	}
	return c, u
}
