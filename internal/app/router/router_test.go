package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	authentity "todo_backend/internal/feature/auth/domain/entity"
	authhandler "todo_backend/internal/feature/auth/transport/handler"
	authusecase "todo_backend/internal/feature/auth/usecase"
	taskentity "todo_backend/internal/feature/tasks/domain/entity"
	taskhandler "todo_backend/internal/feature/tasks/transport/handler"
	taskusecase "todo_backend/internal/feature/tasks/usecase"
	"todo_backend/internal/platform/http/handler"
	"todo_backend/internal/platform/password"
	"todo_backend/internal/platform/token"
)

const testSecret = "router-test-secret"

// memUsers is an in-memory users collection.
type memUsers struct {
	mu    sync.Mutex
	users map[string]authentity.User
	err   error
}

func (m *memUsers) Create(ctx context.Context, u *authentity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[u.Email]; ok {
		return authusecase.ErrEmailAlreadyExists
	}
	u.ID = bson.NewObjectID().Hex()
	m.users[u.Email] = *u
	return nil
}

func (m *memUsers) FindByEmail(ctx context.Context, email string) (*authentity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[email]
	if !ok {
		return nil, authusecase.ErrUserNotFound
	}
	return &u, nil
}

// memTasks is an in-memory tasks collection preserving insertion order.
type memTasks struct {
	mu    sync.Mutex
	tasks []taskentity.Task
	err   error
}

func (m *memTasks) IsValidID(id string) bool {
	_, err := bson.ObjectIDFromHex(id)
	return err == nil
}

func (m *memTasks) ListByUser(ctx context.Context, userEmail string) ([]taskentity.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []taskentity.Task
	for _, t := range m.tasks {
		if t.UserEmail == userEmail {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTasks) Create(ctx context.Context, t *taskentity.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	t.ID = bson.NewObjectID().Hex()
	m.tasks = append(m.tasks, *t)
	return nil
}

func (m *memTasks) Update(ctx context.Context, id string, p taskentity.TaskPatch) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			if p.Title != nil {
				m.tasks[i].Title = *p.Title
			}
			if p.Completed != nil {
				m.tasks[i].Completed = *p.Completed
			}
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memTasks) Delete(ctx context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(ctx context.Context) error { return s.err }

type testApp struct {
	router *gin.Engine
	users  *memUsers
	tasks  *memTasks
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := &memUsers{users: map[string]authentity.User{}}
	tasks := &memTasks{}
	hasher := password.NewHasher(bcrypt.MinCost)

	r := NewRouter(
		handler.NewSystemHandler(stubPinger{}, hasher),
		authhandler.NewAuthHandler(authusecase.NewAuthUsecase(users, hasher, token.NewGenerator(testSecret, time.Hour))),
		taskhandler.NewTaskHandler(taskusecase.NewTaskUsecase(tasks)),
	)
	return &testApp{router: r, users: users, tasks: tasks}
}

func (a *testApp) do(t *testing.T, method, target string, body any) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w.Code, w.Body.Bytes()
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func TestRouter_RootAndHealth(t *testing.T) {
	app := newTestApp(t)

	status, body := app.do(t, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Backend is running"}`, string(body))

	status, body = app.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"healthy","database":"connected"}`, string(body))
}

func TestRouter_SignupAndLogin(t *testing.T) {
	app := newTestApp(t)
	creds := map[string]string{"email": "a@x.com", "password": "s3cret"}

	status, body := app.do(t, http.MethodPost, "/signup", creds)
	require.Equal(t, http.StatusOK, status, string(body))
	signup := decode[map[string]string](t, body)
	assert.Equal(t, "Signup successful", signup["message"])
	assert.Len(t, signup["id"], 24)

	stored := app.users.users["a@x.com"]
	assert.NotEqual(t, "s3cret", stored.Password, "password must be stored hashed")

	status, body = app.do(t, http.MethodPost, "/signup", creds)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"detail":"User already exists"}`, string(body))

	status, body = app.do(t, http.MethodPost, "/login", creds)
	require.Equal(t, http.StatusOK, status, string(body))
	login := decode[map[string]any](t, body)
	assert.Equal(t, "Login successful", login["message"])
	assert.Equal(t, map[string]any{"email": "a@x.com"}, login["user"])
	assert.NotContains(t, string(body), stored.Password, "hash must never be returned")

	tok, err := jwt.Parse(login["token"].(string), func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	sub, err := tok.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", sub)

	status, wrongPw := app.do(t, http.MethodPost, "/login", map[string]string{"email": "a@x.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, status)
	status, unknown := app.do(t, http.MethodPost, "/login", map[string]string{"email": "b@x.com", "password": "s3cret"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.JSONEq(t, `{"detail":"Invalid credentials"}`, string(wrongPw))
	assert.Equal(t, wrongPw, unknown, "unknown email and wrong password must look identical")
}

func TestRouter_TaskLifecycle(t *testing.T) {
	app := newTestApp(t)

	status, body := app.do(t, http.MethodGet, "/tasks/a@x.com", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))

	status, body = app.do(t, http.MethodPost, "/tasks", map[string]any{"title": "buy milk", "user_email": "a@x.com"})
	require.Equal(t, http.StatusOK, status, string(body))
	created := decode[map[string]string](t, body)
	assert.Equal(t, "Task created", created["message"])
	id := created["id"]

	status, body = app.do(t, http.MethodGet, "/tasks/a@x.com", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[{"id":"`+id+`","title":"buy milk","completed":false}]`, string(body))

	status, body = app.do(t, http.MethodPut, "/tasks/"+id, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"detail":"At least one field (completed or title) must be provided"}`, string(body))

	status, body = app.do(t, http.MethodPut, "/tasks/xyz?completed=true", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"detail":"Invalid task ID"}`, string(body))

	status, body = app.do(t, http.MethodPut, "/tasks/"+bson.NewObjectID().Hex()+"?completed=true", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"detail":"Task not found"}`, string(body))

	status, _ = app.do(t, http.MethodPut, "/tasks/"+id+"?completed=true&title=buy%20oat%20milk", nil)
	assert.Equal(t, http.StatusOK, status)

	status, body = app.do(t, http.MethodGet, "/tasks/a@x.com", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[{"id":"`+id+`","title":"buy oat milk","completed":true}]`, string(body))

	status, body = app.do(t, http.MethodDelete, "/tasks/"+id, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Task deleted"}`, string(body))

	status, body = app.do(t, http.MethodDelete, "/tasks/"+id, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"detail":"Task not found"}`, string(body))

	status, _ = app.do(t, http.MethodDelete, "/tasks/123", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestRouter_StoreFailures(t *testing.T) {
	app := newTestApp(t)
	storeErr := errors.New("server selection error: context deadline exceeded")
	app.users.err = storeErr
	app.tasks.err = storeErr
	validID := bson.NewObjectID().Hex()

	tests := []struct {
		name           string
		method         string
		target         string
		body           any
		expectedStatus int
	}{
		{"signup", http.MethodPost, "/signup", map[string]string{"email": "a@x.com", "password": "p"}, http.StatusInternalServerError},
		{"login", http.MethodPost, "/login", map[string]string{"email": "a@x.com", "password": "p"}, http.StatusServiceUnavailable},
		{"list", http.MethodGet, "/tasks/a@x.com", nil, http.StatusServiceUnavailable},
		{"create", http.MethodPost, "/tasks", map[string]string{"title": "t", "user_email": "a@x.com"}, http.StatusServiceUnavailable},
		{"update", http.MethodPut, "/tasks/" + validID + "?title=t", nil, http.StatusServiceUnavailable},
		{"delete", http.MethodDelete, "/tasks/" + validID, nil, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := app.do(t, tt.method, tt.target, tt.body)

			assert.Equal(t, tt.expectedStatus, status)
			assert.NotContains(t, string(body), storeErr.Error(), "raw store errors must not reach the client")
			assert.NotEmpty(t, decode[map[string]string](t, body)["detail"])
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/tasks", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
