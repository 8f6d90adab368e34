package bootstrap

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mediguard-api/config"
	"mediguard-api/internal/infrastructure/database/databasetest"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	t   *testing.T
	srv *httptest.Server
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	dist := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dist, "index.html"), []byte("<html>mediguard</html>"), 0o644))

	cfg := &config.Config{
		App: config.AppConfig{Env: "production", StaticDir: dist},
		JWT: config.JWTConfig{Secret: "e2e-secret"},
	}
	log := logrus.New()
	log.SetOutput(io.Discard)

	h, err := NewHandler(cfg, databasetest.New(t), log)
	require.NoError(t, err)

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return &testServer{t: t, srv: srv}
}

func (s *testServer) do(method, path, token string, body any) (int, []byte) {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, s.srv.URL+path, reader)
	require.NoError(s.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.srv.Client().Do(req)
	require.NoError(s.t, err)
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	require.NoError(s.t, err)
	return resp.StatusCode, out
}

func (s *testServer) register(name, email, password, role string) {
	s.t.Helper()
	body := map[string]string{"name": name, "email": email, "password": password}
	if role != "" {
		body["role"] = role
	}
	status, out := s.do(http.MethodPost, "/api/auth/register", "", body)
	require.Equal(s.t, http.StatusCreated, status, string(out))
}

func (s *testServer) login(email, password string) string {
	s.t.Helper()
	status, out := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(s.t, http.StatusOK, status, string(out))

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(out, &resp))
	require.NotEmpty(s.t, resp.Token)
	return resp.Token
}

func TestAliceBooksAppointment(t *testing.T) {
	s := newTestServer(t)

	status, out := s.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "wonderland",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.JSONEq(t, `{"id":1}`, string(out))

	status, out = s.do(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "wonderland",
	})
	require.Equal(t, http.StatusOK, status)

	var login struct {
		Token string `json:"token"`
		User  struct {
			ID    int64  `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(out, &login))
	assert.Equal(t, int64(1), login.User.ID)
	assert.Equal(t, "Alice", login.User.Name)
	assert.Equal(t, "patient", login.User.Role)
	assert.NotContains(t, string(out), "password")

	status, out = s.do(http.MethodPost, "/api/appointments", login.Token, map[string]string{
		"doctor_name": "Dr. Smith", "specialty": "Cardiology", "date": "2025-01-10", "time": "09:30",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.JSONEq(t, `{"id":1}`, string(out))

	status, out = s.do(http.MethodGet, "/api/appointments", login.Token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[{
		"id": 1,
		"patient_id": 1,
		"doctor_name": "Dr. Smith",
		"specialty": "Cardiology",
		"date": "2025-01-10",
		"time": "09:30",
		"status": "scheduled"
	}]`, string(out))
}

func TestResourcesAreScopedToCaller(t *testing.T) {
	s := newTestServer(t)
	s.register("Alice", "alice@example.com", "pw", "")
	s.register("Bob", "bob@example.com", "pw", "")
	alice := s.login("alice@example.com", "pw")
	bob := s.login("bob@example.com", "pw")

	status, _ := s.do(http.MethodPost, "/api/medications", alice, map[string]string{
		"name": "Aspirin", "dosage": "100mg", "frequency": "daily", "time": "08:00",
	})
	require.Equal(t, http.StatusCreated, status)

	status, out := s.do(http.MethodGet, "/api/medications", bob, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(out))

	status, out = s.do(http.MethodGet, "/api/medications", alice, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[{"id":1,"user_id":1,"name":"Aspirin","dosage":"100mg","frequency":"daily","time":"08:00"}]`, string(out))
}

func TestClientSuppliedOwnerIsIgnored(t *testing.T) {
	s := newTestServer(t)
	s.register("Alice", "alice@example.com", "pw", "")
	s.register("Bob", "bob@example.com", "pw", "")
	bob := s.login("bob@example.com", "pw")

	status, _ := s.do(http.MethodPost, "/api/appointments", bob, map[string]any{
		"patient_id": 1, "doctor_name": "Dr. Who", "specialty": "General", "date": "2025-02-01", "time": "10:00",
	})
	require.Equal(t, http.StatusCreated, status)

	alice := s.login("alice@example.com", "pw")
	_, out := s.do(http.MethodGet, "/api/appointments", alice, nil)
	assert.JSONEq(t, `[]`, string(out))

	_, out = s.do(http.MethodGet, "/api/appointments", bob, nil)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(out, &list))
	require.Len(t, list, 1)
	assert.EqualValues(t, 2, list[0]["patient_id"])
}

func TestAdminStats(t *testing.T) {
	s := newTestServer(t)
	s.register("Root", "root@example.com", "pw", "admin")
	s.register("Alice", "alice@example.com", "pw", "")
	admin := s.login("root@example.com", "pw")
	alice := s.login("alice@example.com", "pw")

	for i := 0; i < 2; i++ {
		status, _ := s.do(http.MethodPost, "/api/appointments", alice, map[string]string{
			"doctor_name": "Dr. Smith", "specialty": "Cardiology", "date": "2025-01-10", "time": "09:30",
		})
		require.Equal(t, http.StatusCreated, status)
	}

	status, out := s.do(http.MethodGet, "/api/admin/stats", alice, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Empty(t, out)

	status, out = s.do(http.MethodGet, "/api/admin/stats", admin, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"users":{"count":2},"appointments":{"count":2}}`, string(out))
}

func TestLoginFailuresLookTheSame(t *testing.T) {
	s := newTestServer(t)
	s.register("Alice", "alice@example.com", "right", "")

	wrongStatus, wrongBody := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "wrong",
	})
	unknownStatus, unknownBody := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "nobody@example.com", "password": "right",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongStatus)
	assert.Equal(t, wrongStatus, unknownStatus)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, string(wrongBody))
	assert.Equal(t, string(wrongBody), string(unknownBody))
}

func TestDuplicateRegistration(t *testing.T) {
	s := newTestServer(t)
	s.register("Alice", "alice@example.com", "pw", "")

	status, out := s.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Alice Again", "email": "alice@example.com", "password": "pw2",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(out, &resp))
	assert.Contains(t, resp.Error, "UNIQUE constraint failed")
}

func TestLongPasswordRegistersAndLogsIn(t *testing.T) {
	s := newTestServer(t)
	password := strings.Repeat("p", 80)

	s.register("Long", "long@example.com", password, "")
	assert.NotEmpty(t, s.login("long@example.com", password))
}

func TestAuthenticationFailures(t *testing.T) {
	s := newTestServer(t)

	status, out := s.do(http.MethodGet, "/api/appointments", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Empty(t, out)

	status, out = s.do(http.MethodGet, "/api/appointments", "not-a-jwt", nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Empty(t, out)
}

func TestRoutingEdges(t *testing.T) {
	s := newTestServer(t)

	status, out := s.do(http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(out))

	status, out = s.do(http.MethodGet, "/api/does-not-exist", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"error":"Resource not found"}`, string(out))

	for _, tc := range []struct{ method, path string }{
		{http.MethodDelete, "/api/appointments"},
		{http.MethodPut, "/api/medications"},
		{http.MethodPost, "/api/admin/stats"},
		{http.MethodGet, "/api/auth/login"},
	} {
		status, out = s.do(tc.method, tc.path, "", nil)
		assert.Equal(t, http.StatusMethodNotAllowed, status, tc.method+" "+tc.path)
		assert.JSONEq(t, `{"error":"Method not allowed"}`, string(out), tc.method+" "+tc.path)
	}

	status, out = s.do(http.MethodGet, "/dashboard", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(out), "mediguard")

	status, out = s.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(out), "mediguard_http_requests_total")
	assert.Contains(t, string(out), `route="/api/other",status="404"`)
	assert.Contains(t, string(out), `route="/api/other",status="405"`)
}

func TestNewLogger(t *testing.T) {
	log := NewLogger(config.LogConfig{Level: "debug", Format: "text"})
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)

	log = NewLogger(config.LogConfig{Level: "nonsense"})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
}
