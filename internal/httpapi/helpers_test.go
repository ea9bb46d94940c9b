package httpapi

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rimrim990/delivery-service/internal/auth"
	"github.com/rimrim990/delivery-service/internal/delivery"
)

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]auth.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]auth.User)}
}

func (s *fakeUserStore) Create(ctx context.Context, u *auth.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.Email]; ok {
		return auth.ErrDuplicatedEmail
	}
	s.users[u.Email] = *u
	return nil
}

func (s *fakeUserStore) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return nil, auth.ErrNotFound
	}
	return &u, nil
}

func testSecret(fill byte) string {
	return base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{fill}, 64))
}

func newTestAPI(t *testing.T) *API {
	t.Helper()
	issuer, err := auth.NewTokenIssuer(testSecret('a'), testSecret('r'), 10, 30)
	if err != nil {
		t.Fatalf("NewTokenIssuer: %v", err)
	}
	authSvc := auth.NewService(newFakeUserStore(), issuer)
	deliverySvc := delivery.NewService(delivery.NewInMemory())
	return New(authSvc, deliverySvc, ReadyProbe{}, "test")
}

type envelope struct {
	Data     json.RawMessage `json:"data"`
	ErrorMsg []string        `json:"errorMsg"`
}

// doJSON runs one request through the full middleware chain and decodes the
// response envelope.
func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(authorizationHeader, auth.BearerPrefix+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope (%s %s, status %d): %v", method, path, rec.Code, err)
	}
	return rec, env
}

// registerAndLogin provisions a fresh user and returns its token pair.
func registerAndLogin(t *testing.T, h http.Handler, email, password string) auth.TokenPair {
	t.Helper()
	rec, _ := doJSON(t, h, http.MethodPost, "/api/auth/register", "", registerRequest{
		Email:    email,
		Password: password,
		Username: "tester",
		City:     "seoul",
		Street:   "gangnam",
		ZipCode:  "12345",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", rec.Code, rec.Body.String())
	}
	rec, env := doJSON(t, h, http.MethodPost, "/api/auth/login", "", loginRequest{
		Email:    email,
		Password: password,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}
	var pair auth.TokenPair
	if err := json.Unmarshal(env.Data, &pair); err != nil {
		t.Fatalf("decode token pair: %v", err)
	}
	return pair
}
