package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog"

	"moodtunes/middleware"
	"moodtunes/models"
	"moodtunes/store"
)

type stubUser struct {
	user     models.User
	password string
}

// stubAccounts is an in-memory AccountStore mirroring the real store's
// contract, including the duplicate-email failure.
type stubAccounts struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]stubUser
	err    error
}

func newStubAccounts() *stubAccounts {
	return &stubAccounts{users: make(map[string]stubUser)}
}

func (s *stubAccounts) CreateUser(_ context.Context, username, email, password string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	if _, exists := s.users[email]; exists {
		return 0, store.ErrDuplicateEmail
	}
	s.nextID++
	s.users[email] = stubUser{
		user:     models.User{ID: s.nextID, Username: username, Email: email},
		password: password,
	}
	return s.nextID, nil
}

func (s *stubAccounts) VerifyUser(_ context.Context, email, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	entry, ok := s.users[email]
	if !ok || entry.password != password {
		return nil, store.ErrNotFound
	}
	user := entry.user
	return &user, nil
}

func (s *stubAccounts) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	entry, ok := s.users[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	user := entry.user
	return &user, nil
}

// stubCatalog serves canned songs per mood, truncated to 10 like the real
// store.
type stubCatalog struct {
	songs map[string][]models.Song
	err   error
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{songs: make(map[string][]models.Song)}
}

func (s *stubCatalog) SongsByMood(_ context.Context, mood string) ([]models.Song, error) {
	if s.err != nil {
		return nil, s.err
	}
	matched := s.songs[mood]
	if len(matched) > 10 {
		matched = matched[:10]
	}
	out := make([]models.Song, len(matched))
	copy(out, matched)
	return out, nil
}

// newTestApp wires the handlers exactly like main.go, with stub stores
// and in-memory sessions.
func newTestApp(t *testing.T) (*fiber.App, *stubAccounts, *stubCatalog) {
	t.Helper()

	accounts := newStubAccounts()
	catalog := newStubCatalog()
	sessions := session.New()
	log := zerolog.Nop()

	h := New(accounts, catalog, sessions, log)
	guard := middleware.NewGuard(sessions, log)

	app := fiber.New(fiber.Config{
		Views:        html.New("../views", ".html"),
		ErrorHandler: ErrorHandler(log),
	})

	app.Get("/", h.Index)
	app.Get("/signin", h.Signin)
	app.Get("/dashboard", guard.Page, h.Dashboard)
	app.Post("/register", h.Register)
	app.Post("/login", h.Login)
	app.Get("/logout", h.Logout)
	app.Post("/reset_password", h.ResetPassword)
	app.Post("/get_recommendations", guard.API, h.GetRecommendations)

	return app, accounts, catalog
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, cookies ...*http.Cookie) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	var decoded map[string]interface{}
	_ = json.Unmarshal(raw, &decoded)
	return resp, decoded
}

// makeSongs builds n catalog entries tagged with the given mood.
func makeSongs(mood string, n int) []models.Song {
	songs := make([]models.Song, n)
	for i := range songs {
		songs[i] = models.Song{
			ID:          int64(i + 1),
			Title:       "Song " + string(rune('A'+i)),
			Artist:      "Artist",
			Mood:        mood,
			CoverURL:    "https://example.com/cover.jpg",
			YoutubeLink: "https://example.com/watch",
		}
	}
	return songs
}

// loginAs registers and logs in a user, returning the session cookie.
func loginAs(t *testing.T, app *fiber.App, username, email, password string) *http.Cookie {
	t.Helper()

	_, body := doJSON(t, app, http.MethodPost, "/register", map[string]string{
		"username": username, "email": email, "password": password,
	})
	if body["success"] != true {
		t.Fatalf("register failed: %v", body)
	}

	resp, body := doJSON(t, app, http.MethodPost, "/login", map[string]string{
		"email": email, "password": password,
	})
	if body["success"] != true {
		t.Fatalf("login failed: %v", body)
	}
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "session_id" {
			return cookie
		}
	}
	t.Fatal("no session cookie set on login")
	return nil
}
