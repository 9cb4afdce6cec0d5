package session_test

import (
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stayease/stayease/internal/domain"
	"github.com/stayease/stayease/internal/session"
	"github.com/stayease/stayease/pkg/auth"
)

const cookieName = "stayease_jwt"

func signedToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	token, err := auth.NewSessionToken(7, "Jane Tenant", "jane@example.com", "user", ttl)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func jarWith(t *testing.T, token string) *session.Jar {
	t.Helper()
	jar, err := session.OpenJar("")
	if err != nil {
		t.Fatalf("open jar: %v", err)
	}
	if token != "" {
		u, _ := url.Parse("http://localhost:9090")
		jar.SetCookies(u, []*http.Cookie{{Name: cookieName, Value: token}})
	}
	return jar
}

func TestRestoreFromToken(t *testing.T) {
	jar := jarWith(t, signedToken(t, time.Hour))
	store := session.NewStore(jar, cookieName)
	store.Restore()

	if store.State() != session.StateActive {
		t.Fatalf("state = %v, want active", store.State())
	}
	user := store.Current()
	if user == nil {
		t.Fatal("Current() = nil after restore")
	}
	if user.ID != 7 || user.Email != "jane@example.com" || user.Role != domain.RoleTenant {
		t.Errorf("restored identity %+v", user)
	}
}

func TestRestoreWithoutCookie(t *testing.T) {
	store := session.NewStore(jarWith(t, ""), cookieName)
	store.Restore()

	if store.State() != session.StateAnonymous {
		t.Errorf("state = %v, want anonymous", store.State())
	}
	if store.IsAuthenticated() {
		t.Error("IsAuthenticated() = true with no cookie")
	}
}

func TestRestoreExpiredToken(t *testing.T) {
	store := session.NewStore(jarWith(t, signedToken(t, -time.Minute)), cookieName)
	store.Restore()

	if store.IsAuthenticated() {
		t.Error("expired token restored a session")
	}
}

func TestRestoreGarbageToken(t *testing.T) {
	store := session.NewStore(jarWith(t, "not.a.jwt"), cookieName)
	store.Restore()

	if store.State() != session.StateAnonymous {
		t.Errorf("state = %v, want anonymous", store.State())
	}
}

// IsAuthenticated must track the identity exactly through any login/logout
// sequence; it is derived, never stored.
func TestAuthenticatedTracksIdentity(t *testing.T) {
	jar := jarWith(t, "")
	store := session.NewStore(jar, cookieName)
	store.Restore()

	user := domain.User{ID: 3, FullName: "Owen Owner", Email: "owen@example.com", Role: domain.RoleOwner}

	steps := []struct {
		name string
		act  func()
		want bool
	}{
		{"initial", func() {}, false},
		{"login", func() { store.Login(user) }, true},
		{"logout", func() { store.Logout() }, false},
		{"relogin", func() { store.Login(user) }, true},
		{"double logout", func() { store.Logout(); store.Logout() }, false},
	}
	for _, step := range steps {
		step.act()
		if got := store.IsAuthenticated(); got != step.want {
			t.Errorf("%s: IsAuthenticated() = %v, want %v", step.name, got, step.want)
		}
		if (store.Current() != nil) != step.want {
			t.Errorf("%s: Current() disagrees with IsAuthenticated()", step.name)
		}
	}
}

func TestLogoutExpiresCookie(t *testing.T) {
	jar := jarWith(t, signedToken(t, time.Hour))
	store := session.NewStore(jar, cookieName)
	store.Restore()
	store.Logout()

	if _, ok := jar.Get(cookieName); ok {
		t.Error("cookie survived logout")
	}
	if store.State() != session.StateCleared {
		t.Errorf("state = %v, want cleared", store.State())
	}
}

func TestCurrentReturnsCopy(t *testing.T) {
	store := session.NewStore(jarWith(t, ""), cookieName)
	store.Login(domain.User{ID: 1, FullName: "Jane"})

	first := store.Current()
	first.FullName = "mutated"
	if store.Current().FullName != "Jane" {
		t.Error("Current() exposed internal state")
	}
}

func TestJarPersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.json")

	jar, err := session.OpenJar(path)
	if err != nil {
		t.Fatalf("open jar: %v", err)
	}
	u, _ := url.Parse("http://localhost:9090")
	jar.SetCookies(u, []*http.Cookie{{Name: cookieName, Value: "abc"}})

	reopened, err := session.OpenJar(path)
	if err != nil {
		t.Fatalf("reopen jar: %v", err)
	}
	if v, ok := reopened.Get(cookieName); !ok || v != "abc" {
		t.Errorf("Get() = %q, %v after reopen", v, ok)
	}
}

func TestJarCorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.json")
	if err := os.WriteFile(path, []byte("{{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	jar, err := session.OpenJar(path)
	if err != nil {
		t.Fatalf("corrupt jar should not fail open: %v", err)
	}
	if _, ok := jar.Get(cookieName); ok {
		t.Error("corrupt jar produced a cookie")
	}
}

func TestJarDropsExpiredCookies(t *testing.T) {
	jar, _ := session.OpenJar("")
	u, _ := url.Parse("http://localhost:9090")
	jar.SetCookies(u, []*http.Cookie{{
		Name:    cookieName,
		Value:   "stale",
		Expires: time.Now().Add(-time.Hour),
	}})

	if _, ok := jar.Get(cookieName); ok {
		t.Error("expired cookie still readable")
	}
	if cookies := jar.Cookies(u); len(cookies) != 0 {
		t.Errorf("Cookies() = %d entries, want 0", len(cookies))
	}
}
