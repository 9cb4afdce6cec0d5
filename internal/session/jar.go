package session

import (
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type storedCookie struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Expires time.Time `json:"expires,omitempty"`
}

// Jar is a minimal file-backed cookie jar. The client only ever talks to one
// backend host, so cookies are keyed by name alone.
type Jar struct {
	mu      sync.Mutex
	path    string
	cookies map[string]storedCookie
}

// OpenJar loads the jar file if it exists. An empty path keeps the jar
// in-memory only.
func OpenJar(path string) (*Jar, error) {
	j := &Jar{path: path, cookies: make(map[string]storedCookie)}
	if path == "" {
		return j, nil
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return j, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &j.cookies); err != nil {
		// A corrupt jar means a fresh anonymous session, not a hard failure.
		j.cookies = make(map[string]storedCookie)
	}
	return j, nil
}

func (j *Jar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()

	for _, c := range cookies {
		if !c.Expires.IsZero() && c.Expires.Before(time.Now()) {
			delete(j.cookies, c.Name)
			continue
		}
		j.cookies[c.Name] = storedCookie{Name: c.Name, Value: c.Value, Expires: c.Expires}
	}
	j.persistLocked()
}

func (j *Jar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()

	var out []*http.Cookie
	for _, c := range j.cookies {
		if !c.Expires.IsZero() && c.Expires.Before(time.Now()) {
			continue
		}
		out = append(out, &http.Cookie{Name: c.Name, Value: c.Value})
	}
	return out
}

// Get returns the live value of a named cookie.
func (j *Jar) Get(name string) (string, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	c, ok := j.cookies[name]
	if !ok {
		return "", false
	}
	if !c.Expires.IsZero() && c.Expires.Before(time.Now()) {
		return "", false
	}
	return c.Value, true
}

// Expire drops a cookie, mirroring the browser trick of setting an
// already-passed expiry date.
func (j *Jar) Expire(name string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	delete(j.cookies, name)
	j.persistLocked()
}

func (j *Jar) persistLocked() {
	if j.path == "" {
		return
	}
	raw, err := json.Marshal(j.cookies)
	if err != nil {
		return
	}
	_ = os.MkdirAll(filepath.Dir(j.path), 0o700)
	_ = os.WriteFile(j.path, raw, 0o600)
}
