package supabase

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// CookieStore is where a server client reads and writes the session cookies.
type CookieStore interface {
	Get(name string) (string, bool)
	Set(name, value string, maxAge int)
	Delete(name string)
}

type ginCookies struct {
	c *gin.Context
}

// GinCookies adapts a gin request/response pair to CookieStore.
func GinCookies(c *gin.Context) CookieStore {
	return ginCookies{c: c}
}

func (g ginCookies) Get(name string) (string, bool) {
	v, err := g.c.Cookie(name)
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}

func (g ginCookies) Set(name, value string, maxAge int) {
	g.c.SetSameSite(http.SameSiteLaxMode)
	g.c.SetCookie(name, value, maxAge, "/", "", g.c.Request.TLS != nil, true)
}

func (g ginCookies) Delete(name string) {
	g.c.SetSameSite(http.SameSiteLaxMode)
	g.c.SetCookie(name, "", -1, "/", "", g.c.Request.TLS != nil, true)
}

// MemoryCookies is a map-backed CookieStore.
type MemoryCookies struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryCookies creates a MemoryCookies seeded with values.
func NewMemoryCookies(values map[string]string) *MemoryCookies {
	m := &MemoryCookies{values: make(map[string]string, len(values))}
	for k, v := range values {
		m.values[k] = v
	}
	return m
}

func (m *MemoryCookies) Get(name string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[name]
	return v, ok && v != ""
}

func (m *MemoryCookies) Set(name, value string, maxAge int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[name] = value
}

func (m *MemoryCookies) Delete(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, name)
}
