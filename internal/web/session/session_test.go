package session

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStorage is a minimal in-memory implementation of storage.Storage.
type testStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ storage.Storage = (*testStorage)(nil)

func newTestStorage() *testStorage {
	return &testStorage{data: make(map[string][]byte)}
}

func (s *testStorage) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := s.data[key]
	out := make([]byte, len(v))
	copy(out, v)

	return out, nil
}

func (s *testStorage) Set(key string, val []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, len(val))
	copy(buf, val)
	s.data[key] = buf

	return nil
}

func (s *testStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

func (s *testStorage) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string][]byte)

	return nil
}

func (s *testStorage) Close() error { return nil }

func TestManagerReadWriteDestroy(t *testing.T) {
	manager := NewManager(newTestStorage(), time.Minute)

	sessionID, err := GenerateSessionID()
	require.NoError(t, err)
	require.Len(t, sessionID, 64, "32 random bytes hex encoded")

	_, err = manager.Read(sessionID)
	assert.ErrorIs(t, err, ErrNoSession, "unknown session must not validate")

	err = manager.Write(sessionID, &Data{AdminID: 1, Username: "admin"})
	require.NoError(t, err)

	data, err := manager.Read(sessionID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, data.AdminID)
	assert.Equal(t, "admin", data.Username)

	require.NoError(t, manager.Destroy(sessionID))

	_, err = manager.Read(sessionID)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestManagerReadEmptyID(t *testing.T) {
	manager := NewManager(newTestStorage(), time.Minute)

	_, err := manager.Read("")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestFlashQueueAndDrain(t *testing.T) {
	manager := NewManager(newTestStorage(), time.Minute)

	app := fiber.New()
	app.Get("/queue", func(c *fiber.Ctx) error {
		manager.AddFlash(c, "success", "Saved.")
		manager.AddFlash(c, "warning", "Image stored unoptimized.")

		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/show", func(c *fiber.Ctx) error {
		var lines []string
		for _, flash := range manager.Flashes(c) {
			lines = append(lines, flash.Category+":"+flash.Message)
		}

		return c.SendString(strings.Join(lines, "\n"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/queue", nil))
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	// the first flash sets the visitor cookie
	setCookie := resp.Header.Get("Set-Cookie")
	require.Contains(t, setCookie, FlashCookieName+"=")

	cookie := strings.SplitN(strings.SplitN(setCookie, ";", 2)[0], "=", 2)

	show := httptest.NewRequest(http.MethodGet, "/show", nil)
	show.AddCookie(&http.Cookie{Name: cookie[0], Value: cookie[1]})

	shown, err := app.Test(show)
	require.NoError(t, err)

	defer func() {
		_ = shown.Body.Close()
	}()

	body, err := io.ReadAll(shown.Body)
	require.NoError(t, err)
	assert.Equal(t, "success:Saved.\nwarning:Image stored unoptimized.", string(body))

	// a second read must come up empty, flashes show exactly once
	again := httptest.NewRequest(http.MethodGet, "/show", nil)
	again.AddCookie(&http.Cookie{Name: cookie[0], Value: cookie[1]})

	drained, err := app.Test(again)
	require.NoError(t, err)

	defer func() {
		_ = drained.Body.Close()
	}()

	body, err = io.ReadAll(drained.Body)
	require.NoError(t, err)
	assert.Empty(t, string(body))
}

func TestFlashesWithoutCookie(t *testing.T) {
	manager := NewManager(newTestStorage(), time.Minute)

	app := fiber.New()
	app.Get("/show", func(c *fiber.Ctx) error {
		assert.Empty(t, manager.Flashes(c))

		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/show", nil))
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()
}
