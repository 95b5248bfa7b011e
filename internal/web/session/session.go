// Package session stores admin sessions and flash messages in a pluggable
// storage backend.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/marogo-civils/marogo-web/internal/uniuri"
)

const (
	// CookieName is the admin session cookie.
	CookieName = "session"

	// FlashCookieName identifies the visitor flash messages belong to.
	FlashCookieName = "flash_id"

	flashKeyPrefix   = "flash:"
	flashTTL         = 10 * time.Minute
	flashIDLength    = 32
	flashIDLocalsKey = "flash_id_issued"
)

// ErrNoSession is returned when a session ID is empty, unknown or expired.
var ErrNoSession = errors.New("no valid session")

// Data is the server side state of one admin session.
type Data struct {
	AdminID  uint64
	Username string
}

// Flash is one message queued for the visitor's next rendered page.
type Flash struct {
	Category string
	Message  string
}

// Manager reads and writes sessions and flash messages. The zero value is
// not usable, construct it with NewManager.
type Manager struct {
	storage storage.Storage
	expiry  time.Duration
}

// NewManager creates a Manager on top of a storage backend.
func NewManager(backend storage.Storage, expiry time.Duration) *Manager {
	if backend == nil {
		panic("session storage is nil")
	}

	return &Manager{storage: backend, expiry: expiry}
}

// Expiry returns the configured session lifetime.
func (m *Manager) Expiry() time.Duration {
	return m.expiry
}

// Write stores the session data under the given session ID.
func (m *Manager) Write(sessionID string, data *Data) error {
	out, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "failed to marshal session data")
	}

	return m.storage.Set(sessionID, out, m.expiry)
}

// Read loads the session data for the given session ID.
func (m *Manager) Read(sessionID string) (*Data, error) {
	if sessionID == "" {
		return nil, ErrNoSession
	}

	raw, err := m.storage.Get(sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session")
	}

	// storage backends return nil, nil for unknown keys
	if len(raw) == 0 {
		return nil, ErrNoSession
	}

	data := new(Data)
	if err := json.Unmarshal(raw, data); err != nil {
		return nil, errors.Wrap(err, "failed to decode session data")
	}

	return data, nil
}

// Destroy removes the session for the given session ID.
func (m *Manager) Destroy(sessionID string) error {
	if sessionID == "" {
		return nil
	}

	return m.storage.Delete(sessionID)
}

// AddFlash queues a message for the visitor's next rendered page.
func (m *Manager) AddFlash(c *fiber.Ctx, category, message string) {
	id := m.flashID(c)

	flashes := append(m.readFlashes(id), Flash{Category: category, Message: message})

	out, err := json.Marshal(flashes)
	if err != nil {
		log.Warn().Err(err).Msg("failed to marshal flash messages")

		return
	}

	if err := m.storage.Set(flashKeyPrefix+id, out, flashTTL); err != nil {
		log.Warn().Err(err).Msg("failed to store flash messages")
	}
}

// Flashes drains the queued messages for this visitor.
func (m *Manager) Flashes(c *fiber.Ctx) []Flash {
	id := c.Cookies(FlashCookieName)
	if id == "" {
		return nil
	}

	flashes := m.readFlashes(id)
	if len(flashes) == 0 {
		return nil
	}

	if err := m.storage.Delete(flashKeyPrefix + id); err != nil {
		log.Warn().Err(err).Msg("failed to drain flash messages")
	}

	return flashes
}

func (m *Manager) readFlashes(id string) []Flash {
	raw, err := m.storage.Get(flashKeyPrefix + id)
	if err != nil || len(raw) == 0 {
		return nil
	}

	var flashes []Flash
	if err := json.Unmarshal(raw, &flashes); err != nil {
		return nil
	}

	return flashes
}

// flashID returns the visitor's flash identity, setting the cookie on first
// use so messages survive the redirect they are queued across. The issued ID
// is kept in the request locals, request cookies never see cookies set on
// the response.
func (m *Manager) flashID(c *fiber.Ctx) string {
	if id := c.Cookies(FlashCookieName); id != "" {
		return id
	}

	if id, ok := c.Locals(flashIDLocalsKey).(string); ok && id != "" {
		return id
	}

	id := uniuri.NewLen(flashIDLength)
	c.Locals(flashIDLocalsKey, id)

	c.Cookie(&fiber.Cookie{
		Name:     FlashCookieName,
		Value:    id,
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return id
}

// GenerateSessionID generates a new secure random session ID.
func GenerateSessionID() (string, error) {
	// 32 bytes = 256 bits
	b := make([]byte, 32) //nolint:mnd
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}
