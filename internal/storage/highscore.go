package storage

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// KV is a string key/value store. *Store implements it on SQLite and
// MemoryKV in memory.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

var (
	_ KV = (*Store)(nil)
	_ KV = (*MemoryKV)(nil)
)

// HighScoreStore persists one game's best score as a decimal string under a
// fixed key. Reads never fail: anything unusable counts as 0.
type HighScoreStore struct {
	kv     KV
	key    string
	logger *log.Logger
}

// NewHighScoreStore creates a high score store over kv. A nil logger discards
// warnings.
func NewHighScoreStore(kv KV, key string, logger *log.Logger) *HighScoreStore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &HighScoreStore{kv: kv, key: key, logger: logger}
}

// Key returns the storage key.
func (h *HighScoreStore) Key() string {
	return h.key
}

// Load returns the stored high score, or 0 if it is missing, unreadable or
// not a non-negative integer.
func (h *HighScoreStore) Load() int {
	if h == nil || h.kv == nil {
		return 0
	}

	raw, ok, err := h.kv.Get(h.key)
	if err != nil {
		h.logger.Warn("cannot read high score", "key", h.key, "error", err)
		return 0
	}
	if !ok {
		return 0
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		h.logger.Warn("ignoring malformed high score", "key", h.key, "value", raw)
		return 0
	}
	return n
}

// Save stores score if it beats the stored value.
func (h *HighScoreStore) Save(score int) error {
	if h == nil || h.kv == nil {
		return nil
	}
	if score <= h.Load() {
		return nil
	}
	if err := h.kv.Set(h.key, strconv.Itoa(score)); err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	h.logger.Info("high score saved", "key", h.key, "score", score)
	return nil
}

// MemoryKV is an in-memory KV for tests and for running without a database.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

// Get returns the value stored under key and whether it exists.
func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string]string)
	}
	m.data[key] = value
	return nil
}
