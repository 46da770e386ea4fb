package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

type failingKV struct {
	getErr error
	setErr error
}

func (f failingKV) Get(string) (string, bool, error) { return "", false, f.getErr }
func (f failingKV) Set(string, string) error         { return f.setErr }

func TestHighScoreLoad(t *testing.T) {
	tests := []struct {
		name  string
		value string
		set   bool
		want  int
	}{
		{"missing", "", false, 0},
		{"stored", "42", true, 42},
		{"whitespace", " 17\n", true, 17},
		{"garbage", "abc", true, 0},
		{"negative", "-3", true, 0},
		{"empty", "", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := NewMemoryKV()
			if tt.set {
				kv.Set("slappyHighScore", tt.value)
			}
			h := NewHighScoreStore(kv, "slappyHighScore", nil)
			if got := h.Load(); got != tt.want {
				t.Errorf("Load() = %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestHighScoreLoadReadError(t *testing.T) {
	h := NewHighScoreStore(failingKV{getErr: errors.New("disk gone")}, "slappyHighScore", nil)
	if got := h.Load(); got != 0 {
		t.Errorf("Load() with read error = %d, expected 0", got)
	}
}

func TestHighScoreSave(t *testing.T) {
	kv := NewMemoryKV()
	h := NewHighScoreStore(kv, "slappyHighScore", nil)

	if err := h.Save(10); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if got := h.Load(); got != 10 {
		t.Errorf("Load() = %d, expected 10", got)
	}

	// Lower scores never overwrite
	if err := h.Save(4); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if got := h.Load(); got != 10 {
		t.Errorf("Load() after lower save = %d, expected 10", got)
	}

	if err := h.Save(11); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if v, _, _ := kv.Get("slappyHighScore"); v != "11" {
		t.Errorf("stored value = %q, expected 11", v)
	}
}

func TestHighScoreSaveError(t *testing.T) {
	sentinel := errors.New("read-only")
	h := NewHighScoreStore(failingKV{setErr: sentinel}, "slappyHighScore", nil)
	if err := h.Save(5); !errors.Is(err, sentinel) {
		t.Errorf("Save() error = %v, expected wrapped %v", err, sentinel)
	}
}

func TestHighScoreKeysIndependent(t *testing.T) {
	kv := NewMemoryKV()
	slappy := NewHighScoreStore(kv, "slappyHighScore", nil)
	flappy := NewHighScoreStore(kv, "flappyHighScore", nil)

	slappy.Save(30)
	if got := flappy.Load(); got != 0 {
		t.Errorf("flappy Load() = %d, expected 0", got)
	}
}

func TestHighScoreOverSQLite(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	h := NewHighScoreStore(store, "slappyHighScore", nil)
	if got := h.Load(); got != 0 {
		t.Errorf("Load() on fresh db = %d, expected 0", got)
	}
	if err := h.Save(23); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if got := h.Load(); got != 23 {
		t.Errorf("Load() = %d, expected 23", got)
	}
}

func TestHighScoreNilStore(t *testing.T) {
	var h *HighScoreStore
	if h.Load() != 0 {
		t.Error("nil store should load 0")
	}
	if err := h.Save(3); err != nil {
		t.Errorf("nil store Save() = %v, expected nil", err)
	}
}
