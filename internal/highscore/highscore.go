// Package highscore persists the best final score across rounds.
package highscore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrCorrupt is wrapped when the stored file cannot be parsed.
var ErrCorrupt = errors.New("corrupt high score file")

type record struct {
	HighScore int `yaml:"high_score"`
}

// File keeps the high score in a small YAML file. A missing file reads as 0.
// Safe for use by concurrent sessions of one process.
type File struct {
	mu   sync.Mutex
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Read() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

func (f *File) read() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read high score: %w", err)
	}
	var r record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return 0, fmt.Errorf("%w %s: %v", ErrCorrupt, f.path, err)
	}
	if r.HighScore < 0 {
		return 0, fmt.Errorf("%w %s: negative score %d", ErrCorrupt, f.path, r.HighScore)
	}
	return r.HighScore, nil
}

// Write stores score. The file is replaced atomically.
func (f *File) Write(score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := yaml.Marshal(record{HighScore: score})
	if err != nil {
		return fmt.Errorf("encode high score: %w", err)
	}
	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("write high score: %w", err)
		}
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	return nil
}

// Memory is an in-process store.
type Memory struct {
	mu    sync.Mutex
	score int
}

func NewMemory(score int) *Memory {
	return &Memory{score: score}
}

func (m *Memory) Read() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

func (m *Memory) Write(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = score
	return nil
}
