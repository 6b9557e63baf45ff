// Package theme holds the light/dark appearance preference. The store is
// the single source of truth: renderers implement Applier and only ever
// reflect what the store publishes.
package theme

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/stocktake-dev/stocktake/internal/cli/storage"
)

const themeKey = "theme"

// Theme is the appearance preference.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Applier reflects the active theme onto whatever renders output.
type Applier interface {
	Apply(Theme)
}

// ApplierFunc adapts a function to the Applier interface.
type ApplierFunc func(Theme)

func (f ApplierFunc) Apply(t Theme) { f(t) }

// Detector reports the system-level appearance preference, consulted only
// when no value has been persisted yet.
type Detector func() Theme

// TerminalPreference is a Detector that inspects the COLORFGBG environment
// variable some terminals export ("foreground;background", colors 0-15).
// A dark background color means a dark preference. Defaults to light.
func TerminalPreference() Theme {
	value := os.Getenv("COLORFGBG")
	parts := strings.Split(value, ";")
	if len(parts) < 2 {
		return Light
	}
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return Light
	}
	if bg <= 6 || bg == 8 {
		return Dark
	}
	return Light
}

// Store owns the theme preference. Toggle persists and applies the new
// value in one step, so the published, persisted and rendered theme never
// drift apart.
type Store struct {
	mu        sync.Mutex
	theme     Theme
	kv        storage.Store
	applier   Applier
	detect    Detector
	observers map[int]func(Theme)
	nextID    int
}

// New creates a theme store persisting through kv and rendering through
// applier. A nil detector falls back to light.
func New(kv storage.Store, applier Applier, detect Detector) *Store {
	if detect == nil {
		detect = func() Theme { return Light }
	}
	return &Store{
		theme:     Light,
		kv:        kv,
		applier:   applier,
		detect:    detect,
		observers: make(map[int]func(Theme)),
	}
}

// Current returns the active theme.
func (s *Store) Current() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// Subscribe registers an observer and returns a function that removes it.
func (s *Store) Subscribe(fn func(Theme)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.observers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

// Init resolves the effective theme as persisted value, else system
// preference, else light, then applies and publishes it. Nothing is
// persisted here; only explicit user actions write the preference.
func (s *Store) Init() error {
	resolved := s.detect()

	saved, err := s.kv.Get(themeKey)
	switch {
	case err == nil:
		if parsed, ok := parse(saved); ok {
			resolved = parsed
		}
	case !errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("failed to load theme preference: %w", err)
	}

	s.set(resolved)
	return nil
}

// Toggle flips the theme, persists the new value and publishes it.
func (s *Store) Toggle() (Theme, error) {
	next := Light
	if s.Current() == Light {
		next = Dark
	}
	return next, s.Set(next)
}

// Set applies, persists and publishes an explicit theme choice.
func (s *Store) Set(t Theme) error {
	if t != Light && t != Dark {
		return fmt.Errorf("invalid theme %q", t)
	}
	if err := s.kv.Set(themeKey, string(t)); err != nil {
		return fmt.Errorf("failed to persist theme: %w", err)
	}
	s.set(t)
	return nil
}

func parse(value string) (Theme, bool) {
	switch Theme(value) {
	case Light, Dark:
		return Theme(value), true
	}
	return Light, false
}

func (s *Store) set(t Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.theme = t
	if s.applier != nil {
		s.applier.Apply(t)
	}
	for _, fn := range s.observers {
		fn(t)
	}
}
