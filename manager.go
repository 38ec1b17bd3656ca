package canvaschart

import (
	"errors"
	"fmt"
)

var ErrUnavailable = errors.New("surface unavailable")

type State int

const (
	Uninitialized State = iota
	Ready
)

func (s State) String() string {
	if s == Ready {
		return "ready"
	}
	return "uninitialized"
}

// Acquirer gives access to the drawing surface of the host.
type Acquirer func() (Surface, error)

// Manager draws into a surface acquired lazily from its host. Every call to
// Draw redraws the whole surface. A Manager is not safe for concurrent use:
// the host serializes redraws.
type Manager struct {
	acquire Acquirer
	surface Surface
}

func NewManager(acquire Acquirer) *Manager {
	return &Manager{
		acquire: acquire,
	}
}

// Attach returns a Manager that is already Ready with s.
func Attach(s Surface) *Manager {
	m := NewManager(func() (Surface, error) {
		return s, nil
	})
	m.surface = s
	return m
}

func (m *Manager) State() State {
	if isNil(m.surface) {
		return Uninitialized
	}
	return Ready
}

func (m *Manager) Surface() Surface {
	return m.surface
}

// Draw renders series on the managed surface. When the surface can not be
// acquired nothing is drawn and the returned error wraps ErrUnavailable.
func (m *Manager) Draw(cfg Config, series Series) error {
	if err := m.init(); err != nil {
		return err
	}
	Render(m.surface, cfg, series)
	return nil
}

func (m *Manager) init() error {
	if !isNil(m.surface) {
		return nil
	}
	if m.acquire == nil {
		return ErrUnavailable
	}
	s, err := m.acquire()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	if isNil(s) {
		return ErrUnavailable
	}
	m.surface = s
	return nil
}
