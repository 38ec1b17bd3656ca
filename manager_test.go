package canvaschart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerUnavailable(t *testing.T) {
	var calls int
	m := NewManager(func() (Surface, error) {
		calls++
		return nil, errors.New("no context")
	})
	assert.Equal(t, Uninitialized, m.State())

	err := m.Draw(DefaultConfig(), makeSeries(1, 2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.Equal(t, Uninitialized, m.State())

	m.Draw(DefaultConfig(), makeSeries(1, 2))
	assert.Equal(t, 2, calls)
}

func TestManagerNilAcquirer(t *testing.T) {
	var m Manager
	assert.ErrorIs(t, m.Draw(DefaultConfig(), nil), ErrUnavailable)
}

func TestManagerTypedNilSurface(t *testing.T) {
	var (
		rec   *Recorder
		calls int
	)
	m := NewManager(func() (Surface, error) {
		calls++
		return rec, nil
	})
	assert.NotPanics(t, func() {
		assert.ErrorIs(t, m.Draw(DefaultConfig(), makeSeries(1, 2)), ErrUnavailable)
		assert.ErrorIs(t, m.Draw(DefaultConfig(), makeSeries(1, 2)), ErrUnavailable)
	})
	assert.Equal(t, Uninitialized, m.State())
	assert.Equal(t, 2, calls)

	a := Attach(rec)
	assert.Equal(t, Uninitialized, a.State())
	assert.ErrorIs(t, a.Draw(DefaultConfig(), nil), ErrUnavailable)
}

func TestManagerDraw(t *testing.T) {
	var (
		rec   = NewRecorder()
		calls int
	)
	m := NewManager(func() (Surface, error) {
		calls++
		return rec, nil
	})
	require.NoError(t, m.Draw(DefaultConfig(), makeSeries(1, 2, 3)))
	assert.Equal(t, Ready, m.State())

	cfg := DefaultConfig()
	cfg.Type = KindBar
	require.NoError(t, m.Draw(cfg, makeSeries(1, 2, 3)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, rec.Count("clearRect"))
	assert.Equal(t, 6, rec.Count("rect"))
}

func TestAttach(t *testing.T) {
	rec := NewRecorder()
	m := Attach(rec)
	assert.Equal(t, Ready, m.State())
	assert.Same(t, rec, m.Surface())
}
