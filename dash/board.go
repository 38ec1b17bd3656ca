package dash

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/midbel/canvaschart"
	"github.com/midbel/canvaschart/decode"
	"github.com/midbel/canvaschart/raster"
	"github.com/midbel/canvaschart/vector"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Source gives the current data of a panel.
type Source func() (canvaschart.Series, error)

// Output is called with the surface of a panel after each redraw.
type Output func(canvaschart.Surface) error

type Entry struct {
	Panel  *Panel
	Source Source
	Output Output
	Every  time.Duration
}

type Board struct {
	entries []Entry
	metrics *Metrics
	logger  logrus.FieldLogger
}

func NewBoard(metrics *Metrics, logger logrus.FieldLogger) *Board {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Board{
		metrics: metrics,
		logger:  logger,
	}
}

// FromConfig builds a board whose panels read their source file and write
// their output file on every redraw.
func FromConfig(cfg decode.Board, metrics *Metrics, logger logrus.FieldLogger) (*Board, error) {
	b := NewBoard(metrics, logger)
	for i, p := range cfg.Panels {
		chart, err := p.Chart()
		if err != nil {
			return nil, err
		}
		if p.Color == "" {
			chart.Style = canvaschart.StyleFrom(canvaschart.Dashboard.At(i))
		}
		name := p.Title
		if name == "" {
			name = fmt.Sprintf("panel-%d", i)
		}
		var (
			acquire canvaschart.Acquirer
			output  Output
		)
		switch p.Format() {
		case "svg":
			acquire, output = vectorOutput(chart, p.Output)
		default:
			acquire, output = rasterOutput(chart, p.Output)
		}
		b.Add(Entry{
			Panel:  NewPanel(name, chart, acquire, b.metrics, b.logger),
			Source: fileSource(p.Source, p.Cols()),
			Output: output,
			Every:  p.Every(),
		})
	}
	return b, nil
}

func (b *Board) Add(e Entry) {
	if e.Every <= 0 {
		e.Every = decode.DefaultInterval
	}
	b.entries = append(b.entries, e)
}

func (b *Board) Len() int {
	return len(b.entries)
}

// Refresh polls every panel once.
func (b *Board) Refresh() {
	for _, e := range b.entries {
		b.refresh(e)
	}
}

// Run polls each panel at its own interval until ctx is done. Panels do not
// share surfaces so each one runs in its own goroutine.
func (b *Board) Run(ctx context.Context) error {
	grp, ctx := errgroup.WithContext(ctx)
	for _, e := range b.entries {
		e := e
		grp.Go(func() error {
			b.poll(ctx, e)
			return nil
		})
	}
	return grp.Wait()
}

func (b *Board) poll(ctx context.Context, e Entry) {
	tick := time.NewTicker(e.Every)
	defer tick.Stop()
	for {
		b.refresh(e)
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
		}
	}
}

func (b *Board) refresh(e Entry) {
	logger := b.logger.WithField("panel", e.Panel.Name)
	series, err := e.Source()
	if err != nil {
		b.metrics.failed(e.Panel.Name)
		logger.WithError(err).Warn("fail to read data, keeping previous frame")
		return
	}
	changed, err := e.Panel.Update(series)
	if err != nil || !changed || e.Output == nil {
		return
	}
	if err := e.Output(e.Panel.Surface()); err != nil {
		logger.WithError(err).Error("fail to write chart")
	}
}

func fileSource(file string, cols decode.Columns) Source {
	return func() (canvaschart.Series, error) {
		return decode.ReadFile(file, cols)
	}
}

func rasterOutput(cfg canvaschart.Config, file string) (canvaschart.Acquirer, Output) {
	acquire := func() (canvaschart.Surface, error) {
		if cfg.Width <= 0 || cfg.Height <= 0 {
			return nil, fmt.Errorf("invalid surface size %dx%d", cfg.Width, cfg.Height)
		}
		return raster.New(cfg.Width, cfg.Height), nil
	}
	output := func(s canvaschart.Surface) error {
		rs, ok := s.(*raster.Surface)
		if !ok || file == "" {
			return nil
		}
		return rs.SavePNG(file)
	}
	return acquire, output
}

func vectorOutput(cfg canvaschart.Config, file string) (canvaschart.Acquirer, Output) {
	acquire := func() (canvaschart.Surface, error) {
		if cfg.Width <= 0 || cfg.Height <= 0 {
			return nil, fmt.Errorf("invalid surface size %dx%d", cfg.Width, cfg.Height)
		}
		return vector.New(cfg.Width, cfg.Height), nil
	}
	output := func(s canvaschart.Surface) error {
		vs, ok := s.(*vector.Surface)
		if !ok || file == "" {
			return nil
		}
		w, err := os.Create(file)
		if err != nil {
			return err
		}
		defer w.Close()
		return vs.Render(w)
	}
	return acquire, output
}
