package dash

import (
	"slices"

	"github.com/midbel/canvaschart"
	"github.com/sirupsen/logrus"
)

// Panel is the host of one chart. It decides when to redraw: only when the
// series content or the chart kind changed since the last frame.
type Panel struct {
	Name string

	config  canvaschart.Config
	manager *canvaschart.Manager

	last  canvaschart.Series
	kind  canvaschart.Kind
	drawn bool

	metrics *Metrics
	logger  logrus.FieldLogger
}

func NewPanel(name string, cfg canvaschart.Config, acquire canvaschart.Acquirer, metrics *Metrics, logger logrus.FieldLogger) *Panel {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Panel{
		Name:    name,
		config:  cfg,
		manager: canvaschart.NewManager(acquire),
		metrics: metrics,
		logger:  logger.WithField("panel", name),
	}
}

func (p *Panel) Config() canvaschart.Config {
	return p.config
}

func (p *Panel) Surface() canvaschart.Surface {
	return p.manager.Surface()
}

// Update redraws the panel when series differs from the last drawn one. It
// reports whether a new frame was drawn.
func (p *Panel) Update(series canvaschart.Series) (bool, error) {
	if p.drawn && p.kind == p.config.Type && slices.Equal(p.last, series) {
		p.metrics.skipped(p.Name)
		return false, nil
	}
	return p.redraw(series)
}

// SetKind switches the chart kind and redraws the last series if needed.
func (p *Panel) SetKind(kind canvaschart.Kind) (bool, error) {
	p.config.Type = kind
	if !p.drawn || p.kind == kind {
		return false, nil
	}
	return p.redraw(p.last)
}

func (p *Panel) redraw(series canvaschart.Series) (bool, error) {
	if err := p.manager.Draw(p.config, series); err != nil {
		p.metrics.unavailable(p.Name)
		p.logger.WithError(err).Warn("chart not drawn")
		return false, err
	}
	p.last = slices.Clone(series)
	p.kind = p.config.Type
	p.drawn = true
	p.metrics.rendered(p.Name)
	p.logger.WithFields(logrus.Fields{
		"kind":   p.kind,
		"points": len(series),
	}).Debug("chart redrawn")
	return true, nil
}
