package decode

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/midbel/canvaschart"
	"go.yaml.in/yaml/v4"
)

const DefaultInterval = 10 * time.Second

// Board is the file format of a dashboard: defaults shared by every panel
// and the list of panels.
type Board struct {
	Defaults Panel   `yaml:"defaults"`
	Panels   []Panel `yaml:"panels"`
}

type Panel struct {
	Title    string        `yaml:"title"`
	Type     string        `yaml:"type"`
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	Padding  int           `yaml:"padding"`
	Scale    string        `yaml:"scale"`
	Color    string        `yaml:"color"`
	Source   string        `yaml:"source"`
	Output   string        `yaml:"output"`
	Interval time.Duration `yaml:"interval"`
	Columns  []int         `yaml:"columns"`
}

func LoadConfig(r io.Reader) (Board, error) {
	var b Board
	if err := yaml.NewDecoder(r).Decode(&b); err != nil && err != io.EOF {
		return b, DecodeError{
			Message: err.Error(),
		}
	}
	for i := range b.Panels {
		b.Panels[i] = b.Panels[i].merge(b.Defaults)
	}
	return b, nil
}

func LoadConfigFile(file string) (Board, error) {
	r, err := os.Open(file)
	if err != nil {
		return Board{}, err
	}
	defer r.Close()

	b, err := LoadConfig(r)
	if de, ok := err.(DecodeError); ok {
		de.File = file
		err = de
	}
	if err != nil {
		return b, err
	}
	dir := filepath.Dir(file)
	for i := range b.Panels {
		b.Panels[i].Source = resolve(dir, b.Panels[i].Source)
		b.Panels[i].Output = resolve(dir, b.Panels[i].Output)
	}
	return b, nil
}

func (p Panel) merge(def Panel) Panel {
	if p.Type == "" {
		p.Type = def.Type
	}
	if p.Width == 0 {
		p.Width = def.Width
	}
	if p.Height == 0 {
		p.Height = def.Height
	}
	if p.Padding == 0 {
		p.Padding = def.Padding
	}
	if p.Scale == "" {
		p.Scale = def.Scale
	}
	if p.Color == "" {
		p.Color = def.Color
	}
	if p.Interval == 0 {
		p.Interval = def.Interval
	}
	if len(p.Columns) == 0 {
		p.Columns = def.Columns
	}
	return p
}

// Chart converts the panel into the configuration of the renderer. Unset
// values fall back to canvaschart.DefaultConfig.
func (p Panel) Chart() (canvaschart.Config, error) {
	cfg := canvaschart.DefaultConfig()
	cfg.Title = p.Title

	kind, err := canvaschart.ParseKind(p.Type)
	if err != nil {
		return cfg, p.optionError("type", p.Type)
	}
	cfg.Type = kind

	scale, err := canvaschart.ParseScale(p.Scale)
	if err != nil {
		return cfg, p.optionError("scale", p.Scale)
	}
	cfg.Scale = scale

	if p.Width > 0 {
		cfg.Width = p.Width
	}
	if p.Height > 0 {
		cfg.Height = p.Height
	}
	if p.Padding > 0 {
		cfg.Padding = p.Padding
	}
	if 2*cfg.Padding >= cfg.Width || 2*cfg.Padding >= cfg.Height {
		return cfg, p.optionError("padding", "too large for the chart size")
	}
	if p.Color != "" {
		c, err := canvaschart.ParseColor(p.Color)
		if err != nil {
			return cfg, p.optionError("color", p.Color)
		}
		cfg.Style = canvaschart.StyleFrom(c)
	}
	return cfg, nil
}

func (p Panel) Every() time.Duration {
	if p.Interval <= 0 {
		return DefaultInterval
	}
	return p.Interval
}

func (p Panel) Cols() Columns {
	cols := DefaultColumns
	switch len(p.Columns) {
	case 0:
	case 1:
		cols.Label = -1
		cols.Value = p.Columns[0]
	default:
		cols.Label = p.Columns[0]
		cols.Value = p.Columns[1]
	}
	return cols
}

// Format gives the output format of the panel from its output file.
func (p Panel) Format() string {
	if strings.EqualFold(filepath.Ext(p.Output), ".svg") {
		return "svg"
	}
	return "png"
}

func (p Panel) optionError(option, value string) error {
	return OptionError{
		Option: option,
		Panel:  p.Title,
		Value:  value,
	}
}

func resolve(dir, file string) string {
	if file == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}
