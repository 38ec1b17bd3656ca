package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/midbel/canvaschart"
	"github.com/midbel/canvaschart/dash"
	"github.com/midbel/canvaschart/decode"
	"github.com/midbel/canvaschart/raster"
	"github.com/midbel/canvaschart/vector"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := App().Run(os.Args); err != nil {
		logrus.WithError(err).Error("draw failed")
		os.Exit(1)
	}
}

func App() *cli.App {
	return &cli.App{
		Name:  "draw",
		Usage: "render line and bar charts of dashboard series",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Before: func(ctx *cli.Context) error {
			logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
			if ctx.Bool("verbose") {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			renderCmd(),
			watchCmd(),
		},
	}
}

func renderCmd() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "render one chart per input file",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "type",
				Usage: "chart type (line, bar)",
				Value: "line",
			},
			&cli.StringFlag{
				Name:  "title",
				Usage: "chart title",
			},
			&cli.IntFlag{
				Name:  "width",
				Usage: "chart width",
				Value: canvaschart.DefaultWidth,
			},
			&cli.IntFlag{
				Name:  "height",
				Usage: "chart height",
				Value: canvaschart.DefaultHeight,
			},
			&cli.IntFlag{
				Name:  "padding",
				Usage: "inset of the chart area",
				Value: canvaschart.DefaultPadding,
			},
			&cli.StringFlag{
				Name:  "scale",
				Usage: "normalization of bars (compat, unified)",
				Value: "compat",
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: "accent color",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format (png, svg)",
				Value: "png",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "output file, only with a single input",
			},
			&cli.StringFlag{
				Name:  "dir",
				Usage: "output directory",
				Value: ".",
			},
		},
		Action: runRender,
	}
}

func watchCmd() *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "poll the sources of a board file and redraw its panels on change",
		ArgsUsage: "BOARD",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "metrics",
				Usage: "address to expose prometheus metrics on",
			},
		},
		Action: runWatch,
	}
}

func runRender(ctx *cli.Context) error {
	files := ctx.Args().Slice()
	if len(files) == 0 {
		return fmt.Errorf("no input files given")
	}
	if ctx.String("output") != "" && len(files) > 1 {
		return fmt.Errorf("output can only be set with a single input")
	}
	panel := decode.Panel{
		Title:   ctx.String("title"),
		Type:    ctx.String("type"),
		Width:   ctx.Int("width"),
		Height:  ctx.Int("height"),
		Padding: ctx.Int("padding"),
		Scale:   ctx.String("scale"),
		Color:   ctx.String("color"),
	}
	cfg, err := panel.Chart()
	if err != nil {
		return err
	}
	format := strings.ToLower(ctx.String("format"))
	if format != "png" && format != "svg" {
		return fmt.Errorf("%s: %w", format, decode.ErrFormat)
	}

	var grp errgroup.Group
	for _, f := range files {
		var (
			file = f
			out  = ctx.String("output")
		)
		if out == "" {
			out = filepath.Join(ctx.String("dir"), getIdent(file)+"."+format)
		}
		grp.Go(func() error {
			return renderFile(file, out, format, cfg)
		})
	}
	return grp.Wait()
}

func renderFile(file, out, format string, cfg canvaschart.Config) error {
	series, err := decode.ReadFile(file, decode.DefaultColumns)
	if err != nil {
		return err
	}
	if cfg.Title == "" {
		cfg.Title = getIdent(file)
	}
	logger := logrus.WithFields(logrus.Fields{
		"input":  file,
		"output": out,
		"points": len(series),
	})
	switch format {
	case "svg":
		s := vector.New(cfg.Width, cfg.Height)
		canvaschart.Render(s, cfg, series)
		w, err := os.Create(out)
		if err != nil {
			return err
		}
		defer w.Close()
		err = s.Render(w)
		if err == nil {
			logger.Info("chart rendered")
		}
		return err
	default:
		s := raster.New(cfg.Width, cfg.Height)
		canvaschart.Render(s, cfg, series)
		if err := s.SavePNG(out); err != nil {
			return err
		}
		logger.Info("chart rendered")
		return nil
	}
}

func runWatch(ctx *cli.Context) error {
	file := ctx.Args().First()
	if file == "" {
		return fmt.Errorf("no board file given")
	}
	cfg, err := decode.LoadConfigFile(file)
	if err != nil {
		return err
	}
	var (
		reg     = prometheus.NewRegistry()
		metrics = dash.NewMetrics(reg)
		logger  = logrus.WithField("board", file)
	)
	board, err := dash.FromConfig(cfg, metrics, logger)
	if err != nil {
		return err
	}
	base, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	grp, base := errgroup.WithContext(base)
	if addr := ctx.String("metrics"); addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		svr := &http.Server{
			Addr:    addr,
			Handler: mux,
		}
		grp.Go(func() error {
			err := svr.ListenAndServe()
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		})
		grp.Go(func() error {
			<-base.Done()
			return svr.Close()
		})
	}
	logger.WithField("panels", board.Len()).Info("watching board")
	grp.Go(func() error {
		return board.Run(base)
	})
	return grp.Wait()
}

func getIdent(file string) string {
	file = filepath.Base(file)
	for {
		e := filepath.Ext(file)
		if e == "" {
			break
		}
		file = strings.TrimSuffix(file, e)
	}
	return file
}
