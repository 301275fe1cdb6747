package main

import (
	"context"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/Garsondee/Lanes/internal/game"
)

func main() {
	def := game.DefaultConfig()
	cmd := &cli.Command{
		Name:  "lanes",
		Usage: "slide the coloured pieces into their lanes",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "tps", Value: def.TPS, Usage: "fixed updates per second", Sources: cli.EnvVars("PUZZLE_TPS")},
			&cli.FloatFlag{Name: "scale", Value: def.Scale, Usage: "window scale", Sources: cli.EnvVars("PUZZLE_SCALE")},
			&cli.StringFlag{Name: "title", Value: def.Title, Usage: "window title", Sources: cli.EnvVars("PUZZLE_TITLE")},
			&cli.StringFlag{Name: "log-level", Value: def.LogLevel, Usage: "panic|fatal|error|warn|info|debug|trace", Sources: cli.EnvVars("PUZZLE_LOG_LEVEL")},
			&cli.BoolFlag{Name: "debug", Usage: "show the tick overlay (toggle with F3)", Sources: cli.EnvVars("PUZZLE_DEBUG")},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	cfg := game.Config{
		TPS:      cmd.Int("tps"),
		Scale:    cmd.Float("scale"),
		Title:    cmd.String("title"),
		LogLevel: cmd.String("log-level"),
		Debug:    cmd.Bool("debug"),
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(cfg.Level())

	g, err := game.New(cfg, log.NewEntry(log.StandardLogger()))
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.WindowSize())
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}
