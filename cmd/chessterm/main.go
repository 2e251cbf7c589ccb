package main

import (
	"errors"
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/qnkhuat/chessterm/pkg"
	"github.com/qnkhuat/chessterm/pkg/gui"
	"golang.org/x/term"
)

var ErrNotTerminal = errors.New("stdin is not a terminal")

func main() {
	if err := run(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "chessterm: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := pkg.DefaultConfig()
	logPath := flag.String("log", "./log", "path to log file")
	flag.StringVar(&cfg.Title, "title", cfg.Title, "title shown above the board")
	flag.StringVar(&cfg.FEN, "fen", cfg.FEN, "starting position in FEN, standard position when empty")
	flag.StringVar(&cfg.Promotion, "promote", cfg.Promotion, "piece pawns promote to: q, r, b or n")
	flag.StringVar(&cfg.ThemeName, "theme", cfg.ThemeName, "name of the color theme")
	flag.StringVar(&cfg.ThemesPath, "themes", cfg.ThemesPath, "JSON file with extra themes")
	flag.BoolVar(&cfg.Flip, "flip", cfg.Flip, "show black at the bottom")
	flag.DurationVar(&cfg.NotifyDelay, "delay", cfg.NotifyDelay, "delay before a move is announced")
	flag.DurationVar(&cfg.ToastDuration, "toast", cfg.ToastDuration, "how long notifications stay on screen")
	flag.DurationVar(&cfg.WarnDuration, "toast-warn", cfg.WarnDuration, "how long warnings stay on screen")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrNotTerminal
	}

	logFile, err := pkg.InitLog(*logPath, "CLIENT")
	if err != nil {
		return err
	}
	defer logFile.Close()

	theme, err := gui.FindTheme(cfg.ThemeName, cfg.ThemesPath)
	if err != nil {
		return err
	}

	log.Info("new client", "title", cfg.Title, "theme", theme.Name)
	cl, err := pkg.NewClient(cfg, theme)
	if err != nil {
		return err
	}
	return cl.Run()
}
