package main

import (
	"errors"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/gliderlabs/ssh"
	"github.com/qnkhuat/chessterm/pkg"
)

func main() {
	if err := run(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg pkg.ServerConfig
	logPath := flag.String("log", "./log", "path to log file")
	clientArgs := flag.String("client-args", "", "space separated flags passed to every client")
	flag.StringVar(&cfg.Addr, "addr", pkg.SshPort, "address to listen on")
	flag.StringVar(&cfg.HostKeyPath, "hostkey", "", "PEM host key, generated when empty")
	flag.StringVar(&cfg.ClientPath, "client", "chessterm", "path to the chessterm binary")
	flag.DurationVar(&cfg.IdleTimeout, "idle", pkg.ServerIdleTimeout, "disconnect idle sessions after")
	flag.Parse()
	cfg.ClientArgs = strings.Fields(*clientArgs)

	logFile, err := pkg.InitLog(*logPath, "SERVER")
	if err != nil {
		return err
	}
	defer logFile.Close()

	s, err := pkg.NewServer(cfg)
	if err != nil {
		return err
	}

	errc := make(chan error, 1)
	go func() {
		errc <- s.ListenAndServe()
	}()
	log.Info("server started", "addr", cfg.Addr)
	color.Green("Listening at %s, connect with: ssh -p %s localhost", cfg.Addr, port(cfg.Addr))

	// Wait for teminate signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errc:
		return err
	case sig := <-sigc:
		log.Info("shutting down", "signal", sig)
	}

	if err := s.Close(); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}
	return nil
}

func port(addr string) string {
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		return addr[i+1:]
	}
	return addr
}
