// Package service turns the static route declarations into a running
// listener. Every frontend binary shares this bootstrap and differs only in
// its [ServeFunc].
package service

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"

	"github.com/jinwei/api_demo/internal/api"
	"github.com/jinwei/api_demo/internal/config"
	"github.com/jinwei/api_demo/internal/logging"
)

var (
	// ErrListen is returned when the listen address cannot be bound.
	ErrListen = errors.New("failed to listen")
	// ErrTable is returned when the route table cannot be rendered.
	ErrTable = errors.New("failed to build route table")
	// ErrServe is returned when the server stops with an error.
	ErrServe = errors.New("server failed")
)

// ServeFunc serves table on ln until the process exits.
type ServeFunc func(ln net.Listener, table *api.Table, cfg config.Config, logger *slog.Logger) error

// Main runs the frontend named stack and exits with status 1 on failure.
// It is intended to be called directly from a program's main function.
func Main(stack string, serve ServeFunc) {
	if err := Run(config.FromArgs(os.Args[1:]), os.Stderr, stack, serve); err != nil {
		os.Exit(1)
	}
}

// Run binds cfg.Addr, builds the route table, logs the compression mode and
// hands everything to serve. Errors are logged to stderr before returning.
func Run(cfg config.Config, stderr io.Writer, stack string, serve ServeFunc) error {
	logger := logging.New(stderr).With("stack", stack)

	err := run(cfg, logger, serve)
	if err != nil {
		logger.Error("fatal", "err", err)
	}
	return err
}

func run(cfg config.Config, logger *slog.Logger, serve ServeFunc) error {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrListen, err)
	}
	defer ln.Close()

	table, err := api.NewTable()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTable, err)
	}

	if cfg.Compression {
		logger.Info("Using compressed responses!", "mode", cfg.Mode())
	} else {
		logger.Info("Not using compressed responses!", "mode", cfg.Mode())
	}
	logger.Info("listening", "addr", ln.Addr().String())

	if err := serve(ln, table, cfg, logger); err != nil {
		return fmt.Errorf("%w: %v", ErrServe, err)
	}
	return nil
}
