// Package main содержит точку входа консольного приложения проката фильмов.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/magabrotheeeer/movie-rental/internal/app/rental"
	"github.com/magabrotheeeer/movie-rental/internal/config"
	"github.com/magabrotheeeer/movie-rental/internal/lib/sl"
)

func main() {
	cfg := config.MustLoad()

	var logOut io.Writer = os.Stderr
	if cfg.LogOutput == "discard" {
		logOut = io.Discard
	}
	logger := sl.New(cfg.Env, cfg.LogLevel, logOut)

	logger.Debug("config loaded", slog.String("env", cfg.Env), slog.String("log_level", cfg.LogLevel))

	app := rental.New(os.Stdin, os.Stdout, logger)
	if err := app.Run(context.Background()); err != nil {
		logger.Error("app stopped with error", sl.Err(err))
		os.Exit(1)
	}
}
