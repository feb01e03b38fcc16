// Command twitcheroo-check verifies Twitch credentials from the
// environment. It obtains an app access token via the client credentials
// flow and reports the client ID and granted scopes, exiting non-zero when
// the platform rejects the credentials.
package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Gaborade/twitcheroo"
)

const checkTimeout = 30 * time.Second

func main() {
	cfg, err := twitcheroo.ConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg.LogLevel, cfg.LogFormat)

	creds, err := twitcheroo.NewClientCredentials(cfg.ClientID, cfg.ClientSecret, cfg.Scopes...)
	if err != nil {
		slog.Error("Failed to create credentials", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	if _, err := creds.Token(ctx); err != nil {
		slog.Error("Credential check failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Credentials verified",
		"client_id", creds.ClientID(),
		"scopes", strings.Join(creds.Scopes(), " "),
	)
}

func initLogger(level, format string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
