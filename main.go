package main

import (
	"flag"
	"os"

	"ebook-share/initialize"
	"ebook-share/server"
)

func main() {
	configPath := flag.String("config", "", "Optional YAML config file (environment is authoritative)")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		logger := initialize.NewLogger()
		logger.Error().Err(err).Msg("startup failed")
		os.Exit(1)
	}

	app.Logger.Info().Str("host", app.Cfg.HTTP.Host).Int("port", app.Cfg.HTTP.Port).Msg("listening")
	if err := server.StartHTTPServer(app.Cfg.HTTP.Host, app.Cfg.HTTP.Port, app.Router); err != nil {
		app.Logger.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
