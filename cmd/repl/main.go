package main

import (
	"fmt"
	"os"

	"Calcline/helpers"
	"Calcline/internal/config"
	"Calcline/internal/interpreter"
	l "Calcline/internal/logger"
	"Calcline/internal/server"
)

func main() {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	replLogger := l.New("repl", cfg.LogDir, cfg.Level())
	l.New("interpreter", cfg.LogDir, cfg.Level())

	go server.StartServer(cfg)
	helpers.WaitForServer("http://localhost" + cfg.ListenAddr)

	replLogger.Info("Starting Calcline server")
	interpreter.Repl()
	replLogger.Info("Shutting down Calcline server")
}
