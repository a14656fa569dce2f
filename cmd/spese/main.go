package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"spese-screen/internal/cli"
	"spese-screen/internal/ledger"
	"spese-screen/internal/log"
	"spese-screen/internal/services"
	"spese-screen/internal/tui"
)

func main() {
	cli.LoadEnvFile()

	bootstrap := cli.BootstrapLogger()
	cfg := cli.LoadAndValidateConfig(bootstrap)

	logger, closer := cli.MustSetupLogger(bootstrap, cfg)
	defer closer.Close()

	svc := services.NewExpenseService(ledger.New(), logger)
	model := tui.New(svc, tui.Options{
		DarkMode: cfg.DarkMode(),
		Logger:   logger,
	})

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	logger.Info("Starting expense screen",
		log.FieldOperation, log.OpStartup,
		"theme", cfg.Theme,
		"log_level", cfg.LogLevel)

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		logger.Error("Screen exited with error", log.FieldError, err)
		bootstrap.Error("Screen exited with error", log.FieldError, err)
		closer.Close()
		os.Exit(1)
	}

	logger.Info("Expense screen stopped", log.FieldOperation, log.OpShutdown)
}
