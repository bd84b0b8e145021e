package main

import (
	"log"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"keystone/internal/backend"
	"keystone/internal/config"
	"keystone/internal/filetypes"
	"keystone/internal/service/chathistory"
	serviceKnowledge "keystone/internal/service/knowledge"
	"keystone/internal/tui"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging. The TUI owns the terminal, so logs go to a
	// timestamped file instead of stdout.
	logFile, err := config.SetupLogFile(cfg.LogDir, cfg.LogMaxFiles)
	if err != nil {
		log.Fatalf("Failed to create log file: %v", err)
	}
	defer logFile.Close()

	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("workspace starting",
		"environment", cfg.Environment,
		"backend_url", cfg.BackendURL,
	)

	// Backend collaborator
	client := backend.NewClient(cfg, logger)

	// Services
	treeService := serviceKnowledge.NewTreeService(client, logger)
	directoryService := serviceKnowledge.NewDirectoryService(client, logger)

	// Chat history index (local file under the user config dir)
	historyStore, err := chathistory.NewStore(logger)
	if err != nil {
		log.Fatalf("Failed to open chat history store: %v", err)
	}

	// File type display registry
	typeRegistry, err := filetypes.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load file type registry: %v", err)
	}

	logger.Info("services initialized")

	// Run the workspace UI
	model := tui.New(treeService, directoryService, client, historyStore, typeRegistry, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("Workspace exited with error: %v", err)
	}
}
