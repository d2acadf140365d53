package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/aryribeiro/gitapp/internal/catalog"
	"github.com/aryribeiro/gitapp/internal/config"
	"github.com/aryribeiro/gitapp/internal/logging"
	"github.com/aryribeiro/gitapp/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	entries, err := loadCatalog(cfg)
	if err != nil {
		// Any load error is fatal: surface the message and start no UI.
		logger.Error("catalog load failed", zap.String("source", cfg.Catalog.Source), zap.Error(err))
		fmt.Fprintln(os.Stderr, loadErrorMessage(cfg, err))
		os.Exit(1)
	}
	logger.Info("catalog loaded",
		zap.Int("commands", len(entries)),
		zap.String("source", cfg.Catalog.Source),
	)

	p := tea.NewProgram(tui.New(cfg, logger, entries), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("tui", zap.Error(err))
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadCatalog(cfg config.Config) ([]catalog.Entry, error) {
	if cfg.Catalog.Source == "sqlite" {
		return catalog.LoadSQLite(cfg.Catalog.SQLitePath)
	}
	return catalog.Load(cfg.Catalog.Path)
}

// loadErrorMessage maps the catalog error taxonomy to the user-facing
// Portuguese messages of the original app.
func loadErrorMessage(cfg config.Config, err error) string {
	var schemaErr *catalog.SchemaError
	var parseErr *catalog.ParseError
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return fmt.Sprintf("❌ Arquivo '%s' não encontrado no diretório atual.", cfg.Catalog.Path)
	case errors.As(err, &schemaErr):
		return "❌ Estrutura do CSV inválida. Colunas necessárias não encontradas."
	case errors.As(err, &parseErr):
		return fmt.Sprintf("❌ Erro ao carregar dados: %v", parseErr)
	default:
		return fmt.Sprintf("❌ Erro ao carregar dados: %v", err)
	}
}
