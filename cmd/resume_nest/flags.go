package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-nest/internal/client"
	"github.com/jonathan/resume-nest/internal/config"
	"github.com/jonathan/resume-nest/internal/export"
	"github.com/jonathan/resume-nest/internal/llm"
	"github.com/jonathan/resume-nest/internal/schemas"
	"github.com/jonathan/resume-nest/internal/types"
)

// readInput reads path, or stdin when path is "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return raw, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return raw, nil
}

// loadResume reads, validates and decodes a resume data document.
func loadResume(path string, stdin io.Reader) (types.ResumeData, error) {
	raw, err := readInput(path, stdin)
	if err != nil {
		return types.ResumeData{}, err
	}
	if err := schemas.ValidateResume(raw); err != nil {
		return types.ResumeData{}, fmt.Errorf("invalid resume %s: %w", path, err)
	}

	var data types.ResumeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return types.ResumeData{}, fmt.Errorf("failed to decode resume %s: %w", path, err)
	}
	data.Normalize()
	return data, nil
}

// parseTemplates resolves a --template value. "all" selects every template.
func parseTemplates(name string) ([]types.TemplateType, error) {
	if name == "all" {
		return types.AllTemplates(), nil
	}
	if name == "" {
		return []types.TemplateType{types.DefaultTemplate}, nil
	}
	t, err := types.ParseTemplateType(name)
	if err != nil {
		return nil, err
	}
	return []types.TemplateType{t}, nil
}

// writeOutput writes raw to path, or to stdout when path is "" or "-".
func writeOutput(path string, raw []byte, stdout io.Writer) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(raw)
		return err
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// newTransformer builds the text transformer for cfg. Without an API key
// every transform returns its input unchanged.
func newTransformer(ctx context.Context, cfg *config.Config, model string, logger *slog.Logger) (*llm.Transformer, func(), error) {
	provider, err := llm.ParseProvider(cfg.AI.Provider)
	if err != nil {
		return nil, nil, err
	}

	llmConfig := llm.ConfigFor(provider)
	if model == "" {
		model = cfg.AI.Model
	}
	if model != "" {
		llmConfig = llmConfig.WithModelOverride(model)
	}

	apiKey := cfg.AIKey()
	if apiKey == "" {
		logger.Warn("no AI API key configured, text actions will return their input", slog.String("provider", string(provider)))
		return llm.NewTransformer(nil, cfg.AI.Timeout, logger), func() {}, nil
	}

	client, err := llm.NewClient(ctx, llmConfig, apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Warn("failed to close LLM client", slog.String("error", err.Error()))
		}
	}
	return llm.NewTransformer(client, cfg.AI.Timeout, logger), closeFn, nil
}

// tokenEnv holds the bearer token used by authenticated --remote calls.
const tokenEnv = "RESUME_NEST_TOKEN"

// newRemote returns a client for a running server and a session from tokenEnv.
func newRemote(baseURL string) (*client.Client, *client.Session) {
	return client.New(baseURL, nil), client.NewSession(os.Getenv(tokenEnv), nil)
}

// newExportPipeline builds the print pipeline. The printer reports itself
// unavailable when no browser can be found.
func newExportPipeline(cfg *config.Config, logger *slog.Logger) *export.Pipeline {
	printer := export.NewChromePrinter(cfg.Export.ChromePath, cfg.Export.Timeout)
	if !printer.Available() {
		logger.Warn("no headless browser found, PDF export is disabled")
	}
	return export.NewPipeline(export.NewSurface(), printer, logger)
}

// commandContext returns the command's context, or Background when it runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
