package llm

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jonathan/resume-nest/internal/parsing"
	"github.com/jonathan/resume-nest/internal/types"
)

// DefaultTimeout bounds one provider call.
const DefaultTimeout = 30 * time.Second

// Transformer applies AI text actions. It never fails: every rejected call,
// provider error, timeout or empty reply yields the original text unchanged.
type Transformer struct {
	client  Client
	timeout time.Duration
	logger  *slog.Logger
}

// NewTransformer creates a Transformer. A nil client makes every call a no-op.
func NewTransformer(client Client, timeout time.Duration, logger *slog.Logger) *Transformer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Transformer{client: client, timeout: timeout, logger: logger}
}

// Enabled reports whether a provider client is configured.
func (t *Transformer) Enabled() bool {
	return t != nil && t.client != nil
}

// Transform returns the result of applying action to text, or text itself on any failure.
// FIX_SPELLING and ENHANCE_TONE on blank text are rejected without calling the provider.
func (t *Transformer) Transform(ctx context.Context, text string, action types.AIAction, background string) string {
	if !action.Valid() {
		t.logger.Warn("ai transform rejected, unknown action", slog.String("action", string(action)))
		return text
	}
	if action.RequiresText() && parsing.IsBlank(text) {
		return text
	}
	if action == types.ActionGenerateSummary && parsing.IsBlank(text) && parsing.IsBlank(background) {
		return text
	}
	if !t.Enabled() {
		t.logger.Warn("ai transform skipped, no provider configured", slog.String("action", string(action)))
		return text
	}

	callCtx, cancel := contextWithTimeout(ctx, t.timeout)
	defer cancel()

	start := time.Now()
	reply, err := t.client.GenerateContent(callCtx, BuildPrompt(action, text, background), tierFor(action))
	if err != nil {
		t.logger.Warn("ai transform failed, returning original text",
			slog.String("action", string(action)),
			slog.String("error", err.Error()),
			slog.Duration("elapsed", time.Since(start)))
		return text
	}

	out := CleanReply(reply)
	if strings.TrimSpace(out) == "" {
		t.logger.Warn("ai transform returned empty reply", slog.String("action", string(action)))
		return text
	}

	t.logger.Debug("ai transform completed",
		slog.String("action", string(action)),
		slog.String("model", t.client.GetModel(tierFor(action))),
		slog.Duration("elapsed", time.Since(start)))
	return out
}

func contextWithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, d)
}
