package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/saulo-duarte/ai-mastery-drill/internal/apperr"
	"github.com/saulo-duarte/ai-mastery-drill/internal/config"
	"github.com/saulo-duarte/ai-mastery-drill/internal/monitoring"
)

// Prompt is one request to the text provider. Purpose only labels logs and
// metrics.
type Prompt struct {
	Purpose     string
	System      string
	User        string
	Temperature float32
	TopK        float32
	TopP        float32
	MaxTokens   int32
}

func (p Prompt) Text() string {
	if p.System == "" {
		return p.User
	}
	return p.System + "\n\n" + p.User
}

// Provider sends a prompt upstream and returns the reply text with any
// markdown code fences removed.
type Provider interface {
	Name() string
	SendPrompt(ctx context.Context, p Prompt) (string, error)
}

// New builds the provider selected in s. A missing credential does not fail:
// the returned provider reports apperr.ErrNotConfigured on every call.
func New(ctx context.Context, s config.AISettings) Provider {
	log := config.WithContext(ctx)

	var (
		p   Provider
		err error
	)
	switch s.Provider {
	case config.ProviderGateway:
		p, err = NewGatewayProvider(s)
	case config.ProviderGemini, "":
		p, err = NewGeminiProvider(ctx, s)
	default:
		err = fmt.Errorf("%w: unknown AI_PROVIDER %q", apperr.ErrNotConfigured, s.Provider)
	}
	if err != nil {
		log.WithError(err).Warn("AI provider unavailable; requests will fail until configured")
		return &missingProvider{err: err}
	}

	if s.RequestsPerMinute > 0 {
		p = Throttle(p, rate.Every(time.Minute/time.Duration(s.RequestsPerMinute)), 1)
	}
	return Instrument(p)
}

type missingProvider struct {
	err error
}

func (p *missingProvider) Name() string { return "unconfigured" }

func (p *missingProvider) SendPrompt(ctx context.Context, _ Prompt) (string, error) {
	return "", p.err
}

type throttled struct {
	next    Provider
	limiter *rate.Limiter
}

// Throttle spaces upstream calls so bursts from many drills stay under the
// provider's request quota.
func Throttle(next Provider, every rate.Limit, burst int) Provider {
	return &throttled{next: next, limiter: rate.NewLimiter(every, burst)}
}

func (t *throttled) Name() string { return t.next.Name() }

func (t *throttled) SendPrompt(ctx context.Context, p Prompt) (string, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("%w: %w", apperr.ErrProvider, ctxErr)
		}
		return "", fmt.Errorf("%w: %v", apperr.ErrRateLimited, err)
	}
	return t.next.SendPrompt(ctx, p)
}

type instrumented struct {
	next Provider
}

func Instrument(next Provider) Provider {
	return &instrumented{next: next}
}

func (i *instrumented) Name() string { return i.next.Name() }

func (i *instrumented) SendPrompt(ctx context.Context, p Prompt) (string, error) {
	start := time.Now()
	text, err := i.next.SendPrompt(ctx, p)
	monitoring.ObserveProviderCall(i.next.Name(), p.Purpose, start, err)
	return text, err
}

// StripFences removes ```json ... ``` wrapping that models add despite being
// asked for bare JSON.
func StripFences(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```JSON")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`")
	return strings.TrimSpace(clean)
}
