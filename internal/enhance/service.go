package enhance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resume-editor/internal/shared/metrics"
	"resume-editor/internal/shared/telemetry"
)

// DefaultDelay simulates model latency.
const DefaultDelay = 500 * time.Millisecond

// Service applies Enhance behind input validation and an artificial processing delay.
type Service struct {
	Chooser Chooser
	// Delay is waited before every enhancement; zero disables it.
	Delay time.Duration
	// Wait blocks for d or until ctx is done. Nil uses a context-aware timer.
	Wait func(ctx context.Context, d time.Duration) error
}

// NewService constructs a Service. A nil chooser uses DefaultChooser.
func NewService(chooser Chooser, delay time.Duration) *Service {
	if chooser == nil {
		chooser = DefaultChooser
	}
	return &Service{Chooser: chooser, Delay: delay}
}

// Enhance returns the enhanced content for section.
// It fails with ErrInvalidInput for blank content and ErrEnhancementFailed for anything unexpected.
func (s *Service) Enhance(ctx context.Context, section, content string) (out string, err error) {
	if strings.TrimSpace(content) == "" {
		return "", ErrInvalidInput
	}
	metrics.IncEnhanceRequests()
	start := time.Now()
	defer func() {
		metrics.ObserveEnhanceDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
		if err != nil {
			metrics.IncEnhanceFailed()
		}
	}()

	if err := s.wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEnhancementFailed, err)
	}

	defer func() {
		if rec := recover(); rec != nil {
			telemetry.Error("enhance.panic", map[string]any{"section": section, "error": fmt.Sprint(rec)})
			out = ""
			err = fmt.Errorf("%w: %v", ErrEnhancementFailed, rec)
		}
	}()
	return Enhance(section, content, s.Chooser), nil
}

func (s *Service) wait(ctx context.Context) error {
	if s.Delay <= 0 {
		return ctx.Err()
	}
	if s.Wait != nil {
		return s.Wait(ctx, s.Delay)
	}
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// FailureReason strips the ErrEnhancementFailed prefix from err for display.
func FailureReason(err error) string {
	return strings.TrimPrefix(err.Error(), ErrEnhancementFailed.Error()+": ")
}
