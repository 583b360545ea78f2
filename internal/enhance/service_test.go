package enhance

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceRejectsBlankContent(t *testing.T) {
	svc := NewService(fixed(0), 0)
	for _, content := range []string{"", "  \n"} {
		_, err := svc.Enhance(context.Background(), SectionSummary, content)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestServiceEnhances(t *testing.T) {
	svc := NewService(fixed(2), 0)
	out, err := svc.Enhance(context.Background(), SectionExperience, "Did things")
	require.NoError(t, err)
	assert.Equal(t, "Did things\n"+experienceTemplates[2], out)
}

func TestServiceUsesWaitHook(t *testing.T) {
	var waited time.Duration
	svc := NewService(fixed(0), 250*time.Millisecond)
	svc.Wait = func(ctx context.Context, d time.Duration) error {
		waited = d
		return nil
	}

	_, err := svc.Enhance(context.Background(), "skills", "Go")
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, waited)
}

func TestServiceDelayHonorsCancellation(t *testing.T) {
	svc := NewService(fixed(0), time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := svc.Enhance(ctx, SectionSummary, "Developer")
	assert.ErrorIs(t, err, ErrEnhancementFailed)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestServiceDelayWaits(t *testing.T) {
	svc := NewService(fixed(0), 20*time.Millisecond)
	start := time.Now()
	_, err := svc.Enhance(context.Background(), "skills", "Go")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestServiceRecoversChooserPanic(t *testing.T) {
	svc := NewService(ChooserFunc(func(n int) int { panic("rng broken") }), 0)
	out, err := svc.Enhance(context.Background(), SectionEducation, "MSc")
	assert.Empty(t, out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEnhancementFailed))
	assert.Equal(t, "rng broken", FailureReason(err))
	assert.True(t, strings.HasPrefix(err.Error(), "enhancement failed: "))
}
