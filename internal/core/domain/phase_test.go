package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/extbuild/internal/core/domain"
)

func TestPhase_SuccessPath(t *testing.T) {
	want := []domain.Phase{
		domain.PhaseIdle,
		domain.PhaseConfiguring,
		domain.PhaseBuilding,
		domain.PhaseInstalling,
		domain.PhaseDone,
	}

	var got []domain.Phase
	for p, ok := domain.PhaseIdle, true; ok; p, ok = p.Next() {
		got = append(got, p)
	}
	assert.Equal(t, want, got)
}

func TestPhase_CanTransition(t *testing.T) {
	tests := []struct {
		from, to domain.Phase
		want     bool
	}{
		{domain.PhaseIdle, domain.PhaseConfiguring, true},
		{domain.PhaseIdle, domain.PhaseBuilding, false},
		{domain.PhaseIdle, domain.PhaseFailed, false},
		{domain.PhaseConfiguring, domain.PhaseBuilding, true},
		{domain.PhaseConfiguring, domain.PhaseFailed, true},
		{domain.PhaseBuilding, domain.PhaseFailed, true},
		{domain.PhaseInstalling, domain.PhaseDone, true},
		{domain.PhaseInstalling, domain.PhaseFailed, true},
		{domain.PhaseDone, domain.PhaseFailed, false},
		{domain.PhaseFailed, domain.PhaseConfiguring, false},
		{domain.PhaseBuilding, domain.PhaseConfiguring, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransition(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestPhase_Classification(t *testing.T) {
	assert.True(t, domain.PhaseDone.Terminal())
	assert.True(t, domain.PhaseFailed.Terminal())
	assert.False(t, domain.PhaseIdle.Terminal())

	assert.True(t, domain.PhaseBuilding.Running())
	assert.False(t, domain.PhaseIdle.Running())
	assert.False(t, domain.PhaseDone.Running())
}
