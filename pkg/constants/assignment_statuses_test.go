package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignmentStatusFlow(t *testing.T) {
	t.Run("scheduled можно запустить, завершить или отменить", func(t *testing.T) {
		assert.True(t, CanTransitAssignmentStatus(AssignmentStatusScheduled, AssignmentStatusInProgress))
		assert.True(t, CanTransitAssignmentStatus(AssignmentStatusScheduled, AssignmentStatusCompleted))
		assert.True(t, CanTransitAssignmentStatus(AssignmentStatusScheduled, AssignmentStatusCancelled))
	})

	t.Run("in_progress нельзя вернуть в scheduled", func(t *testing.T) {
		assert.False(t, CanTransitAssignmentStatus(AssignmentStatusInProgress, AssignmentStatusScheduled))
		assert.True(t, CanTransitAssignmentStatus(AssignmentStatusInProgress, AssignmentStatusCompleted))
		assert.True(t, CanTransitAssignmentStatus(AssignmentStatusInProgress, AssignmentStatusCancelled))
	})

	t.Run("терминальные статусы не меняются", func(t *testing.T) {
		for _, to := range []string{AssignmentStatusScheduled, AssignmentStatusInProgress, AssignmentStatusCompleted, AssignmentStatusCancelled} {
			assert.False(t, CanTransitAssignmentStatus(AssignmentStatusCompleted, to))
			assert.False(t, CanTransitAssignmentStatus(AssignmentStatusCancelled, to))
		}
	})
}

func TestActiveAssignmentStatuses(t *testing.T) {
	assert.True(t, IsActiveAssignmentStatus(AssignmentStatusScheduled))
	assert.True(t, IsActiveAssignmentStatus(AssignmentStatusInProgress))
	assert.False(t, IsActiveAssignmentStatus(AssignmentStatusCompleted))
	assert.False(t, IsActiveAssignmentStatus(AssignmentStatusCancelled))
	assert.False(t, IsActiveAssignmentStatus("unknown"))
}
