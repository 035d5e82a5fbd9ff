package appointment

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSlotConflict(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pq.Error{Code: pqSerializationFailure}, want: true},
		{name: "wrapped serialization failure", err: fmt.Errorf("commit: %w", &pq.Error{Code: pqSerializationFailure}), want: true},
		{name: "slot unique index", err: &pq.Error{Code: pqUniqueViolation, Constraint: activeSlotUniqueIndex}, want: true},
		{name: "code unique constraint", err: &pq.Error{Code: pqUniqueViolation, Constraint: codeUniqueConstraint}, want: false},
		{name: "repository sentinel", err: fmt.Errorf("%w: Create", ErrSlotConflict), want: true},
		{name: "serialization sentinel", err: fmt.Errorf("%w: Create", ErrSerializationFailure), want: true},
		{name: "other error", err: errors.New("connection reset"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSlotConflict(tt.err))
		})
	}
}

func TestMapPQError(t *testing.T) {
	assert.ErrorIs(t, mapPQError(&pq.Error{Code: pqUniqueViolation, Constraint: codeUniqueConstraint}), ErrCodeConflict)
	assert.ErrorIs(t, mapPQError(&pq.Error{Code: pqUniqueViolation, Constraint: activeSlotUniqueIndex}), ErrSlotConflict)
	assert.ErrorIs(t, mapPQError(&pq.Error{Code: pqDeadlockDetected}), ErrSerializationFailure)
	assert.ErrorIs(t, mapPQError(&pq.Error{Code: pqSerializationFailure}), ErrSerializationFailure)
	assert.NoError(t, mapPQError(&pq.Error{Code: "42P01"}))
	assert.NoError(t, mapPQError(errors.New("plain")))
}

func TestIsSerializationFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure on commit", err: fmt.Errorf("txmanager: commit transaction: %w", &pq.Error{Code: pqSerializationFailure}), want: true},
		{name: "deadlock", err: &pq.Error{Code: pqDeadlockDetected}, want: true},
		{name: "repository sentinel", err: fmt.Errorf("%w: Create: boom", ErrSerializationFailure), want: true},
		{name: "slot unique index", err: &pq.Error{Code: pqUniqueViolation, Constraint: activeSlotUniqueIndex}, want: false},
		{name: "slot conflict sentinel", err: ErrSlotConflict, want: false},
		{name: "other error", err: errors.New("connection reset"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSerializationFailure(tt.err))
		})
	}
}
