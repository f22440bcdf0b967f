package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgentRejectRequiresNote(t *testing.T) {
	// Nil repositories: the validation must fail before any write is
	// attempted, so no repository call may happen
	svc := NewAgentService(nil, nil)

	result, err := svc.Reject(context.Background(), 1, 1, "")
	assert.Error(t, err)
	assert.Nil(t, result)

	result, err = svc.Reject(context.Background(), 1, 1, "  \t ")
	assert.Error(t, err)
	assert.Nil(t, result)
}
