package progress

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewRun(t *testing.T) {
	r := NewRun(3)

	assert.NotEqual(t, uuid.Nil, r.ID)
	assert.Equal(t, 3, r.Segments)
	assert.NotNil(t, r.Aggregate)
	assert.False(t, r.Started.IsZero())

	assert.NotEqual(t, r.ID, NewRun(1).ID)
}
