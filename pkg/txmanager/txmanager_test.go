package txmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure(t *testing.T) {
	raw := &pq.Error{Code: "40001"}
	assert.True(t, isSerializationFailure(raw))

	// the repository's wrap of an aborted FOR UPDATE read
	repoWrapped := fmt.Errorf("%w: ListByDate - execute query: %w",
		errors.New("repository: failed to execute query"), raw)
	assert.True(t, isSerializationFailure(repoWrapped))

	// plus the usecase wrap the error picks up before reaching the manager
	doubleWrapped := fmt.Errorf("%w: list bookings: %w",
		errors.New("usecase: internal error"), repoWrapped)
	assert.True(t, isSerializationFailure(doubleWrapped))

	commitWrapped := fmt.Errorf("%w: commit: %w", ErrTransaction, raw)
	assert.True(t, isSerializationFailure(commitWrapped))

	assert.False(t, isSerializationFailure(nil))
	assert.False(t, isSerializationFailure(errors.New("plain failure")))
	assert.False(t, isSerializationFailure(&pq.Error{Code: "23505"}))
}
