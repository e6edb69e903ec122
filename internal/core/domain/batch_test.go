package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mono/internal/core/domain"
)

func TestNewBatchError(t *testing.T) {
	assert.NoError(t, domain.NewBatchError(nil))
	assert.NoError(t, domain.NewBatchError([]error{nil, nil}))

	first := errors.New("first")
	cmdErr := &domain.CommandError{Package: "b", CommandLine: "npm install", ExitCode: 1}
	err := domain.NewBatchError([]error{first, nil, cmdErr})
	require.Error(t, err)

	var batch *domain.BatchError
	require.ErrorAs(t, err, &batch)
	assert.Equal(t, []error{first, cmdErr}, batch.Errors())
	assert.Equal(t, "first\n[b] npm install: exit code 1", err.Error())

	assert.ErrorIs(t, err, domain.ErrPipelineFailed)
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, domain.ErrCommandFailed)

	var target *domain.CommandError
	require.ErrorAs(t, err, &target)
	assert.Same(t, cmdErr, target)

	// Errors returns a copy.
	batch.Errors()[0] = nil
	assert.Equal(t, first, batch.Errors()[0])
}
