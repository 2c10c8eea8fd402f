package commands_test

import (
	"testing"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMarkBatchPrintedCommand(t *testing.T) {
	t.Run("should create command with valid entries", func(t *testing.T) {
		entryIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()}
		printedBy := kernel.NewUUID()

		cmd, err := commands.NewMarkBatchPrintedCommand(entryIDs, printedBy)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Len(t, cmd.EntryIDs(), 3)
		assert.True(t, cmd.PrintedBy().IsEqual(printedBy))
	})

	t.Run("should reject empty entry list", func(t *testing.T) {
		_, err := commands.NewMarkBatchPrintedCommand(nil, kernel.NewUUID())

		require.ErrorIs(t, err, commands.ErrEntryIDsAreRequired)
	})

	t.Run("should reject repeated entry ids", func(t *testing.T) {
		entryID := kernel.NewUUID()

		_, err := commands.NewMarkBatchPrintedCommand(
			[]kernel.UUID{entryID, kernel.NewUUID(), entryID}, kernel.NewUUID())

		require.ErrorIs(t, err, commands.ErrDuplicateEntryIDs)
	})

	t.Run("should reject invalid confirmer", func(t *testing.T) {
		_, err := commands.NewMarkBatchPrintedCommand([]kernel.UUID{kernel.NewUUID()}, kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		var cmd commands.MarkBatchPrintedCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrMarkBatchPrintedCommandIsNotConstructed)
	})
}
