package commands_test

import (
	"testing"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateWorkOrderCommand(t *testing.T) {
	orderID := kernel.NewUUID()
	typeID := kernel.NewUUID()
	date := mustDate(t, "2024-05-01")

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCreateWorkOrderCommand(orderID, typeID, date)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.True(t, cmd.TypeID().IsEqual(typeID))
		assert.Equal(t, "2024-05-01", cmd.Date().String())
	})

	t.Run("zero values are rejected together", func(t *testing.T) {
		_, err := commands.NewCreateWorkOrderCommand(kernel.UUID{}, kernel.UUID{}, kernel.Date{})

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, kernel.ErrDateIsNotConstructed)
	})

	t.Run("zero value command is not constructed", func(t *testing.T) {
		var cmd commands.CreateWorkOrderCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateWorkOrderCommandIsNotConstructed)
	})
}
