package commands_test

import (
	"testing"

	"flavorverse/internal/core/application/usecases/commands"
	"flavorverse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewPlaceOrderCommand(validDraft())
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, validDraft(), cmd.Draft())
}

func TestNewPlaceOrderCommand_MissingOwner(t *testing.T) {
	d := validDraft()
	d.OwnerID = ""

	_, err := commands.NewPlaceOrderCommand(d)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestPlaceOrderCommand_ZeroValue(t *testing.T) {
	var cmd commands.PlaceOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
}
