package commands_test

import (
	"testing"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderActionFromString(t *testing.T) {
	tests := []struct {
		name    string
		want    commands.OrderAction
		wantErr bool
	}{
		{name: "scan", want: commands.ActionScan},
		{name: "quantify", want: commands.ActionQuantify},
		{name: "setup", want: commands.ActionSetup},
		{name: "process", want: commands.ActionProcess},
		{name: "end", want: commands.ActionEnd},
		{name: "unknown", wantErr: true},
		{name: "", wantErr: true},
		{name: "stop", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("parses "+tt.name, func(t *testing.T) {
			got, err := commands.OrderActionFromString(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.name, got.String())
		})
	}
}

func TestNewAdvanceOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewAdvanceOrderCommand(id, commands.ActionScan, "gear-12", 0)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, commands.ActionScan, cmd.Action())
	assert.Equal(t, "gear-12", cmd.PartName())

	cmd, err = commands.NewAdvanceOrderCommand(id, commands.ActionQuantify, "", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, cmd.NumParts())
}

func TestNewAdvanceOrderCommand_ScanRequiresPartName(t *testing.T) {
	_, err := commands.NewAdvanceOrderCommand(kernel.NewUUID(), commands.ActionScan, "", 0)
	require.ErrorIs(t, err, commands.ErrPartNameIsRequired)
}

func TestNewAdvanceOrderCommand_QuantifyRequiresPositiveCount(t *testing.T) {
	_, err := commands.NewAdvanceOrderCommand(kernel.NewUUID(), commands.ActionQuantify, "", 0)
	require.ErrorIs(t, err, commands.ErrNumPartsIsInvalid)
}

func TestNewAdvanceOrderCommand_InvalidAction(t *testing.T) {
	_, err := commands.NewAdvanceOrderCommand(kernel.NewUUID(), commands.ActionUnknown, "", 0)
	require.Error(t, err)
}

func TestNewAdvanceOrderCommand_IgnoresIrrelevantFields(t *testing.T) {
	cmd, err := commands.NewAdvanceOrderCommand(kernel.NewUUID(), commands.ActionSetup, "gear-12", 7)
	require.NoError(t, err)
	assert.Empty(t, cmd.PartName())
	assert.Zero(t, cmd.NumParts())
}
