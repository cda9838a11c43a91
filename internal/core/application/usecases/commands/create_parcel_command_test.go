package commands_test

import (
	"testing"

	"github.com/visionyy32/Final-sub001/internal/core/application/usecases/commands"
	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
	"github.com/visionyy32/Final-sub001/internal/core/domain/model/parcel"
	"github.com/visionyy32/Final-sub001/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateParcelCommand_Valid(t *testing.T) {
	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(),
		kernel.NewUUID(),
		testParty(t, "Alice Wanjiku", "Nairobi"),
		testParty(t, "Brian Otieno", "Kiambu"),
		"Books",
		1.2,
		nil,
		"Call on arrival",
		parcel.PayNow,
		services.TierExpress,
	)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Books", cmd.Description())
	assert.Equal(t, 1.2, cmd.WeightKg())
	assert.Equal(t, parcel.PayNow, cmd.PaymentMethod())
	assert.Equal(t, services.TierExpress, cmd.Tier())
}

func TestNewCreateParcelCommand_InvalidWeight(t *testing.T) {
	_, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(),
		kernel.NewUUID(),
		testParty(t, "Alice Wanjiku", "Nairobi"),
		testParty(t, "Brian Otieno", "Kiambu"),
		"",
		0,
		nil,
		"",
		parcel.PayOnDelivery,
		services.TierStandard,
	)
	require.ErrorIs(t, err, commands.ErrParcelWeightIsInvalid)
}

func TestNewCreateParcelCommand_UnconstructedParty(t *testing.T) {
	_, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(),
		kernel.NewUUID(),
		parcel.Party{},
		testParty(t, "Brian Otieno", "Kiambu"),
		"",
		1,
		nil,
		"",
		parcel.PayOnDelivery,
		services.TierStandard,
	)
	require.Error(t, err)
}

func TestNewCreateParcelCommand_InvalidPaymentMethod(t *testing.T) {
	_, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(),
		kernel.NewUUID(),
		testParty(t, "Alice Wanjiku", "Nairobi"),
		testParty(t, "Brian Otieno", "Kiambu"),
		"",
		1,
		nil,
		"",
		parcel.PaymentMethodUnknown,
		services.TierStandard,
	)
	require.Error(t, err)
}

func TestCreateParcelCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.CreateParcelCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateParcelCommandIsNotConstructed)
}
