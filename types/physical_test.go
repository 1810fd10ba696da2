package types

import (
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/require"
)

func timeType() *PhysicalType {
	return NewPhysical(AscendingInt(0, 1000000), []PhysicalUnit{
		PrimaryUnitOf("fs", 1),
		SecondaryUnitOf("ps", 1000, 1000, 0),
		SecondaryUnitOf("ns", 1000000, 1000, 1),
	}, 0)
}

func TestPhysicalString(t *testing.T) {
	ty := timeType()
	require.Equal(t, "0 to 1000000 units (fs, ps, ns)", ty.String())
	require.Equal(t, 0, ty.PrimaryIndex())
	t.Log(repr.String(ty.Units()))
}

func TestPhysicalUnits(t *testing.T) {
	units := timeType().Units()
	require.Len(t, units, 3)

	require.Equal(t, "fs", units[0].Name.String())
	require.Equal(t, int64(1), units[0].Abs.Int64())
	require.Nil(t, units[0].Rel)

	require.Equal(t, "ps", units[1].Name.String())
	require.Equal(t, int64(1000), units[1].Abs.Int64())
	require.NotNil(t, units[1].Rel)
	require.Equal(t, int64(1000), units[1].Rel.Scale.Int64())
	require.Equal(t, 0, units[1].Rel.Unit)

	require.Equal(t, "ns", units[2].Name.String())
	require.Equal(t, int64(1000000), units[2].Abs.Int64())
	require.Equal(t, 1, units[2].Rel.Unit)
}

func TestCheckUnits(t *testing.T) {
	units := []PhysicalUnit{
		PrimaryUnitOf("fs", 1),
		SecondaryUnitOf("ps", 1000, 1000, 0),
	}
	require.NoError(t, CheckUnits(units, 0))

	// Primary position out of bounds.
	require.Error(t, CheckUnits(units, 2))
	require.Error(t, CheckUnits(units, -1))
	// Primary unit with a relative scale.
	require.Error(t, CheckUnits(units, 1))
	// Primary scale other than one.
	require.Error(t, CheckUnits([]PhysicalUnit{PrimaryUnitOf("fs", 2)}, 0))
	// Secondary unit without a relative scale.
	require.Error(t, CheckUnits([]PhysicalUnit{
		PrimaryUnitOf("fs", 1),
		PrimaryUnitOf("ps", 1),
	}, 0))
	// Secondary unit linking to itself.
	require.Error(t, CheckUnits([]PhysicalUnit{
		PrimaryUnitOf("fs", 1),
		SecondaryUnitOf("ps", 1000, 1000, 1),
	}, 0))
	// Secondary unit linking out of bounds.
	require.Error(t, CheckUnits([]PhysicalUnit{
		PrimaryUnitOf("fs", 1),
		SecondaryUnitOf("ps", 1000, 1000, 5),
	}, 0))
}

func TestPhysicalPanicsOnBadUnits(t *testing.T) {
	require.Panics(t, func() {
		NewPhysical(AscendingInt(0, 10), []PhysicalUnit{PrimaryUnitOf("fs", 2)}, 0)
	})
}

func TestPhysicalClassification(t *testing.T) {
	ty := timeType()
	require.True(t, ty.IsScalar())
	require.False(t, ty.IsDiscrete())
	require.True(t, ty.IsNumeric())
	require.False(t, ty.IsComposite())
}
