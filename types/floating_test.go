package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloating(t *testing.T) {
	a := NewFloating(AscendingReal(0, 42))
	b := NewFloating(DescendingReal(42, 0))

	require.Equal(t, "0 to 42", a.String())
	require.Equal(t, "42 downto 0", b.String())
	require.Equal(t, To, a.Range().Dir())
	require.Equal(t, Downto, b.Range().Dir())
	require.Equal(t, RealBound(42), a.Range().Length())
	require.Equal(t, RealBound(42), b.Range().Length())
}

func TestFloatingClassification(t *testing.T) {
	ty := NewFloating(AscendingReal(-1, 1))
	require.True(t, ty.IsScalar())
	require.False(t, ty.IsDiscrete())
	require.True(t, ty.IsNumeric())
	require.False(t, ty.IsComposite())
}
