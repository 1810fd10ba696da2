package types

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRangeBounds(t *testing.T) {
	a := AscendingInt(0, 42)
	b := DescendingInt(42, 0)

	require.Equal(t, To, a.Dir())
	require.Equal(t, Downto, b.Dir())
	require.Equal(t, int64(0), a.Left().Value().Int64())
	require.Equal(t, int64(42), a.Right().Value().Int64())
	require.Equal(t, int64(42), b.Left().Value().Int64())
	require.Equal(t, int64(0), b.Right().Value().Int64())
	require.Equal(t, int64(0), a.Lower().Value().Int64())
	require.Equal(t, int64(42), a.Upper().Value().Int64())
	require.Equal(t, int64(0), b.Lower().Value().Int64())
	require.Equal(t, int64(42), b.Upper().Value().Int64())
}

func TestRangeString(t *testing.T) {
	require.Equal(t, "0 to 42", AscendingInt(0, 42).String())
	require.Equal(t, "42 downto 0", DescendingInt(42, 0).String())
}

func TestRangeLength(t *testing.T) {
	require.Equal(t, int64(43), AscendingInt(0, 42).Length().Value().Int64())
	require.Equal(t, int64(43), DescendingInt(42, 0).Length().Value().Int64())
	require.Equal(t, int64(-41), AscendingInt(42, 0).Length().Value().Int64())
}

func TestRangeIsNull(t *testing.T) {
	require.False(t, AscendingInt(0, 42).IsNull())
	require.True(t, AscendingInt(42, 0).IsNull())
	require.True(t, AscendingInt(7, 7).IsNull())
	require.False(t, DescendingInt(42, 0).IsNull())
}

func TestWithLowerUpper(t *testing.T) {
	require.Equal(t, "0 to 42", WithLowerUpper(To, IntOf(0), IntOf(42)).String())
	require.Equal(t, "42 downto 0", WithLowerUpper(Downto, IntOf(0), IntOf(42)).String())
}

func TestWithLeftRight(t *testing.T) {
	require.Equal(t, "0 to 42", WithLeftRight(To, IntOf(0), IntOf(42)).String())
	require.Equal(t, "42 downto 0", WithLeftRight(Downto, IntOf(42), IntOf(0)).String())
}

func TestHasSubrange(t *testing.T) {
	a := AscendingInt(0, 42)
	b := AscendingInt(4, 16)
	c := DescendingInt(16, 4)

	require.True(t, a.HasSubrange(b))
	require.True(t, a.HasSubrange(c))
	require.False(t, b.HasSubrange(a))
	require.False(t, c.HasSubrange(a))
	require.True(t, b.HasSubrange(c))
	require.True(t, c.HasSubrange(b))
}

func TestRealRange(t *testing.T) {
	a := AscendingReal(0, 42)
	require.Equal(t, "0 to 42", a.String())
	require.Equal(t, "42 downto 0", DescendingReal(42, 0).String())
	require.Equal(t, RealBound(0), a.Lower())
	require.Equal(t, RealBound(42), a.Upper())
	require.Equal(t, "1.5 to 3.25", AscendingReal(1.5, 3.25).String())
}

func TestRealRangeLengthIsContinuous(t *testing.T) {
	require.Equal(t, RealBound(42), AscendingReal(0, 42).Length())
	require.Equal(t, RealBound(1.75), AscendingReal(1.5, 3.25).Length())
	require.Equal(t, RealBound(-42), AscendingReal(42, 0).Length())
}

func TestRangeEqual(t *testing.T) {
	require.True(t, AscendingInt(0, 42).Equal(AscendingInt(0, 42)))
	require.False(t, AscendingInt(0, 42).Equal(DescendingInt(42, 0)))
	require.False(t, AscendingInt(0, 42).Equal(AscendingInt(0, 41)))
}

func TestBigBounds(t *testing.T) {
	v, ok := new(big.Int).SetString("340282366920938463463374607431768211456", 10)
	require.True(t, ok)
	r := Ascending(IntOf(0), NewIntBound(v))
	require.False(t, r.IsNull())
	require.Equal(t, "0 to 340282366920938463463374607431768211456", r.String())

	// Bounds copy their value at construction.
	v.SetInt64(0)
	require.Equal(t, "0 to 340282366920938463463374607431768211456", r.String())
}
