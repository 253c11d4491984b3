package ct

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const allOnes = ^uint64(0)

func TestIsNonZero(t *testing.T) {
	require.Equal(t, uint64(0), IsNonZero(0))
	require.Equal(t, uint64(1), IsNonZero(1))
	require.Equal(t, uint64(1), IsNonZero(1<<63))
	require.Equal(t, uint64(1), IsNonZero(allOnes))
}

func TestMask(t *testing.T) {
	require.Equal(t, uint64(0), Mask(0))
	require.Equal(t, allOnes, Mask(1))
	// Only the low bit matters.
	require.Equal(t, uint64(0), Mask(2))
	require.Equal(t, allOnes, Mask(0xFF))
}

func TestEqual(t *testing.T) {
	x := []uint64{1, 2, 3}
	y := []uint64{1, 2, 3}
	require.True(t, Equal(x, y))
	y[2] = 4
	require.False(t, Equal(x, y))
	require.True(t, Equal(nil, nil))
}

func TestLess(t *testing.T) {
	require.Equal(t, uint64(1), Less([]uint64{5}, []uint64{6}))
	require.Equal(t, uint64(0), Less([]uint64{6}, []uint64{6}))
	require.Equal(t, uint64(0), Less([]uint64{7}, []uint64{6}))
	// The high word dominates.
	require.Equal(t, uint64(1), Less([]uint64{allOnes, 1}, []uint64{0, 2}))
	require.Equal(t, uint64(0), Less([]uint64{0, 2}, []uint64{allOnes, 1}))
}

func TestSwap(t *testing.T) {
	x := []uint64{1, 1, 1}
	y := []uint64{2, 2, 2}
	Swap(0, x, y)
	require.Equal(t, []uint64{1, 1, 1}, x)
	require.Equal(t, []uint64{2, 2, 2}, y)
	Swap(allOnes, x, y)
	require.Equal(t, []uint64{2, 2, 2}, x)
	require.Equal(t, []uint64{1, 1, 1}, y)
}

func TestMaskedAdd(t *testing.T) {
	x := []uint64{allOnes, 0}
	carry := Add(allOnes, x, []uint64{1, 0})
	require.Equal(t, []uint64{0, 1}, x)
	require.Equal(t, uint64(0), carry)

	x = []uint64{allOnes, allOnes}
	carry = Add(allOnes, x, []uint64{1, 0})
	require.Equal(t, []uint64{0, 0}, x)
	require.Equal(t, uint64(1), carry)

	x = []uint64{5, 5}
	carry = Add(0, x, []uint64{1, 1})
	require.Equal(t, []uint64{5, 5}, x)
	require.Equal(t, uint64(0), carry)
}

func TestMaskedSub(t *testing.T) {
	x := []uint64{0, 1}
	borrow := Sub(allOnes, x, []uint64{1, 0})
	require.Equal(t, []uint64{allOnes, 0}, x)
	require.Equal(t, uint64(0), borrow)

	x = []uint64{0, 0}
	borrow = Sub(allOnes, x, []uint64{1, 0})
	require.Equal(t, []uint64{allOnes, allOnes}, x)
	require.Equal(t, uint64(1), borrow)

	x = []uint64{5, 5}
	borrow = Sub(0, x, []uint64{9, 9})
	require.Equal(t, []uint64{5, 5}, x)
	require.Equal(t, uint64(0), borrow)
}

func TestRshift1(t *testing.T) {
	x := []uint64{1, 1}
	Rshift1(x, 0)
	require.Equal(t, []uint64{1 << 63, 0}, x)

	x = []uint64{2}
	Rshift1(x, 1)
	require.Equal(t, []uint64{1 | 1<<63}, x)
}
