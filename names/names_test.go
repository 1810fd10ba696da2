package names

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInternIdempotent(t *testing.T) {
	a := New("fs")
	b := New("fs")
	require.Equal(t, a, b)
	require.Equal(t, "fs", a.String())
}

func TestDistinctNames(t *testing.T) {
	require.NotEqual(t, New("fs"), New("ps"))
	require.Equal(t, "ps", New("ps").String())
}

func TestConcurrentIntern(t *testing.T) {
	const n = 64
	out := make([]Name, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out[i] = New("shared")
		}(i)
	}
	wg.Wait()
	for _, got := range out {
		require.Equal(t, out[0], got)
	}
	require.Equal(t, "shared", out[0].String())
}
