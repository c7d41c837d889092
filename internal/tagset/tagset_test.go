package tagset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddAndHas(t *testing.T) {
	s := New()

	require.True(t, s.Add(10))
	require.True(t, s.Has(10))
	require.False(t, s.Has(11))
}

func TestAddRejectsDuplicate(t *testing.T) {
	s := New()

	require.True(t, s.Add(5))
	require.False(t, s.Add(5))
	require.Equal(t, 1, s.Count())
}

func TestMinMax(t *testing.T) {
	s := New()

	_, _, ok := s.MinMax()
	require.False(t, ok)

	s.Add(7)
	s.Add(2)
	s.Add(99)
	s.Add(2) // duplicate, ignored

	min, max, ok := s.MinMax()
	require.True(t, ok)
	require.Equal(t, uint64(2), min)
	require.Equal(t, uint64(99), max)
	require.Equal(t, 3, s.Count())
}

func TestEmptySet(t *testing.T) {
	s := New()
	require.Equal(t, 0, s.Count())
	require.False(t, s.Has(1))
}
