package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRanking_Lookups(t *testing.T) {
	r := NewRanking("red", []RankEntry{
		{PlayerID: "low", Fit: 1},
		{PlayerID: "mid", Fit: 5},
		{PlayerID: "high", Fit: 9},
	})

	require.Equal(t, "red", r.TeamID())
	require.Equal(t, 3, r.Len())
	require.Equal(t, []string{"low", "mid", "high"}, r.Order())

	rank, ok := r.RankOf("high")
	require.True(t, ok)
	require.Equal(t, 2, rank)
	require.Equal(t, "high", r.At(rank))

	_, ok = r.RankOf("missing")
	require.False(t, ok)
	require.Empty(t, r.At(-1))
	require.Empty(t, r.At(3))

	fit, ok := r.FitOf("mid")
	require.True(t, ok)
	require.EqualValues(t, 5, fit)
	_, ok = r.FitOf("missing")
	require.False(t, ok)
}

func TestRanking_Prefers(t *testing.T) {
	r := NewRanking("red", []RankEntry{{PlayerID: "a", Fit: 1}, {PlayerID: "b", Fit: 2}})

	require.True(t, r.Prefers("b", "a"))
	require.False(t, r.Prefers("a", "b"))
	require.False(t, r.Prefers("a", "a"))
	require.True(t, r.Prefers("a", "ghost"))
	require.False(t, r.Prefers("ghost", "a"))
}

func TestRanking_CopiesInput(t *testing.T) {
	entries := []RankEntry{{PlayerID: "a", Fit: 1}}
	r := NewRanking("red", entries)
	entries[0].PlayerID = "mutated"

	require.Equal(t, []string{"a"}, r.Order())

	order := r.Order()
	order[0] = "mutated"
	require.Equal(t, "a", r.At(0))
}

func TestRanking_Empty(t *testing.T) {
	r := NewRanking("red", nil)

	require.Equal(t, 0, r.Len())
	require.Empty(t, r.Order())
	require.Empty(t, r.Entries())
}
