package strategy

import (
	"context"
	"strconv"
	"testing"

	"github.com/philipjlin/TeamMatching/types"
)

func BenchmarkFitRanker_Rank(b *testing.B) {
	team := types.Team{ID: "A", Weights: types.Attributes{Attack: 3, Defense: 1, Intelligence: 2, ResourceProduction: 1}}
	ranker := NewFitRanker()

	for _, n := range []int{100, 1000, 10000} {
		players := makePlayers(n)

		b.Run("players="+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = ranker.Rank(team, players)
			}
		})
	}
}

func BenchmarkRankAll(b *testing.B) {
	players := makePlayers(2000)
	teams := makeTeams(64)
	ranker := NewFitRanker()

	for _, parallelism := range []int{1, 4, 16} {
		b.Run("parallelism="+strconv.Itoa(parallelism), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := RankAll(context.Background(), ranker, teams, players, parallelism, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
