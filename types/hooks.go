package types

import "context"

// Hooks defines callbacks for matching run events.
//
// All hooks are optional. Unlike most libraries' async hooks, these are
// invoked synchronously from the round loop, between rounds, so they observe
// a consistent snapshot. Hook errors are logged and never abort the run.
//
// Example:
//
//	hooks := &teammatching.Hooks{
//	    OnRoundComplete: func(ctx context.Context, report teammatching.RoundReport) error {
//	        fmt.Printf("round %d: %d free\n", report.Round, report.FreeAfter)
//	        return nil
//	    },
//	}
type Hooks struct {
	// OnRoundComplete is called after every round with the round's report.
	OnRoundComplete func(ctx context.Context, report RoundReport) error

	// OnError is called when a run ends with an error (partial or unstable matching).
	OnError func(ctx context.Context, err error) error
}
