package replay

import (
	"github.com/vovakirdan/wanderer/internal/game"
)

// Result summarises a scripted run.
type Result struct {
	Ticks    int
	Final    game.Snapshot
	Outcomes []game.Outcome // Every action outcome, in tick order
	GameOver bool           // The player starved before the script ended
}

// Run plays s against g. observe, if set, sees every snapshot. The run
// stops early once the game is over.
func Run(g *game.Game, s Script, observe func(game.Snapshot)) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}

	res := Result{Final: g.Snapshot()}
	for _, st := range s.Steps {
		in, err := st.Intent()
		if err != nil {
			return res, err
		}
		dt := st.Dt
		if dt == 0 {
			dt = s.Dt
		}
		if dt == 0 {
			dt = DefaultDt
		}

		for i := 0; i < st.Ticks(); i++ {
			snap := g.Advance(dt, in)
			res.Ticks++
			res.Final = snap
			res.Outcomes = append(res.Outcomes, snap.Outcomes...)
			if observe != nil {
				observe(snap)
			}
			if snap.GameOver {
				res.GameOver = true
				return res, nil
			}
		}
	}
	return res, nil
}
