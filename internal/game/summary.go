package game

// Summary condenses a run for the history board.
type Summary struct {
	Seed          int64
	Day           int
	Hour          int
	Minute        int
	ItemsGathered int
	Crafted       int
	Distance      float64
	ElapsedMs     float64
	Dead          bool
}

// Summary returns the run summary at the current tick.
func (g *Game) Summary() Summary {
	d := g.clock.Display()
	return Summary{
		Seed:          g.world.Seed,
		Day:           d.Day,
		Hour:          d.Hour,
		Minute:        d.Minute,
		ItemsGathered: g.stats.ItemsGathered(),
		Crafted:       g.stats.CraftedTotal(),
		Distance:      g.stats.Distance,
		ElapsedMs:     g.stats.ElapsedMs,
		Dead:          g.gameOver,
	}
}

// DaysSurvived counts completed days.
func (s Summary) DaysSurvived() int {
	return s.Day - 1
}
