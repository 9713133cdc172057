// Package survival simulates the player: movement with terrain collision,
// harvesting, crafting, and hunger/health decay.
package survival

// Rules holds the tunable constants of the player simulation.
type Rules struct {
	Speed float64 // World units per 16 ms of held movement

	MaxHealth float64
	MaxHunger float64

	HungerInterval float64 // Seconds of game time between hunger drains
	HungerDrain    float64
	StarveInterval float64 // Seconds between starvation damage while hunger is 0
	StarveDamage   float64

	HerbYield  int
	WoodYield  int
	StoneYield int
	FoodYield  int

	Campfire CampfireRecipe
	Axe      AxeRecipe
	Eat      EatRecipe
}

// CampfireRecipe burns wood to restore hunger.
type CampfireRecipe struct {
	Wood    int
	Restore float64
}

// AxeRecipe unlocks tree and rock harvesting.
type AxeRecipe struct {
	Wood  int
	Stone int
}

// EatRecipe consumes food to restore hunger.
type EatRecipe struct {
	Food    int
	Restore float64
}

// DefaultRules returns the standard game balance.
func DefaultRules() Rules {
	return Rules{
		Speed:          2.5,
		MaxHealth:      100,
		MaxHunger:      100,
		HungerInterval: 3,
		HungerDrain:    2,
		StarveInterval: 2,
		StarveDamage:   5,
		HerbYield:      1,
		WoodYield:      2,
		StoneYield:     1,
		FoodYield:      1,
		Campfire:       CampfireRecipe{Wood: 5, Restore: 30},
		Axe:            AxeRecipe{Wood: 3, Stone: 2},
		Eat:            EatRecipe{Food: 1, Restore: 25},
	}
}
