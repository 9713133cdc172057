package survival

// Recipe names a craftable or consumable action.
type Recipe int

const (
	RecipeCampfire Recipe = iota
	RecipeAxe
	RecipeEat
)

func (rc Recipe) String() string {
	switch rc {
	case RecipeCampfire:
		return "campfire"
	case RecipeAxe:
		return "axe"
	case RecipeEat:
		return "eat"
	default:
		return "unknown"
	}
}

// CraftCampfire spends wood to restore hunger.
func CraftCampfire(p *Player, r Rules) error {
	if p.Inventory.Wood < r.Campfire.Wood {
		return ErrInsufficient
	}
	p.Inventory.Wood -= r.Campfire.Wood
	p.SetHunger(p.Hunger + r.Campfire.Restore)
	return nil
}

// CraftAxe spends wood and stone to unlock tree and rock harvesting.
func CraftAxe(p *Player, r Rules) error {
	if p.HasAxe {
		return ErrAlreadyOwned
	}
	if p.Inventory.Wood < r.Axe.Wood || p.Inventory.Stone < r.Axe.Stone {
		return ErrInsufficient
	}
	p.Inventory.Wood -= r.Axe.Wood
	p.Inventory.Stone -= r.Axe.Stone
	p.HasAxe = true
	return nil
}

// Eat consumes food to restore hunger.
func Eat(p *Player, r Rules) error {
	if p.Inventory.Food < r.Eat.Food {
		return ErrInsufficient
	}
	p.Inventory.Food -= r.Eat.Food
	p.SetHunger(p.Hunger + r.Eat.Restore)
	return nil
}

// Craft dispatches to the function for rc.
func Craft(p *Player, rc Recipe, r Rules) error {
	switch rc {
	case RecipeCampfire:
		return CraftCampfire(p, r)
	case RecipeAxe:
		return CraftAxe(p, r)
	default:
		return Eat(p, r)
	}
}
