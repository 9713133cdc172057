package survival

import "github.com/vovakirdan/wanderer/internal/world"

// Harvest gathers the resource found by world.ResourceNear at the player's
// position.
func Harvest(p *Player, w *world.World, r Rules) (world.Resource, error) {
	target, ok := w.ResourceNear(p.X, p.Z)
	if !ok {
		return world.Resource{}, ErrNoResource
	}
	return HarvestResource(p, w, target.ID, r)
}

// HarvestResource gathers a specific resource. It re-checks that the
// resource is still present, within reach, and that the player has the tool
// it needs. On success the resource is removed and its yield added to the
// inventory; on failure nothing changes.
func HarvestResource(p *Player, w *world.World, id world.ResourceID, r Rules) (world.Resource, error) {
	res, ok := w.Resources.Get(id)
	if !ok {
		return world.Resource{}, ErrNoResource
	}
	if w.DistanceTo(res, p.X, p.Z) > w.Terrain.ReachRadius() {
		return res, ErrOutOfRange
	}
	if res.Kind.NeedsAxe() && !p.HasAxe {
		return res, ErrNeedsAxe
	}

	w.Resources.Remove(id)
	switch res.Kind {
	case world.Herb:
		p.Inventory.Herb += r.HerbYield
	case world.Tree:
		p.Inventory.Wood += r.WoodYield
	case world.Rock:
		p.Inventory.Stone += r.StoneYield
	case world.Bush:
		p.Inventory.Food += r.FoodYield
	}
	return res, nil
}
