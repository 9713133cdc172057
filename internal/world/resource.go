package world

import "fmt"

// ResourceKind is the type of a harvestable resource.
type ResourceKind uint8

const (
	Herb ResourceKind = iota
	Tree
	Rock
	Bush
)

// ResourceKinds lists every resource kind in declaration order.
var ResourceKinds = []ResourceKind{Herb, Tree, Rock, Bush}

var resourceNames = [...]string{"herb", "tree", "rock", "bush"}

func (k ResourceKind) String() string {
	if int(k) < len(resourceNames) {
		return resourceNames[k]
	}
	return fmt.Sprintf("resource(%d)", k)
}

// ParseResourceKind converts a name produced by String back into a ResourceKind.
func ParseResourceKind(s string) (ResourceKind, error) {
	for i, name := range resourceNames {
		if name == s {
			return ResourceKind(i), nil
		}
	}
	return 0, fmt.Errorf("world: unknown resource kind %q", s)
}

// NeedsAxe reports whether harvesting this kind requires the axe.
func (k ResourceKind) NeedsAxe() bool {
	return k == Tree || k == Rock
}

// ResourceID identifies a resource for the lifetime of a world. IDs start at
// 1 and are never reused.
type ResourceID uint32

// Resource is a harvestable object sitting on a terrain cell.
type Resource struct {
	ID   ResourceID
	X, Z int
	Kind ResourceKind
}

// ResourceList is the ordered, ID-keyed collection of live resources.
// Iteration order is insertion order; removal preserves the order of the rest.
type ResourceList struct {
	items  []Resource
	index  map[ResourceID]int
	nextID ResourceID
}

// NewResourceList creates an empty collection.
func NewResourceList() *ResourceList {
	return &ResourceList{
		index:  make(map[ResourceID]int),
		nextID: 1,
	}
}

// Add appends a resource and returns it with its assigned ID.
func (l *ResourceList) Add(x, z int, kind ResourceKind) Resource {
	r := Resource{ID: l.nextID, X: x, Z: z, Kind: kind}
	l.nextID++
	l.index[r.ID] = len(l.items)
	l.items = append(l.items, r)
	return r
}

// Get returns the live resource with the given ID.
func (l *ResourceList) Get(id ResourceID) (Resource, bool) {
	i, ok := l.index[id]
	if !ok {
		return Resource{}, false
	}
	return l.items[i], true
}

// Remove deletes the resource with the given ID. It returns false if the
// resource was not present.
func (l *ResourceList) Remove(id ResourceID) bool {
	i, ok := l.index[id]
	if !ok {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	delete(l.index, id)
	for j := i; j < len(l.items); j++ {
		l.index[l.items[j].ID] = j
	}
	return true
}

// Len returns the number of live resources.
func (l *ResourceList) Len() int {
	return len(l.items)
}

// All returns a copy of the live resources in insertion order.
func (l *ResourceList) All() []Resource {
	out := make([]Resource, len(l.items))
	copy(out, l.items)
	return out
}

// Each calls fn for every live resource in insertion order until fn
// returns false.
func (l *ResourceList) Each(fn func(Resource) bool) {
	for _, r := range l.items {
		if !fn(r) {
			return
		}
	}
}

// CountByKind returns the number of live resources of each kind.
func (l *ResourceList) CountByKind() map[ResourceKind]int {
	counts := make(map[ResourceKind]int, len(ResourceKinds))
	for _, r := range l.items {
		counts[r.Kind]++
	}
	return counts
}

// Restore inserts a resource that already carries an ID, as read back from
// an exported world. IDs must be unique and non-zero; later Adds continue
// after the highest ID seen.
func (l *ResourceList) Restore(r Resource) error {
	if r.ID == 0 {
		return fmt.Errorf("world: resource at (%d,%d) has zero id", r.X, r.Z)
	}
	if _, dup := l.index[r.ID]; dup {
		return fmt.Errorf("world: duplicate resource id %d", r.ID)
	}
	l.index[r.ID] = len(l.items)
	l.items = append(l.items, r)
	if r.ID >= l.nextID {
		l.nextID = r.ID + 1
	}
	return nil
}
