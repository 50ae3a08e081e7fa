package problem

import "fmt"

// Knapsack is one immutable problem instance: an identifier, a capacity and an
// ordered sequence of items. Build it with New; the zero value is an empty
// instance with capacity 0.
type Knapsack struct {
	id       int
	capacity int
	items    []Item
}

// New builds a Knapsack from a copy of items.
// Returns ErrNegativeCapacity if capacity < 0.
//
// Complexity: O(n) time and space.
func New(id, capacity int, items []Item) (*Knapsack, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("knapsack %d: capacity %d: %w", id, capacity, ErrNegativeCapacity)
	}

	cp := make([]Item, len(items))
	copy(cp, items)

	return &Knapsack{id: id, capacity: capacity, items: cp}, nil
}

// ID returns the instance identifier.
func (k *Knapsack) ID() int { return k.id }

// Capacity returns the maximum total weight of a feasible selection.
func (k *Knapsack) Capacity() int { return k.capacity }

// Size returns the number of items (the instance size).
func (k *Knapsack) Size() int { return len(k.items) }

// Item returns item i. It panics on an out-of-range index like a slice would.
func (k *Knapsack) Item(i int) Item { return k.items[i] }

// Items returns a copy of the item list.
func (k *Knapsack) Items() []Item {
	cp := make([]Item, len(k.items))
	copy(cp, k.items)
	return cp
}

// TotalPrice returns the sum of all item prices.
func (k *Knapsack) TotalPrice() int {
	var total int
	for _, it := range k.items {
		total += int(it.Price)
	}
	return total
}

// TotalWeight returns the sum of all item weights.
func (k *Knapsack) TotalWeight() int {
	var total int
	for _, it := range k.items {
		total += int(it.Weight)
	}
	return total
}

// WithPrices returns a new Knapsack with the same id and capacity whose items
// are produced by fn. The receiver is left untouched.
func (k *Knapsack) WithPrices(fn func(Item) Item) *Knapsack {
	items := make([]Item, len(k.items))
	for i, it := range k.items {
		items[i] = fn(it)
	}
	return &Knapsack{id: k.id, capacity: k.capacity, items: items}
}

// String implements fmt.Stringer.
func (k *Knapsack) String() string {
	return fmt.Sprintf("knapsack %d, capacity: %d", k.id, k.capacity)
}
