package seed

// RNG is a small linear-congruential generator. Each dataset slice gets its
// own seed so regenerated demo data is reproducible run-to-run.
type RNG struct {
	state uint32
}

func NewRNG(seed uint32) *RNG {
	return &RNG{state: seed}
}

// Next returns the next value in [0, 1).
func (r *RNG) Next() float64 {
	r.state = 1664525*r.state + 1013904223
	return float64(r.state) / 4294967296.0
}

// Int returns a value in [min, max], both inclusive.
func (r *RNG) Int(min, max int) int {
	return min + int(r.Next()*float64(max-min+1))
}

// Pick returns a random element of items.
func Pick[T any](r *RNG, items []T) T {
	return items[int(r.Next()*float64(len(items)))]
}

// PickMany returns up to count distinct elements of items, in draw order.
func PickMany[T any](r *RNG, items []T, count int) []T {
	pool := make([]T, len(items))
	copy(pool, items)

	var result []T
	for len(pool) > 0 && len(result) < count {
		idx := int(r.Next() * float64(len(pool)))
		result = append(result, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return result
}
