package ecs

// intersect returns the entities present in every set, walking the smallest.
func intersect(sets []*sparseSet) []Entity {
	if len(sets) == 0 {
		return nil
	}
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.len() < smallest.len() {
			smallest = s
		}
	}

	out := make([]Entity, 0, smallest.len())
outer:
	for _, e := range smallest.dense {
		for _, s := range sets {
			if s != smallest && !s.has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}
