package impact

// BuildMap indexes an ordered displacement list by draggable id.
func BuildMap(displaced []Displacement) DisplacementMap {
	m := make(DisplacementMap, len(displaced))
	for _, d := range displaced {
		m[d.DraggableID] = d
	}
	return m
}
