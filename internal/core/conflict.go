package core

// BuildConflictGraph derives subject-to-subject co-enrollment adjacency from
// group memberships: two subjects are adjacent iff some group's subject set
// contains both. Self-loops are excluded.
func BuildConflictGraph(groups []StudentGroup) ConflictGraph {
	graph := make(ConflictGraph)
	for _, group := range groups {
		for _, subject := range group.Subjects {
			if graph[subject] == nil {
				graph[subject] = make(map[string]struct{})
			}
			for _, other := range group.Subjects {
				if other == subject {
					continue
				}
				graph[subject][other] = struct{}{}
			}
		}
	}
	return graph
}
