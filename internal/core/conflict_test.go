package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildConflictGraph_PairwiseWithinGroup(t *testing.T) {
	groups := []StudentGroup{
		{Name: "g1", Subjects: []string{"M", "E", "P"}, Size: 10},
	}

	graph := BuildConflictGraph(groups)

	assert.ElementsMatch(t, []string{"E", "P"}, graph.Neighbors("M"))
	assert.ElementsMatch(t, []string{"M", "P"}, graph.Neighbors("E"))
	assert.ElementsMatch(t, []string{"M", "E"}, graph.Neighbors("P"))
}

func TestBuildConflictGraph_NoSelfLoop(t *testing.T) {
	groups := []StudentGroup{{Name: "g1", Subjects: []string{"M"}, Size: 5}}

	graph := BuildConflictGraph(groups)

	_, hasSelf := graph["M"]["M"]
	assert.False(t, hasSelf)
}

func TestBuildConflictGraph_DisjointGroupsDoNotConflict(t *testing.T) {
	groups := []StudentGroup{
		{Name: "g1", Subjects: []string{"M"}, Size: 10},
		{Name: "g2", Subjects: []string{"E"}, Size: 10},
	}

	graph := BuildConflictGraph(groups)

	assert.Equal(t, 0, graph.Degree("M"))
	assert.Equal(t, 0, graph.Degree("E"))
}

func TestBuildConflictGraph_SharedMemberAcrossGroups(t *testing.T) {
	groups := []StudentGroup{
		{Name: "g1", Subjects: []string{"M", "E"}, Size: 10},
		{Name: "g2", Subjects: []string{"M", "P"}, Size: 10},
	}

	graph := BuildConflictGraph(groups)

	assert.ElementsMatch(t, []string{"E", "P"}, graph.Neighbors("M"))
}
