package tree

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub-be/internal/entity"
)

// fixture builds the flat collection for a small study hierarchy:
//
//	DSA (syllabus)
//	├── Arrays (folder)
//	│   ├── Two Sum (file, progress 100)
//	│   └── Sliding Window (file, progress 40)
//	└── Notes.md (file, progress 0)
//	Standalone (file, no parent)
func fixture() (map[string]*entity.Node, []*entity.Node) {
	byTitle := map[string]*entity.Node{}
	mk := func(title string, typ entity.NodeType, parent *entity.Node, progress int) *entity.Node {
		n := &entity.Node{
			Id:       uuid.New(),
			Title:    title,
			Type:     typ,
			Progress: progress,
		}
		if parent != nil {
			pid := parent.Id
			n.ParentId = &pid
		}
		byTitle[title] = n
		return n
	}

	dsa := mk("DSA", entity.NodeTypeSyllabus, nil, 0)
	arrays := mk("Arrays", entity.NodeTypeFolder, dsa, 0)
	mk("Two Sum", entity.NodeTypeFile, arrays, 100)
	mk("Sliding Window", entity.NodeTypeFile, arrays, 40)
	mk("Notes.md", entity.NodeTypeFile, dsa, 0)
	mk("Standalone", entity.NodeTypeFile, nil, 25)

	all := []*entity.Node{
		byTitle["DSA"],
		byTitle["Arrays"],
		byTitle["Two Sum"],
		byTitle["Sliding Window"],
		byTitle["Notes.md"],
		byTitle["Standalone"],
	}
	return byTitle, all
}

func titles(ns []*Node) []string {
	out := make([]string, 0, len(ns))
	for _, n := range ns {
		out = append(out, n.Title)
	}
	return out
}

func TestBuildReconstructsHierarchy(t *testing.T) {
	byTitle, all := fixture()

	roots := Build(all, nil)
	assert.Equal(t, []string{"DSA", "Standalone"}, titles(roots))

	dsa := roots[0]
	require.Equal(t, []string{"Arrays", "Notes.md"}, titles(dsa.Children))

	arrays := dsa.Children[0]
	assert.Equal(t, []string{"Two Sum", "Sliding Window"}, titles(arrays.Children))
	assert.Empty(t, dsa.Children[1].Children)

	// Building from a non-nil root yields only that subtree's children.
	subtree := Build(all, &byTitle["Arrays"].Id)
	assert.Equal(t, []string{"Two Sum", "Sliding Window"}, titles(subtree))
}

func TestBuildDerivesContainerProgress(t *testing.T) {
	_, all := fixture()

	roots := Build(all, nil)
	dsa := roots[0]
	arrays := dsa.Children[0]

	// Arrays: mean(100, 40) = 70. Files keep their own progress.
	assert.Equal(t, 70, arrays.DerivedProgress)
	assert.Equal(t, 100, arrays.Children[0].DerivedProgress)

	// DSA: mean(Arrays=70, Notes.md=0) = 35.
	assert.Equal(t, 35, dsa.DerivedProgress)

	// An empty container derives zero.
	empty := &entity.Node{Id: uuid.New(), Title: "Empty", Type: entity.NodeTypeFolder}
	roots = Build([]*entity.Node{empty}, nil)
	require.Len(t, roots, 1)
	assert.Equal(t, 0, roots[0].DerivedProgress)
}

func TestBuildToleratesCycles(t *testing.T) {
	a := &entity.Node{Id: uuid.New(), Title: "A", Type: entity.NodeTypeFolder}
	b := &entity.Node{Id: uuid.New(), Title: "B", Type: entity.NodeTypeFolder}
	a.ParentId = &b.Id
	b.ParentId = &a.Id

	// Neither node is a root; corrupted edges must not hang Build.
	roots := Build([]*entity.Node{a, b}, nil)
	assert.Empty(t, roots)

	subtree := Build([]*entity.Node{a, b}, &a.Id)
	require.Len(t, subtree, 1)
	assert.Equal(t, "B", subtree[0].Title)
	assert.Empty(t, subtree[0].Children, "cycle edge must not be followed twice")
}

func TestDescendantAndCascadeIDs(t *testing.T) {
	byTitle, all := fixture()

	desc := DescendantIDs(all, byTitle["DSA"].Id)
	assert.ElementsMatch(t, []uuid.UUID{
		byTitle["Arrays"].Id,
		byTitle["Two Sum"].Id,
		byTitle["Sliding Window"].Id,
		byTitle["Notes.md"].Id,
	}, desc)

	// Leaves have no descendants.
	assert.Empty(t, DescendantIDs(all, byTitle["Two Sum"].Id))

	cascade := CascadeIDs(all, byTitle["Arrays"].Id)
	assert.Equal(t, byTitle["Arrays"].Id, cascade[0], "cascade set starts at the root")
	assert.ElementsMatch(t, []uuid.UUID{
		byTitle["Arrays"].Id,
		byTitle["Two Sum"].Id,
		byTitle["Sliding Window"].Id,
	}, cascade)
}

func TestAncestorIDs(t *testing.T) {
	byTitle, all := fixture()

	chain := AncestorIDs(all, byTitle["Two Sum"].Id)
	assert.Equal(t, []uuid.UUID{byTitle["Arrays"].Id, byTitle["DSA"].Id}, chain)

	assert.Empty(t, AncestorIDs(all, byTitle["DSA"].Id))
	assert.Empty(t, AncestorIDs(all, byTitle["Standalone"].Id))
}

func TestContains(t *testing.T) {
	byTitle, all := fixture()

	assert.True(t, Contains(all, byTitle["DSA"].Id, byTitle["DSA"].Id))
	assert.True(t, Contains(all, byTitle["DSA"].Id, byTitle["Two Sum"].Id))
	assert.False(t, Contains(all, byTitle["Arrays"].Id, byTitle["Notes.md"].Id))
	assert.False(t, Contains(all, byTitle["Two Sum"].Id, byTitle["DSA"].Id))
}
