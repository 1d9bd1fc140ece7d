// Package tree assembles the flat, parent-linked node collection into a
// navigable hierarchy and computes the transitive sets that structural
// mutations (cascade delete, move) operate on.
package tree

import (
	"github.com/google/uuid"

	"studyhub-be/internal/entity"
)

// Node is an assembled view over entity.Node. Children are always derived
// from ParentId edges, never stored.
type Node struct {
	*entity.Node
	Children []*Node
	// Derived completion: a file's own progress, or the mean of the
	// children's derived progress for container nodes.
	DerivedProgress int
}

// Build roots the hierarchy at parentId (nil for top level) and returns the
// nodes whose ParentId matches, each with its children assembled recursively.
// Input order is preserved among siblings. A cycle in the ParentId graph is
// tolerated: the offending edge is simply not followed twice.
func Build(nodes []*entity.Node, parentId *uuid.UUID) []*Node {
	byParent := indexByParent(nodes)
	visited := make(map[uuid.UUID]bool, len(nodes))
	return build(byParent, parentId, visited)
}

func build(byParent map[uuid.UUID][]*entity.Node, parentId *uuid.UUID, visited map[uuid.UUID]bool) []*Node {
	key := uuid.Nil
	if parentId != nil {
		key = *parentId
	}

	children := byParent[key]
	result := make([]*Node, 0, len(children))
	for _, child := range children {
		if visited[child.Id] {
			continue
		}
		visited[child.Id] = true

		n := &Node{Node: child}
		n.Children = build(byParent, &child.Id, visited)
		n.DerivedProgress = deriveProgress(n)
		result = append(result, n)
	}
	return result
}

func deriveProgress(n *Node) int {
	if !n.Type.IsContainer() {
		return n.Progress
	}
	if len(n.Children) == 0 {
		return 0
	}
	sum := 0
	for _, child := range n.Children {
		sum += child.DerivedProgress
	}
	return sum / len(n.Children)
}

// DescendantIDs returns every node transitively reachable from rootId by
// following ParentId edges forward. The root itself is not included.
func DescendantIDs(nodes []*entity.Node, rootId uuid.UUID) []uuid.UUID {
	byParent := indexByParent(nodes)

	var ids []uuid.UUID
	seen := map[uuid.UUID]bool{rootId: true}
	queue := []uuid.UUID{rootId}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, child := range byParent[current] {
			if seen[child.Id] {
				continue
			}
			seen[child.Id] = true
			ids = append(ids, child.Id)
			queue = append(queue, child.Id)
		}
	}
	return ids
}

// CascadeIDs is the deletion set for rootId: the root plus all descendants.
func CascadeIDs(nodes []*entity.Node, rootId uuid.UUID) []uuid.UUID {
	return append([]uuid.UUID{rootId}, DescendantIDs(nodes, rootId)...)
}

// AncestorIDs walks ParentId edges upward from nodeId to the root. The node
// itself is not included. Used for cache invalidation up the chain.
func AncestorIDs(nodes []*entity.Node, nodeId uuid.UUID) []uuid.UUID {
	byId := make(map[uuid.UUID]*entity.Node, len(nodes))
	for _, n := range nodes {
		byId[n.Id] = n
	}

	var ids []uuid.UUID
	seen := map[uuid.UUID]bool{nodeId: true}
	current := byId[nodeId]
	for current != nil && current.ParentId != nil {
		parent := byId[*current.ParentId]
		if parent == nil || seen[parent.Id] {
			break
		}
		seen[parent.Id] = true
		ids = append(ids, parent.Id)
		current = parent
	}
	return ids
}

// Contains reports whether candidateId is rootId or one of its descendants.
// Move uses this to reject a target inside the moved subtree.
func Contains(nodes []*entity.Node, rootId, candidateId uuid.UUID) bool {
	if rootId == candidateId {
		return true
	}
	for _, id := range DescendantIDs(nodes, rootId) {
		if id == candidateId {
			return true
		}
	}
	return false
}

func indexByParent(nodes []*entity.Node) map[uuid.UUID][]*entity.Node {
	byParent := make(map[uuid.UUID][]*entity.Node, len(nodes))
	for _, n := range nodes {
		key := uuid.Nil
		if n.ParentId != nil {
			key = *n.ParentId
		}
		byParent[key] = append(byParent[key], n)
	}
	return byParent
}
