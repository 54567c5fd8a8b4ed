package ecs

// Tree is the parent -> ordered children adjacency of the UI.
type Tree struct {
	children map[Entity][]Entity
	parents  map[Entity]Entity
}

func NewTree() *Tree {
	return &Tree{
		children: make(map[Entity][]Entity, 64),
		parents:  make(map[Entity]Entity, 64),
	}
}

// AppendChild attaches child as the last child of parent, detaching it from
// any previous parent first.
func (t *Tree) AppendChild(parent, child Entity) {
	if old, ok := t.parents[child]; ok {
		t.detach(old, child)
	}
	t.children[parent] = append(t.children[parent], child)
	t.parents[child] = parent
}

// Children returns the children of e in insertion order. The slice must not
// be modified by the caller.
func (t *Tree) Children(e Entity) []Entity {
	return t.children[e]
}

// Parent returns the parent of e, if it has one.
func (t *Tree) Parent(e Entity) (Entity, bool) {
	p, ok := t.parents[e]
	return p, ok
}

// Remove detaches e from its parent and forgets its child list. The
// children themselves become roots.
func (t *Tree) Remove(e Entity) {
	if p, ok := t.parents[e]; ok {
		t.detach(p, e)
	}
	for _, c := range t.children[e] {
		delete(t.parents, c)
	}
	delete(t.children, e)
}

func (t *Tree) detach(parent, child Entity) {
	siblings := t.children[parent]
	for i, c := range siblings {
		if c == child {
			// Keep order; layout visits children in tree order.
			t.children[parent] = append(siblings[:i:i], siblings[i+1:]...)
			break
		}
	}
	delete(t.parents, child)
}
