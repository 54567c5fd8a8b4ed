// Package ecs holds the entity/component storage the layout engine reads
// from and writes to: an entity pool, a component store keyed by slot name,
// and the parent/child tree.
package ecs

// Entity is an opaque element identifier. Zero is never issued.
type Entity uint32

// Manager bundles the entity pool, component store and tree of one UI.
type Manager struct {
	next  Entity
	store *Store
	tree  *Tree
}

func NewManager() *Manager {
	return &Manager{
		store: NewStore(),
		tree:  NewTree(),
	}
}

func (m *Manager) Store() *Store { return m.store }
func (m *Manager) Tree() *Tree   { return m.tree }

// CreateEntity issues a fresh entity with no components and no parent.
func (m *Manager) CreateEntity() Entity {
	m.next++
	return m.next
}

// RemoveEntity detaches e and its subtree from the tree and drops all of
// their components.
func (m *Manager) RemoveEntity(e Entity) {
	for _, child := range m.tree.Children(e) {
		m.RemoveEntity(child)
	}
	m.tree.Remove(e)
	m.store.RemoveAll(e)
}
