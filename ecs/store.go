package ecs

// Store keeps components in named slots ("bounds", "scroll_offset", ...).
// A slot maps entities to a pointer of the component value so callers can
// mutate in place through TryMut.
type Store struct {
	slots map[string]map[Entity]any
}

func NewStore() *Store {
	return &Store{
		slots: make(map[string]map[Entity]any, 16),
	}
}

// Set stores a copy of value under name for e, replacing any previous value.
func Set[T any](s *Store, e Entity, name string, value T) {
	slot, ok := s.slots[name]
	if !ok {
		slot = make(map[Entity]any, 64)
		s.slots[name] = slot
	}
	v := value
	slot[e] = &v
}

// Component returns the value stored under name for e. A missing component,
// or one stored with a different type, yields the zero value of T.
func Component[T any](s *Store, e Entity, name string) T {
	if p, ok := TryMut[T](s, e, name); ok {
		return *p
	}
	var zero T
	return zero
}

// TryMut returns a pointer to the stored component so it can be changed in
// place. The boolean is false when e has no such component of type T.
func TryMut[T any](s *Store, e Entity, name string) (*T, bool) {
	p, ok := s.slots[name][e].(*T)
	return p, ok
}

// Has reports whether e carries a component under name.
func (s *Store) Has(e Entity, name string) bool {
	_, ok := s.slots[name][e]
	return ok
}

// Remove drops a single component.
func (s *Store) Remove(e Entity, name string) {
	delete(s.slots[name], e)
}

// RemoveAll drops every component of e.
func (s *Store) RemoveAll(e Entity) {
	for _, slot := range s.slots {
		delete(slot, e)
	}
}

// Len returns the number of entities carrying a component under name.
func (s *Store) Len(name string) int {
	return len(s.slots[name])
}
