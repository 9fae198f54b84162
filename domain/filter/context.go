package filter

import "strings"

// NamedEntity is the (id, name) projection of a project, label, or
// section, the only part of those entities a filter query can reference.
type NamedEntity struct {
	id   string
	name string
}

// NewNamedEntity creates a NamedEntity.
func NewNamedEntity(id, name string) NamedEntity {
	return NamedEntity{id: id, name: name}
}

// ID returns the entity identifier.
func (e NamedEntity) ID() string { return e.id }

// Name returns the entity name.
func (e NamedEntity) Name() string { return e.name }

// idSet is a set of entity ids sharing one name.
type idSet map[string]struct{}

func (s idSet) contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Context holds case-insensitive name lookups for the entities a query
// can reference. Names are not unique, so each name maps to the set of
// ids carrying it. Build once per evaluation, or cache across calls while
// the underlying collections are unchanged.
type Context struct {
	projects map[string]idSet
	labels   map[string]idSet
	sections map[string]idSet
}

// BuildContext groups project, label, and section ids by lowercase name.
func BuildContext(projects, labels, sections []NamedEntity) Context {
	return Context{
		projects: groupByName(projects),
		labels:   groupByName(labels),
		sections: groupByName(sections),
	}
}

func groupByName(entities []NamedEntity) map[string]idSet {
	grouped := make(map[string]idSet, len(entities))
	for _, e := range entities {
		name := strings.ToLower(e.Name())
		ids, ok := grouped[name]
		if !ok {
			ids = make(idSet)
			grouped[name] = ids
		}
		ids[e.ID()] = struct{}{}
	}
	return grouped
}
