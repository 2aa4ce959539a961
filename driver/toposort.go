/*
File    : solparse/driver/toposort.go
Package : driver

Topological ordering of the import graph (spec §4.4 "Topological sort",
§8 "Topological order" property, §9 "Cyclic import graphs"): a
depth-first post-order traversal starting from each source once, so
that cycles are tolerated rather than rejected — a source is emitted
exactly once, after all the dependencies reachable without revisiting
an in-progress node. Grounded on the DFS-with-seen-set shape used by
go-mix's evaluator-free scope walks generalized to graph traversal
(go-mix itself has no import graph; this is the pack's only DFS-shaped
precedent (pongo2's template-inheritance resolution) read as a pattern,
not copied code).
*/
package driver

// Toposort reorders sources in place into depth-first post-order over
// the import graph (spec §4.4), then remaps every Import.ToId to the
// new positions (spec §3's "after topological sort, every id in
// s.imports is < s.id" invariant).
func Toposort(sources []*Source) {
	n := len(sources)
	order := make([]SourceId, 0, n)
	seen := make([]bool, n)
	inProgress := make([]bool, n)

	var visit func(id SourceId)
	visit = func(id SourceId) {
		if seen[id] || inProgress[id] {
			return
		}
		inProgress[id] = true
		for _, imp := range sources[id].Imports {
			visit(imp.ToId)
		}
		inProgress[id] = false
		seen[id] = true
		order = append(order, id)
	}
	for id := 0; id < n; id++ {
		visit(SourceId(id))
	}

	// order[k] is the old SourceId that belongs at new position k.
	oldToNew := make([]SourceId, n)
	for newId, oldId := range order {
		oldToNew[oldId] = SourceId(newId)
	}

	permuted := make([]*Source, n)
	for newId, oldId := range order {
		s := sources[oldId]
		for i := range s.Imports {
			s.Imports[i].ToId = oldToNew[s.Imports[i].ToId]
		}
		permuted[newId] = s
	}
	copy(sources, permuted)
}
