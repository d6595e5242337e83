package csp

import (
	"fmt"
	"sort"
)

// allDifferentConstraint is the baseline AllDifferent: forward checking plus
// singleton pruning, repeated to its own internal fixed point. Whenever a
// variable in scope is bound to a single Value, that Value is removed from
// every other variable's Domain; removing it can itself create a new
// singleton (e.g. a 2-element Domain losing one candidate), so the scan
// repeats until no further singleton appears. If two distinct scope
// variables are ever singletons on the same Value, whether that held on
// entry or only arose after a pruning round, the constraint is
// unsatisfiable. This is weaker than full generalised arc consistency (it
// misses the "3 variables, 2 values" pigeonhole case StrongAllDifferent
// catches without search) but is the strength spec.md §4.4 names as the
// default.
type allDifferentConstraint struct {
	vars []VariableId
}

// AllDifferent returns a constraint requiring every variable in vars to
// take a distinct Value, enforced by forward checking.
func AllDifferent(vars []VariableId) Constraint {
	return allDifferentConstraint{vars: append([]VariableId(nil), vars...)}
}

func (c allDifferentConstraint) Scope() []VariableId { return c.vars }
func (c allDifferentConstraint) String() string      { return fmt.Sprintf("AllDifferent(%v)", c.vars) }

func (c allDifferentConstraint) Propagate(p Problem, _ *VariableId) (PropagationOutcome, error) {
	next := p
	var modified []VariableId

	for {
		singletons := map[Value]int{}
		for _, v := range c.vars {
			if val, ok := next.GetDomain(v).Singleton(); ok {
				singletons[val]++
			}
		}
		for _, count := range singletons {
			if count > 1 {
				return OutcomeInconsistent(), nil
			}
		}
		if len(singletons) == 0 {
			break
		}

		roundChanged := false
		for _, v := range c.vars {
			d := next.GetDomain(v)
			if _, isSingleton := d.Singleton(); isSingleton {
				continue
			}
			pruned := d
			for s := range singletons {
				pruned = pruned.Remove(s)
			}
			if pruned.Equal(d) {
				continue
			}
			if pruned.IsEmpty() {
				return OutcomeInconsistent(), nil
			}
			next = next.SetDomain(v, pruned)
			modified = append(modified, v)
			roundChanged = true
		}
		if !roundChanged {
			break
		}
	}

	if len(modified) == 0 {
		return OutcomeNoChange(), nil
	}
	return OutcomeChanged(next, modified), nil
}

// strongAllDifferentConstraint is Régin's algorithm: maximum bipartite
// matching between variables and values, followed by a value-graph SCC
// decomposition that identifies every (variable, value) edge that cannot
// belong to any complete matching. It achieves full generalised arc
// consistency, at O(n^2 * d) cost instead of allDifferentConstraint's O(n).
// It requires every Value in scope to be ordinal (comparable via
// Value.Less with a stable total order); in practice this means integer
// domains, which is how every spec.md scenario that needs the stronger
// form (Sudoku) uses it.
type strongAllDifferentConstraint struct {
	vars []VariableId
}

// StrongAllDifferent returns a constraint requiring every variable in vars
// to take a distinct Value, enforced by Régin's matching-based algorithm.
func StrongAllDifferent(vars []VariableId) Constraint {
	return strongAllDifferentConstraint{vars: append([]VariableId(nil), vars...)}
}

func (c strongAllDifferentConstraint) Scope() []VariableId { return c.vars }
func (c strongAllDifferentConstraint) String() string {
	return fmt.Sprintf("StrongAllDifferent(%v)", c.vars)
}

func (c strongAllDifferentConstraint) Propagate(p Problem, _ *VariableId) (PropagationOutcome, error) {
	n := len(c.vars)
	if n == 0 {
		return OutcomeNoChange(), nil
	}

	domains := make([]Domain, n)
	valueIndex := map[Value]int{}
	var universe []Value
	for i, v := range c.vars {
		d := p.GetDomain(v)
		domains[i] = d
		for _, val := range d.Iter() {
			if _, ok := valueIndex[val]; !ok {
				valueIndex[val] = len(universe)
				universe = append(universe, val)
			}
		}
	}
	m := len(universe)
	if m < n {
		return OutcomeInconsistent(), nil
	}

	matchVal, matchVar := maxBipartiteMatching(domains, valueIndex, n, m)
	matched := 0
	for _, vi := range matchVal {
		if vi != -1 {
			matched++
		}
	}
	if matched < n {
		return OutcomeInconsistent(), nil
	}

	graph := buildValueGraph(domains, valueIndex, matchVar, n, m)
	sccs := computeSCCs(graph)

	present := make([]bool, m)
	for _, d := range domains {
		for _, val := range d.Iter() {
			present[valueIndex[val]] = true
		}
	}
	var freeValueNodes []int
	for vi := 0; vi < m; vi++ {
		if present[vi] && matchVal[vi] == -1 {
			freeValueNodes = append(freeValueNodes, n+vi)
		}
	}

	reachable := make([]bool, graph.size)
	if len(freeValueNodes) > 0 {
		stack := append([]int(nil), freeValueNodes...)
		for _, node := range freeValueNodes {
			reachable[node] = true
		}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, w := range graph.adj[top] {
				if !reachable[w] {
					reachable[w] = true
					stack = append(stack, w)
				}
			}
		}
	}

	var modified []VariableId
	next := p
	for i, v := range c.vars {
		original := domains[i]
		varSCC := sccs[i]

		kept := original.Retain(func(val Value) bool {
			vi := valueIndex[val]
			if matchVar[i] == vi {
				return true
			}
			valNode := n + vi
			return reachable[valNode] || varSCC == sccs[valNode]
		})

		if kept.Equal(original) {
			continue
		}
		if kept.IsEmpty() {
			return OutcomeInconsistent(), nil
		}
		next = next.SetDomain(v, kept)
		domains[i] = kept
		modified = append(modified, v)
	}

	if len(modified) == 0 {
		return OutcomeNoChange(), nil
	}
	return OutcomeChanged(next, modified), nil
}

// maxBipartiteMatching matches variables (0..n-1) to value indices (0..m-1)
// via augmenting-path DFS, singletons first for determinism. Returns
// matchVal[valueIndex] = matched variable (-1 if free) and
// matchVar[variable] = matched value index (-1 if unmatched).
func maxBipartiteMatching(domains []Domain, valueIndex map[Value]int, n, m int) (matchVal, matchVar []int) {
	matchVal = make([]int, m)
	for i := range matchVal {
		matchVal[i] = -1
	}
	matchVar = make([]int, n)
	for i := range matchVar {
		matchVar[i] = -1
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		si, sj := domains[order[i]].Size(), domains[order[j]].Size()
		if si == 1 && sj != 1 {
			return true
		}
		if sj == 1 && si != 1 {
			return false
		}
		return si < sj
	})

	for _, vi := range order {
		if domains[vi].Size() != 1 {
			continue
		}
		val, _ := domains[vi].Singleton()
		idx := valueIndex[val]
		if matchVal[idx] == -1 {
			matchVal[idx] = vi
			matchVar[vi] = idx
		}
	}

	for _, vi := range order {
		if matchVar[vi] != -1 {
			continue
		}
		visited := make([]bool, m)
		augment(vi, domains, valueIndex, matchVal, matchVar, visited)
	}

	return matchVal, matchVar
}

func augment(vi int, domains []Domain, valueIndex map[Value]int, matchVal, matchVar []int, visited []bool) bool {
	for _, val := range domains[vi].Iter() {
		idx := valueIndex[val]
		if visited[idx] {
			continue
		}
		visited[idx] = true

		if matchVal[idx] == -1 {
			matchVal[idx] = vi
			matchVar[vi] = idx
			return true
		}
		if augment(matchVal[idx], domains, valueIndex, matchVal, matchVar, visited) {
			matchVal[idx] = vi
			matchVar[vi] = idx
			return true
		}
	}
	return false
}

// valueGraph is Régin's alternating-path graph: nodes 0..n-1 are variables,
// n..n+m-1 are values. A matched (variable, value) edge points variable ->
// value; every other edge present in some domain points value -> variable.
type valueGraph struct {
	adj  [][]int
	size int
}

func buildValueGraph(domains []Domain, valueIndex map[Value]int, matchVar []int, n, m int) *valueGraph {
	g := &valueGraph{adj: make([][]int, n+m), size: n + m}
	for vi := 0; vi < n; vi++ {
		matched := matchVar[vi]
		for _, val := range domains[vi].Iter() {
			idx := valueIndex[val]
			valNode := n + idx
			if idx == matched {
				g.adj[vi] = append(g.adj[vi], valNode)
			} else {
				g.adj[valNode] = append(g.adj[valNode], vi)
			}
		}
	}
	return g
}

// computeSCCs labels every node of g with its strongly connected component
// via Tarjan's algorithm. Two nodes share a component iff they lie on a
// common alternating cycle, which is exactly the condition Régin's
// algorithm uses to decide that a (variable, value) edge is safe to keep.
func computeSCCs(g *valueGraph) []int {
	scc := make([]int, g.size)
	for i := range scc {
		scc[i] = -1
	}
	indices := make([]int, g.size)
	lowlink := make([]int, g.size)
	onStack := make([]bool, g.size)
	for i := range indices {
		indices[i] = -1
	}
	index := 0
	sccCount := 0
	var stack []int

	var strongconnect func(int)
	strongconnect = func(v int) {
		indices[v] = index
		lowlink[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range g.adj[v] {
			if indices[w] == -1 {
				strongconnect(w)
				if lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			} else if onStack[w] && indices[w] < lowlink[v] {
				lowlink[v] = indices[w]
			}
		}

		if lowlink[v] == indices[v] {
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc[w] = sccCount
				if w == v {
					break
				}
			}
			sccCount++
		}
	}

	for v := 0; v < g.size; v++ {
		if indices[v] == -1 {
			strongconnect(v)
		}
	}
	return scc
}
