package search

import (
	"time"

	"github.com/PhoneMk/treasure-hunt/game/engine"
)

// dijkstra expands states cheapest-first by accumulated terrain cost.
// The goal test happens on pop, so the returned path cost is minimal.
func (s *Searcher) dijkstra() *Result {
	started := time.Now()
	init := s.grid.InitialState()
	if s.grid.IsGoal(init) {
		return trivial(Dijkstra, "", init, started)
	}

	fr := newFrontier()
	fr.push(&node{state: init}, 0)
	gScore := map[engine.StateKey]int{init.Key(): 0}
	nodes, maxMem := 0, 0

	for fr.len() > 0 {
		if m := fr.len() + len(gScore); m > maxMem {
			maxMem = m
		}

		n := fr.pop()
		nodes++

		if s.grid.IsGoal(n.state) {
			return found(Dijkstra, "", n, nodes, maxMem, started)
		}

		for _, succ := range s.grid.Expand(n.state) {
			key := succ.State.Key()
			ng := n.g + succ.StepCost
			if best, ok := gScore[key]; ok && ng >= best {
				continue
			}
			gScore[key] = ng
			fr.push(&node{state: succ.State, parent: n, g: ng, depth: n.depth + 1}, float64(ng))
		}
	}

	return exhausted(Dijkstra, "", nodes, maxMem, started)
}

// greedyBestFirst expands whichever frontier state looks closest to the
// treasure. Fast, but the path it commits to can be arbitrarily bad.
func (s *Searcher) greedyBestFirst(h Heuristic) *Result {
	started := time.Now()
	init := s.grid.InitialState()
	if s.grid.IsGoal(init) {
		return trivial(Greedy, h, init, started)
	}

	goal := s.grid.Treasure()
	minCost := s.grid.MinStepCost()

	fr := newFrontier()
	fr.push(&node{state: init}, h.Estimate(init.Pos, goal, minCost))
	visited := make(map[engine.StateKey]bool)
	nodes, maxMem := 0, 0

	for fr.len() > 0 {
		if m := fr.len() + len(visited); m > maxMem {
			maxMem = m
		}

		n := fr.pop()

		// stale duplicate pops of an expanded state are not explored work
		key := n.state.Key()
		if visited[key] {
			continue
		}
		visited[key] = true
		nodes++

		if s.grid.IsGoal(n.state) {
			return found(Greedy, h, n, nodes, maxMem, started)
		}

		for _, succ := range s.grid.Expand(n.state) {
			if visited[succ.State.Key()] {
				continue
			}
			child := &node{state: succ.State, parent: n, g: n.g + succ.StepCost, depth: n.depth + 1}
			fr.push(child, h.Estimate(succ.State.Pos, goal, minCost))
		}
	}

	return exhausted(Greedy, h, nodes, maxMem, started)
}

// astar runs A* with the given heuristic against the treasure.
func (s *Searcher) astar(h Heuristic) *Result {
	return s.astarSearch(AStar, s.grid.InitialState(), s.grid.Treasure(), 1.0, h)
}

// weightedAStar trades optimality for speed by inflating the heuristic.
func (s *Searcher) weightedAStar(h Heuristic) *Result {
	return s.astarSearch(WeightedAStar, s.grid.InitialState(), s.grid.Treasure(), s.Weight, h)
}

// astarSearch is the shared best-first core behind A*, weighted A*, and
// point-to-point planning. Priority is g + weight*h; the goal test
// happens on pop; a successor is enqueued only when it improves on the
// best known cost for its state.
func (s *Searcher) astarSearch(algo Algorithm, init engine.State, goal engine.Position, weight float64, h Heuristic) *Result {
	started := time.Now()
	if init.Pos == goal {
		return trivial(algo, h, init, started)
	}

	minCost := s.grid.MinStepCost()

	fr := newFrontier()
	fr.push(&node{state: init}, weight*h.Estimate(init.Pos, goal, minCost))
	gScore := map[engine.StateKey]int{init.Key(): 0}
	nodes, maxMem := 0, 0

	for fr.len() > 0 {
		if m := fr.len() + len(gScore); m > maxMem {
			maxMem = m
		}

		n := fr.pop()
		nodes++

		if n.state.Pos == goal {
			return found(algo, h, n, nodes, maxMem, started)
		}

		for _, succ := range s.grid.Expand(n.state) {
			key := succ.State.Key()
			ng := n.g + succ.StepCost
			if best, ok := gScore[key]; ok && ng >= best {
				continue
			}
			gScore[key] = ng
			child := &node{state: succ.State, parent: n, g: ng, depth: n.depth + 1}
			fr.push(child, float64(ng)+weight*h.Estimate(succ.State.Pos, goal, minCost))
		}
	}

	return exhausted(algo, h, nodes, maxMem, started)
}
