package search

import (
	"time"

	"github.com/PhoneMk/treasure-hunt/game/engine"
)

// breadthFirst explores states in hop order. Visited states are marked
// when generated, so the first path found uses the fewest moves.
func (s *Searcher) breadthFirst() *Result {
	started := time.Now()
	init := s.grid.InitialState()
	if s.grid.IsGoal(init) {
		return trivial(BFS, "", init, started)
	}

	queue := []*node{{state: init}}
	visited := map[engine.StateKey]bool{init.Key(): true}
	nodes, maxMem := 0, 0

	for len(queue) > 0 {
		if m := len(queue) + len(visited); m > maxMem {
			maxMem = m
		}

		n := queue[0]
		queue = queue[1:]
		nodes++

		for _, succ := range s.grid.Expand(n.state) {
			key := succ.State.Key()
			if visited[key] {
				continue
			}
			visited[key] = true
			child := &node{state: succ.State, parent: n, g: n.g + succ.StepCost, depth: n.depth + 1}
			if s.grid.IsGoal(succ.State) {
				return found(BFS, "", child, nodes, maxMem, started)
			}
			queue = append(queue, child)
		}
	}

	return exhausted(BFS, "", nodes, maxMem, started)
}

// depthFirst explores states stack-wise, marking visited on generation.
// Expansion stops at MaxDepth, so a tight limit can exhaust the stack
// without reaching the treasure. It finds a path quickly when one exists
// but makes no optimality claim.
func (s *Searcher) depthFirst() *Result {
	started := time.Now()
	init := s.grid.InitialState()
	if s.grid.IsGoal(init) {
		return trivial(DFS, "", init, started)
	}

	stack := []*node{{state: init}}
	visited := map[engine.StateKey]bool{init.Key(): true}
	nodes, maxMem := 0, 0

	for len(stack) > 0 {
		if m := len(stack) + len(visited); m > maxMem {
			maxMem = m
		}

		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes++

		if n.depth >= s.MaxDepth {
			continue
		}

		for _, succ := range s.grid.Expand(n.state) {
			key := succ.State.Key()
			if visited[key] {
				continue
			}
			visited[key] = true
			child := &node{state: succ.State, parent: n, g: n.g + succ.StepCost, depth: n.depth + 1}
			if s.grid.IsGoal(succ.State) {
				return found(DFS, "", child, nodes, maxMem, started)
			}
			stack = append(stack, child)
		}
	}

	return exhausted(DFS, "", nodes, maxMem, started)
}

// visitKey tracks visits per depth so a round of iterative deepening can
// rediscover a state along a shorter prefix.
type visitKey struct {
	key   engine.StateKey
	depth int
}

// iterativeDeepening runs depth-limited searches with growing limits.
// Node counts accumulate across rounds. The search stops once a round
// explores no more nodes than the previous round, meaning the reachable
// space is exhausted.
func (s *Searcher) iterativeDeepening() *Result {
	started := time.Now()
	init := s.grid.InitialState()
	if s.grid.IsGoal(init) {
		return trivial(IDS, "", init, started)
	}

	nodes, maxMem := 0, 0
	prevRound := -1

	for limit := 0; limit <= s.MaxDepth; limit++ {
		stack := []*node{{state: init}}
		visited := map[visitKey]bool{{init.Key(), 0}: true}
		round := 0

		for len(stack) > 0 {
			if m := len(stack) + len(visited); m > maxMem {
				maxMem = m
			}

			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			nodes++
			round++

			if n.depth == limit {
				continue
			}

			for _, succ := range s.grid.Expand(n.state) {
				vk := visitKey{succ.State.Key(), n.depth + 1}
				if visited[vk] {
					continue
				}
				visited[vk] = true
				child := &node{state: succ.State, parent: n, g: n.g + succ.StepCost, depth: n.depth + 1}
				if s.grid.IsGoal(succ.State) {
					return found(IDS, "", child, nodes, maxMem, started)
				}
				stack = append(stack, child)
			}
		}

		if round == prevRound {
			break
		}
		prevRound = round
	}

	return exhausted(IDS, "", nodes, maxMem, started)
}
