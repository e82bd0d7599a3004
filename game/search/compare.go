package search

// Comparison aggregates the results of running every strategy on one
// grid with a shared heuristic.
type Comparison struct {
	Heuristic Heuristic `json:"heuristic"`
	Results   []*Result `json:"results"`

	// Best is the successful strategy that explored the fewest nodes,
	// empty when every strategy failed.
	Best Algorithm `json:"best,omitempty"`

	// AvgBlindNodes and AvgInformedNodes average nodes explored across
	// the strategy families, counting failures too.
	AvgBlindNodes    float64 `json:"avg_blind_nodes"`
	AvgInformedNodes float64 `json:"avg_informed_nodes"`

	// Improvement is how much less exploring the informed family did,
	// as a fraction of the blind family's average.
	Improvement float64 `json:"improvement"`
}

// CompareAll runs all seven strategies with the given heuristic and
// aggregates their statistics. Blind strategies ignore the heuristic.
func (s *Searcher) CompareAll(h Heuristic) (*Comparison, error) {
	parsed, err := ParseHeuristic(string(h))
	if err != nil {
		return nil, err
	}

	cmp := &Comparison{Heuristic: parsed}
	for _, algo := range Algorithms() {
		res, err := s.Run(algo, parsed)
		if err != nil {
			return nil, err
		}
		cmp.Results = append(cmp.Results, res)
	}

	cmp.summarize()
	return cmp, nil
}

func (c *Comparison) summarize() {
	bestNodes := -1
	blindSum, blindCount := 0, 0
	informedSum, informedCount := 0, 0

	for _, res := range c.Results {
		if res.Algorithm.informed() || res.Algorithm == Dijkstra {
			informedSum += res.NodesExplored
			informedCount++
		} else {
			blindSum += res.NodesExplored
			blindCount++
		}
		if res.Success && (bestNodes == -1 || res.NodesExplored < bestNodes) {
			bestNodes = res.NodesExplored
			c.Best = res.Algorithm
		}
	}

	if blindCount > 0 {
		c.AvgBlindNodes = float64(blindSum) / float64(blindCount)
	}
	if informedCount > 0 {
		c.AvgInformedNodes = float64(informedSum) / float64(informedCount)
	}
	if c.AvgBlindNodes > 0 {
		c.Improvement = (c.AvgBlindNodes - c.AvgInformedNodes) / c.AvgBlindNodes
	}
}
