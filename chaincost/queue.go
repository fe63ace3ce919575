package chaincost

// searchItem is a heap entry. seq records insertion order and breaks ties
// between equal costs so both searches are deterministic.
type searchItem[S any] struct {
	cost  int64
	seq   uint64
	state S
}

// searchPQ is a min-heap of *searchItem ordered by (cost, seq).
type searchPQ[S any] []*searchItem[S]

func (pq searchPQ[S]) Len() int { return len(pq) }

func (pq searchPQ[S]) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

func (pq searchPQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *searchPQ[S]) Push(x any) { *pq = append(*pq, x.(*searchItem[S])) }

func (pq *searchPQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
