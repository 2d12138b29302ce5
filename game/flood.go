package game

import (
	"github.com/gammazero/deque"

	"github.com/they4kman/gosweep/util/collections"
)

// flood reveals the connected region of empty cells around origin, along with
// the numbered cells bordering it. Flagged cells are left alone and stop the
// cascade. origin must already be revealed. Returns the number of cells visited.
func flood(b *board, origin Point) int {
	visited := collections.NewSet(origin)
	queue := deque.New[Point]()

	for _, neighbor := range b.field.Neighbors(origin) {
		queue.PushBack(neighbor)
	}

	for queue.Len() > 0 {
		p := queue.PopFront()

		// Don't visit, if already visited
		if visited.Contains(p) {
			continue
		}
		visited.Add(p)

		if b.coverAt(p) == Flagged {
			continue
		}
		b.markRevealed(p)

		if b.field.Value(p.Row, p.Col) == 0 {
			for _, neighbor := range b.field.Neighbors(p) {
				if !visited.Contains(neighbor) {
					queue.PushBack(neighbor)
				}
			}
		}
	}

	return visited.Len()
}
