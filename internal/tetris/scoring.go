package tetris

// lineClearPoints is indexed by rows cleared in a single lock. A lock can
// clear at most four rows, the height of the tallest piece.
var lineClearPoints = [...]int{0, 100, 300, 500, 800}

// ScoreForLines returns the points for clearing n rows in one lock.
func ScoreForLines(n int) int {
	if n < 0 || n >= len(lineClearPoints) {
		return 0
	}
	return lineClearPoints[n]
}
