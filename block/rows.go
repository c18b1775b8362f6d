package block

import "fmt"

// Rows groups classified blocks into rows, one per distinct Y, in the
// order they arrive. The input must be in row-major order as emitted by
// Sample: non-decreasing Y, strictly increasing X within a row. That
// precondition is validated rather than assumed, so a caller feeding
// blocks from anywhere other than the sampler is caught instead of
// producing scrambled art.
//
// The result is derived freshly from the input on every call and shares
// no state with it beyond the blocks themselves.
func Rows(blocks []ClassifiedBlock) ([][]ClassifiedBlock, error) {
	if len(blocks) == 0 {
		return nil, nil
	}

	var rows [][]ClassifiedBlock
	row := []ClassifiedBlock{blocks[0]}

	for i := 1; i < len(blocks); i++ {
		prev, cur := blocks[i-1].Position, blocks[i].Position
		switch {
		case cur.Y > prev.Y:
			rows = append(rows, row)
			row = []ClassifiedBlock{blocks[i]}
		case cur.Y == prev.Y && cur.X > prev.X:
			row = append(row, blocks[i])
		default:
			return nil, fmt.Errorf("block: blocks out of row-major order at index %d: (%d,%d) after (%d,%d)",
				i, cur.X, cur.Y, prev.X, prev.Y)
		}
	}

	return append(rows, row), nil
}
