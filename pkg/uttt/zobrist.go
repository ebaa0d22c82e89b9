package uttt

// Zobrist keys for every (cell, piece) pair and the side to move,
// see https://en.wikipedia.org/wiki/Zobrist_hashing
//
// The table is generated from a fixed seed, so fingerprints are stable
// across runs.
var (
	_hashCells [9][9][2]uint64
	_hashTurn  uint64
)

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func init() {
	rng := splitmix64{state: 0x5eed0f0771c7ac70}
	for bi := range _hashCells {
		for si := range _hashCells[bi] {
			_hashCells[bi][si][0] = rng.next()
			_hashCells[bi][si][1] = rng.next()
		}
	}
	_hashTurn = rng.next()
}

func pieceHash(bigIndex, smallIndex int, piece PieceType) uint64 {
	idx := 0
	if piece == PieceCross {
		idx = 1
	}
	return _hashCells[bigIndex][smallIndex][idx]
}

// Compute the fingerprint from scratch, Apply keeps it updated incrementally
func (b Board) computeHash() uint64 {
	var hash uint64
	for bi := 0; bi < 9; bi++ {
		sb := &b.cells[bi/3][bi%3]
		for si := 0; si < 9; si++ {
			if p := sb[si/3][si%3]; p != PieceNone {
				hash ^= pieceHash(bi, si, p)
			}
		}
	}
	if b.toMove == PieceCircle {
		hash ^= _hashTurn
	}
	return hash
}

// Structural fingerprint of the cell grid and the side to move
func (b Board) Key() uint64 {
	return b.hash
}
