package codec

import (
	"fmt"

	"github.com/notnil/chess"
)

// Decode reconstructs a position from a 773-element feature vector. It is
// the exact inverse of Encode over the modeled fields (piece placement,
// side to move, castling rights). Plane disjointness is not checked: if a
// corrupt vector claims one square in two planes, the plane visited later
// in ColorOrder/PieceOrder wins.
func Decode(vec []float32) (*Position, error) {
	if len(vec) != VectorSize {
		return nil, fmt.Errorf("%w: feature vector has length %d, want %d", ErrMalformedInput, len(vec), VectorSize)
	}

	pieces := make(map[chess.Square]chess.Piece)
	idx := 0
	for _, color := range ColorOrder {
		for _, pieceType := range PieceOrder {
			piece := pieceFor(color, pieceType)
			for sq := 0; sq < PlaneSize; sq++ {
				if vec[idx] != 0 {
					pieces[chess.Square(sq)] = piece
				}
				idx++
			}
		}
	}

	turn := chess.Black
	if vec[TurnIndex] != 0 {
		turn = chess.White
	}

	return &Position{
		Board: chess.NewBoard(pieces),
		Turn:  turn,
		Castling: CastlingRights{
			WhiteKingSide:  vec[CastlingOffset] != 0,
			WhiteQueenSide: vec[CastlingOffset+1] != 0,
			BlackKingSide:  vec[CastlingOffset+2] != 0,
			BlackQueenSide: vec[CastlingOffset+3] != 0,
		},
	}, nil
}

// Validate checks that a vector has the contract shape: exactly 773
// elements, every element 0 or 1, and no square claimed by more than one
// plane. Encode output always passes; storage uses it to audit vectors
// read back from disk.
func Validate(vec []float32) error {
	if len(vec) != VectorSize {
		return fmt.Errorf("%w: feature vector has length %d, want %d", ErrMalformedInput, len(vec), VectorSize)
	}
	for i, v := range vec {
		if v != 0 && v != 1 {
			return fmt.Errorf("%w: element %d is %v, want 0 or 1", ErrMalformedInput, i, v)
		}
	}
	for sq := 0; sq < PlaneSize; sq++ {
		claimed := 0
		for plane := 0; plane < NumPlanes; plane++ {
			if vec[plane*PlaneSize+sq] != 0 {
				claimed++
			}
		}
		if claimed > 1 {
			return fmt.Errorf("%w: square %d claimed by %d planes", ErrMalformedInput, sq, claimed)
		}
	}
	return nil
}
