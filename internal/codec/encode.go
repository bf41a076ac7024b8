package codec

import "github.com/notnil/chess"

// Plane returns the 64-element presence bitmap for one (color, piece type)
// pair: index rank*8+file is 1 iff that square holds such a piece.
func Plane(board *chess.Board, color chess.Color, pieceType chess.PieceType) []float32 {
	plane := make([]float32, PlaneSize)
	want := pieceFor(color, pieceType)
	for sq := 0; sq < PlaneSize; sq++ {
		if board.Piece(chess.Square(sq)) == want {
			plane[sq] = 1
		}
	}
	return plane
}

// Encode converts a position into its 773-element binary feature vector:
// one plane per (color, piece type) pair in ColorOrder/PieceOrder, then the
// side-to-move bit, then the four castling bits.
func Encode(p *Position) []float32 {
	vec := make([]float32, 0, VectorSize)
	for _, color := range ColorOrder {
		for _, pieceType := range PieceOrder {
			vec = append(vec, Plane(p.Board, color, pieceType)...)
		}
	}
	vec = append(vec, bit(p.Turn == chess.White))
	vec = append(vec,
		bit(p.Castling.WhiteKingSide),
		bit(p.Castling.WhiteQueenSide),
		bit(p.Castling.BlackKingSide),
		bit(p.Castling.BlackQueenSide),
	)
	return vec
}

// EncodeFEN parses a FEN string and encodes the resulting position.
func EncodeFEN(fen string) ([]float32, error) {
	p, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return Encode(p), nil
}

func bit(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
