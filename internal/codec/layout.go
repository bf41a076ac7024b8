package codec

import "github.com/notnil/chess"

// Feature vector layout: 12 piece planes of 64 squares each, then the
// side-to-move bit, then 4 castling-rights bits. The downstream model
// consumes this exact column order, so the constants below are a wire
// contract, not an implementation detail.
const (
	PlaneSize      = 64 // squares per plane, index = rank*8 + file
	NumPlanes      = 12 // 6 piece types × 2 colors
	BoardBits      = NumPlanes * PlaneSize
	TurnIndex      = BoardBits // 768: 1 = white to move
	CastlingOffset = TurnIndex + 1
	NumCastling    = 4 // white-K, white-Q, black-k, black-q
	VectorSize     = CastlingOffset + NumCastling // 773
)

// ColorOrder and PieceOrder fix the plane iteration order. Encode and
// Decode both walk these slices; changing either reorders the vector
// layout and breaks every previously encoded position.
var (
	ColorOrder = []chess.Color{chess.White, chess.Black}
	PieceOrder = []chess.PieceType{chess.Pawn, chess.Rook, chess.Knight, chess.Bishop, chess.Queen, chess.King}
)

// pieceFor returns the concrete piece for a (color, type) pair.
func pieceFor(color chess.Color, pieceType chess.PieceType) chess.Piece {
	if color == chess.White {
		switch pieceType {
		case chess.Pawn:
			return chess.WhitePawn
		case chess.Rook:
			return chess.WhiteRook
		case chess.Knight:
			return chess.WhiteKnight
		case chess.Bishop:
			return chess.WhiteBishop
		case chess.Queen:
			return chess.WhiteQueen
		case chess.King:
			return chess.WhiteKing
		}
		return chess.NoPiece
	}
	switch pieceType {
	case chess.Pawn:
		return chess.BlackPawn
	case chess.Rook:
		return chess.BlackRook
	case chess.Knight:
		return chess.BlackKnight
	case chess.Bishop:
		return chess.BlackBishop
	case chess.Queen:
		return chess.BlackQueen
	case chess.King:
		return chess.BlackKing
	}
	return chess.NoPiece
}
