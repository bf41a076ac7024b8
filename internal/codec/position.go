package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// ErrMalformedInput reports an unparsable position descriptor or a feature
// vector of the wrong length.
var ErrMalformedInput = errors.New("malformed input")

// CastlingRights holds the four independent castling flags.
type CastlingRights struct {
	WhiteKingSide  bool
	WhiteQueenSide bool
	BlackKingSide  bool
	BlackQueenSide bool
}

// Position is the board state the codec models: piece placement, side to
// move, and castling rights. En passant targets and move counters are not
// modeled and do not survive a round trip.
type Position struct {
	Board    *chess.Board
	Turn     chess.Color
	Castling CastlingRights
}

// ParseFEN normalizes a FEN string into a Position. Fields beyond piece
// placement, turn, and castling rights are parsed but discarded.
func ParseFEN(fen string) (*Position, error) {
	fenOpt, err := chess.FEN(strings.TrimSpace(fen))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid FEN %q: %v", ErrMalformedInput, fen, err)
	}
	return FromPosition(chess.NewGame(fenOpt).Position()), nil
}

// FromPosition extracts the modeled fields from an already-parsed position.
func FromPosition(pos *chess.Position) *Position {
	rights := pos.CastleRights()
	return &Position{
		Board: pos.Board(),
		Turn:  pos.Turn(),
		Castling: CastlingRights{
			WhiteKingSide:  rights.CanCastle(chess.White, chess.KingSide),
			WhiteQueenSide: rights.CanCastle(chess.White, chess.QueenSide),
			BlackKingSide:  rights.CanCastle(chess.Black, chess.KingSide),
			BlackQueenSide: rights.CanCastle(chess.Black, chess.QueenSide),
		},
	}
}

// FEN renders the position in FEN notation. The en passant, halfmove, and
// fullmove fields are not modeled and render as "- 0 1".
func (p *Position) FEN() string {
	var castle strings.Builder
	if p.Castling.WhiteKingSide {
		castle.WriteByte('K')
	}
	if p.Castling.WhiteQueenSide {
		castle.WriteByte('Q')
	}
	if p.Castling.BlackKingSide {
		castle.WriteByte('k')
	}
	if p.Castling.BlackQueenSide {
		castle.WriteByte('q')
	}
	if castle.Len() == 0 {
		castle.WriteByte('-')
	}
	return fmt.Sprintf("%s %s %s - 0 1", p.Board.String(), p.Turn, castle.String())
}
