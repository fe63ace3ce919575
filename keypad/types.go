package keypad

import (
	"errors"
	"fmt"
)

// Sentinel errors for keypad operations.
var (
	// ErrOutOfBounds indicates a move that would leave the pad.
	ErrOutOfBounds = errors.New("keypad: move leaves the pad")

	// ErrGap indicates a move that would land on the gap cell.
	ErrGap = errors.New("keypad: move enters the gap")

	// ErrInvalidPosition indicates a command applied from a non-key position.
	ErrInvalidPosition = errors.New("keypad: position is not a key")

	// ErrUnknownCommand indicates a byte that is not a directional-pad character.
	ErrUnknownCommand = errors.New("keypad: unknown command")

	// ErrEmptyGrid indicates a grid with no rows, no columns or no keys.
	ErrEmptyGrid = errors.New("keypad: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("keypad: all rows must have the same length")

	// ErrGapCount indicates a grid without exactly one gap cell.
	ErrGapCount = errors.New("keypad: grid must contain exactly one gap")

	// ErrDuplicateChar indicates a character appearing on more than one key.
	ErrDuplicateChar = errors.New("keypad: duplicate key character")
)

// GapChar marks the gap cell in layout rows.
const GapChar = '_'

// Position is a (row, column) cell on a pad. Row 0 is the top row.
type Position struct {
	Row, Col int
}

// String renders the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Kind selects one of the two fixed pad shapes.
type Kind uint8

const (
	// Numeric is the 4×3 digit pad at the bottom of the chain.
	Numeric Kind = iota
	// Directional is the 2×3 arrow pad used by every relay level.
	Directional
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Directional:
		return "directional"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Command is one primitive press on a directional pad.
type Command uint8

const (
	Up Command = iota
	Down
	Left
	Right
	// Activate emits the character under the cursor of the pad below.
	Activate
)

// Commands lists every command in a fixed expansion order.
var Commands = [...]Command{Activate, Right, Down, Left, Up}

// commandBytes maps a Command to its directional-pad character.
var commandBytes = [...]byte{Up: '^', Down: 'v', Left: '<', Right: '>', Activate: 'A'}

// commandDeltas holds the (row, col) offset of each movement command.
var commandDeltas = [...][2]int{Up: {-1, 0}, Down: {1, 0}, Left: {0, -1}, Right: {0, 1}}

// Byte returns the character labelling c on the directional pad.
func (c Command) Byte() byte {
	if int(c) >= len(commandBytes) {
		return '?'
	}
	return commandBytes[c]
}

// String returns the directional-pad character of c.
func (c Command) String() string {
	return string(c.Byte())
}

// IsMove reports whether c moves the cursor.
func (c Command) IsMove() bool {
	return c < Activate
}

// CommandFromByte parses a directional-pad character.
func CommandFromByte(b byte) (Command, error) {
	for c, cb := range commandBytes {
		if cb == b {
			return Command(c), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, b)
}

// FormatCommands renders a command sequence as directional-pad characters.
func FormatCommands(cmds []Command) string {
	buf := make([]byte, len(cmds))
	for i, c := range cmds {
		buf[i] = c.Byte()
	}
	return string(buf)
}
