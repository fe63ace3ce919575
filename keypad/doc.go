// Package keypad describes the two fixed keypad shapes used by a relay chain
// and simulates a single command applied to a cursor on one of them.
//
// Layouts:
//
//	Numeric (4×3)        Directional (2×3)
//	+---+---+---+            +---+---+
//	| 7 | 8 | 9 |            | ^ | A |
//	+---+---+---+        +---+---+---+
//	| 4 | 5 | 6 |        | < | v | > |
//	+---+---+---+        +---+---+---+
//	| 1 | 2 | 3 |
//	+---+---+---+
//	    | 0 | A |
//	    +---+---+
//
// Each layout owns a bijection between its characters and its non-gap
// positions. The gap cell has no character and can never be entered.
//
// Commands:
//
//   - Up, Down, Left, Right move the cursor one cell.
//   - Activate leaves the cursor in place and emits the character under it.
//
// Errors (sentinel):
//
//   - ErrOutOfBounds     a move would leave the pad.
//   - ErrGap             a move would enter the gap cell.
//   - ErrInvalidPosition a command was applied from a position that is not a key.
//   - ErrEmptyGrid, ErrNonRectangular, ErrGapCount, ErrDuplicateChar
//     describe rejected grids passed to NewLayout.
//
// Layouts are immutable once built and safe for concurrent use.
package keypad
