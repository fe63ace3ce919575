package keypad

import "fmt"

// Apply executes command c with the cursor at p.
//
// Movement commands return the neighbouring key and a zero byte. They fail
// with ErrOutOfBounds when the neighbour lies off the pad and with ErrGap
// when it is the gap cell. Activate returns p unchanged together with the
// character it emits.
//
// A p that is not a key yields ErrInvalidPosition.
// Complexity: O(1).
func (l *Layout) Apply(p Position, c Command) (Position, byte, error) {
	ch, ok := l.CharAt(p)
	if !ok {
		return p, 0, fmt.Errorf("%w: %s on %s pad", ErrInvalidPosition, p, l.kind)
	}
	if c == Activate {
		return p, ch, nil
	}
	if int(c) >= len(commandDeltas) {
		return p, 0, fmt.Errorf("%w: %d", ErrUnknownCommand, c)
	}
	d := commandDeltas[c]
	next := Position{p.Row + d[0], p.Col + d[1]}
	if !l.InBounds(next) {
		return p, 0, ErrOutOfBounds
	}
	if l.IsGap(next) {
		return p, 0, ErrGap
	}

	return next, 0, nil
}

// Type replays cmds from the key labelled start and returns every emitted
// character in order. It stops at the first failing command.
func (l *Layout) Type(start byte, cmds []Command) (string, error) {
	p, ok := l.PosOf(start)
	if !ok {
		return "", fmt.Errorf("%w: start %q", ErrInvalidPosition, start)
	}
	out := make([]byte, 0, len(cmds))
	for i, c := range cmds {
		next, ch, err := l.Apply(p, c)
		if err != nil {
			return string(out), fmt.Errorf("keypad: command %d (%s) from %s: %w", i, c, p, err)
		}
		if c == Activate {
			out = append(out, ch)
		}
		p = next
	}

	return string(out), nil
}
