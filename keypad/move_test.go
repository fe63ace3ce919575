package keypad_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/relaypad/keypad"
)

// MoveSuite exercises Apply on both pad kinds.
type MoveSuite struct {
	suite.Suite
}

// TestMovesOnNumeric walks the cursor around the numeric pad.
func (s *MoveSuite) TestMovesOnNumeric() {
	l := keypad.NumericLayout()
	five := l.MustPosOf('5')
	cases := []struct {
		cmd  keypad.Command
		want byte
	}{
		{keypad.Up, '8'},
		{keypad.Down, '2'},
		{keypad.Left, '4'},
		{keypad.Right, '6'},
	}
	for _, tc := range cases {
		next, emitted, err := l.Apply(five, tc.cmd)
		require.NoError(s.T(), err, "5 %s", tc.cmd)
		require.Zero(s.T(), emitted, "moves emit nothing")
		ch, _ := l.CharAt(next)
		require.Equal(s.T(), tc.want, ch, "5 %s", tc.cmd)
	}
}

// TestActivateEmits checks Activate keeps the cursor and emits its key.
func (s *MoveSuite) TestActivateEmits() {
	for _, l := range []*keypad.Layout{keypad.NumericLayout(), keypad.DirectionalLayout()} {
		for i := 0; i < len(l.Alphabet()); i++ {
			ch := l.Alphabet()[i]
			p := l.MustPosOf(ch)
			next, emitted, err := l.Apply(p, keypad.Activate)
			require.NoError(s.T(), err)
			require.Equal(s.T(), p, next)
			require.Equal(s.T(), ch, emitted)
		}
	}
}

// TestFailures covers leaving the pad and entering the gap.
func (s *MoveSuite) TestFailures() {
	num := keypad.NumericLayout()
	dir := keypad.DirectionalLayout()
	cases := []struct {
		name string
		l    *keypad.Layout
		from byte
		cmd  keypad.Command
		err  error
	}{
		{"NumericTopEdge", num, '8', keypad.Up, keypad.ErrOutOfBounds},
		{"NumericRightEdge", num, 'A', keypad.Right, keypad.ErrOutOfBounds},
		{"NumericBottomEdge", num, '0', keypad.Down, keypad.ErrOutOfBounds},
		{"NumericGapFromZero", num, '0', keypad.Left, keypad.ErrGap},
		{"NumericGapFromOne", num, '1', keypad.Down, keypad.ErrGap},
		{"DirectionalGapFromUp", dir, '^', keypad.Left, keypad.ErrGap},
		{"DirectionalGapFromLeft", dir, '<', keypad.Up, keypad.ErrGap},
		{"DirectionalTopEdge", dir, 'A', keypad.Up, keypad.ErrOutOfBounds},
		{"DirectionalLeftEdge", dir, '<', keypad.Left, keypad.ErrOutOfBounds},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			p := tc.l.MustPosOf(tc.from)
			_, _, err := tc.l.Apply(p, tc.cmd)
			s.Require().ErrorIs(err, tc.err)
		})
	}
}

// TestInvalidStart rejects commands issued from the gap or off the pad.
func (s *MoveSuite) TestInvalidStart() {
	l := keypad.NumericLayout()
	_, _, err := l.Apply(l.Gap(), keypad.Activate)
	s.Require().ErrorIs(err, keypad.ErrInvalidPosition)
	_, _, err = l.Apply(keypad.Position{Row: 9, Col: 9}, keypad.Up)
	s.Require().ErrorIs(err, keypad.ErrInvalidPosition)
}

// TestNoMoveReachesGap applies every command from every key and checks that
// no successful move lands on the gap or off the pad.
func (s *MoveSuite) TestNoMoveReachesGap() {
	for _, l := range []*keypad.Layout{keypad.NumericLayout(), keypad.DirectionalLayout()} {
		for i := 0; i < len(l.Alphabet()); i++ {
			p := l.MustPosOf(l.Alphabet()[i])
			for _, c := range keypad.Commands {
				next, _, err := l.Apply(p, c)
				if err != nil {
					continue
				}
				s.Require().True(l.InBounds(next))
				s.Require().False(l.IsGap(next))
			}
		}
	}
}

// TestType replays the example sequence for "029A".
func (s *MoveSuite) TestType() {
	cmds := parseCommands(s.T(), "<A^A>^^AvvvA")
	out, err := keypad.NumericLayout().Type('A', cmds)
	s.Require().NoError(err)
	s.Require().Equal("029A", out)

	_, err = keypad.NumericLayout().Type('A', parseCommands(s.T(), "<<A"))
	s.Require().ErrorIs(err, keypad.ErrGap)
}

func TestMoveSuite(t *testing.T) {
	suite.Run(t, new(MoveSuite))
}

func TestCommandFromByte(t *testing.T) {
	for _, c := range keypad.Commands {
		got, err := keypad.CommandFromByte(c.Byte())
		require.NoError(t, err)
		require.Equal(t, c, got)
	}
	_, err := keypad.CommandFromByte('x')
	require.ErrorIs(t, err, keypad.ErrUnknownCommand)
	require.Equal(t, "<A^A", keypad.FormatCommands(parseCommands(t, "<A^A")))
}

func parseCommands(t *testing.T, s string) []keypad.Command {
	t.Helper()
	cmds := make([]keypad.Command, len(s))
	for i := 0; i < len(s); i++ {
		c, err := keypad.CommandFromByte(s[i])
		require.NoError(t, err)
		cmds[i] = c
	}
	return cmds
}
