package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenBufferPeek(t *testing.T) {
	buf := newTokenBuffer(NewLexer("1 +"))

	tk, err := buf.peek()
	require.NoError(t, err)
	requireTok(t, tk, NUMBER, "1", 1, 1)

	// Peeking again does not pull another token from the lexer
	tk, err = buf.peek()
	require.NoError(t, err)
	requireTok(t, tk, NUMBER, "1", 1, 1)
	require.Len(t, buf.tokens, 1)
}

func TestTokenBufferNextPrev(t *testing.T) {
	buf := newTokenBuffer(NewLexer("1 +"))

	tk, err := buf.next()
	require.NoError(t, err)
	requireTok(t, tk, NUMBER, "1", 1, 1)

	tk, err = buf.next()
	require.NoError(t, err)
	requireTok(t, tk, OPERATOR, "+", 1, 3)

	tk, err = buf.prev()
	require.NoError(t, err)
	requireTok(t, tk, OPERATOR, "+", 1, 3)
	require.Equal(t, 1, buf.pos)

	tk, err = buf.next()
	require.NoError(t, err)
	requireTok(t, tk, OPERATOR, "+", 1, 3)
	require.Len(t, buf.tokens, 2)

	for i := 0; i < 2; i++ {
		tk, err = buf.next()
		require.NoError(t, err)
		requireTok(t, tk, EOF, "", 1, 4)
	}
}

func TestTokenBufferPrevUnderflow(t *testing.T) {
	buf := newTokenBuffer(NewLexer("1"))
	_, err := buf.prev()
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	require.True(t, errors.Is(err, errCursorUnderflow))
	require.Equal(t, Location{}, parseErr.Loc())
	require.Equal(t, errCursorUnderflow.Error(), parseErr.Error())
}

func TestTokenBufferWrapsLexError(t *testing.T) {
	buf := newTokenBuffer(NewLexer("  ?"))
	_, err := buf.next()
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	require.Equal(t, Location{1, 3}, parseErr.Loc())
	require.Equal(t, 0, buf.pos)
}
