package session

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/chzyer/readline"
	"github.com/infinigence/octochat/pkg/bot"
	"github.com/infinigence/octochat/pkg/matcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	lines []string
	err   error
}

func (r *fakeReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		if r.err != nil {
			return "", r.err
		}
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func newSession(in LineReader, out io.Writer) *Session {
	table := bot.NewTable().AddResponder(matcher.Word("hello"), "hi there")
	return &Session{
		Table:       table,
		In:          in,
		Out:         out,
		Greeting:    "What is your name?",
		Welcome:     "Hello, %s, ask me something!",
		NoMatchText: "Sorry, I don't understand.",
	}
}

func TestSession_Run(t *testing.T) {
	out := &bytes.Buffer{}
	in := &fakeReader{lines: []string{"  Ada \n", "hello bot", "zzyzzy", "ok exit", "never read"}}

	err := newSession(in, out).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "What is your name?\n"+
		"Hello, Ada, ask me something!\n"+
		"hi there\n"+
		"Sorry, I don't understand.\n", out.String())
	assert.Equal(t, []string{"never read"}, in.lines)
}

func TestSession_EndOfInput(t *testing.T) {
	out := &bytes.Buffer{}
	err := newSession(&fakeReader{lines: []string{"Ada"}}, out).Run(context.Background())
	assert.NoError(t, err)

	err = newSession(&fakeReader{err: readline.ErrInterrupt}, out).Run(context.Background())
	assert.NoError(t, err)
}

func TestSession_ReadError(t *testing.T) {
	boom := errors.New("boom")
	err := newSession(&fakeReader{lines: []string{"Ada"}, err: boom}, io.Discard).Run(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestSession_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := newSession(&fakeReader{lines: []string{"Ada", "hello"}}, io.Discard).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
