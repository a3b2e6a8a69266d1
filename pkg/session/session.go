package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/infinigence/octochat/pkg/bot"
	"github.com/sirupsen/logrus"
)

// LineReader delivers one line of input per call. *readline.Instance
// satisfies it.
type LineReader interface {
	Readline() (string, error)
}

// Session drives a Table from a line-oriented console.
type Session struct {
	Table       *bot.Table
	In          LineReader
	Out         io.Writer
	Greeting    string
	Welcome     string // fmt template, %s is the user's name
	NoMatchText string
}

// Run greets the user, asks for a name and then answers line by line until
// the exit keyword, end of input or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.Out, s.Greeting)
	name, err := s.readLine()
	if err != nil {
		return ignoreEOF(err)
	}
	fmt.Fprintf(s.Out, s.Welcome+"\n", name)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := s.readLine()
		if err != nil {
			return ignoreEOF(err)
		}

		outcome := s.Table.Respond(line)
		logrus.Debugf("[session] %q -> %s", line, outcome)
		switch outcome.Kind {
		case bot.OutcomeExit:
			return nil
		case bot.OutcomeResponded:
			fmt.Fprintln(s.Out, outcome.Text)
		default:
			fmt.Fprintln(s.Out, s.NoMatchText)
		}
	}
}

func (s *Session) readLine() (string, error) {
	line, err := s.In.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
		return nil
	}
	return fmt.Errorf("read input: %w", err)
}
