package command

import (
	"errors"
	"time"

	"github.com/atomicstack/mouse-menu/internal/logging/events"
	"github.com/atomicstack/mouse-menu/internal/popup"
	"github.com/google/uuid"
)

const defaultHistory = 32

var errNoTarget = errors.New("command bus has no target")

// Result records one executed command.
type Result struct {
	ID       string
	Tokens   []string
	Err      error
	Duration time.Duration
}

// Bus runs host commands on a target executor and keeps a short history of
// what ran. It satisfies popup.Executor so menu dispatch goes through it.
type Bus struct {
	target  popup.Executor
	limit   int
	history []Result
}

// New initialises a command bus in front of target.
func New(target popup.Executor) *Bus {
	return &Bus{target: target, limit: defaultHistory}
}

// Execute runs tokens synchronously on the target.
func (b *Bus) Execute(tokens []string) error {
	if b.target == nil {
		return errNoTarget
	}
	id := uuid.NewString()
	start := time.Now()
	err := b.target.Execute(tokens)
	elapsed := time.Since(start)

	name := ""
	if len(tokens) > 0 {
		name = tokens[0]
	}
	events.Command.Complete(id, name, elapsed, err)
	b.record(Result{ID: id, Tokens: append([]string(nil), tokens...), Err: err, Duration: elapsed})
	return err
}

func (b *Bus) record(res Result) {
	b.history = append(b.history, res)
	if over := len(b.history) - b.limit; over > 0 {
		b.history = append([]Result(nil), b.history[over:]...)
	}
}

// History returns executed commands, oldest first.
func (b *Bus) History() []Result {
	return append([]Result(nil), b.history...)
}

// Last returns the most recent result.
func (b *Bus) Last() (Result, bool) {
	if len(b.history) == 0 {
		return Result{}, false
	}
	return b.history[len(b.history)-1], true
}
