package model

import (
	"context"
	"strings"

	"github.com/qmuntal/stateless"
)

// ShellState is the state of the chat shell with respect to the pending
// exchange.
type ShellState string

var (
	StateIdle          ShellState = "Idle"
	StateSending       ShellState = "Sending"
	StateIdleWithError ShellState = "IdleWithError"
)

type ShellTrigger string

var (
	TriggerSubmit  ShellTrigger = "Submit"
	TriggerSucceed ShellTrigger = "Succeed"
	TriggerFail    ShellTrigger = "Fail"
	TriggerDiscard ShellTrigger = "Discard" // result of an exchange started before a reset
	TriggerReset   ShellTrigger = "Reset"
)

// Shell guards the Idle → Sending → Idle | IdleWithError cycle. Submit is
// only accepted from an idle state and with non-blank input, which is what
// keeps a second exchange from starting while one is in flight.
type Shell struct {
	fsm *stateless.StateMachine
}

func hasInput(_ context.Context, args ...any) bool {
	if len(args) == 0 {
		return false
	}
	text, ok := args[0].(string)
	return ok && strings.TrimSpace(text) != ""
}

func NewShell() *Shell {
	fsm := stateless.NewStateMachine(StateIdle)

	fsm.Configure(StateIdle).
		Permit(TriggerSubmit, StateSending, hasInput).
		PermitReentry(TriggerReset)

	fsm.Configure(StateIdleWithError).
		Permit(TriggerSubmit, StateSending, hasInput).
		Permit(TriggerReset, StateIdle)

	// Reset does not cancel the request; the shell stays Sending until the
	// result (now stale) comes back and is discarded.
	fsm.Configure(StateSending).
		Permit(TriggerSucceed, StateIdle).
		Permit(TriggerFail, StateIdleWithError).
		Permit(TriggerDiscard, StateIdle).
		PermitReentry(TriggerReset)

	return &Shell{fsm: fsm}
}

func (s *Shell) State() ShellState {
	return s.fsm.MustState().(ShellState)
}

func (s *Shell) Sending() bool {
	return s.State() == StateSending
}

// Submit moves to Sending. It fails when already sending or when text is
// blank.
func (s *Shell) Submit(text string) error {
	return s.fsm.Fire(TriggerSubmit, text)
}

func (s *Shell) Succeed() error {
	return s.fsm.Fire(TriggerSucceed)
}

func (s *Shell) Fail() error {
	return s.fsm.Fire(TriggerFail)
}

func (s *Shell) Discard() error {
	return s.fsm.Fire(TriggerDiscard)
}

func (s *Shell) Reset() error {
	return s.fsm.Fire(TriggerReset)
}
