// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session drives the request/reply exchange with a column server over
// one already connected socket.
//
// The Engine is a finite state machine. It never pipelines: a command is only
// sent after the previous reply was received (or conclusively failed), and the
// quit command is sent once without waiting for a reply. The engine does not
// close the connection; its owner does that after Run returns.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-column-client/internal/logger"
	"github.com/MKhiriev/go-column-client/internal/protocol"
)

// Engine runs one session over conn.
type Engine struct {
	conn     io.ReadWriter
	prompter Prompter
	out      io.Writer

	state   State
	pending protocol.Command
	token   protocol.WireToken
	reply   *protocol.Reply

	logger *logger.Logger
}

// NewEngine creates an Engine in StateAwaitingChoice. Replies are read into a
// buffer of replyCapacity bytes and printed to out.
func NewEngine(conn io.ReadWriter, prompter Prompter, out io.Writer, replyCapacity int, log *logger.Logger) (*Engine, error) {
	if conn == nil {
		return nil, ErrNilConn
	}
	if prompter == nil {
		return nil, ErrNilPrompter
	}

	reply, err := protocol.NewReply(replyCapacity)
	if err != nil {
		return nil, fmt.Errorf("error creating reply buffer: %w", err)
	}

	if out == nil {
		out = io.Discard
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Engine{
		conn:     conn,
		prompter: prompter,
		out:      out,
		state:    StateAwaitingChoice,
		reply:    reply,
		logger:   log,
	}, nil
}

// State returns the current state.
func (e *Engine) State() State {
	return e.state
}

// Run steps the engine until it terminates. It returns nil when the session
// ended with the quit command and the fatal error otherwise.
func (e *Engine) Run() error {
	for e.state != StateTerminated {
		if err := e.Step(); err != nil {
			return err
		}
	}

	return nil
}

// Step performs exactly one state transition. A non-nil error is returned
// only together with the transition to StateTerminated.
func (e *Engine) Step() error {
	switch e.state {
	case StateAwaitingChoice:
		return e.awaitChoice()
	case StateSending:
		return e.send()
	case StateAwaitingReply:
		return e.awaitReply()
	default:
		return ErrSessionFinished
	}
}

func (e *Engine) awaitChoice() error {
	cmd, ok, err := e.nextCommand()
	if err != nil {
		return e.terminate(fmt.Errorf("%w: %w", ErrPrompt, err))
	}
	if !ok {
		// cancelled: nothing goes on the wire this cycle
		return nil
	}

	token, err := protocol.Encode(cmd)
	if err != nil {
		e.logger.Warn().Err(err).Str("command", cmd.String()).Msg("command rejected")
		return nil
	}

	e.pending = cmd
	e.token = token
	e.state = StateSending
	return nil
}

// nextCommand builds the Command for the operator's next selection. ok is
// false when the operator cancelled the column sub-prompt.
func (e *Engine) nextCommand() (cmd protocol.Command, ok bool, err error) {
	choice, err := e.prompter.MenuChoice()
	if errors.Is(err, io.EOF) {
		return protocol.Quit(), true, nil
	}
	if err != nil {
		return protocol.Command{}, false, err
	}

	switch choice {
	case ChoiceQuit:
		return protocol.Quit(), true, nil
	case ChoiceWholeFile:
		return protocol.WholeFile(), true, nil
	case ChoiceColumn:
		column, err := e.prompter.ColumnChoice()
		if errors.Is(err, io.EOF) {
			return protocol.Quit(), true, nil
		}
		if err != nil {
			return protocol.Command{}, false, err
		}
		if column == 0 {
			return protocol.Command{}, false, nil
		}

		cmd, err = protocol.NewColumnCommand(column)
		if err != nil {
			e.logger.Warn().Err(err).Msg("column choice out of range")
			return protocol.Command{}, false, nil
		}
		return cmd, true, nil
	default:
		e.logger.Warn().Int("choice", int(choice)).Msg("menu choice out of range")
		return protocol.Command{}, false, nil
	}
}

func (e *Engine) send() error {
	fmt.Fprintf(e.out, "Sending \"%s\"\n", e.token.Text())

	if _, err := e.conn.Write(e.token); err != nil {
		return e.terminate(fmt.Errorf("%w: %w", ErrWrite, err))
	}
	e.logger.Debug().Str("command", e.pending.String()).Msg("command sent")

	if e.pending.Kind() == protocol.KindQuit {
		return e.terminate(nil)
	}

	e.state = StateAwaitingReply
	return nil
}

func (e *Engine) awaitReply() error {
	if _, err := e.reply.ReadFrom(e.conn); err != nil {
		if errors.Is(err, protocol.ErrPeerClosed) {
			return e.terminate(err)
		}
		return e.terminate(fmt.Errorf("%w: %w", ErrRead, err))
	}

	e.logger.Debug().
		Str("command", e.pending.String()).
		Int("bytes", e.reply.Len()).
		Msg("reply received")

	fmt.Fprintln(e.out, e.reply.Text())
	e.state = StateAwaitingChoice
	return nil
}

func (e *Engine) terminate(err error) error {
	e.state = StateTerminated
	e.token = nil

	if err != nil {
		e.logger.Err(err).Msg("session terminated")
		return err
	}

	e.logger.Info().Msg("session finished")
	return nil
}
