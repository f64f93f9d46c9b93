// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package console implements the operator facing prompts of the column
// client: machine name, port number, the command menu and the column
// sub-prompt. Input is read line by line; out of range answers are asked
// again without limit.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-column-client/internal/resolver"
	"github.com/MKhiriev/go-column-client/internal/session"
	"github.com/MKhiriev/go-column-client/models"
	"github.com/charmbracelet/lipgloss"
)

const (
	menuTitle = "What would you like to do:"
	menuItems = "(1) Get one column\n(2) Get whole file\n(0) Quit\n"

	choicePrompt = "Your choice? "
	columnPrompt = "Column number [1..4] or 0 to cancel: "
	portPrompt   = "Port number? "
)

// Console reads operator answers from in and writes prompts to out and
// diagnostics to errOut.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer

	defaultHost string
	styles      styles
}

// New creates a Console. defaultHost is offered at the machine name prompt;
// an empty value falls back to resolver.DefaultHostname.
func New(in io.Reader, out, errOut io.Writer, defaultHost string) *Console {
	return &Console{
		in:          bufio.NewReader(in),
		out:         out,
		errOut:      errOut,
		defaultHost: resolver.EffectiveHost(defaultHost, ""),
		styles:      newStyles(lipgloss.NewRenderer(out), lipgloss.NewRenderer(errOut)),
	}
}

// Endpoint asks for the machine name and the port number.
func (c *Console) Endpoint() (models.Endpoint, error) {
	host, err := c.Hostname()
	if err != nil {
		return models.Endpoint{}, err
	}

	port, err := c.Port()
	if err != nil {
		return models.Endpoint{}, err
	}

	return models.Endpoint{Host: host, Port: port}, nil
}

// Hostname asks for the machine name. A blank answer selects the default.
func (c *Console) Hostname() (string, error) {
	fmt.Fprintf(c.out, "Machine name [%s]? ", c.defaultHost)

	line, err := c.readLine()
	if err != nil {
		return "", err
	}

	return resolver.EffectiveHost(line, c.defaultHost), nil
}

// Port asks for the port number. Unusable input yields port 0.
func (c *Console) Port() (int, error) {
	fmt.Fprint(c.out, portPrompt)

	line, err := c.readLine()
	if err != nil {
		return 0, err
	}

	return resolver.ParsePort(line), nil
}

// MenuChoice implements session.Prompter.
func (c *Console) MenuChoice() (session.MenuChoice, error) {
	for {
		fmt.Fprintln(c.out, c.styles.title.Render(menuTitle))
		fmt.Fprint(c.out, menuItems)
		fmt.Fprint(c.out, choicePrompt)

		choice, err := c.readInt()
		if err != nil {
			return session.ChoiceQuit, err
		}

		switch session.MenuChoice(choice) {
		case session.ChoiceQuit, session.ChoiceColumn, session.ChoiceWholeFile:
			return session.MenuChoice(choice), nil
		}
	}
}

// ColumnChoice implements session.Prompter.
func (c *Console) ColumnChoice() (int, error) {
	for {
		fmt.Fprint(c.out, columnPrompt)

		column, err := c.readInt()
		if err != nil {
			return 0, err
		}

		if column >= 0 && column <= 4 {
			return column, nil
		}
	}
}

// Diagnostic prints a short error message for the operator.
func (c *Console) Diagnostic(err error) {
	if err == nil {
		return
	}

	fmt.Fprintln(c.errOut, c.styles.diagnostic.Render(humanizeError(err)))
}

// readInt reads one line and parses it as a decimal integer. Lines that are
// not a number yield -1, which every caller treats as out of range.
func (c *Console) readInt() (int, error) {
	line, err := c.readLine()
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return -1, nil
	}

	return n, nil
}

// readLine returns the next input line without its line terminator. A final
// line without a newline is still returned; io.EOF is reported once nothing
// is left.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
