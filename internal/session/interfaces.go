// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

//go:generate mockgen -source=interfaces.go -destination=../mock/prompter_mock.go -package=mock

// MenuChoice is the operator's top level menu selection.
type MenuChoice int

const (
	ChoiceQuit      MenuChoice = 0
	ChoiceColumn    MenuChoice = 1
	ChoiceWholeFile MenuChoice = 2
)

// Prompter asks the operator what to do next. Implementations re-prompt until
// the answer is in range; io.EOF means the operator's input ended.
type Prompter interface {
	// MenuChoice returns one of ChoiceQuit, ChoiceColumn or ChoiceWholeFile.
	MenuChoice() (MenuChoice, error)

	// ColumnChoice returns a column index in 1..4, or 0 to cancel.
	ColumnChoice() (int, error)
}
