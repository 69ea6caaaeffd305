// Package prompt wraps the interactive terminal prompts used by the
// fetters commands. A user pressing ctrl-c skips the prompt; commands
// treat ErrSkipped as a clean exit with no side effects.
package prompt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
)

// ErrSkipped is returned when the user aborts a prompt.
var ErrSkipped = errors.New("prompt skipped")

// run executes a single field, mapping a user abort to ErrSkipped.
func run(field interface{ Run() error }) error {
	if err := field.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrSkipped
		}
		return fmt.Errorf("prompt error: %w", err)
	}
	return nil
}

// Text asks for a required, non-empty line of text.
func Text(title string) (string, error) {
	var value string
	field := huh.NewInput().
		Title(title).
		Value(&value).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("a value is required")
			}
			return nil
		})
	if err := run(field); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// layoutHint turns a Go time layout into the YYYY/MM/DD style hint shown
// in date prompt titles.
func layoutHint(layout string) string {
	return strings.NewReplacer("2006", "YYYY", "01", "MM", "02", "DD").Replace(layout)
}

// OptionalText asks for a line of text; an empty answer returns nil.
func OptionalText(title, initial string) (*string, error) {
	value := initial
	field := huh.NewInput().Title(title).Value(&value)
	if err := run(field); err != nil {
		return nil, err
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	return &value, nil
}

// Choose asks the user to pick one of labels and returns its index.
func Choose(title string, labels []string) (int, error) {
	options := make([]huh.Option[int], 0, len(labels))
	for i, label := range labels {
		options = append(options, huh.NewOption(label, i))
	}

	var choice int
	field := huh.NewSelect[int]().Title(title).Options(options...).Value(&choice)
	if err := run(field); err != nil {
		return 0, err
	}
	return choice, nil
}

// ChooseMany asks the user to pick any subset of labels and returns their
// indices.
func ChooseMany(title string, labels []string) ([]int, error) {
	options := make([]huh.Option[int], 0, len(labels))
	for i, label := range labels {
		options = append(options, huh.NewOption(label, i))
	}

	var choices []int
	field := huh.NewMultiSelect[int]().Title(title).Options(options...).Value(&choices)
	if err := run(field); err != nil {
		return nil, err
	}
	return choices, nil
}

// Confirm asks a yes/no question.
func Confirm(title string, def bool) (bool, error) {
	value := def
	field := huh.NewConfirm().Title(title).Value(&value)
	if err := run(field); err != nil {
		return false, err
	}
	return value, nil
}

// Date asks for a date in the given layout, defaulting to initial. The
// answer is validated by parsing before the prompt returns.
func Date(title, layout, initial string) (string, error) {
	value := initial
	field := huh.NewInput().
		Title(fmt.Sprintf("%s (%s)", title, layoutHint(layout))).
		Value(&value).
		Validate(func(s string) error {
			if _, err := time.Parse(layout, strings.TrimSpace(s)); err != nil {
				return fmt.Errorf("expected a date formatted as %s", layout)
			}
			return nil
		})
	if err := run(field); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}
