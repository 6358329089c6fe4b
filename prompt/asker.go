package prompt

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
)

// Asker asks the user for input one line at a time.
type Asker interface {
	// Ask asks for free-form text, offering the given default.
	Ask(label string, defaultValue string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(label string) (bool, error)
}

// PromptUIAsker asks for input on the terminal using promptui.
type PromptUIAsker struct {
}

func NewPromptUIAsker() *PromptUIAsker {
	return &PromptUIAsker{}
}

func (*PromptUIAsker) Ask(label string, defaultValue string) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   defaultValue,
		AllowEdit: true,
	}

	result, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("failed to read '%s': %w", label, err)
	}

	return result, nil
}

func (*PromptUIAsker) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	if _, err := prompt.Run(); err != nil {
		// promptui reports a "no" answer as an abort
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, fmt.Errorf("failed to read '%s': %w", label, err)
	}

	return true, nil
}
