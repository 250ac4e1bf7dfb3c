package checklist

import (
	// Stdlib
	"io"

	// Internal
	"github.com/salsaflow/make-release/errs"
	"github.com/salsaflow/make-release/log"
	"github.com/salsaflow/make-release/prompt"
)

// Step is a single item of the release checklist.
type Step interface {
	// Do carries out the step. Returning false stops the checklist
	// and makes the engine undo all the steps completed so far.
	Do() bool

	// Undo compensates for a Do call that returned true.
	Undo()
}

const (
	checkHeader         = "\nCHECK:  "
	confirmationMessage = "  Press Y OR y to continue; Anything else to Quit: "
	undoHeader          = "UNDOING:"
)

// ConfirmationStep asks the user whether the checklist item has been taken care of.
// It does not perform any action on its own.
type ConfirmationStep struct {
	prompt  string
	console *prompt.Console
}

func NewConfirmationStep(console *prompt.Console, text string) *ConfirmationStep {
	return &ConfirmationStep{text, console}
}

func (step *ConfirmationStep) Prompt() string {
	return step.prompt
}

// Do prints the prompt and reads a single line. Only "Y" and "y" confirm the step,
// anything else including an input error counts as a refusal.
func (step *ConfirmationStep) Do() bool {
	step.console.Print(checkHeader, step.prompt, "\n")

	answer, err := step.console.Prompt(confirmationMessage)
	if err != nil {
		if err != io.EOF {
			errs.LogWith(log.V(log.Debug), errs.NewError("Read the answer", err))
		} else {
			log.V(log.Debug).Skip("No more input to read")
		}
		return false
	}
	return prompt.IsAffirmative(answer)
}

func (step *ConfirmationStep) Undo() {
	step.console.Println(undoHeader, step.prompt)
}
