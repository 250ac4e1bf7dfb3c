// Package checklist walks the user through an ordered list of steps.
// When a step is not completed, the steps done so far are undone,
// the most recent one first, and the checklist is abandoned.
package checklist

import (
	// Stdlib
	"errors"

	// Internal
	"github.com/salsaflow/make-release/action"
	"github.com/salsaflow/make-release/errs"
	"github.com/salsaflow/make-release/log"
	"github.com/salsaflow/make-release/prompt"
)

const unwindHeader = "\nUndoing release stages\n\n"

// maxSummaryLen limits the length of checklist items printed into the log.
const maxSummaryLen = 72

var ErrAlreadyRun = errors.New("the checklist has already been run")

// StepFactory turns a checklist item into a Step.
type StepFactory func(prompt string) Step

// Result describes how a checklist run went.
type Result struct {
	// Visited is the number of steps that were started.
	Visited int
	// Completed is the number of steps that returned true from Do.
	Completed int
	// Undone is the number of steps that were undone.
	Undone int
	// Aborted is set when a step was not completed.
	Aborted bool
}

// Engine runs a fixed list of checklist items. An engine can only be run once.
type Engine struct {
	// NewStep is used to construct the step for every checklist item.
	// NewEngine sets it to create confirmation steps.
	NewStep StepFactory

	stages    []string
	console   *prompt.Console
	completed *action.ActionChain
	done      bool
}

// NewEngine creates an engine for the given checklist items.
// The engine keeps its own copy of stages.
func NewEngine(console *prompt.Console, stages []string) *Engine {
	engine := &Engine{
		stages:    append([]string(nil), stages...),
		console:   console,
		completed: action.NewActionChain(),
	}
	engine.NewStep = func(prompt string) Step {
		return NewConfirmationStep(console, prompt)
	}
	return engine
}

// Run goes through the checklist items in order until all of them are completed
// or one of them fails, in which case the completed steps are undone.
func (engine *Engine) Run() (*Result, error) {
	if engine.done {
		return nil, ErrAlreadyRun
	}
	engine.done = true

	result := &Result{}
	for _, stage := range engine.stages {
		summary := prompt.Summarize(stage, maxSummaryLen)

		step := engine.NewStep(stage)
		result.Visited++
		if !step.Do() {
			log.V(log.Verbose).Fail(summary)
			result.Aborted = true

			undone, err := engine.Unwind()
			result.Undone = undone
			return result, err
		}

		log.V(log.Verbose).Ok(summary)
		engine.completed.PushTask(stage, action.ActionFunc(func() error {
			step.Undo()
			return nil
		}))
		result.Completed++
	}
	return result, nil
}

// Unwind prints the unwinding header and undoes all the completed steps,
// the most recently completed one first. It returns the number of steps undone.
// The completed steps are forgotten, so calling Unwind again undoes nothing.
func (engine *Engine) Unwind() (int, error) {
	engine.console.Print(unwindHeader)

	undone := engine.completed.Len()
	if err := engine.completed.Rollback(); err != nil {
		return undone, errs.NewError("Undo the completed release stages", err)
	}
	return undone, nil
}

// Completed returns the checklist items completed and not undone yet,
// in the order they were completed.
func (engine *Engine) Completed() []string {
	return engine.completed.Tasks()
}
