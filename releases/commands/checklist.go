package commands

import (
	// Internal
	"github.com/salsaflow/make-release/asciiart"
	"github.com/salsaflow/make-release/checklist"
	"github.com/salsaflow/make-release/log"
	"github.com/salsaflow/make-release/prompt"
	"github.com/salsaflow/make-release/releases"
)

// Checklist walks the user through the release checklist using the given console.
func Checklist(console *prompt.Console) (*checklist.Result, error) {
	logger := log.V(log.Info)
	asciiart.PrintSnoopy(logger)

	engine := checklist.NewEngine(console, releases.Stages())
	result, err := engine.Run()
	if err != nil {
		return nil, err
	}

	if result.Aborted {
		asciiart.PrintGrimReaper(logger, "Release abandoned, come back when you are ready")
	} else {
		asciiart.PrintThumbsUp(logger)
	}
	return result, nil
}
