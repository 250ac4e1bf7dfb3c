package action

import (
	// Stdlib
	"errors"

	// Internal
	"github.com/salsaflow/make-release/errs"
	"github.com/salsaflow/make-release/log"
)

var ErrRollbackFailed = errors.New("failed to roll back changes")

type actionRecord struct {
	task   string
	action Action
}

// ActionChain is a stack of actions that were carried out successfully.
// Rollback pops the actions and rolls them back, the most recent one first.
type ActionChain struct {
	actions []*actionRecord
}

func NewActionChain() *ActionChain {
	return &ActionChain{}
}

func (chain *ActionChain) PushTask(task string, action Action) {
	if action != nil {
		chain.actions = append(chain.actions, &actionRecord{task, action})
	}
}

// Len returns the number of actions waiting to be rolled back.
func (chain *ActionChain) Len() int {
	return len(chain.actions)
}

// Tasks returns the task names in the order the actions were pushed.
func (chain *ActionChain) Tasks() []string {
	tasks := make([]string, 0, len(chain.actions))
	for _, act := range chain.actions {
		tasks = append(tasks, act.task)
	}
	return tasks
}

// Rollback drains the chain. All the actions are rolled back even when some
// of them fail, ErrRollbackFailed is returned in that case.
// Rolling back an empty chain is a no-op.
func (chain *ActionChain) Rollback() error {
	var ex error
	for len(chain.actions) != 0 {
		last := len(chain.actions) - 1
		act := chain.actions[last]
		chain.actions[last] = nil
		chain.actions = chain.actions[:last]

		if task := act.task; task != "" {
			log.V(log.Debug).Rollback(task)
		}

		if err := act.action.Rollback(); err != nil {
			errs.Log(errs.NewError("Roll back: "+act.task, err))
			ex = ErrRollbackFailed
		}
	}
	return ex
}
