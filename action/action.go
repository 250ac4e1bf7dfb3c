package action

// Action is a change that was made and can be taken back.
type Action interface {
	Rollback() error
}

// ActionFunc turns a function into an Action, the function itself being the rollback.
type ActionFunc func() error

func (action ActionFunc) Rollback() error {
	return action()
}
