package game

// Action is a command from the input layer.
type Action int

const (
	ActionUnknown Action = iota
	ActionQuit
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionRotate
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "Quit"
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionSoftDrop:
		return "Soft Drop"
	case ActionRotate:
		return "Rotate"
	default:
		return "Unknown"
	}
}
