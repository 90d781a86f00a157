// Package input turns key presses into player commands.
package input

import (
	"chosenoffset.com/raycaster/internal/core/player"
)

// DefaultAxisStep is the pixel step used when rotation is disabled.
const DefaultAxisStep = 5.0

// Command is a single atomic change to the player.
type Command int

const (
	CommandNone Command = iota
	CommandTurnLeft
	CommandTurnRight
	CommandMoveForward
	CommandMoveBackward
	CommandMoveUp
	CommandMoveDown
	CommandMoveLeft
	CommandMoveRight
)

var commandNames = map[Command]string{
	CommandNone:         "none",
	CommandTurnLeft:     "turn left",
	CommandTurnRight:    "turn right",
	CommandMoveForward:  "move forward",
	CommandMoveBackward: "move backward",
	CommandMoveUp:       "move up",
	CommandMoveDown:     "move down",
	CommandMoveLeft:     "move left",
	CommandMoveRight:    "move right",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// Controller maps keys onto the player. With RotationEnabled the keys turn
// and walk along the facing; without it they move along the screen axes.
type Controller struct {
	Player          *player.State
	RotationEnabled bool
	TurnDelta       float64
	AxisStep        float64
}

// NewController returns a controller with the default turn delta and axis step.
func NewController(p *player.State, rotationEnabled bool) *Controller {
	return &Controller{
		Player:          p,
		RotationEnabled: rotationEnabled,
		TurnDelta:       player.DefaultTurnDelta,
		AxisStep:        DefaultAxisStep,
	}
}

// Resolve returns the command a key maps to in the current mode.
func (c *Controller) Resolve(key rune) Command {
	if c.RotationEnabled {
		switch key {
		case 'a':
			return CommandTurnLeft
		case 'd':
			return CommandTurnRight
		case 'w':
			return CommandMoveForward
		case 's':
			return CommandMoveBackward
		}
		return CommandNone
	}

	switch key {
	case 'w':
		return CommandMoveUp
	case 's':
		return CommandMoveDown
	case 'a':
		return CommandMoveLeft
	case 'd':
		return CommandMoveRight
	}
	return CommandNone
}

// HandleKey applies the command for key and returns it.
func (c *Controller) HandleKey(key rune) Command {
	cmd := c.Resolve(key)
	c.Apply(cmd)
	return cmd
}

// Apply performs cmd on the player.
func (c *Controller) Apply(cmd Command) {
	p := c.Player
	switch cmd {
	case CommandTurnLeft:
		p.TurnLeft(c.TurnDelta)
	case CommandTurnRight:
		p.TurnRight(c.TurnDelta)
	case CommandMoveForward:
		p.MoveForward()
	case CommandMoveBackward:
		p.MoveBackward()
	case CommandMoveUp:
		p.Translate(0, -c.AxisStep)
	case CommandMoveDown:
		p.Translate(0, c.AxisStep)
	case CommandMoveLeft:
		p.Translate(-c.AxisStep, 0)
	case CommandMoveRight:
		p.Translate(c.AxisStep, 0)
	}
}
