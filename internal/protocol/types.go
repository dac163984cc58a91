package protocol

// Direction represents paddle movement direction
type Direction int

const (
	DirNone  Direction = 0
	DirLeft  Direction = 1
	DirRight Direction = 2
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// InputKind identifies a player input event
type InputKind int

const (
	InputMoveStart InputKind = iota
	InputMoveStop
	InputLaunch
)

// Input is a single player event delivered to the session between frames
type Input struct {
	Kind      InputKind
	Direction Direction // only meaningful for InputMoveStart
}

// MoveStart builds a start-moving input for the given direction
func MoveStart(dir Direction) Input {
	return Input{Kind: InputMoveStart, Direction: dir}
}

// MoveStop builds a stop-moving input
func MoveStop() Input {
	return Input{Kind: InputMoveStop}
}

// Launch builds a launch input
func Launch() Input {
	return Input{Kind: InputLaunch}
}

// Phase is the session lifecycle state
type Phase int

const (
	PhaseReady Phase = iota
	PhaseRunning
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

// Outcome is the terminal result of a session
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	}
	return "none"
}

// RectState is the position and size of a drawable entity in world units
type RectState struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Frame is everything a renderer needs for one frame
type Frame struct {
	WorldWidth  float64
	WorldHeight float64
	Ball        RectState
	BallDocked  bool
	Paddle      RectState
	Blocks      []BlockState // active blocks only
	Score       int
	TotalBlocks int
	Phase       Phase
	Outcome     Outcome
}

// BlockState is an active block with its grid coordinates
type BlockState struct {
	RectState
	Row int
	Col int
}
