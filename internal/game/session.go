package game

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/diegok/pixbreak/internal/protocol"
)

// World dimensions in world units (one unit is one window pixel at scale 1)
const (
	WorldWidth  = 640.0
	WorldHeight = 360.0
	TickRate    = 60 // Frames per second the hosts schedule
)

//go:generate go tool mockgen -destination=./mocks/listener_mock.go -package=mocks . Listener

// Listener receives session events as they happen inside Update.
// Callbacks run synchronously on the updating goroutine.
type Listener interface {
	BallLaunched(sessionID string, dx, dy float64)
	BlockDestroyed(sessionID string, row, col, score int)
	SessionEnded(sessionID string, outcome protocol.Outcome, score int)
}

// Session owns one game: the ball, the paddle and the block field.
// It is the only writer of score and lifecycle state.
type Session struct {
	id       string
	width    float64
	height   float64
	ball     *Ball
	paddle   *Paddle
	blocks   *BlockField
	score    int
	tick     int
	phase    protocol.Phase
	outcome  protocol.Outcome
	rng      *rand.Rand
	listener Listener
}

// NewSession creates a session in the Ready phase with the default layout.
// seed drives the launch angle.
func NewSession(seed uint64) *Session {
	return NewSessionWithLayout(seed, DefaultLayout())
}

func NewSessionWithLayout(seed uint64, layout Layout) *Session {
	return &Session{
		id:     uuid.NewString(),
		width:  WorldWidth,
		height: WorldHeight,
		ball:   NewBall(BallStartX, BallStartY),
		paddle: NewPaddle(PaddleStartX, PaddleStartY),
		blocks: NewBlockField(layout),
		phase:  protocol.PhaseReady,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// SetListener registers l for session events; nil disables notifications
func (s *Session) SetListener(l Listener) {
	s.listener = l
}

func (s *Session) ID() string                { return s.id }
func (s *Session) Ball() *Ball               { return s.ball }
func (s *Session) Paddle() *Paddle           { return s.paddle }
func (s *Session) Blocks() *BlockField       { return s.blocks }
func (s *Session) Score() int                { return s.score }
func (s *Session) Tick() int                 { return s.tick }
func (s *Session) Phase() protocol.Phase     { return s.phase }
func (s *Session) Outcome() protocol.Outcome { return s.outcome }

// Running reports whether the host should keep scheduling frames
func (s *Session) Running() bool {
	return s.phase != protocol.PhaseEnded
}

// Start moves a Ready session to Running
func (s *Session) Start() {
	if s.phase == protocol.PhaseReady {
		s.phase = protocol.PhaseRunning
	}
}

// Apply handles one player input. Inputs after the session ended are dropped.
func (s *Session) Apply(in protocol.Input) {
	if s.phase == protocol.PhaseEnded {
		return
	}
	switch in.Kind {
	case protocol.InputMoveStart:
		s.paddle.StartMoving(in.Direction)
	case protocol.InputMoveStop:
		s.paddle.StopMoving()
	case protocol.InputLaunch:
		if s.paddle.LaunchBall(s.ball, s.rng) && s.listener != nil {
			s.listener.BallLaunched(s.id, s.ball.DX, s.ball.DY)
		}
	}
}

// Update applies inputs and advances the session by one frame. It returns
// the outcome, which stays OutcomeNone until the session ends. Once ended,
// Update does nothing.
func (s *Session) Update(inputs ...protocol.Input) protocol.Outcome {
	if s.phase == protocol.PhaseEnded {
		return s.outcome
	}
	for _, in := range inputs {
		s.Apply(in)
	}
	s.Start()
	s.tick++
	s.step()
	return s.outcome
}

// step runs one frame. Order matters: every collision is tested against the
// ball's next position before anything moves.
//
//  1. ball vs each active block (bump, score)
//  2. ball vs paddle (bump with English)
//  3. ball vs world edges (bottom ends the session as lost)
//  4. paddle vs side walls
//  5. move paddle, then ball
//  6. all blocks gone ends the session as won
func (s *Session) step() {
	s.blocks.Each(func(b *Block) {
		if s.ball.CollidesWith(b.Rect) && s.ball.BumpOffBlock(b) {
			s.score++
			if s.listener != nil {
				s.listener.BlockDestroyed(s.id, b.Row, b.Col, s.score)
			}
		}
	})

	if s.ball.CollidesWith(s.paddle.Rect) {
		s.ball.BumpOffPaddle(s.paddle)
	}

	if s.ball.BounceOffWorld(s.width, s.height) == BounceBottom {
		s.end(protocol.OutcomeLost)
		return
	}

	s.paddle.ClampToWorld(s.width)

	s.paddle.Move(s.ball)
	s.ball.Move()

	if s.score == s.blocks.Len() {
		s.end(protocol.OutcomeWon)
	}
}

func (s *Session) end(outcome protocol.Outcome) {
	s.phase = protocol.PhaseEnded
	s.outcome = outcome
	if s.listener != nil {
		s.listener.SessionEnded(s.id, outcome, s.score)
	}
}

// Frame exports the state a renderer draws. Only active blocks are included.
func (s *Session) Frame() protocol.Frame {
	active := s.blocks.Active()
	blocks := make([]protocol.BlockState, len(active))
	for i, b := range active {
		blocks[i] = protocol.BlockState{RectState: b.state(), Row: b.Row, Col: b.Col}
	}

	return protocol.Frame{
		WorldWidth:  s.width,
		WorldHeight: s.height,
		Ball:        s.ball.state(),
		BallDocked:  s.ball.Docked(),
		Paddle:      s.paddle.state(),
		Blocks:      blocks,
		Score:       s.score,
		TotalBlocks: s.blocks.Len(),
		Phase:       s.phase,
		Outcome:     s.outcome,
	}
}
