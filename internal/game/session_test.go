package game

import (
	"math"
	"math/rand/v2"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/diegok/pixbreak/internal/game/mocks"
	"github.com/diegok/pixbreak/internal/protocol"
)

// placeUnder puts a launched ball just below b, rising with the given DX.
// The row below b must already be cleared.
func placeUnder(s *Session, b *Block, dx float64) {
	ball := s.Ball()
	ball.Phase = BallLaunched
	ball.X = b.X + 20
	ball.Y = b.Bottom() + 1
	ball.DX = dx
	ball.DY = -BallSpeed
}

// placeAbove puts a launched ball just above b, falling with the given DX
func placeAbove(s *Session, b *Block, dx float64) {
	ball := s.Ball()
	ball.Phase = BallLaunched
	ball.X = b.X + 20
	ball.Y = b.Y - ball.Height - 1
	ball.DX = dx
	ball.DY = BallSpeed
}

func TestNewSession(t *testing.T) {
	s := NewSession(1)

	if s.Phase() != protocol.PhaseReady {
		t.Errorf("expected PhaseReady, got %v", s.Phase())
	}
	if s.Score() != 0 {
		t.Errorf("expected score 0, got %d", s.Score())
	}
	if s.Blocks().Len() != 32 {
		t.Errorf("expected 32 blocks, got %d", s.Blocks().Len())
	}
	if !s.Ball().Docked() {
		t.Error("expected ball docked at start")
	}
	if s.Ball().CenterX() != s.Paddle().CenterX() {
		t.Errorf("expected ball centered on paddle, ball %f paddle %f", s.Ball().CenterX(), s.Paddle().CenterX())
	}
	if s.Ball().Bottom() != s.Paddle().Y {
		t.Errorf("expected ball resting on paddle, ball bottom %f paddle top %f", s.Ball().Bottom(), s.Paddle().Y)
	}
	if s.ID() == "" {
		t.Error("expected session ID")
	}
	if NewSession(1).ID() == s.ID() {
		t.Error("expected unique session IDs")
	}
}

func TestSession_FirstUpdateStarts(t *testing.T) {
	s := NewSession(1)

	if out := s.Update(); out != protocol.OutcomeNone {
		t.Errorf("expected OutcomeNone, got %v", out)
	}
	if s.Phase() != protocol.PhaseRunning {
		t.Errorf("expected PhaseRunning, got %v", s.Phase())
	}
	if s.Tick() != 1 {
		t.Errorf("expected tick 1, got %d", s.Tick())
	}
}

func TestSession_DockedBallRidesPaddle(t *testing.T) {
	s := NewSession(1)

	s.Update(protocol.MoveStart(protocol.DirLeft))
	s.Update()

	if s.Paddle().X != 268 {
		t.Errorf("expected paddle X=268, got %f", s.Paddle().X)
	}
	if s.Ball().X != 308 {
		t.Errorf("expected ball X=308, got %f", s.Ball().X)
	}
	if s.Ball().Y != BallStartY {
		t.Errorf("docked ball must not fall, Y=%f", s.Ball().Y)
	}
}

func TestSession_Launch(t *testing.T) {
	s := NewSession(7)

	s.Update(protocol.Launch())

	ball := s.Ball()
	if ball.Docked() {
		t.Fatal("expected ball launched")
	}
	if ball.DY != -3 {
		t.Errorf("expected DY=-3, got %f", ball.DY)
	}
	if ball.Y != BallStartY-3 {
		t.Errorf("expected ball to move up on launch frame, Y=%f", ball.Y)
	}

	// Paddle no longer carries the ball
	x := ball.X
	s.Update(protocol.MoveStart(protocol.DirRight))
	if ball.X != x+ball.DX {
		t.Errorf("launched ball followed the paddle: X=%f", ball.X)
	}
}

func TestSession_SameSeedSameLaunch(t *testing.T) {
	a := NewSession(99)
	b := NewSession(99)

	a.Update(protocol.Launch())
	b.Update(protocol.Launch())

	if a.Ball().DX != b.Ball().DX {
		t.Errorf("same seed gave different launches: %f vs %f", a.Ball().DX, b.Ball().DX)
	}
}

// Ball hits block (0,0): only that block goes, score +1, DY flips, DX kept.
func TestSession_BlockHit(t *testing.T) {
	s := NewSession(1)
	target := s.Blocks().At(0, 0)
	placeAbove(s, target, 1)

	s.Update()

	if target.Active {
		t.Error("expected block (0,0) inactive")
	}
	if s.Blocks().ActiveCount() != 31 {
		t.Errorf("expected 31 active blocks, got %d", s.Blocks().ActiveCount())
	}
	if s.Score() != 1 {
		t.Errorf("expected score 1, got %d", s.Score())
	}
	if s.Ball().DY != -BallSpeed {
		t.Errorf("expected DY=%f, got %f", -BallSpeed, s.Ball().DY)
	}
	if s.Ball().DX != 1 {
		t.Errorf("expected DX=1, got %f", s.Ball().DX)
	}
	if s.Phase() != protocol.PhaseRunning {
		t.Errorf("expected PhaseRunning, got %v", s.Phase())
	}
}

// Destroying all 32 blocks without losing the ball wins.
func TestSession_Win(t *testing.T) {
	s := NewSession(1)

	// Bottom row first so the ball never touches two rows at once
	var out protocol.Outcome
	for row := BlockRows - 1; row >= 0; row-- {
		for col := 0; col < BlockCols; col++ {
			if out != protocol.OutcomeNone {
				t.Fatalf("session ended early at (%d,%d) with %v", row, col, out)
			}
			placeUnder(s, s.Blocks().At(row, col), 0)
			out = s.Update()
			if s.Score() != s.Blocks().Len()-s.Blocks().ActiveCount() {
				t.Fatalf("score %d does not match destroyed blocks", s.Score())
			}
		}
	}

	if out != protocol.OutcomeWon {
		t.Errorf("expected OutcomeWon, got %v", out)
	}
	if s.Phase() != protocol.PhaseEnded || s.Running() {
		t.Errorf("expected ended session, phase %v", s.Phase())
	}
	if s.Score() != 32 {
		t.Errorf("expected score 32, got %d", s.Score())
	}
}

func TestSession_LoseAtBottom(t *testing.T) {
	s := NewSession(1)
	ball := s.Ball()
	ball.Phase = BallLaunched
	ball.X = 100
	ball.Y = 350
	ball.DX = 0
	ball.DY = 3
	s.Paddle().StartMoving(protocol.DirRight)

	out := s.Update()

	if out != protocol.OutcomeLost {
		t.Errorf("expected OutcomeLost, got %v", out)
	}
	if s.Running() {
		t.Error("expected session to stop running")
	}
	// The frame stops at the world check: nothing moves afterwards.
	if ball.Y != 350 {
		t.Errorf("ball moved after loss: Y=%f", ball.Y)
	}
	if s.Paddle().X != PaddleStartX {
		t.Errorf("paddle moved after loss: X=%f", s.Paddle().X)
	}
}

func TestSession_EndedIgnoresUpdatesAndInputs(t *testing.T) {
	s := NewSession(1)
	ball := s.Ball()
	ball.Phase = BallLaunched
	ball.Y = 350
	ball.DY = 3
	s.Update()

	tick := s.Tick()
	out := s.Update(protocol.MoveStart(protocol.DirLeft), protocol.Launch())

	if out != protocol.OutcomeLost {
		t.Errorf("expected outcome to stay Lost, got %v", out)
	}
	if s.Tick() != tick {
		t.Errorf("ended session advanced a tick")
	}
	if s.Paddle().DX != 0 {
		t.Errorf("ended session accepted input, DX=%f", s.Paddle().DX)
	}
}

func TestSession_PaddleBumpBeforeMove(t *testing.T) {
	s := NewSession(1)
	ball := s.Ball()
	ball.Phase = BallLaunched
	// Falling ball one step above the paddle, centered
	ball.X = 320
	ball.Y = 279
	ball.DX = 0
	ball.DY = 3

	s.Update()

	if ball.DY != -BallSpeed {
		t.Errorf("expected ball to bounce up, DY=%f", ball.DY)
	}
	if ball.Y != 276 {
		t.Errorf("expected ball to move up after bounce, Y=%f", ball.Y)
	}
}

func TestSession_PaddleClampedBeforeMove(t *testing.T) {
	s := NewSession(1)
	s.Ball().Phase = BallLaunched
	s.Paddle().X = WorldWidth - PaddleWidth - 2

	s.Update(protocol.MoveStart(protocol.DirRight))

	if s.Paddle().X != WorldWidth-PaddleWidth-2 {
		t.Errorf("paddle crossed the wall: X=%f", s.Paddle().X)
	}
	if s.Paddle().DX != 0 {
		t.Errorf("expected paddle halted, DX=%f", s.Paddle().DX)
	}
}

func TestSession_StopMovingTwice(t *testing.T) {
	s := NewSession(1)

	s.Update(protocol.MoveStart(protocol.DirLeft), protocol.MoveStop(), protocol.MoveStop())

	if s.Paddle().DX != 0 {
		t.Errorf("expected DX=0, got %f", s.Paddle().DX)
	}
	if s.Paddle().X != PaddleStartX {
		t.Errorf("expected paddle to stay, X=%f", s.Paddle().X)
	}
}

func TestSession_Frame(t *testing.T) {
	s := NewSession(1)
	s.Blocks().At(1, 1).Deactivate()
	s.score = 1

	f := s.Frame()

	if f.WorldWidth != WorldWidth || f.WorldHeight != WorldHeight {
		t.Errorf("unexpected world size %fx%f", f.WorldWidth, f.WorldHeight)
	}
	if len(f.Blocks) != 31 {
		t.Errorf("expected 31 blocks in frame, got %d", len(f.Blocks))
	}
	for _, b := range f.Blocks {
		if b.Row == 1 && b.Col == 1 {
			t.Error("inactive block exported")
		}
	}
	if f.TotalBlocks != 32 || f.Score != 1 {
		t.Errorf("expected 1/32, got %d/%d", f.Score, f.TotalBlocks)
	}
	if f.Ball.X != BallStartX || f.Paddle.X != PaddleStartX {
		t.Errorf("unexpected positions ball %f paddle %f", f.Ball.X, f.Paddle.X)
	}
	if !f.BallDocked {
		t.Error("expected BallDocked in frame")
	}
	if f.Phase != protocol.PhaseReady {
		t.Errorf("expected PhaseReady, got %v", f.Phase)
	}
}

func TestSession_Listener(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := NewSession(3)
	l := mocks.NewMockListener(ctrl)
	s.SetListener(l)

	gomock.InOrder(
		l.EXPECT().BallLaunched(s.ID(), gomock.Any(), -BallSpeed).Times(1),
		l.EXPECT().BlockDestroyed(s.ID(), 0, 0, 1).Times(1),
		l.EXPECT().SessionEnded(s.ID(), protocol.OutcomeLost, 1).Times(1),
	)

	s.Update(protocol.Launch())
	s.Update(protocol.Launch()) // already launched, no second event

	placeAbove(s, s.Blocks().At(0, 0), 0)
	s.Update()

	ball := s.Ball()
	ball.Y = 350
	ball.DY = 3
	s.Update()
	s.Update()
}

// Random play keeps the core invariants on every frame.
func TestSession_Invariants(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		s := NewSession(seed)
		input := rand.New(rand.NewPCG(seed, 0))
		s.Update(protocol.Launch())

		for frame := 0; frame < 5000 && s.Running(); frame++ {
			var in []protocol.Input
			switch input.IntN(10) {
			case 0:
				in = append(in, protocol.MoveStart(protocol.DirLeft))
			case 1:
				in = append(in, protocol.MoveStart(protocol.DirRight))
			case 2:
				in = append(in, protocol.MoveStop())
			}
			active := s.Blocks().ActiveCount()

			s.Update(in...)

			if s.Blocks().ActiveCount() > active {
				t.Fatalf("seed %d frame %d: active blocks grew", seed, frame)
			}
			if s.Score() != s.Blocks().Len()-s.Blocks().ActiveCount() {
				t.Fatalf("seed %d frame %d: score %d, destroyed %d",
					seed, frame, s.Score(), s.Blocks().Len()-s.Blocks().ActiveCount())
			}
			if math.Abs(s.Ball().DY) != BallSpeed {
				t.Fatalf("seed %d frame %d: |DY|=%f", seed, frame, math.Abs(s.Ball().DY))
			}
			if math.Abs(s.Ball().DX) > BallSpeed {
				t.Fatalf("seed %d frame %d: |DX|=%f", seed, frame, math.Abs(s.Ball().DX))
			}
			if p := s.Paddle(); p.X < 0 || p.Right() > WorldWidth {
				t.Fatalf("seed %d frame %d: paddle out of world at X=%f", seed, frame, p.X)
			}
			if p := s.Paddle(); p.Y != PaddleStartY {
				t.Fatalf("seed %d frame %d: paddle Y changed to %f", seed, frame, p.Y)
			}
		}
	}
}
