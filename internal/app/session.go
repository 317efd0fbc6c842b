package app

import (
	"fmt"
	"log"

	"lifegrid/internal/core"
	"lifegrid/internal/world"
)

// Command is a user-facing request translated by the presentation layer.
type Command uint8

const (
	CmdReseedRandom Command = iota
	CmdReseedClear
	CmdToggleEvolution
	CmdStep
	CmdToggleCell
	CmdDump
	CmdLoadLast
	CmdQuit
)

func (c Command) String() string {
	switch c {
	case CmdReseedRandom:
		return "reseed-random"
	case CmdReseedClear:
		return "reseed-clear"
	case CmdToggleEvolution:
		return "toggle-evolution"
	case CmdStep:
		return "step"
	case CmdToggleCell:
		return "toggle-cell"
	case CmdDump:
		return "dump"
	case CmdLoadLast:
		return "load-last"
	case CmdQuit:
		return "quit"
	default:
		return fmt.Sprintf("Command(%d)", uint8(c))
	}
}

// Input is one command together with its cell coordinates, which only
// CmdToggleCell reads.
type Input struct {
	Cmd  Command
	X, Y int
}

// Session is the control loop state shared by the GUI and headless builds:
// auto-evolution, pacing and the generation limit.
type Session struct {
	world *world.World
	pace  *core.FixedStep
	limit int64

	evolving bool
	done     bool
	exitCode int

	logger *log.Logger
}

// NewSession wraps w. A generation limit switches auto-evolution on.
func NewSession(w *world.World, cfg *Config, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	s := &Session{
		world:  w,
		pace:   core.NewFixedStep(cfg.TPS),
		limit:  cfg.GenerationLimit,
		logger: logger,
	}
	if s.limit != NoLimit {
		s.evolving = true
	}
	return s
}

// World exposes the driven world for read-only views.
func (s *Session) World() *world.World { return s.world }

// Evolving reports whether auto-evolution is on.
func (s *Session) Evolving() bool { return s.evolving }

// Done reports whether the session should end and with which exit status.
func (s *Session) Done() (bool, int) { return s.done, s.exitCode }

// Handle applies one command. World errors are returned unchanged.
func (s *Session) Handle(in Input) error {
	switch in.Cmd {
	case CmdReseedRandom:
		s.world.Reseed(true)
	case CmdReseedClear:
		s.evolving = false
		s.world.Reseed(false)
	case CmdToggleEvolution:
		s.evolving = !s.evolving
		if s.evolving {
			s.pace.Restart()
		}
	case CmdStep:
		s.evolving = false
		s.world.Step()
	case CmdToggleCell:
		return s.world.ToggleCell(in.X, in.Y)
	case CmdDump:
		_, err := s.world.DumpSnapshot()
		return err
	case CmdLoadLast:
		return s.world.LoadSnapshot("")
	case CmdQuit:
		s.done = true
		s.exitCode = 0
	default:
		return fmt.Errorf("unknown command %v", in.Cmd)
	}
	return nil
}

// Tick runs once per frame: it ends the session when the generation limit is
// reached and otherwise advances the world if auto-evolution is due.
func (s *Session) Tick() {
	if s.done {
		return
	}
	if s.limit != NoLimit && uint64(s.limit) <= s.world.Generation() {
		s.logger.Printf("[session] reached generation limit %d", s.limit)
		s.done = true
		s.exitCode = int(s.limit)
		return
	}
	if s.evolving && s.pace.ShouldStep() {
		s.world.Step()
	}
}

// RunHeadless ticks the session without pacing until it is done and returns
// its exit status. The session must have a generation limit.
func RunHeadless(s *Session) int {
	s.pace = core.NewFixedStep(0)
	s.evolving = true
	for {
		s.Tick()
		if done, code := s.Done(); done {
			return code
		}
	}
}
