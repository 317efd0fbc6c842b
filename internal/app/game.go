//go:build ebiten

package app

import (
	"log"

	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyCommands = []struct {
	key ebiten.Key
	cmd Command
}{
	{ebiten.KeyEscape, CmdQuit},
	{ebiten.KeyQ, CmdQuit},
	{ebiten.KeySpace, CmdReseedRandom},
	{ebiten.KeyE, CmdToggleEvolution},
	{ebiten.KeyC, CmdReseedClear},
	{ebiten.KeyS, CmdStep},
	{ebiten.KeyD, CmdDump},
	{ebiten.KeyL, CmdLoadLast},
}

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale  int
	logger *log.Logger
}

// New constructs a Game for the provided session.
func New(session *Session, scale int, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	size := session.World().Size()
	return &Game{
		session: session,
		painter: render.NewGridPainter(size.W, size.H, render.DefaultPalette),
		hud:     ui.NewHUD(),
		overlay: ui.NewOverlay(size, scale),
		scale:   scale,
		logger:  logger,
	}
}

// Update polls input, forwards commands to the session and advances it.
func (g *Game) Update() error {
	for _, kc := range keyCommands {
		if inpututil.IsKeyJustPressed(kc.key) {
			g.handle(Input{Cmd: kc.cmd})
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cx, cy := ebiten.CursorPosition()
		if x, y, ok := ui.CellAt(cx, cy, g.scale, g.session.World().Size()); ok {
			g.handle(Input{Cmd: CmdToggleCell, X: x, Y: y})
		}
	}
	g.overlay.Update()

	g.session.Tick()
	if done, _ := g.session.Done(); done {
		return ebiten.Termination
	}
	g.hud.Update(g.session.World().Generation(), g.session.Evolving())
	return nil
}

func (g *Game) handle(in Input) {
	if err := g.session.Handle(in); err != nil {
		g.logger.Printf("[app] %v: %v", in.Cmd, err)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.World(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.World().Size()
	return s.W * g.scale, s.H * g.scale
}
