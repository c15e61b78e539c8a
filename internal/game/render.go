package game

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tenure-rush/internal/clock"
	"github.com/vovakirdan/tenure-rush/internal/core"
	"github.com/vovakirdan/tenure-rush/internal/powerup"
)

// Visual characters for rendering
const (
	WallChar     = '│'
	PlayerChar   = '@'
	FriendChar   = 'F'
	FriendWave   = 'f'
	WandererChar = 'W'
	HeartChar    = '♥'
	EmptyHeart   = '♡'
	DoorClosedCh = '▓'
	DoorOpenCh   = '·'
	DoorPassCh   = '+'
	DoorBrokenCh = 'x'
)

const (
	hudRows       = 1
	footerRows    = 1
	minRenderRows = 6
)

// viewport maps world coordinates into screen cells below the HUD.
type viewport struct {
	scaleX, scaleY float64
	top, rows      int
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	rows := dst.Height() - hudRows - footerRows
	return viewport{
		scaleX: float64(dst.Width()) / worldW,
		scaleY: float64(rows) / worldH,
		top:    hudRows,
		rows:   rows,
	}
}

func (v viewport) cell(x, y float64) (int, int) {
	return int(x * v.scaleX), v.top + int(y*v.scaleY)
}

// box returns the cell rectangle covering r, at least one cell in each axis,
// clipped to the world area.
func (v viewport) box(r core.Rect) (x, y, w, h int) {
	x, y = v.cell(r.X, r.Y)
	x2, y2 := v.cell(r.Right(), r.Bottom())
	w, h = max(1, x2-x), max(1, y2-y)
	if y < v.top {
		h -= v.top - y
		y = v.top
	}
	if bottom := v.top + v.rows; y+h > bottom {
		h = bottom - y
	}
	return x, y, w, h
}

// Render draws the current run into dst.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Height() < minRenderRows {
		dst.DrawText(0, 0, "Terminal too small", core.ColorRed)
		return
	}

	st := s.Stats()
	s.scene.renderWorld(dst)
	renderHUD(dst, st)
	s.renderFooter(dst)

	switch st.State {
	case StatePaused:
		drawPanel(dst, core.ColorWhite, "PAUSED", "", "Press P to continue")
	case StateGameOver:
		drawPanel(dst, core.ColorBrightRed, "GAME OVER",
			fmt.Sprintf("Tenure: %d%%  Hearts: %d", st.Tenure, st.Hearts),
			"Press R to restart")
	case StateVictory:
		s.renderVictory(dst, st)
	}
}

func (s *Scene) renderWorld(dst *core.Screen) {
	world := s.cfg.World
	v := newViewport(dst, world.Width, world.Height)

	lx, _ := v.cell(world.CorridorLeft(), 0)
	rx, _ := v.cell(world.CorridorRight(), 0)
	dst.DrawVLine(lx, v.top, v.rows, WallChar, core.ColorBlue)
	dst.DrawVLine(min(rx, dst.Width()-1), v.top, v.rows, WallChar, core.ColorBlue)

	selected := s.seq.Selected()
	for _, d := range s.doors {
		x, y, w, h := v.box(d.Box)
		if h <= 0 {
			continue
		}
		ch, color := doorLook(d)
		if d == selected {
			color = core.ColorBrightGreen
		}
		dst.FillRect(x, y, w, h, ch, color)
	}

	for _, t := range s.tokens {
		x, y := v.cell(t.Box.CenterX(), t.Box.Y+t.Box.H/2)
		dst.SetColored(x, y, t.Kind.Glyph(), core.ColorBrightYellow)
	}

	for _, f := range s.friends {
		x, y := v.cell(f.Box.CenterX(), f.Box.Y+f.Box.H/2)
		ch := FriendChar
		if (f.Wave/30)%2 == 1 {
			ch = FriendWave
		}
		if f.Contacted {
			dst.SetColored(x, y, ch, core.ColorPink)
		} else {
			dst.SetColored(x, y, ch, core.ColorCyan)
		}
	}

	for _, w := range s.wanderers {
		x, y, cw, ch := v.box(w.Box)
		if ch <= 0 {
			continue
		}
		dst.FillRect(x, y, cw, ch, WandererChar, core.ColorRed)
	}

	// Blink while immune
	p := s.player
	if !p.Immune() || (p.Immunity/5)%2 == 0 {
		x, y := v.cell(p.Box.CenterX(), p.Box.Y+p.Box.H/2)
		dst.SetColored(x, y, PlayerChar, core.ColorWhite)
	}

	for _, h := range s.hearts {
		x, y := v.cell(h.X, h.Y)
		if y >= v.top {
			dst.SetColored(x, y, HeartChar, core.ColorPink)
		}
	}
	for _, c := range s.callouts {
		x, y := v.cell(c.X, c.Y)
		if y >= v.top {
			dst.DrawTextCentered(x, y, c.Text, c.Tone.Color())
		}
	}
}

func doorLook(d *Door) (rune, core.Color) {
	switch d.State {
	case DoorOpen:
		return DoorOpenCh, core.ColorGray
	case DoorOpenViaPass:
		return DoorPassCh, core.ColorPink
	case DoorBroken:
		return DoorBrokenCh, core.ColorRed
	default:
		return DoorClosedCh, core.ColorBrown
	}
}

func renderHUD(dst *core.Screen, st Stats) {
	var hp strings.Builder
	for i := 0; i < st.MaxHP; i++ {
		if i < st.HP {
			hp.WriteRune(HeartChar)
		} else {
			hp.WriteRune(EmptyHeart)
		}
	}

	parts := []string{
		fmt.Sprintf("Tenure %d%%", st.Tenure),
		fmt.Sprintf("Lv %d", st.Level),
		hp.String(),
		fmt.Sprintf("Pass %d", st.Passes),
		fmt.Sprintf("Sticks %d", st.Tools),
		fmt.Sprintf("♥ %d", st.Hearts),
	}
	for _, e := range st.Effects {
		parts = append(parts, fmt.Sprintf("%s %ds", effectLabel(e.Kind), e.Seconds))
	}
	if st.Boosting {
		parts = append(parts, ">>")
	}
	if st.DevMode {
		parts = append(parts, "DEV")
	}

	dst.DrawText(1, 0, strings.Join(parts, "  "), core.ColorWhite)

	timer := clock.Format(st.Elapsed) + "  Best " + clock.FormatBest(st.Best, st.HasBest)
	dst.DrawText(dst.Width()-utf8.RuneCountInString(timer)-1, 0, timer, core.ColorGray)
}

func effectLabel(k powerup.Kind) string {
	switch k {
	case powerup.Coffee:
		return "Coffee"
	case powerup.Glasses:
		return "Glasses"
	case powerup.Cheese:
		return "Cheese"
	default:
		return k.String()
	}
}

func (s *Session) renderFooter(dst *core.Screen) {
	y := dst.Height() - 1
	if d, idx := s.scene.Selected(); d != nil && s.state == StatePlaying {
		line := fmt.Sprintf("Door: %s  [%d/%d]", core.SequenceString(d.Sequence), idx, len(d.Sequence))
		dst.DrawText(1, y, line, core.ColorBrightGreen)
		return
	}
	dst.DrawText(1, y, "←/→ move  ↑ boost (coffee)  ↑ ↓ ␣ doors  p pause  r restart", core.ColorGray)
}

func (s *Session) renderVictory(dst *core.Screen, st Stats) {
	record := "Best Time: " + clock.FormatBest(st.Best, st.HasBest)
	if st.NewRecord {
		record = "NEW RECORD!"
	}
	color := core.ColorBrightYellow
	if (s.victoryTicks/30)%2 == 1 {
		color = core.ColorYellow
	}
	drawPanel(dst, color,
		"Tenure Achieved!",
		fmt.Sprintf("Hearts: %d  Door Passes Used: %d", st.Hearts, st.PassesUsed),
		"Completion Time: "+clock.Format(st.Elapsed),
		record,
		"Ending: "+s.Ending(),
		"Press R to Play Again",
	)
}

// drawPanel draws a framed box of centered lines in the middle of dst.
// Empty lines are kept as spacing.
func drawPanel(dst *core.Screen, color core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, color)
	cx := boxX + boxW/2
	for i, l := range lines {
		dst.DrawTextCentered(cx, boxY+1+i, l, color)
	}
}
