package neurolink

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/neurolink/internal/core"
)

// Glyphs by evolution tier, simplest first.
var enemyGlyphs = []rune{'░', '▒', '▓', '█'}

var enemyColors = []core.Color{
	core.ColorNeonTeal,
	core.ColorNeonGreen,
	core.ColorNeonYellow,
	core.ColorNeonOrange,
}

var powerUpGlyphs = map[PowerUpKind]rune{
	PowerUpShield:     'S',
	PowerUpDoubleShot: 'D',
	PowerUpLife:       '♥',
	PowerUpBomb:       'B',
}

var powerUpColors = map[PowerUpKind]core.Color{
	PowerUpShield:     core.ColorNeonBlue,
	PowerUpDoubleShot: core.ColorNeonYellow,
	PowerUpLife:       core.ColorNeonGreen,
	PowerUpBomb:       core.ColorNeonRed,
}

// hudRows is the number of rows above the play area.
const hudRows = 1

// viewport maps play-area units onto terminal cells below the HUD.
type viewport struct {
	logicalW, logicalH int
	cols, rows         int
}

func (v viewport) x(lx float64) int {
	return core.Scale(lx, v.logicalW, v.cols)
}

func (v viewport) y(ly float64) int {
	return hudRows + core.Scale(ly, v.logicalH, v.rows)
}

func (v viewport) rect(e EntityView) core.Rect {
	return core.NewRect(v.x(e.X), v.y(e.Y),
		core.ScaleLen(e.W, v.logicalW, v.cols),
		core.ScaleLen(e.H, v.logicalH, v.rows))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall || g.state == nil {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg, core.ColorNeonPink)
		dst.DrawTextCentered(dst.Height()/2+1, hint, core.ColorGray)
		return
	}

	vp := viewport{
		logicalW: g.cfg.PlayArea.Width,
		logicalH: g.cfg.PlayArea.Height,
		cols:     dst.Width(),
		rows:     dst.Height() - hudRows,
	}

	if g.welcome {
		g.renderWelcome(dst, vp)
		return
	}

	for _, e := range g.state.Entities() {
		g.renderEntity(dst, vp, e)
	}

	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderEntity draws one entity according to its kind and visual state.
func (g *Game) renderEntity(dst *core.Screen, vp viewport, e EntityView) {
	r := vp.rect(e)

	switch e.Kind {
	case KindStar:
		glyph := '.'
		if e.W >= 3 {
			glyph = '+'
		}
		dst.SetColored(r.X, r.Y, glyph, core.ColorGray)

	case KindPowerUp:
		dst.SetColored(r.X, r.Y, '[', powerUpColors[e.PowerUp])
		dst.SetColored(r.X+1, r.Y, powerUpGlyphs[e.PowerUp], core.ColorNeonCyan)
		dst.SetColored(r.X+2, r.Y, ']', powerUpColors[e.PowerUp])

	case KindEnemy:
		tier := min(e.Evolution, len(enemyGlyphs)-1)
		dst.DrawRect(r, enemyGlyphs[tier], enemyColors[tier])

	case KindBoss:
		renderBoss(dst, r, e.Health)

	case KindPlayerShot:
		dst.SetColored(r.X, r.Y, '|', core.ColorNeonCyan)

	case KindEnemyShot:
		dst.SetColored(r.X, r.Y, '!', core.ColorNeonRed)

	case KindPlayer:
		g.renderPlayer(dst, r, e)

	case KindParticle:
		switch e.Particle {
		case ParticleDebris:
			dst.SetColored(r.X, r.Y, '·', core.ColorNeonOrange)
		case ParticleExplosion:
			dst.SetColored(r.X, r.Y, '*', core.ColorNeonRed)
		default:
			dst.SetColored(r.X, r.Y, '*', core.ColorNeonPink)
		}
	}
}

// renderBoss draws the firewall node with its health bar on the row above.
func renderBoss(dst *core.Screen, r core.Rect, health float64) {
	if r.H >= 3 && r.W >= 3 {
		dst.DrawRect(core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2), '▓', core.ColorNeonRed)
		dst.DrawBox(r, core.ColorNeonTeal)
	} else {
		dst.DrawRect(r, '▓', core.ColorNeonRed)
	}

	filled := int(float64(r.W) * health)
	for i := range r.W {
		if i < filled {
			dst.SetColored(r.X+i, r.Y-1, '█', core.ColorNeonGreen)
		} else {
			dst.SetColored(r.X+i, r.Y-1, '░', core.ColorNeonRed)
		}
	}
}

// renderPlayer draws the vessel; it blinks while invincible.
func (g *Game) renderPlayer(dst *core.Screen, r core.Rect, e EntityView) {
	if e.Invincible && g.state.tick%10 < 5 {
		return
	}

	color := core.ColorNeonTeal
	if e.DoubleShot {
		color = core.ColorNeonYellow
	}
	if e.Invincible {
		color = core.ColorNeonPurple
	}

	row := r.Bottom() - 1
	for x := r.X; x < r.Right(); x++ {
		glyph := '█'
		switch {
		case r.W >= 3 && x == r.X:
			glyph = '◢'
		case r.W >= 3 && x == r.Right()-1:
			glyph = '◣'
		}
		dst.SetColored(x, row, glyph, color)
	}
	if r.H > 1 {
		dst.SetColored(r.X+r.W/2, r.Y, '▲', core.ColorNeonPink)
	}

	if e.Shield {
		dst.SetColored(r.X-1, row, '(', core.ColorNeonBlue)
		dst.SetColored(r.Right(), row, ')', core.ColorNeonBlue)
	}
}

// renderHUD draws score, level, lives, combo and active power-ups on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.state

	left := fmt.Sprintf("SCORE %d  HI %d", s.score, max(s.highScore, s.score))
	dst.DrawTextColored(1, 0, left, core.ColorNeonCyan)

	level := fmt.Sprintf("LEVEL %d", s.level)
	if s.bossMode {
		level += " FIREWALL"
	}
	dst.DrawTextCentered(0, level, core.ColorNeonPink)

	var right strings.Builder
	if s.comboMultiplier > 1 {
		fmt.Fprintf(&right, "x%d ", s.comboMultiplier)
	}
	if s.player.Shield {
		right.WriteString("SHD ")
	}
	if s.player.DoubleShot {
		right.WriteString("DBL ")
	}
	right.WriteString(strings.Repeat("♥", s.player.Lives))
	text := right.String()
	dst.DrawTextColored(dst.Width()-len([]rune(text))-1, 0, text, core.ColorNeonYellow)
}

var welcomeLines = []string{
	"Arrows / A D: steer the interceptor",
	"Space: send data packets",
	"P: pause   M: sound",
	"Collect system upgrades",
	"A firewall node guards every fifth level",
}

// renderWelcome draws the title screen over the star field.
func (g *Game) renderWelcome(dst *core.Screen, vp viewport) {
	for _, e := range g.state.Entities() {
		if e.Kind == KindStar {
			g.renderEntity(dst, vp, e)
		}
	}

	y := max(0, dst.Height()/4)
	dst.DrawTextCentered(y, "NEUROLINK", core.ColorNeonCyan)
	dst.DrawTextCentered(y+2, "CYBERPUNK DATA RECOVERY", core.ColorNeonPink)
	dst.DrawTextCentered(y+3, strings.Repeat("─", 20), core.ColorNeonTeal)

	y += 5
	for i, l := range welcomeLines {
		color := core.ColorNeonTeal
		if i%2 == 1 {
			color = core.ColorNeonBlue
		}
		dst.DrawTextCentered(y+i, l, color)
	}
	dst.DrawTextCentered(y+len(welcomeLines)+1, "Press any key to initiate connection", core.ColorNeonYellow)
}

// renderOverlay draws pause, game-over and level-complete boxes.
func (g *Game) renderOverlay(dst *core.Screen) {
	s := g.state

	var lines []string
	color := core.ColorNeonCyan
	switch {
	case s.gameOver:
		color = core.ColorNeonRed
		lines = []string{
			"CONNECTION LOST",
			fmt.Sprintf("Score: %d", s.score),
			fmt.Sprintf("High score: %d", s.highScore),
			"R restart  Q quit",
		}
	case s.gameWon:
		color = core.ColorNeonGreen
		lines = []string{
			fmt.Sprintf("LEVEL %d CLEARED", s.level),
			fmt.Sprintf("Score: %d", s.score),
			"N next level  Q quit",
		}
	case s.paused:
		lines = []string{"PAUSED", "P resume"}
	default:
		return
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l, color)
	}
}
