package systems

import (
	"fmt"
	"image/color"
	"time"

	"github.com/automoto/tilehop/components"
	"github.com/automoto/tilehop/fonts"
	"github.com/automoto/tilehop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin  = 6
	hudPadding = 4
	hudHeight  = 18
)

var hudTextOp = &text.DrawOptions{}

// FormatTime renders a run time as m:ss.mmm.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	return fmt.Sprintf("%d:%02d.%03d", ms/60000, (ms/1000)%60, ms%1000)
}

// HUDLine is the status line drawn at the top of the screen.
func HUDLine(e *ecs.ECS) string {
	level, ok := levelOf(e)
	if !ok {
		return ""
	}
	line := fmt.Sprintf("%s   %d/%d", FormatTime(clockOf(e).Now), level.Collected, level.Total)
	if player, ok := tags.Player.First(e.World); ok {
		if hits := components.Player.Get(player).Hits; hits > 0 {
			line += fmt.Sprintf("   hits %d", hits)
		}
	}
	return line
}

// DrawHUD renders the run time, pickups and hits in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	line := HUDLine(e)
	if line == "" {
		return
	}
	face := fonts.Regular.Face()
	w, _ := text.Measure(line, face, 0)

	vector.FillRect(screen, hudMargin, hudMargin, float32(w)+2*hudPadding, hudHeight,
		color.RGBA{0, 0, 0, 140}, false)

	hudTextOp.GeoM.Reset()
	hudTextOp.ColorScale.Reset()
	hudTextOp.GeoM.Translate(hudMargin+hudPadding, hudMargin+2)
	hudTextOp.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, line, face, hudTextOp)
}
