package components

import (
	"github.com/yohamta/donburi"
)

// SpriteData carries what the renderer needs to know beyond position.
type SpriteData struct {
	Rotation float64
	FlipX    bool
	Hidden   bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
