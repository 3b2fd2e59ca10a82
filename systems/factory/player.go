package factory

import (
	"math"

	"github.com/automoto/tilehop/archetypes"
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Never is a timestamp far enough in the past that no grace window reaches it.
const Never = math.MinInt64 / 2

// CreatePlayer places the player with its feet at (feetX, feetY).
func CreatePlayer(ecs *ecs.ECS, feetX, feetY float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Movement.CollisionWidth, cfg.Movement.CollisionHeight
	obj := resolv.NewObject(feetX-w/2, feetY-h, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags("character", tags.ResolvPlayer)
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		State:  cfg.Idle,
		Damage: cfg.DamageNormal,
		Width:  w,
		Height: h,
	})
	components.Movement.SetValue(player, NewMovement())
	components.Contacts.SetValue(player, components.ContactsData{
		Active: map[*resolv.Object]*components.Contact{},
	})
	components.Sprite.SetValue(player, components.SpriteData{})

	addToSpace(ecs, player, obj)

	return player
}

// NewMovement returns a resting movement state.
func NewMovement() components.MovementData {
	return components.MovementData{
		CurrentSpeed:   cfg.Movement.MinSpeed,
		Facing:         1,
		LastGroundedAt: Never,
		JumpPressedAt:  Never,
	}
}
