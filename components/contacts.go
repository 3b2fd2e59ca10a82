package components

import (
	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ContactKind is the semantic label of the body the player touches.
type ContactKind int

const (
	ContactSolid ContactKind = iota
	ContactBall
	ContactEnemyHead
	ContactEnemyBody
	ContactCheckpoint
	ContactCollectible
	ContactSpike
	ContactTrampoline
	ContactGoal
)

// Contact is one (player, other) pair. Ground is decided when the pair begins
// and is what the matching end decrements.
type Contact struct {
	Other  *resolv.Object
	Kind   ContactKind
	Sensor bool
	Ground bool
	Point  gamemath.Vec
}

// ContactsData is the player's contact registry (singleton component). The
// physics step fills Began/Ongoing/Ended, the dispatcher consumes them.
type ContactsData struct {
	Active  map[*resolv.Object]*Contact
	Began   []*Contact
	Ongoing []*Contact
	Ended   []*Contact
}

// Reset clears the per-frame lists.
func (c *ContactsData) Reset() {
	c.Began = c.Began[:0]
	c.Ongoing = c.Ongoing[:0]
	c.Ended = c.Ended[:0]
}

var Contacts = donburi.NewComponentType[ContactsData]()
