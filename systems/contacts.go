package systems

import (
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContacts routes the frame's contact begins and ends to the gameplay
// reactions. Ends are applied before begins so the ground count never dips
// below zero. Damage goes last so a checkpoint, stomp or bounce in the same
// frame still lands.
func UpdateContacts(e *ecs.ECS) {
	player, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	m := components.Movement.Get(player)
	contacts := components.Contacts.Get(player)

	ApplyGroundContacts(m, contacts)

	for _, c := range contacts.Began {
		entry, ok := entryOf(c.Other)
		if !ok {
			continue
		}
		switch c.Kind {
		case components.ContactCheckpoint:
			ActivateCheckpoint(e, entry)
		case components.ContactCollectible:
			Collect(e, entry)
		case components.ContactGoal:
			ReachGoal(e, entry)
		}
	}

	// Trampolines fire on touch and while resting on them once the lockout
	// has passed.
	for _, list := range [][]*components.Contact{contacts.Began, contacts.Ongoing} {
		for _, c := range list {
			if c.Kind != components.ContactTrampoline {
				continue
			}
			if entry, ok := entryOf(c.Other); ok {
				TriggerTrampoline(e, entry, player)
			}
		}
	}

	for _, list := range [][]*components.Contact{contacts.Began, contacts.Ongoing} {
		for _, c := range list {
			if c.Kind != components.ContactEnemyHead || m.VY <= 0 {
				continue
			}
			if entry, ok := entryOf(c.Other); ok && StunEnemy(e, entry) {
				m.VY = -cfg.Enemy.StompBounce
				m.IsJumping = false
			}
		}
	}

	if hurtBy(e, contacts.Began) {
		StartRespawn(e, player)
	}
}

// ApplyGroundContacts keeps the ground count equal to the number of active
// ground pairs.
func ApplyGroundContacts(m *components.MovementData, c *components.ContactsData) {
	for _, contact := range c.Ended {
		if contact.Ground {
			m.GroundContacts--
		}
	}
	if m.GroundContacts < 0 {
		m.GroundContacts = 0
	}
	for _, contact := range c.Began {
		if contact.Ground {
			m.GroundContacts++
		}
	}
}

// ReleaseContacts ends every active pair at once, as when the player's body
// is taken out of play.
func ReleaseContacts(m *components.MovementData, c *components.ContactsData) {
	for other, contact := range c.Active {
		delete(c.Active, other)
		if contact.Ground {
			m.GroundContacts--
		}
	}
	m.GroundContacts = 0
	c.Reset()
}

func hurtBy(e *ecs.ECS, began []*components.Contact) bool {
	frame := clockOf(e).Frame
	for _, c := range began {
		switch c.Kind {
		case components.ContactBall, components.ContactSpike:
			return true
		case components.ContactEnemyBody:
			entry, ok := entryOf(c.Other)
			if !ok || !entry.HasComponent(components.Enemy) {
				continue
			}
			if enemyHurts(components.Enemy.Get(entry), frame) {
				return true
			}
		}
	}
	return false
}

func enemyHurts(enemy *components.EnemyData, frame uint64) bool {
	return enemy.Alive && enemy.StompedFrame != frame
}
