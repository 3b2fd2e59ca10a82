package config

import "fmt"

// Variant bundles the switches that distinguish the two game flavours sharing
// this core.
type Variant struct {
	Name         string       `yaml:"name"`
	CanFly       bool         `yaml:"canFly"`
	Deceleration DecelModel   `yaml:"deceleration"`
	Oscillate    bool         `yaml:"oscillate"`
	Shoot        bool         `yaml:"shoot"`
	Colliders    ColliderMode `yaml:"colliders"`
}

var Variants = map[string]Variant{
	"rock-hero": {
		Name:         "rock-hero",
		Deceleration: DecelSnap,
		Oscillate:    true,
		Shoot:        true,
		Colliders:    CollidersTiles,
	},
	"pinguim": {
		Name:         "pinguim",
		CanFly:       true,
		Deceleration: DecelDamping,
		Colliders:    CollidersObjects,
	},
}

// ApplyVariant copies the named variant's switches into the global config.
func ApplyVariant(name string) error {
	v, ok := Variants[name]
	if !ok {
		return fmt.Errorf("unknown variant %q", name)
	}
	Movement.CanFly = v.CanFly
	Movement.Deceleration = v.Deceleration
	Enemy.Oscillate = v.Oscillate
	Enemy.Shoot = v.Shoot
	Level.Colliders = v.Colliders
	return nil
}
