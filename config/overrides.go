package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// overrideDoc mirrors the tunable sections. It is pre-filled with the current
// values so keys missing from the file keep their defaults.
type overrideDoc struct {
	Variant    string           `yaml:"variant"`
	Movement   MovementConfig   `yaml:"movement"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Hazard     HazardConfig     `yaml:"hazard"`
	Respawn    RespawnConfig    `yaml:"respawn"`
	Level      LevelConfig      `yaml:"level"`
}

// LoadOverrides decodes a YAML tuning document and applies it on top of the
// current configuration. A variant, if named, is applied first so explicit
// section values win over it.
func LoadOverrides(r io.Reader) error {
	var head struct {
		Variant string `yaml:"variant"`
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read overrides: %w", err)
	}
	if err := yaml.Unmarshal(raw, &head); err != nil {
		return fmt.Errorf("parse overrides: %w", err)
	}
	if head.Variant != "" {
		if err := ApplyVariant(head.Variant); err != nil {
			return err
		}
	}

	doc := overrideDoc{
		Movement:   Movement,
		Physics:    Physics,
		Enemy:      Enemy,
		Projectile: Projectile,
		Hazard:     Hazard,
		Respawn:    Respawn,
		Level:      Level,
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse overrides: %w", err)
	}

	Movement = doc.Movement
	Physics = doc.Physics
	Enemy = doc.Enemy
	Projectile = doc.Projectile
	Hazard = doc.Hazard
	Respawn = doc.Respawn
	Level = doc.Level
	return nil
}

// LoadOverridesFile applies the YAML file at path. A missing file is not an
// error.
func LoadOverridesFile(path string) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open overrides %s: %w", path, err)
	}
	defer f.Close()
	return LoadOverrides(f)
}
