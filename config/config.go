package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only ecs layer; the host draws everything in one pass.
const Default ecs.LayerID = 0

// DecelModel selects how horizontal velocity decays when no direction is held.
type DecelModel string

const (
	DecelSnap    DecelModel = "snap"
	DecelDamping DecelModel = "damping"
)

// ColliderMode selects which map sources produce static collision geometry.
type ColliderMode string

const (
	CollidersTiles   ColliderMode = "tiles"
	CollidersObjects ColliderMode = "objects"
	CollidersBoth    ColliderMode = "both"
)

// MovementConfig contains the player's horizontal and jump tuning.
type MovementConfig struct {
	MinSpeed     float64 `yaml:"minSpeed"`     // units/s, speed after any direction change
	MaxSpeed     float64 `yaml:"maxSpeed"`     // units/s
	Acceleration float64 `yaml:"acceleration"` // units/s²

	Deceleration DecelModel `yaml:"deceleration"`
	IdleDamping  float64    `yaml:"idleDamping"` // multiplier per 1/60s when DecelDamping

	JumpForce         float64       `yaml:"jumpForce"`
	JumpCutMultiplier float64       `yaml:"jumpCutMultiplier"`
	CoyoteTime        time.Duration `yaml:"coyoteTime"`
	JumpBuffer        time.Duration `yaml:"jumpBuffer"`
	CanFly            bool          `yaml:"canFly"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`        // units/s²
	FallMultiplier float64 `yaml:"fallMultiplier"` // extra gravity share while descending
	MaxFallSpeed   float64 `yaml:"maxFallSpeed"`
	MaxRiseSpeed   float64 `yaml:"maxRiseSpeed"`

	// Collision
	GroundProbe     float64 `yaml:"groundProbe"`     // distance below the player checked for resting contacts
	SideSeparation  float64 `yaml:"sideSeparation"`  // gap left after a sideways or ceiling push-out
	StepHeight      float64 `yaml:"stepHeight"`      // rise climbed without blocking, also the downhill snap distance
	MaxDeltaSeconds float64 `yaml:"maxDeltaSeconds"` // frame delta cap against tunneling after stalls
}

// EnemyConfig contains enemy behaviour configuration
type EnemyConfig struct {
	Oscillate bool `yaml:"oscillate"`
	Shoot     bool `yaml:"shoot"`

	StunDuration     time.Duration `yaml:"stunDuration"`
	StunOscFactor    float64       `yaml:"stunOscFactor"` // oscillation speed multiplier while stunned
	OscSpeed         float64       `yaml:"oscSpeed"`      // radians/s
	OscRange         float64       `yaml:"oscRange"`
	StompBounce      float64       `yaml:"stompBounce"`
	ShotInterval     time.Duration `yaml:"shotInterval"`
	ShotVariation    float64       `yaml:"shotVariation"` // fraction, interval is base*(1±variation)
	RecoverShotDelay time.Duration `yaml:"recoverShotDelay"`

	// Dimensions
	BodyWidth  float64 `yaml:"bodyWidth"`
	BodyHeight float64 `yaml:"bodyHeight"`
	HeadHeight float64 `yaml:"headHeight"`
}

// ProjectileConfig contains projectile and hazard ball configuration
type ProjectileConfig struct {
	Speed        float64       `yaml:"speed"`
	BallSpeed    float64       `yaml:"ballSpeed"`
	Size         float64       `yaml:"size"`
	BoundsMargin float64       `yaml:"boundsMargin"`
	RespawnDelay time.Duration `yaml:"respawnDelay"`
}

// HazardConfig contains trampoline and spike configuration
type HazardConfig struct {
	SuperJumpVelocity float64       `yaml:"superJumpVelocity"`
	RetriggerLockout  time.Duration `yaml:"retriggerLockout"`
}

// RespawnConfig contains the hit-and-return arc tuning
type RespawnConfig struct {
	ArcHeightFactor  float64       `yaml:"arcHeightFactor"` // arc height per unit of horizontal distance
	MinArcHeight     float64       `yaml:"minArcHeight"`
	MaxArcHeight     float64       `yaml:"maxArcHeight"`
	MinDuration      time.Duration `yaml:"minDuration"`
	MaxDuration      time.Duration `yaml:"maxDuration"`
	DurationPerUnit  time.Duration `yaml:"durationPerUnit"`
	SpinTurns        float64       `yaml:"spinTurns"`
	InvulnWindow     time.Duration `yaml:"invulnWindow"`
	BlinkInterval    time.Duration `yaml:"blinkInterval"`
	CheckpointBlinks bool          `yaml:"checkpointBlinks"`
}

// LevelConfig contains map loading configuration
type LevelConfig struct {
	BackgroundLayer string       `yaml:"backgroundLayer"`
	SolidLayer      string       `yaml:"solidLayer"`
	ObjectLayer     string       `yaml:"objectLayer"`
	ColliderProp    string       `yaml:"colliderProp"`
	Colliders       ColliderMode `yaml:"colliders"`

	DefaultSpawnX     float64 `yaml:"defaultSpawnX"`
	DefaultSpawnY     float64 `yaml:"defaultSpawnY"`
	FallMargin        float64 `yaml:"fallMargin"`
	CentroidTolerance float64 `yaml:"centroidTolerance"`
	EllipseSegments   int     `yaml:"ellipseSegments"`
	SpaceCellSize     int     `yaml:"spaceCellSize"`
}

// SaveConfig contains save repository configuration
type SaveConfig struct {
	AppName   string
	SlotCount int
}

// DebugConfig contains the host's shape colours and the collider overlay switch
type DebugConfig struct {
	Enabled    bool
	SolidColor color.RGBA
	Player     color.RGBA
	Sensor     color.RGBA
	Enemy      color.RGBA
	Stunned    color.RGBA
	Projectile color.RGBA

	Checkpoint   color.RGBA
	CheckpointOn color.RGBA
	Collectible  color.RGBA
	Goal         color.RGBA
	Spike        color.RGBA
	Trampoline   color.RGBA
}

// CameraConfig contains camera follow tuning
type CameraConfig struct {
	FollowSmoothing         float64 // fraction of the remaining distance closed per frame
	LookAheadDistanceX      float64
	LookAheadSmoothing      float64
	LookAheadSpeedThreshold float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Scale  int // window size multiplier
	TPS    int
}

// Global configuration instances
var (
	C          Config
	Movement   MovementConfig
	Physics    PhysicsConfig
	Enemy      EnemyConfig
	Projectile ProjectileConfig
	Hazard     HazardConfig
	Respawn    RespawnConfig
	Level      LevelConfig
	Save       SaveConfig
	Debug      DebugConfig
	Camera     CameraConfig
)

func init() {
	C = Config{
		Width:  480,
		Height: 270,
		Scale:  2,
		TPS:    60,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.15,
		LookAheadDistanceX:      48,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 10,
	}

	Movement = MovementConfig{
		MinSpeed:          160,
		MaxSpeed:          260,
		Acceleration:      200,
		Deceleration:      DecelSnap,
		IdleDamping:       0.8,
		JumpForce:         420,
		JumpCutMultiplier: 0.4,
		CoyoteTime:        100 * time.Millisecond,
		JumpBuffer:        100 * time.Millisecond,
		CollisionWidth:    14,
		CollisionHeight:   28,
	}

	Physics = PhysicsConfig{
		Gravity:         900,
		FallMultiplier:  0.6,
		MaxFallSpeed:    600,
		MaxRiseSpeed:    900,
		GroundProbe:     0.5,
		SideSeparation:  0.01,
		StepHeight:      4,
		MaxDeltaSeconds: 0.05,
	}

	Enemy = EnemyConfig{
		Oscillate:        true,
		Shoot:            true,
		StunDuration:     2 * time.Second,
		StunOscFactor:    0.3,
		OscSpeed:         2.0,
		OscRange:         24,
		StompBounce:      280,
		ShotInterval:     2 * time.Second,
		ShotVariation:    0.25,
		RecoverShotDelay: 500 * time.Millisecond,
		BodyWidth:        20,
		BodyHeight:       16,
		HeadHeight:       10,
	}

	Projectile = ProjectileConfig{
		Speed:        180,
		BallSpeed:    140,
		Size:         8,
		BoundsMargin: 100,
		RespawnDelay: 1500 * time.Millisecond,
	}

	Hazard = HazardConfig{
		SuperJumpVelocity: 720,
		RetriggerLockout:  200 * time.Millisecond,
	}

	Respawn = RespawnConfig{
		ArcHeightFactor:  0.35,
		MinArcHeight:     24,
		MaxArcHeight:     160,
		MinDuration:      600 * time.Millisecond,
		MaxDuration:      1400 * time.Millisecond,
		DurationPerUnit:  2 * time.Millisecond,
		SpinTurns:        2,
		InvulnWindow:     1 * time.Second,
		BlinkInterval:    100 * time.Millisecond,
		CheckpointBlinks: true,
	}

	Level = LevelConfig{
		BackgroundLayer:   "bg",
		SolidLayer:        "solids",
		ObjectLayer:       "objects",
		ColliderProp:      "collider",
		Colliders:         CollidersBoth,
		DefaultSpawnX:     32,
		DefaultSpawnY:     32,
		FallMargin:        64,
		CentroidTolerance: 0.1,
		EllipseSegments:   16,
		SpaceCellSize:     16,
	}

	Save = SaveConfig{
		AppName:   "tilehop",
		SlotCount: 4,
	}

	Debug = DebugConfig{
		Enabled:    false,
		SolidColor: color.RGBA{R: 90, G: 90, B: 110, A: 255},
		Player:     color.RGBA{R: 240, G: 200, B: 60, A: 255},
		Sensor:     color.RGBA{R: 60, G: 200, B: 120, A: 160},
		Enemy:      color.RGBA{R: 220, G: 60, B: 60, A: 255},
		Stunned:    color.RGBA{R: 120, G: 120, B: 220, A: 255},
		Projectile: color.RGBA{R: 255, G: 140, B: 0, A: 255},

		Checkpoint:   color.RGBA{R: 150, G: 150, B: 150, A: 255},
		CheckpointOn: color.RGBA{R: 80, G: 220, B: 255, A: 255},
		Collectible:  color.RGBA{R: 255, G: 220, B: 40, A: 255},
		Goal:         color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Spike:        color.RGBA{R: 200, G: 200, B: 210, A: 255},
		Trampoline:   color.RGBA{R: 230, G: 90, B: 200, A: 255},
	}
}
