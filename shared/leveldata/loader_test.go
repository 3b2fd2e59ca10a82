package leveldata

import (
	"bytes"
	"log"
	"os"
	"testing"
	"testing/fstest"

	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/lafriks/go-tiled"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureHeader = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="10" height="6" tilewidth="16" tileheight="16" infinite="0" nextlayerid="4" nextobjectid="20">
 <tileset firstgid="1" name="terrain" tilewidth="16" tileheight="16" tilecount="2" columns="2">
  <tile id="0">
   <properties>
    <property name="collider" type="bool" value="true"/>
   </properties>
  </tile>
 </tileset>
 <tileset firstgid="3" name="coin" tilewidth="16" tileheight="16" tilecount="1" columns="1"/>
 <imagelayer id="1" name="bg">
  <image source="sky.png" width="160" height="96"/>
 </imagelayer>
 <layer id="2" name="solids" width="10" height="6">
  <data encoding="csv">
0,0,0,0,0,0,0,0,0,0,
0,0,0,0,0,0,0,0,0,0,
0,0,0,0,0,0,0,0,0,0,
0,0,0,0,0,0,0,0,1,0,
0,0,0,0,0,0,0,0,0,0,
1,1,1,2,2,1,1,1,1,1
</data>
 </layer>
 <objectgroup id="3" name="objects">
`

const fixtureObjects = `  <object id="2" type="goal" x="140" y="48" width="16" height="32"/>
  <object id="3" class="checkpoint" x="80" y="48" width="16" height="32">
   <properties>
    <property name="id" type="int" value="7"/>
   </properties>
  </object>
  <object id="4" gid="3" x="60" y="40" width="16" height="16"/>
  <object id="5" x="100" y="80">
   <polygon points="0,0 30,0 0,30"/>
  </object>
  <object id="6" x="10" y="10">
   <polygon points="0,0 5,5"/>
  </object>
  <object id="7" name="ground" x="0" y="0" width="20" height="10">
   <ellipse/>
  </object>
  <object id="8" name="signpost" x="5" y="5" width="4" height="4"/>
  <object id="9" type="enemy" x="120" y="30" width="20" height="16">
   <properties>
    <property name="phase" type="float" value="1.5"/>
   </properties>
  </object>
  <object id="10" name="trampoline" x="30" y="72" width="16" height="8"/>
  <object id="11" type="solid" x="0" y="64" width="16" height="16"/>
  <object id="12" type="hazard-ball" x="150" y="10" width="8" height="8"/>
  <object id="13" name="spikes" x="48" y="72" width="16" height="8"/>
`

const fixtureSpawn = `  <object id="1" name="spawn" x="24" y="64">
   <point/>
  </object>
`

const fixtureFooter = ` </objectgroup>
</map>
`

func loadFixture(t *testing.T, withSpawn bool) *Level {
	t.Helper()
	return loadFixtureWith(t, withSpawn, DefaultOptions())
}

func loadFixtureWith(t *testing.T, withSpawn bool, opts Options) *Level {
	t.Helper()
	body := fixtureHeader
	if withSpawn {
		body += fixtureSpawn
	}
	body += fixtureObjects + fixtureFooter

	fsys := fstest.MapFS{"levels/test.tmx": &fstest.MapFile{Data: []byte(body)}}
	level, err := Load(fsys, "levels/test.tmx", opts)
	require.NoError(t, err)
	return level
}

func TestLoadDimensionsAndBackground(t *testing.T) {
	level := loadFixture(t, true)

	assert.Equal(t, "test", level.Name)
	assert.Equal(t, 160.0, level.PixelWidth)
	assert.Equal(t, 96.0, level.PixelHeight)
	assert.Equal(t, "sky.png", level.Background)
}

func TestLoadOnlyColliderTilesAreSolid(t *testing.T) {
	level := loadFixture(t, true)

	// Bottom row minus the two non-collider tiles, plus one floating tile.
	require.Len(t, level.TileSolids, 9)
	assert.Contains(t, level.TileSolids, Rect{X: 128, Y: 48, W: 16, H: 16})
	assert.NotContains(t, level.TileSolids, Rect{X: 48, Y: 80, W: 16, H: 16})
}

func TestLoadClassifiesObjects(t *testing.T) {
	level := loadFixture(t, true)

	assert.Equal(t, gamemath.Vec{X: 24, Y: 64}, level.Spawn)
	assert.False(t, level.SpawnDefaulted)

	require.NotNil(t, level.Goal)
	assert.Equal(t, Rect{X: 140, Y: 48, W: 16, H: 32}, *level.Goal)

	require.Len(t, level.Checkpoints, 1)
	assert.Equal(t, 7, level.Checkpoints[0].ID)

	// Tile object resolved through the "coin" tileset, moved to top-left.
	require.Len(t, level.Collectibles, 1)
	assert.Equal(t, Rect{X: 60, Y: 24, W: 16, H: 16}, level.Collectibles[0].Rect)

	require.Len(t, level.Hazards, 2)
	kinds := []HazardKind{level.Hazards[0].Kind, level.Hazards[1].Kind}
	assert.ElementsMatch(t, []HazardKind{HazardTrampoline, HazardSpike}, kinds)

	require.Len(t, level.Prefabs, 2)
	assert.Equal(t, PrefabEnemy, level.Prefabs[0].Kind)
	assert.Equal(t, 1.5, level.Prefabs[0].Phase)
	assert.Equal(t, PrefabBallSource, level.Prefabs[1].Kind)

	assert.Equal(t, []Rect{{X: 0, Y: 64, W: 16, H: 16}}, level.Rects)
}

func TestLoadVerboseLogsSkippedObjects(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	loadFixture(t, true)
	assert.NotContains(t, buf.String(), "signpost")

	opts := DefaultOptions()
	opts.Verbose = true
	level := loadFixtureWith(t, true, opts)
	assert.Contains(t, buf.String(), `skipping unclassified object 8 "signpost"`)
	assert.Len(t, level.Prefabs, 2, "skipped objects are still skipped")
}

func TestLoadPolygonsAreCentroidRelative(t *testing.T) {
	level := loadFixture(t, true)

	// Degenerate polygon skipped; triangle and ellipse kept.
	require.Len(t, level.Polygons, 2)

	var tri, ell Polygon
	for _, p := range level.Polygons {
		if p.Ellipse {
			ell = p
		} else {
			tri = p
		}
	}

	assert.InDelta(t, 110, tri.Centroid.X, 1e-9)
	assert.InDelta(t, 90, tri.Centroid.Y, 1e-9)
	require.Len(t, tri.Points, 3)
	assert.InDelta(t, -10, tri.Points[0].X, 1e-9)
	assert.InDelta(t, -10, tri.Points[0].Y, 1e-9)

	assert.InDelta(t, 10, ell.Centroid.X, 1e-6)
	assert.InDelta(t, 5, ell.Centroid.Y, 1e-6)
	assert.Len(t, ell.Points, 16)
}

func TestLoadMissingSpawnFallsBack(t *testing.T) {
	level := loadFixture(t, false)

	assert.True(t, level.SpawnDefaulted)
	assert.Equal(t, DefaultOptions().DefaultSpawn, level.Spawn)
}

func TestFromMapRejectsMissingDimensions(t *testing.T) {
	_, err := FromMap(&tiled.Map{Width: 0, Height: 5, TileWidth: 16, TileHeight: 16}, "bad", DefaultOptions())
	assert.ErrorIs(t, err, ErrMalformedMap)

	_, err = FromMap(&tiled.Map{Width: 5, Height: 5, TileWidth: 0, TileHeight: 16}, "bad", DefaultOptions())
	assert.ErrorIs(t, err, ErrMalformedMap)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "levels/none.tmx", DefaultOptions())
	assert.Error(t, err)
}
