package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const forestTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="50" height="12" tilewidth="64" tileheight="64" infinite="0" nextlayerid="3" nextobjectid="6">
 <objectgroup id="1" name="Terrain">
  <object id="1" name="Ground" x="0" y="708">
   <polyline points="0,0 1600,0 3200,-40"/>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Spawns">
  <object id="2" type="Campfire" x="900" y="708">
   <point/>
  </object>
  <object id="3" type="BambooTree" x="400" y="708">
   <properties>
    <property name="height" type="int" value="7"/>
   </properties>
   <point/>
  </object>
  <object id="4" name="StandingNinja" x="1200" y="608">
   <properties>
    <property name="onground" type="bool" value="true"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

const barrenTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="64" tileheight="64" infinite="0" nextlayerid="2" nextobjectid="2">
 <objectgroup id="1" name="Spawns">
  <object id="1" type="Torii" x="100" y="500">
   <point/>
  </object>
 </objectgroup>
</map>
`

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/forest.tmx": {Data: []byte(forestTMX)},
	}

	data, err := Load(fsys, "levels/forest.tmx")
	require.NoError(t, err)

	assert.Equal(t, "forest", data.Name)
	assert.Equal(t, 3200.0, data.Width)
	assert.Equal(t, 768.0, data.Height)

	require.Len(t, data.Ground, 3)
	assert.InDelta(t, 60, data.Ground[0].Y(), 1e-9)
	assert.InDelta(t, 60, data.Ground[1].Y(), 1e-9)
	assert.InDelta(t, 100, data.Ground[2].Y(), 1e-9)
	assert.InDelta(t, 3200, data.Ground[2].X(), 1e-9)

	require.Len(t, data.Spawns, 3)
	tree := data.Spawns[0]
	assert.Equal(t, "BambooTree", tree.Name)
	assert.Equal(t, 400.0, tree.X)
	assert.InDelta(t, 60, tree.Y, 1e-9)
	assert.Equal(t, 7, tree.Height)
	assert.False(t, tree.OnGround)

	assert.Equal(t, "Campfire", data.Spawns[1].Name)
	assert.Equal(t, 0, data.Spawns[1].Height)

	ninja := data.Spawns[2]
	assert.Equal(t, "StandingNinja", ninja.Name)
	assert.True(t, ninja.OnGround)
}

func TestLoadWithoutGround(t *testing.T) {
	fsys := fstest.MapFS{
		"barren.tmx": {Data: []byte(barrenTMX)},
	}

	_, err := Load(fsys, "barren.tmx")
	assert.ErrorIs(t, err, ErrNoGround)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "nope.tmx")
	assert.Error(t, err)
}

func TestLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/forest.tmx": {Data: []byte(forestTMX)},
		"levels/grove.tmx":  {Data: []byte(forestTMX)},
		"levels/notes.txt":  {Data: []byte("ignored")},
	}

	levels, names, err := LoadAll(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"forest", "grove"}, names)
	assert.Len(t, levels, 2)
	assert.Equal(t, "grove", levels["grove"].Name)

	_, _, err = LoadAll(fstest.MapFS{}, "levels")
	assert.Error(t, err)
}
