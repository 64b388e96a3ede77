package leveldata

import (
	"testing"
	"testing/fstest"
)

const smallArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="3">
 <tileset firstgid="1" name="walls" tilewidth="16" tileheight="16" tilecount="1" columns="1">
  <image source="walls.png" width="16" height="16"/>
 </tileset>
 <layer id="1" name="wg-tiles" width="4" height="3">
  <data encoding="csv">
1,1,1,1,
0,0,0,0,
0,0,0,1
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="40" y="20">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
  </object>
  <object id="2" x="8" y="20">
   <properties>
    <property name="spawnIndex" type="int" value="0"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"arenas/small.tmx": &fstest.MapFile{Data: []byte(smallArena)},
		"arenas/copy.tmx":  &fstest.MapFile{Data: []byte(smallArena)},
	}
}

func TestLoadCollisionData(t *testing.T) {
	data, err := LoadCollisionData(testFS(), "arenas/small.tmx")
	if err != nil {
		t.Fatalf("LoadCollisionData: %v", err)
	}

	if data.MapWidth != 64 || data.MapHeight != 48 {
		t.Errorf("map size = %dx%d, want 64x48", data.MapWidth, data.MapHeight)
	}
	if len(data.SolidRects) != 5 {
		t.Fatalf("solid rects = %d, want 5", len(data.SolidRects))
	}
	last := data.SolidRects[4]
	if last.X != 48 || last.Y != 32 || last.W != 16 || last.H != 16 {
		t.Errorf("last rect = %+v, want tile (3,2)", last)
	}

	if len(data.SpawnPoints) != 2 {
		t.Fatalf("spawn points = %d, want 2", len(data.SpawnPoints))
	}
	if data.SpawnPoints[0].Index != 0 || data.SpawnPoints[0].X != 8 {
		t.Errorf("first spawn = %+v, want index 0 at x=8", data.SpawnPoints[0])
	}
}

func TestLoadAllLevels(t *testing.T) {
	levels, names, err := LoadAllLevels(testFS(), "arenas")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if len(names) != 2 || names[0] != "copy" || names[1] != "small" {
		t.Errorf("names = %v, want [copy small]", names)
	}
	if levels["small"] == nil {
		t.Error("small level missing")
	}
}

func TestLoadAllLevelsEmpty(t *testing.T) {
	if _, _, err := LoadAllLevels(fstest.MapFS{}, "arenas"); err == nil {
		t.Error("expected error for empty directory")
	}
}

func TestLoadLevelMissing(t *testing.T) {
	if _, err := LoadLevel(testFS(), "arenas", "nope"); err == nil {
		t.Error("expected error for missing level")
	}
}
