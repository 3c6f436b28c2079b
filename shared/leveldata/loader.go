package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/stomp-mp/shared/netconfig"
	"github.com/lafriks/go-tiled"
)

const (
	solidLayerName       = "solid"
	playerSpawnGroup     = "PlayerSpawn"
	entitySpawnGroup     = "EntitySpawn"
	levelSettingsGroup   = "LevelSettings"
	nonSolidTileProperty = "passable"
)

// LoadCollisionData parses a TMX file and returns solid tiles, spawn points
// and entity placements. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func LoadCollisionData(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	heightPx := float64(levelMap.Height * levelMap.TileHeight)
	data := &CollisionData{
		Width:    float64(levelMap.Width*levelMap.TileWidth) / PixelsPerUnit,
		Height:   heightPx / PixelsPerUnit,
		TileSize: float64(levelMap.TileWidth) / PixelsPerUnit,
	}

	// toWorld flips a TMX pixel position into world units.
	toWorld := func(px, py float64) (float64, float64) {
		return px / PixelsPerUnit, (heightPx - py) / PixelsPerUnit
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != solidLayerName {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					if tilesetTile.Properties.GetBool(nonSolidTileProperty) {
						continue
					}
				}

				wx, wy := toWorld(float64(x)*tileW, float64(y+1)*tileH)
				data.SolidRects = append(data.SolidRects, SolidRect{
					X: wx,
					Y: wy,
					W: tileW / PixelsPerUnit,
					H: tileH / PixelsPerUnit,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case playerSpawnGroup:
			for _, o := range og.Objects {
				wx, wy := toWorld(o.X, o.Y)
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     wx,
					Y:     wy,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case entitySpawnGroup:
			for _, o := range og.Objects {
				name := o.Properties.GetString("kind")
				kind, ok := netconfig.ParseEntityKind(name)
				if !ok {
					return nil, fmt.Errorf("%s: object %d has unknown entity kind %q", tmxPath, o.ID, name)
				}
				wx, wy := toWorld(o.X, o.Y)
				data.EntitySpawns = append(data.EntitySpawns, EntitySpawn{
					X:          wx,
					Y:          wy,
					Kind:       kind,
					Respawning: o.Properties.GetBool("respawning"),
				})
			}
		case levelSettingsGroup:
			for _, o := range og.Objects {
				if o.Properties.GetBool("loops") {
					data.Loops = true
				}
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].X < data.SpawnPoints[j].X
	})

	return data, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads collision
// data for each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*CollisionData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*CollisionData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadCollisionData(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
