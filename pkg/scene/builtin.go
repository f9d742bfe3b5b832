package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name accepted by BuiltIn
	DisplayName string
	Description string
}

type builtInScene struct {
	info  SceneInfo
	build func(seed int64) *Scene
}

var builtInScenes = map[string]builtInScene{
	"random-spheres": {
		info: SceneInfo{
			ID:          "random-spheres",
			DisplayName: "Random Spheres",
			Description: "Field of random small spheres and triangles around three large spheres",
		},
		build: NewRandomSpheresScene,
	},
	"ground": {
		info: SceneInfo{
			ID:          "ground",
			DisplayName: "Ground",
			Description: "Single diffuse ground sphere under an open sky",
		},
		build: func(int64) *Scene { return NewGroundScene() },
	},
	"showcase": {
		info: SceneInfo{
			ID:          "showcase",
			DisplayName: "Showcase",
			Description: "One of every shape and material on a rectangle floor",
		},
		build: func(int64) *Scene { return NewShowcaseScene() },
	},
}

// BuiltIn creates the named built-in scene. seed only affects randomly
// generated scenes.
func BuiltIn(name string, seed int64) (*Scene, error) {
	entry, ok := builtInScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return entry.build(seed), nil
}

// Names returns the sorted names of the built-in scenes
func Names() []string {
	names := make([]string, 0, len(builtInScenes))
	for name := range builtInScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListBuiltIn returns the built-in scenes sorted by display name
func ListBuiltIn() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtInScenes))
	for _, entry := range builtInScenes {
		scenes = append(scenes, entry.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes
}
