package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrUnknownScene is returned when a scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
}

type sceneEntry struct {
	info  SceneInfo
	build func(viewport mgl64.Vec2) *Scene
}

var builtinScenes = map[string]sceneEntry{
	"default": {
		info:  SceneInfo{ID: "default", DisplayName: "Default", Description: "Six spheres of mixed colour and reflectiveness"},
		build: NewDefaultScene,
	},
	"single": {
		info:  SceneInfo{ID: "single", DisplayName: "Single Sphere", Description: "One matte grey sphere at the origin"},
		build: NewSingleSphereScene,
	},
	"mirrors": {
		info:  SceneInfo{ID: "mirrors", DisplayName: "Mirrors", Description: "Two facing mirror spheres"},
		build: NewMirrorsScene,
	},
	"spheregrid": {
		info:  SceneInfo{ID: "spheregrid", DisplayName: "Sphere Grid", Description: "Grid of spheres with rising reflectiveness"},
		build: NewSphereGridScene,
	},
}

// ListScenes returns every built-in scene sorted by display name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, entry := range builtinScenes {
		scenes = append(scenes, entry.info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes
}

// Names returns the IDs of every built-in scene, sorted
func Names() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup builds the named scene for the given viewport. Names are matched
// case-insensitively.
func Lookup(name string, viewport mgl64.Vec2) (*Scene, error) {
	entry, ok := builtinScenes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	return entry.build(viewport), nil
}
