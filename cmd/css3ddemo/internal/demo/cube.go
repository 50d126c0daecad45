// Package demo holds the scene behind css3ddemo: six labelled cards folded
// into a cube and a camera that orbits it.
package demo

import (
	"math"

	"github.com/MobRulesGames/css3d/perspective"
	"github.com/go-gl/mathgl/mgl32"
)

// Face is one card of the cube.
type Face struct {
	Label string
	World mgl32.Mat4
}

// CubeFaces folds six size x size cards into a cube centered on the origin.
// Each card is pushed out along +z by half the size, then turned to face
// its side.
func CubeFaces(size float32) []Face {
	push := mgl32.Translate3D(0, 0, size/2)

	turns := []struct {
		label      string
		yaw, pitch float32
	}{
		{"front", 0, 0},
		{"right", math.Pi / 2, 0},
		{"back", math.Pi, 0},
		{"left", -math.Pi / 2, 0},
		{"top", 0, -math.Pi / 2},
		{"bottom", 0, math.Pi / 2},
	}

	faces := make([]Face, 0, len(turns))
	for _, turn := range turns {
		pose := perspective.MakePose(0, 0, 0, turn.yaw, turn.pitch)
		faces = append(faces, Face{
			Label: turn.label,
			World: perspective.Compose(pose, push),
		})
	}
	return faces
}
