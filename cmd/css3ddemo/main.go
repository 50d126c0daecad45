//go:build js && wasm

// css3ddemo spins a camera around a cube of DOM cards.
//
//	GOOS=js GOARCH=wasm go build -o css3ddemo.wasm ./cmd/css3ddemo
package main

//go:generate go run github.com/MobRulesGames/css3d/tools/genversion/cmd ../../.git/HEAD ./gen/version.go

import (
	"fmt"
	"syscall/js"

	// note: if cmd/css3ddemo/gen is stale, run 'go generate ./cmd/css3ddemo'
	"github.com/MobRulesGames/css3d/cmd/css3ddemo/gen"
	"github.com/MobRulesGames/css3d/cmd/css3ddemo/internal/demo"
	"github.com/MobRulesGames/css3d/dom/jsdom"
	"github.com/MobRulesGames/css3d/logging"
	"github.com/MobRulesGames/css3d/perspective"
	"github.com/MobRulesGames/css3d/scene"
)

const (
	faceSize    = 200
	orbitRadius = 600
	orbitHeight = 150
	orbitPeriod = 6
)

func setupViewer(doc *jsdom.Document) *jsdom.Element {
	viewer, err := doc.ByID("viewer")
	if err != nil {
		logging.Warn("css3ddemo: making our own viewer", "err", err)
		viewer = doc.Create("div")
		viewer.SetStyle("position", "absolute")
		viewer.SetStyle("inset", "0")
		doc.Body().Append(viewer)
	}
	viewer.SetStyle("overflow", "hidden")
	return viewer
}

func setupFaces(doc *jsdom.Document, camera *jsdom.Element) []*scene.Object {
	var objects []*scene.Object
	for _, face := range demo.CubeFaces(faceSize) {
		card := doc.Create("div")
		card.SetClass("face " + face.Label)
		card.SetText(face.Label)
		card.SetStyle("position", "absolute")
		card.SetStyle("left", "0")
		card.SetStyle("top", "0")
		card.SetStyle("width", fmt.Sprintf("%dpx", faceSize))
		card.SetStyle("height", fmt.Sprintf("%dpx", faceSize))
		card.SetStyle("backfaceVisibility", "hidden")
		camera.Append(card)

		obj := scene.NewObject(card)
		obj.World = face.World
		objects = append(objects, obj)
	}
	return objects
}

// fitCamera sizes the camera container to the viewport; the renderer's
// transforms assume it.
func fitCamera(camera *jsdom.Element, width, height float64) {
	camera.SetStyle("width", fmt.Sprintf("%vpx", width))
	camera.SetStyle("height", fmt.Sprintf("%vpx", height))
}

func main() {
	logging.Info("css3ddemo starting", "version", gen.Version())

	doc := jsdom.Global()
	viewer := setupViewer(doc)

	camera := doc.Create("div")
	camera.SetStyle("position", "absolute")
	camera.SetStyle("left", "0")
	camera.SetStyle("top", "0")
	camera.SetStyle("transformStyle", "preserve-3d")
	viewer.Append(camera)

	objects := setupFaces(doc, camera)

	w, h := viewer.ClientSize()
	fitCamera(camera, w, h)
	renderer := scene.NewRenderer(viewer, camera, scene.Options{Width: w, Height: h})
	cam := perspective.NewCamera(float32(w), float32(h))
	orbit := demo.NewOrbit(orbitRadius, orbitHeight, orbitPeriod)

	onResize := js.FuncOf(func(this js.Value, args []js.Value) any {
		w, h := viewer.ClientSize()
		fitCamera(camera, w, h)
		renderer.SetSize(w, h)
		return nil
	})
	js.Global().Call("addEventListener", "resize", onResize)

	var frame js.Func
	last := -1.0
	frame = js.FuncOf(func(this js.Value, args []js.Value) any {
		now := args[0].Float()
		if last >= 0 {
			orbit.Update(float32((now - last) / 1000))
		}
		last = now

		orbit.Place(cam)
		renderer.Render(cam, objects)

		js.Global().Call("requestAnimationFrame", frame)
		return nil
	})
	js.Global().Call("requestAnimationFrame", frame)

	logging.Info("css3ddemo running", "width", w, "height", h, "faces", len(objects))
	select {}
}
