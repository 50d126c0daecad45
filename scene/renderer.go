// Package scene renders a camera and a set of posed elements, one frame at a
// time, through the projection package.
//
// The page needs two nested containers: a viewer, which holds the
// perspective distance and clips, and inside it a camera container with
// 'transform-style: preserve-3d' that holds the objects' elements.
//
// The camera container must be exactly the viewport's size, with the default
// transform origin (its center), and the objects' elements must sit at its
// top-left corner. Both camera modes place the scene origin at the middle of
// the viewport only under that layout; keep the container's size in step
// with SetSize.
package scene

import (
	"fmt"

	"github.com/MobRulesGames/css3d/dom"
	"github.com/MobRulesGames/css3d/logging"
	"github.com/MobRulesGames/css3d/perspective"
	"github.com/MobRulesGames/css3d/projection"
	"github.com/go-gl/mathgl/mgl32"
)

// Options configures a Renderer.
type Options struct {
	// Viewport size in CSS pixels.
	Width, Height float64
}

// Object is an element posed in the scene.
type Object struct {
	Element dom.Element
	World   mgl32.Mat4

	// Billboards keep their position and scale but always face the camera.
	Billboard bool
	// Hidden objects are skipped; their last transform stays in place.
	Hidden bool
}

// NewObject returns an object at the origin.
func NewObject(e dom.Element) *Object {
	return &Object{Element: e, World: mgl32.Ident4()}
}

type modeKind int

const (
	modeUnset modeKind = iota
	modePerspective
	modeOrthographic
)

// Renderer writes a frame's worth of transforms. Not safe for concurrent
// use; call it from the render callback only.
type Renderer struct {
	viewer  *cachedElement
	camera  *cachedElement
	objects map[dom.Element]*cachedElement

	width, height float64
	mode          modeKind
	frame         uint64
}

func NewRenderer(viewer, camera dom.Element, opts Options) *Renderer {
	if viewer == nil || camera == nil {
		panic(fmt.Errorf("scene.NewRenderer needs both a viewer and a camera element"))
	}
	return &Renderer{
		viewer:  &cachedElement{Element: viewer},
		camera:  &cachedElement{Element: camera},
		objects: map[dom.Element]*cachedElement{},
		width:   opts.Width,
		height:  opts.Height,
	}
}

func (r *Renderer) SetSize(width, height float64) {
	logging.Debug("scene.Renderer.SetSize", "width", width, "height", height)
	r.width, r.height = width, height
}

func (r *Renderer) Size() (float64, float64) {
	return r.width, r.height
}

// Forget drops the renderer's memory of e's style. Call it when something
// other than the renderer writes e's style.
func (r *Renderer) Forget(e dom.Element) {
	delete(r.objects, e)
}

// Render writes one frame: the viewer's perspective first, then the camera
// container, then each object, so that every container is set up before
// its children are placed in it.
//
// Elements missing from 'objects' are forgotten; if one comes back, its
// transform is written again even when unchanged.
func (r *Renderer) Render(cam *perspective.Camera, objects []*Object) {
	if cam == nil {
		panic(fmt.Errorf("scene.Renderer.Render needs a camera"))
	}

	// The camera's viewport follows the renderer's.
	c := *cam
	c.Width, c.Height = float32(r.width), float32(r.height)

	view := c.View()
	if c.Orthographic {
		r.renderOrthographic(&c)
	} else {
		r.renderPerspective(&c, &view)
	}

	r.frame++
	for _, obj := range objects {
		if obj == nil || obj.Element == nil {
			continue
		}
		elem := r.cached(obj.Element)
		elem.frame = r.frame
		if obj.Hidden {
			continue
		}
		if obj.Billboard {
			projection.SetObjectTransform(elem, perspective.BillboardCSSMatrix(&obj.World, &view))
		} else {
			projection.SetObjectTransform(elem, perspective.ObjectCSSMatrix(&obj.World))
		}
	}

	for e, elem := range r.objects {
		if elem.frame != r.frame {
			delete(r.objects, e)
		}
	}
}

func (r *Renderer) renderPerspective(cam *perspective.Camera, view *mgl32.Mat4) {
	depth := cam.Depth()
	if r.mode != modePerspective {
		logging.Debug("scene.Renderer: switching to perspective", "depth", depth)
		r.mode = modePerspective
	}
	projection.SetupPerspective(r.viewer, depth)
	projection.SetupCamera(r.camera, projection.Perspective{
		YScale:     depth,
		HalfWidth:  r.width / 2,
		HalfHeight: r.height / 2,
		Matrix:     perspective.CameraCSSMatrix(view),
	})
}

func (r *Renderer) renderOrthographic(cam *perspective.Camera) {
	if r.mode != modeOrthographic {
		logging.Debug("scene.Renderer: switching to orthographic", "zoom", cam.Zoom)
		if r.mode == modePerspective {
			r.viewer.SetPerspective("none")
		}
		r.mode = modeOrthographic
	}
	projection.SetupCamera(r.camera, projection.Orthographic{
		Matrix: perspective.OrthographicCSSMatrix(cam),
	})
}

func (r *Renderer) cached(e dom.Element) *cachedElement {
	c, ok := r.objects[e]
	if !ok {
		c = &cachedElement{Element: e}
		r.objects[e] = c
	}
	return c
}
