// Command sightdemo is an interactive viewer for sightmesh.
//
// The fan origin follows the mouse through a walled scene and the visibility
// mesh is rebuilt and drawn every frame. Controls: A/D rotate the facing
// direction, Space toggles between a 120-degree cone and a closed 360-degree
// sweep.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/gosight/sightmesh"
	"github.com/gosight/sightmesh/world"
)

const (
	screenWidth  = 960
	screenHeight = 640

	coneArcDegrees = 120
	turnPerTick    = 0.03 // radians
)

var (
	backgroundColor = color.RGBA{R: 24, G: 26, B: 32, A: 255}
	wallColor       = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	meshColor       = color.RGBA{R: 255, G: 220, B: 90, A: 70}
	originColor     = color.RGBA{R: 255, G: 120, B: 60, A: 255}
	hudColor        = color.RGBA{R: 220, G: 220, B: 220, A: 255}
)

type demo struct {
	scene   *world.Scene
	builder *sightmesh.Builder
	heading float64

	whiteImg *ebiten.Image
	vs       []ebiten.Vertex
}

func newDemo(scene *world.Scene, params sightmesh.Params) (*demo, error) {
	b, err := sightmesh.NewBuilder(params)
	if err != nil {
		return nil, err
	}
	whiteImg := ebiten.NewImage(1, 1)
	whiteImg.Fill(color.White)
	return &demo{
		scene:    scene,
		builder:  b,
		heading:  params.Forward.Atan2(),
		whiteImg: whiteImg,
	}, nil
}

func (d *demo) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		d.heading += turnPerTick
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		d.heading -= turnPerTick
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		params := d.builder.Params()
		if params.Closed() {
			params.ArcDegrees = coneArcDegrees
		} else {
			params.ArcDegrees = 360
		}
		if err := d.builder.Reconfigure(params); err != nil {
			return err
		}
	}

	mx, my := ebiten.CursorPosition()
	forward := sightmesh.V2(1, 0).Rotate(d.heading)
	if err := d.builder.SetPose(sightmesh.V2(float64(mx), float64(my)), forward); err != nil {
		return err
	}
	_, err := d.builder.Update(d.scene)
	return err
}

func (d *demo) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	d.drawMesh(screen)
	d.drawWalls(screen)
	d.drawHUD(screen)
}

func (d *demo) drawMesh(screen *ebiten.Image) {
	mesh := d.builder.Mesh()
	params := d.builder.Params()
	owner := sightmesh.TransformAt(params.Origin, params.Forward)

	d.vs = d.vs[:0]
	for _, v := range mesh.Vertices {
		w := owner.ToWorld(v)
		d.vs = append(d.vs, ebiten.Vertex{
			DstX:   float32(w.X),
			DstY:   float32(w.Y),
			ColorR: float32(meshColor.R) / 255,
			ColorG: float32(meshColor.G) / 255,
			ColorB: float32(meshColor.B) / 255,
			ColorA: float32(meshColor.A) / 255,
		})
	}
	screen.DrawTriangles(d.vs, mesh.Indices, d.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})

	vector.DrawFilledCircle(screen,
		float32(params.Origin.X), float32(params.Origin.Y), 4, originColor, true)
}

func (d *demo) drawWalls(screen *ebiten.Image) {
	for _, s := range d.scene.Segments() {
		vector.StrokeLine(screen,
			float32(s.A.X), float32(s.A.Y),
			float32(s.B.X), float32(s.B.Y),
			2, wallColor, true)
	}
}

func (d *demo) drawHUD(screen *ebiten.Image) {
	params := d.builder.Params()
	blocked := 0
	for _, s := range d.builder.Samples() {
		if s.Blocked {
			blocked++
		}
	}
	hud := fmt.Sprintf("arc %g  step %g  radius %g  rays %d  blocked %d  tps %.0f",
		params.ArcDegrees, params.StepDegrees, params.Radius,
		params.SampleCount(), blocked, ebiten.ActualTPS())
	text.Draw(screen, hud, basicfont.Face7x13, 12, screenHeight-14, hudColor)
	text.Draw(screen, "mouse: move  A/D: turn  space: cone/full",
		basicfont.Face7x13, 12, 20, hudColor)
}

func (d *demo) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// defaultScene builds a bordered map with a few rectangular buildings and a
// couple of free-standing walls, enough to show occlusion from every angle.
func defaultScene() (*world.Scene, sightmesh.Params) {
	s := world.New()
	s.AddRect(8, 8, screenWidth-16, screenHeight-16)
	s.AddRect(140, 100, 160, 90)
	s.AddRect(520, 70, 120, 180)
	s.AddRect(240, 380, 220, 110)
	s.AddRect(680, 420, 150, 120)
	s.Add(
		world.Seg(420, 200, 420, 330),
		world.Seg(620, 320, 760, 260),
	)
	params := sightmesh.Params{
		Origin:      sightmesh.V2(screenWidth/2, screenHeight/2),
		Forward:     sightmesh.V2(1, 0),
		ArcDegrees:  360,
		StepDegrees: 1.5,
		Radius:      420,
	}
	return s, params
}

func main() {
	var (
		scenePath = flag.String("scene", "", "YAML scene file (default: built-in map)")
		verbose   = flag.Bool("v", false, "enable debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		sightmesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	scene, params := defaultScene()
	if *scenePath != "" {
		var err error
		scene, params, err = world.Load(*scenePath)
		if err != nil {
			log.Fatal(err)
		}
	}

	d, err := newDemo(scene, params)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("sightmesh demo")
	if err := ebiten.RunGame(d); err != nil {
		log.Fatal(err)
	}
}
