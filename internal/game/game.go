// Package game wires the engine together: asset loading, terrain
// setup, the render pipeline and the main loop with its callback
// phases.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/sreejithr/openage/internal/assets"
	"github.com/sreejithr/openage/internal/config"
	"github.com/sreejithr/openage/internal/engine/camera"
	"github.com/sreejithr/openage/internal/engine/input"
	"github.com/sreejithr/openage/internal/engine/render"
	"github.com/sreejithr/openage/internal/engine/terrain"
	"github.com/sreejithr/openage/internal/engine/texture"
	"github.com/sreejithr/openage/internal/engine/window"
	"github.com/sreejithr/openage/internal/logger"
	"github.com/sreejithr/openage/internal/meta"
	"github.com/sreejithr/openage/pkg/math"
)

// Game is the main engine instance.
type Game struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	input    *input.Input
	cam      *camera.Camera
	assets   *assets.Manager
	terrain  *terrain.Terrain
	pipeline *render.Pipeline
	handlers Handlers

	// terrain editing state
	paintType int

	// optional demo sprites, nil when the assets are absent
	logo       *texture.Texture
	university *texture.Texture

	fpsFrames int
	fpsTimer  time.Time
}

// New builds a fully initialized game: metadata tables, terrain with
// the demo layout, window with GL context, and the render pipeline.
// The callback phases come pre-registered with the default handlers.
func New(cfg *config.Config) (*Game, error) {
	logger.Sugar.Infow("initializing game",
		"width", cfg.Graphics.Width,
		"height", cfg.Graphics.Height,
		"map_size", cfg.Terrain.MapSize,
	)

	g := &Game{cfg: cfg}

	var err error
	g.assets, err = assets.NewManager(cfg.Data.AssetRoot)
	if err != nil {
		return nil, fmt.Errorf("opening asset root: %w", err)
	}

	g.terrain, err = g.loadTerrain()
	if err != nil {
		return nil, err
	}
	if err := applyDemoMap(g.terrain); err != nil {
		return nil, fmt.Errorf("building demo map: %w", err)
	}

	colors, err := g.loadPlayerColors()
	if err != nil {
		return nil, err
	}

	// Window before pipeline: the GL context must exist first.
	g.window, err = window.New(window.Config{
		Title:      "openage",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	g.cam = camera.New(cfg.Graphics.Width, cfg.Graphics.Height, cfg.Game.ScrollSpeed)

	g.pipeline, err = render.New(g.terrain, g.cam, colors, g.assets, render.Config{
		ShowBlendMasks: cfg.Game.ShowBlendMasks,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("creating render pipeline: %w", err)
	}

	g.input = input.New()
	g.loadDemoSprites()
	g.registerDefaultHandlers()

	logger.Info("game initialized")
	return g, nil
}

// loadTerrain reads the descriptor tables and builds the tile grid.
func (g *Game) loadTerrain() (*terrain.Terrain, error) {
	terrainData, err := g.assets.Load(g.cfg.Data.TerrainTable)
	if err != nil {
		return nil, fmt.Errorf("loading terrain table: %w", err)
	}
	typeRows, err := meta.LoadTerrainTypes(terrainData)
	if err != nil {
		return nil, err
	}

	blendData, err := g.assets.Load(g.cfg.Data.BlendTable)
	if err != nil {
		return nil, fmt.Errorf("loading blend table: %w", err)
	}
	maskRows, err := meta.LoadBlendMasks(blendData)
	if err != nil {
		return nil, err
	}

	types := make([]terrain.Type, len(typeRows))
	for i, row := range typeRows {
		types[i] = terrain.Type{
			ID:            row.ID,
			Texture:       row.Texture,
			BlendPriority: row.Priority,
			BlendMode:     row.BlendMode,
		}
	}

	modes := make([]terrain.BlendMode, meta.ModeCount(maskRows))
	for i := range modes {
		modes[i] = terrain.BlendMode{ID: i, Masks: make(map[terrain.ShapeCode]string)}
	}
	for _, row := range maskRows {
		modes[row.Mode].Masks[terrain.ShapeCode(row.Shape)] = row.Texture
	}

	logger.Sugar.Infow("terrain metadata loaded",
		"terrain_types", len(types),
		"blend_modes", len(modes),
	)

	return terrain.New(g.cfg.Terrain.MapSize, types, modes)
}

func (g *Game) loadPlayerColors() ([]meta.PlayerColor, error) {
	data, err := g.assets.Load(g.cfg.Data.PlayerColors)
	if err != nil {
		return nil, fmt.Errorf("loading player colors: %w", err)
	}
	colors, err := meta.ParsePalette(data)
	if err != nil {
		return nil, err
	}
	logger.Sugar.Debugf("loaded %d player colors", len(colors))
	return colors, nil
}

// loadDemoSprites loads the optional test sprites. Missing files are
// fine, the terrain renders without them.
func (g *Game) loadDemoSprites() {
	if img, err := g.assets.LoadImage("gaben.png"); err == nil {
		if tex, err := texture.FromImage(img, false); err == nil {
			g.logo = tex
		}
	}
	if img, err := g.assets.LoadImage("university.png"); err == nil {
		if tex, err := texture.FromImage(img, true); err == nil {
			g.university = tex
		}
	}
}

// registerDefaultHandlers installs the stock engine behaviour:
// quit and terrain painting on input, camera scrolling on tick,
// terrain and sprites on draw game, FPS title on draw HUD.
func (g *Game) registerDefaultHandlers() {
	g.handlers.RegisterInput(g.handleInput)
	g.handlers.RegisterTick(g.scrollCamera)
	g.handlers.RegisterDrawGame(g.drawTerrain)
	g.handlers.RegisterDrawGame(g.drawSprites)
	if g.cfg.Game.ShowFPS {
		g.handlers.RegisterDrawHUD(g.drawFPSTitle)
	}
}

// Handlers exposes the callback lists for additional registrations
// before Run.
func (g *Game) Handlers() *Handlers {
	return &g.handlers
}

func (g *Game) handleInput(events []input.Event) bool {
	for _, e := range events {
		switch e.Type {
		case input.EventKeyDown:
			if e.Key == sdl.SCANCODE_ESCAPE {
				return false
			}
		case input.EventWindowResize:
			gl.Viewport(0, 0, int32(e.Width), int32(e.Height))
			g.cam.Resize(e.Width, e.Height)
		case input.EventMouseDown:
			g.handleMouse(e)
		}
	}
	return true
}

// handleMouse paints terrain: left click sets the current paint type
// on the clicked tile, right click cycles the paint type.
func (g *Game) handleMouse(e input.Event) {
	switch e.Button {
	case sdl.BUTTON_LEFT:
		world := g.cam.ScreenToWorld(e.MouseX, e.MouseY)
		pos := render.WorldToTile(world)
		if err := g.terrain.SetTile(pos, g.paintType); err != nil {
			logger.Sugar.Debugf("paint outside map at %v", pos)
			return
		}
		logger.Sugar.Debugw("painted tile", "pos", pos.String(), "type", g.paintType)
	case sdl.BUTTON_RIGHT:
		g.paintType = (g.paintType + 1) % len(g.terrain.Types())
		logger.Sugar.Infow("paint type selected", "type", g.paintType)
	}
}

// scrollCamera moves the view with the arrow keys.
func (g *Game) scrollCamera(dt float64) bool {
	var dx, dy float32
	if input.IsKeyHeld(sdl.SCANCODE_LEFT) {
		dx -= 1
	}
	if input.IsKeyHeld(sdl.SCANCODE_RIGHT) {
		dx += 1
	}
	if input.IsKeyHeld(sdl.SCANCODE_UP) {
		dy -= 1
	}
	if input.IsKeyHeld(sdl.SCANCODE_DOWN) {
		dy += 1
	}
	if dx != 0 || dy != 0 {
		g.cam.Move(dx, dy, dt)
	}
	return true
}

func (g *Game) drawTerrain() error {
	return g.pipeline.DrawTerrain()
}

// drawSprites draws the demo sprites when present: the plain logo and
// the player-colored building once per player color row.
func (g *Game) drawSprites() error {
	if g.logo != nil {
		if err := g.pipeline.DrawSprite(g.logo, math.Vec2{X: 0, Y: 0}, 0); err != nil {
			return err
		}
	}
	if g.university != nil {
		w, _ := g.university.Size()
		for player := 0; player < 8; player++ {
			pos := math.Vec2{X: float32(player) * float32(w+16), Y: 260}
			if err := g.pipeline.DrawSprite(g.university, pos, player); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Game) drawFPSTitle() error {
	g.fpsFrames++
	if time.Since(g.fpsTimer) >= time.Second {
		g.window.SetTitle(fmt.Sprintf("openage - %d fps", g.fpsFrames))
		g.fpsFrames = 0
		g.fpsTimer = time.Now()
	}
	return nil
}

// Run drives the main loop until a quit event, ESC, or a handler
// requests shutdown. Each frame runs input, tick, draw game, draw HUD,
// then swaps buffers.
func (g *Game) Run() error {
	g.running = true
	lastTime := time.Now()
	g.fpsTimer = lastTime

	var frameBudget time.Duration
	if g.cfg.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(g.cfg.Graphics.FPSLimit)
	}

	logger.Info("starting game loop")

	for g.running {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		if g.input.Update() {
			break
		}
		if !g.handlers.runInput(g.input.Events()) {
			break
		}
		if !g.handlers.runTick(dt) {
			break
		}

		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := g.handlers.runDrawGame(); err != nil {
			return fmt.Errorf("draw game: %w", err)
		}
		if err := g.handlers.runDrawHUD(); err != nil {
			return fmt.Errorf("draw hud: %w", err)
		}

		g.window.SwapBuffers()

		if frameBudget > 0 {
			if elapsed := time.Since(frameStart); elapsed < frameBudget {
				time.Sleep(frameBudget - elapsed)
			}
		}
	}

	g.running = false
	return nil
}

// Close releases all resources in reverse initialization order.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.logo != nil {
		g.logo.Destroy()
	}
	if g.university != nil {
		g.university.Destroy()
	}
	if g.pipeline != nil {
		g.pipeline.Destroy()
	}
	if g.window != nil {
		g.window.Close()
	}
	if g.assets != nil {
		g.assets.Close()
	}
}
