package main

import (
	"log"
	"os"
	"sync"
	"time"

	"github.com/capsim-dev/capsim"
	"github.com/capsim-dev/capsim/query"
	"github.com/capsim-dev/capsim/world"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/getsentry/sentry-go"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// The following program walks a capsule actor across a small obstacle course
// (flat floor, climbable step, wall, steep ramp) and logs every resolved
// tick, feeding each result back as the next tick's state.
func main() {
	conf := readConfig()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	if conf.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	if conf.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: conf.Sentry.DSN}); err != nil {
			logger.Warnf("sentry unavailable: %v", err)
		}
	}
	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
	}

	scene := world.NewScene()
	if _, err := scene.AddPlane(mgl32.Vec3{0, 1, 0}, 0); err != nil {
		logger.Fatalf("building scene: %v", err)
	}
	// A climbable step at x=3, a wall at x=8 and a 60 degree ramp past it.
	scene.AddBox(cube.Box(3, 0, -3, 8, 0.25, 3))
	if _, err := scene.AddPlane(mgl32.Vec3{-1, 0, 0}, -8); err != nil {
		logger.Fatalf("building scene: %v", err)
	}
	if _, err := scene.AddPlane(mgl32.Vec3{-0.866, 0.5, 0}, -6); err != nil {
		logger.Fatalf("building scene: %v", err)
	}

	solver, err := capsim.New(capsim.Config{
		Height:     conf.Solver.Height,
		Radius:     conf.Solver.Radius,
		StepHeight: conf.Solver.StepHeight,
		SlopeLimit: conf.Solver.SlopeLimit,
		SkinWidth:  conf.Solver.SkinWidth,
		MaxBounces: conf.Solver.MaxBounces,
	}, scene, logger)
	if err != nil {
		logger.Fatalf("creating solver: %v", err)
	}

	var g sync.WaitGroup
	g.Add(1)
	go func() {
		defer g.Done()
		defer sentry.Recover()
		runActor(logger, solver, conf)
	}()
	g.Wait()
	sentry.Flush(2 * time.Second)
}

func runActor(logger *logrus.Logger, solver *capsim.Solver, conf config) {
	dt := float32(1) / float32(conf.Simulation.TickRate)
	pos := mgl32.Vec3{0, conf.Solver.Height/2 + conf.Solver.SkinWidth, 0}
	vel := mgl32.Vec3{}

	for tick := 0; tick < conf.Simulation.Ticks; tick++ {
		desired := mgl32.Vec3{conf.Simulation.WalkSpeed, vel.Y() + conf.Simulation.Gravity*dt, 0}
		res := solver.Resolve(pos, desired, dt, query.NoRef)
		if res.Err != nil {
			logger.Errorf("tick %d: %v", tick, res.Err)
			return
		}
		pos, vel = res.Position, res.Velocity
		if res.OnGround {
			vel[1] = 0
		}
		logger.Infof("tick %d: pos=%v vel=%v onGround=%v hitWall=%v stepped=%v",
			tick, res.Position, res.Velocity, res.OnGround, res.HitWall, res.Stepped)
	}
}

type config struct {
	Solver struct {
		Height     float32
		Radius     float32
		StepHeight float32
		SlopeLimit float32
		SkinWidth  float32
		MaxBounces int
	}
	Simulation struct {
		Ticks     int
		TickRate  int
		WalkSpeed float32
		Gravity   float32
	}
	Sentry struct {
		DSN string
	}
	Debug bool
}

func readConfig() config {
	var c config
	def := capsim.DefaultConfig()
	c.Solver.Height = def.Height
	c.Solver.Radius = def.Radius
	c.Solver.StepHeight = def.StepHeight
	c.Solver.SlopeLimit = def.SlopeLimit
	c.Solver.SkinWidth = def.SkinWidth
	c.Solver.MaxBounces = def.MaxBounces
	c.Simulation.Ticks = 200
	c.Simulation.TickRate = 20
	c.Simulation.WalkSpeed = 4.0
	c.Simulation.Gravity = -9.8

	if _, err := os.Stat("config.toml"); os.IsNotExist(err) {
		data, err := toml.Marshal(c)
		if err != nil {
			log.Fatalf("error encoding config: %v", err)
		}
		if err := os.WriteFile("config.toml", data, 0644); err != nil {
			log.Fatalf("error creating config: %v", err)
		}
		return c
	}
	data, err := os.ReadFile("config.toml")
	if err != nil {
		log.Fatalf("error reading config: %v", err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		log.Fatalf("error parsing config: %v", err)
	}
	return c
}
