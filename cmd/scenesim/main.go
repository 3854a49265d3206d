// Package main is a headless driver for the relicview object motion
// system: it builds a small demo scene from archived-style spawn data,
// steps it at a fixed cadence and logs object state.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/relicview/internal/config"
	"github.com/Faultbox/relicview/internal/engine/geom"
	"github.com/Faultbox/relicview/internal/engine/object"
	"github.com/Faultbox/relicview/internal/engine/render"
	"github.com/Faultbox/relicview/internal/engine/scene"
	"github.com/Faultbox/relicview/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Relicview Scene Simulator ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	sink := &render.Recorder{}
	s := scene.New(sink, rng)
	if err := buildDemoScene(s); err != nil {
		logger.Error("failed to build scene", zap.Error(err))
		os.Exit(1)
	}
	s.SetArea(cfg.Sim.Area)

	logger.Info("scene built",
		zap.Int("objects", len(s.Objects())),
		zap.Int64("seed", seed),
	)

	for step := 0; step < cfg.Sim.Steps; step++ {
		sink.Reset()
		s.Step(cfg.Sim.StepSeconds)

		if step%30 == 0 {
			logState(s, step)
		}
	}

	logger.Info("simulation finished",
		zap.Int("steps", cfg.Sim.Steps),
		zap.Int("submitted_last_frame", len(sink.Submitted)),
	)
}

func logState(s *scene.Scene, step int) {
	for i, o := range s.Objects() {
		logger.Debug("object state",
			zap.Int("step", step),
			zap.Int("index", i),
			zap.Uint16("type", uint16(o.Spawn.Type)),
			zap.Bool("visible", o.Visible),
			zap.Int("path_index", o.PathIndex()),
			zap.Float32s("pos", o.Kin.Pos[:]),
		)
	}
}

// buildDemoScene places a handful of scripted objects exercising every
// motion behavior: a taxi on a looping street path, a bobbing buoy, a
// swaying signboard, a weighted balance doll and a pop-up mole.
func buildDemoScene(s *scene.Scene) error {
	vehicleBox := geom.AABB{Min: mgl32.Vec3{-1, 0, -2}, Max: mgl32.Vec3{1, 1.5, 2}}
	propBox := geom.AABB{Min: mgl32.Vec3{-0.5, 0, -0.5}, Max: mgl32.Vec3{0.5, 2, 0.5}}

	taxi, err := object.New(
		object.Spawn{Type: object.TypeTaxi, Pos: [3]float32{0, 1.5, 0}, DispOffArea: -1},
		&object.MotionParams{
			Kind:  object.KindCollisionPath,
			Speed: object.SpeedDefault,
			Path: []float32{
				0, 1.5, 0, 0,
				40, 1.5, 0, 0,
				40, 1.5, 30, 0,
				0, 1.5, 30, 0,
			},
		},
		[]*render.Instance{
			render.NewInstance(mgl32.Vec3{}, mgl32.Vec3{}, vehicleBox),
			render.NewInstance(mgl32.Vec3{0, 0.3, 1.2}, mgl32.Vec3{}, geom.AABB{}),
			render.NewInstance(mgl32.Vec3{0, 0.3, -1.2}, mgl32.Vec3{}, geom.AABB{}),
		},
	)
	if err != nil {
		return err
	}
	s.Add(taxi)

	buoy, err := object.New(
		object.Spawn{Type: object.TypeBuoy, Pos: [3]float32{10, 0, -5}, DispOffArea: -1},
		&object.MotionParams{Kind: object.KindMisc, GlobalIndex: object.MiscBob},
		[]*render.Instance{render.NewInstance(mgl32.Vec3{}, mgl32.Vec3{}, propBox)},
	)
	if err != nil {
		return err
	}
	s.Add(buoy)

	sign, err := object.New(
		object.Spawn{Type: object.TypeSignboard, Pos: [3]float32{-6, 2, 3}, DispOffArea: -1},
		&object.MotionParams{Kind: object.KindMisc, GlobalIndex: object.MiscSway},
		[]*render.Instance{render.NewInstance(mgl32.Vec3{}, mgl32.Vec3{}, propBox)},
	)
	if err != nil {
		return err
	}
	s.Add(sign)

	doll, err := object.New(
		object.Spawn{Type: object.TypeBalanceDoll, Pos: [3]float32{-8, 0, 3}, DispOffArea: -1},
		&object.MotionParams{Kind: object.KindMisc, GlobalIndex: object.MiscSway},
		[]*render.Instance{render.NewInstance(mgl32.Vec3{}, mgl32.Vec3{}, propBox)},
	)
	if err != nil {
		return err
	}
	s.Add(doll)

	mole, err := object.New(
		object.Spawn{Type: object.TypeMole, Pos: [3]float32{4, 0, 12}, DispOnArea: 0, DispOffArea: 2},
		&object.MotionParams{Kind: object.KindMisc, GlobalIndex: object.MiscMole},
		[]*render.Instance{render.NewInstance(mgl32.Vec3{}, mgl32.Vec3{}, propBox)},
	)
	if err != nil {
		return err
	}
	s.Add(mole)

	return nil
}
