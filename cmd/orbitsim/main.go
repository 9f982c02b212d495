// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command orbitsim runs an orbit camera controller over a small scene
// without a display. It replays a scripted sequence of input gestures
// on a headless surface and logs the camera state for each frame.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"cogentcore.org/scenegraph/base/errors"
	"cogentcore.org/scenegraph/base/logx"
	"cogentcore.org/scenegraph/events"
	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/orbit"
	"cogentcore.org/scenegraph/xyz"
)

func main() {
	settings := flag.String("settings", "", "orbit settings file (.toml or .yaml)")
	frames := flag.Int("frames", 240, "number of frames to run after the gestures")
	vv := flag.Bool("vv", false, "log every frame")
	v := flag.Bool("v", false, "log camera changes")
	q := flag.Bool("q", false, "only log errors")
	watch := flag.Bool("watch", false, "keep running after the frames, reloading the settings file when it changes")
	flag.Parse()

	logx.UserLevel = logx.LevelFromFlags(*vv, *v, *q)
	logx.SetDefaultLogger(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, *settings, *frames, *watch)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, settingsFile string, frames int, watch bool) error {
	sc := buildScene()
	cam := sc.Camera.(*xyz.PerspectiveCamera)
	surface := events.NewElement(800, 600)
	cam.Aspect = surface.Width / surface.Height
	cam.UpdateProjectionMatrix()

	oc := orbit.New(cam, surface)
	if settingsFile != "" {
		s, err := orbit.OpenSettings(settingsFile)
		if err != nil {
			return err
		}
		oc.ApplySettings(s)
	}
	var reload <-chan *orbit.Settings
	if watch && settingsFile != "" {
		ch, err := watchSettings(ctx, settingsFile)
		if err != nil {
			return err
		}
		reload = ch
	}
	oc.ListenToKeyEvents(surface)
	defer oc.Dispose()
	oc.OnChange = sc.SetNeedsUpdate
	oc.OnStart = func() { slog.Info("gesture start") }
	oc.OnEnd = func() { slog.Info("gesture end") }

	r := &logRenderer{}
	frame := 0
	step := func() {
		select {
		case s, ok := <-reload:
			if ok {
				oc.ApplySettings(s)
			}
		default:
		}
		surface.ProcessEvents()
		oc.Update()
		if sc.DoUpdate(r) {
			r.log(frame, oc)
		}
		slog.Debug("frame", "frame", frame, "state", oc.State())
		frame++
	}

	for _, g := range gestures() {
		slog.Info("gesture", "name", g.name)
		g.send(surface)
		step()
	}
	for i := 0; i < frames; i++ {
		step()
	}
	if watch {
		tick := time.NewTicker(time.Second / 60)
		defer tick.Stop()
	loop:
		for {
			select {
			case <-ctx.Done():
				break loop
			case <-tick.C:
				step()
			}
		}
	}
	slog.Info("done", "frames", frame, "renders", r.renders)
	return nil
}

// buildScene returns a scene with a group of solids, a light,
// and a perspective camera at (0, 0, 5).
func buildScene() *xyz.Scene {
	sc := xyz.NewScene()
	sc.SetName("scene")
	sc.Camera.AsNode().SetPos(0, 0, 5)

	gp := xyz.NewGroup(sc)
	gp.SetName("group")
	gp.SetAxisRotation(0, 1, 0, 30)
	unit := math32.B3(-0.5, -0.5, -0.5, 0.5, 0.5, 0.5)
	for i, x := range []float32{-1.5, 0, 1.5} {
		sd := xyz.NewSolid(gp)
		sd.SetName(fmt.Sprintf("cube%d", i))
		sd.SetPos(x, 0, 0)
		sd.SetPayload("cube", unit)
	}
	lt := xyz.NewDirectionalLight(sc)
	lt.SetPos(2, 4, 3)
	lt.Target = gp
	return sc
}

type gesture struct {
	name string
	send func(el *events.Element)
}

// gestures returns the scripted input sequence.
func gestures() []gesture {
	return []gesture{
		{"rotate", func(el *events.Element) {
			el.MouseDrag(events.Left, math32.Vec2(400, 300), math32.Vec2(550, 250), 10, 0)
		}},
		{"zoom in", func(el *events.Element) {
			el.Wheel(400, 300, -300, 0)
		}},
		{"pan", func(el *events.Element) {
			el.MouseDrag(events.Right, math32.Vec2(400, 300), math32.Vec2(350, 320), 5, 0)
		}},
		{"pinch", func(el *events.Element) {
			el.TouchStart(10, 350, 300)
			el.TouchStart(11, 450, 300)
			el.TouchMove(10, 300, 300)
			el.TouchMove(11, 500, 300)
			el.TouchEnd(11, 500, 300)
			el.TouchEnd(10, 300, 300)
		}},
	}
}

// logRenderer is an [xyz.Renderer] that logs what would be drawn.
type logRenderer struct {
	renders int
}

func (r *logRenderer) Render(sc *xyz.Scene, cam xyz.Camera) error {
	r.renders++
	sds := sc.RenderList(cam)
	for _, sd := range sds {
		slog.Debug("draw", "solid", sd.Name, "pos", sd.Pose.WorldPos())
	}
	if len(sds) == 0 {
		return errors.New("orbitsim: nothing in view")
	}
	return nil
}

func (r *logRenderer) log(frame int, oc *orbit.Controller) {
	cb := oc.Object.AsCamera()
	slog.Info("camera", "frame", frame, "pos", cb.Pose.Pos, "target", oc.Target,
		"distance", oc.Distance(), "polar", oc.PolarAngle(), "azimuth", oc.AzimuthalAngle())
}
