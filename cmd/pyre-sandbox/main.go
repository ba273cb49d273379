package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/pyre/audio"
	"github.com/lixenwraith/pyre/core"
	"github.com/lixenwraith/pyre/event"
	"github.com/lixenwraith/pyre/parameter"
	"github.com/lixenwraith/pyre/parameter/visual"
	"github.com/lixenwraith/pyre/particle"
	"github.com/lixenwraith/pyre/vmath"
)

const (
	fountainFrequency = 30 * time.Millisecond
	fountainQuantity  = 3
	gravityDown       = 18.0 // cells/sec^2
	wellPowerDefault  = 30.0
	wellPowerMin      = 5.0
	wellPowerMax      = 100.0
	wellPowerStep     = 5.0
	burstCount        = 48
	sparkleCount      = 8
	sparkBudget       = 4096
)

// Sandbox drives the interactive particle field demo
type Sandbox struct {
	screen        tcell.Screen
	width, height int
	fieldH        int // rows above the HUD line

	manager  *particle.Manager
	fountain *particle.Emitter
	sparks   *particle.Emitter
	well     *particle.GravityWell
	vortex   *particle.Vortex
	drift    *particle.Drift

	sound   *audio.SoundManager
	audioOK bool

	cursorX, cursorY int
	wellPower        float64

	statusLine string
	lastStatus time.Time
}

func newSandbox() (*Sandbox, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}
	core.SetCrashCleanup(screen.Fini)

	s := &Sandbox{
		screen:    screen,
		wellPower: wellPowerDefault,
	}

	s.width, s.height = screen.Size()
	s.fieldH = s.height - 1
	if s.fieldH < 1 {
		s.fieldH = 1
	}
	s.cursorX = s.width / 2
	s.cursorY = s.fieldH / 2

	s.manager = particle.NewManager(s.width, s.fieldH)

	// Fountain: upward cone from the bottom edge, pulled back down by drift
	s.fountain = particle.NewEmitter(particle.EmitterConfig{
		X:           vmath.FromInt(s.width / 2),
		Y:           vmath.FromInt(s.fieldH - 2),
		Zone:        particle.RectZone{Width: vmath.FromInt(3), Height: vmath.FromInt(1)},
		SpeedMin:    vmath.FromFloat(14.0),
		SpeedMax:    vmath.FromFloat(26.0),
		AngleMin:    vmath.Scale * 2 / 3,
		AngleMax:    vmath.Scale * 5 / 6,
		LifespanMin: 1200 * time.Millisecond,
		LifespanMax: 3200 * time.Millisecond,
		Frequency:   fountainFrequency,
		Quantity:    fountainQuantity,
		Runes:       visual.EmberRunes,
		Ramp:        visual.FireRamp,
		Bounce:      true,
	})
	s.manager.AddEmitter(s.fountain)

	// Sparks: burst-only, budgeted so the exhaustion path is reachable
	s.sparks = particle.NewEmitter(particle.EmitterConfig{
		Zone:        particle.RingZone{RMin: vmath.FromFloat(0.5), RMax: vmath.FromFloat(2.5)},
		SpeedMin:    vmath.FromFloat(6.0),
		SpeedMax:    vmath.FromFloat(18.0),
		LifespanMin: 500 * time.Millisecond,
		LifespanMax: 1600 * time.Millisecond,
		Frequency:   -1,
		Budget:      sparkBudget,
		Cap:         2048,
		Runes:       visual.SparkRunes,
		Ramp:        visual.PlasmaRamp,
		Bounce:      true,
	})
	s.manager.AddEmitter(s.sparks)

	// Processors; well tracks the cursor, vortex sits at field center
	s.well = particle.NewGravityWell(s.manager,
		vmath.FromInt(s.cursorX), vmath.FromInt(s.cursorY), vmath.FromFloat(s.wellPower))
	s.well.Active = false
	s.manager.AddProcessor(s.well)

	s.vortex = particle.NewVortex(s.manager,
		vmath.FromInt(s.width/2), vmath.FromInt(s.fieldH/2))
	s.vortex.Pull = vmath.FromFloat(4.0)
	s.vortex.Active = false
	s.manager.AddProcessor(s.vortex)

	s.drift = particle.NewDrift(s.manager, 0, vmath.FromFloat(gravityDown))
	s.manager.AddProcessor(s.drift)

	// Audio is optional; the demo runs silent when the speaker is unavailable
	s.sound = audio.NewSoundManager()
	if err := s.sound.Initialize(); err == nil && s.sound.Ready() {
		s.audioOK = true
	}

	return s, nil
}

func (s *Sandbox) moveCursor(dx, dy int) {
	s.cursorX += dx
	s.cursorY += dy
	if s.cursorX < 0 {
		s.cursorX = 0
	}
	if s.cursorX >= s.width {
		s.cursorX = s.width - 1
	}
	if s.cursorY < 0 {
		s.cursorY = 0
	}
	if s.cursorY >= s.fieldH {
		s.cursorY = s.fieldH - 1
	}
	s.well.X = vmath.FromInt(s.cursorX)
	s.well.Y = vmath.FromInt(s.cursorY)
}

func (s *Sandbox) adjustPower(delta float64) {
	s.wellPower += delta
	if s.wellPower < wellPowerMin {
		s.wellPower = wellPowerMin
	}
	if s.wellPower > wellPowerMax {
		s.wellPower = wellPowerMax
	}
	s.well.SetPower(vmath.FromFloat(s.wellPower))
}

func (s *Sandbox) handleResize() {
	newWidth, newHeight := s.screen.Size()
	if newWidth == s.width && newHeight == s.height {
		return
	}
	s.width = newWidth
	s.height = newHeight
	s.fieldH = s.height - 1
	if s.fieldH < 1 {
		s.fieldH = 1
	}

	// Clamp cursor position
	if s.cursorX >= s.width {
		s.cursorX = s.width - 1
	}
	if s.cursorY >= s.fieldH {
		s.cursorY = s.fieldH - 1
	}
	s.well.X = vmath.FromInt(s.cursorX)
	s.well.Y = vmath.FromInt(s.cursorY)
	s.vortex.X = vmath.FromInt(s.width / 2)
	s.vortex.Y = vmath.FromInt(s.fieldH / 2)
	s.fountain.SetOrigin(vmath.FromInt(s.width/2), vmath.FromInt(s.fieldH-2))

	s.manager.SetSize(s.width, s.fieldH)
	s.screen.Sync()
}

func (s *Sandbox) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}

		switch ev.Key() {
		case tcell.KeyLeft:
			s.moveCursor(-2, 0)
		case tcell.KeyRight:
			s.moveCursor(2, 0)
		case tcell.KeyUp:
			s.moveCursor(0, -1)
		case tcell.KeyDown:
			s.moveCursor(0, 1)
		}

		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'h':
				s.moveCursor(-2, 0)
			case 'l':
				s.moveCursor(2, 0)
			case 'k':
				s.moveCursor(0, -1)
			case 'j':
				s.moveCursor(0, 1)
			case 'g':
				s.well.Active = !s.well.Active
			case 'v':
				s.vortex.Active = !s.vortex.Active
			case 'c':
				s.vortex.Clockwise = !s.vortex.Clockwise
			case 'd':
				s.drift.Active = !s.drift.Active
			case '[':
				s.adjustPower(-wellPowerStep)
			case ']':
				s.adjustPower(wellPowerStep)
			case 'b', ' ':
				s.manager.Explode(s.sparks, burstCount,
					vmath.FromInt(s.cursorX), vmath.FromInt(s.cursorY))
			case 'x':
				s.manager.Explode(s.sparks, sparkleCount,
					vmath.FromInt(s.cursorX), vmath.FromInt(s.cursorY))
			}
		}

	case *tcell.EventResize:
		s.handleResize()
	}

	return true
}

// consumeEvents drains the field event queue and maps events to sounds
func (s *Sandbox) consumeEvents() {
	for _, ev := range s.manager.Events().Consume() {
		switch ev.Type {
		case event.EventBurst:
			if !s.audioOK {
				continue
			}
			if _, _, count := event.UnpackBurst(ev.Payload.(uint64)); count >= burstCount {
				s.sound.PlayBurst()
			} else {
				s.sound.PlayCrackle()
			}
		case event.EventEmitterExhausted:
			if s.audioOK {
				s.sound.PlayExhaust()
			}
		}
	}
}

func (s *Sandbox) refreshStatus(now time.Time) {
	if now.Sub(s.lastStatus) < parameter.StatusUpdateInterval {
		return
	}
	s.lastStatus = now

	snap := s.manager.Status().Snapshot()
	s.statusLine = fmt.Sprintf("pyre · alive %d · spawned %d · expired %d · frame %d",
		snap.Ints["particles.active"],
		snap.Ints["particles.spawned"],
		snap.Ints["particles.expired"],
		snap.Ints["manager.frames"])
	if s.sparks.Exhausted() {
		s.statusLine += " · sparks:dry"
	}
	if !s.audioOK {
		s.statusLine += " · audio:off"
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// drawText writes a string, advancing by display width per rune
func (s *Sandbox) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= s.width {
			return
		}
		s.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func (s *Sandbox) draw() {
	s.screen.Clear()

	// Particles, colored by life position on the emitter's ramp
	for _, e := range s.manager.Emitters() {
		ramp := e.Ramp()
		e.ForEachAlive(func(p *particle.Particle) {
			if p.LastIntX < 0 || p.LastIntX >= s.width || p.LastIntY < 0 || p.LastIntY >= s.fieldH {
				return
			}
			c := ramp.At(p.LifeFrac())
			style := tcell.StyleDefault.Foreground(
				tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			s.screen.SetContent(p.LastIntX, p.LastIntY, p.Rune, nil, style)
		})
	}

	// Vortex marker
	if s.vortex.Active {
		vx, vy := vmath.ToInt(s.vortex.X), vmath.ToInt(s.vortex.Y)
		if vx >= 0 && vx < s.width && vy >= 0 && vy < s.fieldH {
			style := tcell.StyleDefault.Foreground(tcell.ColorAqua)
			s.screen.SetContent(vx, vy, '@', nil, style)
		}
	}

	// Cursor crosshair; reverse video while the well is pulling
	cursorStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	if s.well.Active {
		cursorStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Reverse(true)
	}
	s.screen.SetContent(s.cursorX, s.cursorY, '+', nil, cursorStyle)

	// HUD: status left, key legend right
	hudStyle := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	s.drawText(0, s.height-1, s.statusLine, hudStyle)

	legend := fmt.Sprintf("[g]well:%s [v]vortex:%s [c]spin [d]drift:%s [[/]]pow:%.0f [b/x]burst [q]uit",
		onOff(s.well.Active), onOff(s.vortex.Active), onOff(s.drift.Active), s.wellPower)
	legendX := s.width - runewidth.StringWidth(legend)
	if legendX < runewidth.StringWidth(s.statusLine)+2 {
		legendX = runewidth.StringWidth(s.statusLine) + 2
	}
	s.drawText(legendX, s.height-1, legend, hudStyle)

	s.screen.Show()
}

func (s *Sandbox) run() {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			eventChan <- s.screen.PollEvent()
		}
	})

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !s.handleInput(ev) {
				return
			}

		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(last)
			last = now

			s.manager.Update(dt)
			s.consumeEvents()
			s.refreshStatus(now)
			s.draw()
		}
	}
}

func (s *Sandbox) cleanup() {
	s.manager.Destroy()
	if s.audioOK {
		s.sound.Cleanup()
	}
	s.screen.Fini()
}

func main() {
	defer func() {
		core.HandleCrash(recover())
	}()

	sandbox, err := newSandbox()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer sandbox.cleanup()

	sandbox.run()
}
