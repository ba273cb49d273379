package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/lixenwraith/pyre/parameter"
	"github.com/lixenwraith/pyre/particle"
	"github.com/lixenwraith/pyre/vmath"
)

var (
	duration   = flag.Duration("duration", 10*time.Second, "Benchmark duration")
	count      = flag.Int("count", 2000, "Particle cap")
	processors = flag.String("processors", "well,vortex,drift", "Comma-separated set: well,vortex,drift or none")
	width      = flag.Int("width", parameter.DefaultFieldWidth, "Field width in cells")
	height     = flag.Int("height", parameter.DefaultFieldHeight, "Field height in cells")
)

func main() {
	flag.Parse()

	m := particle.NewManager(*width, *height)

	// Spawn across the whole field, fixed seed for comparable runs
	em := particle.NewEmitter(particle.EmitterConfig{
		X:           vmath.FromInt(*width / 2),
		Y:           vmath.FromInt(*height / 2),
		Zone:        particle.RectZone{Width: vmath.FromInt(*width), Height: vmath.FromInt(*height)},
		SpeedMin:    vmath.FromFloat(4.0),
		SpeedMax:    vmath.FromFloat(20.0),
		LifespanMin: 2 * time.Second,
		LifespanMax: 4 * time.Second,
		Frequency:   time.Millisecond,
		Quantity:    8,
		Cap:         *count,
		Bounce:      true,
		Seed:        1,
	})
	m.AddEmitter(em)

	cx, cy := vmath.FromInt(*width/2), vmath.FromInt(*height/2)
	for _, name := range strings.Split(*processors, ",") {
		switch strings.TrimSpace(name) {
		case "well":
			m.AddProcessor(particle.NewGravityWell(m, cx, cy, vmath.FromFloat(30.0)))
		case "vortex":
			m.AddProcessor(particle.NewVortex(m, cx, cy))
		case "drift":
			m.AddProcessor(particle.NewDrift(m, 0, vmath.FromFloat(9.0)))
		case "none", "":
		default:
			fmt.Fprintf(os.Stderr, "Unknown processor: %q\n", name)
			os.Exit(1)
		}
	}

	// Signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		m.Destroy()
		os.Exit(0)
	}()

	// Stats
	var frames int64
	var processed int64
	var peak int
	var updateTotal time.Duration
	start := time.Now()

	// Fixed simulated step; wall-clock pacing would just measure the sleep
	for time.Since(start) < *duration {
		t0 := time.Now()
		m.Update(parameter.FrameUpdateInterval)
		updateTotal += time.Since(t0)

		alive := em.Len()
		processed += int64(alive)
		if alive > peak {
			peak = alive
		}
		m.Events().Consume()
		frames++
	}

	elapsed := time.Since(start)
	m.Destroy()

	if frames == 0 {
		fmt.Println("No frames completed")
		return
	}

	fmt.Printf("Benchmark Results:\n")
	fmt.Printf("  Field:          %dx%d cells\n", *width, *height)
	fmt.Printf("  Processors:     %s\n", *processors)
	fmt.Printf("  Total Frames:   %d\n", frames)
	fmt.Printf("  Total Time:     %v\n", elapsed)
	fmt.Printf("  Avg FPS:        %.2f\n", float64(frames)/elapsed.Seconds())
	fmt.Printf("  Peak Particles: %d\n", peak)
	fmt.Printf("  Avg Update:     %v\n", updateTotal/time.Duration(frames))
	if processed > 0 {
		fmt.Printf("  Per Particle:   %d ns\n", updateTotal.Nanoseconds()/processed)
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	fmt.Printf("  Total Alloc:    %d bytes\n", mem.TotalAlloc)
	fmt.Printf("  Mallocs:        %d\n", mem.Mallocs)
}
