package main

import (
	"encoding/json"
	"flag"
	"log"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/pyre/core"
	"github.com/lixenwraith/pyre/event"
	"github.com/lixenwraith/pyre/parameter"
	"github.com/lixenwraith/pyre/parameter/visual"
	"github.com/lixenwraith/pyre/particle"
	"github.com/lixenwraith/pyre/vmath"
)

const frameInterval = 33 * time.Millisecond

var addr = flag.String("addr", ":8080", "HTTP listen address")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

var (
	clientsMu sync.Mutex
	clients   = make(map[*websocket.Conn]bool)
)

// pointerMsg is what the browser sends: pointer cell position plus actions
type pointerMsg struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Well  bool    `json:"well"`
	Burst int     `json:"burst,omitempty"`
}

// wireParticle is one particle in a frame payload
// C is the ramp color packed as 0xRRGGBB
type wireParticle struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	C int     `json:"c"`
}

type frameMsg struct {
	Frame     int64          `json:"frame"`
	W         int            `json:"w"`
	H         int            `json:"h"`
	Particles []wireParticle `json:"particles"`
	Events    []string       `json:"events,omitempty"`
}

// simulation owns the particle field; pointer input and the frame loop
// both mutate it, so access goes through mu
type simulation struct {
	mu       sync.Mutex
	manager  *particle.Manager
	fountain *particle.Emitter
	sparks   *particle.Emitter
	well     *particle.GravityWell
	width    int
	height   int
}

func newSimulation(width, height int) *simulation {
	s := &simulation{
		manager: particle.NewManager(width, height),
		width:   width,
		height:  height,
	}

	s.fountain = particle.NewEmitter(particle.EmitterConfig{
		X:           vmath.FromInt(width / 2),
		Y:           vmath.FromInt(height - 2),
		Zone:        particle.RectZone{Width: vmath.FromInt(3), Height: vmath.FromInt(1)},
		SpeedMin:    vmath.FromFloat(14.0),
		SpeedMax:    vmath.FromFloat(26.0),
		AngleMin:    vmath.Scale * 2 / 3,
		AngleMax:    vmath.Scale * 5 / 6,
		LifespanMin: 1200 * time.Millisecond,
		LifespanMax: 3200 * time.Millisecond,
		Frequency:   30 * time.Millisecond,
		Quantity:    3,
		Ramp:        visual.FireRamp,
		Bounce:      true,
	})
	s.manager.AddEmitter(s.fountain)

	s.sparks = particle.NewEmitter(particle.EmitterConfig{
		Zone:        particle.RingZone{RMin: vmath.FromFloat(0.5), RMax: vmath.FromFloat(2.5)},
		SpeedMin:    vmath.FromFloat(6.0),
		SpeedMax:    vmath.FromFloat(18.0),
		LifespanMin: 500 * time.Millisecond,
		LifespanMax: 1600 * time.Millisecond,
		Frequency:   -1,
		Cap:         2048,
		Ramp:        visual.PlasmaRamp,
		Bounce:      true,
	})
	s.manager.AddEmitter(s.sparks)

	s.well = particle.NewGravityWell(s.manager,
		vmath.FromInt(width/2), vmath.FromInt(height/2), vmath.FromFloat(30.0))
	s.well.Active = false
	s.manager.AddProcessor(s.well)

	s.manager.AddProcessor(particle.NewDrift(s.manager, 0, vmath.FromFloat(18.0)))

	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func packRGB(c core.RGB) int {
	return int(c.R)<<16 | int(c.G)<<8 | int(c.B)
}

// snapshot builds the wire frame; caller holds s.mu
func (s *simulation) snapshot() *frameMsg {
	frame := &frameMsg{
		Frame: s.manager.Frame(),
		W:     s.width,
		H:     s.height,
	}

	for _, e := range s.manager.Emitters() {
		ramp := e.Ramp()
		e.ForEachAlive(func(p *particle.Particle) {
			frame.Particles = append(frame.Particles, wireParticle{
				X: round2(vmath.ToFloat(p.PreciseX)),
				Y: round2(vmath.ToFloat(p.PreciseY)),
				C: packRGB(ramp.At(p.LifeFrac())),
			})
		})
	}

	for _, ev := range s.manager.Events().Consume() {
		switch ev.Type {
		case event.EventBurst:
			frame.Events = append(frame.Events, "burst")
		case event.EventEmitterExhausted:
			frame.Events = append(frame.Events, "exhausted")
		case event.EventFieldResize:
			frame.Events = append(frame.Events, "resize")
		}
	}

	return frame
}

// run advances the simulation and broadcasts frames until the process exits
func (s *simulation) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for range ticker.C {
		now := time.Now()

		s.mu.Lock()
		s.manager.Update(now.Sub(last))
		last = now
		frame := s.snapshot()
		s.mu.Unlock()

		payload, err := json.Marshal(frame)
		if err != nil {
			log.Println(err)
			continue
		}
		broadcast(payload)
	}
}

func (s *simulation) apply(pm pointerMsg) {
	x := math.Max(0, math.Min(pm.X, float64(s.width-1)))
	y := math.Max(0, math.Min(pm.Y, float64(s.height-1)))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.well.X = vmath.FromFloat(x)
	s.well.Y = vmath.FromFloat(y)
	s.well.Active = pm.Well

	if pm.Burst > 0 {
		s.manager.Explode(s.sparks, pm.Burst, vmath.FromFloat(x), vmath.FromFloat(y))
	}
}

func broadcast(payload []byte) {
	clientsMu.Lock()
	defer clientsMu.Unlock()

	for conn := range clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(clients, conn)
		}
	}
}

// readPointer listens for pointer messages from one client
func (s *simulation) readPointer(conn *websocket.Conn) {
	defer func() {
		clientsMu.Lock()
		delete(clients, conn)
		clientsMu.Unlock()
		conn.Close()
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error: %v", err)
			}
			return
		}

		var pm pointerMsg
		if err := json.Unmarshal(msg, &pm); err != nil {
			continue
		}
		s.apply(pm)
	}
}

// wsHandler defines the websocket connection endpoint
func (s *simulation) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		if _, ok := err.(websocket.HandshakeError); !ok {
			log.Println(err)
		}
		return
	}

	clientsMu.Lock()
	clients[conn] = true
	clientsMu.Unlock()

	go s.readPointer(conn)
}

func (s *simulation) statusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.manager.Status().Snapshot()); err != nil {
		log.Println(err)
	}
}

func indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

func main() {
	flag.Parse()

	sim := newSimulation(parameter.DefaultFieldWidth, parameter.DefaultFieldHeight)
	go sim.run()

	http.HandleFunc("/", indexHandler)
	http.HandleFunc("/ws", sim.wsHandler)
	http.HandleFunc("/status", sim.statusHandler)

	mux := http.DefaultServeMux.ServeHTTP
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Print(r.RemoteAddr + " " + r.Method + " " + r.URL.String())
		mux(w, r)
	})

	log.Printf("pyre field on %s", *addr)
	log.Fatalln(http.ListenAndServe(*addr, handler))
}
