package main

// indexHTML is the embedded canvas frontend
// Pointer position drives the gravity well; click fires a burst
const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>pyre</title>
<style>
body { margin: 0; background: #101014; overflow: hidden; }
canvas { display: block; }
#hint { position: fixed; bottom: 8px; left: 12px; color: #666;
        font: 12px monospace; pointer-events: none; }
</style>
</head>
<body>
<canvas id="field"></canvas>
<div id="hint">move: gravity well &middot; click: burst</div>
<script>
const canvas = document.getElementById("field");
const ctx = canvas.getContext("2d");
let fieldW = 0, fieldH = 0;
let flash = 0;

function resize() {
	canvas.width = window.innerWidth;
	canvas.height = window.innerHeight;
}
window.addEventListener("resize", resize);
resize();

const ws = new WebSocket("ws://" + location.host + "/ws");

ws.onmessage = (ev) => {
	const frame = JSON.parse(ev.data);
	fieldW = frame.w;
	fieldH = frame.h;
	const cellW = canvas.width / fieldW;
	const cellH = canvas.height / fieldH;

	ctx.fillStyle = flash > 0 ? "rgba(40,34,24,0.5)" : "rgba(16,16,20,0.35)";
	ctx.fillRect(0, 0, canvas.width, canvas.height);
	if (flash > 0) flash--;

	const pw = Math.max(2, cellW * 0.6);
	const ph = Math.max(2, cellH * 0.4);
	for (const p of frame.particles) {
		ctx.fillStyle = "#" + p.c.toString(16).padStart(6, "0");
		ctx.fillRect(p.x * cellW, p.y * cellH, pw, ph);
	}

	if (frame.events) {
		for (const e of frame.events) {
			if (e === "burst") flash = 3;
		}
	}
};

function cellPos(ev) {
	return {
		x: ev.clientX / canvas.width * fieldW,
		y: ev.clientY / canvas.height * fieldH,
	};
}

canvas.addEventListener("mousemove", (ev) => {
	if (ws.readyState !== WebSocket.OPEN || fieldW === 0) return;
	const c = cellPos(ev);
	ws.send(JSON.stringify({x: c.x, y: c.y, well: true}));
});

canvas.addEventListener("click", (ev) => {
	if (ws.readyState !== WebSocket.OPEN || fieldW === 0) return;
	const c = cellPos(ev);
	ws.send(JSON.stringify({x: c.x, y: c.y, well: true, burst: 32}));
});
</script>
</body>
</html>
`
