package visual

// Rune sets sampled per spawn; ordered roughly bright to dim so dense
// bursts read as texture rather than noise

// SparkRunes suit fast short-lived particles
var SparkRunes = []rune{'*', '+', '·', '.'}

// EmberRunes suit slow rising particles with long ramps
var EmberRunes = []rune{'●', 'o', '•', '·'}

// SnowRunes suit drift fields
var SnowRunes = []rune{'❄', '*', '·', '.'}

// AshRunes suit decaying trails
var AshRunes = []rune{'▒', '░', '·', '.'}

// DefaultRunes is used when an emitter config leaves the set empty
var DefaultRunes = SparkRunes
