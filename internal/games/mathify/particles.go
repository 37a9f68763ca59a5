package mathify

import (
	"math/rand"

	"github.com/vovakirdan/mathify/internal/core"
)

var particleColors = []core.Color{core.ColorGreen, core.ColorGold, core.ColorBlue}

// Particle is one spark of the celebration burst, in cell coordinates.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Color    core.Color
	Age      int
	Lifetime int
}

// newParticle launches a particle upward from (x, y) with a random spread.
func newParticle(rng *rand.Rand, x, y float64, lifetime int) Particle {
	return Particle{
		X:        x,
		Y:        y,
		VX:       rng.Float64()*1.2 - 0.6,
		VY:       -0.3 - rng.Float64()*0.5,
		Color:    particleColors[rng.Intn(len(particleColors))],
		Lifetime: lifetime,
	}
}

// Update advances the particle by one frame.
func (p *Particle) Update(gravity float64) {
	p.X += p.VX
	p.Y += p.VY
	p.VY += gravity
	p.Age++
}

// Dead reports whether the particle has outlived its lifetime.
func (p *Particle) Dead() bool {
	return p.Age >= p.Lifetime
}

// Glyph returns a rune that shrinks as the particle fades.
func (p *Particle) Glyph() rune {
	life := 1 - float64(p.Age)/float64(p.Lifetime)
	switch {
	case life > 0.66:
		return '✦'
	case life > 0.33:
		return '*'
	default:
		return '·'
	}
}

// Render draws the particle if it is still alive.
func (p *Particle) Render(dst *core.Screen) {
	if p.Dead() {
		return
	}
	dst.SetColored(int(p.X), int(p.Y), p.Glyph(), p.Color)
}

// Burst is the set of live particles.
type Burst struct {
	particles []Particle
}

// Spawn adds n particles at (x, y).
func (b *Burst) Spawn(rng *rand.Rand, n int, x, y float64, lifetime int) {
	for range n {
		b.particles = append(b.particles, newParticle(rng, x, y, lifetime))
	}
}

// Update advances all particles and drops dead ones.
func (b *Burst) Update(gravity float64) {
	live := b.particles[:0]
	for i := range b.particles {
		p := b.particles[i]
		p.Update(gravity)
		if !p.Dead() {
			live = append(live, p)
		}
	}
	b.particles = live
}

// Render draws all particles.
func (b *Burst) Render(dst *core.Screen) {
	for i := range b.particles {
		b.particles[i].Render(dst)
	}
}

// Len returns the number of live particles.
func (b *Burst) Len() int {
	return len(b.particles)
}

// Reset removes all particles.
func (b *Burst) Reset() {
	b.particles = b.particles[:0]
}
