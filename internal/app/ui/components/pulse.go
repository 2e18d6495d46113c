package components

import (
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

var pulseFrames = []string{"○", "◔", "◑", "◕", "●"}

// Pulse is an activity indicator that lights up when records arrive and
// springs back to rest over the following frames
type Pulse struct {
	spring   harmonica.Spring
	position float64
	velocity float64
	target   float64
}

// NewPulse creates a resting pulse
func NewPulse() *Pulse {
	return &Pulse{
		spring: harmonica.NewSpring(harmonica.FPS(PulseFPS), PulseAngularFrequency, PulseDampingRatio),
	}
}

// Kick lights the pulse up for the next frame
func (p *Pulse) Kick() {
	p.target = 1
}

// Update advances the spring by one frame and lets the target decay
func (p *Pulse) Update() {
	p.position, p.velocity = p.spring.Update(p.position, p.velocity, p.target)
	p.target = 0
}

// Frame returns the glyph for the current spring position
func (p *Pulse) Frame() string {
	idx := int(p.position*float64(len(pulseFrames)-1) + 0.5)

	switch {
	case idx < 0:
		idx = 0
	case idx >= len(pulseFrames):
		idx = len(pulseFrames) - 1
	}

	return pulseFrames[idx]
}

// Render returns the styled frame
func (p *Pulse) Render(style lipgloss.Style) string {
	return style.Render(p.Frame())
}

// Resting reports whether the spring has settled
func (p *Pulse) Resting() bool {
	return p.target == 0 && p.position < 0.01 && p.velocity < 0.01 && p.velocity > -0.01
}
