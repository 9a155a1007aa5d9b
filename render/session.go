// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/ctmc/graph"
	"github.com/katalvlaran/ctmc/transient"
)

// hueStep advances the palette by a twelfth of the colour wheel.
const hueStep = 360 / 12

// Dataset is one chart curve: p_i(t) over the trajectory's time labels.
type Dataset struct {
	Label  string    `json:"label"`
	Data   []float64 `json:"data"`
	Colour string    `json:"colour"`
}

// Chart is the series view of a trajectory.
type Chart struct {
	Labels   []float64 `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Session holds presentation state for one caller: the palette position and
// the most recently rendered DOT text and trajectory. Safe for concurrent use.
type Session struct {
	id string

	mu       sync.Mutex
	hue      int
	lastDOT  string
	lastTraj *transient.Trajectory
}

// NewSession returns a session with a fresh random ID and the palette at red.
func NewSession() *Session {
	return &Session{id: uuid.NewString()}
}

// ID identifies the session.
func (s *Session) ID() string { return s.id }

// Colour returns the next palette entry, hsl(h, 70%, 50%), and advances h by 30°.
func (s *Session) Colour() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.nextColour()
}

func (s *Session) nextColour() string {
	c := fmt.Sprintf("hsl(%d, 70%%, 50%%)", s.hue%360)
	s.hue += hueStep

	return c
}

// ResetColours moves the palette back to its first entry.
func (s *Session) ResetColours() {
	s.mu.Lock()
	s.hue = 0
	s.mu.Unlock()
}

// DOT renders g and remembers the text for LastDOT.
func (s *Session) DOT(g *graph.Graph) string {
	dot := DOT(g)
	s.mu.Lock()
	s.lastDOT = dot
	s.mu.Unlock()

	return dot
}

// LastDOT returns the text of the most recent DOT call.
func (s *Session) LastDOT() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastDOT, s.lastDOT != ""
}

// Chart builds one dataset per state. Time labels are rounded to prec digits;
// the palette restarts so that state i always gets the i-th colour. The
// trajectory is remembered for LastTrajectory.
func (s *Session) Chart(tr transient.Trajectory, prec int) Chart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hue = 0
	s.lastTraj = &tr

	labels := make([]float64, tr.Len())
	for k, t := range tr.Times() {
		labels[k], _ = strconv.ParseFloat(Fixed(t, prec), 64)
	}
	sets := make([]Dataset, tr.States())
	for i := range sets {
		data, _ := tr.Series(i)
		sets[i] = Dataset{Label: fmt.Sprintf("p%d(t)", i), Data: data, Colour: s.nextColour()}
	}

	return Chart{Labels: labels, Datasets: sets}
}

// LastTrajectory returns the trajectory of the most recent Chart call.
func (s *Session) LastTrajectory() (transient.Trajectory, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastTraj == nil {
		return transient.Trajectory{}, false
	}

	return *s.lastTraj, true
}
