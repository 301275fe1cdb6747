package puzzle

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// State is a top-level game screen.
type State int

const (
	StateIntro State = iota
	StatePlaying
	StateEnd
)

func (s State) String() string {
	switch s {
	case StateIntro:
		return "intro"
	case StatePlaying:
		return "playing"
	case StateEnd:
		return "end"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// transitions lists the states reachable from each state. End is terminal.
var transitions = map[State][]State{
	StateIntro:   {StatePlaying},
	StatePlaying: {StateEnd},
}

// CanTransition reports whether from -> to is in the transition table.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Presentation timing, in seconds.
const (
	PromptFade      = 2.0 / 3.0 // one leg of the intro prompt pulse
	CurtainDuration = 0.4       // curtain fully opening or closing
	CurtainHold     = 0.5       // pause between the win and the curtain closing
)

type playPhase int

const (
	phaseOpening playPhase = iota
	phasePlaying
	phaseHolding
	phaseClosing
)

// Machine drives intro -> playing -> end around a Round.
type Machine struct {
	state     State
	layout    Layout
	roundOpts []RoundOption
	round     *Round
	events    *EventLog
	log       *log.Entry
	tick      int

	prompt      *gween.Tween
	promptAlpha float32
	promptUp    bool

	phase   playPhase
	curtain *gween.Tween
	open    float32
	held    float64
}

// MachineOption configures a Machine.
type MachineOption func(*Machine)

// WithMachineLogger sets the logger entry for the machine and its rounds.
func WithMachineLogger(e *log.Entry) MachineOption {
	return func(m *Machine) { m.log = e }
}

// WithRoundOptions passes extra options to every round the machine builds.
func WithRoundOptions(opts ...RoundOption) MachineOption {
	return func(m *Machine) { m.roundOpts = append(m.roundOpts, opts...) }
}

// NewMachine validates the layout up front and starts on the intro screen.
func NewMachine(layout Layout, opts ...MachineOption) (*Machine, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	m := &Machine{
		state:       StateIntro,
		layout:      layout,
		events:      NewEventLog(),
		log:         log.NewEntry(log.StandardLogger()),
		promptAlpha: 1,
	}
	for _, o := range opts {
		o(m)
	}
	m.prompt = gween.New(1, 0, PromptFade, ease.Linear)
	return m, nil
}

// Update runs one tick. Actions are consumed by the current state before
// anything advances.
func (m *Machine) Update(dt float64, actions []Action) error {
	m.tick++
	switch m.state {
	case StateIntro:
		m.pulsePrompt(dt)
		for _, a := range actions {
			if a == ActionConfirm {
				return m.transition(StatePlaying)
			}
		}
	case StatePlaying:
		m.updatePlaying(dt, actions)
	case StateEnd:
	}
	return nil
}

func (m *Machine) pulsePrompt(dt float64) {
	cur, done := m.prompt.Update(float32(dt))
	m.promptAlpha = cur
	if !done {
		return
	}
	m.promptUp = !m.promptUp
	if m.promptUp {
		m.prompt = gween.New(0, 1, PromptFade, ease.Linear)
	} else {
		m.prompt = gween.New(1, 0, PromptFade, ease.Linear)
	}
}

func (m *Machine) updatePlaying(dt float64, actions []Action) {
	if m.curtain != nil {
		cur, done := m.curtain.Update(float32(dt))
		m.open = cur
		if done {
			m.curtain = nil
			switch m.phase {
			case phaseOpening:
				m.phase = phasePlaying
			case phaseClosing:
				if err := m.transition(StateEnd); err != nil {
					m.log.WithError(err).Error("end transition")
				}
				return
			}
		}
	}

	complete := m.round.Step(dt, actions...)
	if !complete {
		return
	}
	switch m.phase {
	case phaseOpening, phasePlaying:
		m.phase = phaseHolding
		m.held = 0
	case phaseHolding:
		m.held += dt
		if m.held >= CurtainHold {
			m.phase = phaseClosing
			m.curtain = gween.New(m.open, 0, CurtainDuration, ease.InOutQuad)
		}
	}
}

func (m *Machine) transition(to State) error {
	from := m.state
	if !CanTransition(from, to) {
		return fmt.Errorf("%s -> %s: %w", from, to, ErrInvalidTransition)
	}
	if to == StatePlaying {
		opts := append([]RoundOption{WithEventLog(m.events), WithLogger(m.log)}, m.roundOpts...)
		r, err := NewRound(m.layout, opts...)
		if err != nil {
			return fmt.Errorf("enter %s: %w", to, err)
		}
		m.round = r
		m.phase = phaseOpening
		m.open = 0
		m.curtain = gween.New(0, 1, CurtainDuration, ease.InOutQuad)
	}
	m.state = to
	m.events.Add(m.tick, "--", CatState, KeyTransition, fmt.Sprintf("%s → %s", from, to))
	m.log.WithFields(log.Fields{"from": from.String(), "to": to.String()}).Info("state transition")
	return nil
}

// State returns the current screen.
func (m *Machine) State() State { return m.state }

// Terminal reports whether the machine has reached the end screen.
func (m *Machine) Terminal() bool { return m.state == StateEnd }

// Round returns the round of the playing state, nil before it.
func (m *Machine) Round() *Round { return m.round }

// Events returns the log shared by the machine and its round.
func (m *Machine) Events() *EventLog { return m.events }

// CurtainOpen is how far the curtain has opened, 0 (covering) to 1 (gone).
func (m *Machine) CurtainOpen() float64 {
	if m.state != StatePlaying {
		return 0
	}
	return float64(m.open)
}

// PromptAlpha is the opacity of the intro "press enter" prompt.
func (m *Machine) PromptAlpha() float64 { return float64(m.promptAlpha) }
