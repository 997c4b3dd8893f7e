package content

import (
	"context"
	"time"

	"github.com/bnema/whiteboard/internal/application/port"
	"github.com/bnema/whiteboard/internal/domain/entity"
)

const (
	keyModelIndex          = "modelIndex"
	keyAnimationIndex      = "currentAnimationIndex"
	keyRenderingActive     = "isRenderingActive"
	keyAnimationPaused     = "isAnimationPaused"
	keyPausedAnimationTime = "pausedAnimationTime"
)

// Model3D shows an animated 3D model. Rendering runs only while the user
// wants it on and nothing has suspended it.
type Model3D struct {
	scheduler port.FrameScheduler
	now       func() time.Time

	modelIndex     int
	animationIndex int

	renderingActive bool
	suspended       bool
	running         bool

	animationPaused bool
	pausedAt        float64
	animationStart  time.Time
}

// NewModel3D creates a 3D panel showing model 0. sched may be nil.
func NewModel3D(sched port.FrameScheduler) *Model3D {
	m := &Model3D{
		scheduler:       sched,
		now:             time.Now,
		renderingActive: true,
	}
	m.animationStart = m.now()
	m.sync()
	return m
}

func (m *Model3D) Kind() entity.PanelKind { return entity.PanelModel3D }

func (m *Model3D) DefaultSize() entity.Size { return entity.Size{Width: 400, Height: 350} }

// ModelIndex returns the index of the displayed model.
func (m *Model3D) ModelIndex() int { return m.modelIndex }

// SetModel switches the displayed model and restarts its first animation.
func (m *Model3D) SetModel(index int) {
	m.modelIndex = max(index, 0)
	m.SwitchToAnimation(0)
}

// AnimationIndex returns the playing animation.
func (m *Model3D) AnimationIndex() int { return m.animationIndex }

// RenderingActive reports whether the user has rendering turned on.
func (m *Model3D) RenderingActive() bool { return m.renderingActive }

// Rendering reports whether frames are currently being produced.
func (m *Model3D) Rendering() bool { return m.running }

// AnimationPaused reports whether the animation clock is frozen.
func (m *Model3D) AnimationPaused() bool { return m.animationPaused }

// AnimationTime returns the position in the current animation, in seconds.
func (m *Model3D) AnimationTime() float64 {
	if m.animationPaused {
		return m.pausedAt
	}
	return m.now().Sub(m.animationStart).Seconds()
}

// PauseRendering suspends frame production, e.g. while annotating.
func (m *Model3D) PauseRendering() {
	m.suspended = true
	m.sync()
}

// ResumeRendering lifts a suspension. Rendering restarts only if the user
// has it turned on.
func (m *Model3D) ResumeRendering() {
	m.suspended = false
	m.sync()
}

// ToggleRendering flips the user's rendering switch.
func (m *Model3D) ToggleRendering() {
	m.renderingActive = !m.renderingActive
	m.sync()
}

// PauseAnimation freezes the animation clock.
func (m *Model3D) PauseAnimation() {
	if m.animationPaused {
		return
	}
	m.pausedAt = m.AnimationTime()
	m.animationPaused = true
}

// PlayAnimation resumes the animation from where it was paused.
func (m *Model3D) PlayAnimation() {
	if !m.animationPaused {
		return
	}
	m.animationStart = m.now().Add(-time.Duration(m.pausedAt * float64(time.Second)))
	m.animationPaused = false
}

// ToggleAnimation pauses or plays the animation.
func (m *Model3D) ToggleAnimation() {
	if m.animationPaused {
		m.PlayAnimation()
	} else {
		m.PauseAnimation()
	}
}

// SwitchToAnimation starts animation index from the beginning, keeping the
// paused state.
func (m *Model3D) SwitchToAnimation(index int) {
	m.animationIndex = max(index, 0)
	m.pausedAt = 0
	m.animationStart = m.now()
}

func (m *Model3D) sync() {
	want := m.renderingActive && !m.suspended
	if want == m.running {
		return
	}
	m.running = want
	if m.scheduler == nil {
		return
	}
	if want {
		m.scheduler.Start()
	} else {
		m.scheduler.Stop()
	}
}

func (m *Model3D) SaveData() entity.CustomData {
	return entity.CustomData{
		keyModelIndex:          entity.IntValue(m.modelIndex),
		keyAnimationIndex:      entity.IntValue(m.animationIndex),
		keyRenderingActive:     entity.BoolValue(m.renderingActive),
		keyAnimationPaused:     entity.BoolValue(m.animationPaused),
		keyPausedAnimationTime: entity.FloatValue(m.AnimationTime()),
	}
}

func (m *Model3D) LoadData(_ context.Context, data entity.CustomData) {
	if v, ok := data.Int(keyModelIndex); ok {
		m.modelIndex = max(v, 0)
	}
	if v, ok := data.Int(keyAnimationIndex); ok {
		m.animationIndex = max(v, 0)
	}
	t, hasTime := data.Float(keyPausedAnimationTime)
	if !hasTime {
		t = 0
	}
	if paused, ok := data.Bool(keyAnimationPaused); ok {
		m.animationPaused = paused
	}
	m.pausedAt = max(t, 0)
	m.animationStart = m.now().Add(-time.Duration(m.pausedAt * float64(time.Second)))
	if active, ok := data.Bool(keyRenderingActive); ok {
		m.renderingActive = active
		m.sync()
	}
}

func (m *Model3D) Buttons() []entity.ControlButton {
	return []entity.ControlButton{
		{Icon: "animation-toggle", Anchor: entity.AnchorCenterEnd, Action: m.ToggleAnimation},
		{Icon: "rendering-toggle", Anchor: entity.AnchorCenterEnd, Action: m.ToggleRendering},
		{Icon: "animation-next", Anchor: entity.AnchorBottomEnd, Action: func() { m.SwitchToAnimation(m.animationIndex + 1) }},
	}
}
