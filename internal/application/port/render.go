//go:generate mockgen -source=render.go -destination=mocks/mock_frame_scheduler.go -package=mocks

package port

// FrameScheduler drives frame production for expensive panel content such
// as 3D models. Implemented by the host renderer.
type FrameScheduler interface {
	// Start begins (or resumes) requesting frames.
	Start()
	// Stop stops requesting frames. Calling Stop while stopped is a no-op.
	Stop()
}
