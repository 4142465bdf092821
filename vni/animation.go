// This file is part of DMDGopher.
//
// DMDGopher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// DMDGopher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with DMDGopher.  If not, see <https://www.gnu.org/licenses/>.

package vni

import (
	"time"

	"github.com/dmdgopher/dmdgopher/curated"
	"github.com/dmdgopher/dmdgopher/dmd"
)

// AnimationFrame is a single decoded frame of an animation.
type AnimationFrame struct {
	// bits per pixel of the frame
	BitLength int

	// how long the frame should be shown for
	Delay time.Duration

	Frame *dmd.Frame
}

// NewAnimationFrame creates an AnimationFrame with the bit length of the
// frame.
func NewAnimationFrame(frame *dmd.Frame, delay time.Duration) AnimationFrame {
	return AnimationFrame{
		BitLength: frame.BitsPerPixel(),
		Delay:     delay,
		Frame:     frame,
	}
}

// Animation is a fixed sequence of frames.
type Animation struct {
	Name       string
	Offset     uint32
	Width      int
	Height     int
	SwitchMode SwitchMode

	frames []AnimationFrame

	// index of the next frame to be returned by NextFrame(). a value of
	// len(frames) means that the animation is stopped
	currentFrame int
}

// NewAnimation is the preferred method of initialisation for the Animation
// type. The list of frames is copied. The animation is stopped until Start()
// is called.
func NewAnimation(frames []AnimationFrame) *Animation {
	a := &Animation{
		SwitchMode: ModePalette,
		frames:     make([]AnimationFrame, len(frames)),
	}
	copy(a.frames, frames)
	a.currentFrame = len(a.frames)

	if len(a.frames) > 0 && a.frames[0].Frame != nil {
		a.Width = a.frames[0].Frame.Width()
		a.Height = a.frames[0].Frame.Height()
	}

	return a
}

// NumFrames returns the number of frames in the animation.
func (a *Animation) NumFrames() int {
	return len(a.frames)
}

// BitLength returns the bit length of the first frame. Zero if the animation
// has no frames.
func (a *Animation) BitLength() int {
	if len(a.frames) > 0 {
		return a.frames[0].BitLength
	}
	return 0
}

// Frames returns a copy of the list of frames.
func (a *Animation) Frames() []AnimationFrame {
	f := make([]AnimationFrame, len(a.frames))
	copy(f, a.frames)
	return f
}

// Frame returns the frame at the index.
func (a *Animation) Frame(idx int) (AnimationFrame, error) {
	if idx < 0 || idx >= len(a.frames) {
		return AnimationFrame{}, curated.Errorf(FrameIndex, idx, len(a.frames))
	}
	return a.frames[idx], nil
}

// Start the animation from the first frame. If the animation is already
// active it will only return to the first frame if restart is true.
func (a *Animation) Start(restart bool) {
	if restart || !a.IsActive() {
		a.currentFrame = 0
	}
}

// Stop the animation. NextFrame() will not return any more frames until the
// animation is started again.
func (a *Animation) Stop() {
	a.currentFrame = len(a.frames)
}

// IsActive returns true if the animation has frames remaining.
func (a *Animation) IsActive() bool {
	return a.currentFrame >= 0 && a.currentFrame < len(a.frames)
}

// FramesLeft returns the number of frames yet to be returned by NextFrame().
func (a *Animation) FramesLeft() int {
	return len(a.frames) - a.currentFrame
}

// NextFrame returns the next frame of an active animation. The animation
// stops after the last frame has been returned. The second return value is
// false if the animation is not active.
func (a *Animation) NextFrame() (AnimationFrame, bool) {
	if !a.IsActive() {
		return AnimationFrame{}, false
	}

	f := a.frames[a.currentFrame]
	a.currentFrame++

	if a.currentFrame >= len(a.frames) {
		a.Stop()
	}

	return f, true
}
