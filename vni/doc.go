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

// Package vni contains the animation types used when colourising a dot matrix
// display with replacement animations.
//
// An Animation is a fixed sequence of frames that is played by calling
// NextFrame() until the animation is no longer active. An animation is
// started with Start() and stops either when the last frame has been
// returned or when Stop() is called. A stopped animation can be started
// again.
//
// The SwitchMode of an animation describes how the renderer combines the
// animation with the display. The vni package does not interpret the switch
// mode.
//
// An AnimationSet is a collection of animations keyed by the offset of the
// animation. Animation and AnimationSet are not safe for concurrent use.
package vni
