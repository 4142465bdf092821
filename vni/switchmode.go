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

// SwitchMode describes how an animation is combined with the display.
type SwitchMode int

// List of valid SwitchMode values.
const (
	ModePalette SwitchMode = iota
	ModeReplace
	ModeColorMask
	ModeEvent
	ModeFollow
	ModeLayeredColorMask
	ModeFollowReplace
	ModeMaskedReplace
	ModeUndefined
)

func (m SwitchMode) String() string {
	switch m {
	case ModePalette:
		return "palette"
	case ModeReplace:
		return "replace"
	case ModeColorMask:
		return "color mask"
	case ModeEvent:
		return "event"
	case ModeFollow:
		return "follow"
	case ModeLayeredColorMask:
		return "layered color mask"
	case ModeFollowReplace:
		return "follow replace"
	case ModeMaskedReplace:
		return "masked replace"
	}
	return "undefined"
}

// UsesAnimationFrame returns true if the frames of the animation are drawn
// by the renderer. For the other modes the animation is used only to select a
// palette or to trigger an event.
func (m SwitchMode) UsesAnimationFrame() bool {
	switch m {
	case ModeReplace, ModeColorMask, ModeLayeredColorMask, ModeFollowReplace, ModeMaskedReplace:
		return true
	}
	return false
}
