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
	"sort"

	"github.com/dmdgopher/dmdgopher/curated"
)

// AnimationSet is a collection of animations keyed by offset. The collection
// does not change after it has been created.
type AnimationSet struct {
	animations map[uint32]*Animation
}

// NewAnimationSet creates an AnimationSet from a list of animations. The
// Offset field of each animation is used as the key and must be unique.
func NewAnimationSet(animations ...*Animation) (*AnimationSet, error) {
	s := &AnimationSet{
		animations: make(map[uint32]*Animation, len(animations)),
	}

	for _, a := range animations {
		if _, ok := s.animations[a.Offset]; ok {
			return nil, curated.Errorf(DuplicateOffset, a.Offset)
		}
		s.animations[a.Offset] = a
	}

	return s, nil
}

// Find returns the animation at the offset. The same *Animation is returned
// for every call with the same offset so the playback position of the
// animation is shared by all callers.
func (s *AnimationSet) Find(offset uint32) (*Animation, error) {
	a, ok := s.animations[offset]
	if !ok {
		return nil, curated.Errorf(AnimationNotFound, offset)
	}
	return a, nil
}

// Animations returns a copy of the map of animations.
func (s *AnimationSet) Animations() map[uint32]*Animation {
	m := make(map[uint32]*Animation, len(s.animations))
	for k, v := range s.animations {
		m[k] = v
	}
	return m
}

// Offsets returns the offsets of all animations in ascending order.
func (s *AnimationSet) Offsets() []uint32 {
	o := make([]uint32, 0, len(s.animations))
	for k := range s.animations {
		o = append(o, k)
	}
	sort.Slice(o, func(i, j int) bool { return o[i] < o[j] })
	return o
}

// Len returns the number of animations in the set.
func (s *AnimationSet) Len() int {
	return len(s.animations)
}
