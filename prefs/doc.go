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

// Package prefs handles the configuration of the application. The
// configuration file is YAML with two sections. The general section holds
// settings that apply to the whole application and the source section holds
// settings for the source of frames. For example:
//
//	general:
//	  palette: amber
//	source:
//	  type: txt
//	  name: dump.txt.gz
//	  bitsperpixel: 4
//	  use_timing_data: false
//
// Values are read from a Section with a default value that is used when the
// key is missing. Values can be overridden from the command line by pushing
// a prefs string onto the command line stack. Keys in a prefs string are
// qualified by the section name:
//
//	source.bitsperpixel::2; source.use_timing_data::true
//
// The typed values Bool, Int and String can be used to hold a preference
// with hooks that run before and after the value is changed.
package prefs
