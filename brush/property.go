package brush

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Property is a raw value for a brush property. For example, with
//
//	<brushProperty name="color" value="#FF0000"/>
//
// a property value of "#ff0000" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a brush property.
type KeyValue struct {
	Key   string
	Value Property
}

// Property keys known to brushes.
const (
	KeyColor        = "color"
	KeyWidth        = "width"
	KeyTransparency = "transparency"
	KeyTip          = "tip"
)

// Color interprets a property as a color. Colors are given either
// as hex triplets ("#rrggbb") or by a small set of names. Unknown or
// malformed values result in black, "default" in nil.
func (p Property) Color() color.Color {
	if p == "default" {
		return nil
	}
	if strings.HasPrefix(string(p), "#") && len(p) == 7 {
		if rgb, err := strconv.ParseUint(string(p[1:]), 16, 32); err == nil {
			return color.RGBA{uint8(rgb >> 16), uint8(rgb >> 8), uint8(rgb), 0xff}
		}
		tracer().Debugf("brush: malformed color %q", p)
	}
	switch p {
	case "red":
		return color.RGBA{0xff, 0, 0, 0xff}
	case "green":
		return color.RGBA{0, 0xff, 0, 0xff}
	case "blue":
		return color.RGBA{0, 0, 0xff, 0xff}
	case "gray", "grey":
		return color.RGBA{0x80, 0x80, 0x80, 0xff}
	case "white":
		return color.White
	}
	return color.Black
}

// ColorString renders a color as a hex triplet.
func ColorString(c color.Color) string {
	if c == nil {
		return "default"
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// Float interprets a property as a floating point number.
func (p Property) Float() (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(p)), 64)
	return f, err == nil
}
