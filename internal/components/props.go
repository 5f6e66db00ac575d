package components

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"

	"handmade/internal/vector"
)

// Scene files decode into map[string]any, where numbers arrive as int or
// float64 depending on how they were written.

func toFloat(v any) (float32, bool) {
	switch n := v.(type) {
	case float64:
		return float32(n), true
	case float32:
		return n, true
	case int:
		return float32(n), true
	case int64:
		return float32(n), true
	case uint64:
		return float32(n), true
	default:
		return 0, false
	}
}

func floatProp(props map[string]any, key string, def float32) (float32, error) {
	v, ok := props[key]
	if !ok {
		return def, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, fmt.Errorf("%s: expected a number, got %T", key, v)
	}
	return f, nil
}

func vecProp(props map[string]any, key string, def vector.Vector2D[float32]) (vector.Vector2D[float32], error) {
	v, ok := props[key]
	if !ok {
		return def, nil
	}
	list, ok := v.([]any)
	if !ok || len(list) != 2 {
		return def, fmt.Errorf("%s: expected [x, y], got %v", key, v)
	}
	x, okX := toFloat(list[0])
	y, okY := toFloat(list[1])
	if !okX || !okY {
		return def, fmt.Errorf("%s: expected [x, y], got %v", key, v)
	}
	return vector.New(x, y), nil
}

func colorProp(props map[string]any, key string, def color.RGBA) (color.RGBA, error) {
	v, ok := props[key]
	if !ok {
		return def, nil
	}
	name, ok := v.(string)
	if !ok {
		return def, fmt.Errorf("%s: expected a color name, got %T", key, v)
	}
	return LookupColor(name)
}

func vecValue(v vector.Vector2D[float32]) []any {
	return []any{float64(v.X), float64(v.Y)}
}

var colorByName = map[string]color.RGBA{
	"Red":       {230, 41, 55, 255},
	"Blue":      {0, 121, 241, 255},
	"Green":     {0, 228, 48, 255},
	"Purple":    {200, 122, 255, 255},
	"Orange":    {255, 161, 0, 255},
	"Yellow":    {253, 249, 0, 255},
	"Pink":      {255, 109, 194, 255},
	"SkyBlue":   {102, 191, 255, 255},
	"Lime":      {0, 158, 47, 255},
	"Magenta":   {255, 0, 255, 255},
	"White":     {255, 255, 255, 255},
	"LightGray": {200, 200, 200, 255},
	"Gray":      {130, 130, 130, 255},
	"DarkGray":  {80, 80, 80, 255},
	"Black":     {0, 0, 0, 255},
	"Brown":     {127, 106, 79, 255},
	"Beige":     {211, 176, 131, 255},
	"Maroon":    {190, 33, 55, 255},
	"Gold":      {255, 203, 0, 255},
}

var nameByColor map[color.RGBA]string

func init() {
	nameByColor = make(map[color.RGBA]string, len(colorByName))
	for name, c := range colorByName {
		nameByColor[c] = name
	}
}

// LookupColor accepts a palette name or #rrggbb / #rrggbbaa.
func LookupColor(name string) (color.RGBA, error) {
	if c, ok := colorByName[name]; ok {
		return c, nil
	}
	if hexDigits, ok := strings.CutPrefix(name, "#"); ok {
		b, err := hex.DecodeString(hexDigits)
		switch {
		case err == nil && len(b) == 3:
			return color.RGBA{b[0], b[1], b[2], 255}, nil
		case err == nil && len(b) == 4:
			return color.RGBA{b[0], b[1], b[2], b[3]}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", name)
}

// ColorName is the inverse of LookupColor.
func ColorName(c color.RGBA) string {
	if name, ok := nameByColor[c]; ok {
		return name
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
