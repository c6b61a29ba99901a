package entity

import (
	"errors"
	"strings"
)

// RGB is a comma-joined color triple as used for map pack display
// metadata and comment text colors.
type RGB struct {
	R, G, B int
}

func decodeRGB(v string) RGB {
	parts := strings.Split(v, ",")
	return RGB{R: intAt(parts, 0), G: intAt(parts, 1), B: intAt(parts, 2)}
}

// MapPack is a static named bundle of level IDs.
type MapPack struct {
	ID         int
	Name       string
	Levels     []int
	Stars      int
	Coins      int
	Difficulty int
	TextColor  RGB
	BarColor   RGB

	Unknown map[string]string
}

var mapPackSchema = Schema{
	Ints:    []int{1, 4, 5, 6},
	Strs:    []int{2},
	Special: []int{3, 7, 8},
}

// DecodeMapPack decodes a ":"-separated map pack record.
func DecodeMapPack(raw string) (MapPack, error) {
	if raw == "" {
		return MapPack{}, errors.New("empty map pack record")
	}
	r := SplitRaw(raw, ":")
	mp := MapPack{
		ID:         r.Int(1),
		Name:       r.Str(2),
		Levels:     splitInts(r.Str(3)),
		Stars:      r.Int(4),
		Coins:      r.Int(5),
		Difficulty: r.Int(6),
		Unknown:    mapPackSchema.Unknown(r),
	}
	if v := r.Str(7); v != "" {
		mp.TextColor = decodeRGB(v)
	}
	if v := r.Str(8); v != "" {
		mp.BarColor = decodeRGB(v)
	}
	return mp, nil
}

// Gauntlet is a fixed five-level bundle identified by a small ID.
type Gauntlet struct {
	ID     int
	Levels []string
}

// DecodeGauntlet decodes a ":"-separated gauntlet record.
func DecodeGauntlet(raw string) (Gauntlet, error) {
	if raw == "" {
		return Gauntlet{}, errors.New("empty gauntlet record")
	}
	r := SplitRaw(raw, ":")
	g := Gauntlet{ID: r.Int(1)}
	if v := r.Str(3); v != "" {
		g.Levels = strings.Split(v, ",")
	}
	return g, nil
}
