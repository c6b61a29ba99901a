package entity

import (
	"errors"
	"strings"
)

// LevelList is an ordered collection of level IDs with its own
// metadata. Member IDs may dangle: a listed level can be deleted
// server-side without the list changing.
type LevelList struct {
	ID         int
	Name       string
	Version    int
	PlayerID   int
	Username   string
	Difficulty int
	Downloads  int
	Likes      int
	Length     int
	Stars      int
	Featured   bool
	UploadDate int
	UpdateDate int

	ListReward            int
	ListRewardRequirement int

	Levels []string

	Unknown map[string]string
}

var listSchema = Schema{
	Ints:    []int{1, 5, 6, 7, 10, 14, 15, 18, 28, 29, 55, 56},
	Strs:    []int{2, 50},
	Bools:   []int{19},
	Special: []int{51},
}

// DecodeList decodes a ":"-separated level list record.
func DecodeList(raw string) (LevelList, error) {
	if raw == "" {
		return LevelList{}, errors.New("empty list record")
	}
	r := SplitRaw(raw, ":")
	l := LevelList{
		ID:         r.Int(1),
		Name:       r.Str(2),
		Version:    r.Int(5),
		PlayerID:   r.Int(6),
		Username:   r.Str(50),
		Difficulty: r.Int(7),
		Downloads:  r.Int(10),
		Likes:      r.Int(14),
		Length:     r.Int(15),
		Stars:      r.Int(18),
		Featured:   r.Bool(19),
		UploadDate: r.Int(28),
		UpdateDate: r.Int(29),

		ListReward:            r.Int(55),
		ListRewardRequirement: r.Int(56),

		Unknown: listSchema.Unknown(r),
	}
	if v := r.Str(51); v != "" {
		l.Levels = strings.Split(v, ",")
	}
	return l, nil
}
