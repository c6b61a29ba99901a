package entity

import (
	"errors"
	"strings"

	"github.com/DiversenSato/dashtools/robtop"
)

// Comment is a level comment or an account profile post. Level
// comments may carry an embedded "~"-separated user sub-record after
// the first ":".
type Comment struct {
	ID        int
	LevelID   int
	PlayerID  int
	AccountID int
	Content   string
	Likes     int
	Percent   int
	ModBadge  int
	Spam      bool
	Age       string
	TextColor RGB

	User *User

	Unknown map[string]string
}

var commentSchema = Schema{
	Ints:    []int{1, 3, 4, 6, 8, 10, 11},
	Strs:    []int{9},
	Bools:   []int{7},
	Special: []int{2, 12},
}

// DecodeComment decodes a comment record. The record uses "~" between
// its own fields and ":" to attach the optional poster sub-record.
func DecodeComment(raw string) (Comment, error) {
	if raw == "" {
		return Comment{}, errors.New("empty comment record")
	}
	segments := strings.SplitN(raw, ":", 2)
	r := SplitRaw(segments[0], "~")
	c := Comment{
		ID:        r.Int(6),
		LevelID:   r.Int(1),
		PlayerID:  r.Int(3),
		AccountID: r.Int(8),
		Likes:     r.Int(4),
		Percent:   r.Int(10),
		ModBadge:  r.Int(11),
		Spam:      r.Bool(7),
		Age:       r.Str(9),
		Unknown:   commentSchema.Unknown(r),
	}
	if v := r.Str(2); v != "" {
		if dec, err := robtop.Base64Decode(v); err == nil {
			c.Content = dec
		} else {
			c.Content = v
		}
	}
	if v := r.Str(12); v != "" {
		c.TextColor = decodeRGB(v)
	}
	if len(segments) > 1 && segments[1] != "" {
		if u, err := DecodeUser(segments[1], "~"); err == nil {
			c.User = &u
		}
	}
	return c, nil
}
