package entity

import (
	"errors"

	"github.com/DiversenSato/dashtools/robtop"
)

// Message is a directed account-to-account message. The body is only
// present when a single message is read, and travels base64+XOR
// obfuscated.
type Message struct {
	ID        int
	AccountID int
	PlayerID  int
	Title     string
	Content   string
	Username  string
	Age       string
	Read      bool
	Outgoing  bool

	Unknown map[string]string
}

var messageSchema = Schema{
	Ints:    []int{1, 2, 3},
	Strs:    []int{6, 7},
	Bools:   []int{8, 9},
	Special: []int{4, 5},
}

// DecodeMessage decodes a ":"-separated message record.
func DecodeMessage(raw string) (Message, error) {
	if raw == "" {
		return Message{}, errors.New("empty message record")
	}
	r := SplitRaw(raw, ":")
	m := Message{
		ID:        r.Int(1),
		AccountID: r.Int(2),
		PlayerID:  r.Int(3),
		Username:  r.Str(6),
		Age:       r.Str(7),
		Read:      r.Bool(8),
		Outgoing:  r.Bool(9),
		Unknown:   messageSchema.Unknown(r),
	}
	if v := r.Str(4); v != "" {
		if dec, err := robtop.Base64Decode(v); err == nil {
			m.Title = dec
		} else {
			m.Title = v
		}
	}
	if v := r.Str(5); v != "" {
		if dec, err := robtop.XORDecode(v, robtop.KeyMessages); err == nil {
			m.Content = dec
		} else {
			m.Content = v
		}
	}
	return m, nil
}
