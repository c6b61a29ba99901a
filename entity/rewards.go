package entity

import (
	"errors"
	"strings"

	"github.com/DiversenSato/dashtools/robtop"
)

// Chest is the content of a reward chest.
type Chest struct {
	Orbs     int
	Diamonds int
	Item1    int
	Item2    int
}

// ChestRewards is the decoded daily-chest response. The payload
// arrives as a 5-character prefix followed by a base64+XOR blob whose
// integrity is covered by a salted SHA-1 trailer; the verification
// outcome is surfaced as IsHashValid, never as an error.
type ChestRewards struct {
	Prefix    string
	Nonce     string
	PlayerID  int
	ChkNumber int
	UDID      string
	AccountID int

	SmallChestCooldown int
	SmallChest         Chest
	ClaimedSmallChests int
	LargeChestCooldown int
	LargeChest         Chest
	ClaimedLargeChests int
	RewardType         int

	Hash        string
	IsHashValid bool
}

// DecodeChestRewards decodes a getGJRewards response body.
func DecodeChestRewards(body string) (ChestRewards, error) {
	blob, info, hash, err := decodeRewardBlob(body, robtop.KeyChestRewards)
	if err != nil {
		return ChestRewards{}, err
	}
	if len(info) < 12 {
		return ChestRewards{}, errors.New("chest reward blob too short")
	}
	small := strings.Split(info[6], ",")
	big := strings.Split(info[9], ",")
	return ChestRewards{
		Prefix:    body[:5],
		Nonce:     info[0],
		PlayerID:  atoi(info[1]),
		ChkNumber: atoi(info[2]),
		UDID:      info[3],
		AccountID: atoi(info[4]),

		SmallChestCooldown: atoi(info[5]),
		SmallChest:         decodeChest(small),
		ClaimedSmallChests: atoi(info[7]),
		LargeChestCooldown: atoi(info[8]),
		LargeChest:         decodeChest(big),
		ClaimedLargeChests: atoi(info[10]),
		RewardType:         atoi(info[11]),

		Hash:        hash,
		IsHashValid: robtop.SHA1(blob+robtop.SaltRewards) == hash,
	}, nil
}

func decodeChest(parts []string) Chest {
	return Chest{
		Orbs:     intAt(parts, 0),
		Diamonds: intAt(parts, 1),
		Item1:    intAt(parts, 2),
		Item2:    intAt(parts, 3),
	}
}

// Quest is one of the three rotating quests.
type Quest struct {
	ID     string
	Type   int
	Amount int
	Reward int
	Name   string
}

// Quests is the decoded quest response, same framing as ChestRewards
// but with the quest XOR key and salt.
type Quests struct {
	Prefix    string
	Nonce     string
	PlayerID  int
	ChkNumber int
	UDID      string
	AccountID int

	QuestsCooldown int
	Quests         [3]Quest

	Hash        string
	IsHashValid bool
}

// DecodeQuests decodes a getGJChallenges response body.
func DecodeQuests(body string) (Quests, error) {
	blob, info, hash, err := decodeRewardBlob(body, robtop.KeyChallenges)
	if err != nil {
		return Quests{}, err
	}
	if len(info) < 9 {
		return Quests{}, errors.New("quest blob too short")
	}
	q := Quests{
		Prefix:    body[:5],
		Nonce:     info[0],
		PlayerID:  atoi(info[1]),
		ChkNumber: atoi(info[2]),
		UDID:      info[3],
		AccountID: atoi(info[4]),

		QuestsCooldown: atoi(info[5]),

		Hash:        hash,
		IsHashValid: robtop.SHA1(blob+robtop.SaltChallenges) == hash,
	}
	for i := 0; i < 3; i++ {
		parts := strings.Split(info[6+i], ",")
		q.Quests[i] = Quest{
			ID:     strAt(parts, 0),
			Type:   intAt(parts, 1),
			Amount: intAt(parts, 2),
			Reward: intAt(parts, 3),
			Name:   strAt(parts, 4),
		}
	}
	return q, nil
}

// decodeRewardBlob strips the 5-character prefix, deobfuscates the
// blob with the given key and returns the raw blob (still encoded, as
// hashed by the server), its ":"-split fields and the hash segment.
func decodeRewardBlob(body, key string) (blob string, info []string, hash string, err error) {
	segments := strings.Split(body, "|")
	if len(segments) < 2 || len(segments[0]) <= 5 {
		return "", nil, "", errors.New("malformed reward response")
	}
	blob = segments[0][5:]
	hash = segments[1]
	dec, err := robtop.XORDecode(blob, key)
	if err != nil {
		return "", nil, "", err
	}
	return blob, strings.Split(dec, ":"), hash, nil
}
