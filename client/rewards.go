package client

import (
	"context"
	"strconv"

	"github.com/DiversenSato/dashtools/entity"
	"github.com/DiversenSato/dashtools/robtop"
)

// Chest reward types for GetChests.
const (
	RewardChestNone  = 0
	RewardChestSmall = 1
	RewardChestLarge = 2
)

// rewardChk builds the throwaway challenge token the reward endpoints
// expect: a 5 character prefix plus an obfuscated random number.
func rewardChk(key string) string {
	n := strconv.Itoa(robtop.RandomNumber(10000, 1000000))
	return robtop.RS(5) + robtop.XOREncode(n, key)
}

// GetChests fetches chest cooldowns and contents. Pass a reward type
// to claim that chest, or RewardChestNone to only look.
func (c *Client) GetChests(ctx context.Context, rewardType int, overrides Params) (entity.ChestRewards, error) {
	body, err := c.authDo(ctx, ActionGetRewards, Params{
		"chk":        rewardChk(robtop.KeyChestRewards),
		"rewardType": strconv.Itoa(rewardType),
		"r1":         strconv.Itoa(robtop.RandomNumber(100, 99999)),
		"r2":         strconv.Itoa(robtop.RandomNumber(100, 99999)),
		"udid":       c.account.UDID,
		"uuid":       c.account.UUID,
	}, overrides)
	if err != nil {
		return entity.ChestRewards{}, err
	}
	if err := bodyError(body, nil); err != nil {
		return entity.ChestRewards{}, err
	}
	return entity.DecodeChestRewards(body)
}

// GetQuests fetches the three active quests and their cooldown.
func (c *Client) GetQuests(ctx context.Context, overrides Params) (entity.Quests, error) {
	body, err := c.authDo(ctx, ActionGetChallenges, Params{
		"chk":  rewardChk(robtop.KeyChallenges),
		"udid": c.account.UDID,
		"uuid": c.account.UUID,
	}, overrides)
	if err != nil {
		return entity.Quests{}, err
	}
	if err := bodyError(body, nil); err != nil {
		return entity.Quests{}, err
	}
	return entity.DecodeQuests(body)
}
