package client

// Request secrets. The servers key endpoint families off these, not
// off credentials.
const (
	SecretCommon  = "Wmfd2893gb7"
	SecretAccount = "Wmfv3899gc9"
	SecretDelete  = "Wmfv2898gc9"
	SecretMod     = "Wmfp3879gc3"
	SecretAdmin   = "Wmfx2878gb9"
)

// Default server bases. Account and content traffic moved off the
// main host in 2.2; custom servers usually keep everything on one.
const (
	DefaultServer        = "https://www.boomlings.com/database"
	DefaultServer21      = "http://www.boomlings.com/database"
	DefaultAccountServer = "https://www.robtopgames.org/database"
	DefaultContentServer = "https://geometrydashfiles.b-cdn.net"
)

// Versions is the gameVersion/binaryVersion pair stamped on requests.
type Versions struct {
	GameVersion   int
	BinaryVersion int
}

var (
	VersionsLatest Versions = Versions{22, 42}
	Versions2205   Versions = Versions{22, 41}
	Versions2204   Versions = Versions{22, 40}
	Versions2200   Versions = Versions{22, 37}
	Versions2113   Versions = Versions{21, 35}
	Versions2111   Versions = Versions{21, 34}
	Versions2100   Versions = Versions{21, 33}
	Versions2011   Versions = Versions{20, 29}
	Versions2000   Versions = Versions{20, 27}
	Versions1930   Versions = Versions{19, 25}
)

// DefaultHeaders22 match the 2.2 game client. The Host header pin and
// the gd cookie are both checked by Cloudflare rules on the official
// servers.
func DefaultHeaders22() map[string]string {
	return map[string]string{
		"User-Agent": "",
		"Accept":     "*/*",
		"Cookie":     "gd=1;",
		"Host":       "www.boomlings.com",
	}
}

// DefaultHeaders21 match the 2.1 game client.
func DefaultHeaders21() map[string]string {
	return map[string]string{
		"User-Agent": "",
		"Accept":     "*/*",
	}
}

// Level length values.
const (
	LengthTiny       = 0
	LengthShort      = 1
	LengthMedium     = 2
	LengthLong       = 3
	LengthXL         = 4
	LengthPlatformer = 5
)

// Icon type values as used by updateUserScore and profiles.
const (
	IconCube = iota
	IconShip
	IconBall
	IconUFO
	IconWave
	IconRobot
	IconSpider
	IconSwing
	IconJetpack
)

// Difficulty values as exposed in search filters. Demon tiers start
// at EasyDemon.
const (
	DifficultyAuto   = -1
	DifficultyNA     = 0
	DifficultyEasy   = 1
	DifficultyNormal = 2
	DifficultyHard   = 3
	DifficultyHarder = 4
	DifficultyInsane = 5
	EasyDemon        = 6
	MediumDemon      = 7
	HardDemon        = 8
	InsaneDemon      = 9
	ExtremeDemon     = 10
)

// LeaderboardType selects the global leaderboard variant.
type LeaderboardType string

const (
	ScoresTop      LeaderboardType = "top"
	ScoresRelative LeaderboardType = "relative"
	ScoresFriends  LeaderboardType = "friends"
	ScoresCreators LeaderboardType = "creators"
)

// Shard item IDs from chest rewards.
const (
	ItemFire   = 1
	ItemIce    = 2
	ItemPoison = 3
	ItemShadow = 4
	ItemLava   = 5
	ItemKey    = 6
	ItemEarth  = 10
	ItemBlood  = 11
	ItemMetal  = 12
	ItemLight  = 13
	ItemSoul   = 14
)
