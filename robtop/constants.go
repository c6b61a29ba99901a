package robtop

// XOR keys used by the servers. Each obfuscated field family has its
// own fixed key.
const (
	KeySaveData         = "\x0B"
	KeyMessages         = "14251"
	KeyVaultCodes       = "19283"
	KeyChallenges       = "19847"
	KeyLevelPassword    = "26364"
	KeyComment          = "29481"
	KeyAccountPassword  = "37526"
	KeyLevelLeaderboard = "39673"
	KeyLevel            = "41274"
	KeyLoadData         = "48291"
	KeyRate             = "58281"
	KeyChestRewards     = "59182"
	KeyStatSubmission   = "85271"
)

// Salts appended before hashing. The server recomputes the same digest
// on its side, so these must match byte for byte.
const (
	SaltLevel             = "xI25fpAapCQg"
	SaltComment           = "xPT6iUrtws0J"
	SaltGJP2              = "mI29fmAnxgTs"
	SaltStatSubmission    = "xI35fsAapCRg"
	SaltLikeOrRate        = "ysg6pUrtjn0J"
	SaltLevelLeaderboards = "yPg6pUrtWn0J"
	SaltRewards           = "pC26fpYaQCtg"
	SaltChallenges        = "oC36fpYaPtdg"
)

// Character sets for client-generated nonces and identifiers.
const (
	RSCharacters    = "QWERTYUIOPASDFGHJKLZXCVBNMqwertyuiopasdfghjklzxcvbnm1234567890"
	HexCharacters   = "abcdef1234567890"
	DigitCharacters = "1234567890"
)
