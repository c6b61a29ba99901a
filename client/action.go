package client

// Action identifies a remote server action. The enum is closed: each
// action carries its endpoint path, default secret, routing and
// whether version fields are stamped, so callers cannot hit an
// endpoint with the wrong envelope.
type Action int

const (
	ActionGetLevels Action = iota
	ActionGetDailyLevel
	ActionGetMapPacks
	ActionGetGauntlets
	ActionDownloadLevel
	ActionReportLevel
	ActionUploadLevel
	ActionDeleteLevel
	ActionRateLevel
	ActionRateDemon
	ActionUpdateDescription
	ActionGetUsers
	ActionGetUserInfo
	ActionUpdateUserScore
	ActionUpdateAccountSettings
	ActionGetAccountComments
	ActionGetComments
	ActionGetCommentHistory
	ActionUploadComment
	ActionDeleteComment
	ActionUploadAccountComment
	ActionDeleteAccountComment
	ActionRegisterAccount
	ActionLoginAccount
	ActionRequestModAccess
	ActionLoadSaveData
	ActionBackupSaveData
	ActionGetAccountURL
	ActionGetSongInfo
	ActionGetTopArtists
	ActionGetContentURL
	ActionGetRewards
	ActionGetChallenges
	ActionGetLeaderboards
	ActionGetLevelLeaderboards
	ActionGetPlatformerLevelLeaderboards
	ActionGetUserList
	ActionGetMessages
	ActionReadMessage
	ActionSendMessage
	ActionDeleteMessage
	ActionBlockUser
	ActionUnblockUser
	ActionGetFriendRequests
	ActionSendFriendRequest
	ActionReadFriendRequest
	ActionAcceptFriendRequest
	ActionDeleteFriendRequests
	ActionRemoveFriend
	ActionLikeItem
	ActionGetLists
	ActionUploadList
	ActionDeleteList
)

// Endpoints maps actions to paths under the server base. Tables exist
// for the current protocol and for the historical servers that some
// private instances still run.
type Endpoints map[Action]string

// DefaultEndpoints is the 2.206 table.
var DefaultEndpoints = Endpoints{
	ActionGetLevels:                      "getGJLevels21.php",
	ActionGetDailyLevel:                  "getGJDailyLevel.php",
	ActionGetMapPacks:                    "getGJMapPacks21.php",
	ActionGetGauntlets:                   "getGJGauntlets21.php",
	ActionDownloadLevel:                  "downloadGJLevel22.php",
	ActionReportLevel:                    "reportGJLevel.php",
	ActionUploadLevel:                    "uploadGJLevel21.php",
	ActionDeleteLevel:                    "deleteGJLevelUser20.php",
	ActionRateLevel:                      "rateGJStars211.php",
	ActionRateDemon:                      "rateGJDemon21.php",
	ActionUpdateDescription:              "updateGJDesc20.php",
	ActionGetUsers:                       "getGJUsers20.php",
	ActionGetUserInfo:                    "getGJUserInfo20.php",
	ActionUpdateUserScore:                "updateGJUserScore22.php",
	ActionUpdateAccountSettings:          "updateGJAccSettings20.php",
	ActionGetAccountComments:             "getGJAccountComments20.php",
	ActionGetComments:                    "getGJComments21.php",
	ActionGetCommentHistory:              "getGJCommentHistory.php",
	ActionUploadComment:                  "uploadGJComment21.php",
	ActionDeleteComment:                  "deleteGJComment20.php",
	ActionUploadAccountComment:           "uploadGJAccComment20.php",
	ActionDeleteAccountComment:           "deleteGJAccComment20.php",
	ActionRegisterAccount:                "accounts/registerGJAccount.php",
	ActionLoginAccount:                   "accounts/loginGJAccount.php",
	ActionRequestModAccess:               "requestUserAccess.php",
	ActionLoadSaveData:                   "accounts/syncGJAccountNew.php",
	ActionBackupSaveData:                 "backupGJAccountNew.php",
	ActionGetAccountURL:                  "getAccountURL.php",
	ActionGetSongInfo:                    "getGJSongInfo.php",
	ActionGetTopArtists:                  "getGJTopArtists.php",
	ActionGetContentURL:                  "getCustomContentURL.php",
	ActionGetRewards:                     "getGJRewards.php",
	ActionGetChallenges:                  "getGJChallenges.php",
	ActionGetLeaderboards:                "getGJScores20.php",
	ActionGetLevelLeaderboards:           "getGJLevelScores211.php",
	ActionGetPlatformerLevelLeaderboards: "getGJLevelScoresPlat.php",
	ActionGetUserList:                    "getGJUserList20.php",
	ActionGetMessages:                    "getGJMessages20.php",
	ActionReadMessage:                    "downloadGJMessage20.php",
	ActionSendMessage:                    "uploadGJMessage20.php",
	ActionDeleteMessage:                  "deleteGJMessages20.php",
	ActionBlockUser:                      "blockGJUser20.php",
	ActionUnblockUser:                    "unblockGJUser20.php",
	ActionGetFriendRequests:              "getGJFriendRequests20.php",
	ActionSendFriendRequest:              "uploadFriendRequest20.php",
	ActionReadFriendRequest:              "readGJFriendRequest20.php",
	ActionAcceptFriendRequest:            "acceptGJFriendRequest20.php",
	ActionDeleteFriendRequests:           "deleteGJFriendRequests20.php",
	ActionRemoveFriend:                   "removeGJFriend20.php",
	ActionLikeItem:                       "likeGJItem211.php",
	ActionGetLists:                       "getGJLevelLists.php",
	ActionUploadList:                     "uploadGJLevelList.php",
	ActionDeleteList:                     "deleteGJLevelList.php",
}

// Endpoints2205 covers 2.205 servers, where account backup still lived
// under accounts/.
var Endpoints2205 = override(DefaultEndpoints, Endpoints{
	ActionBackupSaveData: "accounts/backupGJAccountNew.php",
})

// Endpoints2113 covers 2.113 servers. Lists and platformer scores do
// not exist there.
var Endpoints2113 = override(strip(DefaultEndpoints,
	ActionGetLists, ActionUploadList, ActionDeleteList,
	ActionGetPlatformerLevelLeaderboards, ActionGetContentURL,
), Endpoints{
	ActionBackupSaveData: "accounts/backupGJAccountNew.php",
})

// Endpoints2100 covers 2.100 servers.
var Endpoints2100 = override(strip(DefaultEndpoints,
	ActionGetLists, ActionUploadList, ActionDeleteList,
	ActionGetPlatformerLevelLeaderboards, ActionGetContentURL,
), Endpoints{
	ActionLikeItem:             "likeGJItem21.php",
	ActionRateLevel:            "rateGJStars20.php",
	ActionLoadSaveData:         "accounts/syncGJAccount20.php",
	ActionGetLevelLeaderboards: "getGJLevelScores.php",
	ActionBackupSaveData:       "accounts/backupGJAccount.php",
})

func override(base, changes Endpoints) Endpoints {
	out := make(Endpoints, len(base))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range changes {
		out[k] = v
	}
	return out
}

func strip(base Endpoints, remove ...Action) Endpoints {
	out := make(Endpoints, len(base))
	for k, v := range base {
		out[k] = v
	}
	for _, a := range remove {
		delete(out, a)
	}
	return out
}

// secret returns the default secret for the action.
func (a Action) secret() string {
	switch a {
	case ActionRegisterAccount, ActionLoginAccount, ActionRequestModAccess,
		ActionGetAccountURL, ActionLoadSaveData, ActionBackupSaveData,
		ActionUpdateAccountSettings:
		return SecretAccount
	case ActionDeleteLevel, ActionDeleteList:
		return SecretDelete
	case ActionRateDemon:
		return SecretMod
	default:
		return SecretCommon
	}
}

// accountServer reports whether the action is routed to the account
// server base instead of the main server.
func (a Action) accountServer() bool {
	switch a {
	case ActionLoadSaveData, ActionBackupSaveData, ActionUpdateAccountSettings:
		return true
	default:
		return false
	}
}

// versionless reports whether gameVersion/binaryVersion are omitted.
func (a Action) versionless() bool {
	return a == ActionRegisterAccount
}
