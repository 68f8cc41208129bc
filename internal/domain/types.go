package domain

import "time"

// GameState represents the lifecycle state of a game as reported by the
// NHL score API.
type GameState string

const (
	GameStateFuture   GameState = "FUT"
	GameStatePregame  GameState = "PRE"
	GameStateLive     GameState = "LIVE"
	GameStateCritical GameState = "CRIT"
	GameStateFinal    GameState = "FINAL"
	GameStateOfficial GameState = "OFF"
)

// IsValidGameState checks if a state is one the score API can report
func IsValidGameState(state GameState) bool {
	switch state {
	case GameStateFuture, GameStatePregame, GameStateLive,
		GameStateCritical, GameStateFinal, GameStateOfficial:
		return true
	}
	return false
}

// IsFinalLike reports whether the game has reached a terminal state.
// A winner can only be derived from final-like games.
func (s GameState) IsFinalLike() bool {
	return s == GameStateFinal || s == GameStateOfficial
}

// GameType represents the competition phase of a game
type GameType string

const (
	GameTypePreseason GameType = "preseason"
	GameTypeRegular   GameType = "regular"
	GameTypePlayoff   GameType = "playoff"
)

// GameTypeFromCode maps the numeric gameType code used on the wire to
// its named form. Unknown codes map to regular season.
func GameTypeFromCode(code int) GameType {
	switch code {
	case 1:
		return GameTypePreseason
	case 3:
		return GameTypePlayoff
	default:
		return GameTypeRegular
	}
}

// BroadcastMarket represents the audience market of a TV broadcast
type BroadcastMarket string

const (
	BroadcastMarketHome     BroadcastMarket = "home"
	BroadcastMarketAway     BroadcastMarket = "away"
	BroadcastMarketNational BroadcastMarket = "national"
)

// BroadcastMarketFromCode maps the one-letter market code used on the
// wire ("H", "A", "N") to its named form. Unknown codes map to national.
func BroadcastMarketFromCode(code string) BroadcastMarket {
	switch code {
	case "H":
		return BroadcastMarketHome
	case "A":
		return BroadcastMarketAway
	default:
		return BroadcastMarketNational
	}
}

// GameDateLayout is the calendar-date format used by the score API and
// throughout the system.
const GameDateLayout = "2006-01-02"

// FormatGameDate renders a time as a calendar date in the API's format
func FormatGameDate(t time.Time) string {
	return t.Format(GameDateLayout)
}

// ParseGameDate parses a YYYY-MM-DD calendar date
func ParseGameDate(s string) (time.Time, error) {
	return time.Parse(GameDateLayout, s)
}
