package nhl

// LocalizedName is the API's localized string wrapper; only the default
// locale is used.
type LocalizedName struct {
	Default string `json:"default"`
}

// ScoreTeam represents one side of a game in the score payload
type ScoreTeam struct {
	ID     int64         `json:"id"`
	Name   LocalizedName `json:"name"`
	Abbrev string        `json:"abbrev"`
	Score  *int          `json:"score"`
	SOG    *int          `json:"sog"`
	Record *string       `json:"record"`
	Logo   string        `json:"logo"`
}

// TVBroadcast represents one TV broadcast entry of a game
type TVBroadcast struct {
	ID             int64  `json:"id"`
	Market         string `json:"market"`
	CountryCode    string `json:"countryCode"`
	Network        string `json:"network"`
	SequenceNumber int    `json:"sequenceNumber"`
}

// ScoreGame represents one game in the score payload
type ScoreGame struct {
	ID                int64          `json:"id"`
	Season            int            `json:"season"`
	GameType          int            `json:"gameType"`
	GameDate          string         `json:"gameDate"`
	StartTimeUTC      string         `json:"startTimeUTC"`
	EasternUTCOffset  string         `json:"easternUTCOffset"`
	VenueUTCOffset    string         `json:"venueUTCOffset"`
	VenueTimezone     string         `json:"venueTimezone"`
	Venue             *LocalizedName `json:"venue"`
	GameState         string         `json:"gameState"`
	GameScheduleState string         `json:"gameScheduleState"`
	NeutralSite       bool           `json:"neutralSite"`
	HomeTeam          ScoreTeam      `json:"homeTeam"`
	AwayTeam          ScoreTeam      `json:"awayTeam"`
	TVBroadcasts      []TVBroadcast  `json:"tvBroadcasts"`
	GameCenterLink    *string        `json:"gameCenterLink"`
	TicketsLink       *string        `json:"ticketsLink"`
}

// ScoreResponse is the body of the daily score endpoint
type ScoreResponse struct {
	CurrentDate string      `json:"currentDate"`
	Games       []ScoreGame `json:"games"`
}
