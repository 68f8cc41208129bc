package nhl

import (
	"fmt"
	"time"

	"github.com/puckwatch/puckwatch/internal/domain"
	"github.com/puckwatch/puckwatch/internal/store"
)

// MapGame converts one payload game into a reconciliation input.
// Games missing required fields yield an error so the caller can skip them
// without dropping the rest of the batch.
func MapGame(g ScoreGame) (*store.GameInput, error) {
	if g.ID == 0 {
		return nil, fmt.Errorf("%w: missing game id", domain.ErrMalformedGame)
	}
	if g.HomeTeam.ID == 0 || g.AwayTeam.ID == 0 {
		return nil, fmt.Errorf("%w: game %d missing team id", domain.ErrMalformedGame, g.ID)
	}

	// An absent state means the game hasn't started; unknown states are
	// a payload defect and reject the record
	state := domain.GameState(g.GameState)
	if g.GameState == "" {
		state = domain.GameStateFuture
	} else if !domain.IsValidGameState(state) {
		return nil, fmt.Errorf("%w: game %d has unknown state %q", domain.ErrMalformedGame, g.ID, g.GameState)
	}

	gameDate, err := domain.ParseGameDate(g.GameDate)
	if err != nil {
		return nil, fmt.Errorf("%w: game %d has invalid date %q", domain.ErrMalformedGame, g.ID, g.GameDate)
	}

	startTime, err := time.Parse(time.RFC3339, g.StartTimeUTC)
	if err != nil {
		return nil, fmt.Errorf("%w: game %d has invalid start time %q", domain.ErrMalformedGame, g.ID, g.StartTimeUTC)
	}

	var venue *store.VenueInput
	if g.Venue != nil && g.Venue.Default != "" {
		venue = &store.VenueInput{
			Name:     g.Venue.Default,
			Timezone: g.VenueTimezone,
		}
	}

	broadcasts := make([]store.BroadcastInput, 0, len(g.TVBroadcasts))
	for _, b := range g.TVBroadcasts {
		broadcasts = append(broadcasts, store.BroadcastInput{
			ExternalID:     b.ID,
			Market:         domain.BroadcastMarketFromCode(b.Market),
			CountryCode:    b.CountryCode,
			Network:        b.Network,
			SequenceNumber: b.SequenceNumber,
		})
	}

	return &store.GameInput{
		ExternalID:       g.ID,
		Season:           g.Season,
		GameType:         domain.GameTypeFromCode(g.GameType),
		GameDate:         gameDate,
		StartTimeUTC:     startTime.UTC(),
		EasternUTCOffset: g.EasternUTCOffset,
		VenueUTCOffset:   g.VenueUTCOffset,
		HomeTeam:         mapTeam(g.HomeTeam),
		AwayTeam:         mapTeam(g.AwayTeam),
		Venue:            venue,
		State:            state,
		ScheduleState:    g.GameScheduleState,
		NeutralSite:      g.NeutralSite,
		HomeScore:        g.HomeTeam.Score,
		AwayScore:        g.AwayTeam.Score,
		HomeShotsOnGoal:  g.HomeTeam.SOG,
		AwayShotsOnGoal:  g.AwayTeam.SOG,
		HomeRecord:       g.HomeTeam.Record,
		AwayRecord:       g.AwayTeam.Record,
		GameCenterLink:   g.GameCenterLink,
		TicketsLink:      g.TicketsLink,
		Broadcasts:       broadcasts,
	}, nil
}

func mapTeam(t ScoreTeam) store.TeamInput {
	return store.TeamInput{
		ExternalID:   t.ID,
		Name:         t.Name.Default,
		Abbreviation: t.Abbrev,
		LogoURL:      t.Logo,
	}
}
