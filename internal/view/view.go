package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/puckwatch/puckwatch/internal/store"
	"github.com/puckwatch/puckwatch/internal/store/schema"
)

const (
	// ScheduleLimit caps the number of games shown by the schedule view
	ScheduleLimit = 10
	// UsersPageSize is the number of users per page in the users view
	UsersPageSize = 20
	// ActiveWindow bounds the "recently active" bucket of the user stats
	ActiveWindow = 30 * 24 * time.Hour
)

// WelcomeText greets a user who just started the bot
const WelcomeText = "Welcome to the NHL scores bot!\n\n" +
	"Commands:\n" +
	"/schedule - upcoming games\n" +
	"/users - registered users"

// ErrorText is the generic reply for any failed command. Details never
// reach the chat; they go to the log.
const ErrorText = "Something went wrong, please try again later."

// RenderSchedule renders the upcoming-games view. The header carries the
// current date; each line is one scheduled game with its start time in UTC.
func RenderSchedule(games []schema.Game, now time.Time) string {
	if len(games) == 0 {
		return "No upcoming games scheduled."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Upcoming NHL Games - %s\n\n", now.Format("02.01.2006"))
	for i, game := range games {
		fmt.Fprintf(&b, "%d. %s @ %s - %s UTC\n",
			i+1,
			teamAbbrev(game.AwayTeam),
			teamAbbrev(game.HomeTeam),
			game.StartTimeUTC.UTC().Format("15:04"))
	}
	return strings.TrimRight(b.String(), "\n")
}

func teamAbbrev(team *schema.Team) string {
	if team == nil || team.Abbreviation == "" {
		return "???"
	}
	return team.Abbreviation
}

// ParsePage parses a page argument. Anything non-numeric or below 1
// falls back to the first page.
func ParsePage(arg string) int {
	page, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// TotalPages computes the page count for a total row count, never less
// than one page
func TotalPages(total int64, pageSize int) int {
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		return 1
	}
	return pages
}

// RenderUsers renders one page of registered users with aggregate stats
func RenderUsers(users []schema.BotUser, stats *store.BotUserStats, page int, totalPages int) string {
	if stats.Total == 0 {
		return "No users registered yet."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Bot Users (page %d of %d)\n\n", page, totalPages)
	for i, user := range users {
		fmt.Fprintf(&b, "%d. %s\n", (page-1)*UsersPageSize+i+1, displayName(user))
	}
	fmt.Fprintf(&b, "\nTotal: %d | Active (30d): %d | Premium: %d | Verified: %d",
		stats.Total, stats.Active, stats.Premium, stats.Verified)
	return b.String()
}

func displayName(user schema.BotUser) string {
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if user.Username != "" {
		if name == "" {
			return "@" + user.Username
		}
		return fmt.Sprintf("%s (@%s)", name, user.Username)
	}
	if name == "" {
		return fmt.Sprintf("user %d", user.TelegramID)
	}
	return name
}
