package bot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puckwatch/puckwatch/internal/logger"
	"github.com/puckwatch/puckwatch/internal/mocks"
	"github.com/puckwatch/puckwatch/internal/store"
	"github.com/puckwatch/puckwatch/internal/store/schema"
	"github.com/puckwatch/puckwatch/internal/view"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}

var testNow = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func buildCommandMessage(command, args string, from *tgbotapi.User) *tgbotapi.Message {
	text := "/" + command
	if args != "" {
		text += " " + args
	}
	return &tgbotapi.Message{
		Text: text,
		From: from,
		Chat: &tgbotapi.Chat{ID: 42},
		Entities: []tgbotapi.MessageEntity{
			{Type: "bot_command", Offset: 0, Length: len(command) + 1},
		},
	}
}

func buildSender() *tgbotapi.User {
	return &tgbotapi.User{
		ID:           123456,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		UserName:     "ada",
		LanguageCode: "en",
	}
}

func TestDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("start registers the user and greets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		st := mocks.NewMockStore(ctrl)
		handler := NewHandler(st, mocks.NewMockClock(ctrl))

		st.EXPECT().UpsertBotUser(gomock.Any(), store.UpsertBotUserInput{
			TelegramID:   123456,
			FirstName:    "Ada",
			LastName:     "Lovelace",
			Username:     "ada",
			LanguageCode: "en",
		}).Return(&schema.BotUser{TelegramID: 123456}, nil)

		reply := handler.Dispatch(ctx, buildCommandMessage("start", "", buildSender()))
		assert.Equal(t, view.WelcomeText, reply)
	})

	t.Run("schedule renders upcoming games", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		st := mocks.NewMockStore(ctrl)
		clock := mocks.NewMockClock(ctrl)
		handler := NewHandler(st, clock)

		st.EXPECT().UpsertBotUser(gomock.Any(), gomock.Any()).Return(nil, nil)
		clock.EXPECT().Now().Return(testNow)
		st.EXPECT().ListUpcomingGames(gomock.Any(), testNow, view.ScheduleLimit).Return([]schema.Game{
			{
				StartTimeUTC: time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC),
				HomeTeam:     &schema.Team{Abbreviation: "TOR"},
				AwayTeam:     &schema.Team{Abbreviation: "BOS"},
			},
		}, nil)

		reply := handler.Dispatch(ctx, buildCommandMessage("schedule", "", buildSender()))
		assert.Contains(t, reply, "Upcoming NHL Games - 15.01.2026")
		assert.Contains(t, reply, "1. BOS @ TOR - 00:00 UTC")
	})

	t.Run("schedule failure yields the generic error reply", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		st := mocks.NewMockStore(ctrl)
		clock := mocks.NewMockClock(ctrl)
		handler := NewHandler(st, clock)

		st.EXPECT().UpsertBotUser(gomock.Any(), gomock.Any()).Return(nil, nil)
		clock.EXPECT().Now().Return(testNow)
		st.EXPECT().ListUpcomingGames(gomock.Any(), testNow, view.ScheduleLimit).
			Return(nil, errors.New("connection refused"))

		reply := handler.Dispatch(ctx, buildCommandMessage("schedule", "", buildSender()))
		assert.Equal(t, view.ErrorText, reply)
	})

	t.Run("users renders the requested page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		st := mocks.NewMockStore(ctrl)
		clock := mocks.NewMockClock(ctrl)
		handler := NewHandler(st, clock)

		st.EXPECT().UpsertBotUser(gomock.Any(), gomock.Any()).Return(nil, nil)
		st.EXPECT().ListBotUsers(gomock.Any(), view.UsersPageSize, view.UsersPageSize).
			Return([]schema.BotUser{{TelegramID: 21, FirstName: "Page2"}}, int64(21), nil)
		clock.EXPECT().Now().Return(testNow)
		st.EXPECT().GetBotUserStats(gomock.Any(), testNow.Add(-view.ActiveWindow)).
			Return(&store.BotUserStats{Total: 21, Active: 5, Premium: 2, Verified: 1}, nil)

		reply := handler.Dispatch(ctx, buildCommandMessage("users", "2", buildSender()))
		assert.Contains(t, reply, "Bot Users (page 2 of 2)")
		assert.Contains(t, reply, "21. Page2")
		assert.Contains(t, reply, "Total: 21 | Active (30d): 5 | Premium: 2 | Verified: 1")
	})

	t.Run("users failure yields the generic error reply", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		st := mocks.NewMockStore(ctrl)
		handler := NewHandler(st, mocks.NewMockClock(ctrl))

		st.EXPECT().UpsertBotUser(gomock.Any(), gomock.Any()).Return(nil, nil)
		st.EXPECT().ListBotUsers(gomock.Any(), view.UsersPageSize, 0).
			Return(nil, int64(0), errors.New("connection refused"))

		reply := handler.Dispatch(ctx, buildCommandMessage("users", "", buildSender()))
		assert.Equal(t, view.ErrorText, reply)
	})

	t.Run("registration failure does not block the reply", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		st := mocks.NewMockStore(ctrl)
		handler := NewHandler(st, mocks.NewMockClock(ctrl))

		st.EXPECT().UpsertBotUser(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("deadlock detected"))

		reply := handler.Dispatch(ctx, buildCommandMessage("start", "", buildSender()))
		assert.Equal(t, view.WelcomeText, reply)
	})

	t.Run("message without sender skips registration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		st := mocks.NewMockStore(ctrl)
		handler := NewHandler(st, mocks.NewMockClock(ctrl))

		reply := handler.Dispatch(ctx, buildCommandMessage("start", "", nil))
		assert.Equal(t, view.WelcomeText, reply)
	})

	t.Run("unknown command", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		st := mocks.NewMockStore(ctrl)
		handler := NewHandler(st, mocks.NewMockClock(ctrl))

		st.EXPECT().UpsertBotUser(gomock.Any(), gomock.Any()).Return(nil, nil)

		reply := handler.Dispatch(ctx, buildCommandMessage("standings", "", buildSender()))
		require.Equal(t, "Unknown command. Try /schedule or /users.", reply)
	})
}
