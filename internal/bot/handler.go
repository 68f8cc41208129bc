package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/puckwatch/puckwatch/internal/adapter"
	"github.com/puckwatch/puckwatch/internal/logger"
	"github.com/puckwatch/puckwatch/internal/store"
	"github.com/puckwatch/puckwatch/internal/view"
)

// Handler turns incoming commands into reply texts. It holds no transport
// state so command behavior can be tested without a Telegram connection.
type Handler struct {
	store store.Store
	clock adapter.Clock
}

// NewHandler creates a new command handler
func NewHandler(st store.Store, clock adapter.Clock) *Handler {
	return &Handler{
		store: st,
		clock: clock,
	}
}

// Dispatch handles one command message and returns the reply text.
// Errors never surface to the chat; every failure renders the generic
// error reply and the detail goes to the log.
func (h *Handler) Dispatch(ctx context.Context, message *tgbotapi.Message) string {
	h.registerUser(ctx, message.From)

	switch message.Command() {
	case "start":
		return view.WelcomeText
	case "schedule":
		return h.schedule(ctx)
	case "users":
		return h.users(ctx, message.CommandArguments())
	default:
		return "Unknown command. Try /schedule or /users."
	}
}

// registerUser creates or refreshes the invoking user. Registration is
// best-effort: a failure must not block the reply.
func (h *Handler) registerUser(ctx context.Context, from *tgbotapi.User) {
	if from == nil {
		return
	}
	_, err := h.store.UpsertBotUser(ctx, store.UpsertBotUserInput{
		TelegramID:   from.ID,
		FirstName:    from.FirstName,
		LastName:     from.LastName,
		Username:     from.UserName,
		LanguageCode: from.LanguageCode,
		IsBot:        from.IsBot,
	})
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.Int64("telegram_id", from.ID))
	}
}

func (h *Handler) schedule(ctx context.Context) string {
	now := h.clock.Now()
	games, err := h.store.ListUpcomingGames(ctx, now, view.ScheduleLimit)
	if err != nil {
		logger.ErrorCtx(ctx, err)
		return view.ErrorText
	}
	return view.RenderSchedule(games, now)
}

func (h *Handler) users(ctx context.Context, arg string) string {
	page := view.ParsePage(arg)

	users, total, err := h.store.ListBotUsers(ctx, view.UsersPageSize, (page-1)*view.UsersPageSize)
	if err != nil {
		logger.ErrorCtx(ctx, err)
		return view.ErrorText
	}

	stats, err := h.store.GetBotUserStats(ctx, h.clock.Now().Add(-view.ActiveWindow))
	if err != nil {
		logger.ErrorCtx(ctx, err)
		return view.ErrorText
	}

	return view.RenderUsers(users, stats, page, view.TotalPages(total, view.UsersPageSize))
}
