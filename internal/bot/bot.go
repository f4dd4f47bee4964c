// Package bot is the Telegram transport around the extraction engine: it
// receives messages by long polling and answers each one with either a
// reminder confirmation or the apology.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/asyncee/prophet-bot/internal/format"
	"github.com/asyncee/prophet-bot/internal/store"
)

const offsetKey = "update_offset"

type Bot struct {
	api       *tgbotapi.BotAPI
	db        *store.DB
	responder *Responder
	logger    *slog.Logger
}

func New(token string, db *store.DB, logger *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connecting to telegram: %w", err)
	}

	return &Bot{
		api:       api,
		db:        db,
		responder: &Responder{DB: db},
		logger:    logger,
	}, nil
}

// Run polls for updates until ctx is cancelled. The last processed update ID
// is persisted, so a restart does not replay old messages.
func (b *Bot) Run(ctx context.Context) error {
	offset := 0
	if saved, err := b.db.GetState(offsetKey); err == nil && saved != "" {
		if id, err := strconv.Atoi(saved); err == nil {
			offset = id + 1
		}
	}

	u := tgbotapi.NewUpdate(offset)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	b.logger.Info("bot started", "username", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("bot stopped")
			return nil
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			b.handle(update.Message)
			if err := b.db.SetState(offsetKey, strconv.Itoa(update.UpdateID)); err != nil {
				b.logger.Warn("saving update offset", "error", err)
			}
		}
	}
}

func (b *Bot) handle(msg *tgbotapi.Message) {
	var reply string

	switch {
	case msg.IsCommand():
		reply = b.handleCommand(msg.Command())
	case strings.TrimSpace(msg.Text) != "":
		reply, _ = b.responder.Reply(msg.Text)
	default:
		return
	}

	if reply == "" {
		return
	}

	b.logger.Debug("message handled", "chat", msg.Chat.ID, "text", msg.Text)

	if _, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, reply)); err != nil {
		b.logger.Warn("sending reply", "chat", msg.Chat.ID, "error", err)
	}
}

func (b *Bot) handleCommand(command string) string {
	switch command {
	case "start":
		return format.Greeting()
	case "print":
		phrases, err := b.db.ListPhrases()
		if err != nil {
			b.logger.Warn("listing phrases", "error", err)
			return ""
		}
		if len(phrases) == 0 {
			return "—"
		}
		return strings.Join(phrases, ", ")
	case "timezone":
		name, _ := time.Now().Zone()
		return name
	default:
		return "Sorry, I didn't understand that command."
	}
}
