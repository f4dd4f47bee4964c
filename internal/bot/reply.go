package bot

import (
	"time"

	"github.com/asyncee/prophet-bot/internal/exacttime"
	"github.com/asyncee/prophet-bot/internal/format"
	"github.com/asyncee/prophet-bot/internal/store"
)

// Responder turns one incoming message into the bot's reply. Every input
// surface (Telegram, the chat TUI, one-shot CLI parsing) goes through it so
// replies are identical everywhere.
type Responder struct {
	DB  *store.DB        // optional: records unrecognized phrases
	Now func() time.Time // optional: defaults to time.Now
}

// Reply extracts a reminder from text and renders the confirmation, or the
// apology when nothing is recognized. The extraction (nil or not) is
// returned alongside so callers can act on it.
func (r *Responder) Reply(text string) (string, *exacttime.Extraction) {
	now := time.Now()
	if r.Now != nil {
		now = r.Now()
	}

	x := exacttime.Extract(text, now)
	if x == nil {
		if r.DB != nil {
			// Best effort: a full phrase log is not worth failing the reply.
			_ = r.DB.AddPhrase(text)
		}
		return format.Apology(), nil
	}

	return format.Reply(x, now), x
}
