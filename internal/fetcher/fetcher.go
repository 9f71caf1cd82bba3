// Package fetcher retrieves raw account attributes from the Telegram Bot API
// and shapes them into the analyzer's input model.
//
// The Bot API is deliberately narrow: it exposes no phone numbers, no
// verified/fake/scam flags, and no last-seen signal for arbitrary users.
// Fields the API withholds stay at their zero values and the analyzer degrades
// them to its "unknown" sentinels. Failures are classified into kinded errors
// (not found, privacy restricted, rate limited, transient) before anything
// reaches the analyzer.
package fetcher

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/accountlens/accountlens/internal/models"
)

// Client fetches account data via the Bot API.
type Client struct {
	api *tgbotapi.BotAPI
}

// NewClient creates a new fetcher backed by an existing Bot API handle.
func NewClient(api *tgbotapi.BotAPI) *Client {
	return &Client{api: api}
}

// FromUser builds a RawAccount from user data already present in an update
// (message sender, forward origin, callback issuer). No network call is made;
// bio and photo presence are only available through Fetch.
func (c *Client) FromUser(u *tgbotapi.User) models.RawAccount {
	return models.RawAccount{
		ID:           u.ID,
		Username:     u.UserName,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		LanguageCode: u.LanguageCode,
		IsBot:        u.IsBot,
		Presence:     models.Presence{Kind: models.PresenceUnknown},
	}
}

// Fetch retrieves an account snapshot by numeric ID. The getChat call fills
// in the bio and photo presence that update payloads omit.
func (c *Client) Fetch(accountID int64) (models.RawAccount, error) {
	chat, err := c.api.GetChat(tgbotapi.ChatInfoConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: accountID},
	})
	if err != nil {
		return models.RawAccount{}, classify(fmt.Errorf("getChat %d: %w", accountID, err))
	}
	return fromChat(chat), nil
}

// FetchByUsername retrieves an account snapshot by @username. The Bot API
// resolves usernames only for chats the bot can see, so this is best-effort.
func (c *Client) FetchByUsername(username string) (models.RawAccount, error) {
	username = strings.TrimPrefix(username, "@")
	chat, err := c.api.GetChat(tgbotapi.ChatInfoConfig{
		ChatConfig: tgbotapi.ChatConfig{SuperGroupUsername: "@" + username},
	})
	if err != nil {
		return models.RawAccount{}, classify(fmt.Errorf("getChat @%s: %w", username, err))
	}
	return fromChat(chat), nil
}

// Enrich fills the fetched-only fields (bio, photo presence) into an account
// built via FromUser, keeping everything the update payload already carried.
func (c *Client) Enrich(account models.RawAccount) models.RawAccount {
	fetched, err := c.Fetch(account.ID)
	if err != nil {
		// Enrichment is optional; the update-supplied fields are still usable.
		return account
	}
	account.Bio = fetched.Bio
	account.HasPhoto = fetched.HasPhoto
	return account
}

func fromChat(chat tgbotapi.Chat) models.RawAccount {
	return models.RawAccount{
		ID:        chat.ID,
		Username:  chat.UserName,
		FirstName: chat.FirstName,
		LastName:  chat.LastName,
		Bio:       chat.Bio,
		HasPhoto:  chat.Photo != nil,
		Presence:  models.Presence{Kind: models.PresenceUnknown},
	}
}
