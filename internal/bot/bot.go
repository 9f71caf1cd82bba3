// Package bot implements the Telegram command surface: command dispatch,
// inline keyboards, forwarded-message analysis, and report rendering.
//
// The bot is thin I/O glue around the analyzer. It fetches raw attributes
// through the fetcher, hands them to the analyzer, and renders the resulting
// report in MarkdownV2. Delivery uses retry with linear backoff for common
// Telegram API issues like rate limiting and network failures.
package bot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/accountlens/accountlens/internal/analyzer"
	"github.com/accountlens/accountlens/internal/fetcher"
	"github.com/accountlens/accountlens/internal/logger"
	"github.com/accountlens/accountlens/internal/models"
	"github.com/accountlens/accountlens/internal/storage"
)

// Bot wires the Telegram update loop to the analyzer.
type Bot struct {
	api            *tgbotapi.BotAPI
	fetch          *fetcher.Client
	engine         *analyzer.Analyzer
	store          *storage.Storage
	adminID        int64
	maxRetries     int
	retryDelayBase time.Duration
}

// Options configures the bot transport.
type Options struct {
	BotToken       string
	AdminID        int64 // 0 disables admin commands
	MaxRetries     int
	RetryDelayBase time.Duration
	RequestTimeout time.Duration
	Debug          bool
}

// New creates a new Bot.
func New(opts Options, engine *analyzer.Analyzer, store *storage.Storage) (*Bot, error) {
	httpClient := &http.Client{Timeout: opts.RequestTimeout}
	api, err := tgbotapi.NewBotAPIWithClient(opts.BotToken, tgbotapi.APIEndpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}
	api.Debug = opts.Debug

	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 3
	}
	if opts.RetryDelayBase <= 0 {
		opts.RetryDelayBase = time.Second
	}

	return &Bot{
		api:            api,
		fetch:          fetcher.NewClient(api),
		engine:         engine,
		store:          store,
		adminID:        opts.AdminID,
		maxRetries:     opts.MaxRetries,
		retryDelayBase: opts.RetryDelayBase,
	}, nil
}

// Username returns the authenticated bot account's username.
func (b *Bot) Username() string {
	return b.api.Self.UserName
}

// Run processes updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30
	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(update)
		}
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(update.Message)
	case update.Message != nil && update.Message.ForwardFrom != nil:
		b.handleForwarded(update.Message)
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	command := msg.Command()
	b.store.RecordCommand(command)
	logger.Debug("Command /%s from %d", command, msg.From.ID)

	switch command {
	case "start":
		b.sendWelcome(msg.Chat.ID, msg.From.FirstName)
	case "help":
		b.reply(msg.Chat.ID, helpText)
	case "analyze":
		b.handleAnalyze(msg)
	case "myinfo":
		b.analyzeUser(msg.Chat.ID, msg.From)
	case "stats":
		b.reply(msg.Chat.ID, formatStats(b.store.Snapshot()))
	case "reset":
		b.handleReset(msg)
	default:
		b.reply(msg.Chat.ID, escapeMarkdownV2("Unknown command. Try /help."))
	}
}

// handleAnalyze resolves the analysis target from, in order: the replied-to
// message's sender, a numeric ID argument, or an @username argument.
func (b *Bot) handleAnalyze(msg *tgbotapi.Message) {
	if msg.ReplyToMessage != nil && msg.ReplyToMessage.From != nil {
		b.analyzeUser(msg.Chat.ID, msg.ReplyToMessage.From)
		return
	}

	arg := strings.TrimSpace(msg.CommandArguments())
	if arg == "" {
		b.reply(msg.Chat.ID, escapeMarkdownV2(
			"Please provide a user ID, username, or reply to a message.\n"+
				"Example: /analyze 123456789 or /analyze @username"))
		return
	}

	var (
		account models.RawAccount
		err     error
	)
	if id, parseErr := strconv.ParseInt(arg, 10, 64); parseErr == nil {
		account, err = b.fetch.Fetch(id)
	} else {
		account, err = b.fetch.FetchByUsername(arg)
	}
	if err != nil {
		b.replyFetchError(msg.Chat.ID, err)
		return
	}

	b.sendReport(msg.Chat.ID, account)
}

func (b *Bot) handleForwarded(msg *tgbotapi.Message) {
	b.analyzeUser(msg.Chat.ID, msg.ForwardFrom)
}

func (b *Bot) handleReset(msg *tgbotapi.Message) {
	if b.adminID == 0 || msg.From.ID != b.adminID {
		b.reply(msg.Chat.ID, escapeMarkdownV2("Access denied: admin only command"))
		return
	}
	b.store.Reset()
	if err := b.store.Save(); err != nil {
		logger.Warn("Failed to persist stats after reset: %v", err)
	}
	b.reply(msg.Chat.ID, escapeMarkdownV2("Usage statistics reset"))
}

func (b *Bot) handleCallback(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	if _, err := b.api.Request(callback); err != nil {
		logger.Warn("Failed to answer callback query: %v", err)
	}

	chatID := query.Message.Chat.ID
	switch query.Data {
	case "analyze_self":
		b.store.RecordCommand("myinfo")
		b.analyzeUser(chatID, query.From)
	case "help":
		b.reply(chatID, helpText)
	case "stats":
		b.reply(chatID, formatStats(b.store.Snapshot()))
	default:
		logger.Debug("Unhandled callback data: %s", query.Data)
	}
}

// analyzeUser runs the full pipeline for a user already present in an update:
// enrich via getChat, analyze, render, send.
func (b *Bot) analyzeUser(chatID int64, user *tgbotapi.User) {
	account := b.fetch.Enrich(b.fetch.FromUser(user))
	b.sendReport(chatID, account)
}

func (b *Bot) sendReport(chatID int64, account models.RawAccount) {
	report := b.engine.Analyze(account)
	b.store.RecordAnalysis()
	logger.Info("Analyzed account %d (registration=%s, country=%s/%s)",
		account.ID, report.Registration.String(), report.Country.Label, report.Country.Source)
	b.reply(chatID, formatReport(report))
}

func (b *Bot) replyFetchError(chatID int64, err error) {
	var fetchErr *fetcher.Error
	if errors.As(err, &fetchErr) {
		switch fetchErr.Kind {
		case fetcher.KindNotFound:
			b.reply(chatID, escapeMarkdownV2("User not found"))
			return
		case fetcher.KindPrivacyRestricted:
			b.reply(chatID, escapeMarkdownV2("User privacy settings prevent access to their information"))
			return
		case fetcher.KindRateLimited:
			b.reply(chatID, escapeMarkdownV2(formatRetryAfter(fetchErr.RetryAfter)))
			return
		}
	}
	logger.Error("Fetch failed: %v", err)
	b.reply(chatID, escapeMarkdownV2("Failed to retrieve user information. Please try again later."))
}

func (b *Bot) sendWelcome(chatID int64, firstName string) {
	msg := tgbotapi.NewMessage(chatID, welcomeText(firstName))
	msg.ParseMode = "MarkdownV2"
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 My Account", "analyze_self"),
			tgbotapi.NewInlineKeyboardButtonData("❓ Help", "help"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📈 Stats", "stats"),
		),
	)
	b.send(msg)
}

// reply sends a MarkdownV2 message. Text must already be escaped.
func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "MarkdownV2"
	b.send(msg)
}

// send delivers a message with linear-backoff retry.
func (b *Bot) send(msg tgbotapi.MessageConfig) {
	var lastErr error
	for i := 0; i < b.maxRetries; i++ {
		_, err := b.api.Send(msg)
		if err == nil {
			return
		}
		lastErr = err
		time.Sleep(b.retryDelayBase * time.Duration(i+1))
	}
	logger.Error("Failed to send message after %d retries: %v", b.maxRetries, lastErr)
}

func welcomeText(firstName string) string {
	return fmt.Sprintf("🔍 *Telegram Account Analyzer*\n\nHello %s\\! I analyze Telegram accounts and estimate details the platform does not expose directly\\.\n\n", escapeMarkdownV2(firstName)) +
		escapeMarkdownV2("• /analyze <user_id> - analyze any user\n"+
			"• /myinfo - analyze your account\n"+
			"• Forward a message - auto-analyze its sender\n"+
			"• Reply to a message with /analyze\n\n"+
			"Registration dates and countries are estimates based on ID patterns, "+
			"language, and phone prefixes. Privacy settings may limit results.")
}

var helpText = "🆘 *Help*\n\n" +
	escapeMarkdownV2("Commands:\n"+
		"• /start - welcome message and quick actions\n"+
		"• /help - this help\n"+
		"• /analyze <id|@username> - analyze a specific user\n"+
		"• /myinfo - your account details\n"+
		"• /stats - usage statistics\n\n"+
		"You can also reply to any message with /analyze, or forward a message "+
		"to analyze its original sender.\n\n"+
		"Limitations:\n"+
		"• Registration dates are estimated from user ID patterns\n"+
		"• Country detection is approximate (language or phone based)\n"+
		"• Some details may be unavailable due to privacy settings")
