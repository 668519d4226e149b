package line

import (
	"fmt"
	"net/http"
	"os"

	"countdown/internal/pkg/logger"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// Client wraps the linebot.Client.
type Client struct {
	*linebot.Client
	log logger.Logger
}

// NewClient creates a LINE Bot client from the CHANNEL_SECRET and
// CHANNEL_ACCESS_TOKEN environment variables.
func NewClient(log logger.Logger) (*Client, error) {
	channelSecret := os.Getenv("CHANNEL_SECRET")
	channelToken := os.Getenv("CHANNEL_ACCESS_TOKEN")

	if channelSecret == "" || channelToken == "" {
		return nil, fmt.Errorf("CHANNEL_SECRET and CHANNEL_ACCESS_TOKEN environment variables must be set")
	}

	bot, err := linebot.New(channelSecret, channelToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create LINE Bot client: %w", err)
	}
	log.Info("Successfully created LINE Bot client.")
	return &Client{
		Client: bot,
		log:    log,
	}, nil
}

// Reply sends one or more text messages using the ReplyMessage API.
func (c *Client) Reply(replyToken string, texts ...string) error {
	messages := make([]linebot.SendingMessage, len(texts))
	for i, text := range texts {
		messages[i] = linebot.NewTextMessage(text)
	}
	if _, err := c.ReplyMessage(replyToken, messages...).Do(); err != nil {
		return err
	}
	c.log.Debug("Successfully sent reply message.")
	return nil
}

// Push sends a text message to an owner using the PushMessage API. It
// satisfies the scheduler's Notifier interface.
func (c *Client) Push(ownerID string, text string) error {
	if _, err := c.PushMessage(ownerID, linebot.NewTextMessage(text)).Do(); err != nil {
		return err
	}
	c.log.Debug("Successfully sent push message.")
	return nil
}

// ParseRequest parses incoming webhook requests.
func (c *Client) ParseRequest(r *http.Request) ([]*linebot.Event, error) {
	return c.Client.ParseRequest(r)
}
