package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"countdown/internal/application/service"
	"countdown/internal/infrastructure/line"
	"countdown/internal/interfaces/bot"
	"countdown/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// LineHandler handles incoming LINE webhook events.
type LineHandler struct {
	lineClient *line.Client
	dispatcher *bot.Dispatcher
	ownerSvc   service.OwnerService
	log        logger.Logger
}

// NewLineHandler creates a new LineHandler.
func NewLineHandler(
	lineClient *line.Client,
	dispatcher *bot.Dispatcher,
	ownerSvc service.OwnerService,
	log logger.Logger,
) *LineHandler {
	return &LineHandler{
		lineClient: lineClient,
		dispatcher: dispatcher,
		ownerSvc:   ownerSvc,
		log:        log,
	}
}

// HandleWebhook is the main entry point for webhook requests.
func (h *LineHandler) HandleWebhook(c echo.Context) error {
	ctx := c.Request().Context()
	events, err := h.lineClient.ParseRequest(c.Request())
	if err != nil {
		if errors.Is(err, linebot.ErrInvalidSignature) {
			h.log.Warn("Invalid LINE signature received")
			return c.String(http.StatusBadRequest, "Invalid signature")
		}
		h.log.Error("Failed to parse LINE webhook request", err)
		return c.String(http.StatusInternalServerError, "Error parsing request")
	}

	for _, event := range events {
		switch event.Type {
		case linebot.EventTypeMessage:
			h.handleMessageEvent(ctx, event)
		case linebot.EventTypeFollow:
			h.handleFollowEvent(event)
		case linebot.EventTypeUnfollow:
			h.handleUnfollowEvent(ctx, event)
		default:
			h.log.Debug(fmt.Sprintf("Unhandled event type: %s", event.Type))
		}
	}

	return c.String(http.StatusOK, "OK")
}

// handleMessageEvent routes text messages through the dispatcher; every
// message gets exactly one reply and errors never escape as faults.
func (h *LineHandler) handleMessageEvent(ctx context.Context, event *linebot.Event) {
	ownerID := event.Source.UserID
	replyToken := event.ReplyToken

	message, ok := event.Message.(*linebot.TextMessage)
	if !ok {
		h.log.Debug(fmt.Sprintf("Received non-text message from %s", ownerID))
		return
	}

	h.log.Info(fmt.Sprintf("Received text message from %s: %s", ownerID, message.Text))
	reply := h.dispatcher.Dispatch(ctx, ownerID, message.Text)
	if err := h.lineClient.Reply(replyToken, reply); err != nil {
		h.log.Error(fmt.Sprintf("Failed to send reply to owner %s", ownerID), err)
	}
}

// handleFollowEvent greets a new owner with the help text.
func (h *LineHandler) handleFollowEvent(event *linebot.Event) {
	ownerID := event.Source.UserID
	h.log.Info(fmt.Sprintf("Owner %s followed the bot.", ownerID))

	if err := h.lineClient.Reply(event.ReplyToken, h.dispatcher.Help()); err != nil {
		h.log.Error(fmt.Sprintf("Failed to send welcome message to owner %s", ownerID), err)
	}
}

// handleUnfollowEvent removes all data of an owner who left or blocked the bot.
func (h *LineHandler) handleUnfollowEvent(ctx context.Context, event *linebot.Event) {
	ownerID := event.Source.UserID
	h.log.Info(fmt.Sprintf("Owner %s unfollowed or blocked the bot.", ownerID))

	if err := h.ownerSvc.DeleteOwner(ctx, ownerID); err != nil {
		// No reply possible for unfollow events; the error is already logged.
	}
}
