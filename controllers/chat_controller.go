package controllers

import (
	"net/http"
	"strconv"

	"stayhub-backend/middleware"
	"stayhub-backend/services"
	"stayhub-backend/utils"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	Chat *services.ChatService
}

func NewChatController(chat *services.ChatService) *ChatController {
	return &ChatController{Chat: chat}
}

type sendMessagePayload struct {
	RecipientID uint   `json:"recipient_id"`
	Body        string `json:"body"`
}

// SendMessage posts a message to the front-desk pool (recipient 0) or to a
// specific user.
func (cc *ChatController) SendMessage(c *gin.Context) {
	var payload sendMessagePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	msg, err := cc.Chat.Send(c.Request.Context(),
		middleware.CurrentUserID(c), payload.RecipientID, payload.Body)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, msg)
}

// GetConversation serves polling clients. since=<id> fetches only newer
// messages.
func (cc *ChatController) GetConversation(c *gin.Context) {
	peerID, _ := strconv.ParseUint(c.DefaultQuery("peer", "0"), 10, 32)
	sinceID, _ := strconv.ParseUint(c.DefaultQuery("since", "0"), 10, 32)

	msgs, err := cc.Chat.Conversation(c.Request.Context(),
		middleware.CurrentUserID(c), uint(peerID), uint(sinceID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, msgs)
}

// GetPendingMessages lists unread pool messages for staff.
func (cc *ChatController) GetPendingMessages(c *gin.Context) {
	msgs, err := cc.Chat.PendingForFrontDesk(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, msgs)
}

type replyPayload struct {
	CustomerID uint   `json:"customer_id"`
	Body       string `json:"body"`
	ReadUpTo   uint   `json:"read_up_to,omitempty"`
}

// ReplyToCustomer lets staff answer a pool message and mark it handled.
func (cc *ChatController) ReplyToCustomer(c *gin.Context) {
	var payload replyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if payload.CustomerID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "customer_id is required")
		return
	}

	msg, err := cc.Chat.Send(c.Request.Context(),
		middleware.CurrentUserID(c), payload.CustomerID, payload.Body)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if payload.ReadUpTo > 0 {
		_ = cc.Chat.MarkRead(c.Request.Context(), services.FrontDeskPool, payload.ReadUpTo)
	}

	utils.JSONSuccess(c, http.StatusCreated, msg)
}
