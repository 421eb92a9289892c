package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/repository"
	"github.com/dhruvikmodi23/HealingMinds-sub000/pkg/logger"
	"github.com/dhruvikmodi23/HealingMinds-sub000/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	onlineTTL      = 2 * time.Minute
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSMessage struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversationId,omitempty"`
	Content        string `json:"content,omitempty"`
	SenderID       uint   `json:"senderId,omitempty"`
	MessageID      string `json:"messageId,omitempty"`
	SentAt         string `json:"sentAt,omitempty"`
}

type Client struct {
	Hub     *ChatHub
	Conn    *websocket.Conn
	Send    chan []byte
	UserID  uint
	Limiter *rate.Limiter
}

func (c *Client) readPump() {
	defer func() {
		c.Hub.detach(c)
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error { c.Conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Error("WebSocket unexpected close", zap.Error(err), zap.Uint("userId", c.UserID))
			}
			break
		}

		// At most 10 messages per second with bursts of 20.
		if !c.Limiter.Allow() {
			continue
		}

		var msg WSMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}

		monitoring.ChatMessageCounter.WithLabelValues(msg.Type, "in").Inc()

		switch msg.Type {
		case "CHAT":
			c.Hub.handleChat(c.UserID, msg)
		case "TYPING":
			c.Hub.relayTransient(c.UserID, msg)
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ChatHub relays session-chat messages between the two participants of an
// appointment conversation and persists them through the chat repository.
type ChatHub struct {
	clients    map[uint]*Client
	mu         sync.RWMutex
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	Redis      *redis.Client
	ChatRepo   *repository.ChatRepository
	ctx        context.Context
}

func NewChatHub(rdb *redis.Client, chatRepo *repository.ChatRepository) *ChatHub {
	return &ChatHub{
		clients:    make(map[uint]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		Redis:      rdb,
		ChatRepo:   chatRepo,
		ctx:        context.Background(),
	}
}

func (h *ChatHub) Run() {
	heartbeat := time.NewTicker(time.Minute)
	defer heartbeat.Stop()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = client
			h.mu.Unlock()
			h.setOnline(client.UserID, true)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.UserID]; ok {
				delete(h.clients, client.UserID)
				close(client.Send)
			}
			h.mu.Unlock()
			h.setOnline(client.UserID, false)

		case <-heartbeat.C:
			h.refreshOnline()

		case <-h.done:
			return
		}
	}
}

// Stop closes every live connection and drops presence keys.
func (h *ChatHub) Stop() {
	close(h.done)
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, client := range h.clients {
		close(client.Send)
		client.Conn.Close()
		delete(h.clients, id)
		if h.Redis != nil {
			h.Redis.Del(h.ctx, fmt.Sprintf("user:online:%d", id))
		}
	}
}

// detach hands the client back to the hub for cleanup. Once the hub is
// stopped nobody drains unregister anymore, so the send must not block.
func (h *ChatHub) detach(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *ChatHub) setOnline(userID uint, online bool) {
	if h.Redis == nil {
		return
	}
	key := fmt.Sprintf("user:online:%d", userID)
	if online {
		h.Redis.Set(h.ctx, key, "true", onlineTTL)
	} else {
		h.Redis.Del(h.ctx, key)
	}
}

func (h *ChatHub) refreshOnline() {
	if h.Redis == nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	pipe := h.Redis.Pipeline()
	for id := range h.clients {
		pipe.Expire(h.ctx, fmt.Sprintf("user:online:%d", id), onlineTTL)
	}
	if _, err := pipe.Exec(h.ctx); err != nil {
		logger.Log.Error("Redis pipeline error", zap.Error(err))
	}
}

// peer returns the other participant of a conversation, or 0 when the sender
// is not a participant at all.
func (h *ChatHub) peer(conv *model.Conversation, senderID uint) uint {
	switch senderID {
	case conv.UserID:
		return conv.CounselorUID
	case conv.CounselorUID:
		return conv.UserID
	}
	return 0
}

func (h *ChatHub) handleChat(senderID uint, msg WSMessage) {
	if msg.ConversationID == "" || msg.Content == "" {
		return
	}
	conv, err := h.ChatRepo.FindConversation(msg.ConversationID)
	if err != nil {
		return
	}
	target := h.peer(conv, senderID)
	if target == 0 {
		return
	}

	saved := &model.ChatMessage{
		ConversationID: conv.ID,
		SenderID:       senderID,
		Content:        msg.Content,
	}
	if err := h.ChatRepo.SaveMessage(saved); err != nil {
		logger.Log.Error("failed to persist chat message", zap.Error(err))
		return
	}

	out := WSMessage{
		Type:           "CHAT",
		ConversationID: conv.ID,
		Content:        msg.Content,
		SenderID:       senderID,
		MessageID:      saved.ID,
		SentAt:         saved.CreatedAt.Format(time.RFC3339),
	}
	h.pushToUser(target, out)
}

func (h *ChatHub) relayTransient(senderID uint, msg WSMessage) {
	if msg.ConversationID == "" {
		return
	}
	conv, err := h.ChatRepo.FindConversation(msg.ConversationID)
	if err != nil {
		return
	}
	target := h.peer(conv, senderID)
	if target == 0 {
		return
	}
	msg.SenderID = senderID
	h.pushToUser(target, msg)
}

func (h *ChatHub) pushToUser(userID uint, msg WSMessage) {
	raw, err := json.Marshal(msg)
	if err != nil {
		return
	}
	h.mu.RLock()
	client, ok := h.clients[userID]
	h.mu.RUnlock()
	if !ok {
		return
	}
	select {
	case client.Send <- raw:
		monitoring.ChatMessageCounter.WithLabelValues(msg.Type, "out").Inc()
	default:
		// Slow consumer; drop rather than block the hub.
	}
}

// ServeWS upgrades the request and attaches the client to the hub.
func (h *ChatHub) ServeWS(w http.ResponseWriter, r *http.Request, userID uint) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	client := &Client{
		Hub:     h,
		Conn:    conn,
		Send:    make(chan []byte, 64),
		UserID:  userID,
		Limiter: rate.NewLimiter(10, 20),
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return errors.New("chat hub is shutting down")
	}

	go client.writePump()
	go client.readPump()
	return nil
}

// IsOnline checks the Redis presence key.
func (h *ChatHub) IsOnline(userID uint) bool {
	if h.Redis == nil {
		return false
	}
	v, err := h.Redis.Get(h.ctx, fmt.Sprintf("user:online:%d", userID)).Result()
	return err == nil && v == "true"
}
