package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/campusmesh/portal-api/internal/models"
	"github.com/campusmesh/portal-api/internal/observability"
	"github.com/campusmesh/portal-api/internal/repository"
)

const messageSendBufferSize = 32

// ErrEmptyMessage indicates a chat message with no content after trimming.
var ErrEmptyMessage = errors.New("message content must not be empty")

// MessageService manages the single global chat room: an append-only list
// visible to every user, with live fan-out to connected websocket clients.
type MessageService interface {
	List(ctx context.Context) ([]models.Message, error)
	Send(ctx context.Context, from, content string) (models.Message, error)
	ServeConnection(conn *websocket.Conn)
}

type messageService struct {
	repo      repository.MessageRepository
	sanitizer *bluemonday.Policy
	hub       *messageHub
	logger    zerolog.Logger
}

// messageHub tracks active websocket clients for the global room.
type messageHub struct {
	mu      sync.RWMutex
	clients map[*messageClient]struct{}
	log     zerolog.Logger
}

type messageClient struct {
	conn   *websocket.Conn
	send   chan models.Message
	closed chan struct{}
	once   sync.Once
}

// NewMessageService constructs the messaging service.
func NewMessageService(repo repository.MessageRepository, logger zerolog.Logger) MessageService {
	return &messageService{
		repo:      repo,
		sanitizer: bluemonday.StrictPolicy(),
		hub: &messageHub{
			clients: make(map[*messageClient]struct{}),
			log:     logger.With().Str("component", "message_hub").Logger(),
		},
		logger: logger.With().Str("component", "message_service").Logger(),
	}
}

func (s *messageService) List(ctx context.Context) ([]models.Message, error) {
	return s.repo.List(ctx)
}

func (s *messageService) Send(ctx context.Context, from, content string) (models.Message, error) {
	content = strings.TrimSpace(s.sanitizer.Sanitize(content))
	if content == "" {
		return models.Message{}, ErrEmptyMessage
	}

	messages, err := s.repo.List(ctx)
	if err != nil {
		return models.Message{}, err
	}

	message := models.Message{
		From:    from,
		Time:    displayTimestamp(time.Now()),
		Content: content,
	}

	if err := s.repo.Save(ctx, append(messages, message)); err != nil {
		return models.Message{}, err
	}

	s.hub.broadcast(message)
	observability.MessagesSent().Inc()

	return message, nil
}

// ServeConnection pumps newly sent messages to one websocket client until
// the peer disconnects.
func (s *messageService) ServeConnection(conn *websocket.Conn) {
	client := &messageClient{
		conn:   conn,
		send:   make(chan models.Message, messageSendBufferSize),
		closed: make(chan struct{}),
	}

	s.hub.register(client)
	defer s.hub.unregister(client)

	go client.writer()
	client.reader()
}

func (h *messageHub) register(client *messageClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

func (h *messageHub) unregister(client *messageClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		client.close()
	}
}

func (h *messageHub) broadcast(message models.Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- message:
		default:
			h.log.Debug().Msg("dropping chat message for slow consumer")
		}
	}
}

func (c *messageClient) close() {
	c.once.Do(func() {
		close(c.closed)
	})
}

func (c *messageClient) reader() {
	defer c.close()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *messageClient) writer() {
	defer func() { _ = c.conn.Close() }()
	for {
		select {
		case message := <-c.send:
			if err := c.conn.WriteJSON(message); err != nil {
				return
			}
		case <-c.closed:
			return
		}
	}
}
