package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/football-players-service/internal/kv"
	"github.com/preston-bernstein/football-players-service/internal/logging"
)

// ErrEmptyMessage is returned when the user submits blank text.
var ErrEmptyMessage = errors.New("chat: message is empty")

// Service manages the persisted conversation.
type Service struct {
	mu     sync.Mutex
	kv     kv.Store
	gen    Generator
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// NewService constructs a Service over the store and generator.
func NewService(store kv.Store, gen Generator, logger *slog.Logger) *Service {
	return &Service{
		kv:     store,
		gen:    gen,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// History returns the stored conversation, or the welcome message when none exists.
func (s *Service) History(ctx context.Context) ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Send appends the user message, asks the generator for a reply and persists both.
// When the generator fails an apology is stored in place of the reply and the
// generator error is returned together with the updated history. The lock is
// released while the generator runs so History and Clear stay responsive; a
// reply that arrives after the conversation was cleared is discarded.
func (s *Service) Send(ctx context.Context, text string) ([]Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	s.mu.Lock()
	history, err := s.load(ctx)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	userMsg := s.message(text, true)
	history = append(history, userMsg)
	saved := s.save(ctx, history)
	s.mu.Unlock()

	reply, genErr := s.gen.Generate(ctx, text)
	if genErr != nil {
		logging.Error(logging.FromContext(ctx, s.logger), "error calling chat api", genErr)
		reply = apologyText
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx)
	switch {
	case err == nil && containsMessage(current, userMsg.ID):
		history = current
	case err == nil && saved:
		logging.Warn(logging.FromContext(ctx, s.logger), "chat cleared while reply was pending, dropping reply")
		return current, genErr
	}
	history = append(history, s.message(reply, false))
	s.save(ctx, history)
	return history, genErr
}

// Clear resets the conversation to the welcome message.
func (s *Service) Clear(ctx context.Context) ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := []Message{welcomeMessage(s.now())}
	data, err := json.Marshal(history)
	if err != nil {
		return nil, err
	}
	if err := s.kv.Set(ctx, StorageKey, string(data)); err != nil {
		return nil, fmt.Errorf("chat: reset history: %w", err)
	}
	return history, nil
}

func (s *Service) load(ctx context.Context) ([]Message, error) {
	raw, err := s.kv.Get(ctx, StorageKey)
	if errors.Is(err, kv.ErrNotFound) || (err == nil && raw == "") {
		return []Message{welcomeMessage(s.now())}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("chat: read history: %w", err)
	}

	var history []Message
	if err := json.Unmarshal([]byte(raw), &history); err != nil || len(history) == 0 {
		logging.StorageWarn(logging.FromContext(ctx, s.logger), "discarding unreadable chat history",
			StorageKey, err)
		return []Message{welcomeMessage(s.now())}, nil
	}
	return history, nil
}

// save logs failures and reports whether the history was written; the
// in-memory conversation is still returned to the caller.
func (s *Service) save(ctx context.Context, history []Message) bool {
	data, err := json.Marshal(history)
	if err == nil {
		err = s.kv.Set(ctx, StorageKey, string(data))
	}
	if err != nil {
		logging.StorageError(logging.FromContext(ctx, s.logger), "error saving chat history", StorageKey, err)
		return false
	}
	return true
}

func containsMessage(history []Message, id string) bool {
	for _, m := range history {
		if m.ID == id {
			return true
		}
	}
	return false
}

func (s *Service) message(text string, isUser bool) Message {
	return Message{ID: s.newID(), Text: text, IsUser: isUser, Timestamp: s.now()}
}
