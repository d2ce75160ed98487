// Package session holds the per-user chat context: the analyzed resume, the
// target job and the conversation so far.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-advisor/internal/advice"
	"github.com/jonathan/resume-advisor/internal/lexicon"
	"github.com/jonathan/resume-advisor/internal/types"
)

// Role identifies who wrote a message.
type Role string

// Message roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat turn.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is the context for one conversation. The record and job are fixed
// at creation; only the history grows.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	input      advice.Input
	mu         sync.Mutex
	history    []Message
	lastActive time.Time
}

// Snapshot is a copy of a session safe to serialize.
type Snapshot struct {
	ID        uuid.UUID             `json:"id"`
	CreatedAt time.Time             `json:"created_at"`
	Record    types.ResumeRecord    `json:"record"`
	Job       types.JobRequirements `json:"job"`
	Gaps      types.GapReport       `json:"gaps"`
	Score     float64               `json:"selection_probability"`
	History   []Message             `json:"history"`
}

// New analyzes record against job and opens the conversation with the
// welcome message.
func New(record types.ResumeRecord, job types.JobRequirements, lex *lexicon.Lexicon) *Session {
	now := time.Now().UTC()
	s := &Session{
		ID:         uuid.New(),
		CreatedAt:  now,
		input:      advice.NewInput(record, job, lex),
		lastActive: now,
	}
	s.history = append(s.history, newMessage(RoleAssistant, advice.WelcomeMessage))
	return s
}

// Input returns the analysis context replies are drawn from.
func (s *Session) Input() advice.Input {
	return s.input
}

// History returns a copy of the conversation.
func (s *Session) History() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.history))
	copy(out, s.history)
	return out
}

// LastActive returns when the session was created or last chatted in.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Chat records the user message, asks gen for a reply and records it.
// Turns on one session are serialized.
func (s *Session) Chat(ctx context.Context, gen advice.Generator, message string) Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, newMessage(RoleUser, message))
	reply := newMessage(RoleAssistant, gen.Generate(ctx, message, s.input))
	s.history = append(s.history, reply)
	s.lastActive = reply.CreatedAt
	return reply
}

// Snapshot copies the session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		Record:    s.input.Record,
		Job:       s.input.Job,
		Gaps:      s.input.Gaps,
		Score:     s.input.Score,
		History:   s.History(),
	}
}

func newMessage(role Role, content string) Message {
	return Message{ID: uuid.New(), Role: role, Content: content, CreatedAt: time.Now().UTC()}
}
