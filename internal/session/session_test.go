package session

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-advisor/internal/advice"
	"github.com/jonathan/resume-advisor/internal/types"
)

type echoGenerator struct{}

func (echoGenerator) Generate(_ context.Context, message string, in advice.Input) string {
	return fmt.Sprintf("%s:%d", message, len(in.Gaps.MissingSkills))
}

func sampleSession() *Session {
	record := types.NewResumeRecord()
	record.Name = "Jane Doe"
	record.Skills = []string{"Python", "SQL"}
	job := types.JobRequirements{
		Skills:         []string{"Python", "SQL", "AWS"},
		MinExperience:  1,
		EducationLevel: types.EducationAny,
	}
	return New(record, job, nil)
}

func TestNew_OpensWithWelcome(t *testing.T) {
	s := sampleSession()

	history := s.History()
	require.Len(t, history, 1)
	assert.Equal(t, RoleAssistant, history[0].Role)
	assert.Equal(t, advice.WelcomeMessage, history[0].Content)
	assert.Equal(t, []string{"AWS"}, s.Input().Gaps.MissingSkills)
}

func TestChat_AppendsUserAndReply(t *testing.T) {
	s := sampleSession()

	reply := s.Chat(context.Background(), echoGenerator{}, "skills?")

	assert.Equal(t, RoleAssistant, reply.Role)
	assert.Equal(t, "skills?:1", reply.Content)

	history := s.History()
	require.Len(t, history, 3)
	assert.Equal(t, RoleUser, history[1].Role)
	assert.Equal(t, "skills?", history[1].Content)
	assert.Equal(t, reply.ID, history[2].ID)
}

func TestChat_RuleBased(t *testing.T) {
	s := sampleSession()

	reply := s.Chat(context.Background(), advice.RuleBased{}, "What skills am I missing?")

	assert.Equal(t, advice.Respond("What skills am I missing?", s.Input()), reply.Content)
}

func TestChat_Concurrent(t *testing.T) {
	s := sampleSession()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Chat(context.Background(), echoGenerator{}, "hi")
		}()
	}
	wg.Wait()

	history := s.History()
	assert.Len(t, history, 41)
	for i := 1; i < len(history); i += 2 {
		assert.Equal(t, RoleUser, history[i].Role)
		assert.Equal(t, RoleAssistant, history[i+1].Role)
	}
}

func TestHistory_ReturnsCopy(t *testing.T) {
	s := sampleSession()
	history := s.History()
	history[0].Content = "changed"

	assert.Equal(t, advice.WelcomeMessage, s.History()[0].Content)
}

func TestSnapshot(t *testing.T) {
	s := sampleSession()
	s.Chat(context.Background(), echoGenerator{}, "hello")

	snap := s.Snapshot()
	assert.Equal(t, s.ID, snap.ID)
	assert.Equal(t, "Jane Doe", snap.Record.Name)
	assert.Equal(t, s.Input().Score, snap.Score)
	assert.Len(t, snap.History, 3)
}
