package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	st := NewStore(StoreConfig{})
	s := sampleSession()
	st.Put(s)
	assert.Equal(t, 1, st.Len())

	got, err := st.Get(s.ID.String())
	require.NoError(t, err)
	assert.Same(t, s, got)

	require.NoError(t, st.Delete(s.ID.String()))
	assert.Equal(t, 0, st.Len())

	_, err = st.Get(s.ID.String())
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, s.ID.String(), notFound.ID)
}

func TestStore_NotFound(t *testing.T) {
	st := NewStore(StoreConfig{})

	tests := []struct {
		name string
		id   string
	}{
		{"malformed id", "not-a-uuid"},
		{"unknown id", "6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := st.Get(tt.id)
			var notFound *NotFoundError
			assert.ErrorAs(t, err, &notFound)

			err = st.Delete(tt.id)
			assert.ErrorAs(t, err, &notFound)
		})
	}
}

func TestStore_SweepEvictsIdleSessions(t *testing.T) {
	st := NewStore(StoreConfig{IdleTTL: time.Hour})
	defer st.Stop()

	idle := sampleSession()
	idle.lastActive = time.Now().Add(-2 * time.Hour)
	revived := sampleSession()
	revived.lastActive = time.Now().Add(-2 * time.Hour)
	fresh := sampleSession()
	for _, s := range []*Session{idle, revived, fresh} {
		st.Put(s)
	}

	revived.Chat(context.Background(), echoGenerator{}, "still here")

	assert.Equal(t, 1, st.Sweep())
	assert.Equal(t, 2, st.Len())

	_, err := st.Get(idle.ID.String())
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)

	_, err = st.Get(revived.ID.String())
	assert.NoError(t, err)
	_, err = st.Get(fresh.ID.String())
	assert.NoError(t, err)
}

func TestStore_SweepUsesClock(t *testing.T) {
	st := NewStore(StoreConfig{IdleTTL: time.Hour})
	defer st.Stop()
	st.Put(sampleSession())

	assert.Equal(t, 0, st.Sweep())

	st.now = func() time.Time { return time.Now().Add(61 * time.Minute) }
	assert.Equal(t, 1, st.Sweep())
	assert.Equal(t, 0, st.Len())
}

func TestStore_NoTTLKeepsSessions(t *testing.T) {
	st := NewStore(StoreConfig{})
	s := sampleSession()
	s.lastActive = time.Now().Add(-24 * time.Hour)
	st.Put(s)

	assert.Equal(t, 0, st.Sweep())
	assert.Equal(t, 1, st.Len())
}

func TestStore_CleanupLoop(t *testing.T) {
	st := NewStore(StoreConfig{IdleTTL: time.Minute, CleanupInterval: 10 * time.Millisecond})
	s := sampleSession()
	s.lastActive = time.Now().Add(-time.Hour)
	st.Put(s)

	assert.Eventually(t, func() bool { return st.Len() == 0 }, time.Second, 10*time.Millisecond)

	st.Stop()
	st.Stop()
}

func TestSession_LastActive(t *testing.T) {
	s := sampleSession()
	created := s.LastActive()
	assert.Equal(t, s.CreatedAt, created)

	reply := s.Chat(context.Background(), echoGenerator{}, "hi")
	assert.Equal(t, reply.CreatedAt, s.LastActive())
	assert.False(t, s.LastActive().Before(created))
}
