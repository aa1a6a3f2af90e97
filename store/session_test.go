package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Perlera89/campus/core/session"
	inmemstorage "github.com/Perlera89/campus/storage/inmem"
)

func TestSessionStore_partializedReload(t *testing.T) {
	ctx := context.Background()
	st := inmemstorage.Open()

	sess := session.Session{
		UserID:       "usr-1",
		ProfileID:    "prof-1",
		Username:     "awe",
		Email:        "awe@test.cd",
		Role:         session.RoleManager,
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
	}

	s := NewSessionStore(st)
	require.NoError(t, s.SetSession(ctx, sess))
	assert.Equal(t, sess, s.Session())

	// a new store over the same storage simulates a page reload: only the
	// token pair and role come back, identity resets to zero values
	reloaded := NewSessionStore(st)
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, session.Session{
		Role:         session.RoleManager,
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
	}, reloaded.Session())
}

func TestSessionStore_Clear(t *testing.T) {
	ctx := context.Background()
	st := inmemstorage.Open()

	s := NewSessionStore(st)
	require.NoError(t, s.SetSession(ctx, session.Session{AccessToken: "a", Role: session.RoleStudent}))
	require.NoError(t, s.Clear(ctx))
	assert.True(t, s.Session().IsAnonymous())

	// the partition is gone too
	reloaded := NewSessionStore(st)
	require.NoError(t, reloaded.Load(ctx))
	assert.True(t, reloaded.Session().IsAnonymous())
}

func TestSessionStore_memoryOnly(t *testing.T) {
	ctx := context.Background()

	// nil storage keeps the store usable without persistence
	s := NewSessionStore(nil)
	require.NoError(t, s.SetSession(ctx, session.Session{AccessToken: "a"}))
	assert.Equal(t, "a", s.Session().AccessToken)
	require.NoError(t, s.Load(ctx))
	require.NoError(t, s.Clear(ctx))
}

func TestSessionStore_subscribe(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore(nil)

	var calls int
	unsubscribe := s.Subscribe(func() { calls++ })

	_ = s.SetSession(ctx, session.Session{AccessToken: "a"})
	_ = s.Clear(ctx)
	assert.Equal(t, 2, calls)

	unsubscribe()
	_ = s.SetSession(ctx, session.Session{AccessToken: "b"})
	assert.Equal(t, 2, calls)
}
