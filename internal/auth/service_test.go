package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/meridian-erp/meridian-erp/internal/shared"
)

type sessionRecord struct {
	userID    int64
	expiresAt time.Time
}

type memoryAuthRepo struct {
	users    map[string]*User
	sessions map[string]sessionRecord
}

func newMemoryAuthRepo() *memoryAuthRepo {
	return &memoryAuthRepo{
		users:    make(map[string]*User),
		sessions: make(map[string]sessionRecord),
	}
}

func (r *memoryAuthRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return user, nil
}

func (r *memoryAuthRepo) CreateSession(ctx context.Context, id string, userID int64, expiresAt time.Time, ip, ua string) error {
	r.sessions[id] = sessionRecord{userID: userID, expiresAt: expiresAt}
	return nil
}

func (r *memoryAuthRepo) DeleteSession(ctx context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

func (r *memoryAuthRepo) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	var deleted int64
	for id, rec := range r.sessions {
		if rec.expiresAt.Before(time.Now()) {
			delete(r.sessions, id)
			deleted++
		}
	}
	return deleted, nil
}

func seedUser(t *testing.T, repo *memoryAuthRepo, email, password string, active bool) *User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &User{
		ID:           1,
		CompanyID:    4,
		Email:        email,
		Name:         "Test User",
		PasswordHash: string(hash),
		IsActive:     active,
	}
	repo.users[email] = user
	return user
}

func TestAuthenticate(t *testing.T) {
	repo := newMemoryAuthRepo()
	seedUser(t, repo, "user@example.com", "correct horse", true)
	svc := NewService(repo)

	user, err := svc.Authenticate(context.Background(), "user@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, int64(4), user.CompanyID)

	_, err = svc.Authenticate(context.Background(), "user@example.com", "wrong")
	assert.ErrorIs(t, err, shared.ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "nobody@example.com", "correct horse")
	assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestAuthenticateInactiveUser(t *testing.T) {
	repo := newMemoryAuthRepo()
	seedUser(t, repo, "user@example.com", "correct horse", false)
	svc := NewService(repo)

	_, err := svc.Authenticate(context.Background(), "user@example.com", "correct horse")
	assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestSessionLifecycle(t *testing.T) {
	repo := newMemoryAuthRepo()
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.RegisterSession(ctx, "live", 1, time.Now().Add(time.Hour), "127.0.0.1", "test"))
	require.NoError(t, svc.RegisterSession(ctx, "stale", 1, time.Now().Add(-time.Hour), "127.0.0.1", "test"))

	pruned, err := svc.PruneExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pruned)
	assert.Contains(t, repo.sessions, "live")

	require.NoError(t, svc.RemoveSession(ctx, "live"))
	assert.Empty(t, repo.sessions)
}
