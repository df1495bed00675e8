package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"fileshare-api/internal/application/ports"
	"fileshare-api/internal/domain/session"
	"fileshare-api/internal/domain/user"
)

type SessionService struct {
	sessionRepository session.Repository
	userRepository    user.Repository
	mCounter          *prometheus.CounterVec
}

func NewSessionService(
	sessionRepository session.Repository,
	userRepository user.Repository,
	mCounter *prometheus.CounterVec,
) ports.SessionService {
	return &SessionService{
		sessionRepository: sessionRepository,
		userRepository:    userRepository,
		mCounter:          mCounter,
	}
}

func (ss *SessionService) Create(ctx context.Context, u *user.User) (string, error) {
	token := newToken()

	if _, err := ss.sessionRepository.CreateSession(ctx, token, u.Username); err != nil {
		return "", err
	}

	ss.mCounter.WithLabelValues("session_created_total").Inc()

	return token, nil
}

func (ss *SessionService) Resolve(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		return nil, nil
	}

	s, err := ss.sessionRepository.FetchByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}

	// A session whose user vanished is invalid, not an error.
	u, err := ss.userRepository.FetchUserByUsername(ctx, s.Username)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (ss *SessionService) Destroy(ctx context.Context, token string) error {
	if err := ss.sessionRepository.DeleteByToken(ctx, token); err != nil {
		return err
	}

	ss.mCounter.WithLabelValues("session_destroyed_total").Inc()

	return nil
}

// newToken returns a 128-bit opaque token as 32 hex chars. It carries no user
// data by construction.
func newToken() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
