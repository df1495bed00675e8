package services

import (
	"context"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/sha3"

	"fileshare-api/internal/application/ports"
	domain "fileshare-api/internal/domain/user"
	"fileshare-api/internal/infrastructure/mq"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type CredentialService struct {
	userRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewCredentialService(
	userRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &CredentialService{
		userRepository: userRepository,
		mq:             mq,
		mCounter:       mCounter,
	}
}

// userAudit is the event payload; it never carries the salt or hash.
type userAudit struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (cs *CredentialService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	salt := newSalt()

	u, err := cs.userRepository.CreateUser(ctx, domain.User{
		Username:       username,
		Email:          email,
		Salt:           salt,
		HashedPassword: hashPassword(password, salt),
	})
	if err != nil {
		return nil, err
	}

	cs.mq.GetInputChan() <- mq.Event{
		Id:     uuid.New(),
		TS:     time.Now(),
		Action: mq.ActionUserCreated,
		UserID: uint64(u.ID),
		Payload: userAudit{
			ID:       uint64(u.ID),
			Username: u.Username,
			Email:    u.Email,
		},
	}

	cs.mCounter.WithLabelValues("user_registered_total").Inc()

	return u, nil
}

func (cs *CredentialService) Authenticate(ctx context.Context, usernameOrEmail, password string) (*domain.User, error) {
	u, err := cs.userRepository.FetchUserByLogin(ctx, usernameOrEmail)
	if err != nil {
		return nil, err
	}
	if u == nil {
		// same error as a hash mismatch, so usernames cannot be enumerated
		return nil, ErrInvalidCredentials
	}

	if !verifyPassword(password, u.Salt, u.HashedPassword) {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

func (cs *CredentialService) UpdateProfile(ctx context.Context, id domain.ID, username, email string) (*domain.User, error) {
	u, err := cs.userRepository.UpdateUser(ctx, domain.User{
		ID:       id,
		Username: username,
		Email:    email,
	})
	if err != nil {
		return nil, err
	}

	if u != nil {
		cs.mq.GetInputChan() <- mq.Event{
			Id:     uuid.New(),
			TS:     time.Now(),
			Action: mq.ActionUserUpdated,
			UserID: uint64(u.ID),
			Payload: userAudit{
				ID:       uint64(u.ID),
				Username: u.Username,
				Email:    u.Email,
			},
		}

		cs.mCounter.WithLabelValues("user_updated_total").Inc()
	}

	return u, nil
}

func (cs *CredentialService) FindUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	return cs.userRepository.FetchUserByID(ctx, id)
}

// newSalt returns a 128-bit random salt as 32 hex chars, one per user.
func newSalt() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

func hashPassword(password, salt string) string {
	sum := sha3.Sum512([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

func verifyPassword(password, salt, hashed string) bool {
	computed := hashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hashed)) == 1
}
