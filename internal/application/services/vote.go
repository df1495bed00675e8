package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"fileshare-api/internal/application/ports"
	"fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/user"
	"fileshare-api/internal/domain/vote"
	"fileshare-api/internal/infrastructure/mq"
)

type VoteService struct {
	voteRepository vote.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewVoteService(
	voteRepository vote.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.VoteService {
	return &VoteService{
		voteRepository: voteRepository,
		mq:             mq,
		mCounter:       mCounter,
	}
}

func (vs *VoteService) Add(ctx context.Context, userID user.ID, fileID file.ID) error {
	if err := vs.voteRepository.AddVote(ctx, userID, fileID); err != nil {
		return err
	}

	vs.publish(mq.ActionVoteAdded, userID, fileID)
	vs.mCounter.WithLabelValues("votes_added_total").Inc()

	return nil
}

func (vs *VoteService) Remove(ctx context.Context, userID user.ID, fileID file.ID) error {
	if err := vs.voteRepository.RemoveVote(ctx, userID, fileID); err != nil {
		return err
	}

	vs.publish(mq.ActionVoteRemoved, userID, fileID)
	vs.mCounter.WithLabelValues("votes_removed_total").Inc()

	return nil
}

func (vs *VoteService) publish(action string, userID user.ID, fileID file.ID) {
	vs.mq.GetInputChan() <- mq.Event{
		Id:     uuid.New(),
		TS:     time.Now(),
		Action: action,
		UserID: uint64(userID),
		Payload: map[string]any{
			"file_id": uint64(fileID),
		},
	}
}
