// Package vote is the ledger of who voted for which file. The relation is
// only reachable through add/remove/count/list so the one-vote-per-pair
// invariant cannot be bypassed.
package vote

import (
	"context"

	"fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/user"
)

type Repository interface {
	// AddVote checks that both endpoints exist and inserts the ledger row in
	// the same transaction. The composite primary key makes concurrent
	// duplicates impossible regardless of the check.
	AddVote(ctx context.Context, userID user.ID, fileID file.ID) error
	RemoveVote(ctx context.Context, userID user.ID, fileID file.ID) error
	CountVoters(ctx context.Context, fileID file.ID) (int, error)
	ListVoterIDs(ctx context.Context, fileID file.ID) ([]user.ID, error)
	ListVoterNames(ctx context.Context, fileID file.ID) ([]string, error)
}
