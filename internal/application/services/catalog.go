package services

import (
	"context"
	"sort"

	"fileshare-api/internal/application/ports"
	domain "fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/user"
	"fileshare-api/internal/domain/vote"
)

const defaultPerPage = 10

type CatalogService struct {
	fileRepository domain.Repository
	userRepository user.Repository
	voteRepository vote.Repository
}

func NewCatalogService(
	fileRepository domain.Repository,
	userRepository user.Repository,
	voteRepository vote.Repository,
) ports.CatalogService {
	return &CatalogService{
		fileRepository: fileRepository,
		userRepository: userRepository,
		voteRepository: voteRepository,
	}
}

func (cs *CatalogService) List(ctx context.Context, q domain.CatalogQuery) (*domain.Page, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = defaultPerPage
	}

	filter := domain.Filter{Filetype: q.Filetype, UserID: q.UserID}

	total, err := cs.fileRepository.CountFiles(ctx, filter)
	if err != nil {
		return nil, err
	}

	entries, err := cs.fileRepository.FetchCatalogPage(ctx, filter, q.PerPage, (q.Page-1)*q.PerPage)
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		if err = cs.fillVotes(ctx, e); err != nil {
			return nil, err
		}
	}

	// Ranking is applied to this page only. Items on other pages may carry
	// higher counts; that is the documented behavior, not an oversight.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].VotesCount > entries[j].VotesCount
	})

	return &domain.Page{
		Page:       q.Page,
		PerPage:    q.PerPage,
		Total:      total,
		TotalPages: (total + q.PerPage - 1) / q.PerPage,
		Files:      entries,
	}, nil
}

func (cs *CatalogService) Detail(ctx context.Context, id domain.ID, caller *user.ID) (*domain.Detail, error) {
	f, err := cs.fileRepository.FetchFile(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}

	entry := &domain.CatalogEntry{
		ID:       f.ID,
		Filename: f.Filename,
		Filetype: f.Filetype,
		Category: f.Category,
		UserID:   f.UserID,
	}
	if err = cs.fillVotes(ctx, entry); err != nil {
		return nil, err
	}

	owner, err := cs.userRepository.FetchUserByID(ctx, f.UserID)
	if err != nil {
		return nil, err
	}
	if owner != nil {
		entry.Username = owner.Username
	}

	d := &domain.Detail{CatalogEntry: *entry}
	if caller != nil {
		for _, id := range entry.VoterIDs {
			if id == *caller {
				d.Voted = true
				break
			}
		}
	}

	return d, nil
}

func (cs *CatalogService) fillVotes(ctx context.Context, e *domain.CatalogEntry) error {
	ids, err := cs.voteRepository.ListVoterIDs(ctx, e.ID)
	if err != nil {
		return err
	}
	names, err := cs.voteRepository.ListVoterNames(ctx, e.ID)
	if err != nil {
		return err
	}

	e.VoterIDs = ids
	e.VoterNames = names
	e.VotesCount = len(ids)

	return nil
}
