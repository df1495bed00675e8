package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"

	"fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/picture"
	"fileshare-api/internal/domain/session"
	"fileshare-api/internal/domain/user"
	"fileshare-api/internal/infrastructure/mq"
)

// Per-method function fields so each test overrides only what it calls.
// A nil field means the method reports nothing found.

type fakeUserRepo struct {
	fetchByID       func(ctx context.Context, id user.ID) (*user.User, error)
	fetchByUsername func(ctx context.Context, username string) (*user.User, error)
	fetchByLogin    func(ctx context.Context, login string) (*user.User, error)
	create          func(ctx context.Context, req user.User) (*user.User, error)
	update          func(ctx context.Context, req user.User) (*user.User, error)
}

func (f *fakeUserRepo) FetchUserByID(ctx context.Context, id user.ID) (*user.User, error) {
	if f.fetchByID == nil {
		return nil, nil
	}
	return f.fetchByID(ctx, id)
}

func (f *fakeUserRepo) FetchUserByUsername(ctx context.Context, username string) (*user.User, error) {
	if f.fetchByUsername == nil {
		return nil, nil
	}
	return f.fetchByUsername(ctx, username)
}

func (f *fakeUserRepo) FetchUserByLogin(ctx context.Context, login string) (*user.User, error) {
	if f.fetchByLogin == nil {
		return nil, nil
	}
	return f.fetchByLogin(ctx, login)
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	return f.create(ctx, req)
}

func (f *fakeUserRepo) UpdateUser(ctx context.Context, req user.User) (*user.User, error) {
	return f.update(ctx, req)
}

type fakeSessionRepo struct {
	sessions map[string]string
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]string)}
}

func (f *fakeSessionRepo) CreateSession(_ context.Context, token, username string) (*session.Session, error) {
	f.sessions[token] = username
	return &session.Session{Token: token, Username: username}, nil
}

func (f *fakeSessionRepo) FetchByToken(_ context.Context, token string) (*session.Session, error) {
	username, ok := f.sessions[token]
	if !ok {
		return nil, nil
	}
	return &session.Session{Token: token, Username: username}, nil
}

func (f *fakeSessionRepo) DeleteByToken(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

type fakeFileRepo struct {
	createFiles      func(ctx context.Context, files file.Files) (file.Files, error)
	fetchFile        func(ctx context.Context, id file.ID) (*file.File, error)
	fetchContent     func(ctx context.Context, id file.ID) (*file.File, error)
	fetchUserFiles   func(ctx context.Context, userID user.ID) (file.Files, error)
	countFiles       func(ctx context.Context, f file.Filter) (int, error)
	fetchCatalogPage func(ctx context.Context, f file.Filter, limit, offset int) ([]*file.CatalogEntry, error)
}

func (f *fakeFileRepo) CreateFiles(ctx context.Context, files file.Files) (file.Files, error) {
	return f.createFiles(ctx, files)
}

func (f *fakeFileRepo) FetchFile(ctx context.Context, id file.ID) (*file.File, error) {
	if f.fetchFile == nil {
		return nil, nil
	}
	return f.fetchFile(ctx, id)
}

func (f *fakeFileRepo) FetchFileContent(ctx context.Context, id file.ID) (*file.File, error) {
	if f.fetchContent == nil {
		return nil, nil
	}
	return f.fetchContent(ctx, id)
}

func (f *fakeFileRepo) FetchUserFiles(ctx context.Context, userID user.ID) (file.Files, error) {
	if f.fetchUserFiles == nil {
		return nil, nil
	}
	return f.fetchUserFiles(ctx, userID)
}

func (f *fakeFileRepo) CountFiles(ctx context.Context, flt file.Filter) (int, error) {
	return f.countFiles(ctx, flt)
}

func (f *fakeFileRepo) FetchCatalogPage(ctx context.Context, flt file.Filter, limit, offset int) ([]*file.CatalogEntry, error) {
	return f.fetchCatalogPage(ctx, flt, limit, offset)
}

type fakeVoteRepo struct {
	addVote    func(ctx context.Context, userID user.ID, fileID file.ID) error
	removeVote func(ctx context.Context, userID user.ID, fileID file.ID) error
	voterIDs   map[file.ID][]user.ID
	voterNames map[file.ID][]string
}

func (f *fakeVoteRepo) AddVote(ctx context.Context, userID user.ID, fileID file.ID) error {
	return f.addVote(ctx, userID, fileID)
}

func (f *fakeVoteRepo) RemoveVote(ctx context.Context, userID user.ID, fileID file.ID) error {
	return f.removeVote(ctx, userID, fileID)
}

func (f *fakeVoteRepo) CountVoters(_ context.Context, fileID file.ID) (int, error) {
	return len(f.voterIDs[fileID]), nil
}

func (f *fakeVoteRepo) ListVoterIDs(_ context.Context, fileID file.ID) ([]user.ID, error) {
	return f.voterIDs[fileID], nil
}

func (f *fakeVoteRepo) ListVoterNames(_ context.Context, fileID file.ID) ([]string, error) {
	return f.voterNames[fileID], nil
}

type fakePictureRepo struct {
	pictures map[string]*picture.Picture
}

func newFakePictureRepo() *fakePictureRepo {
	return &fakePictureRepo{pictures: make(map[string]*picture.Picture)}
}

func (f *fakePictureRepo) FetchPicture(_ context.Context, id string) (*picture.Picture, error) {
	return f.pictures[id], nil
}

func (f *fakePictureRepo) AttachToUser(_ context.Context, _ user.ID, req picture.Picture) (*picture.Picture, error) {
	p := req
	f.pictures[p.ID] = &p
	return &p, nil
}

// fakeMQ buffers published events so tests can assert on them.
type fakeMQ struct {
	events chan mq.Event
}

func newFakeMQ() *fakeMQ {
	return &fakeMQ{events: make(chan mq.Event, 16)}
}

func (f *fakeMQ) Connect(context.Context, string) error { return nil }
func (f *fakeMQ) Init() error                           { return nil }
func (f *fakeMQ) PublisherWorker(context.Context)       {}
func (f *fakeMQ) GetInputChan() chan mq.Event           { return f.events }
func (f *fakeMQ) GetConn() *amqp091.Connection          { return nil }

func (f *fakeMQ) drain() []mq.Event {
	var out []mq.Event
	for {
		select {
		case e := <-f.events:
			out = append(out, e)
		default:
			return out
		}
	}
}

func testCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "test", Name: "general_counters"},
		[]string{"result"},
	)
}
