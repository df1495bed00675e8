package services

import (
	"context"
	"io"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"fileshare-api/internal/application/ports"
	domain "fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/picture"
	"fileshare-api/internal/domain/user"
	"fileshare-api/internal/domain/vote"
	"fileshare-api/internal/infrastructure/mq"
)

const maxFileNameLen = 100

// Extensions accepted for upload. Anything else is skipped, not fatal.
var allowedExtensions = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {}, "gif": {},
	"mp4": {}, "avi": {}, "mov": {},
}

type FileService struct {
	fileRepository    domain.Repository
	pictureRepository picture.Repository
	voteRepository    vote.Repository
	mq                ports.RabbitMQ
	mCounter          *prometheus.CounterVec
}

func NewFileService(
	fileRepository domain.Repository,
	pictureRepository picture.Repository,
	voteRepository vote.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.FileService {
	return &FileService{
		fileRepository:    fileRepository,
		pictureRepository: pictureRepository,
		voteRepository:    voteRepository,
		mq:                mq,
		mCounter:          mCounter,
	}
}

func (fs *FileService) Upload(
	ctx context.Context,
	ownerID user.ID,
	uploads []*multipart.FileHeader,
	infos []domain.UploadInfo,
	defaultCategory string,
) ([]domain.Uploaded, error) {
	var batch domain.Files

	for i, fh := range uploads {
		if !allowedFile(fh.Filename) {
			continue
		}

		var info domain.UploadInfo
		if i < len(infos) {
			info = infos[i]
		}

		name := strings.TrimSpace(info.Filename)
		if name == "" {
			name = fh.Filename
		}
		category := strings.TrimSpace(info.Category)
		if category == "" {
			category = defaultCategory
		}

		content, err := readAll(fh)
		if err != nil {
			return nil, err
		}

		batch = append(batch, &domain.File{
			Filename: filepath.Base(sanitizeFileName(name)),
			Filetype: fh.Header.Get("Content-Type"),
			Category: category,
			Content:  content,
			UserID:   ownerID,
		})
	}

	stored := make([]domain.Uploaded, 0, len(batch))
	if len(batch) > 0 {
		files, err := fs.fileRepository.CreateFiles(ctx, batch)
		if err != nil {
			return nil, err
		}

		for _, f := range files {
			stored = append(stored, domain.Uploaded{
				Filename: f.Filename,
				FileID:   f.ID,
			})

			fs.mq.GetInputChan() <- mq.Event{
				Id:     uuid.New(),
				TS:     time.Now(),
				Action: mq.ActionFileUploaded,
				UserID: uint64(ownerID),
				Payload: map[string]any{
					"file_id":  uint64(f.ID),
					"filename": f.Filename,
					"filetype": f.Filetype,
				},
			}

			fs.mCounter.WithLabelValues("files_uploaded_total").Inc()
		}
	}

	return stored, nil
}

func (fs *FileService) Download(ctx context.Context, id domain.ID) (*domain.File, error) {
	return fs.fileRepository.FetchFileContent(ctx, id)
}

func (fs *FileService) UserFiles(ctx context.Context, userID user.ID) ([]*domain.CatalogEntry, error) {
	files, err := fs.fileRepository.FetchUserFiles(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.CatalogEntry, 0, len(files))
	for _, f := range files {
		ids, err := fs.voteRepository.ListVoterIDs(ctx, f.ID)
		if err != nil {
			return nil, err
		}
		names, err := fs.voteRepository.ListVoterNames(ctx, f.ID)
		if err != nil {
			return nil, err
		}

		entries = append(entries, &domain.CatalogEntry{
			ID:         f.ID,
			Filename:   f.Filename,
			Filetype:   f.Filetype,
			Category:   f.Category,
			UserID:     f.UserID,
			VotesCount: len(ids),
			VoterIDs:   ids,
			VoterNames: names,
		})
	}

	return entries, nil
}

func (fs *FileService) SetProfilePicture(ctx context.Context, userID user.ID, data []byte, mimetype string) (*picture.Picture, error) {
	p, err := fs.pictureRepository.AttachToUser(ctx, userID, picture.Picture{
		ID:       uuid.New().String(),
		Data:     data,
		Filetype: mimetype,
	})
	if err != nil {
		return nil, err
	}

	fs.mCounter.WithLabelValues("profile_pictures_set_total").Inc()

	return p, nil
}

func (fs *FileService) Picture(ctx context.Context, id string) (*picture.Picture, error) {
	return fs.pictureRepository.FetchPicture(ctx, id)
}

func allowedFile(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return false
	}
	_, ok := allowedExtensions[ext]
	return ok
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// sanitizeFileName makes the name ASCII and strips anything that could be
// used for path traversal.
func sanitizeFileName(original string) string {
	if original == "" {
		return "file"
	}

	s := strings.TrimSpace(original)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)

	if s == "." || s == ".." || s == "" {
		return "file"
	}

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	s, _, _ = transform.String(t, s)

	ext := path.Ext(s)
	base := strings.TrimSuffix(s, ext)
	ext = strings.ToLower(ext)

	var b strings.Builder
	b.Grow(len(base))
	prevDash := false
	for _, r := range base {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			prevDash = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
			prevDash = false
		case r == '-' || r == '_':
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		case r == '.' || unicode.IsSpace(r):
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		default:
		}
	}
	base = strings.Trim(b.String(), "-")

	if base == "" {
		base = "file"
	}
	if len(base)+len(ext) > maxFileNameLen {
		base = base[:maxFileNameLen-len(ext)]
	}

	return base + ext
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }
