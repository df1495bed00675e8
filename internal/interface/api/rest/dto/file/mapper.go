package file

import (
	domain "fileshare-api/internal/domain/file"
)

func ToResponseEntry(e domain.CatalogEntry) CatalogEntry {
	return CatalogEntry{
		ID:         uint64(e.ID),
		Filename:   e.Filename,
		Filetype:   e.Filetype,
		Category:   e.Category,
		UserID:     uint64(e.UserID),
		Username:   e.Username,
		VotesCount: e.VotesCount,
		Voters:     toIDs(e.VoterIDs),
		VoterNames: e.VoterNames,
	}
}

func ToResponsePage(p domain.Page) PageResponse {
	files := make([]CatalogEntry, len(p.Files))
	for idx, e := range p.Files {
		files[idx] = ToResponseEntry(*e)
	}

	return PageResponse{
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      p.Total,
		TotalPages: p.TotalPages,
		Files:      files,
	}
}

func ToResponseDetail(d domain.Detail) DetailResponse {
	return DetailResponse{
		CatalogEntry: ToResponseEntry(d.CatalogEntry),
		Voted:        d.Voted,
	}
}

func ToResponseUserFiles(entries []*domain.CatalogEntry) UserFilesResponse {
	files := make([]UserFile, len(entries))
	for idx, e := range entries {
		files[idx] = UserFile{
			ID:         uint64(e.ID),
			Filename:   e.Filename,
			Filetype:   e.Filetype,
			Category:   e.Category,
			UserID:     uint64(e.UserID),
			Voters:     toIDs(e.VoterIDs),
			VoterNames: e.VoterNames,
		}
	}

	return UserFilesResponse{Files: files}
}

func ToResponseUploaded(stored []domain.Uploaded) []UploadedFile {
	files := make([]UploadedFile, len(stored))
	for idx, s := range stored {
		files[idx] = UploadedFile{
			Filename: s.Filename,
			FileID:   uint64(s.FileID),
		}
	}

	return files
}

func ToDomainInfos(infos []UploadInfo) []domain.UploadInfo {
	out := make([]domain.UploadInfo, len(infos))
	for idx, i := range infos {
		out[idx] = domain.UploadInfo{
			Filename: i.Filename,
			Category: i.Category,
		}
	}

	return out
}

func toIDs[T ~uint64](ids []T) []uint64 {
	out := make([]uint64, len(ids))
	for idx, id := range ids {
		out[idx] = uint64(id)
	}
	return out
}
