package file

import (
	domain "fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/user"
)

func fromDBModel(model *File) *domain.File {
	var f = &domain.File{
		ID:       domain.ID(model.ID),
		Filename: model.Filename,
		Filetype: model.Filetype,
		Category: model.Category,
		Content:  model.Content,
		UserID:   user.ID(model.UserID),
	}

	return f
}

func fromDBModels(models Files) domain.Files {
	fs := make(domain.Files, len(models))
	for idx, f := range models {
		fs[idx] = fromDBModel(f)
	}

	return fs
}

func fromCatalogRow(row *CatalogRow) *domain.CatalogEntry {
	return &domain.CatalogEntry{
		ID:       domain.ID(row.ID),
		Filename: row.Filename,
		Filetype: row.Filetype,
		Category: row.Category,
		UserID:   user.ID(row.UserID),
		Username: row.Username,
	}
}
