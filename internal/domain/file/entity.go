package file

import (
	"fileshare-api/internal/domain/user"
)

type (
	ID   uint64
	File struct {
		ID       ID
		Filename string
		Filetype string
		Category string
		Content  []byte
		UserID   user.ID
	}
	Files []*File

	// CatalogEntry is one row of the paginated catalog: file metadata joined
	// with the owner's username and the voter lists.
	CatalogEntry struct {
		ID         ID
		Filename   string
		Filetype   string
		Category   string
		UserID     user.ID
		Username   string
		VotesCount int
		VoterIDs   []user.ID
		VoterNames []string
	}

	// Page is the result of one catalog query. Entries are ranked by vote
	// count inside this page only, never across pages.
	Page struct {
		Page       int
		PerPage    int
		Total      int
		TotalPages int
		Files      []*CatalogEntry
	}

	// Detail is a single file's catalog view plus the caller's vote state.
	Detail struct {
		CatalogEntry
		Voted bool
	}

	// CatalogQuery carries the catalog filters and the requested page window.
	CatalogQuery struct {
		Filetype *string
		UserID   *user.ID
		Page     int
		PerPage  int
	}

	// UploadInfo is the caller-supplied per-file metadata override.
	UploadInfo struct {
		Filename string
		Category string
	}

	// Uploaded names one successfully stored file of an upload batch.
	Uploaded struct {
		Filename string
		FileID   ID
	}
)
