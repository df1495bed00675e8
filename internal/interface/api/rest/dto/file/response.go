package file

type (
	CatalogEntry struct {
		ID         uint64   `json:"id"`
		Filename   string   `json:"filename"`
		Filetype   string   `json:"filetype"`
		Category   string   `json:"category"`
		UserID     uint64   `json:"user_id"`
		Username   string   `json:"username"`
		VotesCount int      `json:"votes_count"`
		Voters     []uint64 `json:"voters"`
		VoterNames []string `json:"voternames"`
	}

	PageResponse struct {
		Page       int            `json:"page"`
		PerPage    int            `json:"per_page"`
		Total      int            `json:"total"`
		TotalPages int            `json:"total_pages"`
		Files      []CatalogEntry `json:"files"`
	}

	DetailResponse struct {
		CatalogEntry
		Voted bool `json:"voted"`
	}

	// UserFile is the /api/myfiles entry; it omits username and votes_count
	// like the legacy serialization did.
	UserFile struct {
		ID         uint64   `json:"id"`
		Filename   string   `json:"filename"`
		Filetype   string   `json:"filetype"`
		Category   string   `json:"category"`
		UserID     uint64   `json:"user_id"`
		Voters     []uint64 `json:"voters"`
		VoterNames []string `json:"voternames"`
	}

	UserFilesResponse struct {
		Files []UserFile `json:"files"`
	}

	UploadedFile struct {
		Filename string `json:"filename"`
		FileID   uint64 `json:"file_id"`
	}

	UploadResponse struct {
		Message string         `json:"message"`
		Files   []UploadedFile `json:"files"`
	}

	// UploadInfo is one element of the "files" form field, a JSON array of
	// per-file overrides.
	UploadInfo struct {
		Filename string `json:"filename"`
		Category string `json:"category"`
	}
)
