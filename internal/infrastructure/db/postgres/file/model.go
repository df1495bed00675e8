package file

type (
	File struct {
		ID       uint64
		Filename string
		Filetype string
		Category string
		Content  []byte
		UserID   uint64
	}
	Files []*File

	CatalogRow struct {
		ID       uint64
		Filename string
		Filetype string
		Category string
		UserID   uint64
		Username string
	}
)
