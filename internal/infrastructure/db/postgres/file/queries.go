package file

const (
	InsertFile = `
		INSERT INTO file (filename, filetype, category, content, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	SelectFileMeta = `
		SELECT id, filename, filetype, category, user_id
		FROM file
		WHERE id = $1
	`
	SelectFileContent = `
		SELECT id, filename, filetype, category, content, user_id
		FROM file
		WHERE id = $1
	`
	SelectUserFiles = `
		SELECT id, filename, filetype, category, user_id
		FROM file
		WHERE user_id = $1
		ORDER BY id
	`
	CountFiles = `
		SELECT COUNT(*)
		FROM file
		WHERE ($1::text IS NULL OR filetype = $1)
		  AND ($2::bigint IS NULL OR user_id = $2)
	`
	SelectCatalogPage = `
		SELECT f.id, f.filename, f.filetype, f.category, f.user_id, u.username
		FROM file f
		JOIN users u ON u.id = f.user_id
		WHERE ($1::text IS NULL OR f.filetype = $1)
		  AND ($2::bigint IS NULL OR f.user_id = $2)
		ORDER BY f.id
		LIMIT $3 OFFSET $4
	`
)
