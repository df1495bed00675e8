package picture

const (
	SelectPictureByID = `
		SELECT id, data, filetype
		FROM picture
		WHERE id = $1
	`
	InsertPicture = `
		INSERT INTO picture (id, data, filetype)
		VALUES ($1, $2, $3)
	`
	UpdateUserProfilePicture = `
		UPDATE users
		SET profile_picture_id = $1
		WHERE id = $2
	`
)
