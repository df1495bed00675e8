package user

const (
	SelectUserByID = `
		SELECT id, username, email, salt, hashed_password, profile_picture_id
		FROM users
		WHERE id = $1
	`
	SelectUserByUsername = `
		SELECT id, username, email, salt, hashed_password, profile_picture_id
		FROM users
		WHERE username = $1
	`
	SelectUserByLogin = `
		SELECT id, username, email, salt, hashed_password, profile_picture_id
		FROM users
		WHERE username = $1 OR email = $1
	`
	InsertUser = `
		INSERT INTO users (username, email, salt, hashed_password)
		VALUES ($1, $2, $3, $4)
		RETURNING
		  id, username, email, salt, hashed_password, profile_picture_id
	`
	UpdateUserByID = `
		UPDATE users
		SET username = $1,
		    email = $2
		WHERE id = $3
		RETURNING
		  id, username, email, salt, hashed_password, profile_picture_id
	`
)
