package session

const (
	InsertSession = `
		INSERT INTO sessions (session_token, username)
		VALUES ($1, $2)
		RETURNING id, session_token, username
	`
	SelectSessionByToken = `
		SELECT id, session_token, username
		FROM sessions
		WHERE session_token = $1
	`
	DeleteSessionByToken = `
		DELETE FROM sessions
		WHERE session_token = $1
	`
)
