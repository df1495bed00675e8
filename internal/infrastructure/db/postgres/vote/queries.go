package vote

const (
	UserExists = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
	FileExists = `SELECT EXISTS (SELECT 1 FROM file WHERE id = $1)`

	InsertVote = `
		INSERT INTO file_vote (file_id, user_id)
		VALUES ($1, $2)
	`
	DeleteVote = `
		DELETE FROM file_vote
		WHERE file_id = $1 AND user_id = $2
	`
	CountVoters = `
		SELECT COUNT(*)
		FROM file_vote
		WHERE file_id = $1
	`
	SelectVoterIDs = `
		SELECT user_id
		FROM file_vote
		WHERE file_id = $1
	`
	SelectVoterNames = `
		SELECT u.username
		FROM file_vote fv
		JOIN users u ON u.id = fv.user_id
		WHERE fv.file_id = $1
	`
)
