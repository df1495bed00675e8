package user

type (
	ID   uint64
	User struct {
		ID             ID
		Username       string
		Email          string
		Salt           string
		HashedPassword string

		// References a picture row; nil until the user sets one.
		ProfilePictureID *string
	}
	Users []*User
)
