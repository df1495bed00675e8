package user

type (
	User struct {
		ID               uint64
		Username         string
		Email            string
		Salt             string
		HashedPassword   string
		ProfilePictureID *string
	}
	Users []*User
)
