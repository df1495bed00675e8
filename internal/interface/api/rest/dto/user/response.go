package user

type (
	User struct {
		ID       uint64  `json:"id"`
		Username string  `json:"username"`
		Email    string  `json:"email"`
		Picture  *string `json:"picture"`
	}

	RegisterRequest struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	UpdateRequest struct {
		ID       uint64 `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}

	// CheckLogin mirrors the legacy shape: User is the user object when
	// logged in and the empty string otherwise.
	CheckLogin struct {
		LoggedIn bool `json:"logged_in"`
		User     any  `json:"user"`
	}
)
