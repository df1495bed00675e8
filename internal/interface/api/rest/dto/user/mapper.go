package user

import (
	"fileshare-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:       uint64(uDomain.ID),
		Username: uDomain.Username,
		Email:    uDomain.Email,
		Picture:  uDomain.ProfilePictureID,
	}

	return u
}
