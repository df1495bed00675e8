package user

import (
	domain "fileshare-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:               domain.ID(model.ID),
		Username:         model.Username,
		Email:            model.Email,
		Salt:             model.Salt,
		HashedPassword:   model.HashedPassword,
		ProfilePictureID: model.ProfilePictureID,
	}

	return u
}
