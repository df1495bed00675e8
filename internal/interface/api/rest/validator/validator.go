package validator

import (
	"errors"
	"strconv"
	"strings"

	"fileshare-api/internal/interface/api/rest/dto/user"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
)

// ValidatePage rejects non-numeric input only. Non-positive values pass
// through; the catalog clamps them to the first page instead of erroring.
func ValidatePage(page, perPage string) (int, int, error) {
	p, err := intOrDefault(page, defaultPage)
	if err != nil {
		return 0, 0, errors.New("invalid page")
	}
	pp, err := intOrDefault(perPage, defaultPerPage)
	if err != nil {
		return 0, 0, errors.New("invalid per_page")
	}

	return p, pp, nil
}

func intOrDefault(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

func ParseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("must be a positive integer id")
	}
	return id, nil
}

func ValidateRegister(r user.RegisterRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		errs["username"] = "username is required"
	}
	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = "email is required"
	}
	if r.Password == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateUpdate(r user.UpdateRequest) map[string]string {
	errs := make(map[string]string)

	if r.ID == 0 {
		errs["id"] = "id is required"
	}
	if strings.TrimSpace(r.Username) == "" {
		errs["username"] = "username is required"
	}
	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = "email is required"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}
