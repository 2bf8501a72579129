package domain

import "strings"

// UserType is the account tier. It is fixed at signup or invite time.
type UserType string

const (
	UserTypeOwner UserType = "OWNER"
	UserTypeAdmin UserType = "ADMIN"
	UserTypeUser  UserType = "USER"
)

func (t UserType) Valid() bool {
	switch t {
	case UserTypeOwner, UserTypeAdmin, UserTypeUser:
		return true
	}
	return false
}

// ParseUserType maps request input onto the closed set, case-insensitively.
func ParseUserType(s string) (UserType, bool) {
	t := UserType(strings.ToUpper(strings.TrimSpace(s)))
	return t, t.Valid()
}
