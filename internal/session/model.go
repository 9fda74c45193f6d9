package session

import (
	"encoding/json"
	"sort"
)

const RoleAdmin = "Admin"

// RoleSet is the user's role tags as a set with a capability check,
// instead of ad hoc array lookups at every call site.
type RoleSet map[string]struct{}

func NewRoleSet(roles ...string) RoleSet {
	s := make(RoleSet, len(roles))
	for _, r := range roles {
		s[r] = struct{}{}
	}
	return s
}

func (s RoleSet) Has(role string) bool {
	_, ok := s[role]
	return ok
}

func (s RoleSet) MarshalJSON() ([]byte, error) {
	roles := make([]string, 0, len(s))
	for r := range s {
		roles = append(roles, r)
	}
	sort.Strings(roles)
	return json.Marshal(roles)
}

func (s *RoleSet) UnmarshalJSON(data []byte) error {
	var roles []string
	if err := json.Unmarshal(data, &roles); err != nil {
		return err
	}
	*s = NewRoleSet(roles...)
	return nil
}

type User struct {
	ID       int     `json:"id"`
	UserName string  `json:"userName"`
	Email    string  `json:"email"`
	Roles    RoleSet `json:"roles"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Roles.Has(RoleAdmin)
}

// Credentials shapes the login body the way the backend binds it.
type Credentials struct {
	Email    string `json:"Email"`
	Password string `json:"Password"`
}

type RegisterInput struct {
	Username string `json:"Username"`
	Email    string `json:"Email"`
	Password string `json:"Password"`
}
