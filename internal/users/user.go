package users

import (
	"fmt"
	"math/rand/v2"
)

// User is a single registry record.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Age      int    `json:"age"`
	IsActive bool   `json:"isActive"`
}

// Role labels a user's permission level.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
)

// Roles returns every role in declaration order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleUser, RoleModerator}
}

// ParseRole returns the Role named s, or ErrUnknownRole.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles() {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

const (
	minSampleAge   = 18
	sampleAgeRange = 50
)

// NewSampleUser builds a user with a random age in [18, 67] that is active
// roughly four times out of five.
func NewSampleUser(id int, name, email string) User {
	return sampleUser(rand.IntN, rand.Float64, id, name, email)
}

// SampleUserFrom is NewSampleUser drawing from r.
func SampleUserFrom(r *rand.Rand, id int, name, email string) User {
	return sampleUser(r.IntN, r.Float64, id, name, email)
}

func sampleUser(intN func(int) int, float func() float64, id int, name, email string) User {
	return User{
		ID:       id,
		Name:     name,
		Email:    email,
		Age:      intN(sampleAgeRange) + minSampleAge,
		IsActive: float() > 0.2,
	}
}
