package profile

import (
	"errors"
	"fmt"
	"strings"
)

// Role identifies which side of the job market the current user is on.
type Role string

const (
	RoleJobSeeker Role = "jobSeeker"
	RoleRecruiter Role = "recruiter"
)

var (
	ErrDisplayNameRequired = errors.New("display name is required")
	ErrUnknownRole         = errors.New("unknown role")
)

// Roles lists every role the assistant knows how to advise.
func Roles() []Role {
	return []Role{RoleJobSeeker, RoleRecruiter}
}

// ParseRole normalizes the wire representation of a role.
func ParseRole(raw string) (Role, error) {
	switch strings.TrimSpace(raw) {
	case string(RoleJobSeeker):
		return RoleJobSeeker, nil
	case string(RoleRecruiter):
		return RoleRecruiter, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownRole, raw)
	}
}

// Label returns the human-readable name shown in the UI.
func (r Role) Label() string {
	switch r {
	case RoleRecruiter:
		return "Recruiter"
	default:
		return "Job Seeker"
	}
}

// Valid reports whether the role is one the assistant supports.
func (r Role) Valid() bool {
	return r == RoleJobSeeker || r == RoleRecruiter
}

// Profile carries the session context handed over by the host platform's
// auth layer: who is chatting and in which capacity.
type Profile struct {
	DisplayName string `json:"displayName"`
	Role        Role   `json:"role"`
}

// Validate checks that the profile is complete enough to start a session.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.DisplayName) == "" {
		return ErrDisplayNameRequired
	}
	if !p.Role.Valid() {
		return fmt.Errorf("%w %q", ErrUnknownRole, p.Role)
	}
	return nil
}
