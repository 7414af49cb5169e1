package domain

// ID is used across domain entities.
type ID int64

// Role is the role marker carried by an authenticated identity.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// PrincipalKind selects one of the two credential spaces.
type PrincipalKind string

const (
	KindUser  PrincipalKind = "user"
	KindAdmin PrincipalKind = "admin"
)

// ParseKind maps free-form input to a kind, defaulting to KindUser.
func ParseKind(s string) PrincipalKind {
	if PrincipalKind(s) == KindAdmin {
		return KindAdmin
	}
	return KindUser
}

// DefaultRole is the role assigned to new principals of the kind.
func (k PrincipalKind) DefaultRole() Role {
	if k == KindAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// Identity is the per-request authenticated subject.
// The zero value is an anonymous visitor.
type Identity struct {
	SubjectID ID   `json:"subjectId"`
	Role      Role `json:"role"`
}

func (i Identity) Authenticated() bool {
	return i.SubjectID > 0 && i.Role != ""
}

func (i Identity) IsUser() bool {
	return i.SubjectID > 0 && i.Role == RoleUser
}

func (i Identity) IsAdmin() bool {
	return i.SubjectID > 0 && i.Role == RoleAdmin
}

// Kind returns the credential space the identity belongs to.
func (i Identity) Kind() PrincipalKind {
	if i.Role == RoleAdmin {
		return KindAdmin
	}
	return KindUser
}
