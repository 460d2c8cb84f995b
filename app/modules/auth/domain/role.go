package authdomain

// Role is a member's role within their club.
type Role string

const (
	RoleViewer Role = "viewer"
	RolePlayer Role = "player"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

// IsValid checks if the role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RolePlayer, RoleEditor, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanRecordFor reports whether a member with this role may record a round
// for someone else. Players record only their own rounds; viewers none.
func (r Role) CanRecordFor(self, playerID string) bool {
	switch r {
	case RoleEditor, RoleAdmin:
		return true
	case RolePlayer:
		return self == playerID
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}
