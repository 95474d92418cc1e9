package model

// UserProfile represents an entry in the fixed user directory. Profiles are not
// created or destroyed at runtime; login only selects one for the session.
type UserProfile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// Roles.
const (
	RoleInputter      = "INPUTTER"
	RoleMakerApprover = "MAKER_APPROVER"
	RoleChecker       = "CHECKER"
)

// Operations gated by role. Every privileged API entry point consults Allowed
// with one of these instead of comparing user ids inline.
const (
	OpManageItems = "manage_items"
	OpRecordTx    = "record_tx"
	OpApprove     = "approve"
	OpDelete      = "delete"
)

// Allowed reports whether role may perform op.
func Allowed(role, op string) bool {
	switch op {
	case OpManageItems, OpRecordTx:
		return role == RoleInputter
	case OpApprove:
		return role == RoleMakerApprover || role == RoleChecker
	case OpDelete:
		return role == RoleChecker
	}
	return false
}

// AutoApproves reports whether items created by role skip the PENDING state.
// Approver roles are treated as pre-authorized to self-approve.
func AutoApproves(role string) bool {
	return role == RoleMakerApprover || role == RoleChecker
}
