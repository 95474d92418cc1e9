package model

import "testing"

func TestAllowed(t *testing.T) {
	tests := []struct {
		role string
		op   string
		want bool
	}{
		{RoleInputter, OpManageItems, true},
		{RoleInputter, OpRecordTx, true},
		{RoleInputter, OpApprove, false},
		{RoleInputter, OpDelete, false},
		{RoleMakerApprover, OpApprove, true},
		{RoleMakerApprover, OpManageItems, false},
		{RoleMakerApprover, OpDelete, false},
		{RoleChecker, OpApprove, true},
		{RoleChecker, OpDelete, true},
		{RoleChecker, OpRecordTx, false},
		{"", OpManageItems, false},
		{RoleChecker, "unknown_op", false},
	}

	for _, tt := range tests {
		if got := Allowed(tt.role, tt.op); got != tt.want {
			t.Errorf("Allowed(%q, %q) = %v, want %v", tt.role, tt.op, got, tt.want)
		}
	}
}

func TestAutoApproves(t *testing.T) {
	if AutoApproves(RoleInputter) {
		t.Error("inputter should not auto-approve")
	}
	if !AutoApproves(RoleMakerApprover) {
		t.Error("maker/approver should auto-approve")
	}
	if !AutoApproves(RoleChecker) {
		t.Error("checker should auto-approve")
	}
}
