package model

import "fmt"

// TenantContext is the caller's currently-selected structure scope. It is
// derived per request and never persisted; the zero value means "all
// structures" (anonymous).
type TenantContext struct {
	StructureID   string `json:"structure_id"`
	StructureName string `json:"structure_name"`
	UserName      string `json:"user_name"`
}

// Active reports whether a structure scope is selected.
func (t TenantContext) Active() bool {
	return t.StructureID != ""
}

// Filter returns the engine filter expression restricting user visibility to
// the selected structure, or "" when no scope is active.
func (t TenantContext) Filter() string {
	if !t.Active() {
		return ""
	}
	return fmt.Sprintf("structure_id = %q", t.StructureID)
}
