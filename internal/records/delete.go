package records

// Two-phase delete: a delete request parks the target id until the user
// either confirms or cancels. The view itself never deletes anything; on
// confirm it hands the id back to the caller, which owns the mutation.

// RequestDelete marks a record as pending deletion.
func (v *View) RequestDelete(id string) {
	v.pendingDelete = id
}

// PendingDelete returns the id awaiting confirmation, if any.
func (v *View) PendingDelete() (string, bool) {
	return v.pendingDelete, v.pendingDelete != ""
}

// ConfirmDelete clears the pending state and returns the target id. The
// second return is false when no delete was pending.
func (v *View) ConfirmDelete() (string, bool) {
	id := v.pendingDelete
	v.pendingDelete = ""
	return id, id != ""
}

// CancelDelete clears the pending state without acting on it.
func (v *View) CancelDelete() {
	v.pendingDelete = ""
}
