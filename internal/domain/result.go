package domain

// ReconcileResult is produced once per reconciled member and never persisted.
// Deleted is only set when a non-check-mode removal attempted node cleanup.
type ReconcileResult struct {
	Changed bool  `json:"changed"`
	Deleted *bool `json:"deleted,omitempty"`
}

func (r ReconcileResult) NodeDeleted() (deleted bool, known bool) {
	if r.Deleted == nil {
		return false, false
	}
	return *r.Deleted, true
}
