package common

// bid statuses
const (
	Pending  = "pending"
	Accepted = "accepted"
	Rejected = "rejected"
)

// import modes
const (
	// ModeReplace treats the batch as ground truth: persisted jobs whose
	// key is absent from the batch are deleted.
	ModeReplace = "replace"
	// ModeMerge only inserts and updates; nothing is deleted.
	ModeMerge = "merge"
)

func IsBidStatus(s string) bool {
	return s == Pending || s == Accepted || s == Rejected
}

func IsImportMode(s string) bool {
	return s == ModeReplace || s == ModeMerge
}
