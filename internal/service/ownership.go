package service

// AuthorizeOwner is the ownership guard shared by every resource type: it
// decides whether actor may mutate a record whose stored owner is owner.
// It is a pure comparison with no side effects.
//
// Deny-by-default: a nil or empty stored owner denies everyone, and an empty
// actor identity is never authorized.
func AuthorizeOwner(actor string, owner *string) error {
	if actor == "" {
		return ErrNotRecordOwner
	}
	if owner == nil || *owner == "" {
		return ErrNotRecordOwner
	}
	if actor != *owner {
		return ErrNotRecordOwner
	}
	return nil
}
