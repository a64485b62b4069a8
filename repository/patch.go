package repository

// apply copies a patch field onto the record when the field is present.
// Every Update builds on this one merge helper, so absent fields are never
// touched and reapplying the same patch is idempotent.
func apply[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
