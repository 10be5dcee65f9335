package domain

// Principal is the resolved actor identity attached to every operation.
// It is produced once at the boundary (strict bearer auth or soft hint
// resolution) and may point at the configured fallback account; nothing
// downstream distinguishes how it was resolved.
type Principal struct {
	UserID uint64
}
