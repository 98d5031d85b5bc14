package store

// ErrorClassification is the category of a failed database operation as seen
// by the repositories.
type ErrorClassification int

const (
	// Unclassified covers everything the repositories do not react to.
	Unclassified ErrorClassification = iota

	// UniqueViolation means a unique index rejected the row.
	UniqueViolation

	// ForeignKeyViolation means a referenced row does not exist.
	ForeignKeyViolation

	// Retryable means the operation may succeed if attempted again
	// (connection loss, serialization failure, busy database).
	Retryable
)

func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case ForeignKeyViolation:
		return "foreign_key_violation"
	case Retryable:
		return "retryable"
	default:
		return "unclassified"
	}
}
