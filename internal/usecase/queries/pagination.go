package queries

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
)

type Page struct {
	Limit  int
	Offset int
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

func ValidateOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
