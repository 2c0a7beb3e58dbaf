package entitlement

import "errors"

var ErrInvalidSource = errors.New("invalid entitlement source")

// Source identifies where a usage right comes from. Precedence when several
// cover the same service: direct grant, then purchased package, then
// membership tier.
type Source string

const (
	SourceDirect     Source = "direct"
	SourcePackage    Source = "package"
	SourceMembership Source = "membership"
)

func NewSource(s string) (Source, error) {
	src := Source(s)
	if !src.IsValid() {
		return "", ErrInvalidSource
	}
	return src, nil
}

func (s Source) String() string {
	return string(s)
}

func (s Source) IsValid() bool {
	switch s {
	case SourceDirect, SourcePackage, SourceMembership:
		return true
	default:
		return false
	}
}

func (s Source) rank() int {
	switch s {
	case SourceDirect:
		return 0
	case SourcePackage:
		return 1
	case SourceMembership:
		return 2
	default:
		return 3
	}
}
