package entity

import "errors"

// DomainError signals a violated business invariant. Aggregate names the
// entity whose rule was broken so callers can branch without string matching.
type DomainError struct {
	Aggregate string
	Message   string
}

func (e *DomainError) Error() string {
	return e.Message
}

func newUserError(msg string) error {
	return &DomainError{Aggregate: "user", Message: msg}
}

func newPostError(msg string) error {
	return &DomainError{Aggregate: "post", Message: msg}
}

func newCommentError(msg string) error {
	return &DomainError{Aggregate: "comment", Message: msg}
}

func newCategoryError(msg string) error {
	return &DomainError{Aggregate: "category", Message: msg}
}

// IsDomainError reports whether err is (or wraps) a DomainError.
func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}
