package quiz

import "github.com/socratmhamad/quiz-socfix/model"

// AuthorPolicy decides whether a principal may perform authoring actions.
// It is a pure predicate; swapping in a role- or multi-author policy must
// not require touching the service.
type AuthorPolicy interface {
	IsAuthor(p model.Principal) bool
}

// EmailPolicy authorizes exactly one statically configured email address.
type EmailPolicy string

func (e EmailPolicy) IsAuthor(p model.Principal) bool {
	return p.Email != "" && p.Email == string(e)
}
