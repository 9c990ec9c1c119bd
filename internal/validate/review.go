package validate

import "strings"

const (
	// Kinds classify a violation independently of its message.
	KindRange    = "range"
	KindRequired = "required"
)

const (
	MsgRatingRange     = "This value should be between 1 and 5."
	MsgCommentRequired = "This value should not be blank."
)

type Violation struct {
	Field   string
	Kind    string
	Message string
}

type Violations []Violation

// ByField groups messages per field, the shape the API returns to clients.
func (vs Violations) ByField() map[string][]string {
	if len(vs) == 0 {
		return nil
	}
	out := make(map[string][]string, len(vs))
	for _, v := range vs {
		out[v.Field] = append(out[v.Field], v.Message)
	}
	return out
}

func (vs Violations) OK() bool { return len(vs) == 0 }

// Review checks the field constraints of a candidate review. Whether the
// referenced book exists is the caller's concern; it is a lookup failure,
// not a field violation.
func Review(rating int, comment string) Violations {
	var vs Violations
	if rating < 1 || rating > 5 {
		vs = append(vs, Violation{Field: "rating", Kind: KindRange, Message: MsgRatingRange})
	}
	if strings.TrimSpace(comment) == "" {
		vs = append(vs, Violation{Field: "comment", Kind: KindRequired, Message: MsgCommentRequired})
	}
	return vs
}
