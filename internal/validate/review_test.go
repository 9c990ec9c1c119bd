package validate

import "testing"

func TestReview_Valid(t *testing.T) {
	for r := 1; r <= 5; r++ {
		if vs := Review(r, "worth reading"); !vs.OK() {
			t.Errorf("rating %d with comment: unexpected violations %v", r, vs)
		}
	}
}

func TestReview_RatingOutOfRange(t *testing.T) {
	for _, r := range []int{0, -1, 6, 100} {
		vs := Review(r, "fine")
		if len(vs) != 1 {
			t.Fatalf("rating %d: want 1 violation, got %v", r, vs)
		}
		if vs[0].Field != "rating" || vs[0].Kind != KindRange {
			t.Errorf("rating %d: got %+v", r, vs[0])
		}
		if vs[0].Message != MsgRatingRange {
			t.Errorf("rating %d: message %q", r, vs[0].Message)
		}
	}
}

func TestReview_BlankComment(t *testing.T) {
	for _, c := range []string{"", "   ", "\t\n "} {
		vs := Review(3, c)
		if len(vs) != 1 {
			t.Fatalf("comment %q: want 1 violation, got %v", c, vs)
		}
		if vs[0].Field != "comment" || vs[0].Kind != KindRequired {
			t.Errorf("comment %q: got %+v", c, vs[0])
		}
	}
}

func TestReview_BothInvalid(t *testing.T) {
	vs := Review(0, "")
	if len(vs) != 2 {
		t.Fatalf("want 2 violations, got %v", vs)
	}

	byField := vs.ByField()
	if len(byField["rating"]) != 1 || len(byField["comment"]) != 1 {
		t.Errorf("ByField: %v", byField)
	}
	if byField["rating"][0] != MsgRatingRange {
		t.Errorf("rating message: %q", byField["rating"][0])
	}
	if byField["comment"][0] != MsgCommentRequired {
		t.Errorf("comment message: %q", byField["comment"][0])
	}
}

func TestViolations_ByFieldEmpty(t *testing.T) {
	if m := (Violations)(nil).ByField(); m != nil {
		t.Errorf("nil violations should map to nil, got %v", m)
	}
}
