package pagination

import "testing"

func TestValidateRejectsOutOfRangeInput(t *testing.T) {
	v := Validator{MaxPageSize: 50}

	cases := []struct {
		name     string
		page     int
		pageSize int
	}{
		{"zero page", 0, 10},
		{"negative page", -3, 10},
		{"zero page size", 1, 0},
		{"negative page size", 1, -1},
		{"both invalid", 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, size := v.Validate(tc.page, tc.pageSize)
			if ok {
				t.Fatalf("Validate(%d, %d) should be invalid", tc.page, tc.pageSize)
			}
			if size != 0 {
				t.Fatalf("effective size should be 0 when invalid, got %d", size)
			}
		})
	}
}

func TestValidateClampsOversizedPageSize(t *testing.T) {
	v := Validator{MaxPageSize: 50}

	ok, size := v.Validate(1, 500)
	if !ok {
		t.Fatalf("oversized pageSize should still be valid")
	}
	if size != 50 {
		t.Fatalf("expected clamp to 50, got %d", size)
	}
}

func TestValidatePassesThroughInRangeValues(t *testing.T) {
	v := Validator{MaxPageSize: 50}

	for _, size := range []int{1, 10, 50} {
		ok, eff := v.Validate(2, size)
		if !ok {
			t.Fatalf("Validate(2, %d) should be valid", size)
		}
		if eff != size {
			t.Fatalf("expected effective size %d, got %d", size, eff)
		}
	}
}

func TestNewPageNeverReturnsNilData(t *testing.T) {
	p := NewPage[string](nil, 1, 10, 0)
	if p.Data == nil {
		t.Fatalf("Data must serialize as [] rather than null")
	}
}
