package allocation

import (
	"errors"
	"testing"
)

func TestParseSemester(t *testing.T) {
	cases := []struct {
		name  string
		in    int
		want  Semester
		valid bool
	}{
		{"First", 1, SemesterFirst, true},
		{"Eighth", 8, SemesterEighth, true},
		{"Zero", 0, 0, false},
		{"Negative", -3, 0, false},
		{"TooHigh", 9, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSemester(tc.in)
			if tc.valid {
				if err != nil {
					t.Fatalf("ParseSemester(%d) error = %v; want nil", tc.in, err)
				}
				if got != tc.want {
					t.Errorf("ParseSemester(%d) = %v; want %v", tc.in, got, tc.want)
				}
				return
			}
			var rangeErr *SemesterRangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("ParseSemester(%d) error = %v; want *SemesterRangeError", tc.in, err)
			}
			if rangeErr.Value != tc.in {
				t.Errorf("range error value = %d; want %d", rangeErr.Value, tc.in)
			}
		})
	}
}

func TestSemesterString(t *testing.T) {
	if got := SemesterThird.String(); got != "S3" {
		t.Errorf("SemesterThird.String() = %q; want S3", got)
	}
}
