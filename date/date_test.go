package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2018-02-01", want: New(2018, time.February, 1)},
		{in: "2018-2-1", want: New(2018, time.February, 1)},
		{in: "02/01/2018", wantErr: true},
		{in: "not a date", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) expected an error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseImported(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		sep     Separator
		iso     bool
		want    Date
		wantErr bool
	}{
		{name: "US hyphen", in: "2-1-2018", sep: Hyphen, want: New(2018, time.February, 1)},
		{name: "US hyphen two-digit year", in: "2-1-18", sep: Hyphen, want: New(2018, time.February, 1)},
		{name: "ISO hyphen", in: "2018-2-1", sep: Hyphen, iso: true, want: New(2018, time.February, 1)},
		{name: "ISO slash", in: "2018/12/31", sep: Slash, iso: true, want: New(2018, time.December, 31)},
		{name: "US slash", in: "12/31/2018", sep: Slash, want: New(2018, time.December, 31)},
		{name: "US period", in: "12.31.18", sep: Period, want: New(2018, time.December, 31)},
		{name: "wrong separator", in: "2018-12-31", sep: Slash, iso: true, wantErr: true},
		{name: "too few fields", in: "2018-12", sep: Hyphen, iso: true, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseImported(tc.in, tc.sep, tc.iso)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseImported(%q) expected an error, got %v", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseImported(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseImported(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseSeparator(t *testing.T) {
	for in, want := range map[string]Separator{"h": Hyphen, "s": Slash, "p": Period, "-": Hyphen} {
		got, err := ParseSeparator(in)
		if err != nil {
			t.Fatalf("ParseSeparator(%q) unexpected error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseSeparator(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseSeparator("x"); err == nil {
		t.Error("ParseSeparator(\"x\") expected an error")
	}
}

func TestDateOrdering(t *testing.T) {
	a := New(2018, time.January, 1)
	b := New(2018, time.January, 2)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("expected %v before %v", a, b)
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare is inconsistent for %v and %v", a, b)
	}
	if got := a.Add(31); got != New(2018, time.February, 1) {
		t.Errorf("Add(31) = %v, want 2018-02-01", got)
	}
}
