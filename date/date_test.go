package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Date
		wantErr bool
	}{
		{name: "canonical", in: "2025-07-01", want: New(2025, time.July, 1)},
		{name: "permissive single digits", in: "2025-7-1", want: New(2025, time.July, 1)},
		{name: "garbage", in: "not-a-date", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if err == nil && got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalization(t *testing.T) {
	// Overflowing days roll over into the next month.
	got := New(2025, time.January, 32)
	want := New(2025, time.February, 1)
	if got != want {
		t.Errorf("New(2025, January, 32) = %v, want %v", got, want)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := MustParse("2025-03-15")
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2025-03-15"` {
		t.Errorf("marshal = %s, want %q", b, "2025-03-15")
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestStartOfWeek(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{name: "monday is its own start", in: "2025-06-02", want: "2025-06-02"},
		{name: "wednesday", in: "2025-06-04", want: "2025-06-02"},
		{name: "sunday belongs to the previous monday", in: "2025-06-08", want: "2025-06-02"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := StartOfWeek(MustParse(tc.in))
			if got.String() != tc.want {
				t.Errorf("StartOfWeek(%s) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestWeek(t *testing.T) {
	week := Week(MustParse("2025-06-05"))
	if week[0].String() != "2025-06-02" || week[6].String() != "2025-06-08" {
		t.Errorf("Week() spans %s..%s, want 2025-06-02..2025-06-08", week[0], week[6])
	}
	for i := 1; i < len(week); i++ {
		if !week[i-1].Before(week[i]) {
			t.Errorf("week days out of order at %d: %s then %s", i, week[i-1], week[i])
		}
	}
}
