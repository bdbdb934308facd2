package rocdate

import (
	"strings"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParse_Formats(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{name: "Minguo_Prefix", input: "民國114年12月30日", expected: date(2025, time.December, 30)},
		{name: "Year_Month_Day", input: "114年12月30日", expected: date(2025, time.December, 30)},
		{name: "Slashes", input: "114/12/30", expected: date(2025, time.December, 30)},
		{name: "Dashes", input: "114-12-30", expected: date(2025, time.December, 30)},
		{name: "Single_Digit_Fields", input: "114年1月7日", expected: date(2025, time.January, 7)},
		{name: "FullWidth_Input", input: "民國１１４年１２月３０日", expected: date(2025, time.December, 30)},
		{name: "Embedded_In_Text", input: "登記日期:114/12/30請查照", expected: date(2025, time.December, 30)},
		{name: "Whitespace_Inside", input: "114 / 12 / 30", expected: date(2025, time.December, 30)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Parse(tc.input)
			if !ok {
				t.Fatalf("Parse(%q) failed, want %v", tc.input, tc.expected)
			}
			if !got.Equal(tc.expected) {
				t.Errorf("Parse(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestParse_Rejections(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "Empty", input: ""},
		{name: "Garbage", input: "not-a-date"},
		{name: "Year_Below_Window", input: "99-12-30"},
		{name: "Year_Above_Window", input: "121-01-01"},
		{name: "Western_Year", input: "2025-12-30"},
		{name: "Month_Thirteen", input: "114-13-01"},
		{name: "Day_Zero", input: "114-01-00"},
		{name: "Day_ThirtyTwo", input: "114-01-32"},
		{name: "February_Thirty", input: "114年2月30日"},
		{name: "April_ThirtyFirst", input: "114/4/31"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got, ok := Parse(tc.input); ok {
				t.Errorf("Parse(%q) = %v, want no match", tc.input, got)
			}
		})
	}
}

// A failed match moves to the next pattern in the list, not to a later
// match of the same pattern: the 年月日 form here has an out-of-window year,
// and the slash form further along still gets picked up.
func TestParse_FallsThroughToNextPattern(t *testing.T) {
	got, ok := Parse("99年1月1日改編114/12/30")
	if !ok {
		t.Fatal("expected the slash pattern to match")
	}
	if want := date(2025, time.December, 30); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFormatROC(t *testing.T) {
	testCases := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{name: "Padded_Month_Day", input: date(2025, time.November, 7), expected: "114-11-07"},
		{name: "Unpadded_Year", input: date(2011, time.January, 1), expected: "100-01-01"},
		{name: "Zero_Time", input: time.Time{}, expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatROC(tc.input); got != tc.expected {
				t.Errorf("FormatROC(%v) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestParse_FormatROC_RoundTrip(t *testing.T) {
	dates := []time.Time{
		date(2011, time.January, 1),
		date(2025, time.November, 7),
		date(2028, time.February, 29),
		date(2031, time.December, 31),
	}

	for _, d := range dates {
		s := FormatROC(d)
		got, ok := Parse(s)
		if !ok {
			t.Errorf("Parse(FormatROC(%v)) = Parse(%q) failed", d, s)
			continue
		}
		if !got.Equal(d) {
			t.Errorf("round trip of %v via %q gave %v", d, s, got)
		}
	}
}

func TestValidate(t *testing.T) {
	if ok, msg := Validate(""); ok || msg != "Date string is empty" {
		t.Errorf("Validate(\"\") = %v, %q", ok, msg)
	}

	if ok, msg := Validate("not-a-date"); ok || !strings.HasPrefix(msg, "Cannot parse date:") {
		t.Errorf("Validate(not-a-date) = %v, %q", ok, msg)
	}

	if ok, msg := Validate("114-11-07"); !ok || msg != "" {
		t.Errorf("Validate(114-11-07) = %v, %q, want valid", ok, msg)
	}

	// ROC 120-12-31 is the end of the supported window (2031); until then
	// it is a future date.
	if ok, msg := Validate("120-12-31"); ok || !strings.HasPrefix(msg, "Date is in the future:") {
		t.Errorf("Validate(120-12-31) = %v, %q, want future rejection", ok, msg)
	}
}
