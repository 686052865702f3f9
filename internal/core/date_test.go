package core

import (
	"errors"
	"testing"
)

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"2024-03-05", "2024-03-05", true},
		{"05-03-2024", "2024-03-05", true},
		{"2024-12-31", "2024-12-31", true},
		{"31-12-2024", "2024-12-31", true},
		{"2024-13-01", "", false},
		{"32-01-2024", "", false},
		{"not-a-date", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := NormalizeDate(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %q, got %q (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if !errors.Is(err, ErrInvalidDate) {
				t.Fatalf("%q expected ErrInvalidDate, got %v", tc.in, err)
			}
		}
	}
}

func TestNormalizeMonth(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"2024-03", "2024-03", true},
		{"03-2024", "2024-03", true},
		{"2024-12", "2024-12", true},
		{"12-2024", "2024-12", true},
		{"2024-13", "", false},
		{"2024", "", false},
		{"march", "", false},
	}
	for _, tc := range cases {
		got, err := NormalizeMonth(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %q, got %q (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if !errors.Is(err, ErrInvalidMonth) {
				t.Fatalf("%q expected ErrInvalidMonth, got %v", tc.in, err)
			}
		}
	}

	if MonthPrefix("2024-03") != "2024-03-" {
		t.Fatalf("unexpected month prefix %q", MonthPrefix("2024-03"))
	}
}

func TestExpensePatchValidate(t *testing.T) {
	if err := (ExpensePatch{}).Validate(); !errors.Is(err, ErrNoFields) {
		t.Fatalf("empty patch: expected ErrNoFields, got %v", err)
	}

	bad := Money{Cents: 0}
	if err := (ExpensePatch{Amount: &bad}).Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("zero amount: expected ErrInvalidAmount, got %v", err)
	}

	note := ""
	if err := (ExpensePatch{Note: &note}).Validate(); err != nil {
		t.Fatalf("note-only patch should be valid, got %v", err)
	}
}

func TestExpenseValidate(t *testing.T) {
	ok := Expense{Amount: Money{Cents: 100}, Date: "2024-03-05"}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid expense: unexpected error %v", err)
	}

	if err := (Expense{Date: "2024-03-05"}).Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("zero amount: expected ErrInvalidAmount, got %v", err)
	}

	if err := (Expense{Amount: Money{Cents: 100}}).Validate(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("blank date: expected ErrInvalidDate, got %v", err)
	}
}
