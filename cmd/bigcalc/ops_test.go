package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/db47h/bigint"
)

func TestParseOperands(t *testing.T) {
	xs, err := parseOperands([]string{"10", "-20", "007"})
	if err != nil {
		t.Fatalf("parseOperands failed: %v", err)
	}
	if len(xs) != 3 || xs[0].String() != "10" || xs[1].String() != "-20" || xs[2].String() != "7" {
		t.Errorf("got %v", xs)
	}

	_, err = parseOperands([]string{"1", "x"})
	if err == nil {
		t.Fatal("bad operand did not fail")
	}
	if !errors.Is(err, bigint.ErrInvalidArgument) {
		t.Errorf("error %v does not wrap ErrInvalidArgument", err)
	}
	if !strings.Contains(err.Error(), "operand 2") {
		t.Errorf("error %v does not name the bad operand", err)
	}
}

func TestFold(t *testing.T) {
	for _, test := range []struct {
		args []string
		op   func(z, x, y *bigint.Int) *bigint.Int
		want string
	}{
		{[]string{"10", "-20"}, (*bigint.Int).Add, "-10"},
		{[]string{"10", "20", "30"}, (*bigint.Int).Add, "60"},
		{[]string{"10", "20"}, (*bigint.Int).Sub, "-10"},
		{[]string{"100", "20", "30"}, (*bigint.Int).Sub, "50"},
		{[]string{"2", "3", "4"}, (*bigint.Int).Mul, "24"},
		{[]string{"1111111111", "2222222222"}, (*bigint.Int).Mul, "2469135801975308642"},
	} {
		xs, err := parseOperands(test.args)
		if err != nil {
			t.Fatalf("parseOperands(%v) failed: %v", test.args, err)
		}
		if got := fold(xs, test.op).String(); got != test.want {
			t.Errorf("fold(%v) = %s; want %s", test.args, got, test.want)
		}
		// fold must not mutate its inputs
		if got := xs[0].String(); got != bigint.MustParse(test.args[0]).String() {
			t.Errorf("fold(%v) mutated its first operand to %s", test.args, got)
		}
	}
}
