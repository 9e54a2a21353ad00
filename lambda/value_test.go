package lambda

import "testing"

func TestValueTruthiness(t *testing.T) {
	cases := []struct {
		val  Value
		want bool
	}{
		{NewNil(), false},
		{NewBool(false), false},
		{NewBool(true), true},
		{NewNumber(0), true},
		{NewString(""), true},
		{NewList(&List{}), true},
	}
	for _, tc := range cases {
		if got := tc.val.Truthy(); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.val.Kind(), got, tc.want)
		}
	}
}

func TestValueStringRendering(t *testing.T) {
	cases := []struct {
		val  Value
		want string
	}{
		{NewNil(), "nil"},
		{NewBool(true), "true"},
		{NewNumber(30), "30"},
		{NewNumber(-2), "-2"},
		{NewString("hi"), "hi"},
		{NewList(&List{Elements: []Value{NewNumber(1), NewString("a")}}), "[1, a]"},
	}
	for _, tc := range cases {
		if got := tc.val.String(); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.val.Kind(), got, tc.want)
		}
	}
}

func TestValueKindNames(t *testing.T) {
	if NewNumber(1).Kind() != KindNumber {
		t.Fatal("wrong kind for number")
	}
	if NewNil().Kind() != KindNil {
		t.Fatal("wrong kind for nil")
	}
	if !NewNil().IsNil() {
		t.Fatal("nil value must report IsNil")
	}
	if NewNumber(0).IsNil() {
		t.Fatal("number must not report IsNil")
	}
}
