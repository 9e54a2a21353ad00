package lambda

import "testing"

func TestEnvDefineAndGet(t *testing.T) {
	env := newEnv(nil)
	env.Define("a", NewNumber(1))

	got, ok := env.Get("a")
	if !ok {
		t.Fatal("expected a to be defined")
	}
	if got.Number() != 1 {
		t.Fatalf("expected 1, got %v", got.Number())
	}

	if _, ok := env.Get("missing"); ok {
		t.Fatal("expected miss for undefined name")
	}
}

func TestEnvGetWalksParentChain(t *testing.T) {
	outer := newEnv(nil)
	outer.Define("a", NewString("outer"))
	inner := newEnv(newEnv(outer))

	got, ok := inner.Get("a")
	if !ok || got.String() != "outer" {
		t.Fatalf("expected outer binding, got %v ok=%v", got, ok)
	}
}

func TestEnvShadowing(t *testing.T) {
	outer := newEnv(nil)
	outer.Define("a", NewNumber(1))
	inner := newEnv(outer)
	inner.Define("a", NewNumber(2))

	got, _ := inner.Get("a")
	if got.Number() != 2 {
		t.Fatalf("inner lookup expected 2, got %v", got.Number())
	}
	got, _ = outer.Get("a")
	if got.Number() != 1 {
		t.Fatalf("outer binding disturbed: got %v", got.Number())
	}
}

func TestEnvAssignMutatesDefiningFrame(t *testing.T) {
	outer := newEnv(nil)
	outer.Define("a", NewNumber(1))
	inner := newEnv(outer)

	if !inner.Assign("a", NewNumber(9)) {
		t.Fatal("assign through child frame failed")
	}
	got, _ := outer.Get("a")
	if got.Number() != 9 {
		t.Fatalf("expected outer frame mutation, got %v", got.Number())
	}
	if _, ok := inner.values["a"]; ok {
		t.Fatal("assign must not create a binding in the child frame")
	}
}

func TestEnvAssignUndefinedFails(t *testing.T) {
	env := newEnv(newEnv(nil))
	if env.Assign("ghost", NewNil()) {
		t.Fatal("assign to undefined name must fail")
	}
	if _, ok := env.Get("ghost"); ok {
		t.Fatal("failed assign must not define")
	}
}
