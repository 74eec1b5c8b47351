package info

import (
	"errors"
	"testing"
)

func TestInfoDispatch(t *testing.T) {
	hub := NewHub()
	if err := hub.RegisterInfo("version", "program version", "", func(args string) (string, error) {
		return "1.0" + args, nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := hub.Info("version", "-dev")
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	if got != "1.0-dev" {
		t.Fatalf("unexpected value: %q", got)
	}

	if _, err := hub.Info("missing", ""); !errors.Is(err, ErrUnknownInfo) {
		t.Fatalf("expected ErrUnknownInfo, got %v", err)
	}
	if _, err := hub.Infolist("version", "", ""); !errors.Is(err, ErrUnknownInfo) {
		t.Fatalf("info names must not resolve as infolists, got %v", err)
	}
}

func TestInfolistDispatch(t *testing.T) {
	hub := NewHub()
	var gotID, gotArgs string
	if err := hub.RegisterInfolist("things", "all things", "thing id", "", func(id, args string) (any, error) {
		gotID, gotArgs = id, args
		return []string{"a"}, nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	out, err := hub.Infolist("things", "42", "x")
	if err != nil {
		t.Fatalf("infolist: %v", err)
	}
	if list, ok := out.([]string); !ok || len(list) != 1 {
		t.Fatalf("unexpected list: %#v", out)
	}
	if gotID != "42" || gotArgs != "x" {
		t.Fatalf("hook saw id=%q args=%q", gotID, gotArgs)
	}
}

func TestDuplicateRegistration(t *testing.T) {
	hub := NewHub()
	noop := func(string) (string, error) { return "", nil }
	if err := hub.RegisterInfo("a", "", "", noop); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := hub.RegisterInfo("a", "", "", noop); !errors.Is(err, ErrDuplicateInfo) {
		t.Fatalf("expected ErrDuplicateInfo, got %v", err)
	}
}

func TestDescribeOrder(t *testing.T) {
	hub := NewHub()
	noop := func(string) (string, error) { return "", nil }
	noopList := func(string, string) (any, error) { return nil, nil }
	_ = hub.RegisterInfolist("zeta", "", "", "", noopList)
	_ = hub.RegisterInfo("beta", "", "", noop)
	_ = hub.RegisterInfolist("alpha", "", "", "", noopList)
	_ = hub.RegisterInfo("gamma", "", "", noop)

	desc := hub.Describe()
	want := []struct {
		name string
		kind Kind
	}{
		{"beta", KindInfo},
		{"gamma", KindInfo},
		{"alpha", KindInfolist},
		{"zeta", KindInfolist},
	}
	if len(desc) != len(want) {
		t.Fatalf("expected %d descriptions, got %d", len(want), len(desc))
	}
	for i, w := range want {
		if desc[i].Name != w.name || desc[i].Kind != w.kind {
			t.Fatalf("entry %d: got %s/%s, want %s/%s", i, desc[i].Kind, desc[i].Name, w.kind, w.name)
		}
	}
}
