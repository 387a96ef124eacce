package cerror

import (
	"errors"
	"testing"
)

func TestQueryErrorUnwraps(t *testing.T) {
	fault := errors.New("provider offline")
	err := NewQueryError("sweep capsule", fault)
	if !errors.Is(err, fault) {
		t.Fatal("expected the provider fault reachable through Is")
	}

	var qe *QueryError
	if !errors.As(error(err), &qe) || qe.Op != "sweep capsule" {
		t.Fatalf("expected the operation preserved, got %+v", qe)
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := NewConfigError("radius", "must be positive")
	want := "capsim: invalid config: radius must be positive"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}
