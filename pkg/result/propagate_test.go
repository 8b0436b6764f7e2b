package result

import (
	"errors"
	"strings"
	"testing"
)

func TestPropagate_SuccessReturnsValue(t *testing.T) {
	t.Parallel()

	reached := false
	r := Stop[int, error](func() int {
		v := Success[int, error](5).Propagate()
		reached = true
		return v + 1
	})

	if !reached {
		t.Fatalf("propagate on Success must continue execution")
	}
	if r.Unwrap() != 6 {
		t.Fatalf("expected Success(6), got %v", r)
	}
}

func TestPropagate_ErrorShortCircuitsToBoundary(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	reached := false
	r := Stop[int, error](func() int {
		Error[int](boom).Propagate()
		reached = true
		return 0
	})

	if reached {
		t.Fatalf("code after propagate on Error must not run")
	}
	if !r.IsErr() || r.ErrValue() != boom {
		t.Fatalf("expected the boundary to return Error(boom), got %v", r)
	}
}

func TestPropagate_TransitsIntermediateFrames(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	inner := func() int {
		return Error[int](boom).Propagate()
	}
	middle := func() int {
		v := inner()
		t.Fatal("middle frame must be skipped")
		return v
	}

	r := Stop[int, error](func() int { return middle() })
	if !r.IsErr() || r.ErrValue() != boom {
		t.Fatalf("expected Error(boom) at the boundary, got %v", r)
	}
}

func TestStop_NestedBoundaries(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	outer := Stop[string, error](func() string {
		inner := Stop[int, error](func() int {
			Error[int](boom).Propagate()
			return 0
		})
		if !inner.IsErr() {
			t.Fatalf("inner boundary must absorb the signal, got %v", inner)
		}
		return "recovered"
	})

	if outer.Unwrap() != "recovered" {
		t.Fatalf("outer boundary must see normal completion, got %v", outer)
	}
}

func TestStop_MismatchedPayloadKeepsUnwinding(t *testing.T) {
	t.Parallel()

	// The inner boundary expects a string payload; the error carries an
	// error payload, so only the outer boundary may absorb it.
	boom := errors.New("boom")
	outer := Stop[int, error](func() int {
		Stop[int, string](func() int {
			Error[int](boom).Propagate()
			return 0
		})
		t.Fatal("inner boundary must not absorb a mismatched payload")
		return 0
	})

	if !outer.IsErr() || outer.ErrValue() != boom {
		t.Fatalf("expected the outer boundary to absorb the signal, got %v", outer)
	}
}

func TestStop_ForeignPanicPassesThrough(t *testing.T) {
	t.Parallel()

	defer func() {
		if rec := recover(); rec != "unrelated" {
			t.Fatalf("expected the foreign panic to pass through, got %v", rec)
		}
	}()

	Stop[int, error](func() int {
		panic("unrelated")
	})
	t.Fatal("foreign panic must not be absorbed")
}

func TestPropagate_EscapedSignalNamesTheBoundary(t *testing.T) {
	t.Parallel()

	defer func() {
		rec := recover()
		err, ok := rec.(error)
		if !ok || !strings.Contains(err.Error(), "result.Stop") {
			t.Fatalf("an escaped signal must name the missing boundary, got %v", rec)
		}
	}()

	Error[int](errors.New("boom")).Propagate()
	t.Fatal("propagate on Error without a boundary must panic")
}
