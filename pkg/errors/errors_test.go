package errors

import (
	stdErrors "errors"
	"net/http"
	"testing"
)

func TestErrorIncludesInternal(t *testing.T) {
	internal := stdErrors.New("boom")
	err := Wrap(internal, "failed")

	if err.Error() != "failed: boom" {
		t.Fatalf("unexpected error string: %s", err.Error())
	}
}

func TestWithInternalCopies(t *testing.T) {
	base := New("TEST", "test", 400)
	with := base.WithInternal(stdErrors.New("oops"))

	if with == base {
		t.Fatal("expected WithInternal to return a copy")
	}

	if base.Internal != nil {
		t.Fatal("expected original error to remain unchanged")
	}

	if with.Internal == nil {
		t.Fatal("expected internal error to be set")
	}
}

func TestWithMessageCopies(t *testing.T) {
	with := ErrNotFound.WithMessage("Restaurant not found")

	if with == ErrNotFound {
		t.Fatal("expected WithMessage to return a copy")
	}
	if with.Message != "Restaurant not found" {
		t.Fatalf("unexpected message: %s", with.Message)
	}
	if with.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", with.StatusCode)
	}
	if ErrNotFound.Message == "Restaurant not found" {
		t.Fatal("expected sentinel to remain unchanged")
	}
}

func TestFromError(t *testing.T) {
	appErr := ErrNotFound
	if out := FromError(appErr); out != appErr {
		t.Fatal("expected FromError to return the same AppError instance")
	}

	raw := stdErrors.New("raw")
	out := FromError(raw)
	if out.Code != ErrInternalServer.Code {
		t.Fatalf("expected internal server code, got %s", out.Code)
	}
	if out.Internal == nil {
		t.Fatal("expected internal error to be attached")
	}
}

func TestEmailTakenMapsToBadRequest(t *testing.T) {
	if ErrEmailTaken.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", ErrEmailTaken.StatusCode)
	}
}
