package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidBoard, "board size must be positive, got %d", -1)

	if err.Code != ErrCodeInvalidBoard {
		t.Errorf("code = %s, want %s", err.Code, ErrCodeInvalidBoard)
	}
	if err.Message != "board size must be positive, got -1" {
		t.Errorf("message = %q", err.Message)
	}
	if !strings.Contains(err.Error(), string(ErrCodeInvalidBoard)) {
		t.Errorf("Error() = %q, missing code", err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeInternal, cause, "writing archive")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error does not unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Error() = %q, missing cause", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidTile, "unknown tile type %q", "xtile")

	if !Is(err, ErrCodeInvalidTile) {
		t.Error("Is = false for matching code")
	}
	if Is(err, ErrCodeInvalidBoard) {
		t.Error("Is = true for different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInvalidTile) {
		t.Error("Is = true for non-structured error")
	}
	if Is(nil, ErrCodeInvalidTile) {
		t.Error("Is = true for nil")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeNotFound, "no cached count")); got != ErrCodeNotFound {
		t.Errorf("code = %s, want %s", got, ErrCodeNotFound)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("code = %q, want empty for non-structured error", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidInput, "tile size %q is not a number", "x")
	if got := UserMessage(err); got != `tile size "x" is not a number` {
		t.Errorf("UserMessage = %q", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage = %q", got)
	}
}
