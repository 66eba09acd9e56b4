package errors

import (
	"fmt"
	"testing"
)

func TestWrapPreservesCode(t *testing.T) {
	base := ConfigInvalid("base directory is required")
	wrapped := Wrap(base, "configuration validation failed")

	if GetCode(wrapped) != CodeConfigInvalid {
		t.Errorf("Expected code %s, got %s", CodeConfigInvalid, GetCode(wrapped))
	}
	if !IsAppError(wrapped) {
		t.Error("Expected wrapped error to remain an AppError")
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Expected Wrap(nil) to return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Expected Wrapf(nil) to return nil")
	}
}

func TestGetCodeUnknown(t *testing.T) {
	if GetCode(fmt.Errorf("plain")) != "UNKNOWN" {
		t.Error("Expected UNKNOWN for non-AppError")
	}
}

func TestErrorMessageIncludesCause(t *testing.T) {
	err := Wrap(fmt.Errorf("disk gone"), "failed to read file")
	want := "failed to read file: disk gone"
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}
}
