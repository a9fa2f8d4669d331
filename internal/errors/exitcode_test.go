package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestExitCodeFor(t *testing.T) {
	cases := []struct {
		code Code
		want ExitCode
	}{
		{CodeCfgNotFound, ExitConfig},
		{CodeCfgInvalid, ExitConfig},
		{CodeCredentialsUnavailable, ExitConfig},
		{CodeKeyringFailed, ExitStore},
		{CodePromptFailed, ExitStore},
		{CodeHTTPFailed, ExitHTTP},
		{CodeInternal, ExitInternal},
		{Code("UNKNOWN_CODE"), ExitInternal}, // unknown code
	}
	for _, tc := range cases {
		if got := ExitCodeFor(tc.code); got != tc.want {
			t.Errorf("ExitCodeFor(%s)=%d want %d", tc.code, got, tc.want)
		}
	}
}

func TestXError_Error(t *testing.T) {
	// Without cause
	xe := New(CodeCfgInvalid, "test message", nil)
	expected := "PICRED_CFG_INVALID: test message"
	if xe.Error() != expected {
		t.Errorf("Error()=%q, want %q", xe.Error(), expected)
	}

	// With cause
	cause := stderrors.New("underlying error")
	xe = Wrap(CodeKeyringFailed, "keyring write failed", nil, cause)
	expected = "PICRED_KEYRING_FAILED: keyring write failed: underlying error"
	if xe.Error() != expected {
		t.Errorf("Error()=%q, want %q", xe.Error(), expected)
	}

	// Nil error
	var nilErr *XError
	if nilErr.Error() != "" {
		t.Errorf("nil XError.Error() should return empty string")
	}
}

func TestXError_Unwrap(t *testing.T) {
	cause := stderrors.New("cause")
	xe := Wrap(CodeHTTPFailed, "msg", nil, cause)
	if xe.Unwrap() != cause {
		t.Error("Unwrap should return cause")
	}

	xe2 := New(CodeCfgInvalid, "msg", nil)
	if xe2.Unwrap() != nil {
		t.Error("Unwrap should return nil when no cause")
	}
}

func TestAs(t *testing.T) {
	xe := New(CodeCredentialsUnavailable, "test", nil)
	got, ok := As(xe)
	if !ok || got != xe {
		t.Error("As should return XError")
	}

	// Wrapped error
	wrapped := fmt.Errorf("prefix: %w", xe)
	got, ok = As(wrapped)
	if !ok || got != xe {
		t.Error("As should unwrap to find XError")
	}

	// Non-XError
	_, ok = As(stderrors.New("plain error"))
	if ok {
		t.Error("As should return false for non-XError")
	}
}

func TestAsOrWrap(t *testing.T) {
	xe := New(CodeCfgInvalid, "bad", nil)
	if got := AsOrWrap(xe); got != xe {
		t.Errorf("AsOrWrap should keep XError, got %v", got)
	}

	plain := stderrors.New("boom")
	got := AsOrWrap(plain)
	if got.Code != CodeInternal || got.Message != "boom" {
		t.Errorf("AsOrWrap(plain)=%+v", got)
	}
	if !stderrors.Is(got, plain) {
		t.Error("wrapped error should keep cause")
	}
}

func TestHasCode(t *testing.T) {
	xe := New(CodeCredentialsUnavailable, "missing", nil)
	if !HasCode(fmt.Errorf("wrap: %w", xe), CodeCredentialsUnavailable) {
		t.Error("HasCode should find code through wrapping")
	}
	if HasCode(xe, CodeCfgInvalid) {
		t.Error("HasCode should not match other codes")
	}
	if HasCode(stderrors.New("plain"), CodeInternal) {
		t.Error("HasCode should be false for non-XError")
	}
}

func TestAllCodes(t *testing.T) {
	codes := AllCodes()
	if len(codes) != 7 {
		t.Errorf("AllCodes() should return 7 codes, got %d", len(codes))
	}

	// Check for duplicates
	seen := make(map[Code]bool)
	for _, c := range codes {
		if seen[c] {
			t.Errorf("Duplicate code: %s", c)
		}
		seen[c] = true
	}
}
