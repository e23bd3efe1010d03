// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, code lookup and run-fatal classification

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/nuspecmaker/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "lockfile_not_found",
			code:    errors.ErrLockFileNotFound,
			message: "lock file not found",
			wantStr: "[LOCKFILE_NOT_FOUND] lock file not found",
		},
		{
			name:    "config_parse",
			code:    errors.ErrConfigParse,
			message: "invalid configuration",
			wantStr: "[CONFIG_PARSE] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrVersionFormat, "unsupported version range %q", "[1.0]")
	if err.Message != `unsupported version range "[1.0]"` {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrManifestWrite, "cannot write manifest")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[MANIFEST_WRITE] cannot write manifest: permission denied"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrToolInvocation, "nuget spec failed").
		WithDetail("exitCode", 1).
		WithDetails(map[string]interface{}{"output": "boom", "dir": "/src/Foo"})

	details := errors.GetErrorDetails(err)
	if details["exitCode"] != 1 || details["output"] != "boom" || details["dir"] != "/src/Foo" {
		t.Errorf("unexpected details: %v", details)
	}

	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("GetErrorDetails() should be nil for non-structured errors")
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrManifestParse, "error 1")
	err2 := errors.New(errors.ErrManifestParse, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{"structured", errors.New(errors.ErrToolNotFound, "missing"), errors.ErrToolNotFound},
		{"wrapped_twice", errors.Wrap(errors.New(errors.ErrFileAccess, "denied"), errors.ErrManifestWrite, "write"), errors.ErrManifestWrite},
		{"standard_error", stderrors.New("standard error"), errors.ErrUnknown},
		{"nil_error", nil, errors.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsRunFatal(t *testing.T) {
	tests := []struct {
		code  errors.ErrorCode
		fatal bool
	}{
		{errors.ErrNotConfigured, true},
		{errors.ErrConfigParse, true},
		{errors.ErrToolNotFound, true},
		{errors.ErrProjectDiscovery, true},
		{errors.ErrLockFileNotFound, false},
		{errors.ErrVersionFormat, false},
		{errors.ErrToolInvocation, false},
		{errors.ErrManifestParse, false},
		{errors.ErrManifestWrite, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := errors.IsRunFatal(errors.New(tt.code, "x")); got != tt.fatal {
				t.Errorf("IsRunFatal(%s) = %v, want %v", tt.code, got, tt.fatal)
			}
		})
	}

	if errors.IsRunFatal(stderrors.New("plain")) {
		t.Error("plain errors are per-project failures")
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigParse, "failed to load config")

	if !errors.IsErrorCode(configErr, errors.ErrConfigParse) {
		t.Error("Top level should have ErrConfigParse code")
	}

	var inner *errors.NuspecError
	if !stderrors.As(configErr.Unwrap(), &inner) || inner.Code != errors.ErrFileAccess {
		t.Error("Middle error should have ErrFileAccess code")
	}

	if !stderrors.Is(configErr, rootCause) {
		t.Error("Should find root cause with errors.Is")
	}
}
