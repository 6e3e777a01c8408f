package errors

import (
	"testing"

	"biorules/internal/testutil"
)

func TestWrap(t *testing.T) {
	t.Run("wraps error with context", func(t *testing.T) {
		baseErr := New("base error")
		wrapped := Wrap(baseErr, "additional context")

		testutil.AssertNotNil(t, wrapped, "wrapped error should not be nil")
		testutil.AssertTrue(t, Is(wrapped, baseErr), "should be able to unwrap to base error")
		testutil.AssertEqual(t, wrapped.Error(), "additional context: base error", "error message should include context")
	})

	t.Run("returns nil when wrapping nil", func(t *testing.T) {
		wrapped := Wrap(nil, "context")
		testutil.AssertTrue(t, wrapped == nil, "wrapping nil should return nil")
	})

	t.Run("multiple wraps preserve chain", func(t *testing.T) {
		wrapped := Wrap(Wrap(ErrProvision, "layer 1"), "layer 2")

		testutil.AssertTrue(t, Is(wrapped, ErrProvision), "should unwrap to sentinel")
		testutil.AssertEqual(t, wrapped.Error(), "layer 2: layer 1: environment provisioning failed", "should show full chain")
	})
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrTimeout, "command %q", "samtools --help")

	testutil.AssertTrue(t, IsTimeout(wrapped), "should unwrap to ErrTimeout")
	testutil.AssertEqual(t, wrapped.Error(), `command "samtools --help": operation timed out`, "formatted context")
	testutil.AssertTrue(t, Wrapf(nil, "x %d", 1) == nil, "wrapping nil should return nil")
}

func TestDetail(t *testing.T) {
	err := Detail(ErrMalformedDocument, "yaml: line %d: did not find expected key", 3)

	testutil.AssertTrue(t, Is(err, ErrMalformedDocument), "detail keeps sentinel identity")
	testutil.AssertEqual(t, err.Error(), "malformed document: yaml: line 3: did not find expected key", "detail message")
}

func TestIs(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"matches sentinel error", ErrTimeout, ErrTimeout, true},
		{"matches wrapped sentinel error", Wrap(ErrTimeout, "context"), ErrTimeout, true},
		{"does not match different error", ErrTimeout, ErrNotFound, false},
		{"nil does not match", nil, ErrTimeout, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, Is(tt.err, tt.target), tt.want, "Is() result should match expected")
		})
	}
}

func TestAs(t *testing.T) {
	t.Run("finds wrapped error type", func(t *testing.T) {
		baseErr := &wrappedError{msg: "test", cause: ErrTimeout}
		wrapped := Wrap(baseErr, "outer")

		var target *wrappedError
		found := As(wrapped, &target)

		testutil.AssertTrue(t, found, "should find wrappedError type")
		testutil.AssertEqual(t, target.msg, "outer", "should match the outer wrapper first")
	})

	t.Run("returns false for different type", func(t *testing.T) {
		var target *wrappedError
		testutil.AssertFalse(t, As(New("test"), &target), "should not find wrappedError type")
	})
}

func TestUnwrap(t *testing.T) {
	baseErr := New("base")
	testutil.AssertEqual(t, Unwrap(Wrap(baseErr, "context")), baseErr, "should unwrap to base error")
	testutil.AssertTrue(t, Unwrap(New("test")) == nil, "should return nil for non-wrapped error")
}

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrTemplate", ErrTemplate, "template rendering failed"},
		{"ErrEmptyDocument", ErrEmptyDocument, "parsing failed"},
		{"ErrNoPackageName", ErrNoPackageName, "no package name"},
		{"ErrNoTestSection", ErrNoTestSection, "no test section"},
		{"ErrNoTestSpec", ErrNoTestSpec, "no test commands or imports"},
		{"ErrProvision", ErrProvision, "environment provisioning failed"},
		{"ErrTimeout", ErrTimeout, "operation timed out"},
		{"ErrNotFound", ErrNotFound, "resource not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, tt.err.Error(), tt.want, "error message should match")
		})
	}
}

func TestIsStructural(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"template", Wrap(ErrTemplate, "x"), true},
		{"no name", ErrNoPackageName, true},
		{"no test section", ErrNoTestSection, true},
		{"malformed", Detail(ErrMalformedDocument, "bad"), true},
		{"provision", ErrProvision, false},
		{"timeout", ErrTimeout, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, IsStructural(tt.err), tt.want, "IsStructural result should match")
		})
	}
}

func TestJoin(t *testing.T) {
	joined := Join(ErrProvision, nil, ErrTimeout)

	testutil.AssertTrue(t, IsProvision(joined), "joined error should match first sentinel")
	testutil.AssertTrue(t, IsTimeout(joined), "joined error should match second sentinel")
	testutil.AssertTrue(t, Join(nil, nil) == nil, "joining only nils should return nil")
}
