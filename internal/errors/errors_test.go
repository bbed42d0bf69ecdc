package errors

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{"sentinel", NewUserError(ErrUnknownRule, ""), "unknown rule"},
		{"wrapped", NewExitError(Wrap(ErrInvalidConfig, "loading config"), ExitUser), "loading config: invalid configuration"},
		{"formatted", NewExitError(Wrapf(ErrValidationFailed, "%d of %d document(s)", 1, 3), ExitUser), "1 of 3 document(s): validation failed"},
		{"nil cause", NewExitError(nil, ExitSystem), "exit code 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestExitError_Chain(t *testing.T) {
	inner := Wrapf(ErrUnsupportedFormat, "%s", "api.txt")
	err := Wrap(NewUserError(inner, "use .yaml"), "validating")

	assert.True(t, Is(err, ErrUnsupportedFormat))
	assert.False(t, Is(err, ErrInvalidDocument))
	assert.True(t, stderrors.Is(err, ErrUnsupportedFormat), "stdlib errors.Is should see the sentinel too")

	var exitErr *ExitError
	require.True(t, As(err, &exitErr))
	assert.Equal(t, ExitUser, exitErr.Code)
	assert.Equal(t, "use .yaml", exitErr.Suggestion)
	assert.Equal(t, inner, Unwrap(exitErr))
}

func TestConstructors(t *testing.T) {
	cause := New("boom")

	tests := []struct {
		name       string
		err        *ExitError
		code       int
		suggestion string
	}{
		{"exit", NewExitError(cause, ExitSystem), ExitSystem, ""},
		{"user", NewUserError(cause, "fix the input"), ExitUser, "fix the input"},
		{"system", NewSystemError(cause, "retry"), ExitSystem, "retry"},
		{"config", NewConfigError(cause), ExitUser, "Check speclint.yaml or run: speclint --help"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, cause, tt.err.Err)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.suggestion, tt.err.Suggestion)
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrNotFound, ErrInvalidConfig, ErrInvalidDocument, ErrUnsupportedFormat, ErrUnknownRule, ErrValidationFailed}
	for i, a := range sentinels {
		assert.NotEmpty(t, a.Error())
		for j, b := range sentinels {
			assert.Equal(t, i == j, Is(a, b), "%v vs %v", a, b)
		}
	}
}

func TestMark(t *testing.T) {
	err := Mark(Wrap(fs.ErrNotExist, "reading api.yaml"), ErrNotFound)

	assert.True(t, Is(err, ErrNotFound))
	assert.True(t, Is(err, fs.ErrNotExist))
	assert.Equal(t, "reading api.yaml: file does not exist", err.Error())
	assert.Equal(t, fs.ErrNotExist, UnwrapAll(err))
}

func TestJoin(t *testing.T) {
	err := Join(ErrInvalidConfig, New("format: must be text or json"))

	assert.True(t, Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "format: must be text or json")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain", New("disk full"), ExitSystem},
		{"user", NewUserError(ErrUnknownRule, ""), ExitUser},
		{"wrapped user", Wrap(NewUserError(ErrUnknownRule, ""), "selecting rules"), ExitUser},
		{"explicit success", NewExitError(nil, ExitSuccess), ExitSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
