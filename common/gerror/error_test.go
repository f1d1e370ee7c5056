package gerror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hashicorp/go-multierror"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	err := NewErrAlreadyExists("job already exists")
	err = err.Wrap(fmt.Errorf("i'm a scary internal error"))
	require.Equal(t, "job already exists: i'm a scary internal error", err.Error())
	require.Equal(t, "job already exists", err.Message())

	err = err.EDetail("job", "test_p1_win_2021.1")
	require.Equal(t, "job already exists [job=test_p1_win_2021.1]: i'm a scary internal error", err.Error())
	require.Equal(t, "job already exists", err.Message())

	err = err.Wrap(NewErrNotFound("package does not exist").EDetail("package", "p0").Wrap(fmt.Errorf("i'm a scary internal error")))
	require.Equal(t, "job already exists [job=test_p1_win_2021.1]: package does not exist [package=p0]: i'm a scary internal error", err.Error())
	require.Equal(t, "job already exists", err.Message())
}

func TestDetailsAreRenderedInKeyOrder(t *testing.T) {
	err := NewErrMissingField("package p1", "packagename")
	require.Equal(t, `Missing required field "packagename" [field=packagename, record=package p1]`, err.Error())
	require.Equal(t, "packagename", err.Detail(DetailField))
	require.Equal(t, "package p1", err.Detail(DetailRecord))
	require.Nil(t, err.Detail("nope"))
}

func TestWrappedErrorsAreFound(t *testing.T) {
	inner := NewErrInvalidField("platform win", "agent", "an object", "Unity::VM")
	err := pkgerrors.Wrap(inner, "error decoding platform at index 0")
	require.True(t, IsInvalidField(err))
	require.False(t, IsMissingField(err))
	require.Equal(t, "agent", ToInvalidField(err).Detail(DetailField))
	require.True(t, IsMissingRecord(NewErrMissingRecord("editor").Wrap(err)))
}

func TestMultiError(t *testing.T) {
	// Compose a multierror with our tested error in the middle
	var results *multierror.Error

	results = multierror.Append(results, fmt.Errorf("error 1: %w", errors.New("1")))
	results = multierror.Append(results, NewErrMissingField("package p1", "name"))
	results = multierror.Append(results, fmt.Errorf("error 3: %w", errors.New("3")))

	err := results.ErrorOrNil()
	require.True(t, IsMissingField(err))

	// Wrap up the above error with another multierror
	var outerResults *multierror.Error
	outerResults = multierror.Append(err, fmt.Errorf("outer error 1: %w", errors.New("11")))

	outerErr := outerResults.ErrorOrNil()
	require.True(t, IsMissingField(outerErr))
	require.False(t, IsMissingRecord(outerErr))
}
