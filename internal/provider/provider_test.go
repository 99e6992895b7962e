package provider

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/gesture/internal/photo"
)

func TestError_IsMatchesKind(t *testing.T) {
	cause := errors.New("dial tcp: refused")

	tests := []struct {
		err  *Error
		want error
		not  []error
	}{
		{Unavailable("cats", cause), ErrUnavailable, []error{ErrMalformed, ErrEmptyResult}},
		{Malformed("cats", cause), ErrMalformed, []error{ErrUnavailable, ErrEmptyResult}},
		{Empty("cats"), ErrEmptyResult, []error{ErrUnavailable, ErrMalformed}},
	}
	for _, tt := range tests {
		t.Run(tt.err.Kind.String(), func(t *testing.T) {
			wrapped := fmt.Errorf("search: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.want)
			for _, other := range tt.not {
				assert.NotErrorIs(t, wrapped, other)
			}
		})
	}
}

func TestError_UnwrapsCause(t *testing.T) {
	err := Unavailable("dogs", context.DeadlineExceeded)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "provider unavailable")
}

func TestError_EmptyMessage(t *testing.T) {
	assert.Equal(t, `no results for "zzz"`, Empty("zzz").Error())
}

func TestKindOf(t *testing.T) {
	k, ok := KindOf(fmt.Errorf("wrap: %w", Malformed("q", nil)))
	require.True(t, ok)
	assert.Equal(t, KindMalformed, k)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Unavailable", KindUnavailable.String())
	assert.Equal(t, "Malformed", KindMalformed.String())
	assert.Equal(t, "Empty", KindEmpty.String())
	assert.Equal(t, "Unknown", Kind(42).String())
}

func TestMock_Fetch(t *testing.T) {
	m := NewMock()
	items := []photo.Item{{ID: "1"}, {ID: "2"}, {ID: "3"}}
	m.Respond("cats", Response{Items: items})

	got, err := m.Fetch(context.Background(), "cats", 2)
	require.NoError(t, err)
	assert.Equal(t, items[:2], got)

	_, err = m.Fetch(context.Background(), "dogs", 10)
	require.ErrorIs(t, err, ErrEmptyResult)

	assert.Equal(t, []Call{{"cats", 2}, {"dogs", 10}}, m.Calls())
}

func TestMock_ReleaseHonoursContext(t *testing.T) {
	m := NewMock()
	m.Respond("slow", Response{Items: []photo.Item{{ID: "1"}}, Release: make(chan struct{})})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Fetch(ctx, "slow", 1)
	require.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
}
