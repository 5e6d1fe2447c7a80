package cmd

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/salmonumbrella/toggl-cli/internal/secrets"
	"github.com/salmonumbrella/toggl-cli/internal/transport"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "success",
			err:  nil,
			want: ExitSuccess,
		},
		{
			name: "usage",
			err:  errors.New("unknown flag: --oops"),
			want: ExitUsage,
		},
		{
			name: "usage-sentinel",
			err:  fmt.Errorf("%w: --start and --end must be used together", ErrUsage),
			want: ExitUsage,
		},
		{
			name: "unauthorized",
			err:  &transport.HTTPError{StatusCode: 401, Status: "401 Unauthorized"},
			want: ExitAuth,
		},
		{
			name: "empty credential",
			err:  secrets.ErrEmptyCredential,
			want: ExitAuth,
		},
		{
			name: "store backend failure",
			err:  &secrets.StoreError{Op: "read", Err: errors.New("dbus unavailable")},
			want: ExitAuth,
		},
		{
			name: "prompt failure",
			err:  &secrets.PromptError{Err: errors.New("stdin is not a terminal")},
			want: ExitAuth,
		},
		{
			name: "not found",
			err:  errors.New("project not found in workspace 5: Infra"),
			want: ExitNotFound,
		},
		{
			name: "temporary",
			err:  &transport.HTTPError{StatusCode: 503, Status: "503 Service Unavailable"},
			want: ExitTemporary,
		},
		{
			name: "canceled",
			err:  context.Canceled,
			want: ExitCanceled,
		},
		{
			name: "general",
			err:  errors.New("boom"),
			want: ExitGeneral,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExitCode(tc.err)
			if got != tc.want {
				t.Fatalf("ExitCode()=%d, want %d (err=%v)", got, tc.want, tc.err)
			}
		})
	}
}
