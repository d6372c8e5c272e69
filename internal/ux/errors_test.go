package ux

import (
	goerrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/tstackhq/tstack-kit/internal/errors"
)

func TestEnhanceErrorNil(t *testing.T) {
	if EnhanceError(nil) != nil {
		t.Error("EnhanceError(nil) should return nil")
	}
}

func TestEnhanceErrorKitErrorPassthrough(t *testing.T) {
	kitErr := errors.NewRolesRequiredError()
	if got := EnhanceError(kitErr); got != error(kitErr) {
		t.Error("coded errors should pass through unchanged")
	}
}

func TestEnhanceErrorFileSuggestions(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want string
	}{
		{
			name: "missing lock file",
			msg:  "open .tstack/scaffold.lock.json: no such file or directory",
			want: "tstack-kit spec lock",
		},
		{
			name: "missing plan file",
			msg:  "open .tstack/plans/article.plan.json: no such file or directory",
			want: "tstack-kit plan create",
		},
		{
			name: "missing project dir",
			msg:  "open .tstack: no such file or directory",
			want: "tstack-kit new",
		},
		{
			name: "yaml syntax",
			msg:  "yaml: line 3: found character that cannot start any token",
			want: "YAML syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enhanced := EnhanceError(goerrors.New(tt.msg))
			if !strings.Contains(enhanced.Error(), tt.want) {
				t.Errorf("expected suggestion containing %q, got: %v", tt.want, enhanced)
			}

			var withSuggestion *ErrorWithSuggestion
			if !goerrors.As(enhanced, &withSuggestion) {
				t.Fatal("expected an ErrorWithSuggestion")
			}
			if withSuggestion.Unwrap().Error() != tt.msg {
				t.Error("original error should be preserved via Unwrap")
			}
		})
	}
}

func TestEnhanceErrorUnknownPassthrough(t *testing.T) {
	err := goerrors.New("something unrelated happened")
	if got := EnhanceError(err); got != err {
		t.Error("unknown errors should pass through unchanged")
	}
}

func TestFormatError(t *testing.T) {
	if FormatError(nil, "loading plan") != nil {
		t.Error("FormatError(nil) should be nil")
	}

	err := FormatError(fmt.Errorf("open .tstack/plans/article.plan.json: no such file or directory"), "loading plan")
	if !strings.HasPrefix(err.Error(), "loading plan: ") {
		t.Errorf("formatted error should carry the context prefix: %v", err)
	}
	if !strings.Contains(err.Error(), "plan create") {
		t.Errorf("formatted error should carry the suggestion: %v", err)
	}

	var withSuggestion *ErrorWithSuggestion
	if !goerrors.As(err, &withSuggestion) {
		t.Error("enhanced error should survive wrapping")
	}
}
