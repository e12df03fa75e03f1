//nolint:testpackage // using package name 'argser' to access unexported fields for testing
package argser

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		allowed  []string
		wantCmd  string
		wantRest []string
		wantOK   bool
	}{
		{
			name:     "first matching command",
			args:     []string{"b", "c", "--arg"},
			allowed:  []string{"a", "b"},
			wantCmd:  "b",
			wantRest: []string{"c", "--arg"},
			wantOK:   true,
		},
		{
			name:     "no matching command",
			args:     []string{"b", "c", "--arg"},
			allowed:  []string{"a"},
			wantRest: []string{"b", "c", "--arg"},
		},
		{
			name:     "only the first token is tested",
			args:     []string{"c", "a"},
			allowed:  []string{"a"},
			wantRest: []string{"c", "a"},
		},
		{
			name:     "any non-option token without an allow list",
			args:     []string{"build", "-v"},
			wantCmd:  "build",
			wantRest: []string{"-v"},
			wantOK:   true,
		},
		{
			name:     "option token is never a command",
			args:     []string{"-v", "build"},
			wantRest: []string{"-v", "build"},
		},
		{
			name:     "double dash is never a command",
			args:     []string{"--", "build"},
			wantRest: []string{"--", "build"},
		},
		{
			name:     "empty args",
			args:     nil,
			allowed:  []string{"a"},
			wantRest: []string{},
		},
		{
			name:     "duplicate allowed commands",
			args:     []string{"zip"},
			allowed:  []string{"zip", "zap", "zip"},
			wantCmd:  "zip",
			wantRest: []string{},
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, rest, ok := Command(tt.args, tt.allowed...)
			if ok != tt.wantOK || cmd != tt.wantCmd {
				t.Errorf("Command() = (%q, %v), want (%q, %v)", cmd, ok, tt.wantCmd, tt.wantOK)
			}
			if diff := cmp.Diff(tt.wantRest, rest); diff != "" {
				t.Errorf("rest mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCommand_RestIsACopy(t *testing.T) {
	args := []string{"zip", "a", "b"}
	_, rest, _ := Command(args, "zip")
	rest[0] = "changed"
	if args[1] != "a" {
		t.Errorf("Command aliased the input slice: %v", args)
	}
}

func TestCommand_ThenParse(t *testing.T) {
	cmd, rest, ok := Command([]string{"zap", "-f", "x", "-b", "1", "--bar=2"}, "zip", "zap")
	if !ok || cmd != "zap" {
		t.Fatalf("Expected command zap, got %q (ok=%v)", cmd, ok)
	}

	res, err := Parse(rest, Definitions{
		"help": Flag(),
		"foo":  String().Alias("f"),
		"bar":  Int().Many().Alias("b"),
	})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if foo, _ := res.String("foo"); foo != "x" {
		t.Errorf("Expected foo='x', got %q", foo)
	}
	if diff := cmp.Diff([]int{1, 2}, All[int](res, "bar")); diff != "" {
		t.Errorf("bar mismatch (-want +got):\n%s", diff)
	}
}

func TestCommandOS(t *testing.T) {
	saved := os.Args
	t.Cleanup(func() { os.Args = saved })

	os.Args = []string{"prog", "b", "c", "--arg"}
	cmd, rest, ok := CommandOS("a", "b")
	if !ok || cmd != "b" {
		t.Fatalf("Expected command b, got %q (ok=%v)", cmd, ok)
	}
	if diff := cmp.Diff([]string{"c", "--arg"}, rest); diff != "" {
		t.Errorf("rest mismatch (-want +got):\n%s", diff)
	}
}
