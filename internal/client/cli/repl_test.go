package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
	args  []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) SignUp(ctx context.Context) error {
	f.calls = append(f.calls, "signup")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) PutNote(ctx context.Context) error {
	f.calls = append(f.calls, "put")
	return nil
}
func (f *fakeExec) ShowNote(ctx context.Context, targetID string) error {
	f.calls = append(f.calls, "show")
	f.arg = targetID
	return nil
}
func (f *fakeExec) DeleteNote(ctx context.Context) error {
	f.calls = append(f.calls, "delete")
	return nil
}
func (f *fakeExec) Share(ctx context.Context, to []string) error {
	f.calls = append(f.calls, "share")
	f.args = to
	return nil
}
func (f *fakeExec) Users(ctx context.Context) error {
	f.calls = append(f.calls, "users")
	return nil
}
func (f *fakeExec) Me(ctx context.Context) error { f.calls = append(f.calls, "me"); return nil }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"put",
		"show bob",
		"share bob carol",
		"users",
		"me",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "put", "show", "share", "users", "me"}
	if len(exec.calls) != len(wantOrder) {
		t.Fatalf("calls: %v, want %v", exec.calls, wantOrder)
	}
	for i, c := range wantOrder {
		if exec.calls[i] != c {
			t.Fatalf("call %d: got %q, want %q (all: %v)", i, exec.calls[i], c, exec.calls)
		}
	}

	if exec.arg != "bob" {
		t.Fatalf("show target: got %q, want %q", exec.arg, "bob")
	}
	if len(exec.args) != 2 || exec.args[0] != "bob" || exec.args[1] != "carol" {
		t.Fatalf("share recipients: %v", exec.args)
	}
}

func TestRunREPL_ShowWithoutArgUsesOwnNote(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("show\nexit\n")
	exec := &fakeExec{loggedIn: true, arg: "sentinel"}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if exec.arg != "" {
		t.Fatalf("want empty target, got %q", exec.arg)
	}
}

func TestRunREPL_QuitStopsLoop(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("quit\nlogin\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls after quit: %v", exec.calls)
	}
}

func TestRunREPL_EOFStopsLoop(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("users\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "users" {
		t.Fatalf("calls: %v", exec.calls)
	}
}
