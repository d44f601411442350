package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	failOn   string

	calls []string
}

func (f *fakeExec) record(call string) error {
	f.calls = append(f.calls, call)
	if f.failOn != "" && strings.HasPrefix(call, f.failOn) {
		return errors.New("boom")
	}
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error {
	f.loggedIn = true
	return f.record("register")
}
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) WhoAmI(context.Context) error    { return f.record("whoami") }
func (f *fakeExec) Users(context.Context) error     { return f.record("users") }
func (f *fakeExec) Templates(context.Context) error { return f.record("templates") }
func (f *fakeExec) Tags(context.Context) error      { return f.record("tags") }
func (f *fakeExec) UserAction(_ context.Context, action string, ids []string) error {
	return f.record(action + " " + strings.Join(ids, ","))
}
func (f *fakeExec) Template(_ context.Context, id string) error { return f.record("template " + id) }
func (f *fakeExec) Forms(_ context.Context, id string) error    { return f.record("forms " + id) }
func (f *fakeExec) Comments(_ context.Context, id string) error { return f.record("comments " + id) }
func (f *fakeExec) Comment(_ context.Context, id, text string) error {
	return f.record("comment " + id + " " + text)
}
func (f *fakeExec) Like(_ context.Context, id string) error   { return f.record("like " + id) }
func (f *fakeExec) Open(_ context.Context, path string) error { return f.record("open " + path) }

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_Dispatch(t *testing.T) {
	capturePrintln(t)

	input := strings.Join([]string{
		"",
		"login",
		"whoami",
		"users",
		"block 2 3",
		"unblock 2",
		"makeadmin 4",
		"makeuser 4",
		"deleteusers 5 6",
		"templates",
		"template 10",
		"tags",
		"forms 10",
		"comments 10",
		"comment 10 very nice survey",
		"like 10",
		"open /templates/10",
		"logout",
		"register",
		"exit",
		"login",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "/login" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"login",
		"whoami",
		"users",
		"block 2,3",
		"unblock 2",
		"makeAdmin 4",
		"makeUser 4",
		"delete 5,6",
		"templates",
		"template 10",
		"tags",
		"forms 10",
		"comments 10",
		"comment 10 very nice survey",
		"like 10",
		"open /templates/10",
		"logout",
		"register",
	}, exec.calls)
}

func TestRunREPL_UsageAndUnknown(t *testing.T) {
	lines := capturePrintln(t)

	input := "block\ntemplate\ntemplate 1 2\ncomment 5\nopen\nfrobnicate\nquit\n"
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "/templates" }, bufio.NewReader(strings.NewReader(input)))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *lines, "Usage: block <id> [id...]")
	assert.Contains(t, *lines, "Usage: template <id>")
	assert.Contains(t, *lines, "Usage: comment <templateId> <text>")
	assert.Contains(t, *lines, "Usage: open <path>")
	assert.Contains(t, *lines, "Unknown command: frobnicate")
	assert.Contains(t, *lines, "Bye!")
	assert.Contains(t, *lines, "forms /templates> ")
}

func TestRunREPL_HelpDependsOnLogin(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("help\nlogin\nhelp\n")))

	var help []string
	for _, l := range *lines {
		if strings.HasPrefix(l, "Available commands") {
			help = append(help, l)
		}
	}
	if assert.Len(t, help, 2) {
		assert.Equal(t, "Available commands: register, login, open, exit", help[0])
		assert.Contains(t, help[1], "templates")
	}
}

func TestRunREPL_ErrorsArePrinted(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{failOn: "users"}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("users\ntags")))

	assert.Equal(t, []string{"users", "tags"}, exec.calls)
	assert.Contains(t, *lines, "Error: boom")
}
