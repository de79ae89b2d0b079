package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ytget/places-guide/internal/app"
)

func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := NewRootCmd("test", nil)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("places %v failed: %v", args, err)
	}
	return out.String()
}

func TestCategoriesCmd(t *testing.T) {
	out := run(t, "", "categories")

	for _, expected := range []string{"Достопримечательности", "Парки", "Рестораны"} {
		if !strings.Contains(out, expected) {
			t.Errorf("Expected output to contain %q, got:\n%s", expected, out)
		}
	}
}

func TestListCmd(t *testing.T) {
	out := run(t, "", "list", "Рестораны")

	if !strings.Contains(out, "1. Ресторан Ramiro · Рейтинг: 4.7") {
		t.Errorf("Unexpected output:\n%s", out)
	}
}

func TestShowCmd(t *testing.T) {
	tests := []struct {
		id       string
		expected string
	}{
		{"1", "== Башня Белен =="},
		{"999", "Место не найдено"},
		{"abc", "Место не найдено"},
	}

	for _, test := range tests {
		out := run(t, "", "show", test.id)
		if !strings.Contains(out, test.expected) {
			t.Errorf("show %s: expected %q in output, got:\n%s", test.id, test.expected, out)
		}
	}
}

func TestBrowseCmd(t *testing.T) {
	out := run(t, "2\n1\nq\n", "browse")

	if !strings.Contains(out, "== Парк Эдуарда VII ==") {
		t.Errorf("Expected park details in transcript, got:\n%s", out)
	}
}

func TestListCmd_RequiresCategory(t *testing.T) {
	cmd := NewRootCmd("test", nil)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"list"})

	if err := cmd.Execute(); err == nil {
		t.Error("Expected an error without a category argument")
	}
}

func TestRootCmd_OpensGUI(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"default", []string{"--assets", "/tmp/images"}},
		{"gui subcommand", []string{"gui", "--assets", "/tmp/images"}},
	}

	for _, test := range tests {
		var got *app.Options
		cmd := NewRootCmd("1.2.3", func(o app.Options) error {
			got = &o
			return nil
		})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs(test.args)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("%s: unexpected error: %v", test.name, err)
		}
		if got == nil {
			t.Fatalf("%s: expected the GUI runner to be called", test.name)
		}
		if got.AssetsDir != "/tmp/images" || got.Version != "1.2.3" {
			t.Errorf("%s: unexpected options %+v", test.name, *got)
		}
	}
}

func TestRootCmd_WithoutGUI(t *testing.T) {
	cmd := NewRootCmd("test", nil)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"gui"})

	if err := cmd.Execute(); !errors.Is(err, ErrNoGUI) {
		t.Errorf("Expected ErrNoGUI, got %v", err)
	}
}
