package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const boolFixture = `
coverage:
  - name: bool
    params: [{name: b, type: Bool}]
    clauses: [["true"]%s]
    covers: %s
`

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func fixtureText(clauses, covers string) string {
	return strings.Replace(strings.Replace(boolFixture, "%s", clauses, 1), "%s", covers, 1)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	pass := writeFixture(t, dir, "pass.yaml", fixtureText(`, ["false"]`, "true"))
	fail := writeFixture(t, dir, "fail.yaml", fixtureText("", "true"))
	broken := writeFixture(t, dir, "broken.yaml", "coverage: [")

	tests := []struct {
		name   string
		args   []string
		status int
		output []string
	}{
		{"passing fixture", []string{pass}, 0, []string{"PASS coverage/bool: covers", "ok: 1 passed, 0 failed"}},
		{"failing fixture", []string{fail}, 1, []string{"FAIL coverage/bool: does not cover, want covers", "    0 | true"}},
		{"broken fixture", []string{broken}, 1, []string{"ERROR ", "FAILED: 0 passed, 0 failed, 1 errors"}},
		{"directory", []string{dir}, 1, []string{"== " + pass, "== " + fail, "1 passed, 1 failed, 1 errors"}},
		{"verbose", []string{"-v", pass}, 0, []string{"PASS coverage/bool: covers", "    1 | false"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			status := run(tt.args, &stdout, &stderr)
			if status != tt.status {
				t.Errorf("status = %d, want %d\n%s", status, tt.status, stdout.String())
			}
			for _, want := range tt.output {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("output does not contain %q:\n%s", want, stdout.String())
				}
			}
		})
	}
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no fixtures", nil},
		{"bad colour mode", []string{"-color", "sometimes", "x.yaml"}},
		{"unknown flag", []string{"-x", "x.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if status := run(tt.args, &stdout, &stderr); status != 2 {
				t.Errorf("status = %d, want 2", status)
			}
		})
	}
}

func TestRunMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if status := run([]string{filepath.Join(t.TempDir(), "missing.yaml")}, &stdout, &stderr); status != 1 {
		t.Errorf("status = %d, want 1", status)
	}
}

func TestRunHistory(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "runs.db")
	path := writeFixture(t, dir, "bool.yaml", fixtureText("", "false"))

	var stdout, stderr bytes.Buffer
	if status := run([]string{"-db", db, path}, &stdout, &stderr); status != 0 {
		t.Fatalf("first run: status %d\n%s", status, stdout.String())
	}
	if strings.Contains(stdout.String(), "(was") {
		t.Errorf("first run flags a change:\n%s", stdout.String())
	}

	writeFixture(t, dir, "bool.yaml", fixtureText(`, ["false"]`, "true"))
	stdout.Reset()
	if status := run([]string{"-db", db, path}, &stdout, &stderr); status != 0 {
		t.Fatalf("second run: status %d\n%s", status, stdout.String())
	}
	if !strings.Contains(stdout.String(), "PASS coverage/bool: covers (was does not cover)") {
		t.Errorf("second run does not flag the change:\n%s", stdout.String())
	}
}
