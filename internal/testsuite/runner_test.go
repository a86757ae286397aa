package testsuite_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/swansonlang/s0/internal/testsuite"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
}

const fixtureHeader = "%TAG !s0! tag:swanson-lang.org,2016:s0/\n" +
	"%TAG !swanson! tag:swanson-lang.org,2016:swanson/\n"

const goodModule = `module:
  inputs:
    self: !s0!any {}
  statements: []
  invocation: !s0!invoke-closure
    src: self
    branch: body
    parameters: {}
`

const badModule = `module:
  inputs: {}
  statements: []
  invocation: !s0!invoke-closure
    src: missing
    branch: body
    parameters: {}
`

func runOne(t *testing.T, content string) testsuite.Result {
	t.Helper()
	dir := t.TempDir()
	writeFixture(t, dir, "case.yaml", content)
	summary, err := testsuite.RunDirectories([]string{dir}, nil)
	if err != nil {
		t.Fatalf("RunDirectories: %v", err)
	}
	if len(summary.Results) != 1 {
		t.Fatalf("result count = %d, want 1", len(summary.Results))
	}
	return summary.Results[0]
}

// ---------- the four protocol outcomes ----------

func TestRun_SuccessfulParseThatLoadsPasses(t *testing.T) {
	r := runOne(t, fixtureHeader+"--- !swanson!successful-parse\nname: loads\n"+goodModule)
	if r.Outcome != testsuite.Pass {
		t.Errorf("outcome = %s (%s), want pass", r.Outcome, r.Diagnostic)
	}
	if r.Case.Name != "loads" {
		t.Errorf("case name = %q, want loads", r.Case.Name)
	}
}

func TestRun_SuccessfulParseThatFailsToLoadFails(t *testing.T) {
	r := runOne(t, fixtureHeader+"--- !swanson!successful-parse\nname: broken\n"+badModule)
	if r.Outcome != testsuite.Fail {
		t.Errorf("outcome = %s, want fail", r.Outcome)
	}
	if !strings.Contains(r.Diagnostic, "Unexpected error") {
		t.Errorf("diagnostic = %q, want the loader error surfaced", r.Diagnostic)
	}
}

func TestRun_InvalidParseThatFailsToLoadPasses(t *testing.T) {
	r := runOne(t, fixtureHeader+"--- !swanson!invalid-parse\nname: rejected\n"+badModule)
	if r.Outcome != testsuite.Pass {
		t.Errorf("outcome = %s, want pass", r.Outcome)
	}
}

func TestRun_InvalidParseThatLoadsFails(t *testing.T) {
	r := runOne(t, fixtureHeader+"--- !swanson!invalid-parse\nname: too-good\n"+goodModule)
	if r.Outcome != testsuite.Fail {
		t.Errorf("outcome = %s, want fail", r.Outcome)
	}
	if !strings.Contains(r.Diagnostic, "Unexpected successful parse") {
		t.Errorf("diagnostic = %q", r.Diagnostic)
	}
}

// ---------- NIY placeholders ----------

func TestRun_ScalarModuleUnderInvalidParseIsNIY(t *testing.T) {
	r := runOne(t, fixtureHeader+"--- !swanson!invalid-parse\nname: later\nmodule: \"not written yet\"\n")
	if r.Outcome != testsuite.NotImplemented {
		t.Errorf("outcome = %s, want niy", r.Outcome)
	}
}

func TestRun_ScalarModuleUnderSuccessfulParseFails(t *testing.T) {
	r := runOne(t, fixtureHeader+"--- !swanson!successful-parse\nname: later\nmodule: \"not written yet\"\n")
	if r.Outcome != testsuite.Fail {
		t.Errorf("outcome = %s, want fail", r.Outcome)
	}
}

// ---------- harness-level protocol errors ----------

func TestRun_MissingNameAbortsTheRun(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "case.yaml", fixtureHeader+"--- !swanson!invalid-parse\n"+badModule)
	if _, err := testsuite.RunDirectories([]string{dir}, nil); err == nil {
		t.Fatal("a case without a name is a harness error, not a test failure")
	}
}

func TestRun_UnknownDocumentTagAbortsTheRun(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "case.yaml", fixtureHeader+"--- !swanson!maybe-parse\nname: x\n"+goodModule)
	if _, err := testsuite.RunDirectories([]string{dir}, nil); err == nil {
		t.Fatal("an unknown document tag is a harness error")
	}
}

// ---------- aggregation ----------

func TestRun_MultipleDocumentsAndSummary(t *testing.T) {
	dir := t.TempDir()
	content := fixtureHeader + "--- !swanson!successful-parse\nname: first\n" + goodModule +
		fixtureHeader + "--- !swanson!invalid-parse\nname: second\n" + badModule
	writeFixture(t, dir, "cases.yaml", content)

	var streamed []string
	summary, err := testsuite.RunDirectories([]string{dir}, func(r testsuite.Result) {
		streamed = append(streamed, r.Case.Name)
	})
	if err != nil {
		t.Fatalf("RunDirectories: %v", err)
	}
	if len(summary.Results) != 2 {
		t.Fatalf("result count = %d, want 2", len(summary.Results))
	}
	if !summary.Passed() {
		t.Error("both cases conform, summary should pass")
	}
	if len(streamed) != 2 || streamed[0] != "first" || streamed[1] != "second" {
		t.Errorf("onCase saw %v, want [first second]", streamed)
	}
}

func TestRun_SummaryFailsWhenAnyCaseFails(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "cases.yaml",
		fixtureHeader+"--- !swanson!invalid-parse\nname: too-good\n"+goodModule)
	summary, err := testsuite.RunDirectories([]string{dir}, nil)
	if err != nil {
		t.Fatalf("RunDirectories: %v", err)
	}
	if summary.Passed() {
		t.Error("summary should fail when a case does not conform")
	}
}

func TestRun_NonYamlFilesAreIgnored(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "notes.txt", "not yaml")
	writeFixture(t, dir, "case.yaml",
		fixtureHeader+"--- !swanson!successful-parse\nname: only\n"+goodModule)
	summary, err := testsuite.RunDirectories([]string{dir}, nil)
	if err != nil {
		t.Fatalf("RunDirectories: %v", err)
	}
	if len(summary.Results) != 1 {
		t.Errorf("result count = %d, want 1", len(summary.Results))
	}
}

// ---------- reporter ----------

func TestTAPReporter_Output(t *testing.T) {
	var buf bytes.Buffer
	r := testsuite.NewTAPReporter(&buf, false)
	r.Plan(2)
	r.File("fixtures/case.yaml")
	r.Case(testsuite.Result{Case: testsuite.Case{Name: "good"}, Outcome: testsuite.Pass})
	r.Case(testsuite.Result{
		Case:       testsuite.Case{Name: "bad"},
		Outcome:    testsuite.Fail,
		Diagnostic: "Unexpected error: boom",
	})

	got := buf.String()
	want := "1..2\n# fixtures/case.yaml\nok 1 - good\nnot ok 2 - bad\n# Unexpected error: boom\n"
	if got != want {
		t.Errorf("TAP output:\n%q\nwant:\n%q", got, want)
	}
}

func TestTAPReporter_NIYAndColor(t *testing.T) {
	var buf bytes.Buffer
	r := testsuite.NewTAPReporter(&buf, true)
	r.Case(testsuite.Result{Case: testsuite.Case{Name: "later"}, Outcome: testsuite.NotImplemented})

	got := buf.String()
	if !strings.Contains(got, "NIY later") {
		t.Errorf("output %q should mark the case NIY", got)
	}
	if !strings.Contains(got, "\x1b[32m") {
		t.Errorf("output %q should be colorized when enabled", got)
	}
}
