package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aalvaropc/querylab/internal/domain"
	"github.com/aalvaropc/querylab/internal/infra/fsworkspace"
	"github.com/aalvaropc/querylab/internal/infra/memstore"
)

func newWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := fsworkspace.NewInitializer().Init(domain.WorkspaceSpec{Root: root}, false); err != nil {
		t.Fatalf("init workspace: %v", err)
	}
	return root
}

func execRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// --- printReport ---

func sampleReport() domain.Report {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return domain.Report{
		DataSource: "builtin",
		StartedAt:  start,
		EndedAt:    start.Add(2 * time.Millisecond),
		Sections: []domain.Section{
			{Step: 1, Slug: "people", Title: "All people", Lines: []string{"1: Sam Smith"}},
			{
				Step:  2,
				Slug:  "broken",
				Title: "Broken",
				Lines: []string{},
				Error: &domain.StepError{Kind: domain.KindEmptySequence, Message: "sequence contains no elements"},
			},
		},
	}
}

func TestPrintReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printReport(&buf, sampleReport(), "abc123", "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var payload struct {
		ReportID string        `json:"report_id"`
		Report   domain.Report `json:"report"`
	}
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json output: %v\n%s", err, buf.String())
	}
	if payload.ReportID != "abc123" {
		t.Errorf("expected report_id abc123, got %q", payload.ReportID)
	}
	if len(payload.Report.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(payload.Report.Sections))
	}
	if payload.Report.Sections[1].Error == nil {
		t.Error("expected error to survive json encoding")
	}
}

func TestPrintReport_EmptyFormat_IsPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := printReport(&buf, domain.Report{}, "", ""); err != nil {
		t.Fatalf("empty format should behave like pretty, got error: %v", err)
	}
}

func TestPrintReport_UnknownFormat_ReturnsError(t *testing.T) {
	var buf bytes.Buffer
	err := printReport(&buf, domain.Report{}, "", "xml")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Errorf("expected error to mention format, got: %v", err)
	}
}

func TestPrintPrettyReport_Sections(t *testing.T) {
	var buf bytes.Buffer
	printPrettyReport(&buf, sampleReport(), "")
	out := buf.String()

	for _, want := range []string{
		"1. All people\n1: Sam Smith\n\n",
		"2. Broken\n",
		"error: sequence contains no elements (empty_sequence)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Report ID") {
		t.Errorf("unsaved report should not print a footer, got:\n%s", out)
	}
}

func TestPrintPrettyReport_SavedFooter(t *testing.T) {
	var buf bytes.Buffer
	printPrettyReport(&buf, sampleReport(), "abc123")
	out := buf.String()

	if !strings.Contains(out, "Report ID:  abc123") {
		t.Errorf("expected report id footer, got:\n%s", out)
	}
	if !strings.Contains(out, "Duration:   2ms") {
		t.Errorf("expected duration in footer, got:\n%s", out)
	}
}

// --- printChecks ---

func TestPrintChecks_CountsFailures(t *testing.T) {
	var buf bytes.Buffer
	fails := printChecks(&buf, []domain.CheckResult{
		{Name: "a", Passed: true, Message: "ok"},
		{Name: "b", Passed: false, Message: "mismatch"},
	})
	if fails != 1 {
		t.Errorf("expected 1 failure, got %d", fails)
	}
	if !strings.Contains(buf.String(), "✗ b: mismatch") {
		t.Errorf("expected failed check line, got:\n%s", buf.String())
	}
}

// --- waitForEnter ---

func TestWaitForEnter_PrintsPromptAndReturnsOnEOF(t *testing.T) {
	var buf bytes.Buffer
	if err := waitForEnter(&buf, strings.NewReader("")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(buf.String()) != pausePrompt {
		t.Errorf("expected prompt, got %q", buf.String())
	}
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{"run", "steps", "check", "inspect", "init", "tui", "version"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	for _, flag := range []string{"workspace", "data", "debug"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected persistent --%s flag", flag)
		}
	}
	if cmd.Flags().Lookup("no-pause") == nil {
		t.Error("expected --no-pause flag on root command")
	}
}

func TestRunCmd_Flags(t *testing.T) {
	cmd := runCmd(&globalFlags{})
	if cmd.Name() != "run" {
		t.Errorf("expected name run, got %q", cmd.Name())
	}
	for _, flag := range []string{"save", "format"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on run command", flag)
		}
	}
}

func TestInitCmd_Flags(t *testing.T) {
	cmd := initCmd()
	if cmd.Flags().Lookup("path") == nil {
		t.Error("expected --path flag on init command")
	}
	if cmd.Flags().Lookup("force") == nil {
		t.Error("expected --force flag on init command")
	}
}

// --- resolveWorkspaceRoot ---

func TestResolveWorkspaceRoot_ExplicitPath(t *testing.T) {
	tmp := t.TempDir()
	got, err := resolveWorkspaceRoot(tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tmp {
		t.Errorf("expected %q, got %q", tmp, got)
	}
}

func TestResolveWorkspaceRoot_RelativePath(t *testing.T) {
	got, err := resolveWorkspaceRoot(".")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %q", got)
	}
}

// --- loadWorkspace ---

func TestOpenStore_EmptyPathUsesBuiltin(t *testing.T) {
	store, err := openStore(t.TempDir(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Source() != memstore.BuiltinSource {
		t.Errorf("expected builtin source, got %q", store.Source())
	}
}

func TestOpenStore_MissingFile(t *testing.T) {
	_, err := openStore(t.TempDir(), "nope.yaml")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestLoadWorkspace_UsesConfiguredDataset(t *testing.T) {
	root := newWorkspace(t)

	ws, err := loadWorkspace(&globalFlags{workspace: root})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ws.found {
		t.Error("expected workspace to be found")
	}
	if ws.store.Source() != "data/people.yaml" {
		t.Errorf("expected dataset from config, got %q", ws.store.Source())
	}
}

func TestLoadWorkspace_DataFlagOverridesConfig(t *testing.T) {
	root := newWorkspace(t)
	alt := filepath.Join(root, "data", "alt.yaml")
	content := "people:\n  - id: 7\n    first_name: Zed\n    last_name: Zulu\n    date_of_birth: 2000-01-01\n"
	if err := os.WriteFile(alt, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	ws, err := loadWorkspace(&globalFlags{workspace: root, data: "data/alt.yaml"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap := ws.store.Snapshot()
	if len(snap.People) != 1 || snap.People[0].FirstName != "Zed" {
		t.Errorf("expected dataset from --data, got %+v", snap.People)
	}
}

func TestLoadWorkspace_ExplicitRootWithoutConfig(t *testing.T) {
	_, err := loadWorkspace(&globalFlags{workspace: t.TempDir()})
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found for missing querylab.yaml, got %v", err)
	}
}

// --- end to end ---

func TestExecute_StepsListsCatalog(t *testing.T) {
	root := newWorkspace(t)
	out, err := execRoot(t, "", "--workspace", root, "steps")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "where-prefix") || !strings.Contains(out, "aggregate") {
		t.Errorf("expected step slugs in output, got:\n%s", out)
	}
}

func TestExecute_RunJSONSelection(t *testing.T) {
	root := newWorkspace(t)
	out, err := execRoot(t, "", "-w", root, "run", "people", "select-codes", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var payload struct {
		Report domain.Report `json:"report"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if len(payload.Report.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(payload.Report.Sections))
	}
	if got := len(payload.Report.Sections[0].Lines); got != 4 {
		t.Errorf("expected 4 people from the template dataset, got %d", got)
	}
}

func TestExecute_RunSaveWritesArtifact(t *testing.T) {
	root := newWorkspace(t)
	out, err := execRoot(t, "", "-w", root, "run", "1", "--save")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Report ID:") {
		t.Errorf("expected report id in output, got:\n%s", out)
	}

	matches, _ := filepath.Glob(filepath.Join(root, "runs", "*.json"))
	if len(matches) != 1 {
		t.Errorf("expected one saved report, got %v", matches)
	}
}

func TestExecute_RunUnknownStep(t *testing.T) {
	root := newWorkspace(t)
	_, err := execRoot(t, "", "-w", root, "run", "nope")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestExecute_RootRunsEverythingAndPauses(t *testing.T) {
	root := newWorkspace(t)
	out, err := execRoot(t, "\n", "-w", root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "16. ") {
		t.Errorf("expected every step in output, got:\n%s", out)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), pausePrompt) {
		t.Errorf("expected pause prompt at the end, got:\n%s", out)
	}
}

func TestExecute_RootNoPause(t *testing.T) {
	root := newWorkspace(t)
	out, err := execRoot(t, "", "-w", root, "--no-pause")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, pausePrompt) {
		t.Errorf("did not expect pause prompt, got:\n%s", out)
	}
}

func TestExecute_Check(t *testing.T) {
	root := newWorkspace(t)
	out, err := execRoot(t, "", "-w", root, "check")
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out)
	}
	if strings.Contains(out, "✗") {
		t.Errorf("expected all checks to pass, got:\n%s", out)
	}
}

func TestExecute_Inspect(t *testing.T) {
	root := newWorkspace(t)
	out, err := execRoot(t, "", "-w", root, "inspect", "$.people[0].firstName")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != `"Sam"` {
		t.Errorf("expected \"Sam\", got %q", out)
	}
}

func TestExecute_InspectRequiresExpression(t *testing.T) {
	_, err := execRoot(t, "", "inspect")
	if err == nil {
		t.Fatal("expected error without an expression")
	}
}

func TestExecute_InitCreatesWorkspace(t *testing.T) {
	root := t.TempDir()
	out, err := execRoot(t, "", "init", "--path", root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, root) {
		t.Errorf("expected root in output, got %q", out)
	}
	if _, err := os.Stat(filepath.Join(root, "querylab.yaml")); err != nil {
		t.Errorf("expected querylab.yaml: %v", err)
	}
}

func TestExecute_Version(t *testing.T) {
	out, err := execRoot(t, "", "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "querylab ") {
		t.Errorf("expected version line, got %q", out)
	}
}

func TestReloadLab_PicksUpDatasetEdits(t *testing.T) {
	root := newWorkspace(t)
	reload := reloadLab(&globalFlags{workspace: root})

	lb, source, err := reload()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lb == nil || source != "data/people.yaml" {
		t.Fatalf("unexpected reload result: lab=%v source=%q", lb, source)
	}

	if err := os.WriteFile(filepath.Join(root, "data", "people.yaml"), []byte("people: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := reload(); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config after breaking the dataset, got %v", err)
	}
}
