package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"psiquitools/internal/clipboard"
	"psiquitools/internal/config"
	"psiquitools/internal/mentalstatus"
	"psiquitools/internal/scales"
	"psiquitools/internal/timeline"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// setupCLI resets command state and points exports at a temp directory.
func setupCLI(t *testing.T) string {
	t.Helper()
	logger = zap.NewNop()

	dir := t.TempDir()
	cfg = config.DefaultConfig()
	cfg.Document.OutputDir = dir

	scaleAnswers, scaleCopy = nil, false
	mseSelect, mseText, msePDF = nil, nil, ""
	historyFrom, historyPDF = "", ""
	timelineFile, timelineAdd, timelinePDF, timelineXLSX = "", nil, "", ""
	resourcesPlain = false

	orig := newClipboard
	t.Cleanup(func() { newClipboard = orig })
	return dir
}

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origOut := os.Stdout
	origErr := os.Stderr
	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rOut)
		_, _ = io.Copy(&buf, rErr)
		done <- buf.String()
	}()

	fn()

	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout = origOut
	os.Stderr = origErr
	return <-done
}

func TestSplitAssignment(t *testing.T) {
	k, v, err := splitAssignment("answer", " nausea =4")
	if err != nil {
		t.Fatalf("splitAssignment returned error: %v", err)
	}
	if k != "nausea" || v != "4" {
		t.Fatalf("got %q=%q", k, v)
	}

	k, v, err = splitAssignment("add", "2024-01-10=Dose = 5mg")
	if err != nil || k != "2024-01-10" || v != "Dose = 5mg" {
		t.Fatalf("value should keep later '=': %q=%q (%v)", k, v, err)
	}

	for _, bad := range []string{"nausea", "=4", ""} {
		if _, _, err := splitAssignment("answer", bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestRunScaleHeadless(t *testing.T) {
	setupCLI(t)
	scaleAnswers = []string{"nausea=4", "tremor=1"}

	output := captureOutput(t, func() {
		if err := runScale(&cobra.Command{}, []string{"CIWA-Ar"}); err != nil {
			t.Fatalf("runScale returned error: %v", err)
		}
	})

	for _, want := range []string{"Total score: 5", "Severity: Mild", "Recommendation: Clinical observation", "2 of 10 items answered"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestRunScaleCopy(t *testing.T) {
	setupCLI(t)
	rec := &clipboard.Recorder{}
	newClipboard = func() clipboard.Writer { return rec }
	scaleAnswers = []string{"nervous=3"}
	scaleCopy = true

	output := captureOutput(t, func() {
		if err := runScale(&cobra.Command{}, []string{"gad-7"}); err != nil {
			t.Fatalf("runScale returned error: %v", err)
		}
	})

	if !strings.Contains(output, "Copied to clipboard.") {
		t.Errorf("expected copy confirmation, got: %s", output)
	}
	if !strings.Contains(rec.Last(), "Total score: 3") {
		t.Errorf("clipboard got %q", rec.Last())
	}
}

func TestRunScaleCopyUnavailable(t *testing.T) {
	setupCLI(t)
	newClipboard = func() clipboard.Writer {
		return clipboard.WriterFunc(func(string) error { return clipboard.ErrUnavailable })
	}
	scaleCopy = true

	output := captureOutput(t, func() {
		if err := runScale(&cobra.Command{}, []string{"phq-9"}); err != nil {
			t.Fatalf("a failed copy must not fail the command: %v", err)
		}
	})
	if !strings.Contains(output, "Clipboard unavailable") {
		t.Errorf("expected clipboard notice, got: %s", output)
	}
}

func TestRunScaleErrors(t *testing.T) {
	setupCLI(t)

	err := runScale(&cobra.Command{}, []string{"madrs"})
	if !errors.Is(err, scales.ErrUnknownScale) {
		t.Errorf("expected ErrUnknownScale, got %v", err)
	}

	scaleAnswers = []string{"nausea=5"}
	err = runScale(&cobra.Command{}, []string{"ciwa-ar"})
	if !errors.Is(err, scales.ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue, got %v", err)
	}

	scaleAnswers = []string{"nausea=x"}
	if err := runScale(&cobra.Command{}, []string{"ciwa-ar"}); err == nil {
		t.Error("expected error for a non-numeric answer")
	}

	scaleAnswers = []string{"nausea=1"}
	if err := runScale(&cobra.Command{}, nil); err == nil {
		t.Error("expected error for --answer without a scale id")
	}
}

func TestRunMSEHeadless(t *testing.T) {
	dir := setupCLI(t)
	mseSelect = []string{"consciousness=Conscious", "consciousness=Conscious", "speech=Coherent"}
	mseText = []string{"speech=soft voice."}
	msePDF = "mse.txt"

	output := captureOutput(t, func() {
		if err := runMSE(&cobra.Command{}, nil); err != nil {
			t.Fatalf("runMSE returned error: %v", err)
		}
	})

	if !strings.Contains(output, "Conscious. Coherent. soft voice.") {
		t.Errorf("unexpected narrative: %s", output)
	}
	data, err := os.ReadFile(filepath.Join(dir, "mse.txt"))
	if err != nil {
		t.Fatalf("export not written: %v", err)
	}
	if !strings.Contains(string(data), "MENTAL STATUS EXAMINATION") {
		t.Errorf("export missing title: %s", data)
	}
}

func TestRunMSEUnknownPhrase(t *testing.T) {
	setupCLI(t)
	mseSelect = []string{"mood=Ecstatic beyond words"}

	err := runMSE(&cobra.Command{}, nil)
	if !errors.Is(err, mentalstatus.ErrUnknownPhrase) {
		t.Errorf("expected ErrUnknownPhrase, got %v", err)
	}
}

func TestRunMSEEmptyExport(t *testing.T) {
	setupCLI(t)
	msePDF = "empty.pdf"

	output := captureOutput(t, func() {
		if err := runMSE(&cobra.Command{}, nil); err != nil {
			t.Fatalf("runMSE returned error: %v", err)
		}
	})
	if !strings.Contains(output, mentalstatus.NoData) {
		t.Errorf("expected no-data notice, got: %s", output)
	}
}

func TestRunHistoryExport(t *testing.T) {
	dir := setupCLI(t)
	draft := filepath.Join(dir, "draft.yaml")
	yaml := "identification:\n  identifier: PT-7\nchief_complaint: Insomnia\n"
	if err := os.WriteFile(draft, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	historyFrom = draft
	historyPDF = "history.md"

	captureOutput(t, func() {
		if err := runHistory(&cobra.Command{}, nil); err != nil {
			t.Fatalf("runHistory returned error: %v", err)
		}
	})

	data, err := os.ReadFile(filepath.Join(dir, "history.md"))
	if err != nil {
		t.Fatalf("export not written: %v", err)
	}
	for _, want := range []string{"Identifier: PT-7", "Insomnia", "Not specified"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("export missing %q", want)
		}
	}
}

func TestRunHistoryPDFNeedsDraft(t *testing.T) {
	setupCLI(t)
	historyPDF = "history.pdf"
	if err := runHistory(&cobra.Command{}, nil); err == nil {
		t.Fatal("expected error without --from")
	}
}

func TestRunTimelineHeadless(t *testing.T) {
	dir := setupCLI(t)
	timelineFile = filepath.Join(dir, "events.yaml")
	timelineAdd = []string{"2024-01-10=Admission A", "2024-03-02=Follow-up B"}
	timelineXLSX = "timeline.xlsx"

	output := captureOutput(t, func() {
		if err := runTimeline(&cobra.Command{}, nil); err != nil {
			t.Fatalf("runTimeline returned error: %v", err)
		}
	})

	b := strings.Index(output, "02/03/2024  Follow-up B")
	a := strings.Index(output, "10/01/2024  Admission A")
	if a < 0 || b < 0 || b > a {
		t.Errorf("expected newest first, got: %s", output)
	}

	m, err := timeline.LoadFile(timelineFile)
	if err != nil {
		t.Fatalf("events file not readable: %v", err)
	}
	if m.Len() != 2 {
		t.Errorf("expected 2 saved events, got %d", m.Len())
	}

	f, err := excelize.OpenFile(filepath.Join(dir, "timeline.xlsx"))
	if err != nil {
		t.Fatalf("workbook not written: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows("Timeline")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 || rows[1][1] != "Admission A" {
		t.Errorf("unexpected rows: %v", rows)
	}
}

func TestRunTimelineErrors(t *testing.T) {
	setupCLI(t)

	timelineAdd = []string{"10/01/2024=Admission"}
	err := runTimeline(&cobra.Command{}, nil)
	if !errors.Is(err, timeline.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}

	timelineAdd = nil
	timelinePDF = "timeline.pdf"
	err = runTimeline(&cobra.Command{}, nil)
	if !errors.Is(err, timeline.ErrNoEvents) {
		t.Errorf("expected ErrNoEvents, got %v", err)
	}
}

func TestRunResourcesPlain(t *testing.T) {
	setupCLI(t)
	resourcesPlain = true

	output := captureOutput(t, func() {
		if err := runResources(&cobra.Command{}, []string{"panic"}); err != nil {
			t.Fatalf("runResources returned error: %v", err)
		}
	})

	if !strings.Contains(output, "anxiety\tPatient\tPanic Attack Management\t") {
		t.Errorf("unexpected output: %q", output)
	}
	if strings.Count(output, "\n") != 1 {
		t.Errorf("expected exactly one result line, got: %q", output)
	}
}

func TestRunResourcesRendered(t *testing.T) {
	setupCLI(t)

	output := captureOutput(t, func() {
		if err := runResources(&cobra.Command{}, []string{"zzzz"}); err != nil {
			t.Fatalf("runResources returned error: %v", err)
		}
	})
	if !strings.Contains(output, "No resources found") {
		t.Errorf("expected no-results notice, got: %s", output)
	}
}

func TestRunTools(t *testing.T) {
	setupCLI(t)

	output := captureOutput(t, func() {
		if err := runTools(&cobra.Command{}, nil); err != nil {
			t.Fatalf("runTools returned error: %v", err)
		}
	})

	for _, want := range []string{"psiq scale", "psiq timeline", "Clinical scales"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}
