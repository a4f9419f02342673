package cmd

import (
	"strings"
	"testing"
	"time"

	"fafscan/pkg/detector"
	"fafscan/pkg/scoring"
	"fafscan/pkg/snapshot"
)

func TestAnalyze(t *testing.T) {
	snap := snapshot.Snapshot{
		URL:      "https://github.com/golang/go",
		Hostname: "github.com",
		Pathname: "/golang/go",
		Signals:  scoring.SignalSet{HasReadme: true, CodeBlockCount: 2},
	}
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	report, doc := analyze(snap, nil, now)

	if report.Detection.Platform != detector.PlatformGitHub {
		t.Fatalf("platform = %s, want github", report.Detection.Platform)
	}
	// 75 + 5 (README) + 4 (two code blocks)
	if report.Score != 84 {
		t.Fatalf("score = %d, want 84", report.Score)
	}
	if report.Confidence != doc.ConfidenceMessage {
		t.Errorf("report confidence %q differs from document %q", report.Confidence, doc.ConfidenceMessage)
	}
	if report.Document != doc.Render() {
		t.Error("report document differs from rendered document")
	}
	if !strings.Contains(report.Document, "Generated: 2026-03-01T09:00:00Z") {
		t.Errorf("document missing the supplied timestamp:\n%s", report.Document)
	}
}

func TestAnalyzeWithCustomRules(t *testing.T) {
	snap := snapshot.Snapshot{
		URL:      "https://gitlab.example.com/group/repo",
		Hostname: "gitlab.example.com",
		Pathname: "/group/repo",
	}

	rules := []detector.Rule{{Platform: "gitlab", Hostname: "gitlab.example.com", BaseScore: 70}}

	report, _ := analyze(snap, rules, time.Now())
	if report.Detection.Platform != detector.Platform("gitlab") {
		t.Fatalf("platform = %s, want gitlab", report.Detection.Platform)
	}
	if report.Score != 70 {
		t.Fatalf("score = %d, want 70", report.Score)
	}
}

func TestWriteDocument(t *testing.T) {
	dir := t.TempDir()
	doc := fakeDoc{name: "example.com.faf", body: "# FAF Context Document\n"}

	path, err := writeDocument(doc, dir, "")
	if err != nil {
		t.Fatalf("writeDocument failed: %v", err)
	}
	if !strings.HasSuffix(path, "example.com.faf") {
		t.Errorf("unexpected output path %q", path)
	}
}

type fakeDoc struct {
	name string
	body string
}

func (f fakeDoc) Filename() string { return f.name }
func (f fakeDoc) Render() string   { return f.body }
