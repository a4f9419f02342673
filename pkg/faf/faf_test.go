package faf

import (
	"testing"
	"time"

	"fafscan/pkg/detector"
	"fafscan/pkg/scoring"
)

func TestConfidenceMessageBands(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, MessageHigh},
		{81, MessageHigh},
		{80, MessageHigh},
		{79, MessageMedium},
		{51, MessageMedium},
		{50, MessageMedium},
		{49, MessageLow},
		{25, MessageLow},
		{0, MessageLow},
	}

	for _, tt := range tests {
		if got := ConfidenceMessage(tt.score); got != tt.want {
			t.Errorf("ConfidenceMessage(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestBuild(t *testing.T) {
	now := time.Date(2026, 1, 2, 15, 4, 5, 0, time.FixedZone("PST", -8*3600))
	sig := scoring.SignalSet{HasReadme: true, CodeBlockCount: 4}

	doc := Build(62, detector.PlatformGitHub, sig, "https://github.com/a/b", now)

	if doc.Score != 62 {
		t.Errorf("score = %d, want 62", doc.Score)
	}
	if doc.Platform != detector.PlatformGitHub {
		t.Errorf("platform = %s, want github", doc.Platform)
	}
	if doc.ConfidenceMessage != MessageMedium {
		t.Errorf("confidence = %q, want medium band", doc.ConfidenceMessage)
	}
	if doc.GeneratedAt.Location() != time.UTC {
		t.Error("timestamp was not normalized to UTC")
	}
	if doc.Signals != sig {
		t.Errorf("signals = %+v, want %+v", doc.Signals, sig)
	}
}

func TestRenderLayout(t *testing.T) {
	now := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	sig := scoring.SignalSet{
		HasPackageManifest: true,
		HasReadme:          true,
		CodeBlockCount:     10,
	}

	doc := Build(100, detector.PlatformGitHub, sig, "https://github.com/microsoft/monaco-editor", now)

	want := `# FAF Context Document
URL: https://github.com/microsoft/monaco-editor
Platform: github
Score: 100/100
Generated: 2026-01-02T15:04:05Z

## Detection Summary
Code blocks: 10
package.json link: yes
.env link: no
README link: yes
Dockerfile link: no

## AI Instructions
High confidence - Full project context available.
`

	if got := doc.Render(); got != want {
		t.Errorf("rendered document mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"github page", "https://github.com/a/b", "github.com.faf"},
		{"local dev server", "http://localhost:3000/app", "localhost.faf"},
		{"empty url", "", "context.faf"},
		{"unparseable url", "://nope", "context.faf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := ContextDocument{SourceURL: tt.url}
			if got := doc.Filename(); got != tt.want {
				t.Errorf("Filename() = %q, want %q", got, tt.want)
			}
		})
	}
}
