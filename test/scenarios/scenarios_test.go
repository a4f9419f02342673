package scenarios_test

import (
	"strings"
	"testing"
	"time"

	"fafscan/pkg/detector"
	"fafscan/pkg/faf"
	"fafscan/pkg/scoring"
	"fafscan/pkg/snapshot"
)

// Full pipeline runs over captured pages: snapshot -> detect -> score -> document.

func TestGitHubRepositoryPage(t *testing.T) {
	snap, err := snapshot.Parse([]byte(`{
		"url": "https://github.com/microsoft/monaco-editor",
		"signals": {
			"package_manifest_link": true,
			"readme_link": true,
			"code_block_count": 10
		}
	}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	det := detector.Detect(snap.Probe())
	if det.Platform != detector.PlatformGitHub || det.BaseScore != 75 {
		t.Fatalf("detection = %+v, want github/75", det)
	}

	// 75 + 10 (package.json) + 5 (README) + 20 (code density cap) clamps to 100.
	score := scoring.Score(det, snap.Signals)
	if score != 100 {
		t.Fatalf("score = %d, want 100", score)
	}

	doc := faf.Build(score, det.Platform, snap.Signals, snap.URL, time.Now())
	if doc.ConfidenceMessage != faf.MessageHigh {
		t.Fatalf("confidence = %q, want high band", doc.ConfidenceMessage)
	}
}

func TestMonacoEditorPage(t *testing.T) {
	snap, err := snapshot.Parse([]byte(`{
		"url": "https://editor.example.com/workspace",
		"global_flags": ["monaco"],
		"signals": {"code_block_count": 0}
	}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	det := detector.Detect(snap.Probe())
	if det.Platform != detector.PlatformMonaco || det.BaseScore != 100 {
		t.Fatalf("detection = %+v, want monaco/100", det)
	}

	score := scoring.Score(det, snap.Signals)
	if score != 100 {
		t.Fatalf("score = %d, want 100", score)
	}

	if msg := faf.ConfidenceMessage(score); msg != faf.MessageHigh {
		t.Fatalf("confidence = %q, want high band", msg)
	}
}

func TestArbitraryPageWithSomeCode(t *testing.T) {
	snap, err := snapshot.Parse([]byte(`{
		"url": "https://example.com/",
		"signals": {"code_block_count": 3}
	}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	det := detector.Detect(snap.Probe())
	if det.Platform != detector.PlatformUnknown || det.BaseScore != 25 {
		t.Fatalf("detection = %+v, want unknown/25", det)
	}

	score := scoring.Score(det, snap.Signals)
	if score != 31 {
		t.Fatalf("score = %d, want 31", score)
	}

	doc := faf.Build(score, det.Platform, snap.Signals, snap.URL, time.Now())
	if doc.ConfidenceMessage != faf.MessageLow {
		t.Fatalf("confidence = %q, want low band", doc.ConfidenceMessage)
	}
	if !strings.Contains(doc.Render(), "Low confidence - Limited context available.") {
		t.Fatal("rendered document is missing the low-confidence instruction line")
	}
}
