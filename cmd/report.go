package cmd

import (
	"time"

	"fafscan/pkg/detector"
	"fafscan/pkg/faf"
	"fafscan/pkg/scoring"
	"fafscan/pkg/snapshot"
)

// Report is the machine-readable outcome of one snapshot run.
type Report struct {
	URL        string                   `json:"url"`
	Detection  detector.DetectionResult `json:"detection"`
	Score      int                      `json:"score"`
	Confidence string                   `json:"confidence"`
	Document   string                   `json:"document"`
}

// analyze runs the detect -> score -> build pipeline over a snapshot.
func analyze(snap snapshot.Snapshot, rules []detector.Rule, now time.Time) (Report, faf.ContextDocument) {
	det := detector.DetectWithRules(snap.Probe(), rules)
	score := scoring.Score(det, snap.Signals)
	doc := faf.Build(score, det.Platform, snap.Signals, snap.URL, now)

	report := Report{
		URL:        snap.URL,
		Detection:  det,
		Score:      score,
		Confidence: doc.ConfidenceMessage,
		Document:   doc.Render(),
	}
	return report, doc
}
