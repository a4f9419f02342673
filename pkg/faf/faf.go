// Package faf renders the .faf context document: the portable text
// artifact that carries a scored page description to downstream AI
// tooling. The section order and labels are a fixed wire format;
// downstream consumers parse them.
package faf

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"fafscan/pkg/detector"
	"fafscan/pkg/scoring"
)

// Confidence messages, one per score band. Band bounds are inclusive at
// the bottom: 80 and 50 belong to the higher band.
const (
	MessageHigh   = "High confidence - Full project context available."
	MessageMedium = "Medium confidence - Partial context available."
	MessageLow    = "Low confidence - Limited context available."
)

// ContextDocument is the terminal artifact of a detection run. Immutable
// once built; the caller owns storage and display.
type ContextDocument struct {
	SourceURL         string            `json:"source_url"`
	Platform          detector.Platform `json:"platform"`
	Score             int               `json:"score"`
	GeneratedAt       time.Time         `json:"generated_at"`
	Signals           scoring.SignalSet `json:"signals"`
	ConfidenceMessage string            `json:"confidence_message"`
}

// Build assembles a context document. The timestamp is supplied by the
// caller so the builder stays pure and testable. Always succeeds.
func Build(score int, platform detector.Platform, sig scoring.SignalSet, sourceURL string, now time.Time) ContextDocument {
	return ContextDocument{
		SourceURL:         sourceURL,
		Platform:          platform,
		Score:             score,
		GeneratedAt:       now.UTC(),
		Signals:           sig,
		ConfidenceMessage: ConfidenceMessage(score),
	}
}

// ConfidenceMessage maps a score to its band's advisory line.
func ConfidenceMessage(score int) string {
	switch {
	case score >= 80:
		return MessageHigh
	case score >= 50:
		return MessageMedium
	default:
		return MessageLow
	}
}

// Render serializes the document in the fixed .faf layout.
func (d ContextDocument) Render() string {
	var b strings.Builder

	b.WriteString("# FAF Context Document\n")
	fmt.Fprintf(&b, "URL: %s\n", d.SourceURL)
	fmt.Fprintf(&b, "Platform: %s\n", d.Platform)
	fmt.Fprintf(&b, "Score: %d/100\n", d.Score)
	fmt.Fprintf(&b, "Generated: %s\n", d.GeneratedAt.Format(time.RFC3339))
	b.WriteString("\n")

	b.WriteString("## Detection Summary\n")
	fmt.Fprintf(&b, "Code blocks: %d\n", d.Signals.CodeBlockCount)
	fmt.Fprintf(&b, "package.json link: %s\n", yesNo(d.Signals.HasPackageManifest))
	fmt.Fprintf(&b, ".env link: %s\n", yesNo(d.Signals.HasEnvFile))
	fmt.Fprintf(&b, "README link: %s\n", yesNo(d.Signals.HasReadme))
	fmt.Fprintf(&b, "Dockerfile link: %s\n", yesNo(d.Signals.HasDockerfile))
	b.WriteString("\n")

	b.WriteString("## AI Instructions\n")
	b.WriteString(d.ConfidenceMessage)
	b.WriteString("\n")

	return b.String()
}

// Filename suggests an output name derived from the source host, e.g.
// "github.com.faf". Falls back to "context.faf" for unparseable URLs.
func (d ContextDocument) Filename() string {
	u, err := url.Parse(d.SourceURL)
	if err != nil || u.Hostname() == "" {
		return "context.faf"
	}
	return u.Hostname() + ".faf"
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
