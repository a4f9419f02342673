package detector

import (
	"fmt"
	"strings"
)

// rule is one entry in the built-in decision table: a predicate plus the
// classification it yields. The table is ordered; the first match wins.
type rule struct {
	platform  Platform
	baseScore int
	signal    string
	match     func(PageProbe) bool
}

// builtinRules returns the classification table in precedence order.
// Runtime-marker rules outrank hostname heuristics: a page can satisfy
// several weak signals at once (a GitHub-hosted CodeMirror embed), and an
// attached editor runtime is the authoritative one.
func builtinRules() []rule {
	return []rule{
		{
			platform:  PlatformMonaco,
			baseScore: 100,
			signal:    "monaco editor runtime on page",
			match: func(p PageProbe) bool {
				return p.HasGlobal(GlobalMonaco)
			},
		},
		{
			platform:  PlatformGitHub,
			baseScore: 75,
			signal:    "github.com repository path",
			match: func(p PageProbe) bool {
				return strings.Contains(p.Hostname, "github.com") && strings.Contains(p.Pathname, "/")
			},
		},
		{
			platform:  PlatformCodeMirror,
			baseScore: 85,
			signal:    "CodeMirror runtime on page",
			match: func(p PageProbe) bool {
				return p.HasGlobal(GlobalCodeMirror)
			},
		},
		{
			platform:  PlatformVSCodeWeb,
			baseScore: 90,
			signal:    "vscode.dev host",
			match: func(p PageProbe) bool {
				return strings.Contains(p.Hostname, "vscode.dev")
			},
		},
		{
			platform:  PlatformStackBlitz,
			baseScore: 95,
			signal:    "stackblitz.com host",
			match: func(p PageProbe) bool {
				return strings.Contains(p.Hostname, "stackblitz.com")
			},
		},
		{
			platform:  PlatformCodeSandbox,
			baseScore: 95,
			signal:    "codesandbox.io host",
			match: func(p PageProbe) bool {
				return strings.Contains(p.Hostname, "codesandbox.io")
			},
		},
		{
			platform:  PlatformLocalhost,
			baseScore: 50,
			signal:    "local development host",
			match: func(p PageProbe) bool {
				return strings.Contains(p.Hostname, "localhost") || strings.Contains(p.Hostname, "127.0.0.1")
			},
		},
	}
}

// Detect classifies the probed page. Total over every probe: an empty or
// all-false probe classifies as unknown with the floor base score.
func Detect(probe PageProbe) DetectionResult {
	return DetectWithRules(probe, nil)
}

// DetectWithRules classifies the probed page, consulting the extra
// hostname rules after the built-in table and before the unknown fallback.
func DetectWithRules(probe PageProbe, extra []Rule) DetectionResult {
	for _, r := range builtinRules() {
		if r.match(probe) {
			return DetectionResult{
				Platform:  r.platform,
				BaseScore: r.baseScore,
				Signals:   []string{r.signal},
			}
		}
	}

	for _, r := range extra {
		if r.Hostname != "" && strings.Contains(probe.Hostname, r.Hostname) {
			return DetectionResult{
				Platform:  r.Platform,
				BaseScore: r.BaseScore,
				Signals:   []string{fmt.Sprintf("custom rule: %s host", r.Hostname)},
			}
		}
	}

	return DetectionResult{
		Platform:  PlatformUnknown,
		BaseScore: 25,
		Signals:   []string{"no strong platform signals"},
	}
}
