package detector

// Platform is the category of page being inspected.
type Platform string

const (
	PlatformMonaco      Platform = "monaco"
	PlatformGitHub      Platform = "github"
	PlatformCodeMirror  Platform = "codemirror"
	PlatformVSCodeWeb   Platform = "vscode-web"
	PlatformStackBlitz  Platform = "stackblitz"
	PlatformCodeSandbox Platform = "codesandbox"
	PlatformLocalhost   Platform = "localhost"
	PlatformUnknown     Platform = "unknown"
)

// Global identifier names reported by the DOM-side collaborator when the
// matching editor runtime is attached to the page.
const (
	GlobalMonaco     = "monaco"
	GlobalCodeMirror = "CodeMirror"
)

// PageProbe is a snapshot of the page location and the global identifiers
// found on it. It is assembled by the DOM-access collaborator; the detector
// never touches the page itself.
type PageProbe struct {
	Hostname    string   `json:"hostname"`
	Pathname    string   `json:"pathname"`
	GlobalFlags []string `json:"global_flags"`
}

// HasGlobal reports whether the probe saw the named global identifier.
func (p PageProbe) HasGlobal(name string) bool {
	for _, f := range p.GlobalFlags {
		if f == name {
			return true
		}
	}
	return false
}

// DetectionResult is the outcome of platform classification.
// BaseScore encodes a-priori confidence that the page exposes
// machine-inspectable project context, before any page signals are scored.
type DetectionResult struct {
	Platform  Platform `json:"platform"`
	BaseScore int      `json:"base_score"`
	Signals   []string `json:"signals"`
}

// Rule is a hostname-substring classification rule. Users can register
// extra rules (e.g. a self-hosted GitLab) via the config layer; custom
// rules are consulted after every built-in rule and before the unknown
// fallback, so they can never shadow built-in precedence.
type Rule struct {
	Platform  Platform
	Hostname  string
	BaseScore int
}
