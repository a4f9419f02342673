package scoring

import "fafscan/pkg/detector"

// Bonus weights applied on top of the detection base score.
// GitHub repository listings expose structural project files directly in
// the DOM, so the structural bonuses only fire there; code density is
// meaningful on any page.

const (
	// BonusPackageManifest rewards a visible package.json link.
	// The strongest structural signal: it names dependencies and scripts.
	BonusPackageManifest = 10

	// BonusEnvFile rewards a visible .env file link.
	BonusEnvFile = 5

	// BonusReadme rewards a visible README link.
	BonusReadme = 5

	// BonusDockerfile rewards a visible Dockerfile link.
	BonusDockerfile = 5

	// CodeBlockWeight is the per-element contribution of code blocks
	// found on the page, applied regardless of platform.
	CodeBlockWeight = 2

	// CodeBlockBonusCap bounds the code-density bonus so a code-dense but
	// otherwise low-value page cannot dominate the score.
	CodeBlockBonusCap = 20

	// MinScore and MaxScore bound every final score.
	MinScore = 0
	MaxScore = 100
)

// SignalSet holds the page observations gathered by the DOM-query
// collaborator. CodeBlockCount is assumed non-negative; the snapshot
// layer validates it before the core ever sees it.
type SignalSet struct {
	HasPackageManifest bool `json:"package_manifest_link"`
	HasEnvFile         bool `json:"env_file_link"`
	HasReadme          bool `json:"readme_link"`
	HasDockerfile      bool `json:"dockerfile_link"`
	CodeBlockCount     int  `json:"code_block_count"`
}

// Score combines the detection base score with signal bonuses and clamps
// the total to [MinScore, MaxScore]. Pure numeric transform: no I/O, no
// errors, equal inputs always yield equal outputs.
func Score(det detector.DetectionResult, sig SignalSet) int {
	total := det.BaseScore

	if det.Platform == detector.PlatformGitHub {
		if sig.HasPackageManifest {
			total += BonusPackageManifest
		}
		if sig.HasEnvFile {
			total += BonusEnvFile
		}
		if sig.HasReadme {
			total += BonusReadme
		}
		if sig.HasDockerfile {
			total += BonusDockerfile
		}
	}

	total += codeBlockBonus(sig.CodeBlockCount)

	return clamp(total, MinScore, MaxScore)
}

// codeBlockBonus is the saturating code-density bonus.
func codeBlockBonus(count int) int {
	bonus := count * CodeBlockWeight
	if bonus > CodeBlockBonusCap {
		return CodeBlockBonusCap
	}
	return bonus
}

// clamp constrains a value between lo and hi.
func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
