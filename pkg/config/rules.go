package config

import (
	"fmt"
	"os"

	"gopkg.in/ini.v1"

	"fafscan/pkg/detector"
)

// LoadCustomRules reads user-defined hostname rules from rules.ini.
// One section per platform label:
//
//	[gitlab]
//	hostname = gitlab.example.com
//	score = 70
//
// A missing file yields no rules. Custom rules only extend the detector's
// built-in table; they are consulted after it.
func LoadCustomRules() ([]detector.Rule, error) {
	return loadCustomRules(GetRulesPath())
}

func loadCustomRules(path string) ([]detector.Rule, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules file: %w", err)
	}

	var rules []detector.Rule
	for _, section := range cfg.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}

		hostname := section.Key("hostname").String()
		if hostname == "" {
			return nil, fmt.Errorf("rule '%s' is missing a hostname", section.Name())
		}

		score := section.Key("score").MustInt(50)
		if score < 0 || score > 100 {
			return nil, fmt.Errorf("rule '%s' has score %d outside [0,100]", section.Name(), score)
		}

		rules = append(rules, detector.Rule{
			Platform:  detector.Platform(section.Name()),
			Hostname:  hostname,
			BaseScore: score,
		})
	}

	return rules, nil
}
