package config

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/nuspecmaker/pkg/logging"
)

// IgnoreRule excludes projects by exact name or by a regular expression
// tested against the project path. Both tests are case-insensitive.
type IgnoreRule struct {
	Raw     string
	pattern *regexp.Regexp
}

// IgnoreRules is an ordered set of exclusion rules
type IgnoreRules []IgnoreRule

// CompileIgnoreRules compiles each rule as the case-insensitive pattern
// .*rule.* for path matching. A rule that is not a valid regular expression
// still excludes projects by name.
func CompileIgnoreRules(rules []string) IgnoreRules {
	logger := logging.GetLogger("config.ignore")

	compiled := make(IgnoreRules, 0, len(rules))
	for _, raw := range rules {
		rule := IgnoreRule{Raw: raw}
		pattern, err := regexp.Compile("(?i).*" + raw + ".*")
		if err != nil {
			logger.Warn().
				Err(err).
				Str("rule", raw).
				Msg("Ignore rule is not a valid regular expression, matching project names only")
		} else {
			rule.pattern = pattern
		}
		compiled = append(compiled, rule)
	}
	return compiled
}

// MatchName reports whether the rule names the project
func (r IgnoreRule) MatchName(projectName string) bool {
	return strings.EqualFold(projectName, r.Raw)
}

// MatchPath reports whether the rule's pattern matches the project path
func (r IgnoreRule) MatchPath(projectPath string) bool {
	return r.pattern != nil && r.pattern.MatchString(projectPath)
}

// Match returns the first rule excluding the project, if any
func (rs IgnoreRules) Match(projectName, projectPath string) (IgnoreRule, bool) {
	for _, r := range rs {
		if r.MatchName(projectName) || r.MatchPath(projectPath) {
			return r, true
		}
	}
	return IgnoreRule{}, false
}

// Raw returns the rules as written in the settings file
func (rs IgnoreRules) Raw() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Raw
	}
	return out
}
