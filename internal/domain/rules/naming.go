package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/camelcase"
	"github.com/sitescore/sitescore/internal/domain"
	"github.com/sitescore/sitescore/internal/domain/markup"
)

// convention buckets for CSS class names.
type convention string

const (
	conventionCamel convention = "camelCase"
	conventionKebab convention = "kebab-case"
	conventionSnake convention = "snake_case"
	conventionOther convention = "other"
)

var camelRe = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)

// classifyClass buckets a class name. Separator checks run first so a
// mixed name like grid_item-wide counts as snake_case, and bare
// lowercase words land in the camelCase bucket.
func classifyClass(name string) convention {
	switch {
	case strings.Contains(name, "_"):
		return conventionSnake
	case strings.Contains(name, "-"):
		return conventionKebab
	case camelRe.MatchString(name):
		return conventionCamel
	default:
		return conventionOther
	}
}

func inconsistentNaming(scan *markup.ScanResult, t domain.Thresholds) *domain.AuditIssue {
	total := len(scan.ClassNames)
	if total == 0 {
		return nil
	}

	counts := map[convention]int{}
	byConvention := map[convention][]string{}
	for _, name := range scan.ClassNames {
		c := classifyClass(name)
		counts[c]++
		byConvention[c] = append(byConvention[c], name)
	}

	dominant := dominantConvention(counts)
	minority := total - counts[dominant]
	if float64(minority)/float64(total) <= t.NamingMinority {
		return nil
	}

	var examples []string
	for _, c := range []convention{conventionCamel, conventionKebab, conventionSnake, conventionOther} {
		if c == dominant {
			continue
		}
		for _, name := range byConvention[c] {
			examples = append(examples, renameExample(name, dominant))
		}
	}

	return &domain.AuditIssue{
		ID:       "inconsistent-naming",
		Category: domain.CategoryBestPractice,
		Severity: domain.SeverityWarning,
		Title:    "Inconsistent class naming",
		Description: fmt.Sprintf("%d of %d class names do not follow the dominant %s convention.",
			minority, total, dominant),
		Examples:       firstN(examples, 3),
		Recommendation: fmt.Sprintf("Standardize class names on %s across templates and components.", dominant),
		Difficulty:     domain.DifficultyMedium,
		Impact:         domain.ImpactMedium,
	}
}

// dominantConvention picks the largest bucket; ties resolve in fixed
// bucket order so repeated audits agree.
func dominantConvention(counts map[convention]int) convention {
	order := []convention{conventionKebab, conventionCamel, conventionSnake, conventionOther}
	best := order[0]
	for _, c := range order[1:] {
		if counts[c] > counts[best] {
			best = c
		}
	}
	return best
}

// renameExample shows how a deviant name would look in the dominant
// convention, e.g. "userProfile -> user-profile".
func renameExample(name string, dominant convention) string {
	renamed := rename(name, dominant)
	if renamed == name || renamed == "" {
		return name
	}
	return fmt.Sprintf("%s -> %s", name, renamed)
}

func rename(name string, dominant convention) string {
	var words []string
	for _, part := range strings.FieldsFunc(name, func(r rune) bool { return r == '-' || r == '_' }) {
		for _, w := range camelcase.Split(part) {
			words = append(words, strings.ToLower(w))
		}
	}
	if len(words) == 0 {
		return name
	}
	switch dominant {
	case conventionKebab:
		return strings.Join(words, "-")
	case conventionSnake:
		return strings.Join(words, "_")
	case conventionCamel:
		out := words[0]
		for _, w := range words[1:] {
			out += strings.ToUpper(w[:1]) + w[1:]
		}
		return out
	}
	return name
}
