package analyzer

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"

	"github.com/elC0mpa/ha-doctor/model"
)

// diagnosticPattern matches entity IDs of diagnostic signals
var diagnosticPattern = regexp.MustCompile(`_(battery|temp|temperature|voltage|signal_strength|rssi|linkquality|last_seen|update_available|restart_required)$`)

var diagnosticDomains = []string{"sensor", "binary_sensor"}

// rule maps a condition on an analysis to zero or more suggestions
type rule struct {
	kind        model.SuggestionKind
	description string
	apply       func(analysis *model.Analysis, opts Options) []model.Suggestion
}

// rules are evaluated in order; the order breaks ties between equal impacts
var rules = []rule{
	{
		kind:        model.SuggestionHideDiagnostic,
		description: "sensor and binary_sensor entities exposing diagnostic signals",
		apply:       hideDiagnostic,
	},
	{
		kind:        model.SuggestionReviewPlatform,
		description: "non built-in platforms with a large number of entities",
		apply:       reviewPlatforms,
	},
	{
		kind:        model.SuggestionOrganizeAreas,
		description: "many entities without an area",
		apply:       organizeAreas,
	},
}

// Suggest evaluates every rule against the analysis and ranks the results by impact
func Suggest(analysis *model.Analysis, opts Options) []model.Suggestion {
	suggestions := make([]model.Suggestion, 0)
	for _, r := range rules {
		for _, suggestion := range r.apply(analysis, opts) {
			suggestion.Kind = r.kind
			suggestions = append(suggestions, suggestion)
		}
	}

	slices.SortStableFunc(suggestions, func(a, b model.Suggestion) int {
		return cmp.Compare(b.Impact.Rank(), a.Impact.Rank())
	})
	return suggestions
}

// RuleInfo describes one suggestion rule
type RuleInfo struct {
	Kind        model.SuggestionKind
	Description string
}

// DescribeRules lists the suggestion rules in evaluation order
func DescribeRules() []RuleInfo {
	infos := make([]RuleInfo, 0, len(rules))
	for _, r := range rules {
		infos = append(infos, RuleInfo{Kind: r.kind, Description: r.description})
	}
	return infos
}

func hideDiagnostic(analysis *model.Analysis, _ Options) []model.Suggestion {
	var suggestions []model.Suggestion
	for _, section := range analysis.ByDomain {
		if !slices.Contains(diagnosticDomains, section.Key) {
			continue
		}

		var diagnostic []string
		for _, entityID := range section.Entities {
			if diagnosticPattern.MatchString(entityID) {
				diagnostic = append(diagnostic, entityID)
			}
		}
		if len(diagnostic) == 0 {
			continue
		}

		suggestions = append(suggestions, model.Suggestion{
			Description: fmt.Sprintf("Hide %d diagnostic %s entities", len(diagnostic), section.Key),
			Entities:    diagnostic,
			Impact:      model.ImpactLow,
		})
	}
	return suggestions
}

func reviewPlatforms(analysis *model.Analysis, opts Options) []model.Suggestion {
	var suggestions []model.Suggestion
	for _, section := range analysis.ByPlatform {
		if section.Count <= opts.PlatformReviewThreshold || section.Key == opts.BuiltinPlatform {
			continue
		}

		suggestions = append(suggestions, model.Suggestion{
			Description: fmt.Sprintf("Review %s platform with %d entities", section.Key, section.Count),
			Platform:    section.Key,
			Entities:    section.Entities,
			Impact:      model.ImpactMedium,
		})
	}
	return suggestions
}

func organizeAreas(analysis *model.Analysis, opts Options) []model.Suggestion {
	count := analysis.Summary.UnassignedCount
	if count <= opts.UnassignedThreshold {
		return nil
	}

	entities := []string{}
	if section, ok := analysis.AreaSectionByID(model.UnassignedAreaID); ok {
		entities = section.Entities
	}

	return []model.Suggestion{{
		Description: fmt.Sprintf("Organize %d unassigned entities into areas", count),
		Entities:    entities,
		Impact:      model.ImpactHigh,
	}}
}
