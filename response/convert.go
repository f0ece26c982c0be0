package response

import (
	"github.com/elC0mpa/ha-doctor/model"
	"github.com/elC0mpa/ha-doctor/service/analyzer"
)

const statusConnected = "connected"

// ConvertAnalysis converts model.Analysis to response.Analysis
func ConvertAnalysis(analysis *model.Analysis) *Analysis {
	if analysis == nil {
		return nil
	}

	byArea := make([]AreaGroup, 0, len(analysis.ByArea))
	for _, section := range analysis.ByArea {
		byArea = append(byArea, AreaGroup{
			AreaID:   section.AreaID,
			Name:     section.AreaName,
			Count:    section.Count,
			Entities: nonNil(section.Entities),
		})
	}

	return &Analysis{
		Summary: Summary{
			TotalEntities:   analysis.Summary.TotalEntities,
			TotalDevices:    analysis.Summary.TotalDevices,
			TotalAreas:      analysis.Summary.TotalAreas,
			HiddenCount:     analysis.Summary.HiddenCount,
			DisabledCount:   analysis.Summary.DisabledCount,
			OrphanedCount:   analysis.Summary.OrphanedCount,
			UnusedCount:     analysis.Summary.UnusedCount,
			UnassignedCount: analysis.Summary.UnassignedCount,
		},
		ByPlatform: convertGroups(analysis.ByPlatform),
		ByDomain:   convertGroups(analysis.ByDomain),
		ByArea:     byArea,
		ProblemEntities: ProblemEntities{
			Hidden:   nonNil(analysis.Problems.Hidden),
			Disabled: nonNil(analysis.Problems.Disabled),
			Orphaned: nonNil(analysis.Problems.Orphaned),
			Unused:   nonNil(analysis.Problems.Unused),
		},
	}
}

// ConvertDuplicates converts duplicate clusters to response format
func ConvertDuplicates(clusters []model.DuplicateCluster) []Duplicate {
	result := make([]Duplicate, 0, len(clusters))
	for _, cluster := range clusters {
		members := make([]DuplicateEntity, 0, len(cluster.Entities))
		for _, member := range cluster.Entities {
			members = append(members, DuplicateEntity{
				EntityID: member.EntityID,
				Platform: member.Platform,
				DeviceID: member.DeviceID,
				Disabled: member.Disabled,
			})
		}

		result = append(result, Duplicate{
			Name:     cluster.Name,
			Count:    cluster.Count,
			Entities: members,
		})
	}
	return result
}

// ConvertSuggestions converts ranked suggestions to response format, keeping their order
func ConvertSuggestions(suggestions []model.Suggestion) []Suggestion {
	result := make([]Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		result = append(result, Suggestion{
			Type:        string(s.Kind),
			Description: s.Description,
			Platform:    s.Platform,
			Entities:    nonNil(s.Entities),
			Impact:      string(s.Impact),
		})
	}
	return result
}

// ConvertCleanupReport converts model.CleanupReport to response.CleanupReport
func ConvertCleanupReport(report *model.CleanupReport) *CleanupReport {
	if report == nil {
		return nil
	}
	return &CleanupReport{
		Analysis:    ConvertAnalysis(report.Analysis),
		Duplicates:  ConvertDuplicates(report.Duplicates),
		Suggestions: ConvertSuggestions(report.Suggestions),
	}
}

// ConvertConnectionInfo converts a connection check result for the given base URL
func ConvertConnectionInfo(baseURL string, info *model.ConnectionInfo) *ConnectionStatus {
	if info == nil {
		return nil
	}

	platforms := make([]PlatformCount, 0, len(info.TopPlatforms))
	for _, p := range info.TopPlatforms {
		platforms = append(platforms, PlatformCount{Platform: p.Platform, Count: p.Count})
	}

	return &ConnectionStatus{
		Status:        statusConnected,
		URL:           baseURL,
		Version:       info.Instance.Version,
		LocationName:  info.Instance.LocationName,
		TotalEntities: info.TotalEntities,
		TopPlatforms:  platforms,
	}
}

// ConvertRules converts suggestion rule descriptions to response format
func ConvertRules(rules []analyzer.RuleInfo) []Rule {
	result := make([]Rule, 0, len(rules))
	for _, r := range rules {
		result = append(result, Rule{Type: string(r.Kind), Description: r.Description})
	}
	return result
}

// ConvertReport converts any report produced by the analyzer's Report dispatch
func ConvertReport(report any) any {
	switch r := report.(type) {
	case *model.Analysis:
		return ConvertAnalysis(r)
	case []model.DuplicateCluster:
		return ConvertDuplicates(r)
	case *model.CleanupReport:
		return ConvertCleanupReport(r)
	default:
		return report
	}
}

func convertGroups(sections []model.GroupSection) []Group {
	result := make([]Group, 0, len(sections))
	for _, section := range sections {
		result = append(result, Group{
			Name:     section.Key,
			Count:    section.Count,
			Entities: nonNil(section.Entities),
		})
	}
	return result
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
