package analyzer

import (
	"cmp"
	"slices"

	"github.com/elC0mpa/ha-doctor/model"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DetectDuplicates groups entities by display name and returns every group
// with more than one member, largest first.
func DetectDuplicates(entities []model.Entity) []model.DuplicateCluster {
	byName := orderedmap.New[string, []model.Entity]()
	for _, entity := range entities {
		appendToGroup(byName, entity.DisplayName(), entity)
	}

	clusters := make([]model.DuplicateCluster, 0)
	for pair := byName.Oldest(); pair != nil; pair = pair.Next() {
		if len(pair.Value) < 2 {
			continue
		}

		members := make([]model.DuplicateMember, 0, len(pair.Value))
		for _, entity := range pair.Value {
			members = append(members, model.DuplicateMember{
				EntityID: entity.EntityID,
				Platform: entity.Platform,
				DeviceID: entity.DeviceID,
				Disabled: entity.IsDisabled(),
			})
		}

		clusters = append(clusters, model.DuplicateCluster{
			Name:     pair.Key,
			Count:    len(members),
			Entities: members,
		})
	}

	slices.SortStableFunc(clusters, func(a, b model.DuplicateCluster) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return clusters
}
