package tax

import (
	"strings"

	"github.com/samber/lo"
)

// IsApplicable reports whether rule applies to the charge at c.EvaluationTime.
// Empty inclusion lists match everything; exclusion lists always win.
func IsApplicable(rule Rule, c ChargeContext) bool {
	if !rule.ActiveAt(c.EvaluationTime) {
		return false
	}
	if !inScope(rule, c.Service) {
		return false
	}
	if !matchList(c.Zone, rule.ApplicableZones, rule.ExcludedZones, false) {
		return false
	}
	if !matchList(c.VehicleType, rule.ApplicableVehicleTypes, rule.ExcludedVehicleTypes, false) {
		return false
	}

	// Specific already consumed the inclusion list in inScope.
	if rule.ApplicableTo == ApplicableToSpecific {
		return matchList(c.Service, nil, rule.ExcludedServices, true)
	}
	return matchList(c.Service, rule.ApplicableServices, rule.ExcludedServices, true)
}

func inScope(rule Rule, service string) bool {
	switch rule.ApplicableTo {
	case ApplicableToAll:
		return true
	case ApplicableToRidesOnly:
		return strings.EqualFold(strings.TrimSpace(service), ServiceRide)
	case ApplicableToDeliveryOnly:
		return strings.EqualFold(strings.TrimSpace(service), ServiceDelivery)
	case ApplicableToSpecific:
		if len(rule.ApplicableServices) == 0 {
			return false
		}
		return contains(rule.ApplicableServices, service, true)
	}
	return false
}

func matchList(value string, include, exclude []string, fold bool) bool {
	if contains(exclude, value, fold) {
		return false
	}
	if len(include) > 0 && !contains(include, value, fold) {
		return false
	}
	return true
}

func contains(list []string, value string, fold bool) bool {
	value = strings.TrimSpace(value)
	return lo.ContainsBy(list, func(item string) bool {
		item = strings.TrimSpace(item)
		if fold {
			return strings.EqualFold(item, value)
		}
		return item == value
	})
}
