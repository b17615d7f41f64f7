package quote

import "webquote/internal/domain/entities"

const workingDaysPerWeek = 6

// PlanTimeline splits days into design (30%), development (50%) and testing
// (the remainder) phases, each at least one day long.
func PlanTimeline(days int) entities.Timeline {
	if days <= 0 {
		return entities.Timeline{}
	}
	design := max(1, days*3/10)
	development := max(1, days*5/10)
	return entities.Timeline{
		Days:        days,
		Weeks:       (days + workingDaysPerWeek - 1) / workingDaysPerWeek,
		Design:      design,
		Development: development,
		Testing:     max(1, days-design-development),
	}
}
