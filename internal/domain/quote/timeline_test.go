package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"webquote/internal/domain/entities"
)

func TestPlanTimeline(t *testing.T) {
	tests := []struct {
		name string
		days int
		want entities.Timeline
	}{
		{name: "zero", days: 0, want: entities.Timeline{}},
		{name: "one day", days: 1, want: entities.Timeline{Days: 1, Weeks: 1, Design: 1, Development: 1, Testing: 1}},
		{name: "forty days", days: 40, want: entities.Timeline{Days: 40, Weeks: 7, Design: 12, Development: 20, Testing: 8}},
		{name: "exact weeks", days: 12, want: entities.Timeline{Days: 12, Weeks: 2, Design: 3, Development: 6, Testing: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlanTimeline(tt.days))
		})
	}
}
