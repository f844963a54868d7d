package lifecycle_test

import (
	"math"
	"strings"
	"testing"

	"gigflow/internal/common"
	"gigflow/internal/entity"
	"gigflow/internal/lifecycle"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGig(t *testing.T) {
	m := newTestManager()

	gig, err := m.CreateGig(entity.Actor{Id: "owner-1"}, "  Logo design  ", " A logo for a startup ", 300)
	require.NoError(t, err)

	assert.Equal(t, "Logo design", gig.Title)
	assert.Equal(t, "A logo for a startup", gig.Description)
	assert.Equal(t, common.GigOpen, gig.Status)
	assert.Equal(t, "owner-1", gig.OwnerId)
	assert.Equal(t, "owner-1", gig.OwnerName)
	assert.True(t, gig.Budget.Equal(decimal.NewFromInt(300)))
	assert.False(t, gig.CreatedAt.IsZero())
}

func TestCreateGig_Errors(t *testing.T) {
	m := newTestManager()
	longTitle := strings.Repeat("a", common.MaxGigTitleLen+1)
	longDesc := strings.Repeat("д", common.MaxGigDescriptionLen+1)

	tests := []struct {
		name   string
		owner  entity.Actor
		title  string
		desc   string
		budget float64
		want   error
	}{
		{"no owner", entity.Actor{Name: "x"}, "t", "d", 100, lifecycle.ErrEmptyOwner},
		{"blank title", owner, "   ", "d", 100, lifecycle.ErrInvalidTitle},
		{"long title", owner, longTitle, "d", 100, lifecycle.ErrInvalidTitle},
		{"blank description", owner, "t", "", 100, lifecycle.ErrInvalidDesc},
		{"long description", owner, "t", longDesc, 100, lifecycle.ErrInvalidDesc},
		{"budget too low", owner, "t", "d", 9.99, lifecycle.ErrInvalidBudget},
		{"budget too high", owner, "t", "d", 100000.01, lifecycle.ErrInvalidBudget},
		{"budget NaN", owner, "t", "d", math.NaN(), lifecycle.ErrInvalidBudget},
		{"budget infinite", owner, "t", "d", math.Inf(1), lifecycle.ErrInvalidBudget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.CreateGig(tt.owner, tt.title, tt.desc, tt.budget)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, lifecycle.ErrValidation)
		})
	}
}

func TestCreateGig_BudgetBounds(t *testing.T) {
	m := newTestManager()

	for _, budget := range []float64{common.MinGigBudget, common.MaxGigBudget} {
		_, err := m.CreateGig(owner, "t", "d", budget)
		assert.NoError(t, err)
	}
}
