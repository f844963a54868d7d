package lifecycle

import (
	"math"
	"strings"
	"unicode/utf8"

	"gigflow/internal/common"
	"gigflow/internal/entity"

	"github.com/shopspring/decimal"
)

// CreateGig validates a posting and returns the new open gig.
func (m *Manager) CreateGig(owner entity.Actor, title string, description string, budget float64) (entity.Gig, error) {
	if strings.TrimSpace(owner.Id) == "" {
		return entity.Gig{}, ErrEmptyOwner
	}

	title = strings.TrimSpace(title)
	if title == "" || utf8.RuneCountInString(title) > common.MaxGigTitleLen {
		return entity.Gig{}, ErrInvalidTitle
	}

	description = strings.TrimSpace(description)
	if description == "" || utf8.RuneCountInString(description) > common.MaxGigDescriptionLen {
		return entity.Gig{}, ErrInvalidDesc
	}

	if math.IsNaN(budget) || budget < common.MinGigBudget || budget > common.MaxGigBudget {
		return entity.Gig{}, ErrInvalidBudget
	}

	name := strings.TrimSpace(owner.Name)
	if name == "" {
		name = owner.Id
	}

	return entity.Gig{
		Id:          m.newID(),
		Title:       title,
		Description: description,
		Budget:      decimal.NewFromFloat(budget),
		Status:      common.GigOpen,
		OwnerId:     owner.Id,
		OwnerName:   name,
		CreatedAt:   m.now(),
	}, nil
}
