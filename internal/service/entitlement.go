package service

import (
	"errors"

	"github.com/sozhane/backend/internal/model"
)

// Entitlement denial reasons. Handlers translate these to user-facing
// messages; they are distinct from input errors.
var (
	ErrPlanRequired   = errors.New("plan required")
	ErrQuotaExhausted = errors.New("contract quota exhausted")
	ErrForbidden      = errors.New("access denied")
)

// AuthorizeGeneration checks the user's plan state before any generation
// work starts. The matching commit (the guarded quota decrement) runs
// inside the contract-creation transaction, not here.
func AuthorizeGeneration(user *model.User) error {
	switch user.Plan {
	case "":
		return ErrPlanRequired
	case model.PlanStarter:
		if user.ContractsLeft <= 0 {
			return ErrQuotaExhausted
		}
		return nil
	default:
		// pro and anything a future plan grants: unbounded
		return nil
	}
}
