package usecase

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/league-registry/internal/domain/team"
	"github.com/riskibarqy/league-registry/internal/domain/user"
)

func requireAuthenticated(principal user.Principal) error {
	if strings.TrimSpace(principal.UserID) == "" {
		return fmt.Errorf("%w: authentication required", ErrUnauthenticated)
	}
	return nil
}

func requireAdmin(principal user.Principal) error {
	if err := requireAuthenticated(principal); err != nil {
		return err
	}
	if !principal.IsAdmin() {
		return fmt.Errorf("%w: admin role required", ErrForbidden)
	}
	return nil
}

// canManageTeam is the single ownership predicate. Admins bypass it only
// where the caller passes allowAdmin.
func canManageTeam(item team.Team, principal user.Principal, allowAdmin bool) bool {
	if allowAdmin && principal.IsAdmin() {
		return true
	}
	return item.ManagedBy(principal.UserID)
}

func requireTeamManager(item team.Team, principal user.Principal, allowAdmin bool) error {
	if err := requireAuthenticated(principal); err != nil {
		return err
	}
	if canManageTeam(item, principal, allowAdmin) {
		return nil
	}
	if item.ManagerID == "" {
		return fmt.Errorf("%w: team=%s has no manager", ErrForbidden, item.ID)
	}
	return fmt.Errorf("%w: not the manager of team=%s", ErrForbidden, item.ID)
}
