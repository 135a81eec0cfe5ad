// Package authz decides whether a user may perform a gated action.
//
// Decisions are computed from the records handed in and nothing else: no storage access
// and no caching. Callers load the acting user (with profile) and the target fresh for
// every request, so a role or membership change takes effect on the next call.
package authz

import "columns-cms/models"

type Reason string

const (
	ReasonWrongRole      Reason = "wrong role"
	ReasonNotAssigned    Reason = "not assigned to this column"
	ReasonNotCoordinator Reason = "not the coordinator of this column"
)

type Decision struct {
	Allowed bool
	Reason  Reason
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason Reason) Decision {
	return Decision{Reason: reason}
}

// Err returns nil for ALLOW and a models.ErrorPermissionDenied for DENY.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return models.ErrorPermissionDenied{Reason: string(d.Reason)}
}

// Target is the optional object of an action. Use ColumnTarget or PostTarget.
type Target interface {
	target()
}

type columnTarget struct{ column *models.Column }

type postTarget struct{ post *models.Post }

func (columnTarget) target() {}
func (postTarget) target()   {}

// ColumnTarget requires Writers, Moderators and CoordinatorID to be loaded.
func ColumnTarget(c *models.Column) Target {
	return columnTarget{column: c}
}

// PostTarget requires the post's Column with Moderators to be loaded.
func PostTarget(p *models.Post) Target {
	return postTarget{post: p}
}

// Authorize applies, in order:
//
//	A: the user's role must equal required.
//	B: for a column target and Writer/Moderator, the user must be in the matching set.
//	C: for a post target and Moderator, B is applied to the post's column.
//	D: for a column target and Coordinator, the user must be the column's coordinator.
func Authorize(user *models.User, required models.UserRole, target Target) Decision {
	if user == nil || user.Role() != required {
		return Deny(ReasonWrongRole)
	}

	switch t := target.(type) {
	case columnTarget:
		return authorizeColumn(user, required, t.column)
	case postTarget:
		if required != models.RoleModerator {
			return Allow()
		}
		if t.post == nil {
			return Deny(ReasonNotAssigned)
		}
		return authorizeColumn(user, required, t.post.Column)
	}
	return Allow()
}

func authorizeColumn(user *models.User, required models.UserRole, column *models.Column) Decision {
	switch required {
	case models.RoleWriter:
		if column == nil || !column.HasWriter(user.ID) {
			return Deny(ReasonNotAssigned)
		}
	case models.RoleModerator:
		if column == nil || !column.HasModerator(user.ID) {
			return Deny(ReasonNotAssigned)
		}
	case models.RoleCoordinator:
		if column == nil || column.CoordinatorID != user.ID {
			return Deny(ReasonNotCoordinator)
		}
	}
	return Allow()
}
