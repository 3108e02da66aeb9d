package models

// Action names an operation guarded by the role policy.
type Action string

const (
	ActionDefectRead     Action = "defect:read"
	ActionDefectCreate   Action = "defect:create"
	ActionDefectUpdate   Action = "defect:update"
	ActionDefectDelete   Action = "defect:delete"
	ActionUserRead       Action = "user:read"
	ActionUserUpdateRole Action = "user:update-role"
)

// policy maps each action to the roles allowed to perform it.
var policy = map[Action]map[Role]bool{
	ActionDefectRead:     {RoleEngineer: true, RoleManager: true, RoleObserver: true},
	ActionDefectCreate:   {RoleEngineer: true, RoleManager: true},
	ActionDefectUpdate:   {RoleEngineer: true, RoleManager: true},
	ActionDefectDelete:   {RoleManager: true},
	ActionUserRead:       {RoleEngineer: true, RoleManager: true, RoleObserver: true},
	ActionUserUpdateRole: {RoleEngineer: true, RoleManager: true, RoleObserver: true},
}

// Can reports whether the role is allowed to perform the action. Unknown
// actions and roles are denied.
func (r Role) Can(action Action) bool {
	return policy[action][r]
}
