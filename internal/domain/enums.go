package domain

// TaskStatus is the workflow state of a task. Any status may follow any other.
type TaskStatus string

const (
	TaskStatusInbox      TaskStatus = "inbox"
	TaskStatusWaiting    TaskStatus = "waiting"
	TaskStatusScheduled  TaskStatus = "scheduled"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusDelegated  TaskStatus = "delegated"
)

// TaskStatuses lists every valid status in display order.
var TaskStatuses = []TaskStatus{
	TaskStatusInbox, TaskStatusWaiting, TaskStatusScheduled,
	TaskStatusInProgress, TaskStatusCompleted, TaskStatusDelegated,
}

func (s TaskStatus) String() string { return string(s) }

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusInbox, TaskStatusWaiting, TaskStatusScheduled,
		TaskStatusInProgress, TaskStatusCompleted, TaskStatusDelegated:
		return true
	}
	return false
}

// IsPending reports whether the task is parked on something outside the family's control.
func (s TaskStatus) IsPending() bool {
	return s == TaskStatusWaiting || s == TaskStatusScheduled || s == TaskStatusDelegated
}

// TaskSource records how a task entered the system.
type TaskSource string

const (
	TaskSourceManual TaskSource = "manual"
	TaskSourceVoice  TaskSource = "voice"
	TaskSourceAPI    TaskSource = "api"
)

func (s TaskSource) String() string { return string(s) }

func (s TaskSource) IsValid() bool {
	switch s {
	case TaskSourceManual, TaskSourceVoice, TaskSourceAPI:
		return true
	}
	return false
}

// PersonGroup classifies a person linked to tasks.
type PersonGroup string

const (
	PersonGroupAdult            PersonGroup = "adult"
	PersonGroupChild            PersonGroup = "child"
	PersonGroupPet              PersonGroup = "pet"
	PersonGroupEmergencyContact PersonGroup = "emergency_contact"
)

// PersonGroups lists every valid group in display order.
var PersonGroups = []PersonGroup{
	PersonGroupAdult, PersonGroupChild, PersonGroupPet, PersonGroupEmergencyContact,
}

func (g PersonGroup) String() string { return string(g) }

func (g PersonGroup) IsValid() bool {
	switch g {
	case PersonGroupAdult, PersonGroupChild, PersonGroupPet, PersonGroupEmergencyContact:
		return true
	}
	return false
}

// FamilyRole is a member's role inside a family.
type FamilyRole string

const (
	FamilyRoleOwner  FamilyRole = "owner"
	FamilyRoleMember FamilyRole = "member"
)

func (r FamilyRole) String() string { return string(r) }

func (r FamilyRole) IsValid() bool {
	return r == FamilyRoleOwner || r == FamilyRoleMember
}
