package domain

// EntityKind identifies which entity type a snapshot or undo key refers to.
type EntityKind string

const (
	EntityKindTask        EntityKind = "task"
	EntityKindHabit       EntityKind = "habit"
	EntityKindEvent       EntityKind = "event"
	EntityKindTransaction EntityKind = "transaction"
)

func (k EntityKind) String() string { return string(k) }

func (k EntityKind) IsValid() bool {
	switch k {
	case EntityKindTask, EntityKindHabit, EntityKindEvent, EntityKindTransaction:
		return true
	}
	return false
}

// TaskPriority is the user-assigned urgency of a task.
type TaskPriority string

const (
	TaskPriorityNone   TaskPriority = "NONE"
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

func (p TaskPriority) String() string { return string(p) }

func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityNone, TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// HabitFrequency is the period a habit target is counted over.
type HabitFrequency string

const (
	HabitFrequencyDaily  HabitFrequency = "DAILY"
	HabitFrequencyWeekly HabitFrequency = "WEEKLY"
)

func (f HabitFrequency) String() string { return string(f) }

func (f HabitFrequency) IsValid() bool {
	switch f {
	case HabitFrequencyDaily, HabitFrequencyWeekly:
		return true
	}
	return false
}

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

func (t TransactionType) String() string { return string(t) }

func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	}
	return false
}
