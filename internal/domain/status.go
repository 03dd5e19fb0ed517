package domain

import "slices"

// User types.
const (
	UserTypeEntrepreneur = "entrepreneur"
	UserTypeStudent      = "student"
)

// Project types.
const (
	ProjectTypeWebSystem   = "web_system"
	ProjectTypeMobileApp   = "mobile_app"
	ProjectTypeLandingPage = "landing_page"
	ProjectTypeEcommerce   = "ecommerce"
	ProjectTypeOther       = "other"
)

// Deadline buckets, shortest first.
const (
	Deadline1Month     = "1_month"
	Deadline1To3Months = "1_3_months"
	Deadline3To6Months = "3_6_months"
	Deadline6PlusMonth = "6_plus_months"
)

// Complexity levels.
const (
	ComplexityBasic        = "basic"
	ComplexityIntermediate = "intermediate"
	ComplexityAdvanced     = "advanced"
)

// Project statuses.
const (
	ProjectStatusAvailable  = "available"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusCompleted  = "completed"
)

// Project interest statuses.
const (
	InterestStatusPending  = "pending"
	InterestStatusAccepted = "accepted"
	InterestStatusRejected = "rejected"
)

// Event statuses.
const (
	EventStatusUpcoming  = "upcoming"
	EventStatusCompleted = "completed"
)

// DeadlineOrder is the ascending order used by the "deadline" sort.
var DeadlineOrder = []string{Deadline1Month, Deadline1To3Months, Deadline3To6Months, Deadline6PlusMonth}

var (
	projectStatuses  = []string{ProjectStatusAvailable, ProjectStatusInProgress, ProjectStatusCompleted}
	interestStatuses = []string{InterestStatusPending, InterestStatusAccepted, InterestStatusRejected}
)

func ValidProjectStatus(s string) bool {
	return slices.Contains(projectStatuses, s)
}

func ValidInterestStatus(s string) bool {
	return slices.Contains(interestStatuses, s)
}
