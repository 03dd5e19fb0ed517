package entities

import "time"

// ProjectInterest represents a student group's interest in a project.
type ProjectInterest struct {
	ID             string    `json:"id"`
	ProjectID      string    `json:"projectId"`
	StudentGroupID string    `json:"studentGroupId"`
	Message        *string   `json:"message"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

type ProjectInterestWithDetails struct {
	ProjectInterest
	Project      Project      `json:"project"`
	StudentGroup StudentGroup `json:"studentGroup"`
}
