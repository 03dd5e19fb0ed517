package entities

import "time"

type Project struct {
	ID             string    `json:"id"`
	EntrepreneurID string    `json:"entrepreneurId"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ProjectType    string    `json:"projectType"`
	BusinessArea   string    `json:"businessArea"`
	Deadline       string    `json:"deadline"`
	Complexity     string    `json:"complexity"`
	Technologies   []string  `json:"technologies"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ProjectWithEntrepreneur is a project joined with its owner and the number
// of interests registered against it.
type ProjectWithEntrepreneur struct {
	Project
	Entrepreneur  Entrepreneur `json:"entrepreneur"`
	InterestCount int          `json:"interestCount"`
}

// ProjectDetails is the single-project view.
type ProjectDetails struct {
	Project
	Entrepreneur Entrepreneur                 `json:"entrepreneur"`
	Interests    []ProjectInterestWithDetails `json:"interests"`
}
