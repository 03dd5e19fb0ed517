package entities

import "time"

// StudentGroup is a team of students browsing projects.
type StudentGroup struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	RepresentativeName string    `json:"representativeName"`
	Email              string    `json:"email"`
	RA                 string    `json:"ra"`
	Semester           int       `json:"semester"`
	Members            []string  `json:"members"`
	Interests          []string  `json:"interests"`
	CreatedAt          time.Time `json:"createdAt"`
}
