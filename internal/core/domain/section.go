package domain

import "time"

type Section struct {
	ID        uint64
	Name      string
	ProjectID uint64
	Position  int
	CreatedAt time.Time
}

type CreateSectionInput struct {
	Name      string
	ProjectID uint64
	Position  int
}

type UpdateSectionInput struct {
	Name     *string
	Position *int
}
