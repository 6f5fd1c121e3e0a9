package domain

import "time"

type Mentor struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}
