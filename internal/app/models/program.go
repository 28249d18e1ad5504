package models

import "time"

// ResidentProgram defines a resident program based on the 'resident_programs' table
type ResidentProgram struct {
	ID              int64         `json:"id" db:"id" example:"1"`
	ProgramType     ProgramType   `json:"programType" db:"program_type" example:"culture"`
	Title           string        `json:"title" db:"title" example:"입주민 독서모임"`
	Description     string        `json:"description" db:"description"`
	Content         string        `json:"content" db:"content"`
	StartDate       time.Time     `json:"startDate" db:"start_date"`
	EndDate         time.Time     `json:"endDate" db:"end_date"`
	MaxParticipants int           `json:"maxParticipants" db:"max_participants" example:"20"`
	Status          ProgramStatus `json:"status" db:"status" example:"recruiting"`
	CreatedAt       time.Time     `json:"createdAt" db:"created_at"`
}

// ProgramApplication is a submission against a recruiting program,
// based on the 'program_applications' table.
type ProgramApplication struct {
	ID        int64     `json:"id" db:"id"`
	ProgramID int64     `json:"programId" db:"program_id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Message   *string   `json:"message,omitempty" db:"message"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
