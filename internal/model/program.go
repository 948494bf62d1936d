package model

import "time"

// Program represents an academic program (degree course) as stored in
// the `programs` table. Students belong to exactly one program and the
// allocation engine mixes programs to keep course mates apart.
//
// Fields:
//  ID        – primary key identifier.
//  Code      – unique numeric program code used on seat labels.
//  Name      – human readable program name (e.g. Computer Engineering).
//  CreatedAt – timestamp of creation.
//  UpdatedAt – timestamp of last update.
type Program struct {
	ID        uint64    // programs.id
	Code      int       // programs.code
	Name      string    // programs.name
	CreatedAt time.Time // programs.created_at
	UpdatedAt time.Time // programs.updated_at
}
