// Package queue defines the payloads exchanged over the message broker
// and the background consumer that appends plan.generated events to
// logs/allocation.log.
package queue

// PlanGeneratedEvent is published when a seating plan is generated for
// an exam. It contains enough information for downstream consumers to
// log, notify, or trigger analytics without querying the primary
// database.
type PlanGeneratedEvent struct {
	ExamID         uint64  `json:"exam_id"`
	ExamName       string  `json:"exam_name"`
	Strategy       string  `json:"strategy"`
	TotalStudents  int     `json:"total_students"`
	TotalCapacity  int     `json:"total_capacity"`
	RoomNos        []int   `json:"rooms"`
	ViolationCount int     `json:"violation_count"`
	OccupancyRate  float64 `json:"occupancy_rate"`
	GeneratedAt    string  `json:"generated_at"`
}
