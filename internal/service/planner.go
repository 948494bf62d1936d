// Package service holds the orchestration layer between HTTP handlers
// and the repositories. The Planner service owns the seating plan
// lifecycle: it validates exam bookings, runs the in-memory allocation
// engine and persists the resulting plan atomically.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/examplan/exam-seat-planner/internal/allocation"
	"github.com/examplan/exam-seat-planner/internal/model"
	"github.com/examplan/exam-seat-planner/internal/queue"
	"github.com/examplan/exam-seat-planner/internal/repository"
)

// ErrRoomBooked is returned when an exam tries to book a room that is
// already taken by another exam in an overlapping date window.
var ErrRoomBooked = errors.New("room already booked for an overlapping exam")

// ErrCohortBusy is returned when a (program, semester) cohort is
// already attached to another exam in an overlapping date window.
var ErrCohortBusy = errors.New("cohort already has an exam in this window")

// ErrNoPlan is returned when an exam has no generated seating plan.
var ErrNoPlan = errors.New("no seating plan generated for this exam")

// Planner orchestrates exam scheduling and seat allocation. Plan
// generation for the same exam is serialized through a per-exam mutex
// so two concurrent requests cannot interleave their DELETE+INSERT
// writes.
type Planner struct {
	Exams    *repository.ExamRepo
	Rooms    *repository.RoomRepo
	Students *repository.StudentRepo
	Plans    *repository.SeatingPlanRepo

	mu    sync.Mutex
	locks map[uint64]*sync.Mutex
}

// NewPlanner constructs a Planner over the given repositories.
func NewPlanner(exams *repository.ExamRepo, rooms *repository.RoomRepo, students *repository.StudentRepo, plans *repository.SeatingPlanRepo) *Planner {
	return &Planner{
		Exams:    exams,
		Rooms:    rooms,
		Students: students,
		Plans:    plans,
		locks:    make(map[uint64]*sync.Mutex),
	}
}

// examLock returns the mutex guarding plan writes for one exam,
// creating it on first use. Locks are never removed; the map stays
// small since it only grows with distinct exams.
func (p *Planner) examLock(examID uint64) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()
	l, ok := p.locks[examID]
	if !ok {
		l = &sync.Mutex{}
		p.locks[examID] = l
	}
	return l
}

// CreateExam validates and creates an exam with its cohorts and room
// bookings in one transaction. It rejects rooms already booked for an
// overlapping window (ErrRoomBooked), cohorts already sitting another
// exam in that window (ErrCohortBusy) and bookings whose cohorts do
// not fit the rooms (allocation.CapacityError). An exam with no
// enrolled students at all is rejected up front.
func (p *Planner) CreateExam(ctx context.Context, e *model.Exam, cohorts []model.ExamProgram, roomIDs []uint64) error {
	booked, err := p.Exams.FindBookedRooms(ctx, roomIDs, e.StartDate, e.EndDate)
	if err != nil {
		return err
	}
	if len(booked) > 0 {
		return fmt.Errorf("%w: room ids %v", ErrRoomBooked, booked)
	}
	for _, c := range cohorts {
		busy, err := p.Exams.CohortHasExam(ctx, c.ProgramID, c.Semester, e.StartDate, e.EndDate)
		if err != nil {
			return err
		}
		if busy {
			return fmt.Errorf("%w: program id %d semester %d", ErrCohortBusy, c.ProgramID, c.Semester)
		}
	}

	// The same gate runs again at plan generation; failing here keeps
	// unplannable exams out of the schedule entirely.
	engineRooms := make([]allocation.Room, 0, len(roomIDs))
	for _, id := range roomIDs {
		rm, err := p.Rooms.GetByID(ctx, id)
		if err != nil {
			return err
		}
		engineRooms = append(engineRooms, allocation.Room{
			RoomNo:        rm.RoomNo,
			NumRows:       rm.NumRows,
			NumBenchCols:  rm.NumBenchCols,
			SeatsPerBench: rm.SeatsPerBench,
			NumSides:      rm.NumSides,
		})
	}
	pairs := make([]allocation.PairCount, 0, len(cohorts))
	for _, c := range cohorts {
		n, err := p.Students.CountByProgramAndSemester(ctx, c.ProgramID, c.Semester)
		if err != nil {
			return err
		}
		pairs = append(pairs, allocation.PairCount{
			ProgramCode: c.ProgramCode,
			Semester:    allocation.Semester(c.Semester),
			Count:       n,
		})
	}
	if err := allocation.ValidateCapacity(pairs, engineRooms); err != nil {
		return err
	}

	tx, err := p.Exams.DB().BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := p.Exams.CreateTx(ctx, tx, e, cohorts, roomIDs); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// PlanResult is the outcome of a plan generation run: the persisted
// assignments plus the engine's allocation summary and the adjacency
// check over the fresh plan.
type PlanResult struct {
	ExamID            uint64                 `json:"exam_id"`
	Strategy          string                 `json:"strategy"`
	TotalStudents     int                    `json:"total_students"`
	TotalCapacity     int                    `json:"total_capacity"`
	RemainingCapacity int                    `json:"remaining_capacity"`
	Violations        []allocation.Violation `json:"violations"`
	Statistics        allocation.Statistics  `json:"statistics"`
}

// GeneratePlan runs the allocation engine for an exam and replaces any
// existing plan. strategyName selects the filling strategy ("lane" or
// "risk", empty for the default). A non-nil seed shuffles the program
// rotation order reproducibly; nil keeps the strict first-appearance
// order. The new plan and the PLANNED status are committed in a single
// transaction, then a plan.generated event is published best effort.
func (p *Planner) GeneratePlan(ctx context.Context, examID uint64, strategyName string, seed *int64) (*PlanResult, error) {
	strat, err := allocation.ParseStrategy(strategyName)
	if err != nil {
		return nil, err
	}

	lock := p.examLock(examID)
	lock.Lock()
	defer lock.Unlock()

	exam, err := p.Exams.GetByID(ctx, examID)
	if err != nil {
		return nil, err
	}
	cohorts, err := p.Exams.ListCohorts(ctx, examID)
	if err != nil {
		return nil, err
	}
	rooms, err := p.Rooms.ListByExam(ctx, examID)
	if err != nil {
		return nil, err
	}

	engineRooms := make([]allocation.Room, len(rooms))
	roomIDByNo := make(map[int]uint64, len(rooms))
	for i, rm := range rooms {
		engineRooms[i] = allocation.Room{
			RoomNo:        rm.RoomNo,
			NumRows:       rm.NumRows,
			NumBenchCols:  rm.NumBenchCols,
			SeatsPerBench: rm.SeatsPerBench,
			NumSides:      rm.NumSides,
		}
		roomIDByNo[rm.RoomNo] = rm.ID
	}

	// Gate on cohort counts before loading any student rows.
	pairs := make([]allocation.PairCount, 0, len(cohorts))
	for _, c := range cohorts {
		n, err := p.Students.CountByProgramAndSemester(ctx, c.ProgramID, c.Semester)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, allocation.PairCount{
			ProgramCode: c.ProgramCode,
			Semester:    allocation.Semester(c.Semester),
			Count:       n,
		})
	}
	if err := allocation.ValidateCapacity(pairs, engineRooms); err != nil {
		return nil, err
	}

	var engineStudents []allocation.Student
	idByStudent := make(map[allocation.Student]uint64)
	for _, c := range cohorts {
		cohortStudents, err := p.Students.ListByProgramAndSemester(ctx, c.ProgramID, c.Semester)
		if err != nil {
			return nil, err
		}
		for _, s := range cohortStudents {
			es := allocation.Student{
				ProgramCode:  s.ProgramCode,
				Semester:     allocation.Semester(s.Semester),
				Roll:         s.RollNumber,
				EnrolledYear: s.EnrolledYear,
			}
			engineStudents = append(engineStudents, es)
			idByStudent[es] = s.ID
		}
	}
	if seed != nil {
		engineStudents = allocation.SequenceShuffled(engineStudents, rand.New(rand.NewSource(*seed)))
	}

	res, err := allocation.Allocate(engineRooms, engineStudents, strat)
	if err != nil {
		return nil, err
	}

	assignments := make([]model.SeatAssignment, len(res.Assignments))
	for i, a := range res.Assignments {
		assignments[i] = model.SeatAssignment{
			ExamID:    examID,
			RoomID:    roomIDByNo[a.Seat.RoomNo],
			RoomNo:    a.Seat.RoomNo,
			Side:      a.Seat.Side,
			RowIndex:  a.Seat.Row,
			Lane:      a.Seat.Lane,
			StudentID: idByStudent[a.Student],
			Strategy:  res.Strategy,
		}
	}

	tx, err := p.Plans.DB().BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	if err := p.Plans.ReplaceForExamTx(ctx, tx, examID, assignments); err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := p.Exams.UpdateStatusTx(ctx, tx, examID, model.ExamStatusPlanned); err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	grids := gridsFromAssignments(engineRooms, res.Assignments)
	violations := allocation.Validate(grids)
	stats := allocation.Summarize(grids)

	roomNos := make([]int, len(engineRooms))
	for i, rm := range engineRooms {
		roomNos[i] = rm.RoomNo
	}
	// Fire and forget: a broker outage must not fail plan generation.
	go func() {
		_ = PublishPlanGenerated(context.Background(), queue.PlanGeneratedEvent{
			ExamID:         examID,
			ExamName:       exam.Name,
			Strategy:       res.Strategy,
			TotalStudents:  res.TotalStudents,
			TotalCapacity:  res.TotalCapacity,
			RoomNos:        roomNos,
			ViolationCount: stats.ViolationCount,
			OccupancyRate:  stats.OccupancyRate,
			GeneratedAt:    time.Now().UTC().Format("2006-01-02 15:04:05"),
		})
	}()

	return &PlanResult{
		ExamID:            examID,
		Strategy:          res.Strategy,
		TotalStudents:     res.TotalStudents,
		TotalCapacity:     res.TotalCapacity,
		RemainingCapacity: res.RemainingCapacity,
		Violations:        violations,
		Statistics:        stats,
	}, nil
}

// ClearPlan discards the exam's seating plan and moves it back to
// SCHEDULED, atomically. Clearing an exam without a plan is a no-op on
// the assignments but still resets the status.
func (p *Planner) ClearPlan(ctx context.Context, examID uint64) error {
	lock := p.examLock(examID)
	lock.Lock()
	defer lock.Unlock()

	if _, err := p.Exams.GetByID(ctx, examID); err != nil {
		return err
	}
	tx, err := p.Plans.DB().BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := p.Plans.DeleteForExamTx(ctx, tx, examID); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := p.Exams.UpdateStatusTx(ctx, tx, examID, model.ExamStatusScheduled); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Plan returns the persisted seat details of an exam's plan in
// canonical order. ErrNoPlan is returned when nothing was generated.
func (p *Planner) Plan(ctx context.Context, examID uint64) ([]model.SeatDetail, error) {
	if _, err := p.Exams.GetByID(ctx, examID); err != nil {
		return nil, err
	}
	details, err := p.Plans.ListDetailsByExam(ctx, examID)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, ErrNoPlan
	}
	return details, nil
}

// Statistics rebuilds the in-memory grids from the persisted plan and
// returns the occupancy summary plus the full violation list. An exam
// whose plan was cleared reports zero occupancy over its booked rooms,
// not an error.
func (p *Planner) Statistics(ctx context.Context, examID uint64) (allocation.Statistics, []allocation.Violation, error) {
	grids, _, err := p.rebuildGrids(ctx, examID)
	if err != nil {
		return allocation.Statistics{}, nil, err
	}
	return allocation.Summarize(grids), allocation.Validate(grids), nil
}

// RenderPlan returns the ASCII seating charts of all rooms in the
// exam's plan, one chart per room. ErrNoPlan is returned when nothing
// was generated; there is no chart to draw for an empty plan.
func (p *Planner) RenderPlan(ctx context.Context, examID uint64) (string, error) {
	grids, seats, err := p.rebuildGrids(ctx, examID)
	if err != nil {
		return "", err
	}
	if seats == 0 {
		return "", ErrNoPlan
	}
	var b strings.Builder
	for i, g := range grids {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(allocation.Render(g))
	}
	return b.String(), nil
}

// rebuildGrids loads the exam's rooms and persisted assignments and
// reconstructs the engine grids, empty seats included. The second
// return value is the number of persisted assignments so callers can
// distinguish a cleared plan from an occupied one.
func (p *Planner) rebuildGrids(ctx context.Context, examID uint64) ([]*allocation.Grid, int, error) {
	if _, err := p.Exams.GetByID(ctx, examID); err != nil {
		return nil, 0, err
	}
	rooms, err := p.Rooms.ListByExam(ctx, examID)
	if err != nil {
		return nil, 0, err
	}
	details, err := p.Plans.ListDetailsByExam(ctx, examID)
	if err != nil {
		return nil, 0, err
	}
	grids, err := planGrids(rooms, details)
	if err != nil {
		return nil, 0, err
	}
	return grids, len(details), nil
}

// planGrids replays persisted seat details onto fresh grids built from
// the exam's booked rooms. With no details the grids come back empty,
// which is exactly the state after a plan was cleared.
func planGrids(rooms []model.Room, details []model.SeatDetail) ([]*allocation.Grid, error) {
	engineRooms := make([]allocation.Room, len(rooms))
	for i, rm := range rooms {
		engineRooms[i] = allocation.Room{
			RoomNo:        rm.RoomNo,
			NumRows:       rm.NumRows,
			NumBenchCols:  rm.NumBenchCols,
			SeatsPerBench: rm.SeatsPerBench,
			NumSides:      rm.NumSides,
		}
	}
	grids := allocation.BuildGrids(engineRooms)
	byRoomNo := make(map[int]*allocation.Grid, len(grids))
	for _, g := range grids {
		byRoomNo[g.Room.RoomNo] = g
	}
	for _, d := range details {
		g, ok := byRoomNo[d.RoomNo]
		if !ok {
			return nil, fmt.Errorf("plan references room %d not booked for exam %d", d.RoomNo, d.ExamID)
		}
		g.Assign(g.Ref(d.Side, d.RowIndex, d.Lane), allocation.Student{
			ProgramCode:  d.ProgramCode,
			Semester:     allocation.Semester(d.Semester),
			Roll:         d.RollNumber,
			EnrolledYear: d.EnrolledYear,
		})
	}
	return grids, nil
}

// gridsFromAssignments replays freshly generated assignments onto new
// grids so statistics can be computed without a read back from the DB.
func gridsFromAssignments(rooms []allocation.Room, assignments []allocation.Assignment) []*allocation.Grid {
	grids := allocation.BuildGrids(rooms)
	byRoomNo := make(map[int]*allocation.Grid, len(grids))
	for _, g := range grids {
		byRoomNo[g.Room.RoomNo] = g
	}
	for _, a := range assignments {
		g := byRoomNo[a.Seat.RoomNo]
		g.Assign(a.Seat, a.Student)
	}
	return grids
}

// IsNotFound reports whether err is one of the repository not-found
// sentinels or a bare sql.ErrNoRows. Handlers use it to map service
// errors onto 404 responses.
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrExamNotFound) ||
		errors.Is(err, repository.ErrRoomNotFound) ||
		errors.Is(err, repository.ErrStudentNotFound) ||
		errors.Is(err, repository.ErrProgramNotFound) ||
		errors.Is(err, sql.ErrNoRows)
}
