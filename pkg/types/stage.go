package types

import (
	"fmt"
	"strings"
)

// Stage statuses stored in the interview_stages table.
const (
	StageScheduled = "SCHEDULED"
	StagePassed    = "PASSED"
	StageRejected  = "REJECTED"
)

// StageStatuses lists the valid stage statuses in prompt order.
var StageStatuses = []string{StageScheduled, StagePassed, StageRejected}

// ValidStageStatus reports whether s is one of the three stage statuses
// after upper-casing.
func ValidStageStatus(s string) bool {
	switch strings.ToUpper(s) {
	case StageScheduled, StagePassed, StageRejected:
		return true
	}
	return false
}

// Stage is one round of an interview process for a single job. Stage
// numbers for a job are contiguous starting at 1.
type Stage struct {
	ID            int64
	JobID         int64
	StageNumber   int64
	Name          *string
	Status        string
	ScheduledDate string
	Notes         *string
	Created       string
}

func (s *Stage) String() string {
	name := ""
	if s.Name != nil && *s.Name != "" {
		name = ": " + *s.Name
	}
	return fmt.Sprintf("Stage %d%s [%s] %s", s.StageNumber, name, s.Status, s.ScheduledDate)
}

// NewStage holds the fields for inserting a stage row. StageNumber must
// come from StageStore.NextStageNumber so additions always append.
type NewStage struct {
	JobID         int64
	StageNumber   int64
	Name          *string
	Status        string
	ScheduledDate string
	Notes         *string
	Created       string
}

// StageUpdate is a partial stage record. StageNumber and JobID are
// immutable and deliberately absent.
type StageUpdate struct {
	Name          *string
	Status        *string
	ScheduledDate *string
	Notes         *string
}
