package models

import (
	"encoding/json"
	"strings"
	"time"
)

// TaskStatus is the lifecycle state of a task as reported by the control API.
type TaskStatus string

const (
	TaskPending TaskStatus = "pending"
	TaskSent    TaskStatus = "sent"
	TaskRunning TaskStatus = "running"
	TaskSuccess TaskStatus = "success"
	TaskFailed  TaskStatus = "failed"
	TaskUnknown TaskStatus = "unknown"
)

// ParseTaskStatus maps a wire value onto a known status. Anything it does not
// recognise becomes TaskUnknown.
func ParseTaskStatus(raw string) TaskStatus {
	switch s := TaskStatus(strings.ToLower(strings.TrimSpace(raw))); s {
	case TaskPending, TaskSent, TaskRunning, TaskSuccess, TaskFailed:
		return s
	default:
		return TaskUnknown
	}
}

func (s TaskStatus) String() string {
	return strings.ToUpper(string(ParseTaskStatus(string(s))))
}

// Settled reports whether the task has produced (or will never produce) a result.
func (s TaskStatus) Settled() bool {
	switch s {
	case TaskPending, TaskSent, TaskRunning:
		return false
	default:
		return true
	}
}

func (s *TaskStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		*s = TaskUnknown
		return nil
	}
	*s = ParseTaskStatus(raw)
	return nil
}

// Ghost is a remote agent tracked by the control server.
type Ghost struct {
	ID       string `json:"id"`
	Hostname string `json:"hostname"`
	OS       string `json:"os"`
	LastSeen int64  `json:"last_seen"`
}

// IsActive reports whether the ghost checked in less than timeout before now.
func (g Ghost) IsActive(now time.Time, timeout time.Duration) bool {
	return now.Unix()-g.LastSeen < int64(timeout/time.Second)
}

// SeenAgo returns the time elapsed since the last check-in, never negative.
func (g Ghost) SeenAgo(now time.Time) time.Duration {
	d := time.Duration(now.Unix()-g.LastSeen) * time.Second
	if d < 0 {
		return 0
	}
	return d
}

// Task is a unit of work issued to a ghost.
type Task struct {
	ID      string     `json:"id"`
	Command string     `json:"command"`
	Args    string     `json:"args"`
	Status  TaskStatus `json:"status"`
	Result  *string    `json:"result"`
}

// TaskRequest is the body posted to queue a new task.
type TaskRequest struct {
	Command string `json:"command"`
	Args    string `json:"args"`
}

// GhostConfigUpdate is the body posted to change a ghost's beacon timing.
type GhostConfigUpdate struct {
	SleepInterval int64 `json:"sleep_interval"`
	JitterPercent int16 `json:"jitter_percent"`
}
