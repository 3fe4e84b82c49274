// Package chef contains the kitchen staff domain model.
package chef

import "strings"

// Workload levels step up and down one level per task assigned or completed.
type Workload string

const (
	WorkloadLow    Workload = "Low"
	WorkloadMedium Workload = "Medium"
	WorkloadHigh   Workload = "High"
)

// Task is a kitchen task tied to an order. The task ID is the order ID.
type Task struct {
	ID           string
	MealName     string
	AssignedChef string
	Status       string
	DueTime      string
}

// Chef is a kitchen worker keyed by name, with a skill list and a coarse
// workload indicator.
type Chef struct {
	name          string
	expertise     []string
	workload      Workload
	tasks         []Task
	notifications []string
}

// New creates a chef with the given expertise and a starting workload.
func New(name string, expertise []string, workload Workload) (*Chef, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrBlankName
	}
	if workload == "" {
		workload = WorkloadLow
	}
	c := &Chef{name: strings.TrimSpace(name), workload: workload}
	for _, skill := range expertise {
		c.AddExpertise(skill)
	}
	return c, nil
}

// Name returns the chef's unique name.
func (c *Chef) Name() string { return c.name }

// Expertise returns the chef's skill list.
func (c *Chef) Expertise() []string {
	out := make([]string, len(c.expertise))
	copy(out, c.expertise)
	return out
}

// AddExpertise appends a skill, ignoring blanks and duplicates.
func (c *Chef) AddExpertise(skill string) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return
	}
	for _, s := range c.expertise {
		if s == skill {
			return
		}
	}
	c.expertise = append(c.expertise, skill)
}

// HasExpertise reports whether the chef has the skill, case-insensitively.
func (c *Chef) HasExpertise(skill string) bool {
	for _, s := range c.expertise {
		if strings.EqualFold(s, skill) {
			return true
		}
	}
	return false
}

// Workload returns the current workload level.
func (c *Chef) Workload() Workload { return c.workload }

// StepUpWorkload raises the workload one level, saturating at High.
func (c *Chef) StepUpWorkload() {
	switch c.workload {
	case WorkloadLow:
		c.workload = WorkloadMedium
	case WorkloadMedium:
		c.workload = WorkloadHigh
	}
}

// StepDownWorkload lowers the workload one level, saturating at Low.
func (c *Chef) StepDownWorkload() {
	switch c.workload {
	case WorkloadHigh:
		c.workload = WorkloadMedium
	case WorkloadMedium:
		c.workload = WorkloadLow
	}
}

// Tasks returns the assigned tasks.
func (c *Chef) Tasks() []Task {
	out := make([]Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// AddTask assigns a task, ignoring duplicates by task ID.
func (c *Chef) AddTask(task Task) {
	for _, t := range c.tasks {
		if t.ID == task.ID {
			return
		}
	}
	c.tasks = append(c.tasks, task)
}

// Notifications returns the chef's notification log.
func (c *Chef) Notifications() []string {
	out := make([]string, len(c.notifications))
	copy(out, c.notifications)
	return out
}

// Notify appends a notification message, ignoring blanks.
func (c *Chef) Notify(message string) {
	if strings.TrimSpace(message) != "" {
		c.notifications = append(c.notifications, message)
	}
}
