package domain

// TaskGroups buckets tasks for the dashboard.
type TaskGroups struct {
	Inbox     []Task
	Pending   []Task
	Scheduled []Task
	Completed []Task
	Other     []Task
}

// TaskCounts is the size of each dashboard bucket. Other is folded into Total only.
type TaskCounts struct {
	Inbox     int
	Pending   int
	Scheduled int
	Completed int
	Total     int
}

// GroupTasksByStatus splits tasks into dashboard buckets. Waiting and
// delegated tasks are pending; in-progress tasks land in Other.
func GroupTasksByStatus(tasks []Task) TaskGroups {
	g := TaskGroups{
		Inbox:     []Task{},
		Pending:   []Task{},
		Scheduled: []Task{},
		Completed: []Task{},
		Other:     []Task{},
	}
	for _, t := range tasks {
		switch t.Status {
		case TaskStatusInbox:
			g.Inbox = append(g.Inbox, t)
		case TaskStatusWaiting, TaskStatusDelegated:
			g.Pending = append(g.Pending, t)
		case TaskStatusScheduled:
			g.Scheduled = append(g.Scheduled, t)
		case TaskStatusCompleted:
			g.Completed = append(g.Completed, t)
		default:
			g.Other = append(g.Other, t)
		}
	}
	return g
}

// CountTasksByStatus returns the bucket sizes of GroupTasksByStatus.
func CountTasksByStatus(tasks []Task) TaskCounts {
	g := GroupTasksByStatus(tasks)
	return TaskCounts{
		Inbox:     len(g.Inbox),
		Pending:   len(g.Pending),
		Scheduled: len(g.Scheduled),
		Completed: len(g.Completed),
		Total:     len(tasks),
	}
}
