package extras

import "strings"

// TemplateMode selects how ApplyTemplate treats an existing checklist.
type TemplateMode int

const (
	ModeAppend TemplateMode = iota
	ModeReplace
)

// AddStep appends a new open step. A title that trims to empty is
// rejected and leaves the list untouched.
func AddStep(list *[]ChecklistItem, title string) bool {
	t := strings.TrimSpace(title)
	if t == "" {
		return false
	}
	*list = append(*list, NewChecklistItem(t))
	return true
}

// ToggleStep flips IsDone for the step with the given id. Unknown ids
// are a no-op.
func ToggleStep(list []ChecklistItem, id string) bool {
	for i := range list {
		if list[i].ID == id {
			list[i].IsDone = !list[i].IsDone
			return true
		}
	}
	return false
}

// DeleteStep removes the step with the given id.
func DeleteStep(list *[]ChecklistItem, id string) bool {
	for i := range *list {
		if (*list)[i].ID == id {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}

// ApplyTemplate inserts the template's steps, each as a fresh open
// item. ModeReplace discards the current checklist first.
func ApplyTemplate(list *[]ChecklistItem, steps []string, mode TemplateMode) {
	items := make([]ChecklistItem, 0, len(steps))
	for _, s := range steps {
		items = append(items, NewChecklistItem(s))
	}
	if mode == ModeReplace {
		*list = items
		return
	}
	*list = append(*list, items...)
}

// MarkAllDone ticks every step. Professional-mode "I'm done".
func MarkAllDone(list []ChecklistItem) {
	for i := range list {
		list[i].IsDone = true
	}
}

// ResetAll reopens every step.
func ResetAll(list []ChecklistItem) {
	for i := range list {
		list[i].IsDone = false
	}
}

// DoneCount returns the number of ticked steps.
func DoneCount(list []ChecklistItem) int {
	n := 0
	for i := range list {
		if list[i].IsDone {
			n++
		}
	}
	return n
}

// AllDone reports checklist-derived completion: a non-empty list with
// every step ticked. An empty list is never "done".
func AllDone(list []ChecklistItem) bool {
	return len(list) > 0 && DoneCount(list) == len(list)
}

// NextOpenStep answers "what should I do right now": the first step in
// list order that is not done.
func NextOpenStep(list []ChecklistItem) (ChecklistItem, bool) {
	for i := range list {
		if !list[i].IsDone {
			return list[i], true
		}
	}
	return ChecklistItem{}, false
}
