package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"taskwarrior-mcp/internal/model"
	"taskwarrior-mcp/internal/task"
	"taskwarrior-mcp/pkg/taskdate"
)

const (
	tagNext  = "next"
	tagQuick = "quick"
)

func (uc *implUseCase) Suggest(ctx context.Context, input task.SuggestInput) (task.SuggestOutput, error) {
	if input.Context != "" &&
		input.Context != task.ContextQuickWins &&
		input.Context != task.ContextBlockers &&
		input.Context != task.ContextDeadlines {
		return task.SuggestOutput{}, &task.ValidationError{
			Field:  "context",
			Reason: fmt.Sprintf("%q is not one of quick_wins, blockers, deadlines", input.Context),
		}
	}

	pending, err := uc.exportPending(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Suggest: %v", err)
		return task.SuggestOutput{}, err
	}
	totalPending := len(pending)

	// Only unblocked tasks are actionable right now.
	candidates := readyTasks(pending)
	if input.Project != "" {
		filtered := candidates[:0]
		for _, t := range candidates {
			if inProject(t, input.Project) {
				filtered = append(filtered, t)
			}
		}
		candidates = filtered
	}
	blocks := blocksIndex(pending)
	candidates = filterByContext(candidates, blocks, input.Context)

	now := uc.now()
	scored := make([]task.ScoredTask, 0, len(candidates))
	for _, t := range candidates {
		score, reasons := uc.score(t, len(blocks[t.UUID]), now)
		scored = append(scored, task.ScoredTask{Task: t, Score: score, Reasons: reasons})
	}
	sortScored(scored)

	limit := input.Limit
	if limit <= 0 {
		limit = 5
	}
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return task.SuggestOutput{Suggestions: scored, TotalPending: totalPending}, nil
}

// score computes the composite suggestion score and the human-readable
// reasons behind it. Raw Taskwarrior urgency enters scaled way down, as a
// stabilizer only: it must never override the weight ordering.
func (uc *implUseCase) score(t model.Task, blocksCount int, now time.Time) (float64, []string) {
	w := uc.weights
	score := 0.0
	var reasons []string

	switch t.Priority {
	case model.PriorityHigh:
		score += w.PriorityHigh
		reasons = append(reasons, "high priority")
	case model.PriorityMedium:
		score += w.PriorityMedium
		reasons = append(reasons, "medium priority")
	case model.PriorityLow:
		score += w.PriorityLow
		reasons = append(reasons, "low priority")
	}

	switch uc.classifier.Proximity(t.Due, now) {
	case taskdate.ProximityOverdue:
		score += w.Overdue
		reasons = append(reasons, "overdue")
	case taskdate.ProximityToday:
		score += w.DueToday
		reasons = append(reasons, "due today")
	case taskdate.ProximityWeek:
		score += w.DueThisWeek
		reasons = append(reasons, "due this week")
	}

	if days := taskdate.AgeDays(t.Entry, now); days >= 7 {
		bonus := float64(days/7) * w.AgePerWeek
		if bonus > w.AgeCap {
			bonus = w.AgeCap
		}
		score += bonus
		reasons = append(reasons, fmt.Sprintf("%d days old", days))
	}

	if t.IsActive() {
		score += w.Active
		reasons = append(reasons, "already started")
	}
	if t.HasTag(tagNext) {
		score += w.NextTag
		reasons = append(reasons, "tagged +next")
	}
	if t.HasTag(tagQuick) {
		score += w.QuickTag
		reasons = append(reasons, "quick win")
	}
	if blocksCount > 0 {
		score += w.PerBlocked * float64(blocksCount)
		reasons = append(reasons, fmt.Sprintf("blocks %d task(s)", blocksCount))
	}

	score += t.Urgency * 0.001
	return score, reasons
}

// filterByContext narrows candidates to the requested working mode. When
// nothing matches, the full candidate list is kept so the caller always gets
// suggestions.
func filterByContext(candidates []model.Task, blocks map[string][]model.Task, mode string) []model.Task {
	if mode == "" {
		return candidates
	}

	var keep func(model.Task) bool
	switch mode {
	case task.ContextQuickWins:
		keep = func(t model.Task) bool {
			return t.HasTag(tagQuick) || (t.Priority != model.PriorityHigh && t.Due == "")
		}
	case task.ContextBlockers:
		keep = func(t model.Task) bool { return len(blocks[t.UUID]) > 0 }
	case task.ContextDeadlines:
		keep = func(t model.Task) bool { return t.Due != "" }
	default:
		return candidates
	}

	matched := make([]model.Task, 0, len(candidates))
	for _, t := range candidates {
		if keep(t) {
			matched = append(matched, t)
		}
	}
	if len(matched) == 0 {
		return candidates
	}
	return matched
}

// sortScored orders suggestions by score descending; ties go to the
// earliest due date (no due date sorts last), then earliest entry. The
// result is identical for identical input.
func sortScored(scored []task.ScoredTask) {
	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Task.Due != b.Task.Due {
			if a.Task.Due == "" {
				return false
			}
			if b.Task.Due == "" {
				return true
			}
			return a.Task.Due < b.Task.Due
		}
		if a.Task.Entry != b.Task.Entry {
			return a.Task.Entry < b.Task.Entry
		}
		return a.Task.UUID < b.Task.UUID
	})
}

func (uc *implUseCase) Ready(ctx context.Context, input task.ReadyInput) (task.ReadyOutput, error) {
	if input.Priority != "" && !model.ValidPriority(input.Priority) {
		return task.ReadyOutput{}, &task.ValidationError{
			Field:  "priority",
			Reason: fmt.Sprintf("%q is not one of H, M, L", input.Priority),
		}
	}

	pending, err := uc.exportPending(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Ready: %v", err)
		return task.ReadyOutput{}, err
	}
	totalPending := len(pending)

	ready := readyTasks(pending)
	filtered := ready[:0]
	for _, t := range ready {
		if !inProject(t, input.Project) {
			continue
		}
		if input.Priority != "" && !strings.EqualFold(t.Priority, input.Priority) {
			continue
		}
		if !input.IncludeActive && t.IsActive() {
			continue
		}
		filtered = append(filtered, t)
	}
	sortByUrgency(filtered)
	return task.ReadyOutput{Tasks: applyLimit(filtered, input.Limit), TotalPending: totalPending}, nil
}

func (uc *implUseCase) Blocked(ctx context.Context, input task.BlockedInput) (task.BlockedOutput, error) {
	pending, err := uc.exportPending(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Blocked: %v", err)
		return task.BlockedOutput{}, err
	}
	totalPending := len(pending)

	byUUID := indexByUUID(pending)
	blocked := blockedTasks(pending)
	sortByUrgency(blocked)
	blocked = applyLimit(blocked, input.Limit)

	out := task.BlockedOutput{
		Blocked:      make([]task.BlockedTask, 0, len(blocked)),
		TotalPending: totalPending,
	}
	for _, t := range blocked {
		bt := task.BlockedTask{Task: t}
		if input.ShowBlockers {
			for _, dep := range t.Depends {
				if blocker, ok := byUUID[dep]; ok && blocker.Status == model.StatusPending {
					bt.Blockers = append(bt.Blockers, *blocker)
				}
			}
		}
		out.Blocked = append(out.Blocked, bt)
	}
	return out, nil
}
