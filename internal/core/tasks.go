package core

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inovacc/taskr/internal/encoding"
	"github.com/inovacc/taskr/internal/model"
	"github.com/inovacc/taskr/internal/store"
)

// minPrefixLen is the shortest id prefix Get accepts.
const minPrefixLen = 4

// Service implements the task operations on top of a Store.
type Service struct {
	store  store.Store
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// NewService creates a Service. A nil logger uses slog.Default().
func NewService(s store.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		store:  s,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// List returns the stored tasks in order. Tasks saved without an id get one
// assigned and the list is written back.
func (s *Service) List() ([]model.Task, error) {
	tasks, err := s.store.LoadTasks()
	if err != nil {
		return nil, &StorageError{Operation: "load", Err: err}
	}

	assigned := s.assignIDs(tasks)
	if assigned == 0 {
		return tasks, nil
	}

	if err := s.store.SaveTasks(tasks); err != nil {
		return nil, &StorageError{Operation: "save", Err: err}
	}

	s.logger.Debug("assigned ids to legacy tasks", slog.Int("count", assigned))

	return tasks, nil
}

// Get resolves ref (a full id or a unique prefix) to a task.
func (s *Service) Get(ref string) (model.Task, error) {
	tasks, err := s.List()
	if err != nil {
		return model.Task{}, err
	}

	idx, err := resolve(tasks, ref)
	if err != nil {
		return model.Task{}, err
	}

	return tasks[idx], nil
}

// Add appends a new task stamped with the current time.
func (s *Service) Add(projectName, taskDescription string) (model.Task, error) {
	if err := requireField(model.FieldProjectName.String(), projectName); err != nil {
		return model.Task{}, err
	}

	tasks, err := s.List()
	if err != nil {
		return model.Task{}, err
	}

	task := model.Task{
		ID:              s.newID(),
		ProjectName:     projectName,
		TaskDescription: taskDescription,
		Timestamp:       model.Millis(s.now().UnixMilli()),
		Duration:        model.Millis(0),
	}

	if err := s.save(append(tasks, task)); err != nil {
		return model.Task{}, err
	}

	s.logger.Info("task added", slog.String("id", task.ID), slog.String("project", task.ProjectName))

	return task, nil
}

// Remove deletes one task; the others keep their order.
func (s *Service) Remove(ref string) (model.Task, error) {
	tasks, err := s.List()
	if err != nil {
		return model.Task{}, err
	}

	idx, err := resolve(tasks, ref)
	if err != nil {
		return model.Task{}, err
	}

	removed := tasks[idx]

	if err := s.save(slices.Delete(tasks, idx, idx+1)); err != nil {
		return model.Task{}, err
	}

	s.logger.Info("task removed", slog.String("id", removed.ID))

	return removed, nil
}

// Track adds d, rounded to the millisecond, to a task's tracked duration.
// A stored duration that is not a number is left alone and reported.
func (s *Service) Track(ref string, d time.Duration) (model.Task, error) {
	if d < time.Millisecond {
		return model.Task{}, &ValidationError{Field: "duration", Message: "must be at least 1ms"}
	}

	tasks, err := s.List()
	if err != nil {
		return model.Task{}, err
	}

	idx, err := resolve(tasks, ref)
	if err != nil {
		return model.Task{}, err
	}

	var total int64

	if tasks[idx].Duration.IsSet() {
		ms, ok := tasks[idx].Duration.Int64()
		if !ok {
			return model.Task{}, &ValidationError{
				Field:   "duration",
				Message: fmt.Sprintf("stored value %s is not a number of milliseconds", tasks[idx].Duration.Text()),
			}
		}

		total = ms
	}

	tasks[idx].Duration = model.Millis(total + d.Round(time.Millisecond).Milliseconds())

	if err := s.save(tasks); err != nil {
		return model.Task{}, err
	}

	s.logger.Info("time tracked",
		slog.String("id", tasks[idx].ID),
		slog.Duration("added", d),
		slog.Duration("total", tasks[idx].Elapsed()),
	)

	return tasks[idx], nil
}

// Editor returns a closed editor seeded from the task ref resolves to.
func (s *Service) Editor(ref string) (*Editor, error) {
	task, err := s.Get(ref)
	if err != nil {
		return nil, err
	}

	return NewEditor(s.store, task, s.logger), nil
}

// Export writes the task list to a JSON file and returns the task count.
func (s *Service) Export(path string) (int, error) {
	tasks, err := s.List()
	if err != nil {
		return 0, err
	}

	if err := encoding.SaveJSON(path, tasks); err != nil {
		return 0, err
	}

	return len(tasks), nil
}

// Import reads tasks from a JSON file and appends them to the list, or
// replaces the list when replace is set. Imported tasks keep their
// timestamp and duration; tasks without an id, or whose id is already in
// the list, get a new one.
func (s *Service) Import(path string, replace bool) (int, error) {
	loaded, err := encoding.LoadJSON[[]model.Task](path)
	if err != nil {
		return 0, err
	}

	if loaded == nil {
		return 0, fmt.Errorf("import file not found: %s", path)
	}

	return s.importTasks(path, loaded, replace)
}

// ImportFrom is Import over JSON read from r, such as standard input.
func (s *Service) ImportFrom(r io.Reader, replace bool) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("reading import data: %w", err)
	}

	loaded, err := encoding.ParseJSON[[]model.Task](data)
	if err != nil {
		return 0, err
	}

	return s.importTasks("input", loaded, replace)
}

func (s *Service) importTasks(source string, loaded *[]model.Task, replace bool) (int, error) {
	if *loaded == nil {
		return 0, fmt.Errorf("import %s: want a JSON array of tasks", source)
	}

	incoming := *loaded
	for i, t := range incoming {
		if err := requireField(model.FieldProjectName.String(), t.ProjectName); err != nil {
			return 0, fmt.Errorf("task %d: %w", i+1, err)
		}
	}

	var (
		tasks []model.Task
		err   error
	)

	if !replace {
		if tasks, err = s.List(); err != nil {
			return 0, err
		}
	}

	seen := make(map[string]bool, len(tasks)+len(incoming))
	for _, t := range tasks {
		seen[t.ID] = true
	}

	for _, t := range incoming {
		if t.ID == "" || seen[t.ID] {
			t.ID = s.newID()
		}

		seen[t.ID] = true
		tasks = append(tasks, t)
	}

	if err := s.save(tasks); err != nil {
		return 0, err
	}

	s.logger.Info("tasks imported", slog.Int("count", len(incoming)), slog.Bool("replace", replace))

	return len(incoming), nil
}

func (s *Service) save(tasks []model.Task) error {
	if err := s.store.SaveTasks(tasks); err != nil {
		return &StorageError{Operation: "save", Err: err}
	}

	return nil
}

func (s *Service) assignIDs(tasks []model.Task) int {
	n := 0

	for i := range tasks {
		if tasks[i].ID == "" {
			tasks[i].ID = s.newID()
			n++
		}
	}

	return n
}

// resolve finds ref by exact id first, then by unique prefix.
func resolve(tasks []model.Task, ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return -1, &ValidationError{Field: "id", Message: "this field is required"}
	}

	if idx := indexByID(tasks, ref); idx >= 0 {
		return idx, nil
	}

	if len(ref) < minPrefixLen {
		return -1, &NotFoundError{ID: ref}
	}

	match := -1

	for i, t := range tasks {
		if !strings.HasPrefix(t.ID, ref) {
			continue
		}

		if match >= 0 {
			return -1, &ValidationError{Field: "id", Message: fmt.Sprintf("prefix %q matches more than one task", ref)}
		}

		match = i
	}

	if match < 0 {
		return -1, &NotFoundError{ID: ref}
	}

	return match, nil
}
