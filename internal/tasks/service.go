// Package tasks owns the Big Three and pet task lists and the daily
// win log, and hooks completions into the reward ledger, pet growth,
// and celebration dispatch.
package tasks

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vasanthkv/flowmate/internal/bus"
	"github.com/vasanthkv/flowmate/internal/celebrate"
	"github.com/vasanthkv/flowmate/internal/ledger"
	"github.com/vasanthkv/flowmate/internal/model"
	"github.com/vasanthkv/flowmate/internal/pet"
	"github.com/vasanthkv/flowmate/internal/storage"
)

type Service struct {
	kv       storage.KV
	clock    storage.Clock
	changes  *bus.Bus
	ledger   *ledger.Ledger
	keeper   *pet.Keeper
	dispatch *celebrate.Dispatcher
}

func NewService(kv storage.KV, clock storage.Clock, changes *bus.Bus, lgr *ledger.Ledger, keeper *pet.Keeper, dispatch *celebrate.Dispatcher) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{kv: kv, clock: clock, changes: changes, ledger: lgr, keeper: keeper, dispatch: dispatch}
}

// BigThree returns today's priority list; yesterday's list is shadowed
// at the daily rollover.
func (s *Service) BigThree() model.TaskList {
	return storage.LoadDaily(s.kv, s.clock, storage.KeyBigThree, model.TaskList{})
}

func (s *Service) PetTasks() model.TaskList {
	return storage.Load(s.kv, storage.KeyPetTasks, model.TaskList{})
}

func (s *Service) Wins() []model.Win {
	logRec := storage.LoadDaily(s.kv, s.clock, storage.KeyWins, model.WinLog{})
	return logRec.Wins
}

// AddBigThree appends a task for today, enforcing the slot limit.
func (s *Service) AddBigThree(title string) (model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, fmt.Errorf("%w: title is required", model.ErrInvalidTask)
	}
	list := s.BigThree()
	if len(list.Tasks) >= model.BigThreeSlots {
		return model.Task{}, fmt.Errorf("%w: big three holds %d tasks", model.ErrListFull, model.BigThreeSlots)
	}
	task := model.Task{ID: uuid.NewString(), Title: title, CreatedAt: s.clock()}
	list.Tasks = append(list.Tasks, task)
	storage.SaveDaily(s.kv, s.clock, storage.KeyBigThree, list)
	s.changes.Publish(storage.KeyBigThree)
	return task, nil
}

func (s *Service) AddPetTask(title string) (model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, fmt.Errorf("%w: title is required", model.ErrInvalidTask)
	}
	list := s.PetTasks()
	task := model.Task{ID: uuid.NewString(), Title: title, CreatedAt: s.clock()}
	list.Tasks = append(list.Tasks, task)
	storage.Save(s.kv, storage.KeyPetTasks, list)
	s.changes.Publish(storage.KeyPetTasks)
	return task, nil
}

// CompleteBigThree marks the task done, logs a win, pays the task rate
// (plus the bonus when it was the last open slot), feeds the pet, and
// requests a celebration. Completing an already-done task is a no-op.
func (s *Service) CompleteBigThree(id, note string) (model.Task, error) {
	list := s.BigThree()
	task, ok := list.Find(id)
	if !ok {
		return model.Task{}, fmt.Errorf("%w: %s", model.ErrTaskNotFound, id)
	}
	if task.Completed {
		return task, nil
	}

	now := s.clock()
	task.Completed = true
	task.CompletedAt = &now
	list.Update(task)
	storage.SaveDaily(s.kv, s.clock, storage.KeyBigThree, list)
	s.changes.Publish(storage.KeyBigThree)

	index := 0
	for i, t := range list.Tasks {
		if t.ID == id {
			index = i
			break
		}
	}
	s.logWin(task.Title, index, note)

	s.ledger.AwardActivityCurrency(ledger.ActivityTaskComplete)
	s.feedPet()

	occasion := celebrate.OccasionTaskComplete
	message := fmt.Sprintf("%q done!", task.Title)
	if list.AllComplete() {
		s.ledger.AwardActivityCurrency(ledger.ActivityBigThreeBonus)
		occasion = celebrate.OccasionAllTasksComplete
		message = "Big Three complete! Bonus earned."
	}
	s.dispatch.Dispatch(celebrate.Trigger{Occasion: occasion, Message: message})
	return task, nil
}

func (s *Service) CompletePetTask(id string) (model.Task, error) {
	list := s.PetTasks()
	task, ok := list.Find(id)
	if !ok {
		return model.Task{}, fmt.Errorf("%w: %s", model.ErrTaskNotFound, id)
	}
	if task.Completed {
		return task, nil
	}

	now := s.clock()
	task.Completed = true
	task.CompletedAt = &now
	list.Update(task)
	storage.Save(s.kv, storage.KeyPetTasks, list)
	s.changes.Publish(storage.KeyPetTasks)

	s.ledger.AwardActivityCurrency(ledger.ActivityTaskComplete)
	s.feedPet()
	s.dispatch.Dispatch(celebrate.Trigger{
		Occasion: celebrate.OccasionTaskComplete,
		Message:  fmt.Sprintf("%q done!", task.Title),
		PetTheme: string(s.keeper.Pet().Stage),
	})
	return task, nil
}

// LogMicroWin records a small win that is not tied to a task slot.
func (s *Service) LogMicroWin(note string) (model.Win, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return model.Win{}, fmt.Errorf("%w: note is required", model.ErrInvalidWin)
	}
	win := s.logWin(note, len(s.Wins()), note)
	s.dispatch.Dispatch(celebrate.Trigger{Occasion: celebrate.OccasionMicroWinLogged, Message: note})
	return win, nil
}

func (s *Service) logWin(title string, index int, note string) model.Win {
	win := model.Win{
		ID:              uuid.NewString(),
		TaskTitle:       title,
		TaskIndex:       index,
		CelebrationNote: note,
		CompletedAt:     s.clock(),
	}
	logRec := storage.LoadDaily(s.kv, s.clock, storage.KeyWins, model.WinLog{})
	logRec.Wins = append(logRec.Wins, win)
	storage.SaveDaily(s.kv, s.clock, storage.KeyWins, logRec)
	s.changes.Publish(storage.KeyWins)
	return win
}

func (s *Service) feedPet() {
	if _, leveled := s.keeper.Feed(pet.XPPerTask); leveled {
		s.ledger.AwardActivityCurrency(ledger.ActivityPetMilestone)
		s.dispatch.Dispatch(celebrate.Trigger{
			Occasion: celebrate.OccasionPetMilestone,
			Message:  fmt.Sprintf("%s grew to %s!", s.keeper.Pet().Name, s.keeper.Pet().Stage),
			PetTheme: string(s.keeper.Pet().Stage),
		})
	}
}
