// Package pet implements the virtual-pet growth mechanic. The pet only
// ever gains XP; its stage is derived from XP by a fixed growth table.
package pet

import (
	"strings"

	"github.com/vasanthkv/flowmate/internal/bus"
	"github.com/vasanthkv/flowmate/internal/model"
	"github.com/vasanthkv/flowmate/internal/storage"
)

// XPPerTask is the growth granted per completed task.
const XPPerTask = 10

// growthStages maps cumulative XP to a stage. Checked top down.
var growthStages = []struct {
	MinXP int
	Stage model.PetStage
}{
	{MinXP: 400, Stage: model.StageLegend},
	{MinXP: 150, Stage: model.StageCompanion},
	{MinXP: 50, Stage: model.StageSprout},
	{MinXP: 0, Stage: model.StageHatchling},
}

func StageFor(xp int) model.PetStage {
	for _, g := range growthStages {
		if xp >= g.MinXP {
			return g.Stage
		}
	}
	return model.StageHatchling
}

type Keeper struct {
	kv      storage.KV
	changes *bus.Bus
}

func NewKeeper(kv storage.KV, changes *bus.Bus) *Keeper {
	return &Keeper{kv: kv, changes: changes}
}

func (k *Keeper) Pet() model.Pet {
	def := model.Pet{Name: "Mochi", Stage: model.StageHatchling}
	return storage.Load(k.kv, storage.KeyPet, def)
}

func (k *Keeper) Rename(name string) model.Pet {
	p := k.Pet()
	if strings.TrimSpace(name) != "" {
		p.Name = strings.TrimSpace(name)
	}
	storage.Save(k.kv, storage.KeyPet, p)
	k.changes.Publish(storage.KeyPet)
	return p
}

// Feed grants xp and reports whether the pet reached a new stage.
func (k *Keeper) Feed(xp int) (model.Pet, bool) {
	if xp <= 0 {
		return k.Pet(), false
	}
	p := k.Pet()
	before := p.Stage
	p.XP += xp
	p.Stage = StageFor(p.XP)
	storage.Save(k.kv, storage.KeyPet, p)
	k.changes.Publish(storage.KeyPet)
	return p, p.Stage != before
}
