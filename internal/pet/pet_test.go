package pet

import (
	"testing"

	"github.com/vasanthkv/flowmate/internal/bus"
	"github.com/vasanthkv/flowmate/internal/model"
	"github.com/vasanthkv/flowmate/internal/storage"
)

func TestStageForThresholds(t *testing.T) {
	cases := []struct {
		xp   int
		want model.PetStage
	}{
		{0, model.StageHatchling},
		{49, model.StageHatchling},
		{50, model.StageSprout},
		{149, model.StageSprout},
		{150, model.StageCompanion},
		{399, model.StageCompanion},
		{400, model.StageLegend},
		{10000, model.StageLegend},
	}
	for _, tc := range cases {
		if got := StageFor(tc.xp); got != tc.want {
			t.Fatalf("StageFor(%d) = %s, want %s", tc.xp, got, tc.want)
		}
	}
}

func TestFeedLevelsUpAtThreshold(t *testing.T) {
	k := NewKeeper(storage.NewMemoryKV(), bus.New())

	for i := 0; i < 4; i++ {
		if _, leveled := k.Feed(XPPerTask); leveled {
			t.Fatalf("leveled too early at feed %d", i)
		}
	}
	p, leveled := k.Feed(XPPerTask)
	if !leveled {
		t.Fatal("expected level-up at 50 xp")
	}
	if p.Stage != model.StageSprout || p.XP != 50 {
		t.Fatalf("pet = %+v", p)
	}
}

func TestFeedIgnoresNonPositiveXP(t *testing.T) {
	k := NewKeeper(storage.NewMemoryKV(), bus.New())
	if _, leveled := k.Feed(0); leveled {
		t.Fatal("zero xp leveled the pet")
	}
	if p := k.Pet(); p.XP != 0 {
		t.Fatalf("xp = %d, want 0", p.XP)
	}
}

func TestRenameKeepsProgress(t *testing.T) {
	k := NewKeeper(storage.NewMemoryKV(), bus.New())
	k.Feed(60)

	p := k.Rename("Biscuit")
	if p.Name != "Biscuit" || p.XP != 60 {
		t.Fatalf("pet = %+v", p)
	}
	if p := k.Rename("  "); p.Name != "Biscuit" {
		t.Fatalf("blank rename changed the name: %+v", p)
	}
}
