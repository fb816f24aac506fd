package views

import (
	"fmt"
	"strings"
)

type TaskItemData struct {
	Title     string
	Completed bool
	Selected  bool
}

type BigThreeData struct {
	Items        []TaskItemData
	Slots        int
	QuickAddView string
	Capturing    bool
}

func RenderBigThree(data BigThreeData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Big Three (%d/%d)\n", len(data.Items), data.Slots))
	if len(data.Items) == 0 {
		b.WriteString("  nothing yet; press a to add\n")
	}
	for _, item := range data.Items {
		marker := "[ ]"
		title := item.Title
		if item.Completed {
			marker = "[x]"
			title = doneStyle.Render(title)
		}
		if item.Selected {
			title = selectedStyle.Render(item.Title)
			if item.Completed {
				title = doneStyle.Render(item.Title)
			}
			b.WriteString(fmt.Sprintf("> %s %s\n", marker, title))
			continue
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", marker, title))
	}
	if data.Capturing {
		b.WriteString("\nadd: " + data.QuickAddView + "\n")
	}
	return b.String()
}

type WinData struct {
	Title string
	Note  string
	At    string
}

func RenderWins(wins []WinData) string {
	var b strings.Builder
	b.WriteString("Today's wins\n")
	if len(wins) == 0 {
		b.WriteString("  none yet\n")
		return b.String()
	}
	for _, w := range wins {
		line := fmt.Sprintf("  %s %s", w.At, w.Title)
		if w.Note != "" && w.Note != w.Title {
			line += " (" + w.Note + ")"
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

type FocusData struct {
	TaskTitle          string
	Phase              string
	Timer              string
	ProgressView       string
	Running            bool
	CompletedPomodoros int
}

func RenderFocus(data FocusData) string {
	var b strings.Builder
	title := data.TaskTitle
	if title == "" {
		title = "(no task selected)"
	}
	b.WriteString(fmt.Sprintf("Focus: %s\n", title))
	b.WriteString(fmt.Sprintf("phase: %s\n", data.Phase))
	b.WriteString(fmt.Sprintf("timer: %s\n", data.Timer))
	b.WriteString(data.ProgressView + "\n")
	if data.Running {
		b.WriteString("running (space to pause)\n")
	} else {
		b.WriteString("paused (space to start, n to finish phase)\n")
	}
	b.WriteString(fmt.Sprintf("pomodoros today: %d\n", data.CompletedPomodoros))
	return b.String()
}

type EarningData struct {
	Coins  int
	Gems   int
	Source string
}

type RewardsData struct {
	TotalTrophies int
	TodayTrophies int
	CurrentStreak int
	BestStreak    int
	Coins         int
	Gems          int
	TodayCoins    int
	TodayGems     int
	Earnings      []EarningData
}

func RenderRewards(data RewardsData) string {
	var b strings.Builder
	b.WriteString("Rewards\n")
	b.WriteString(fmt.Sprintf("trophies: %d total, %d today\n", data.TotalTrophies, data.TodayTrophies))
	b.WriteString(fmt.Sprintf("streak: %d (best %d)\n", data.CurrentStreak, data.BestStreak))
	b.WriteString(fmt.Sprintf("coins: %d (+%d today)\n", data.Coins, data.TodayCoins))
	b.WriteString(fmt.Sprintf("gems: %d (+%d today)\n", data.Gems, data.TodayGems))
	if len(data.Earnings) > 0 {
		b.WriteString("recent earnings:\n")
		for _, e := range data.Earnings {
			b.WriteString(fmt.Sprintf("  +%dc +%dg %s\n", e.Coins, e.Gems, e.Source))
		}
	}
	return b.String()
}

type PetData struct {
	Name  string
	Stage string
	XP    int
}

var petArt = map[string]string{
	"hatchling": "( o )",
	"sprout":    "(\\o/)",
	"companion": "(=^.^=)",
	"legend":    "<(^O^)>",
}

func RenderPet(data PetData) string {
	art, ok := petArt[data.Stage]
	if !ok {
		art = petArt["hatchling"]
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s the %s\n", data.Name, data.Stage))
	b.WriteString("  " + art + "\n")
	b.WriteString(fmt.Sprintf("xp: %d\n", data.XP))
	return b.String()
}

type CelebrationData struct {
	Occasion string
	Message  string
	PetTheme string
}

func RenderCelebration(data CelebrationData) string {
	confetti := "*  .  *  ✦  *  .  *"
	line := data.Message
	if line == "" {
		line = "Nice work!"
	}
	if data.PetTheme != "" {
		if art, ok := petArt[data.PetTheme]; ok {
			line = art + "  " + line
		}
	}
	return confetti + "\n" + line + "\n" + confetti
}

type RewardFlashData struct {
	Spinner string
	Coins   int
	Gems    int
	Source  string
}

func RenderRewardFlash(data RewardFlashData) string {
	return fmt.Sprintf("\n%s +%d coins +%d gems (%s)", data.Spinner, data.Coins, data.Gems, data.Source)
}

type CommandPaletteData struct {
	InputView string
	Input     string
}

func RenderCommandPalette(data CommandPaletteData) string {
	return "\ncommand: " + data.InputView + "\n"
}

type HelpData struct {
	CurrentView string
	Bindings    []string
}

func RenderHelp(data HelpData) string {
	var md strings.Builder
	md.WriteString(fmt.Sprintf("## Help: %s\n\n", data.CurrentView))
	for _, b := range data.Bindings {
		md.WriteString("- " + b + "\n")
	}
	rendered := RenderMarkdown(md.String())
	if rendered == "" {
		return md.String()
	}
	return "\n" + rendered + "\n"
}
