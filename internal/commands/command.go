package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd       Type = "add"
	TypeDone      Type = "done"
	TypeWin       Type = "win"
	TypeSpend     Type = "spend"
	TypeShow      Type = "show"
	TypeCelebrate Type = "celebrate"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Title string
}

// DoneArgs targets a Big Three slot by 1-based position.
type DoneArgs struct {
	Slot int
	Note string
}

type WinArgs struct {
	Note string
}

type SpendArgs struct {
	Coins  int
	Gems   int
	Reason string
}

type ShowArgs struct {
	Subject string
}

type CelebrateArgs struct {
	Mode string
}

type Command struct {
	Type      Type
	Raw       string
	Add       *AddArgs
	Done      *DoneArgs
	Win       *WinArgs
	Spend     *SpendArgs
	Show      *ShowArgs
	Celebrate *CelebrateArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeDone:
		return parseDone(input, args)
	case TypeWin:
		return parseWin(input, args)
	case TypeSpend:
		return parseSpend(input, args)
	case TypeShow:
		return parseShow(input, args)
	case TypeCelebrate:
		return parseCelebrate(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Title: title}}, nil
}

func parseDone(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "done requires a slot number"}
	}
	slot, err := strconv.Atoi(args[0])
	if err != nil || slot < 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid slot: %s", args[0])}
	}
	note := strings.TrimSpace(strings.Join(args[1:], " "))
	return Command{Type: TypeDone, Raw: raw, Done: &DoneArgs{Slot: slot, Note: note}}, nil
}

func parseWin(raw string, args []string) (Command, error) {
	note := strings.TrimSpace(strings.Join(args, " "))
	if note == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "win requires a note"}
	}
	return Command{Type: TypeWin, Raw: raw, Win: &WinArgs{Note: note}}, nil
}

func parseSpend(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "spend requires coins, gems, and a reason"}
	}
	coins, err := strconv.Atoi(args[0])
	if err != nil || coins < 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid coin amount: %s", args[0])}
	}
	gems := 0
	reasonStart := 1
	if v, convErr := strconv.Atoi(args[1]); convErr == nil {
		if v < 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid gem amount: %s", args[1])}
		}
		gems = v
		reasonStart = 2
	}
	reason := strings.TrimSpace(strings.Join(args[reasonStart:], " "))
	if reason == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "spend requires a reason"}
	}
	return Command{Type: TypeSpend, Raw: raw, Spend: &SpendArgs{Coins: coins, Gems: gems, Reason: reason}}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires a subject"}
	}
	subject := strings.ToLower(args[0])
	switch subject {
	case "wins", "trophies", "earnings", "pet":
		return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Subject: subject}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown subject: %s", subject)}
	}
}

func parseCelebrate(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "celebrate requires a mode"}
	}
	mode := strings.ToLower(args[0])
	switch mode {
	case "on", "off", "minimal", "full":
		return Command{Type: TypeCelebrate, Raw: raw, Celebrate: &CelebrateArgs{Mode: mode}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown mode: %s", mode)}
	}
}
