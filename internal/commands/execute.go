package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add       func(AddArgs) (Result, error)
	Done      func(DoneArgs) (Result, error)
	Win       func(WinArgs) (Result, error)
	Spend     func(SpendArgs) (Result, error)
	Show      func(ShowArgs) (Result, error)
	Celebrate func(CelebrateArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeDone:
		if handlers.Done == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "done handler not configured"}
		}
		return handlers.Done(*cmd.Done)
	case TypeWin:
		if handlers.Win == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "win handler not configured"}
		}
		return handlers.Win(*cmd.Win)
	case TypeSpend:
		if handlers.Spend == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "spend handler not configured"}
		}
		return handlers.Spend(*cmd.Spend)
	case TypeShow:
		if handlers.Show == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "show handler not configured"}
		}
		return handlers.Show(*cmd.Show)
	case TypeCelebrate:
		if handlers.Celebrate == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "celebrate handler not configured"}
		}
		return handlers.Celebrate(*cmd.Celebrate)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
