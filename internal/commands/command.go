package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeDone   Type = "done"
	TypeUndone Type = "undone"
	TypeEdit   Type = "edit"
	TypeDelete Type = "delete"
	TypeClear  Type = "clear"
	TypeFilter Type = "filter"
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
	Description string
}

// ToggleArgs targets one item by id, or every item when All is set.
type ToggleArgs struct {
	ID  int
	All bool
}

type EditArgs struct {
	ID          int
	Description string
}

type DeleteArgs struct {
	ID int
}

type FilterArgs struct {
	Name string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Done   *ToggleArgs
	Undone *ToggleArgs
	Edit   *EditArgs
	Delete *DeleteArgs
	Filter *FilterArgs
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
		return parseToggle(input, TypeDone, args)
	case TypeUndone:
		return parseToggle(input, TypeUndone, args)
	case TypeEdit:
		return parseEdit(input, args)
	case TypeDelete:
		return parseDelete(input, args)
	case TypeClear:
		return Command{Type: TypeClear, Raw: input}, nil
	case TypeFilter:
		return parseFilter(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a description"}
	}
	description := strings.TrimSpace(strings.Join(args, " "))
	if description == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a description"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Description: description}}, nil
}

func parseToggle(raw string, kind Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires an item id or 'all'", kind)}
	}
	toggle := &ToggleArgs{}
	if strings.EqualFold(args[0], "all") {
		toggle.All = true
	} else {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s: not an item id: %s", kind, args[0])}
		}
		toggle.ID = id
	}
	cmd := Command{Type: kind, Raw: raw}
	if kind == TypeDone {
		cmd.Done = toggle
	} else {
		cmd.Undone = toggle
	}
	return cmd, nil
}

func parseEdit(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "edit requires an item id and a description"}
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("edit: not an item id: %s", args[0])}
	}
	description := strings.TrimSpace(strings.Join(args[1:], " "))
	if description == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "edit requires a description"}
	}
	return Command{Type: TypeEdit, Raw: raw, Edit: &EditArgs{ID: id, Description: description}}, nil
}

func parseDelete(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "delete requires an item id"}
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("delete: not an item id: %s", args[0])}
	}
	return Command{Type: TypeDelete, Raw: raw, Delete: &DeleteArgs{ID: id}}, nil
}

func parseFilter(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter requires one of: all, active, completed"}
	}
	return Command{Type: TypeFilter, Raw: raw, Filter: &FilterArgs{Name: strings.ToLower(args[0])}}, nil
}
