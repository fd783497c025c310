package state

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

type CommandType string

const (
	CmdLook   CommandType = "look"
	CmdMove   CommandType = "move"
	CmdAttack CommandType = "attack"
	CmdPotion CommandType = "potion"
	CmdNone   CommandType = "" // Not a recognized command
)

// Command is one player action. ItemID zero means "the first owned weapon
// or potion".
type Command struct {
	Type      CommandType     `json:"type"`
	Direction world.Direction `json:"direction,omitempty"`
	ItemID    int             `json:"item_id,omitempty"`
}

// ParseCommand parses typed input such as "n", "go west", "attack 6" or
// "drink". Unrecognized input returns CmdNone.
func ParseCommand(input string) Command {
	known := map[string]CommandType{
		"look":   CmdLook,
		"l":      CmdLook,
		"go":     CmdMove,
		"move":   CmdMove,
		"m":      CmdMove,
		"attack": CmdAttack,
		"a":      CmdAttack,
		"hit":    CmdAttack,
		"drink":  CmdPotion,
		"potion": CmdPotion,
		"d":      CmdPotion,
	}

	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 {
		return Command{}
	}

	if dir, ok := world.ParseDirection(fields[0]); ok && len(fields) == 1 {
		return Command{Type: CmdMove, Direction: dir}
	}

	cmd, ok := known[fields[0]]
	if !ok {
		return Command{}
	}
	switch cmd {
	case CmdMove:
		if len(fields) != 2 {
			return Command{}
		}
		dir, ok := world.ParseDirection(fields[1])
		if !ok {
			return Command{}
		}
		return Command{Type: CmdMove, Direction: dir}
	case CmdAttack, CmdPotion:
		c := Command{Type: cmd}
		if len(fields) > 1 {
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				return Command{}
			}
			c.ItemID = id
		}
		return c
	}
	return Command{Type: cmd}
}

// Result is what one command did.
type Result struct {
	Outcome Outcome `json:"outcome"`
	Events  []Event `json:"events"`
}

// Execute applies cmd to gs.
func (e *Engine) Execute(gs *GameState, cmd Command) (*Result, error) {
	switch cmd.Type {
	case CmdLook:
		if gs == nil || gs.Player == nil || gs.Player.Location == nil {
			return nil, ErrNoPlayer
		}
		return &Result{Events: []Event{arrived(gs.Player.Location)}}, nil

	case CmdMove:
		events, err := e.Move(gs, cmd.Direction)
		if err != nil {
			return nil, err
		}
		return &Result{Events: events}, nil

	case CmdAttack:
		id := cmd.ItemID
		if id == 0 && gs != nil && gs.Player != nil {
			if weapons := gs.Player.Inventory.Weapons(); len(weapons) > 0 {
				id = weapons[0].ID
			}
		}
		outcome, events, err := e.UseWeapon(gs, id)
		if err != nil {
			return nil, err
		}
		return &Result{Outcome: outcome, Events: events}, nil

	case CmdPotion:
		id := cmd.ItemID
		if id == 0 && gs != nil && gs.Player != nil {
			if potions := gs.Player.Inventory.Potions(); len(potions) > 0 {
				id = potions[0].ID
			}
		}
		outcome, events, err := e.UsePotion(gs, id)
		if err != nil {
			return nil, err
		}
		return &Result{Outcome: outcome, Events: events}, nil

	default:
		return nil, fmt.Errorf("unknown command %q", cmd.Type)
	}
}
