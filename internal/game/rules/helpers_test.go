package rules_test

import (
	"github.com/cory-johannsen/colony/internal/game/inventory"
	"github.com/cory-johannsen/colony/internal/game/rules"
)

func inventoryFang() *inventory.Object {
	o := inventory.NewObject(rules.FangID)
	o.Name = "fang"
	o.Movable = true
	return o
}
