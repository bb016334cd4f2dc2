package main

import (
	"context"
	"fmt"

	"github.com/BrandonKowalski/onboard/pkg/onboard"
)

// StatusCmd prints the persisted onboarding record.
type StatusCmd struct {
	StoreFlags `kong:"embed"`
}

// Run executes the onboard status command.
func (cmd StatusCmd) Run(ctx context.Context) error {
	records, err := cmd.open()
	if err != nil {
		return err
	}

	model, ok := records.Load()
	if !ok {
		fmt.Println("No onboarding record.")
		fmt.Println("Onboarding required: true")
		return nil
	}

	level := model.SkillLevel.String()
	if level == "" {
		level = "(none)"
	}

	fmt.Printf("Skill level:         %s\n", level)
	fmt.Printf("Completed:           %t\n", model.Completed)
	fmt.Printf("Onboarding required: %t\n", onboard.IsRequired(records))

	return nil
}
