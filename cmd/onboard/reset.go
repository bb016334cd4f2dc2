package main

import (
	"context"
	"fmt"
)

// ResetCmd clears the onboarding record.
type ResetCmd struct {
	StoreFlags `kong:"embed"`
}

// Run executes the onboard reset command.
func (cmd ResetCmd) Run(ctx context.Context) error {
	records, err := cmd.open()
	if err != nil {
		return err
	}

	records.Clear()
	fmt.Println("Onboarding record cleared.")

	return nil
}
