package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/entitykit/entitykit/pkg/lifecycle"
	"github.com/entitykit/entitykit/pkg/model"
	"github.com/entitykit/entitykit/pkg/store/memory"
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk a person through every lifecycle phase",
	Long: `Walk a person through every lifecycle phase using the in-memory engine.

No database is required. The command inserts, loads, updates, and deletes
a person while printing each lifecycle phase as it fires.

Example:
  entityctl demo`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDemo(); err != nil {
			fmt.Fprintf(os.Stderr, "Demo failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

// phaseTracer prints every lifecycle phase it sees.
type phaseTracer struct{}

func (phaseTracer) SupportsEventType(lifecycle.EventType) bool { return true }

func (phaseTracer) OnPersistenceEvent(ev *lifecycle.Event) error {
	fmt.Printf("  phase %-15s entity %T\n", ev.Type, ev.Entity)
	return nil
}

func runDemo() error {
	ctx := context.Background()

	events := lifecycle.NewDispatcher()
	if err := events.RegisterEntity(&model.Person{}); err != nil {
		return err
	}
	events.RegisterCustomListener(phaseTracer{})

	entities := memory.NewStore(events)

	fred := &model.Person{Name: "Fred", Email: "Fred@Example.com"}

	fmt.Println("Inserting Fred...")
	if err := entities.Insert(ctx, fred); err != nil {
		return err
	}
	fmt.Printf("  stored with email %q, created at %s\n", fred.Email, fred.CreatedAt.Format("15:04:05"))

	fmt.Println("Loading Fred...")
	var loaded model.Person
	if err := entities.Load(ctx, &loaded, "Fred"); err != nil {
		return err
	}

	fmt.Println("Updating Fred...")
	loaded.Email = "fred@bedrock.example"
	if err := entities.Update(ctx, &loaded); err != nil {
		return err
	}

	fmt.Println("Validating Fred...")
	if err := entities.Validate(ctx, &loaded, []string{"email"}); err != nil {
		return err
	}

	fmt.Println("Deleting Fred...")
	if err := entities.Delete(ctx, &loaded); err != nil {
		return err
	}

	fmt.Println("Done. Every phase above came from the same dispatcher the server uses.")
	return nil
}
