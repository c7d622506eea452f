package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/llmpid-console/internal/client/guard"
)

func (a *App) Systems(ctx context.Context) error {
	if !a.enter(guard.Systems) {
		return nil
	}
	list, err := a.systems.List(ctx)
	if err != nil {
		a.println("Failed to fetch external systems:", reason(err))
		return err
	}
	a.renderSystems(list)
	return nil
}

// AddSystem registers an external system and shows its access key once.
func (a *App) AddSystem(ctx context.Context, name string) error {
	if !a.enter(guard.Systems) {
		return nil
	}
	if name == "" {
		var err error
		if name, err = getSimpleText(a.reader, "System name", a.out); err != nil {
			return err
		}
	}

	reg, err := a.systems.Add(ctx, name)
	if err != nil {
		a.println("Failed to add system:", reason(err))
		return err
	}
	a.printf("System %q registered.\n", reg.Name)
	a.printf("Access key: %s\n", reg.AccessKey)
	a.println("Store the key now: it cannot be shown again.")
	return nil
}

// DeleteSystem revokes an external system after confirmation.
func (a *App) DeleteSystem(ctx context.Context, name string) error {
	if !a.enter(guard.Systems) {
		return nil
	}
	answer, err := getSimpleText(a.reader, "Delete system "+name+"? [y/N]", a.out)
	if err != nil {
		return err
	}
	if answer = strings.ToLower(answer); answer != "y" && answer != "yes" {
		a.println("Cancelled")
		return nil
	}

	if err := a.systems.Delete(ctx, name); err != nil {
		a.println("Failed to delete system:", reason(err))
		return err
	}
	a.printf("System %q deleted\n", name)
	return nil
}
