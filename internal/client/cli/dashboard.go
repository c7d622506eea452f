package cli

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/llmpid-console/internal/client/guard"
	"github.com/dmitrijs2005/llmpid-console/internal/client/models"
)

// Classify submits text (or prompts for it) and prints the label.
func (a *App) Classify(ctx context.Context, text string) error {
	if !a.enter(guard.Dashboard) {
		return nil
	}
	if text == "" {
		var err error
		if text, err = GetMultiline(a.reader, "Text to classify", a.out); err != nil {
			return err
		}
	}

	res, err := a.classification.Classify(ctx, text)
	if err != nil {
		a.println("Classification failed:", reason(err))
		return err
	}
	a.println("Result:", res.Result)
	return nil
}

// Logs prints the current page of the classification history.
func (a *App) Logs(ctx context.Context) error {
	if !a.enter(guard.Dashboard) {
		return nil
	}
	q := a.currentQuery()
	list, err := a.classification.List(ctx, q)
	if err != nil {
		a.println("Failed to fetch classifications:", reason(err))
		return err
	}
	a.renderHistory(q, list)
	return nil
}

func (a *App) NextPage(ctx context.Context) error {
	if !a.enter(guard.Dashboard) {
		return nil
	}
	a.setQuery(a.currentQuery().Next())
	return a.Logs(ctx)
}

func (a *App) PrevPage(ctx context.Context) error {
	if !a.enter(guard.Dashboard) {
		return nil
	}
	q := a.currentQuery()
	if q.Page <= 1 {
		a.println("Already on the first page")
		return nil
	}
	a.setQuery(q.Prev())
	return a.Logs(ctx)
}

// SetLimit changes the page size and restarts from page 1.
func (a *App) SetLimit(ctx context.Context, arg string) error {
	if !a.enter(guard.Dashboard) {
		return nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > models.MaxLimit {
		a.printf("Page size must be a number between 1 and %d\n", models.MaxLimit)
		return nil
	}
	a.setQuery(a.currentQuery().WithLimit(n))
	a.savePreferences(ctx)
	return a.Logs(ctx)
}

// SetSort switches the history ordering and restarts from page 1.
func (a *App) SetSort(ctx context.Context, key, dir string) error {
	if !a.enter(guard.Dashboard) {
		return nil
	}
	s, err := models.ParseSort(key, dir)
	if err != nil {
		a.println("Usage: sort <time|source> <asc|desc>")
		return nil
	}
	a.setQuery(a.currentQuery().WithSort(s))
	a.savePreferences(ctx)
	return a.Logs(ctx)
}

// Refresh reloads the whole dashboard: history page and external systems.
func (a *App) Refresh(ctx context.Context) error {
	if !a.enter(guard.Dashboard) {
		return nil
	}
	ov, err := a.overview.Load(ctx, a.currentQuery())
	if err != nil {
		a.println("Failed to refresh dashboard:", reason(err))
		return err
	}
	if ov.Identity.Username != "" {
		a.printf("Signed in as %s\n", ov.Identity.Username)
	}
	a.renderHistory(ov.Query, ov.Classifications)
	a.renderSystems(ov.Systems)
	return nil
}
