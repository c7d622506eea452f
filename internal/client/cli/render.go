package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/llmpid-console/internal/client/models"
)

const maxTextWidth = 60

func (a *App) renderHistory(q models.ListQuery, list []models.Classification) {
	a.outMu.Lock()
	defer a.outMu.Unlock()

	fmt.Fprintf(a.out, "Classifications (page %d, %d per page, sorted by %s)\n", q.Page, q.Limit, q.Sort)
	if len(list) == 0 {
		fmt.Fprintln(a.out, "  no classifications on this page")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tSOURCE\tRESULT\tTEXT")
	for _, c := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			c.ID, c.CreatedAt.Local().Format(time.DateTime), c.Source, c.Result, truncate(c.Text, maxTextWidth))
	}
	_ = tw.Flush()
}

func (a *App) renderSystems(list []models.ExternalSystem) {
	a.outMu.Lock()
	defer a.outMu.Unlock()

	fmt.Fprintf(a.out, "External systems (%d)\n", len(list))
	for _, s := range list {
		fmt.Fprintf(a.out, "  %s\n", s.Name)
	}
}

// truncate shortens s to n runes on one line.
func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
