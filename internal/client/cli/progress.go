package cli

import (
	"context"
)

// cmdProgress lists the user's updates, or posts one when a title is given.
// The description is read as multi-line text.
func (a *App) cmdProgress(ctx context.Context, args []string) error {
	title := textArg(args, 0)
	if title == "" {
		updates, err := a.api.GetProgress(ctx)
		if err != nil {
			return err
		}
		renderProgress(a.out, updates)
		return nil
	}

	description, err := ReadText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	p, err := a.api.PostProgress(ctx, title, description)
	if err != nil {
		return err
	}
	a.printf("Progress update #%d posted\n", p.ID)
	return nil
}
