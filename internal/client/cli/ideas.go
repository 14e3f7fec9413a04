package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/founderhub/internal/client/api"
)

func (a *App) cmdIdeas(ctx context.Context, _ []string) error {
	ideas, err := a.api.GetIdeas(ctx)
	if err != nil {
		return err
	}
	renderIdeas(a.out, ideas)
	return nil
}

// cmdIdea walks the user through the idea form. Only the title is required.
func (a *App) cmdIdea(ctx context.Context, _ []string) error {
	var idea api.NewIdea
	var err error

	if idea.Title, err = readField(a.reader, "Title", a.out); err != nil {
		return err
	}
	if idea.Title == "" {
		return fmt.Errorf("title must not be empty")
	}
	if idea.Description, err = ReadText(a.reader, "Description", a.out); err != nil {
		return err
	}
	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"Problem", &idea.Problem},
		{"Solution", &idea.Solution},
		{"What help do you need?", &idea.NeedHelp},
		{"Stage", &idea.Stage},
		{"Industry", &idea.Industry},
	} {
		if *f.dst, err = readField(a.reader, f.prompt, a.out); err != nil {
			return err
		}
	}

	created, err := a.api.CreateIdea(ctx, idea)
	if err != nil {
		return err
	}
	a.printf("Idea #%d created\n", created.ID)
	return nil
}

func (a *App) cmdUpvote(ctx context.Context, args []string) error {
	id, err := idArg(args, 0)
	if err != nil {
		return err
	}
	idea, err := a.api.UpvoteIdea(ctx, id)
	if err != nil {
		return err
	}
	a.printf("Idea #%d now has %d upvotes\n", idea.ID, idea.Upvotes)
	return nil
}

func (a *App) cmdComment(ctx context.Context, args []string) error {
	id, err := idArg(args, 0)
	if err != nil {
		return err
	}
	text := textArg(args, 1)
	if text == "" {
		return errUsage
	}
	if _, err := a.api.CommentOnIdea(ctx, id, text); err != nil {
		return err
	}
	a.println("Comment added")
	return nil
}

func (a *App) cmdComments(ctx context.Context, args []string) error {
	id, err := idArg(args, 0)
	if err != nil {
		return err
	}
	comments, err := a.api.GetIdeaComments(ctx, id)
	if err != nil {
		return err
	}
	renderComments(a.out, comments)
	return nil
}

func (a *App) cmdCollaborate(ctx context.Context, args []string) error {
	id, err := idArg(args, 0)
	if err != nil {
		return err
	}
	if err := a.api.CollaborateOnIdea(ctx, id, textArg(args, 1)); err != nil {
		return err
	}
	a.println("Collaboration request sent")
	return nil
}
