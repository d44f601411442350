package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/formsclient/internal/client/models"
	"github.com/dmitrijs2005/formsclient/internal/client/router"
	"github.com/dustin/go-humanize"
)

// Templates lists the templates the backend shows to the current user.
func (a *App) Templates(ctx context.Context) error {
	id, err := a.identity(ctx)
	if err != nil {
		return err
	}

	resp, err := a.api.GetTemplates(ctx, id, models.Viewer{UserID: id.UserID, Role: id.Role})
	if err != nil {
		return err
	}
	var list []models.Template
	if err := resp.Decode(&list); err != nil {
		return err
	}

	_ = a.navigate(ctx, router.PathTemplates)

	if len(list) == 0 {
		fmt.Fprintln(a.out, "No templates")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tTOPIC\tVISIBILITY")
	for _, t := range list {
		vis := "public"
		if !t.IsPublic {
			vis = "private"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.ID, t.Title, t.Topic, vis)
	}
	return tw.Flush()
}

// Template shows one template with its questions.
func (a *App) Template(ctx context.Context, templateID string) error {
	id, err := a.identity(ctx)
	if err != nil {
		return err
	}

	resp, err := a.api.GetTemplateByID(ctx, id, models.ID(templateID))
	if err != nil {
		return err
	}
	var t models.Template
	if err := resp.Decode(&t); err != nil {
		return err
	}

	_ = a.navigate(ctx, router.TemplatePath(templateID))

	fmt.Fprintf(a.out, "%s\n", t.Title)
	if t.Description != "" {
		fmt.Fprintf(a.out, "%s\n", t.Description)
	}
	if len(t.Tags) > 0 {
		names := make([]string, len(t.Tags))
		for i, tag := range t.Tags {
			names[i] = tag.Name
		}
		fmt.Fprintf(a.out, "Tags: %s\n", strings.Join(names, ", "))
	}
	fmt.Fprintf(a.out, "Likes: %d\n", len(t.Likes))
	if t.CreatedAt != nil {
		fmt.Fprintf(a.out, "Created %s\n", humanize.RelTime(*t.CreatedAt, a.now(), "ago", "from now"))
	}
	for i, q := range t.Questions {
		fmt.Fprintf(a.out, "%d. %s (%s)\n", i+1, q.Title, q.Type)
	}
	return nil
}

func (a *App) Tags(ctx context.Context) error {
	id, err := a.identity(ctx)
	if err != nil {
		return err
	}

	resp, err := a.api.GetTags(ctx, id)
	if err != nil {
		return err
	}
	var tags []models.Tag
	if err := resp.Decode(&tags); err != nil {
		return err
	}

	for _, t := range tags {
		fmt.Fprintf(a.out, "%s\t%s\n", t.ID, t.Name)
	}
	return nil
}

// Forms prints how many forms were filled against a template and their ids.
func (a *App) Forms(ctx context.Context, templateID string) error {
	id, err := a.identity(ctx)
	if err != nil {
		return err
	}

	resp, err := a.api.GetForms(ctx, id, models.ID(templateID))
	if err != nil {
		return err
	}
	var forms []models.Form
	if err := resp.Decode(&forms); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s submitted\n", humanize.Comma(int64(len(forms))))
	for _, f := range forms {
		fmt.Fprintf(a.out, "%s\tby %s\t%d answers\n", f.ID, f.AuthorID, len(f.Answers))
	}
	return nil
}

func (a *App) Comments(ctx context.Context, templateID string) error {
	id, err := a.identity(ctx)
	if err != nil {
		return err
	}

	resp, err := a.api.GetComments(ctx, id, models.ID(templateID))
	if err != nil {
		return err
	}
	var comments []models.Comment
	if err := resp.Decode(&comments); err != nil {
		return err
	}

	if len(comments) == 0 {
		fmt.Fprintln(a.out, "No comments")
		return nil
	}
	for _, c := range comments {
		fmt.Fprintf(a.out, "[%s] %s\n", c.AuthorID, c.Text)
	}
	return nil
}

func (a *App) Comment(ctx context.Context, templateID, text string) error {
	id, err := a.identity(ctx)
	if err != nil {
		return err
	}

	if _, err := a.api.AddComment(ctx, id, models.ID(templateID), id.UserID, models.Comment{Text: text}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Comment added")
	return nil
}

func (a *App) Like(ctx context.Context, templateID string) error {
	id, err := a.identity(ctx)
	if err != nil {
		return err
	}

	if _, err := a.api.AddLike(ctx, id, models.ID(templateID), id.UserID); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Liked")
	return nil
}
