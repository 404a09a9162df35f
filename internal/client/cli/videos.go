package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/thaedal/thaedal-admin/internal/client/api"
	"github.com/thaedal/thaedal-admin/internal/client/controller"
	"github.com/thaedal/thaedal-admin/internal/models"
)

func videoScreen() screen[models.Video] {
	return screen[models.Video]{
		name: "videos",
		spec: controller.Spec[models.Video]{
			ID:       func(v models.Video) string { return v.ID },
			Defaults: func() models.Video { return models.Video{Status: models.VideoStatusDraft} },
			SearchFields: func(v models.Video) []string {
				return []string{v.Title, v.Creator}
			},
			Filters: map[string]func(models.Video, string) bool{
				"status":   func(v models.Video, value string) bool { return v.Status == value },
				"category": func(v models.Video, value string) bool { return v.Category == value },
			},
		},
		filterKeys: []string{"status", "category"},
		columns:    []string{"ID", "TITLE", "CATEGORY", "CREATOR", "VIEWS", "LIKES", "STATUS"},
		row: func(v models.Video) []string {
			return []string{
				v.ID, v.Title, v.Category, v.Creator,
				formatCount(v.Views), formatCount(v.Likes), v.Status,
			}
		},
		form: func(c *Cli, draft *models.Video) error {
			var err error
			if draft.Title, err = c.promptString("Title", draft.Title); err != nil {
				return err
			}
			if draft.Thumbnail, err = c.promptString("Thumbnail URL", draft.Thumbnail); err != nil {
				return err
			}
			if draft.Category, err = c.promptString("Category", draft.Category); err != nil {
				return err
			}
			if draft.Creator, err = c.promptString("Creator", draft.Creator); err != nil {
				return err
			}
			if draft.Duration, err = c.promptString("Duration (mm:ss)", draft.Duration); err != nil {
				return err
			}
			if draft.Status, err = c.promptString("Status (published/draft)", draft.Status); err != nil {
				return err
			}
			return nil
		},
		detail: func(c *Cli, v models.Video) {
			fmt.Fprintf(c.out, "=== Video %s ===\n\n", v.ID)
			fmt.Fprintf(c.out, "Title:     %s\n", v.Title)
			fmt.Fprintf(c.out, "Thumbnail: %s\n", v.Thumbnail)
			fmt.Fprintf(c.out, "Category:  %s\n", v.Category)
			fmt.Fprintf(c.out, "Creator:   %s\n", v.Creator)
			fmt.Fprintf(c.out, "Views:     %s\n", strconv.FormatInt(v.Views, 10))
			fmt.Fprintf(c.out, "Likes:     %s\n", strconv.FormatInt(v.Likes, 10))
			fmt.Fprintf(c.out, "Duration:  %s\n", v.Duration)
			fmt.Fprintf(c.out, "Status:    %s\n", v.Status)
			fmt.Fprintf(c.out, "Created:   %s\n", formatDate(v.CreatedAt))
		},
	}
}

func (c *Cli) runVideos(ctx context.Context, args []string) error {
	res := api.NewResource[models.Video](c.client, "videos")
	return runScreen(ctx, c, videoScreen(), res, args)
}
