package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/thaedal/thaedal-admin/internal/client/api"
	"github.com/thaedal/thaedal-admin/internal/client/controller"
	"github.com/thaedal/thaedal-admin/internal/models"
)

func categoryScreen() screen[models.Category] {
	return screen[models.Category]{
		name: "categories",
		spec: controller.Spec[models.Category]{
			ID:       func(cat models.Category) string { return cat.ID },
			Defaults: func() models.Category { return models.Category{IsActive: true} },
			SearchFields: func(cat models.Category) []string {
				return []string{cat.Name, cat.NameTamil, cat.Slug}
			},
			Filters: map[string]func(models.Category, string) bool{
				"active": func(cat models.Category, value string) bool {
					return strconv.FormatBool(cat.IsActive) == value
				},
			},
		},
		filterKeys: []string{"active"},
		columns:    []string{"ID", "NAME", "TAMIL", "SLUG", "VIDEOS", "ACTIVE"},
		row: func(cat models.Category) []string {
			return []string{
				cat.ID, cat.Name, cat.NameTamil, cat.Slug,
				strconv.Itoa(cat.VideosCount), yesNo(cat.IsActive),
			}
		},
		form: func(c *Cli, draft *models.Category) error {
			var err error
			if draft.Name, err = c.promptString("Name", draft.Name); err != nil {
				return err
			}
			if draft.NameTamil, err = c.promptString("Name (Tamil)", draft.NameTamil); err != nil {
				return err
			}
			if draft.Slug, err = c.promptString("Slug", draft.Slug); err != nil {
				return err
			}
			if draft.Icon, err = c.promptString("Icon", draft.Icon); err != nil {
				return err
			}
			if draft.Color, err = c.promptString("Color (#rrggbb)", draft.Color); err != nil {
				return err
			}
			if draft.IsActive, err = c.promptBool("Active", draft.IsActive); err != nil {
				return err
			}
			return nil
		},
		detail: func(c *Cli, cat models.Category) {
			fmt.Fprintf(c.out, "=== Category %s ===\n\n", cat.ID)
			fmt.Fprintf(c.out, "Name:   %s\n", cat.Name)
			fmt.Fprintf(c.out, "Tamil:  %s\n", cat.NameTamil)
			fmt.Fprintf(c.out, "Slug:   %s\n", cat.Slug)
			fmt.Fprintf(c.out, "Icon:   %s\n", cat.Icon)
			fmt.Fprintf(c.out, "Color:  %s\n", cat.Color)
			fmt.Fprintf(c.out, "Videos: %d\n", cat.VideosCount)
			fmt.Fprintf(c.out, "Active: %s\n", yesNo(cat.IsActive))
		},
	}
}

func (c *Cli) runCategories(ctx context.Context, args []string) error {
	res := api.NewResource[models.Category](c.client, "categories")
	return runScreen(ctx, c, categoryScreen(), res, args)
}
