package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/thaedal/thaedal-admin/internal/client/api"
	"github.com/thaedal/thaedal-admin/internal/client/controller"
	"github.com/thaedal/thaedal-admin/internal/models"
)

func creatorScreen() screen[models.Creator] {
	return screen[models.Creator]{
		name: "creators",
		spec: controller.Spec[models.Creator]{
			ID:       func(cr models.Creator) string { return cr.ID },
			Defaults: func() models.Creator { return models.Creator{} },
			SearchFields: func(cr models.Creator) []string {
				return []string{cr.Name, cr.Bio}
			},
			Filters: map[string]func(models.Creator, string) bool{
				"verified": func(cr models.Creator, value string) bool {
					return strconv.FormatBool(cr.IsVerified) == value
				},
			},
		},
		filterKeys: []string{"verified"},
		columns:    []string{"ID", "NAME", "VIDEOS", "VIEWS", "VERIFIED"},
		row: func(cr models.Creator) []string {
			return []string{
				cr.ID, cr.Name, strconv.Itoa(cr.VideosCount),
				formatCount(cr.TotalViews), yesNo(cr.IsVerified),
			}
		},
		form: func(c *Cli, draft *models.Creator) error {
			var err error
			if draft.Name, err = c.promptString("Name", draft.Name); err != nil {
				return err
			}
			if draft.Avatar, err = c.promptString("Avatar URL", draft.Avatar); err != nil {
				return err
			}
			if draft.Bio, err = c.promptString("Bio", draft.Bio); err != nil {
				return err
			}
			if draft.IsVerified, err = c.promptBool("Verified", draft.IsVerified); err != nil {
				return err
			}
			return nil
		},
		detail: func(c *Cli, cr models.Creator) {
			fmt.Fprintf(c.out, "=== Creator %s ===\n\n", cr.ID)
			fmt.Fprintf(c.out, "Name:     %s\n", cr.Name)
			fmt.Fprintf(c.out, "Avatar:   %s\n", cr.Avatar)
			fmt.Fprintf(c.out, "Bio:      %s\n", cr.Bio)
			fmt.Fprintf(c.out, "Videos:   %d\n", cr.VideosCount)
			fmt.Fprintf(c.out, "Views:    %s\n", strconv.FormatInt(cr.TotalViews, 10))
			fmt.Fprintf(c.out, "Verified: %s\n", yesNo(cr.IsVerified))
		},
	}
}

func (c *Cli) runCreators(ctx context.Context, args []string) error {
	res := api.NewResource[models.Creator](c.client, "creators")
	return runScreen(ctx, c, creatorScreen(), res, args)
}
