package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/taskgate/taskgate/internal/access"
	"github.com/taskgate/taskgate/internal/storage"
	"github.com/taskgate/taskgate/internal/web/routepath"
)

func adminTierAction(userID int64) string {
	return strings.Replace(routepath.AdminUserTier, "{id}", fmt.Sprint(userID), 1)
}

var assignableTiers = []access.Tier{
	access.TierUnauthenticated,
	access.TierFreeUser,
	access.TierPremiumUser,
	access.TierAdmin,
}

// AdminUsersFragment renders the user roster with per-user tier controls.
func AdminUsersFragment(users []storage.UserSummary, notice string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Admin</h1>`); err != nil {
			return err
		}
		if notice != "" {
			if _, err := fmt.Fprintf(w,
				`<p class="notice" role="status">%s</p>`, templ.EscapeString(notice)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w,
			`<table class="users"><thead><tr><th>ID</th><th>Username</th><th>Tier</th><th></th></tr></thead><tbody>`,
		); err != nil {
			return err
		}
		for _, user := range users {
			if _, err := fmt.Fprintf(w,
				`<tr><td>%d</td><td>%s</td><td>%s</td><td><form class="inline" method="post" action="%s"><select name="tier">`,
				user.ID,
				templ.EscapeString(user.Username),
				templ.EscapeString(user.Tier.String()),
				adminTierAction(user.ID),
			); err != nil {
				return err
			}
			for _, tier := range assignableTiers {
				selected := ""
				if tier == user.Tier {
					selected = " selected"
				}
				if _, err := fmt.Fprintf(w,
					`<option value="%d"%s>%s</option>`, int(tier), selected, tier.String()); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w,
				`</select><button type="submit">Update</button></form></td></tr>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}
