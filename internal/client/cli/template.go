package cli

const usageTemplate = `Thaedal Admin Console

Usage:
  thaedal-admin [OPTIONS] COMMAND

Options:
  --version      Show version information
  --server URL   Server URL (default: http://localhost:8080)
  --db PATH      Path to the local session database (default: thaedal-admin.db)

Commands:
  login                    Sign in to the admin API
  logout                   Sign out and clear the local session
  status                   Show the current session
  dashboard                Show platform stats

  videos <sub>             Manage videos (list|get|add|edit|delete)
  categories <sub>         Manage categories (list|get|add|edit|delete)
  creators <sub>           Manage creators (list|get|add|edit|delete)
  users <sub>              Inspect users (list|get|delete|toggle-subscription)
  subscriptions <sub>      Inspect subscriptions (list|get|status|plans ...)
  payments <sub>           Inspect payments (list|get)
  pages <sub>              Legal pages (list|get|edit)
  settings <sub>           Payment settings (payment|payment-update)
  notifications <sub>      Push notifications (list|send)

List flags:
  --search TEXT            Case-insensitive substring search
  --status VALUE           Filter by status (where the resource has one)
  --category VALUE         Filter videos by category
  --plan VALUE             Filter users/subscriptions by plan

Examples:
  thaedal-admin login
  thaedal-admin videos list --search cooking --status published
  thaedal-admin users list --plan trial
  thaedal-admin videos edit vid_9f2k1
  thaedal-admin categories delete cat_a81x2 --yes
  thaedal-admin subscriptions status sub_77q1 cancelled
  thaedal-admin notifications send
`
