package fixture

import "alumni-portal/internal/notify"

// Notifications seeds the admin notification center.
func Notifications() []notify.Notification {
	return []notify.Notification{
		{ID: 1, Text: "System backup completed successfully", Time: "2 min ago", Kind: notify.KindSuccess},
		{ID: 2, Text: "5 new alumni registered this month", Time: "1 hour ago", Kind: notify.KindInfo},
		{ID: 3, Text: "Database optimization completed", Time: "3 hours ago", Kind: notify.KindSuccess},
		{ID: 4, Text: "Email newsletter sent to 450 alumni", Time: "1 day ago", Kind: notify.KindInfo},
	}
}
