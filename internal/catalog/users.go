package catalog

// DashboardUser is the mock user the dashboard pages render until real
// accounts carry their own tool lists.
type DashboardUser struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	AvatarURL     string   `json:"avatarUrl,omitempty"`
	Role          string   `json:"role"`
	FavoriteTools []string `json:"favoriteTools"`
	RecentTools   []string `json:"recentTools"`
}

var CurrentUser = DashboardUser{
	ID:            "user1",
	Name:          "John Doe",
	Email:         "john.doe@example.com",
	AvatarURL:     "https://images.pexels.com/photos/771742/pexels-photo-771742.jpeg",
	Role:          "user",
	FavoriteTools: []string{"remove-bg", "qr-code", "tiny-png"},
	RecentTools:   []string{"remove-bg", "json-formatter", "lorem-ipsum", "diff-checker"},
}

var AdminUser = DashboardUser{
	ID:        "admin1",
	Name:      "Admin User",
	Email:     "admin@example.com",
	AvatarURL: "https://images.pexels.com/photos/1674752/pexels-photo-1674752.jpeg",
	Role:      "admin",
}
