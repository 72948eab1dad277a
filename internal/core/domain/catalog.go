package domain

// IndianStates feeds the state selector. It includes union territories.
var IndianStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chandigarh", "Chhattisgarh",
	"Dadra and Nagar Haveli and Daman and Diu", "Delhi", "Goa", "Gujarat", "Haryana",
	"Himachal Pradesh", "Jammu and Kashmir", "Jharkhand", "Karnataka", "Kerala", "Ladakh",
	"Lakshadweep", "Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya", "Mizoram",
	"Nagaland", "Odisha", "Puducherry", "Punjab", "Rajasthan", "Sikkim", "Tamil Nadu",
	"Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand", "West Bengal",
}

// Category is a card on the dashboard before the first search.
type Category struct {
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

var PopularCategories = []Category{
	{Title: "Science Olympiads", Icon: "🔬", Description: "Physics, Chemistry, Biology and Math olympiads."},
	{Title: "Hackathons", Icon: "💻", Description: "Coding challenges, app building and innovation sprints."},
	{Title: "Art & Design", Icon: "🎨", Description: "Painting, digital art and design competitions."},
	{Title: "Business & Debate", Icon: "📢", Description: "Case studies, Model UN, and Startup pitches."},
}

// MenuItem is an entry of the side navigation panel.
type MenuItem struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	// GuestAllowed items can be followed without a session; the rest open
	// the sign-in modal for guests.
	GuestAllowed bool `json:"guestAllowed"`
}

var Menu = []MenuItem{
	{Key: "dashboard", Label: "Dashboard"},
	{Key: "my-exams", Label: "My Exams"},
	{Key: "competition-stats", Label: "Competition Stats"},
	{Key: "explore-exams", Label: "Explore Exams", GuestAllowed: true},
	{Key: "profile", Label: "Profile"},
	{Key: "settings", Label: "Settings"},
	{Key: "help", Label: "Help & Support", GuestAllowed: true},
}

func FindMenuItem(key string) (MenuItem, bool) {
	for _, item := range Menu {
		if item.Key == key {
			return item, true
		}
	}
	return MenuItem{}, false
}
