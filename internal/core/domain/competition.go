package domain

// Competition is a single listing produced by the generation service. Records
// are value copies; a batch is replaced wholesale by the next search.
type Competition struct {
	ID           string   `json:"id" bson:"id"`
	Name         string   `json:"name" bson:"name"`
	Organizer    string   `json:"organizer" bson:"organizer"`
	Description  string   `json:"description" bson:"description"`
	Location     string   `json:"location" bson:"location"`
	Field        string   `json:"field" bson:"field"`
	Deadline     string   `json:"deadline" bson:"deadline"`
	Eligibility  string   `json:"eligibility" bson:"eligibility"`
	WebsiteURL   string   `json:"websiteUrl" bson:"website_url"`
	Tags         []string `json:"tags" bson:"tags"`
	ImageKeyword string   `json:"imageKeyword" bson:"image_keyword"`

	// ImageURL is derived for display and never requested from the generator.
	ImageURL string `json:"imageUrl,omitempty" bson:"-"`
}

// CompetitionFields lists the mandatory properties every generated record
// must carry, in schema order.
var CompetitionFields = []string{
	"id", "name", "organizer", "description", "location", "field",
	"deadline", "eligibility", "websiteUrl", "tags", "imageKeyword",
}
