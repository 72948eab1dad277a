package domain

import "strings"

// FieldOfInterest is the closed set of subject areas a search can target.
type FieldOfInterest string

const (
	FieldSTEM     FieldOfInterest = "STEM (Science, Tech, Engineering, Math)"
	FieldCoding   FieldOfInterest = "Computer Science & Coding"
	FieldRobotics FieldOfInterest = "Robotics"
	FieldArts     FieldOfInterest = "Arts & Design"
	FieldBusiness FieldOfInterest = "Business & Entrepreneurship"
	FieldDebate   FieldOfInterest = "Debate & Literature"
	FieldSports   FieldOfInterest = "Sports & Athletics"
	FieldGeneral  FieldOfInterest = "General Academics"
)

// Fields returns the enumeration in display order.
func Fields() []FieldOfInterest {
	return []FieldOfInterest{
		FieldSTEM, FieldCoding, FieldRobotics, FieldArts,
		FieldBusiness, FieldDebate, FieldSports, FieldGeneral,
	}
}

var fieldAliases = map[string]FieldOfInterest{
	"stem":     FieldSTEM,
	"coding":   FieldCoding,
	"robotics": FieldRobotics,
	"arts":     FieldArts,
	"business": FieldBusiness,
	"debate":   FieldDebate,
	"sports":   FieldSports,
	"general":  FieldGeneral,
}

// ParseField accepts either the full label or a short alias, case-insensitively.
func ParseField(s string) (FieldOfInterest, bool) {
	s = strings.TrimSpace(s)
	for _, f := range Fields() {
		if strings.EqualFold(s, string(f)) {
			return f, true
		}
	}
	f, ok := fieldAliases[strings.ToLower(s)]
	return f, ok
}

// EducationLevel is the closed set of audience levels.
type EducationLevel string

const (
	LevelHighSchool    EducationLevel = "High School"
	LevelUndergraduate EducationLevel = "Undergraduate/University"
	LevelGraduate      EducationLevel = "Graduate/PhD"
	LevelOpen          EducationLevel = "Open to All"
)

func Levels() []EducationLevel {
	return []EducationLevel{LevelHighSchool, LevelUndergraduate, LevelGraduate, LevelOpen}
}

var levelAliases = map[string]EducationLevel{
	"high_school":   LevelHighSchool,
	"undergraduate": LevelUndergraduate,
	"university":    LevelUndergraduate,
	"graduate":      LevelGraduate,
	"phd":           LevelGraduate,
	"open":          LevelOpen,
}

func ParseLevel(s string) (EducationLevel, bool) {
	s = strings.TrimSpace(s)
	for _, l := range Levels() {
		if strings.EqualFold(s, string(l)) {
			return l, true
		}
	}
	l, ok := levelAliases[strings.ToLower(s)]
	return l, ok
}

// FilterName identifies one field of SearchFilters.
type FilterName string

const (
	FilterCountry FilterName = "country"
	FilterState   FilterName = "state"
	FilterField   FilterName = "field"
	FilterLevel   FilterName = "level"
)

const DefaultCountry = "India"

// SearchFilters are the criteria a search is issued with. Every field has a
// default, so a filter set is never partially invalid.
type SearchFilters struct {
	Country string          `json:"country" bson:"country"`
	State   string          `json:"state" bson:"state"`
	Field   FieldOfInterest `json:"field" bson:"field"`
	Level   EducationLevel  `json:"level" bson:"level"`
}

func DefaultFilters() SearchFilters {
	return SearchFilters{
		Country: DefaultCountry,
		Field:   FieldSTEM,
		Level:   LevelHighSchool,
	}
}

// With returns a copy of f with exactly one field replaced.
func (f SearchFilters) With(name FilterName, value string) (SearchFilters, error) {
	switch name {
	case FilterCountry:
		f.Country = strings.TrimSpace(value)
	case FilterState:
		f.State = strings.TrimSpace(value)
	case FilterField:
		field, ok := ParseField(value)
		if !ok {
			return f, ErrInvalidFilter
		}
		f.Field = field
	case FilterLevel:
		level, ok := ParseLevel(value)
		if !ok {
			return f, ErrInvalidFilter
		}
		f.Level = level
	default:
		return f, ErrInvalidFilter
	}
	return f, nil
}
