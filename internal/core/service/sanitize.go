package service

import (
	"fmt"
	"html"
	"net/url"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"

	"github.com/competeconnect/competition-api/internal/core/domain"
)

// Length bounds, in runes, for generated fields.
const (
	maxIDLen          = 64
	maxNameLen        = 160
	maxOrganizerLen   = 160
	maxDescriptionLen = 2000
	maxLocationLen    = 160
	maxFieldLen       = 120
	maxDeadlineLen    = 80
	maxEligibilityLen = 600
	maxURLLen         = 2048
	maxTags           = 8
	maxTagLen         = 40
	maxKeywordLen     = 40

	// Nested entity encodings unwrap one level per pass.
	maxStripPasses = 8

	defaultImageKeyword = "competition"
	imageSeedBase       = "https://picsum.photos/seed/"
)

// Sanitizer treats generated competitions as untrusted input.
type Sanitizer struct {
	policy   *bluemonday.Policy
	validate *validator.Validate
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{
		policy:   bluemonday.StrictPolicy(),
		validate: validator.New(),
	}
}

// Batch sanitises every record, keeping order and count, and makes ids
// unique within the batch.
func (s *Sanitizer) Batch(in []domain.Competition) []domain.Competition {
	out := make([]domain.Competition, 0, len(in))
	seen := make(map[string]int, len(in))

	for i, c := range in {
		c = s.Competition(c)
		if c.ID == "" {
			c.ID = fmt.Sprintf("competition-%d", i+1)
		}
		if n, dup := seen[c.ID]; dup {
			base := c.ID
			for {
				n++
				c.ID = fmt.Sprintf("%s-%d", base, n)
				if _, taken := seen[c.ID]; !taken {
					break
				}
			}
			seen[base] = n
		}
		seen[c.ID] = 1
		out = append(out, c)
	}
	return out
}

// Competition returns a display-safe copy of c.
func (s *Sanitizer) Competition(c domain.Competition) domain.Competition {
	c.ID = s.line(c.ID, maxIDLen)
	c.Name = s.line(c.Name, maxNameLen)
	c.Organizer = s.line(c.Organizer, maxOrganizerLen)
	c.Description = s.block(c.Description, maxDescriptionLen)
	c.Location = s.line(c.Location, maxLocationLen)
	c.Field = s.line(c.Field, maxFieldLen)
	c.Deadline = s.line(c.Deadline, maxDeadlineLen)
	c.Eligibility = s.block(c.Eligibility, maxEligibilityLen)
	c.WebsiteURL = s.websiteURL(c.WebsiteURL)
	c.Tags = s.tags(c.Tags)
	c.ImageKeyword = keyword(c.ImageKeyword)
	c.ImageURL = imageURL(c.Name)
	return c
}

// block strips markup and bounds the length, keeping line breaks.
func (s *Sanitizer) block(v string, max int) string {
	v = norm.NFC.String(s.plain(v))
	return truncate(strings.TrimSpace(v), max)
}

// line is block for single-line fields: whitespace runs become one space.
func (s *Sanitizer) line(v string, max int) string {
	v = norm.NFC.String(s.plain(v))
	return truncate(strings.Join(strings.Fields(v), " "), max)
}

// plain decodes entities and strips tags until the text stops changing, so
// entity-encoded markup cannot come back to life on the final decode.
func (s *Sanitizer) plain(v string) string {
	for i := 0; i < maxStripPasses; i++ {
		next := html.UnescapeString(s.policy.Sanitize(html.UnescapeString(v)))
		if next == v {
			return next
		}
		v = next
	}
	return strings.NewReplacer("<", "", ">", "").Replace(v)
}

func (s *Sanitizer) websiteURL(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || len(v) > maxURLLen {
		return ""
	}
	if err := s.validate.Var(v, "http_url"); err != nil {
		return ""
	}
	return v
}

func (s *Sanitizer) tags(in []string) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		t = s.line(t, maxTagLen)
		if t == "" {
			continue
		}
		out = append(out, t)
		if len(out) == maxTags {
			break
		}
	}
	return out
}

func keyword(v string) string {
	// Slugs are ASCII, so a byte cut keeps them valid.
	k := slug.Make(v)
	if len(k) > maxKeywordLen {
		k = k[:maxKeywordLen]
	}
	k = strings.Trim(k, "-")
	if k == "" {
		return defaultImageKeyword
	}
	return k
}

// imageURL seeds the placeholder image with the name minus whitespace.
func imageURL(name string) string {
	seed := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)
	if seed == "" {
		seed = defaultImageKeyword
	}
	return imageSeedBase + url.PathEscape(seed) + "/400/300"
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return strings.TrimSpace(string(r[:max-1])) + "…"
}
