package models

import (
	"fmt"
	"strings"
)

// MinSubjectLength is the minimum trimmed subject length accepted for
// submission.
const MinSubjectLength = 4

// Preferences is the user-entered description of the desired image, captured
// once per generation request.
type Preferences struct {
	ImageType   string `json:"imageType"`
	Subject     string `json:"subject"`
	Style       string `json:"style"`
	Mood        string `json:"mood"`
	Lighting    string `json:"lighting"`
	Colors      string `json:"colors"`
	AspectRatio string `json:"aspectRatio"`
}

// Validate is the submission gate. The enumerated fields are constrained by
// the option catalog the frontend renders from, so the subject is the only
// field checked here.
func (p Preferences) Validate() error {
	if len(strings.TrimSpace(p.Subject)) < MinSubjectLength {
		return fmt.Errorf("subject must be at least %d characters", MinSubjectLength)
	}
	return nil
}
