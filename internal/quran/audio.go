package quran

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/quranapi/quran-api/pkg/apperr"
)

var (
	qariPattern    = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
	ErrInvalidQari = apperr.Validation("Qari tidak valid")
)

// AudioSource builds recitation URLs against two CDN layouts: one file per
// verse, and one file per surah under a reciter directory. Nothing is
// fetched; the URLs are pure functions of the inputs.
type AudioSource struct {
	AyatBaseURL string
	FullBaseURL string
	DefaultQari string
}

// AyatURL returns {AyatBaseURL}/{sss}{aaa}.mp3, both numbers padded to three
// digits.
func (a AudioSource) AyatURL(surah, ayat int) string {
	return fmt.Sprintf("%s/%03d%03d.mp3", a.AyatBaseURL, surah, ayat)
}

// FullURL returns {FullBaseURL}/{qari}/{sss}.mp3. An empty qari selects
// DefaultQari.
func (a AudioSource) FullURL(surah int, qari string) (string, error) {
	if qari == "" {
		qari = a.DefaultQari
	}
	if !qariPattern.MatchString(qari) || strings.Trim(qari, ".") == "" {
		return "", ErrInvalidQari
	}
	return fmt.Sprintf("%s/%s/%03d.mp3", a.FullBaseURL, qari, surah), nil
}
