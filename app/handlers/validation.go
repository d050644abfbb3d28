package handlers

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[0-9()+\-. ]{7,20}$`)

	scriptTagPattern = regexp.MustCompile(`(?is)<script[^>]*>.*?</script[^>]*>`)

	// Three pattern families the feedback endpoints reject outright:
	// promotional keywords, urgency keywords, and call-to-action keywords.
	spamPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(viagra|casino|lottery|jackpot|bitcoin|crypto|forex|payday loan|seo service|backlinks?)\b`),
		regexp.MustCompile(`(?i)\b(act now|urgent|limited time|expires (today|soon)|final notice|last chance|don't miss out)\b`),
		regexp.MustCompile(`(?i)\b(click here|buy now|order now|call now|sign up now|visit (my|our) (site|website))\b`),
	}
)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func validPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// sanitizeText trims whitespace and strips script tags before length and
// spam checks run, so padding tricks don't dodge the limits.
func sanitizeText(s string) string {
	s = scriptTagPattern.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func isSpam(text string) bool {
	for _, pattern := range spamPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}
