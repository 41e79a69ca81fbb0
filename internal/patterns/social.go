package patterns

import "regexp"

// Platform names social profile URLs are reported under.
const (
	PlatformLinkedIn  = "linkedin"
	PlatformFacebook  = "facebook"
	PlatformInstagram = "instagram"
	PlatformTwitter   = "twitter"
)

var socialREs = map[string]*regexp.Regexp{
	PlatformLinkedIn:  regexp.MustCompile(`https?://(?:www\.)?linkedin\.com/(?:company|in)/[A-Za-z0-9_%\-\.]+/?`),
	PlatformFacebook:  regexp.MustCompile(`https?://(?:www\.)?facebook\.com/[A-Za-z0-9_%\-\.]+/?`),
	PlatformInstagram: regexp.MustCompile(`https?://(?:www\.)?instagram\.com/[A-Za-z0-9_%\-\.]+/?`),
	PlatformTwitter:   regexp.MustCompile(`https?://(?:www\.)?(?:twitter|x)\.com/[A-Za-z0-9_]+/?`),
}

// FindSocialLinks scans markup for profile URLs and returns the first match
// per platform. Platforms with no match are absent from the result.
func FindSocialLinks(html string) map[string]string {
	var out map[string]string
	for platform, re := range socialREs {
		m := re.FindString(html)
		if m == "" {
			continue
		}
		if out == nil {
			out = make(map[string]string, len(socialREs))
		}
		out[platform] = m
	}
	return out
}
