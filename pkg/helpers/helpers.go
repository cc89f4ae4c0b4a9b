package helpers

import "net/url"

func IsValidHttpUrl(rawUrl string) bool {
	parsedUrl, err := url.Parse(rawUrl)
	if err != nil || parsedUrl == nil {
		return false
	}
	if parsedUrl.Scheme != "https" && parsedUrl.Scheme != "http" {
		return false
	}
	return parsedUrl.Host != ""
}
