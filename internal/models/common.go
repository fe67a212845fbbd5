// internal/models/common.go
package models

// Platform is the account-origin platform a listing was created on.
type Platform string

const (
	PlatformFacebook Platform = "Facebook"
	PlatformGmail    Platform = "Gmail"
	PlatformVK       Platform = "VK"
)

// KnownPlatforms lists the platforms offered by the storefront UI. Facet
// values are deliberately not validated against this set; an unrecognized
// platform simply never matches anything.
func KnownPlatforms() []Platform {
	return []Platform{PlatformFacebook, PlatformGmail, PlatformVK}
}
