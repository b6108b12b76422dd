package content

// Image is a Sanity image field; Asset.Ref is the CDN asset reference
// consumed by Client.ImageURL.
type Image struct {
	Asset struct {
		Ref string `json:"_ref"`
	} `json:"asset"`
	Alt string `json:"alt,omitempty"`
}

type StreamingLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type MusicTrack struct {
	ID             string          `json:"_id"`
	Title          string          `json:"title"`
	Artist         string          `json:"artist"`
	CoverImage     *Image          `json:"coverImage,omitempty"`
	AudioURL       string          `json:"audioUrl,omitempty"`
	StreamingLinks []StreamingLink `json:"streamingLinks,omitempty"`
}

// MediaItem is one entry in a catering portfolio gallery: either an image or
// an external video link.
type MediaItem struct {
	Type     string `json:"type,omitempty"`
	Image    *Image `json:"image,omitempty"`
	VideoURL string `json:"videoUrl,omitempty"`
	Caption  string `json:"caption,omitempty"`
}

type FoodItem struct {
	ID          string      `json:"_id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Media       []MediaItem `json:"media,omitempty"`
	EventType   string      `json:"eventType,omitempty"`
	Date        string      `json:"date,omitempty"`
}

type HostEvent struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	VideoURL    string `json:"videoUrl,omitempty"`
	EmbedURL    string `json:"embedUrl,omitempty"` // derived, not stored in the CMS
	EventDate   string `json:"eventDate,omitempty"`
	Testimonial string `json:"testimonial,omitempty"`
	IsShowreel  bool   `json:"isShowreel,omitempty"`
}

type SocialPost struct {
	Image   *Image `json:"image,omitempty"`
	Caption string `json:"caption,omitempty"`
	URL     string `json:"url,omitempty"`
}

type SocialProfile struct {
	ID           string       `json:"_id"`
	Platform     string       `json:"platform"`
	Handle       string       `json:"handle,omitempty"`
	URL          string       `json:"url,omitempty"`
	Followers    int          `json:"followers,omitempty"`
	Achievements []string     `json:"achievements,omitempty"`
	RecentPosts  []SocialPost `json:"recentPosts,omitempty"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type SiteSettings struct {
	ID          string       `json:"_id"`
	SiteName    string       `json:"siteName,omitempty"`
	Bio         string       `json:"bio,omitempty"`
	SocialLinks []SocialLink `json:"socialLinks,omitempty"`
}

type Brand struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Logo  *Image `json:"logo,omitempty"`
	URL   string `json:"url,omitempty"`
	Order int    `json:"order,omitempty"`
}
