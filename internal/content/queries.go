package content

// GROQ projections for each document type the site renders.

const queryMusic = `*[_type == "music"] | order(_createdAt desc) {
  _id, title, artist, coverImage, audioUrl,
  streamingLinks[] { platform, url }
}`

const queryFood = `*[_type == "food"] | order(date desc) {
  _id, title, description,
  media[] { type, image, videoUrl, caption },
  eventType, date
}`

const queryFoodByEventType = `*[_type == "food" && eventType == $eventType] | order(date desc) {
  _id, title, description,
  media[] { type, image, videoUrl, caption },
  eventType, date
}`

const queryHost = `*[_type == "host"] | order(eventDate desc) {
  _id, title, description, videoUrl, eventDate, testimonial, isShowreel
}`

const queryShowreel = `*[_type == "host" && isShowreel == true][0] {
  _id, title, description, videoUrl, eventDate, testimonial, isShowreel
}`

const querySocial = `*[_type == "social"] | order(_createdAt desc) {
  _id, platform, handle, url, followers, achievements,
  recentPosts[] { image, caption, url }
}`

const querySettings = `*[_type == "global"][0] {
  _id, siteName, bio,
  socialLinks[] { platform, url }
}`

const queryBrands = `*[_type == "brand"] | order(order asc, _createdAt asc) {
  _id, name, logo, url, order
}`
