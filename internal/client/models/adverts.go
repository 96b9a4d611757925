package models

// Advert is a promotional file the user can download, share, and submit
// view counts for.
type Advert struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	File         string `json:"file"`
	RateCategory int    `json:"rate_category"`
	UploadDate   string `json:"upload_date"`
	CanSubmit    bool   `json:"can_submit"`
	HasSubmitted bool   `json:"has_submitted"`
}

// AdvertsResponse pairs today's adverts with the user's active package.
type AdvertsResponse struct {
	Adverts     []Advert  `json:"adverts"`
	UserPackage *Purchase `json:"user_package"`
}

// SubmitAdvertRequest claims views for a shared advert. It travels as a
// multipart form: advert_id, views_count, and the screenshot file as proof.
type SubmitAdvertRequest struct {
	AdvertID       int64
	ViewsCount     int
	ScreenshotName string
	Screenshot     []byte
}

// Submission is a recorded advert-views claim.
type Submission struct {
	ID         int64  `json:"id"`
	AdvertID   int64  `json:"advert_id"`
	ViewsCount int    `json:"views_count"`
	Earnings   string `json:"earnings"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

// SubmissionsResponse is the submission history with cumulative earnings.
type SubmissionsResponse struct {
	Submissions   []Submission `json:"submissions"`
	TotalEarnings float64      `json:"total_earnings"`
}
