package filesapimodels

type FileView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	OwnerID     string `json:"owner_id"`
	ContentType string `json:"content_type"`
}
