package notificationapimodels

type UnreadCountView struct {
	Permohonan int `json:"permohonan"`
	Keberatan  int `json:"keberatan"`
	Total      int `json:"total"`
}
