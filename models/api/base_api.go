package apimodels

type Response struct {
	Status  string      `json:"status"`            //hasil pemrosesan fail/success
	Message string      `json:"message,omitempty"` //pesan kesalahan
	Data    interface{} `json:"data,omitempty"`    //data respon
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count,omitempty"` //untuk daftar, total baris dengan filter (jika ada)
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: Response{
			Status: "success",
			Data:   data,
		},
		RowCount: rowCount,
	}
}

type Pagination struct {
	Limit int `json:"limit"` // Baris per halaman
	Page  int `json:"page"`  // Halaman (1,2,3..)
}

func (r Pagination) Validate() error {
	return nil
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
