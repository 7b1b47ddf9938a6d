package pemohonapimodels

import (
	apimodels "ppid-backend/models/api"
)

type PemohonView struct {
	ID       string `json:"id"`
	Nama     string `json:"nama"`
	Email    string `json:"email"`
	Nik      string `json:"nik"`
	Telepon  string `json:"telepon"`
	Alamat   string `json:"alamat"`
	Approved bool   `json:"approved"`
	Verified bool   `json:"verified"`
}

type PemohonFilter struct {
	apimodels.Pagination
	Search       string `json:"search"`
	ApprovedOnly bool   `json:"approved_only"`
	PendingOnly  bool   `json:"pending_only"`
}
