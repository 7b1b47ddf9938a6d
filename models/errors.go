package models

import "github.com/pkg/errors"

// Jenis kegagalan domain. Handler membungkus dengan konteks via
// errors.Wrap, controller mencocokkan dengan errors.Is.
var (
	ErrNotFound               = errors.New("data tidak ditemukan")
	ErrInvalidRange           = errors.New("rentang tanggal tidak valid")
	ErrInvalidTransition      = errors.New("perubahan status tidak diizinkan")
	ErrInvalidAssignee        = errors.New("petugas tidak dapat ditunjuk untuk tugas ini")
	ErrConcurrentModification = errors.New("data diubah oleh proses lain, silakan ulangi")
)
