package authapimodels

import "github.com/pkg/errors"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Email == "" {
		return errors.New("email tidak diisi")
	}
	if r.Password == "" {
		return errors.New("password tidak diisi")
	}
	return nil
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Role         string `json:"role"`
	Name         string `json:"name"`
}

type RegisterRequest struct {
	Nama     string `json:"nama"`
	Email    string `json:"email"`
	Nik      string `json:"nik"`
	Telepon  string `json:"telepon"`
	Alamat   string `json:"alamat"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	if r.Nama == "" {
		return errors.New("nama tidak diisi")
	}
	if r.Email == "" {
		return errors.New("email tidak diisi")
	}
	if len(r.Nik) != 16 {
		return errors.New("NIK harus 16 digit")
	}
	if len(r.Password) < 8 {
		return errors.New("password minimal 8 karakter")
	}
	return nil
}

type VerifyRequest struct {
	Code string `json:"code"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r RefreshRequest) Validate() error {
	if r.RefreshToken == "" {
		return errors.New("refresh token tidak diisi")
	}
	return nil
}
