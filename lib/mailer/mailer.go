package mailer

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

type Provider interface {
	SendStatusChanged(toEmail, toName, entityLabel string, newStatus string) error
	SendNewTanggapan(toEmail, toName, entityLabel string) error
	SendOverdueReminder(toEmail, entityLabel string, workingDays int) error
}

var Instance Provider

func Connect(user, password, host, port, from string) {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		portNum = 0
	}
	Instance = &impl{
		dialer: gomail.NewDialer(host, portNum, user, password),
		from:   from,
		ready:  user != "" && host != "" && portNum != 0,
	}
}

type impl struct {
	dialer *gomail.Dialer
	from   string
	ready  bool
}

func (i impl) SendStatusChanged(toEmail, toName, entityLabel string, newStatus string) error {
	subject := "Perubahan status " + entityLabel
	body := fmt.Sprintf("Yth. %s,\n\nStatus %s Anda telah berubah menjadi: %s.\nSilakan masuk ke portal PPID untuk melihat perinciannya.", toName, entityLabel, newStatus)
	return i.send(toEmail, subject, body)
}

func (i impl) SendNewTanggapan(toEmail, toName, entityLabel string) error {
	subject := "Tanggapan baru pada " + entityLabel
	body := fmt.Sprintf("Yth. %s,\n\nAda tanggapan baru pada %s Anda.\nSilakan masuk ke portal PPID untuk membacanya.", toName, entityLabel)
	return i.send(toEmail, subject, body)
}

func (i impl) SendOverdueReminder(toEmail, entityLabel string, workingDays int) error {
	subject := "Pengingat batas waktu layanan"
	body := fmt.Sprintf("%s telah berumur %d hari kerja dan melewati jendela layanan.\nMohon segera ditindaklanjuti.", entityLabel, workingDays)
	return i.send(toEmail, subject, body)
}

func (i impl) send(toEmail, subject, body string) error {
	logger := log.
		WithField("penerima", toEmail).
		WithField("subjek", subject)
	if !i.ready {
		logger.Warn("email tidak dikirim karena klien surat belum dikonfigurasi")
		return nil
	}
	m := gomail.NewMessage()
	m.SetHeader("From", i.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "PPID - "+subject)
	m.SetBody("text/plain", body)
	err := i.dialer.DialAndSend(m)
	if err != nil {
		logger.WithError(err).Error("gagal mengirim email notifikasi")
		return err
	}
	logger.Info("email notifikasi terkirim")
	return nil
}
