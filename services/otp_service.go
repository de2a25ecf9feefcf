package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"os"
	"strconv"
	"sync"
	"time"

	"uwc_connect_server/utils"

	gomail "gopkg.in/gomail.v2"
)

// otpTTL is how long an issued code stays valid.
const otpTTL = 10 * time.Minute

// Mailer delivers a single plain-text email.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends mail over SMTP.
type SMTPMailer struct {
	Host     string
	Port     int
	From     string
	Password string
}

// NewSMTPMailerFromEnv builds a mailer from SMTP_EMAIL, SMTP_PASSWORD and
// optionally SMTP_HOST/SMTP_PORT (defaults to Gmail submission).
func NewSMTPMailerFromEnv() *SMTPMailer {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}
	return &SMTPMailer{
		Host:     host,
		Port:     port,
		From:     os.Getenv("SMTP_EMAIL"),
		Password: os.Getenv("SMTP_PASSWORD"),
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.Host, m.Port, m.From, m.Password)
	return d.DialAndSend(msg)
}

type otpEntry struct {
	code     string
	password string
	issuedAt time.Time
}

// OTPService issues one-time codes for registration and verifies them.
// A user record is created on the first successful verification.
type OTPService struct {
	Directory *UserDirectory
	Mailer    Mailer

	mu    sync.Mutex
	codes map[string]otpEntry
	now   func() time.Time
}

// NewOTPService returns a service bound to the directory and mailer.
func NewOTPService(directory *UserDirectory, mailer Mailer) *OTPService {
	return &OTPService{
		Directory: directory,
		Mailer:    mailer,
		codes:     make(map[string]otpEntry),
		now:       time.Now,
	}
}

// SendOTP issues a six-digit code for the email, remembers the chosen
// password until verification, and delivers the code by mail. Only UWC
// student addresses are accepted.
func (s *OTPService) SendOTP(email, password string) error {
	if !utils.IsValidUniversityEmail(email) {
		return ErrInvalidEmail
	}

	code, err := generateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	s.mu.Lock()
	s.codes[email] = otpEntry{code: code, password: password, issuedAt: s.now()}
	s.mu.Unlock()

	// Mail delivery is slow I/O; it stays outside the lock.
	body := fmt.Sprintf("Your OTP is %s. It will expire in 10 minutes.", code)
	if err := s.Mailer.Send(email, "Your UWC Connect OTP", body); err != nil {
		return fmt.Errorf("failed to send OTP: %w", err)
	}
	log.Printf("OTP sent to: %s", email)
	return nil
}

// VerifyOTP checks the code for the email and consumes it. On the first
// successful verification the user is created; an already-registered
// email verifying again is treated as that user signing in.
func (s *OTPService) VerifyOTP(email, code string) error {
	s.mu.Lock()
	entry, ok := s.codes[email]
	if !ok || s.now().Sub(entry.issuedAt) > otpTTL {
		delete(s.codes, email)
		s.mu.Unlock()
		return ErrExpiredOTP
	}
	if entry.code != code {
		s.mu.Unlock()
		return ErrInvalidOTP
	}
	delete(s.codes, email)
	s.mu.Unlock()

	if _, err := s.Directory.Create(email, entry.password); err != nil {
		if errors.Is(err, ErrDuplicateUser) {
			return nil
		}
		return err
	}
	log.Printf("New user created: %s", email)
	return nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
