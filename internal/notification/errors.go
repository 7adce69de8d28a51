package notification

import (
	"errors"
	"strings"
	"syscall"
)

const (
	msgSMTPAuth       = "Email authentication failed. Check the EMAIL_USER and EMAIL_PASSWORD configuration."
	msgSMTPConnection = "Could not connect to the email server. Check the SMTP_HOST and SMTP_PORT configuration."
)

var smtpAuthSignatures = []string{
	"Invalid login",
	"authentication failed",
	"Username and Password not accepted",
}

// DescribeSMTPError turns a transport error into the message reported to the
// caller. Authentication failures and refused connections are rewritten to
// point at the misconfigured setting; anything else is passed through.
func DescribeSMTPError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, sig := range smtpAuthSignatures {
		if strings.Contains(msg, sig) {
			return msgSMTPAuth
		}
	}
	if errors.Is(err, syscall.ECONNREFUSED) ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "ECONNREFUSED") {
		return msgSMTPConnection
	}
	return msg
}
